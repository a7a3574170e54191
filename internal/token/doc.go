// Package token defines lexical token kinds for the die language.
// Invariants:
//   - Token.Text is the exact matched lexeme.
//   - Token.Line is the 1-based line at match start.
//   - Priority lists every matchable kind in the order the lexer tries them;
//     multi-character operators precede their single-character prefixes and
//     keywords precede Ident.
package token
