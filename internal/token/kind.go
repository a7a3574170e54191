package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// EqEq represents the eq eq operator token.
	EqEq // ==
	// BangEq represents the bang eq operator token.
	BangEq // !=
	// LtEq represents the lt eq operator token.
	LtEq // <=
	// GtEq represents the gt eq operator token.
	GtEq // >=
	// AndAnd represents the and and operator token.
	AndAnd // &&
	// OrOr represents the or or operator token.
	OrOr // ||
	// Star represents the star operator token.
	Star // *
	// Slash represents the slash operator token.
	Slash // /
	// Percent represents the percent operator token.
	Percent // %
	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// Assign represents the assign operator token.
	Assign // =
	// Lt represents the lt operator token.
	Lt // <
	// Gt represents the gt operator token.
	Gt // >
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
	// Bang represents the bang operator token.
	Bang // !
	// Pipe represents the pipe token (absolute value / length bars).
	Pipe // |
	// Colon represents the colon token.
	Colon // :
	// Semicolon represents the semicolon token.
	Semicolon // ;
	// Dot represents the dot token.
	Dot // .
	// Comma represents the comma token.
	Comma // ,
	// LBracket represents the left bracket token.
	LBracket // [
	// RBracket represents the right bracket token.
	RBracket // ]

	// KwFunc represents the 'func' keyword.
	KwFunc // func
	// KwInt represents the 'int' keyword.
	KwInt // int
	// KwChar represents the 'char' keyword.
	KwChar // char
	// KwBool represents the 'bool' keyword.
	KwBool // bool
	// KwArrayOf represents the two-word 'array of' keyword.
	KwArrayOf // array of
	// KwRecordOf represents the two-word 'record of' keyword.
	KwRecordOf // record of
	// KwEnd represents the 'end' keyword.
	KwEnd // end
	// KwVar represents the 'var' keyword.
	KwVar // var
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwWrite represents the 'write' keyword.
	KwWrite // write
	// KwAlloc represents the 'alloc' keyword.
	KwAlloc // alloc
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwThen represents the 'then' keyword.
	KwThen // then
	// KwWhile represents the 'while' keyword.
	KwWhile // while
	// KwDo represents the 'do' keyword.
	KwDo // do
	// KwOfLength represents the two-word 'of length' keyword.
	KwOfLength // of length
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwFalse represents the 'false' keyword.
	KwFalse // false
	// KwNull represents the 'null' keyword.
	KwNull // null
	// KwType represents the 'type' keyword.
	KwType // type

	// IntLit represents a decimal integer literal.
	IntLit
	// CharLit represents a quoted character literal.
	CharLit
	// Ident represents an identifier token.
	Ident
)

// Priority is the order in which the lexer tries token kinds.
// The first kind producing a non-empty match wins.
var Priority = []Kind{
	EqEq, BangEq, LtEq, GtEq, AndAnd, OrOr,
	Star, Slash, Percent, Plus, Minus, LParen, RParen, Assign, Lt, Gt,
	LBrace, RBrace, Bang, Pipe, Colon, Semicolon, Dot, Comma, LBracket, RBracket,
	KwFunc, KwInt, KwChar, KwBool, KwArrayOf, KwRecordOf, KwEnd, KwVar,
	KwReturn, KwWrite, KwAlloc, KwIf, KwThen, KwWhile, KwDo, KwOfLength,
	KwElse, KwTrue, KwFalse, KwNull, KwType,
	IntLit, CharLit, Ident,
}
