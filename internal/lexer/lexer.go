package lexer

import (
	"strconv"

	"diec/internal/diag"
	"diec/internal/source"
	"diec/internal/token"
)

// snippetLen bounds the remaining-text excerpt quoted in errors.
const snippetLen = 24

// maxIntLit is the magnitude of the smallest int32.
const maxIntLit = 1 << 31

type Lexer struct {
	file   *source.File
	cursor Cursor
}

func New(file *source.File) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
	}
}

// File returns the source file being tokenized.
func (lx *Lexer) File() *source.File { return lx.file }

// Next возвращает следующий токен. Пробелы и комментарии пропускаются.
// Kinds are tried in token.Priority order; the first one with a non-empty
// longest match wins.
func (lx *Lexer) Next() (token.Token, error) {
	lx.skipTrivia()
	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Line: lx.cursor.Line(), Span: lx.emptySpan()},
			diag.Errorf(diag.LexUnexpectedEOF, lx.cursor.Line(), "unexpected end of input")
	}

	rest := lx.cursor.Remaining()
	for _, kind := range token.Priority {
		n := matchers[kind](rest)
		if n == 0 {
			continue
		}
		start := lx.cursor.Mark()
		line := lx.cursor.Line()
		lx.cursor.Advance(n)
		tok := token.Token{
			Kind: kind,
			Text: rest[:n],
			Line: line,
			Span: lx.cursor.SpanFrom(start),
		}
		// 2147483648 passes here: the parser accepts it only as the operand
		// of a unary minus.
		if kind == token.IntLit {
			if v, err := strconv.ParseUint(tok.Text, 10, 32); err != nil || v > maxIntLit {
				return tok, lx.errorAt(diag.LexIntLiteralTooLarge, tok.Span.Start, "integer literal %s does not fit in 32 bits", tok.Text)
			}
		}
		return tok, nil
	}

	if rest[0] == '\'' {
		return token.Token{}, lx.errorAt(diag.LexUnterminatedChar, lx.cursor.Off, "malformed character literal at %q", snippet(rest))
	}
	return token.Token{}, lx.errorAt(diag.LexUnknownChar, lx.cursor.Off, "no token matches %q", snippet(rest))
}

// Peek materializes the next n tokens without consuming them.
func (lx *Lexer) Peek(n int) ([]token.Token, error) {
	start := lx.cursor.Mark()
	defer lx.cursor.Reset(start)

	toks := make([]token.Token, 0, n)
	for range n {
		tok, err := lx.Next()
		if err != nil {
			return toks, err
		}
		toks = append(toks, tok)
	}
	return toks, nil
}

// PeekKind reports the kind of the next token, or token.EOF at the end of
// input. Lexical errors surface as token.Invalid; the following Next call
// reports them.
func (lx *Lexer) PeekKind() token.Kind {
	toks, err := lx.Peek(1)
	if err != nil || len(toks) == 0 {
		if lx.AtEOF() {
			return token.EOF
		}
		return token.Invalid
	}
	return toks[0].Kind
}

// AtEOF reports whether only trivia is left.
func (lx *Lexer) AtEOF() bool {
	lx.skipTrivia()
	return lx.cursor.EOF()
}

// Remaining returns the unread source text after trivia.
func (lx *Lexer) Remaining() string {
	lx.skipTrivia()
	return lx.cursor.Remaining()
}

// Offset returns the byte offset of the next token.
func (lx *Lexer) Offset() uint32 {
	lx.skipTrivia()
	return lx.cursor.Off
}

// Line returns the line of the next unread byte.
func (lx *Lexer) Line() int {
	lx.skipTrivia()
	return lx.cursor.Line()
}

// All tokenizes the rest of the input.
func (lx *Lexer) All() ([]token.Token, error) {
	var toks []token.Token
	for !lx.AtEOF() {
		tok, err := lx.Next()
		if err != nil {
			return toks, err
		}
		toks = append(toks, tok)
	}
	return toks, nil
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) errorAt(code diag.Code, off uint32, format string, args ...any) *diag.Error {
	pos := lx.file.Position(off)
	return diag.Errorf(code, int(pos.Line), format, args...).At(int(pos.Col))
}

// Snippet shortens s for use in error messages.
func Snippet(s string) string { return snippet(s) }

func snippet(s string) string {
	if len(s) <= snippetLen {
		return s
	}
	return s[:snippetLen] + "..."
}
