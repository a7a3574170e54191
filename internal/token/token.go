package token

import (
	"diec/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Text string
	Line int
	Span source.Span
}

// IsLiteral reports whether the token is a numeric, character, boolean, or null literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, CharLit, KwTrue, KwFalse, KwNull:
		return true
	default:
		return false
	}
}

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool {
	_, ok := punct[t.Kind]
	return ok
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	_, ok := keywords[t.Kind]
	return ok
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
