package diag

import (
	"errors"
	"fmt"
	"strings"
)

// Category sentinels for errors.Is.
var (
	ErrLexical         = errors.New("lexical error")
	ErrSyntax          = errors.New("syntax error")
	ErrSemantic        = errors.New("semantic error")
	ErrIO              = errors.New("i/o error")
	ErrFormatInvariant = errors.New("format invariant violated")
)

// Note points at a related source line.
type Note struct {
	Line int
	Msg  string
}

// Error is the first failure of a compiler phase.
type Error struct {
	Code    Code
	Line    int // 1-based; 0 when no source position applies
	Col     int // 1-based; 0 when unknown
	Message string
	Notes   []Note
}

// Errorf builds an Error at the given line.
func Errorf(code Code, line int, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Line:    line,
		Message: fmt.Sprintf(format, args...),
	}
}

// At sets the column and returns the receiver.
func (e *Error) At(col int) *Error {
	e.Col = col
	return e
}

// WithNote appends a note and returns the receiver.
func (e *Error) WithNote(line int, msg string) *Error {
	e.Notes = append(e.Notes, Note{Line: line, Msg: msg})
	return e
}

func (e *Error) Error() string {
	var sb strings.Builder
	if e.Line > 0 {
		fmt.Fprintf(&sb, "line %d: ", e.Line)
	}
	fmt.Fprintf(&sb, "%s %s", e.Code.ID(), e.Message)
	for _, n := range e.Notes {
		fmt.Fprintf(&sb, "; line %d: %s", n.Line, n.Msg)
	}
	return sb.String()
}

// Is matches the category sentinels.
func (e *Error) Is(target error) bool {
	switch e.Code.Category() {
	case CategoryLexical:
		return target == ErrLexical
	case CategorySyntax:
		return target == ErrSyntax
	case CategorySemantic:
		return target == ErrSemantic
	case CategoryIO:
		return target == ErrIO
	case CategoryFormat:
		return target == ErrFormatInvariant
	}
	return false
}

// AsError extracts a *Error from err's chain.
func AsError(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
