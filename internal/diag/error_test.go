package diag

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"diec/internal/source"
)

func TestErrorCategories(t *testing.T) {
	tests := []struct {
		code Code
		want error
		id   string
	}{
		{LexUnknownChar, ErrLexical, "LEX1001"},
		{SynUnexpectedToken, ErrSyntax, "SYN2001"},
		{SemaTypeMismatch, ErrSemantic, "SEM3006"},
		{IOLoadFileError, ErrIO, "IO4001"},
		{FmtReservedIndex, ErrFormatInvariant, "FMT9002"},
	}
	for _, tt := range tests {
		err := fmt.Errorf("wrapped: %w", Errorf(tt.code, 3, "boom"))
		if !errors.Is(err, tt.want) {
			t.Fatalf("%s: expected errors.Is(%v)", tt.id, tt.want)
		}
		if errors.Is(err, ErrSemantic) != (tt.want == ErrSemantic) {
			t.Fatalf("%s: category leak", tt.id)
		}
		if got := tt.code.ID(); got != tt.id {
			t.Fatalf("ID() = %q, want %q", got, tt.id)
		}
	}
}

func TestErrorMessageCarriesBothLines(t *testing.T) {
	err := Errorf(SemaFnNameMismatch, 1, "head name %q does not match tail name %q", "foo", "bar").
		WithNote(4, "tail declared here")
	msg := err.Error()
	for _, want := range []string{"line 1", "SEM3001", "line 4", "tail declared here"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected %q in %q", want, msg)
		}
	}
}

func TestBagSortAndLimit(t *testing.T) {
	bag := NewBag(2)
	bag.Add(Diagnostic{Severity: SevError, Code: SemaTypeMismatch, Line: 9})
	bag.Add(Diagnostic{Severity: SevError, Code: SynUnexpectedToken, Line: 2})
	if bag.Add(Diagnostic{Severity: SevError, Line: 1}) {
		t.Fatalf("expected limit to reject third diagnostic")
	}
	bag.Sort()
	if bag.Items()[0].Line != 2 {
		t.Fatalf("expected line 2 first, got %d", bag.Items()[0].Line)
	}
	if !bag.HasErrors() {
		t.Fatalf("expected HasErrors")
	}
}

func TestFromErrorAndFormatShort(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("prog.die", []byte("x"))

	bag := NewBag(8)
	bag.AddError(id, Errorf(SemaUnresolvedSymbol, 7, "undeclared identifier %q", "y").At(3).WithNote(2, "scope opened here"))
	bag.AddError(id, errors.New("plain failure"))

	out := FormatShort(bag.Items(), fs, true)
	want := "prog.die:7:3: ERROR SEM3004: undeclared identifier \"y\"\n" +
		"  note: prog.die:2: scope opened here\n" +
		"prog.die:0:0: ERROR E0000: plain failure\n"
	if out != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", out, want)
	}
}
