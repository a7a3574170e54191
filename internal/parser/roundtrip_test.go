package parser_test

import (
	"bytes"
	"testing"

	"diec/internal/ast"
	"diec/internal/parser"
)

var seeds = []string{
	"func main() end main",
	"var g: int; func f(a: int, b: char): bool return a == 0; end f",
	"type list = record of { head: int, tail: list }; var l: list;",
	"func f(n: int): int if n < 2 then return 1; else return n * f(n - 1); end end f",
	"func g() var a: array of int; alloc a of length 10; a[0] = |a|; write a[0]; end g",
}

// Parsing the same text twice must yield byte-identical shape encodings.
func TestRoundTripShapeIsDeterministic(t *testing.T) {
	for _, src := range seeds {
		first, err := ast.EncodeShape(mustParse(t, src))
		if err != nil {
			t.Fatalf("encode %q: %v", src, err)
		}
		second, err := ast.EncodeShape(mustParse(t, src))
		if err != nil {
			t.Fatalf("encode %q: %v", src, err)
		}
		if !bytes.Equal(first, second) {
			t.Fatalf("shape of %q differs between parses", src)
		}
	}
}

// Whitespace and comments change lines but not shape.
func TestRoundTripIgnoresLayout(t *testing.T) {
	a := "func f(): int return 1; end f"
	b := "# c\nfunc f()\n:\nint\n  return\n 1 ;\nend\nf\n"
	ea, err := ast.EncodeShape(mustParse(t, a))
	if err != nil {
		t.Fatal(err)
	}
	eb, err := ast.EncodeShape(mustParse(t, b))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(ea, eb) {
		t.Fatalf("layout changed shape")
	}
}

func TestParseDoesNotPanicOnPrefixes(_ *testing.T) {
	for _, s := range seeds {
		for i := range len(s) {
			_, _ = parser.ParseString(s[:i])
		}
	}
}
