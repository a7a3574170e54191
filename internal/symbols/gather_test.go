package symbols_test

import (
	"testing"

	"diec/internal/ast"
	"diec/internal/diag"
	"diec/internal/parser"
	"diec/internal/symbols"
	"diec/internal/types"
)

func gather(t *testing.T, src string) (*ast.Program, *symbols.Table, error) {
	t.Helper()
	prog, err := parser.ParseString(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	table, err := symbols.Gather(prog, types.NewInterner())
	return prog, table, err
}

func TestGatherScopes(t *testing.T) {
	src := `var g: int;
func outer(a: int): int
  var x: int;
  func inner(): int return a; end inner
  if a > 0 then { x = 1; } end
  return inner();
end outer
`
	prog, table, err := gather(t, src)
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if err := table.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	root := table.ScopeOf(prog)
	if root != table.Root || !root.IsValid() {
		t.Fatalf("root scope not attached to program")
	}

	outer := prog.Decls[1].(*ast.FunctionDecl)
	fnScope := table.ScopeOf(outer)
	if s := table.Scopes.Get(fnScope); s.Kind != symbols.ScopeFunction || s.Parent != root {
		t.Fatalf("function scope = %+v", s)
	}
	// program, outer, inner, if-then block, explicit block
	if got := table.Scopes.Len(); got != 5 {
		t.Fatalf("scopes = %d, want 5", got)
	}

	g := table.Symbol(table.Lookup(fnScope, "g"))
	if g == nil || !g.Global || g.Kind != symbols.SymbolVar {
		t.Fatalf("g = %+v", g)
	}
	a := table.Symbol(table.LookupLocal(fnScope, "a"))
	if a == nil || a.Kind != symbols.SymbolParam || a.Index != 0 {
		t.Fatalf("a = %+v", a)
	}
	x := table.Symbol(table.LookupLocal(fnScope, "x"))
	if x == nil || x.Global || x.Index != 1 || x.Line != 3 {
		t.Fatalf("x = %+v", x)
	}
	self := table.LookupLocal(fnScope, "outer")
	if self == symbols.NoSymbolID || self != table.LookupLocal(root, "outer") {
		t.Fatalf("function scope must hold the function's own symbol")
	}
	inner := table.Symbol(table.Lookup(fnScope, "inner"))
	if inner == nil || inner.QualName != "outer$inner" {
		t.Fatalf("inner = %+v", inner)
	}
	if table.LookupLocal(root, "inner") != symbols.NoSymbolID {
		t.Fatalf("inner leaked to program scope")
	}
	if len(table.Functions()) != 2 || len(table.Globals()) != 1 {
		t.Fatalf("functions=%d globals=%d", len(table.Functions()), len(table.Globals()))
	}
}

func TestGatherHoistsFunctionsAndTypes(t *testing.T) {
	src := `func a(): int return b(); end a
func b(): int return 1; end b
var n: node;
type node = record of { value: int, next: node };
`
	_, table, err := gather(t, src)
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	n := table.Symbol(table.Lookup(table.Root, "n"))
	next, ok := table.Types.FieldType(n.Type, "next")
	if !ok || !table.Types.Identical(next, n.Type) {
		t.Fatalf("recursive record not resolved: %v", types.Label(table.Types, next))
	}
}

func TestGatherErrors(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		code  diag.Code
		line  int
		notes []int
	}{
		{"duplicate var", "var x: int;\nvar x: char;", diag.SemaDuplicateSymbol, 2, []int{1}},
		{"duplicate function", "func f() end f\nfunc f() end f", diag.SemaDuplicateSymbol, 2, []int{1}},
		{"param clashes with function", "func f(f: int) end f", diag.SemaDuplicateSymbol, 1, []int{1}},
		{"local clashes with param", "func f(a: int)\n var a: int;\nend f", diag.SemaDuplicateSymbol, 2, []int{1}},
		{"unknown type", "var x: thing;", diag.SemaUnresolvedSymbol, 1, nil},
		{"not a type", "var y: int;\nvar x: y;", diag.SemaNotAType, 2, []int{1}},
		{"alias cycle", "type a = b;\ntype b = a;", diag.SemaInvalidRecursiveType, 1, nil},
		{"array cycle", "type a = array of a;", diag.SemaInvalidRecursiveType, 1, nil},
		{"duplicate field", "type r = record of {\n x: int,\n x: char };", diag.SemaDuplicateField, 3, []int{2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := gather(t, tt.src)
			de, ok := diag.AsError(err)
			if !ok {
				t.Fatalf("expected *diag.Error, got %v", err)
			}
			if de.Code != tt.code || de.Line != tt.line {
				t.Fatalf("got %v, want %s at line %d", err, tt.code.ID(), tt.line)
			}
			if len(de.Notes) != len(tt.notes) {
				t.Fatalf("notes = %+v, want lines %v", de.Notes, tt.notes)
			}
			for i, l := range tt.notes {
				if de.Notes[i].Line != l {
					t.Fatalf("note %d line = %d, want %d", i, de.Notes[i].Line, l)
				}
			}
		})
	}
}

func TestShadowingInNestedScopes(t *testing.T) {
	src := "var x: int;\nfunc f()\n var x: char;\nend f"
	prog, table, err := gather(t, src)
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	fn := prog.Decls[1].(*ast.FunctionDecl)
	local := table.Symbol(table.Lookup(table.ScopeOf(fn), "x"))
	if local.Line != 3 || local.Type != table.Types.Builtins().Char {
		t.Fatalf("inner x should shadow the global: %+v", local)
	}
}
