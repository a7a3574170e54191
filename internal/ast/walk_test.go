package ast_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"diec/internal/ast"
)

func sampleProgram() *ast.Program {
	cond := &ast.BinaryOp{Op: ast.OpLt, Left: &ast.Identifier{Name: "x", Line: 3}, Right: &ast.Literal{Kind: ast.LitInt, Text: "1", Value: 1, Line: 3}, Line: 3}
	fn := &ast.FunctionDecl{
		Head: &ast.FunctionHead{Name: "f", Result: &ast.IntType{Line: 1}, Line: 1},
		Locals: []ast.Decl{
			&ast.VarDecl{Name: "x", Type: &ast.IntType{Line: 2}, Line: 2},
		},
		Body: []ast.Stmt{
			&ast.If{
				Cond: cond,
				Then: &ast.Block{Stmts: []ast.Stmt{&ast.Return{Value: &ast.Identifier{Name: "x", Line: 4}, Line: 4}}, Line: 4},
				Line: 3,
			},
			&ast.Return{Value: &ast.Literal{Kind: ast.LitInt, Text: "0", Line: 6}, Line: 6},
		},
		Tail: &ast.FunctionTail{Name: "f", Line: 7},
	}
	return &ast.Program{Decls: []ast.Decl{fn}, Line: 1}
}

type recorder struct {
	log  []string
	skip map[string]bool
}

func (r *recorder) Enter(n ast.Node) (ast.Action, error) {
	k := ast.ShapeOf(n).Kind
	r.log = append(r.log, "+"+k)
	if r.skip[k] {
		return ast.SkipChildren, nil
	}
	return ast.Descend, nil
}

func (r *recorder) Exit(n ast.Node) error {
	r.log = append(r.log, "-"+ast.ShapeOf(n).Kind)
	return nil
}

func TestWalkOrder(t *testing.T) {
	r := &recorder{}
	if err := ast.Walk(sampleProgram().Decls[0].(*ast.FunctionDecl).Body[1], r); err != nil {
		t.Fatalf("walk: %v", err)
	}
	want := []string{"+Return", "+Literal", "-Literal", "-Return"}
	if diff := cmp.Diff(want, r.log); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestWalkSkipChildrenIsLocal(t *testing.T) {
	r := &recorder{skip: map[string]bool{"FunctionHead": true, "If": true}}
	if err := ast.Walk(sampleProgram(), r); err != nil {
		t.Fatalf("walk: %v", err)
	}
	want := []string{
		"+Program", "+FunctionDecl",
		"+FunctionHead", "-FunctionHead",
		"+VarDecl", "+IntType", "-IntType", "-VarDecl",
		"+If", "-If",
		"+Return", "+Literal", "-Literal", "-Return",
		"+FunctionTail", "-FunctionTail",
		"-FunctionDecl", "-Program",
	}
	if diff := cmp.Diff(want, r.log); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestWalkStopsOnFirstError(t *testing.T) {
	boom := errors.New("boom")
	var seen int
	err := ast.Walk(sampleProgram(), ast.Funcs{EnterFn: func(n ast.Node) (ast.Action, error) {
		seen++
		if _, ok := n.(*ast.VarDecl); ok {
			return ast.Descend, boom
		}
		return ast.Descend, nil
	}})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	// Program, FunctionDecl, FunctionHead, IntType, VarDecl
	if seen != 5 {
		t.Fatalf("expected 5 enters before abort, got %d", seen)
	}
}

func TestShapeIgnoresLines(t *testing.T) {
	a := sampleProgram()
	b := sampleProgram()
	ast.Inspect(b, func(n ast.Node) bool {
		if id, ok := n.(*ast.Identifier); ok {
			id.Line += 10
		}
		return true
	})
	ea, err := ast.EncodeShape(a)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	eb, err := ast.EncodeShape(b)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if string(ea) != string(eb) {
		t.Fatalf("shapes differ:\n%s\n%s", ast.ShapeOf(a), ast.ShapeOf(b))
	}
	back, err := ast.DecodeShape(ea)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff(ast.ShapeOf(a), back); diff != "" {
		t.Fatalf("decode mismatch (-want +got):\n%s", diff)
	}
}

func TestShapeString(t *testing.T) {
	ret := sampleProgram().Decls[0].(*ast.FunctionDecl).Body[1]
	if got, want := ast.ShapeOf(ret).String(), "(Return (Literal int:0))"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
