package testkit_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"diec/internal/ast"
	"diec/internal/parser"
	"diec/internal/source"
	"diec/internal/testkit"
)

func TestLineInvariantsOnTestdata(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "driver", "testdata", "*.die"))
	if err != nil || len(paths) == 0 {
		t.Fatalf("no testdata: %v", err)
	}
	for _, path := range paths {
		if strings.HasPrefix(filepath.Base(path), "bad_syntax") {
			continue
		}
		t.Run(filepath.Base(path), func(t *testing.T) {
			fs := source.NewFileSet()
			id, err := fs.Load(path)
			if err != nil {
				t.Fatal(err)
			}
			file := fs.Get(id)
			prog, err := parser.Parse(file)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if err := testkit.CheckLineInvariants(prog, file); err != nil {
				t.Fatalf("invariants: %v", err)
			}
		})
	}
}

func TestLineInvariantsRejectOutOfRange(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("x.die", []byte("var a: int;\n")))
	prog := &ast.Program{Line: 1, Decls: []ast.Decl{
		&ast.VarDecl{Name: "a", Type: &ast.IntType{Line: 9}, Line: 9},
	}}
	if err := testkit.CheckLineInvariants(prog, file); err == nil {
		t.Fatalf("line 9 in a two-line file must be rejected")
	}
	if err := testkit.CheckLineInvariants(nil, file); err == nil {
		t.Fatalf("nil program must be rejected")
	}
}
