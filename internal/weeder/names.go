package weeder

import (
	"diec/internal/ast"
	"diec/internal/diag"
)

// CheckNames verifies that every function, nested ones included, closes
// with its own name. Statement subtrees are never entered.
func CheckNames(prog *ast.Program) error {
	return ast.Walk(prog, ast.Funcs{EnterFn: func(n ast.Node) (ast.Action, error) {
		switch n := n.(type) {
		case *ast.FunctionDecl:
			if n.Head.Name != n.Tail.Name {
				return ast.SkipChildren, diag.Errorf(diag.SemaFnNameMismatch, n.Tail.Line,
					"function %q is closed with \"end %s\"", n.Head.Name, n.Tail.Name).
					WithNote(n.Head.Line, "function "+n.Head.Name+" declared here")
			}
			return ast.Descend, nil
		case *ast.Program:
			return ast.Descend, nil
		}
		return ast.SkipChildren, nil
	}})
}
