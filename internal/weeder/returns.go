package weeder

import (
	"diec/internal/ast"
	"diec/internal/diag"
)

type returnStatus uint8

const (
	returnOpen returnStatus = iota
	returnClosed
)

// CheckReturns verifies that every function declared with a result type
// ends in a statement that always returns.
func CheckReturns(prog *ast.Program) error {
	return ast.Walk(prog, ast.Funcs{EnterFn: func(n ast.Node) (ast.Action, error) {
		switch n := n.(type) {
		case *ast.Program:
			return ast.Descend, nil
		case *ast.FunctionDecl:
			if n.Head.Result != nil && sequenceStatus(n.Body) != returnClosed {
				return ast.SkipChildren, diag.Errorf(diag.SemaMissingReturn, n.Head.Line,
					"function %q may end without returning a value", n.Head.Name)
			}
			return ast.Descend, nil
		}
		return ast.SkipChildren, nil
	}})
}

// sequenceStatus: a statement list is closed iff its last statement is.
func sequenceStatus(stmts []ast.Stmt) returnStatus {
	if len(stmts) == 0 {
		return returnOpen
	}
	return stmtStatus(stmts[len(stmts)-1])
}

func stmtStatus(s ast.Stmt) returnStatus {
	switch s := s.(type) {
	case *ast.Return:
		return returnClosed
	case *ast.Block:
		return sequenceStatus(s.Stmts)
	case *ast.If:
		if s.Else == nil {
			return returnOpen
		}
		if stmtStatus(s.Then) == returnClosed && stmtStatus(s.Else) == returnClosed {
			return returnClosed
		}
		return returnOpen
	case *ast.While:
		// the body may run zero times
		return returnOpen
	default:
		return returnOpen
	}
}

// Complete reports whether s always returns.
func Complete(s ast.Stmt) bool {
	return stmtStatus(s) == returnClosed
}
