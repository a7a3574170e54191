package sema

import (
	"diec/internal/ast"
	"diec/internal/diag"
	"diec/internal/types"
)

func (tc *typeChecker) checkStmt(s ast.Stmt) error {
	switch s := s.(type) {
	case *ast.Assign:
		return tc.checkAssign(s)
	case *ast.If:
		return tc.checkCond(s.Cond, "if")
	case *ast.While:
		return tc.checkCond(s.Cond, "while")
	case *ast.Write:
		t, err := tc.checkExpr(s.Value)
		if err != nil {
			return err
		}
		switch tc.types.KindOf(t) {
		case types.KindInt, types.KindChar, types.KindBool:
			return nil
		}
		return diag.Errorf(diag.SemaNotWritable, s.Line, "cannot write a value of type %s", tc.label(t))
	case *ast.Return:
		return tc.checkReturn(s)
	case *ast.Alloc:
		return tc.checkAlloc(s)
	case *ast.CallStmt:
		_, err := tc.checkExpr(s.Call)
		return err
	case *ast.Block:
		return nil
	}
	return nil
}

func (tc *typeChecker) checkCond(cond ast.Expr, what string) error {
	t, err := tc.checkExpr(cond)
	if err != nil {
		return err
	}
	if tc.types.KindOf(t) != types.KindBool {
		return diag.Errorf(diag.SemaTypeMismatch, cond.Pos(), "%s condition must be bool, found %s", what, tc.label(t))
	}
	return nil
}

func (tc *typeChecker) checkAssign(s *ast.Assign) error {
	dst, err := tc.checkPlace(s.Target)
	if err != nil {
		return err
	}
	src, err := tc.checkExpr(s.Value)
	if err != nil {
		return err
	}
	if !tc.types.Assignable(dst, src) {
		return diag.Errorf(diag.SemaTypeMismatch, s.Line, "cannot assign %s to %s", tc.label(src), tc.label(dst))
	}
	return nil
}

// checkPlace checks an expression that is stored into.
func (tc *typeChecker) checkPlace(e ast.Expr) (types.TypeID, error) {
	switch e.(type) {
	case *ast.Identifier, *ast.Index, *ast.FieldAccess:
		return tc.checkExpr(e)
	}
	return types.NoTypeID, diag.Errorf(diag.SemaNotAssignable, e.Pos(), "expression cannot be assigned to")
}

func (tc *typeChecker) checkReturn(s *ast.Return) error {
	fn := tc.funcs[len(tc.funcs)-1]
	want := fn.Signature.Result
	void := tc.types.KindOf(want) == types.KindVoid
	if s.Value == nil {
		if !void {
			return diag.Errorf(diag.SemaTypeMismatch, s.Line, "function %q must return a value of type %s", fn.Name, tc.label(want)).
				WithNote(fn.Line, "declared here")
		}
		return nil
	}
	got, err := tc.checkExpr(s.Value)
	if err != nil {
		return err
	}
	if void {
		return diag.Errorf(diag.SemaUnexpectedReturnVal, s.Line, "function %q has no result type", fn.Name).
			WithNote(fn.Line, "declared here")
	}
	if !tc.types.Assignable(want, got) {
		return diag.Errorf(diag.SemaTypeMismatch, s.Line, "cannot return %s from function %q returning %s", tc.label(got), fn.Name, tc.label(want))
	}
	return nil
}

func (tc *typeChecker) checkAlloc(s *ast.Alloc) error {
	t, err := tc.checkPlace(s.Target)
	if err != nil {
		return err
	}
	tt, _ := tc.types.Lookup(tc.types.Resolve(t))
	switch tt.Kind {
	case types.KindRecord:
		if s.Length != nil {
			return diag.Errorf(diag.SemaNotAllocatable, s.Line, "records take no length")
		}
		return nil
	case types.KindArray:
		if s.Length == nil {
			if tt.Count == types.ArrayDynamicLength {
				return diag.Errorf(diag.SemaMissingLength, s.Line, "allocating %s needs \"of length\"", tc.label(t))
			}
			return nil
		}
		n, err := tc.checkExpr(s.Length)
		if err != nil {
			return err
		}
		if tc.types.KindOf(n) != types.KindInt {
			return diag.Errorf(diag.SemaTypeMismatch, s.Length.Pos(), "array length must be int, found %s", tc.label(n))
		}
		return nil
	}
	return diag.Errorf(diag.SemaNotAllocatable, s.Line, "cannot allocate a value of type %s", tc.label(t))
}
