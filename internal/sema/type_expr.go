package sema

import (
	"diec/internal/ast"
	"diec/internal/diag"
	"diec/internal/symbols"
	"diec/internal/types"
)

// checkExpr resolves the type of e and annotates it.
func (tc *typeChecker) checkExpr(e ast.Expr) (types.TypeID, error) {
	t, err := tc.typeOf(e)
	if err != nil {
		return types.NoTypeID, err
	}
	tc.info.annotate(e, t)
	return t, nil
}

func (tc *typeChecker) typeOf(e ast.Expr) (types.TypeID, error) {
	b := tc.types.Builtins()
	switch e := e.(type) {
	case *ast.Literal:
		switch e.Kind {
		case ast.LitInt:
			return b.Int, nil
		case ast.LitChar:
			return b.Char, nil
		case ast.LitTrue, ast.LitFalse:
			return b.Bool, nil
		default:
			return b.Null, nil
		}
	case *ast.Identifier:
		sym, err := tc.resolve(e)
		if err != nil {
			return types.NoTypeID, err
		}
		if !sym.Kind.IsValue() {
			return types.NoTypeID, diag.Errorf(diag.SemaNotAValue, e.Line, "%s %q is not a value", sym.Kind, e.Name).
				WithNote(sym.Line, "declared here")
		}
		if sym.Kind == symbols.SymbolVar && declaredAfter(sym, e) {
			return types.NoTypeID, diag.Errorf(diag.SemaUseBeforeDecl, e.Line, "variable %q used before its declaration", e.Name).
				WithNote(sym.Line, "declared here")
		}
		return sym.Type, nil
	case *ast.BinaryOp:
		return tc.typeBinary(e)
	case *ast.UnaryOp:
		t, err := tc.checkExpr(e.Operand)
		if err != nil {
			return types.NoTypeID, err
		}
		want := types.KindInt
		if e.Op == ast.OpNot {
			want = types.KindBool
		}
		if tc.types.KindOf(t) != want {
			return types.NoTypeID, diag.Errorf(diag.SemaInvalidUnaryOperand, e.Line, "operator %s needs %s, found %s", e.Op, want, tc.label(t))
		}
		return tc.types.Resolve(t), nil
	case *ast.Abs:
		t, err := tc.checkExpr(e.Operand)
		if err != nil {
			return types.NoTypeID, err
		}
		switch tc.types.KindOf(t) {
		case types.KindInt, types.KindArray:
			return b.Int, nil
		}
		return types.NoTypeID, diag.Errorf(diag.SemaInvalidUnaryOperand, e.Line, "|e| needs int or array, found %s", tc.label(t))
	case *ast.Index:
		base, err := tc.checkExpr(e.Base)
		if err != nil {
			return types.NoTypeID, err
		}
		tt, _ := tc.types.Lookup(tc.types.Resolve(base))
		if tt.Kind != types.KindArray {
			return types.NoTypeID, diag.Errorf(diag.SemaNotIndexable, e.Line, "cannot index a value of type %s", tc.label(base))
		}
		idx, err := tc.checkExpr(e.Index)
		if err != nil {
			return types.NoTypeID, err
		}
		if tc.types.KindOf(idx) != types.KindInt {
			return types.NoTypeID, diag.Errorf(diag.SemaTypeMismatch, e.Index.Pos(), "array index must be int, found %s", tc.label(idx))
		}
		return tt.Elem, nil
	case *ast.FieldAccess:
		base, err := tc.checkExpr(e.Base)
		if err != nil {
			return types.NoTypeID, err
		}
		if tc.types.KindOf(base) != types.KindRecord {
			return types.NoTypeID, diag.Errorf(diag.SemaUnknownField, e.Line, "%s has no field %q", tc.label(base), e.Field)
		}
		ft, ok := tc.types.FieldType(base, e.Field)
		if !ok {
			return types.NoTypeID, diag.Errorf(diag.SemaUnknownField, e.Line, "%s has no field %q", tc.label(base), e.Field)
		}
		return ft, nil
	case *ast.Call:
		return tc.typeCall(e)
	}
	return types.NoTypeID, diag.Errorf(diag.SemaTypeMismatch, e.Pos(), "unsupported expression")
}

func (tc *typeChecker) resolve(id *ast.Identifier) (*symbols.Symbol, error) {
	symID := tc.table.Lookup(tc.scope(), id.Name)
	sym := tc.table.Symbol(symID)
	if sym == nil {
		return nil, diag.Errorf(diag.SemaUnresolvedSymbol, id.Line, "undeclared identifier %q", id.Name)
	}
	tc.info.Uses[id] = symID
	return sym, nil
}

func (tc *typeChecker) typeBinary(e *ast.BinaryOp) (types.TypeID, error) {
	l, err := tc.checkExpr(e.Left)
	if err != nil {
		return types.NoTypeID, err
	}
	r, err := tc.checkExpr(e.Right)
	if err != nil {
		return types.NoTypeID, err
	}
	b := tc.types.Builtins()
	lk, rk := tc.types.KindOf(l), tc.types.KindOf(r)
	switch e.Op.Class() {
	case ast.ClassArithmetic:
		if lk == types.KindInt && rk == types.KindInt {
			return b.Int, nil
		}
	case ast.ClassLogical:
		if lk == types.KindBool && rk == types.KindBool {
			return b.Bool, nil
		}
	case ast.ClassEquality:
		if tc.types.Comparable(l, r) {
			return b.Bool, nil
		}
	case ast.ClassRelational:
		if tc.types.Ordered(l, r) {
			return b.Bool, nil
		}
	}
	return types.NoTypeID, diag.Errorf(diag.SemaInvalidBinaryOperand, e.Line,
		"invalid operands for %s: %s and %s", e.Op, tc.label(l), tc.label(r))
}

func (tc *typeChecker) typeCall(e *ast.Call) (types.TypeID, error) {
	sym, err := tc.resolve(e.Callee)
	if err != nil {
		return types.NoTypeID, err
	}
	if sym.Kind != symbols.SymbolFunction {
		return types.NoTypeID, diag.Errorf(diag.SemaNotCallable, e.Line, "%s %q is not a function", sym.Kind, sym.Name).
			WithNote(sym.Line, "declared here")
	}
	sig := sym.Signature
	if len(e.Args) != len(sig.Params) {
		return types.NoTypeID, diag.Errorf(diag.SemaArgCountMismatch, e.Line,
			"function %q takes %d argument(s), got %d", sym.Name, len(sig.Params), len(e.Args)).
			WithNote(sym.Line, "declared here")
	}
	for i, arg := range e.Args {
		t, err := tc.checkExpr(arg)
		if err != nil {
			return types.NoTypeID, err
		}
		if !tc.types.Assignable(sig.Params[i], t) {
			return types.NoTypeID, diag.Errorf(diag.SemaTypeMismatch, arg.Pos(),
				"argument %d of %q: cannot use %s as %s", i+1, sym.Name, tc.label(t), tc.label(sig.Params[i]))
		}
	}
	return sig.Result, nil
}

// declaredAfter reports whether the variable's declaration follows the use
// in the source text. Line first: hand-built trees may carry no offsets.
func declaredAfter(sym *symbols.Symbol, use *ast.Identifier) bool {
	if sym.Line != use.Line {
		return sym.Line > use.Line
	}
	return sym.Off > use.Off
}
