package symbols

import (
	"strconv"

	"fortio.org/safecast"

	"diec/internal/ast"
	"diec/internal/diag"
	"diec/internal/types"
)

// resolveType interns the type written as te. hint names anonymous records.
func (g *gatherer) resolveType(scope ScopeID, te ast.TypeExpr, hint string) (types.TypeID, error) {
	b := g.in.Builtins()
	switch te := te.(type) {
	case *ast.IntType:
		return b.Int, nil
	case *ast.CharType:
		return b.Char, nil
	case *ast.BoolType:
		return b.Bool, nil
	case *ast.ArrayType:
		elem, err := g.resolveType(scope, te.Elem, hint)
		if err != nil {
			return types.NoTypeID, err
		}
		count, err := safecast.Conv[uint32](te.Length)
		if err != nil {
			return types.NoTypeID, diag.Errorf(diag.SemaTypeMismatch, te.Line, "array length %d out of range", te.Length)
		}
		return g.in.Intern(types.MakeArray(elem, count)), nil
	case *ast.RecordType:
		return g.resolveRecord(scope, te, hint)
	case *ast.NamedType:
		id := g.t.Lookup(scope, te.Name)
		sym := g.t.Symbol(id)
		if sym == nil {
			return types.NoTypeID, diag.Errorf(diag.SemaUnresolvedSymbol, te.Line, "undeclared type %q", te.Name)
		}
		if sym.Kind != SymbolType {
			return types.NoTypeID, diag.Errorf(diag.SemaNotAType, te.Line, "%s %q is not a type", sym.Kind, te.Name).
				WithNote(sym.Line, "declared here")
		}
		return sym.Type, nil
	}
	return types.NoTypeID, diag.Errorf(diag.SemaNotAType, te.Pos(), "unsupported type expression")
}

func (g *gatherer) resolveRecord(scope ScopeID, te *ast.RecordType, hint string) (types.TypeID, error) {
	id := g.in.RegisterRecord(g.recordName(hint))
	seen := make(map[string]int, len(te.Fields))
	fields := make([]types.Field, 0, len(te.Fields))
	for _, f := range te.Fields {
		if line, dup := seen[f.Name]; dup {
			return types.NoTypeID, diag.Errorf(diag.SemaDuplicateField, f.Line, "duplicate field %q", f.Name).
				WithNote(line, "previous field "+f.Name)
		}
		seen[f.Name] = f.Line
		typ, err := g.resolveType(scope, f.Type, hint+"$"+f.Name)
		if err != nil {
			return types.NoTypeID, err
		}
		fields = append(fields, types.Field{Name: f.Name, Type: typ, Line: f.Line})
	}
	g.in.SetRecordFields(id, fields)
	return id, nil
}

// recordName keeps record names unique within a compilation unit.
func (g *gatherer) recordName(hint string) string {
	n := g.records[hint]
	g.records[hint] = n + 1
	if n == 0 {
		return hint
	}
	return hint + "$" + strconv.Itoa(n)
}

// checkAlias rejects aliases that expand forever: a cycle must pass through
// a record to be well-founded.
func (g *gatherer) checkAlias(td *ast.TypeDecl, alias types.TypeID) error {
	seen := make(map[types.TypeID]bool)
	for id := alias; ; {
		if seen[id] {
			return diag.Errorf(diag.SemaInvalidRecursiveType, td.Line, "type %q refers to itself without a record", td.Name)
		}
		seen[id] = true
		tt, ok := g.in.Lookup(id)
		if !ok {
			return diag.Errorf(diag.SemaInvalidRecursiveType, td.Line, "type %q is never defined", td.Name)
		}
		switch tt.Kind {
		case types.KindAlias:
			info, _ := g.in.AliasInfo(id)
			id = info.Target
		case types.KindArray:
			id = tt.Elem
		default:
			return nil
		}
	}
}
