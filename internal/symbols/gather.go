package symbols

import (
	"diec/internal/ast"
	"diec/internal/types"
)

// Gather builds the scope tree of prog and declares every name in it.
//
// Within one scope, type names are declared first and bound second so
// records can refer to themselves; functions are hoisted, so calls may
// precede the callee's declaration. Variables are declared with their line;
// the type checker rejects uses above that line.
func Gather(prog *ast.Program, in *types.Interner) (*Table, error) {
	g := &gatherer{
		t:       NewTable(in),
		in:      in,
		records: make(map[string]int),
	}
	if g.in == nil {
		g.in = g.t.Types
	}
	if err := ast.Walk(prog, g); err != nil {
		return nil, err
	}
	return g.t, nil
}

type gatherer struct {
	t       *Table
	in      *types.Interner
	stack   []ScopeID
	records map[string]int
}

func (g *gatherer) current() ScopeID {
	if len(g.stack) == 0 {
		return NoScopeID
	}
	return g.stack[len(g.stack)-1]
}

func (g *gatherer) push(id ScopeID) { g.stack = append(g.stack, id) }

func (g *gatherer) pop() { g.stack = g.stack[:len(g.stack)-1] }

func (g *gatherer) Enter(n ast.Node) (ast.Action, error) {
	switch n := n.(type) {
	case *ast.Program:
		scope := g.t.newScope(ScopeProgram, NoScopeID, n)
		g.push(scope)
		return ast.Descend, g.declareGroup(scope, nil, nil, n.Decls, "")
	case *ast.FunctionDecl:
		fn := g.t.SymbolOf(n)
		scope := g.t.newScope(ScopeFunction, g.current(), n)
		g.push(scope)
		g.t.bind(scope, fn)
		sym := g.t.Symbol(fn)
		return ast.Descend, g.declareGroup(scope, n.Head.Params, sym.Signature.Params, n.Locals, sym.QualName)
	case *ast.Block:
		g.push(g.t.newScope(ScopeBlock, g.current(), n))
	case ast.Expr, ast.TypeExpr:
		return ast.SkipChildren, nil
	}
	return ast.Descend, nil
}

func (g *gatherer) Exit(n ast.Node) error {
	switch n.(type) {
	case *ast.Program, *ast.FunctionDecl, *ast.Block:
		g.pop()
	}
	return nil
}

// declareGroup declares the parameters and declarations owned by scope.
// paramTypes come from the function's signature so both share record types.
func (g *gatherer) declareGroup(scope ScopeID, params []*ast.Param, paramTypes []types.TypeID, decls []ast.Decl, qual string) error {
	var (
		typeDecls []*ast.TypeDecl
		funcs     []*ast.FunctionDecl
		vars      []*ast.VarDecl
	)
	for _, d := range decls {
		switch d := d.(type) {
		case *ast.TypeDecl:
			typeDecls = append(typeDecls, d)
		case *ast.FunctionDecl:
			funcs = append(funcs, d)
		case *ast.VarDecl:
			vars = append(vars, d)
		}
	}

	aliases := make([]types.TypeID, len(typeDecls))
	for i, td := range typeDecls {
		aliases[i] = g.in.RegisterAlias(td.Name)
		if _, err := g.t.Declare(scope, &Symbol{Name: td.Name, Kind: SymbolType, Type: aliases[i], Line: td.Line, Decl: td}); err != nil {
			return err
		}
	}
	for i, td := range typeDecls {
		target, err := g.resolveType(scope, td.Type, td.Name)
		if err != nil {
			return err
		}
		g.in.SetAliasTarget(aliases[i], target)
	}
	for i, td := range typeDecls {
		if err := g.checkAlias(td, aliases[i]); err != nil {
			return err
		}
	}

	for _, fn := range funcs {
		sig, err := g.signature(scope, fn.Head)
		if err != nil {
			return err
		}
		name := fn.Head.Name
		if qual != "" {
			name = qual + "$" + name
		}
		sym := &Symbol{
			Name:      fn.Head.Name,
			Kind:      SymbolFunction,
			Type:      sig.Result,
			Signature: sig,
			Line:      fn.Head.Line,
			Decl:      fn,
			QualName:  name,
		}
		if _, err := g.t.Declare(scope, sym); err != nil {
			return err
		}
	}

	for i, p := range params {
		sym := &Symbol{Name: p.Name, Kind: SymbolParam, Type: paramTypes[i], Line: p.Line, Decl: p, Index: i}
		if _, err := g.t.Declare(scope, sym); err != nil {
			return err
		}
	}

	global := g.t.Scopes.Get(scope).Kind == ScopeProgram
	for i, v := range vars {
		typ, err := g.resolveType(scope, v.Type, v.Name)
		if err != nil {
			return err
		}
		sym := &Symbol{Name: v.Name, Kind: SymbolVar, Type: typ, Line: v.Line, Off: v.Off, Decl: v, Global: global, Index: len(params) + i}
		if _, err := g.t.Declare(scope, sym); err != nil {
			return err
		}
	}
	return nil
}

func (g *gatherer) signature(scope ScopeID, head *ast.FunctionHead) (*Signature, error) {
	sig := &Signature{Result: g.in.Builtins().Void}
	for _, p := range head.Params {
		typ, err := g.resolveType(scope, p.Type, head.Name+"$"+p.Name)
		if err != nil {
			return nil, err
		}
		sig.Params = append(sig.Params, typ)
	}
	if head.Result != nil {
		typ, err := g.resolveType(scope, head.Result, head.Name+"$result")
		if err != nil {
			return nil, err
		}
		sig.Result = typ
	}
	return sig, nil
}
