// Package sema type-checks die programs.
//
// Check runs over a tree whose names have been gathered by the symbols
// package. Validate composes the whole semantic pipeline: name weeding,
// return-path weeding, symbol gathering and type checking, in that order,
// stopping at the first error.
package sema

import (
	"fmt"

	"diec/internal/ast"
	"diec/internal/symbols"
	"diec/internal/types"
	"diec/internal/weeder"
)

// Info stores semantic artefacts produced by the checker, keyed by node.
type Info struct {
	Program *ast.Program
	Table   *symbols.Table
	Types   *types.Interner
	// ExprTypes holds the resolved type of every checked expression.
	ExprTypes map[ast.Expr]types.TypeID
	// Uses maps identifiers, callees included, to their symbols.
	Uses map[*ast.Identifier]symbols.SymbolID
}

// TypeOf returns the annotated type of e.
func (info *Info) TypeOf(e ast.Expr) types.TypeID {
	return info.ExprTypes[e]
}

// SymbolOf returns the symbol an identifier resolved to.
func (info *Info) SymbolOf(id *ast.Identifier) *symbols.Symbol {
	return info.Table.Symbol(info.Uses[id])
}

func (info *Info) annotate(e ast.Expr, t types.TypeID) {
	if _, dup := info.ExprTypes[e]; dup {
		panic(fmt.Sprintf("sema: expression at line %d annotated twice", e.Pos()))
	}
	info.ExprTypes[e] = t
}

// Validate runs every semantic pass over prog with a fresh interner.
func Validate(prog *ast.Program) (*Info, error) {
	return ValidateWith(prog, types.NewInterner(), nil)
}

// PassHook is called before each semantic pass runs.
type PassHook func(name string) func()

// ValidateWith is Validate with an explicit interner. hook, if set,
// brackets every pass; the driver uses it for timings and tracing.
func ValidateWith(prog *ast.Program, in *types.Interner, hook PassHook) (*Info, error) {
	run := func(name string, fn func() error) error {
		if hook != nil {
			defer hook(name)()
		}
		return fn()
	}
	if err := run("names", func() error { return weeder.CheckNames(prog) }); err != nil {
		return nil, err
	}
	if err := run("returns", func() error { return weeder.CheckReturns(prog) }); err != nil {
		return nil, err
	}
	var table *symbols.Table
	if err := run("symbols", func() (err error) {
		table, err = symbols.Gather(prog, in)
		return err
	}); err != nil {
		return nil, err
	}
	var info *Info
	if err := run("types", func() (err error) {
		info, err = Check(prog, table)
		return err
	}); err != nil {
		return nil, err
	}
	return info, nil
}

// Check type-checks prog against the scopes in table.
func Check(prog *ast.Program, table *symbols.Table) (*Info, error) {
	info := &Info{
		Program:   prog,
		Table:     table,
		Types:     table.Types,
		ExprTypes: make(map[ast.Expr]types.TypeID),
		Uses:      make(map[*ast.Identifier]symbols.SymbolID),
	}
	tc := &typeChecker{info: info, table: table, types: table.Types}
	if err := ast.Walk(prog, tc); err != nil {
		return nil, err
	}
	return info, nil
}

type typeChecker struct {
	info   *Info
	table  *symbols.Table
	types  *types.Interner
	scopes []symbols.ScopeID
	funcs  []*symbols.Symbol
}

func (tc *typeChecker) scope() symbols.ScopeID {
	return tc.scopes[len(tc.scopes)-1]
}

func (tc *typeChecker) Enter(n ast.Node) (ast.Action, error) {
	switch n := n.(type) {
	case *ast.Program, *ast.Block:
		tc.scopes = append(tc.scopes, tc.table.ScopeOf(n))
		return ast.Descend, nil
	case *ast.FunctionDecl:
		tc.scopes = append(tc.scopes, tc.table.ScopeOf(n))
		tc.funcs = append(tc.funcs, tc.table.Symbol(tc.table.SymbolOf(n)))
		return ast.Descend, nil
	case ast.Stmt:
		return ast.Descend, tc.checkStmt(n)
	}
	// declarations were typed by the gatherer; expressions by checkStmt
	return ast.SkipChildren, nil
}

func (tc *typeChecker) Exit(n ast.Node) error {
	switch n.(type) {
	case *ast.Program, *ast.Block:
		tc.scopes = tc.scopes[:len(tc.scopes)-1]
	case *ast.FunctionDecl:
		tc.scopes = tc.scopes[:len(tc.scopes)-1]
		tc.funcs = tc.funcs[:len(tc.funcs)-1]
	}
	return nil
}

func (tc *typeChecker) label(t types.TypeID) string {
	return types.Label(tc.types, t)
}
