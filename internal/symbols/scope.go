package symbols

import "diec/internal/ast"

// ScopeKind enumerates supported scope categories.
type ScopeKind uint8

const (
	ScopeInvalid  ScopeKind = iota
	ScopeProgram            // top-level declarations
	ScopeFunction           // params, locals and the function itself
	ScopeBlock              // { }, if and while branches
)

func (k ScopeKind) String() string {
	switch k {
	case ScopeProgram:
		return "program"
	case ScopeFunction:
		return "function"
	case ScopeBlock:
		return "block"
	default:
		return "invalid"
	}
}

// Scope models a lexical scope. Parent is an arena index, never a pointer.
type Scope struct {
	Kind      ScopeKind
	Parent    ScopeID
	Owner     ast.Node
	NameIndex map[string]SymbolID
	Symbols   []SymbolID
	Children  []ScopeID
}
