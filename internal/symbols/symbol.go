package symbols

import (
	"diec/internal/ast"
	"diec/internal/types"
)

// SymbolKind classifies the semantic meaning of a symbol.
type SymbolKind uint8

const (
	SymbolInvalid SymbolKind = iota
	SymbolVar
	SymbolParam
	SymbolFunction
	SymbolType
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolVar:
		return "variable"
	case SymbolParam:
		return "parameter"
	case SymbolFunction:
		return "function"
	case SymbolType:
		return "type"
	default:
		return "invalid"
	}
}

// IsValue reports whether symbols of kind k can be read and assigned.
func (k SymbolKind) IsValue() bool {
	return k == SymbolVar || k == SymbolParam
}

// Signature is the parameter and result types of a function.
// Result is the void type for functions without a result.
type Signature struct {
	Params []types.TypeID
	Result types.TypeID
}

// Symbol is one declared name.
type Symbol struct {
	Name      string
	Kind      SymbolKind
	Type      types.TypeID // declared type; the alias for SymbolType
	Signature *Signature   // SymbolFunction only
	Line      int
	Off       uint32 // byte offset of the declared name; variables only
	Scope     ScopeID
	Decl      ast.Node
	// QualName flattens nested functions as outer$inner.
	QualName string
	// Global marks variables declared at program level.
	Global bool
	// Index is the position of a parameter or local within its function.
	Index int
}
