package symbols

import (
	"fmt"

	"diec/internal/ast"
	"diec/internal/diag"
	"diec/internal/types"
)

// Table aggregates symbol-related arenas and shared resources.
type Table struct {
	Scopes  *Scopes
	Symbols *Symbols
	Types   *types.Interner
	Root    ScopeID

	scopeOf map[ast.Node]ScopeID
	declOf  map[ast.Node]SymbolID
}

// NewTable builds a fresh table over the given interner.
func NewTable(in *types.Interner) *Table {
	if in == nil {
		in = types.NewInterner()
	}
	return &Table{
		Scopes:  NewScopes(0),
		Symbols: NewSymbols(0),
		Types:   in,
		scopeOf: make(map[ast.Node]ScopeID),
		declOf:  make(map[ast.Node]SymbolID),
	}
}

// ScopeOf returns the scope introduced by a Program, FunctionDecl or Block.
func (t *Table) ScopeOf(n ast.Node) ScopeID {
	return t.scopeOf[n]
}

// SymbolOf returns the symbol declared by a declaration or parameter node.
func (t *Table) SymbolOf(n ast.Node) SymbolID {
	return t.declOf[n]
}

// Symbol is shorthand for t.Symbols.Get.
func (t *Table) Symbol(id SymbolID) *Symbol {
	return t.Symbols.Get(id)
}

func (t *Table) newScope(kind ScopeKind, parent ScopeID, owner ast.Node) ScopeID {
	id := t.Scopes.New(kind, parent, owner)
	t.scopeOf[owner] = id
	if kind == ScopeProgram {
		t.Root = id
	}
	return id
}

// Declare adds sym to scope. Redeclaring a name in the same scope is
// SemaDuplicateSymbol citing both lines.
func (t *Table) Declare(scope ScopeID, sym *Symbol) (SymbolID, error) {
	s := t.Scopes.Get(scope)
	if s == nil {
		return NoSymbolID, fmt.Errorf("symbols: declare %q in invalid scope %d", sym.Name, scope)
	}
	if prev, ok := s.NameIndex[sym.Name]; ok {
		return NoSymbolID, t.duplicate(prev, sym.Name, sym.Kind, sym.Line)
	}
	sym.Scope = scope
	id := t.Symbols.New(sym)
	s.NameIndex[sym.Name] = id
	s.Symbols = append(s.Symbols, id)
	if sym.Decl != nil {
		t.declOf[sym.Decl] = id
	}
	return id, nil
}

// bind enters an existing symbol under its name in another scope.
func (t *Table) bind(scope ScopeID, id SymbolID) {
	if s, sym := t.Scopes.Get(scope), t.Symbols.Get(id); s != nil && sym != nil {
		s.NameIndex[sym.Name] = id
	}
}

func (t *Table) duplicate(prev SymbolID, name string, kind SymbolKind, line int) error {
	old := t.Symbols.Get(prev)
	first, second := old.Line, line
	if first > second {
		first, second = second, first
	}
	return diag.Errorf(diag.SemaDuplicateSymbol, second, "%s %q is already declared in this scope", kind, name).
		WithNote(first, fmt.Sprintf("previous declaration of %s %q", old.Kind, name))
}

// LookupLocal finds name in scope only.
func (t *Table) LookupLocal(scope ScopeID, name string) SymbolID {
	if s := t.Scopes.Get(scope); s != nil {
		return s.NameIndex[name]
	}
	return NoSymbolID
}

// Lookup finds name in scope or the nearest enclosing scope declaring it.
func (t *Table) Lookup(scope ScopeID, name string) SymbolID {
	for scope.IsValid() {
		s := t.Scopes.Get(scope)
		if s == nil {
			break
		}
		if id, ok := s.NameIndex[name]; ok {
			return id
		}
		scope = s.Parent
	}
	return NoSymbolID
}

// EnclosingFunction returns the nearest function scope containing scope.
func (t *Table) EnclosingFunction(scope ScopeID) ScopeID {
	for scope.IsValid() {
		s := t.Scopes.Get(scope)
		if s == nil {
			break
		}
		if s.Kind == ScopeFunction {
			return scope
		}
		scope = s.Parent
	}
	return NoScopeID
}

// Functions lists every function symbol in declaration order.
func (t *Table) Functions() []SymbolID {
	var out []SymbolID
	for i, sym := range t.Symbols.Data() {
		if sym.Kind == SymbolFunction {
			out = append(out, SymbolID(i+1)) //nolint:gosec // arena index
		}
	}
	return out
}

// Globals lists program-level variables in declaration order.
func (t *Table) Globals() []SymbolID {
	var out []SymbolID
	for i, sym := range t.Symbols.Data() {
		if sym.Global {
			out = append(out, SymbolID(i+1)) //nolint:gosec // arena index
		}
	}
	return out
}

// Validate checks arena consistency: parents precede children and every
// indexed symbol points back at its scope.
func (t *Table) Validate() error {
	for i := 1; i <= t.Scopes.Len(); i++ {
		id := ScopeID(i) //nolint:gosec // arena index
		s := t.Scopes.Get(id)
		if s.Parent >= id {
			return fmt.Errorf("scope %d: parent %d does not precede it", id, s.Parent)
		}
		for _, sid := range s.Symbols {
			if sym := t.Symbols.Get(sid); sym == nil || sym.Scope != id {
				return fmt.Errorf("scope %d: symbol %d owned elsewhere", id, sid)
			}
		}
	}
	return nil
}
