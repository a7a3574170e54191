package symbols

import (
	"fmt"

	"fortio.org/safecast"

	"diec/internal/ast"
)

// ScopeID and SymbolID index their arenas; 0 is the reserved "none" slot.
type (
	ScopeID  uint32
	SymbolID uint32
)

const (
	NoScopeID  ScopeID  = 0
	NoSymbolID SymbolID = 0
)

func (id ScopeID) IsValid() bool  { return id != NoScopeID }
func (id SymbolID) IsValid() bool { return id != NoSymbolID }

// arena is a slice with slot 0 held by a zero sentinel.
type arena[T any, ID ~uint32] struct {
	data []T
	name string
}

func newArena[T any, ID ~uint32](name string, capacity uint32) arena[T, ID] {
	return arena[T, ID]{data: make([]T, 1, capacity+1), name: name}
}

func (a *arena[T, ID]) push(v T) ID {
	n, err := safecast.Conv[uint32](len(a.data))
	if err != nil {
		panic(fmt.Errorf("%s arena overflow: %w", a.name, err))
	}
	a.data = append(a.data, v)
	return ID(n)
}

func (a *arena[T, ID]) get(id ID) *T {
	if id == 0 || int(id) >= len(a.data) {
		return nil
	}
	return &a.data[id]
}

func (a *arena[T, ID]) len() int { return len(a.data) - 1 }

// Scopes is the scope arena of one compilation unit.
type Scopes struct{ arena[Scope, ScopeID] }

func NewScopes(capacity uint32) *Scopes {
	return &Scopes{newArena[Scope, ScopeID]("scopes", max(capacity, 16))}
}

// New allocates a scope under parent and links it into the parent's
// Children.
func (s *Scopes) New(kind ScopeKind, parent ScopeID, owner ast.Node) ScopeID {
	id := s.push(Scope{
		Kind:      kind,
		Parent:    parent,
		Owner:     owner,
		NameIndex: make(map[string]SymbolID),
	})
	if p := s.get(parent); p != nil {
		p.Children = append(p.Children, id)
	}
	return id
}

func (s *Scopes) Get(id ScopeID) *Scope { return s.get(id) }

// Len excludes the sentinel.
func (s *Scopes) Len() int { return s.len() }

// Symbols is the symbol arena of one compilation unit.
type Symbols struct{ arena[Symbol, SymbolID] }

func NewSymbols(capacity uint32) *Symbols {
	return &Symbols{newArena[Symbol, SymbolID]("symbols", max(capacity, 32))}
}

// New copies sym into the arena.
func (s *Symbols) New(sym *Symbol) SymbolID {
	if sym == nil {
		panic("symbols.New: nil symbol")
	}
	return s.push(*sym)
}

func (s *Symbols) Get(id SymbolID) *Symbol { return s.get(id) }

func (s *Symbols) Len() int { return s.len() }

// Data is the arena storage without the sentinel; Data()[i] has ID i+1.
func (s *Symbols) Data() []Symbol { return s.data[1:] }
