package types

import (
	"fmt"

	"fortio.org/safecast"
)

// Builtins stores TypeIDs for the primitive types.
type Builtins struct {
	Invalid TypeID
	Void    TypeID
	Int     TypeID
	Char    TypeID
	Bool    TypeID
	Null    TypeID
}

// Interner provides stable TypeIDs by hashing structural descriptors.
type Interner struct {
	types    []Type
	index    map[typeKey]TypeID
	builtins Builtins
	records  []RecordInfo
	aliases  []AliasInfo
}

type typeKey struct {
	Kind    Kind
	Elem    TypeID
	Count   uint32
	Payload uint32
}

// NewInterner constructs an interner seeded with built-in primitives.
func NewInterner() *Interner {
	in := &Interner{
		index: make(map[typeKey]TypeID, 32),
	}
	in.records = append(in.records, RecordInfo{}) // reserve 0 as invalid sentinel
	in.aliases = append(in.aliases, AliasInfo{})
	in.builtins.Invalid = in.internRaw(Type{Kind: KindInvalid})
	in.builtins.Void = in.Intern(Type{Kind: KindVoid})
	in.builtins.Int = in.Intern(Type{Kind: KindInt})
	in.builtins.Char = in.Intern(Type{Kind: KindChar})
	in.builtins.Bool = in.Intern(Type{Kind: KindBool})
	in.builtins.Null = in.Intern(Type{Kind: KindNull})
	return in
}

// Builtins returns TypeIDs for primitive types.
func (in *Interner) Builtins() Builtins {
	return in.builtins
}

// Intern ensures the provided descriptor has a stable TypeID.
func (in *Interner) Intern(t Type) TypeID {
	if t.Kind == KindInvalid {
		return NoTypeID
	}
	if id, ok := in.index[typeKey(t)]; ok {
		return id
	}
	return in.internRaw(t)
}

func (in *Interner) internRaw(t Type) TypeID {
	n, err := safecast.Conv[uint32](len(in.types))
	if err != nil {
		panic(fmt.Errorf("len(types) overflow: %w", err))
	}
	id := TypeID(n)
	in.types = append(in.types, t)
	in.index[typeKey(t)] = id
	return id
}

// Lookup returns the descriptor for a TypeID.
func (in *Interner) Lookup(id TypeID) (Type, bool) {
	if id == NoTypeID || int(id) >= len(in.types) {
		return Type{}, false
	}
	return in.types[id], true
}

// MustLookup panics when id is invalid.
func (in *Interner) MustLookup(id TypeID) Type {
	tt, ok := in.Lookup(id)
	if !ok {
		panic("types: invalid TypeID")
	}
	return tt
}

// Len returns the number of interned types including the invalid sentinel.
func (in *Interner) Len() int { return len(in.types) }

// RegisterRecord creates a new nominal record type. Fields are attached
// later with SetRecordFields.
func (in *Interner) RegisterRecord(name string) TypeID {
	slot := in.appendRecord(RecordInfo{Name: name})
	return in.internRaw(Type{Kind: KindRecord, Payload: slot})
}

func (in *Interner) appendRecord(info RecordInfo) uint32 {
	n, err := safecast.Conv[uint32](len(in.records))
	if err != nil {
		panic(fmt.Errorf("record info overflow: %w", err))
	}
	in.records = append(in.records, info)
	return n
}

// SetRecordFields stores the fields of a record type.
func (in *Interner) SetRecordFields(id TypeID, fields []Field) {
	if info := in.recordInfo(id); info != nil {
		info.Fields = append([]Field(nil), fields...)
	}
}

// RecordInfo returns the record metadata of id, following aliases.
func (in *Interner) RecordInfo(id TypeID) (*RecordInfo, bool) {
	info := in.recordInfo(in.Resolve(id))
	return info, info != nil
}

func (in *Interner) recordInfo(id TypeID) *RecordInfo {
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindRecord {
		return nil
	}
	if tt.Payload == 0 || int(tt.Payload) >= len(in.records) {
		return nil
	}
	return &in.records[tt.Payload]
}

// Records lists every record type in registration order.
func (in *Interner) Records() []TypeID {
	var out []TypeID
	for i, tt := range in.types {
		if tt.Kind == KindRecord {
			out = append(out, TypeID(i)) //nolint:gosec // bounded by internRaw
		}
	}
	return out
}

// FieldType returns the type of the named field of a record.
func (in *Interner) FieldType(record TypeID, name string) (TypeID, bool) {
	info, ok := in.RecordInfo(record)
	if !ok {
		return NoTypeID, false
	}
	for _, f := range info.Fields {
		if f.Name == name {
			return f.Type, true
		}
	}
	return NoTypeID, false
}

// RegisterAlias creates an alias with an unbound target.
func (in *Interner) RegisterAlias(name string) TypeID {
	n, err := safecast.Conv[uint32](len(in.aliases))
	if err != nil {
		panic(fmt.Errorf("alias info overflow: %w", err))
	}
	in.aliases = append(in.aliases, AliasInfo{Name: name})
	return in.internRaw(Type{Kind: KindAlias, Payload: n})
}

// SetAliasTarget binds an alias to its target type.
func (in *Interner) SetAliasTarget(alias, target TypeID) {
	if info := in.aliasInfo(alias); info != nil {
		info.Target = target
	}
}

// AliasInfo returns the alias metadata of id.
func (in *Interner) AliasInfo(id TypeID) (*AliasInfo, bool) {
	info := in.aliasInfo(id)
	return info, info != nil
}

func (in *Interner) aliasInfo(id TypeID) *AliasInfo {
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindAlias {
		return nil
	}
	if tt.Payload == 0 || int(tt.Payload) >= len(in.aliases) {
		return nil
	}
	return &in.aliases[tt.Payload]
}

// Resolve follows alias chains. It returns NoTypeID for unbound aliases and
// for cycles.
func (in *Interner) Resolve(id TypeID) TypeID {
	for range len(in.aliases) + 1 {
		info := in.aliasInfo(id)
		if info == nil {
			return id
		}
		id = info.Target
	}
	return NoTypeID
}

// KindOf returns the kind of id after resolving aliases.
func (in *Interner) KindOf(id TypeID) Kind {
	tt, ok := in.Lookup(in.Resolve(id))
	if !ok {
		return KindInvalid
	}
	return tt.Kind
}
