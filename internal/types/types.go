// Package types interns the types of die programs.
//
// Primitive and array types are structural and deduplicated by descriptor.
// Records are nominal: every "record of" in source yields its own type.
// Aliases introduced by "type" declarations are interned before their
// target is known so that records may refer to themselves.
package types

import "fmt"

// TypeID uniquely identifies a type inside the interner.
type TypeID uint32

// NoTypeID marks the absence of a type.
const NoTypeID TypeID = 0

// Kind enumerates all supported kinds of types.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindVoid
	KindInt
	KindChar
	KindBool
	KindNull
	KindArray
	KindRecord
	KindAlias
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindVoid:
		return "void"
	case KindInt:
		return "int"
	case KindChar:
		return "char"
	case KindBool:
		return "bool"
	case KindNull:
		return "null"
	case KindArray:
		return "array"
	case KindRecord:
		return "record"
	case KindAlias:
		return "alias"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// ArrayDynamicLength marks arrays whose length is chosen at allocation.
const ArrayDynamicLength uint32 = 0

// Type is a compact descriptor for any supported type.
type Type struct {
	Kind    Kind
	Elem    TypeID // array element
	Count   uint32 // array length, ArrayDynamicLength if unknown
	Payload uint32 // index into records or aliases
}

// MakeArray returns an array descriptor.
func MakeArray(elem TypeID, count uint32) Type {
	return Type{Kind: KindArray, Elem: elem, Count: count}
}

// Field is a named record member.
type Field struct {
	Name string
	Type TypeID
	Line int
}

// RecordInfo describes a nominal record type.
type RecordInfo struct {
	Name   string
	Fields []Field
}

// AliasInfo binds a type name to its target.
type AliasInfo struct {
	Name   string
	Target TypeID
}

// IsReference reports whether values of kind k are heap references.
func (k Kind) IsReference() bool {
	return k == KindArray || k == KindRecord
}
