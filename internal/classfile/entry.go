package classfile

import (
	"fmt"
	"math"
)

// Tag is the constant pool entry tag byte.
type Tag uint8

const (
	TagUtf8               Tag = 1
	TagInteger            Tag = 3
	TagFloat              Tag = 4
	TagLong               Tag = 5
	TagDouble             Tag = 6
	TagClass              Tag = 7
	TagString             Tag = 8
	TagFieldRef           Tag = 9
	TagMethodRef          Tag = 10
	TagInterfaceMethodRef Tag = 11
	TagNameAndType        Tag = 12
	TagMethodHandle       Tag = 15
	TagMethodType         Tag = 16
	TagInvokeDynamic      Tag = 18
)

var tagNames = map[Tag]string{
	TagUtf8: "Utf8", TagInteger: "Integer", TagFloat: "Float", TagLong: "Long",
	TagDouble: "Double", TagClass: "Class", TagString: "String", TagFieldRef: "Fieldref",
	TagMethodRef: "Methodref", TagInterfaceMethodRef: "InterfaceMethodref",
	TagNameAndType: "NameAndType", TagMethodHandle: "MethodHandle",
	TagMethodType: "MethodType", TagInvokeDynamic: "InvokeDynamic",
}

func (t Tag) String() string {
	if s, ok := tagNames[t]; ok {
		return s
	}
	return fmt.Sprintf("Tag(%d)", t)
}

// Width returns the number of pool slots an entry with tag t occupies.
func (t Tag) Width() uint16 {
	if t == TagLong || t == TagDouble {
		return 2
	}
	return 1
}

// Entry is one constant pool entry. References to other entries are pool
// indices.
type Entry interface {
	Tag() Tag
	// Refs lists the pool indices the entry points at.
	Refs() []uint16
	writePayload(w *Writer)
	key() poolKey
}

// poolKey identifies an entry for deduplication: tag plus its payload.
type poolKey struct {
	tag  Tag
	a, b uint64
	s    string
}

type Utf8 struct{ Value string }

type Integer struct{ Value int32 }

type Float struct{ Value float32 }

type Long struct{ Value int64 }

type Double struct{ Value float64 }

type Class struct{ NameIndex uint16 }

type String struct{ Utf8Index uint16 }

type FieldRef struct{ ClassIndex, NameAndTypeIndex uint16 }

type MethodRef struct{ ClassIndex, NameAndTypeIndex uint16 }

type InterfaceMethodRef struct{ ClassIndex, NameAndTypeIndex uint16 }

type NameAndType struct{ NameIndex, DescriptorIndex uint16 }

// MethodHandle reference kinds (JVMS 5.4.3.5).
const (
	RefGetField         uint8 = 1
	RefGetStatic        uint8 = 2
	RefPutField         uint8 = 3
	RefPutStatic        uint8 = 4
	RefInvokeVirtual    uint8 = 5
	RefInvokeStatic     uint8 = 6
	RefInvokeSpecial    uint8 = 7
	RefNewInvokeSpecial uint8 = 8
	RefInvokeInterface  uint8 = 9
)

type MethodHandle struct {
	Kind           uint8
	ReferenceIndex uint16
}

type MethodType struct{ DescriptorIndex uint16 }

// InvokeDynamic.BootstrapIndex indexes the BootstrapMethods attribute, not
// the pool.
type InvokeDynamic struct{ BootstrapIndex, NameAndTypeIndex uint16 }

func (Utf8) Tag() Tag               { return TagUtf8 }
func (Integer) Tag() Tag            { return TagInteger }
func (Float) Tag() Tag              { return TagFloat }
func (Long) Tag() Tag               { return TagLong }
func (Double) Tag() Tag             { return TagDouble }
func (Class) Tag() Tag              { return TagClass }
func (String) Tag() Tag             { return TagString }
func (FieldRef) Tag() Tag           { return TagFieldRef }
func (MethodRef) Tag() Tag          { return TagMethodRef }
func (InterfaceMethodRef) Tag() Tag { return TagInterfaceMethodRef }
func (NameAndType) Tag() Tag        { return TagNameAndType }
func (MethodHandle) Tag() Tag       { return TagMethodHandle }
func (MethodType) Tag() Tag         { return TagMethodType }
func (InvokeDynamic) Tag() Tag      { return TagInvokeDynamic }

func (Utf8) Refs() []uint16                 { return nil }
func (Integer) Refs() []uint16              { return nil }
func (Float) Refs() []uint16                { return nil }
func (Long) Refs() []uint16                 { return nil }
func (Double) Refs() []uint16               { return nil }
func (e Class) Refs() []uint16              { return []uint16{e.NameIndex} }
func (e String) Refs() []uint16             { return []uint16{e.Utf8Index} }
func (e FieldRef) Refs() []uint16           { return []uint16{e.ClassIndex, e.NameAndTypeIndex} }
func (e MethodRef) Refs() []uint16          { return []uint16{e.ClassIndex, e.NameAndTypeIndex} }
func (e InterfaceMethodRef) Refs() []uint16 { return []uint16{e.ClassIndex, e.NameAndTypeIndex} }
func (e NameAndType) Refs() []uint16        { return []uint16{e.NameIndex, e.DescriptorIndex} }
func (e MethodHandle) Refs() []uint16       { return []uint16{e.ReferenceIndex} }
func (e MethodType) Refs() []uint16         { return []uint16{e.DescriptorIndex} }
func (e InvokeDynamic) Refs() []uint16      { return []uint16{e.NameAndTypeIndex} }

func (e Utf8) writePayload(w *Writer) {
	b := modifiedUTF8(e.Value)
	w.Len2(len(b), "utf8 length")
	w.Raw(b)
}
func (e Integer) writePayload(w *Writer) { w.U4(uint32(e.Value)) } //nolint:gosec // two's complement bits
func (e Float) writePayload(w *Writer)   { w.U4(math.Float32bits(e.Value)) }
func (e Long) writePayload(w *Writer)    { w.U8(uint64(e.Value)) } //nolint:gosec // two's complement bits
func (e Double) writePayload(w *Writer)  { w.U8(math.Float64bits(e.Value)) }
func (e Class) writePayload(w *Writer)   { w.U2(e.NameIndex) }
func (e String) writePayload(w *Writer)  { w.U2(e.Utf8Index) }
func (e FieldRef) writePayload(w *Writer) {
	w.U2(e.ClassIndex)
	w.U2(e.NameAndTypeIndex)
}
func (e MethodRef) writePayload(w *Writer) {
	w.U2(e.ClassIndex)
	w.U2(e.NameAndTypeIndex)
}
func (e InterfaceMethodRef) writePayload(w *Writer) {
	w.U2(e.ClassIndex)
	w.U2(e.NameAndTypeIndex)
}
func (e NameAndType) writePayload(w *Writer) {
	w.U2(e.NameIndex)
	w.U2(e.DescriptorIndex)
}
func (e MethodHandle) writePayload(w *Writer) {
	w.U1(e.Kind)
	w.U2(e.ReferenceIndex)
}
func (e MethodType) writePayload(w *Writer) { w.U2(e.DescriptorIndex) }
func (e InvokeDynamic) writePayload(w *Writer) {
	w.U2(e.BootstrapIndex)
	w.U2(e.NameAndTypeIndex)
}

func (e Utf8) key() poolKey    { return poolKey{tag: TagUtf8, s: e.Value} }
func (e Integer) key() poolKey { return poolKey{tag: TagInteger, a: uint64(uint32(e.Value))} } //nolint:gosec // bits
func (e Float) key() poolKey   { return poolKey{tag: TagFloat, a: uint64(math.Float32bits(e.Value))} }
func (e Long) key() poolKey    { return poolKey{tag: TagLong, a: uint64(e.Value)} } //nolint:gosec // bits
func (e Double) key() poolKey  { return poolKey{tag: TagDouble, a: math.Float64bits(e.Value)} }
func (e Class) key() poolKey   { return poolKey{tag: TagClass, a: uint64(e.NameIndex)} }
func (e String) key() poolKey  { return poolKey{tag: TagString, a: uint64(e.Utf8Index)} }
func (e FieldRef) key() poolKey {
	return poolKey{tag: TagFieldRef, a: uint64(e.ClassIndex), b: uint64(e.NameAndTypeIndex)}
}
func (e MethodRef) key() poolKey {
	return poolKey{tag: TagMethodRef, a: uint64(e.ClassIndex), b: uint64(e.NameAndTypeIndex)}
}
func (e InterfaceMethodRef) key() poolKey {
	return poolKey{tag: TagInterfaceMethodRef, a: uint64(e.ClassIndex), b: uint64(e.NameAndTypeIndex)}
}
func (e NameAndType) key() poolKey {
	return poolKey{tag: TagNameAndType, a: uint64(e.NameIndex), b: uint64(e.DescriptorIndex)}
}
func (e MethodHandle) key() poolKey {
	return poolKey{tag: TagMethodHandle, a: uint64(e.Kind), b: uint64(e.ReferenceIndex)}
}
func (e MethodType) key() poolKey { return poolKey{tag: TagMethodType, a: uint64(e.DescriptorIndex)} }
func (e InvokeDynamic) key() poolKey {
	return poolKey{tag: TagInvokeDynamic, a: uint64(e.BootstrapIndex), b: uint64(e.NameAndTypeIndex)}
}
