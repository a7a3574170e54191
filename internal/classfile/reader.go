package classfile

import (
	"encoding/binary"
	"math"

	"diec/internal/diag"
)

type reader struct {
	b   []byte
	off int
}

func (r *reader) need(n int) {
	if r.off+n > len(r.b) {
		invariant(diag.FmtMalformed, "truncated class file at offset %d", r.off)
	}
}

func (r *reader) u1() uint8 {
	r.need(1)
	v := r.b[r.off]
	r.off++
	return v
}

func (r *reader) u2() uint16 {
	r.need(2)
	v := binary.BigEndian.Uint16(r.b[r.off:])
	r.off += 2
	return v
}

func (r *reader) u4() uint32 {
	r.need(4)
	v := binary.BigEndian.Uint32(r.b[r.off:])
	r.off += 4
	return v
}

func (r *reader) u8() uint64 {
	r.need(8)
	v := binary.BigEndian.Uint64(r.b[r.off:])
	r.off += 8
	return v
}

func (r *reader) bytes(n int) []byte {
	r.need(n)
	v := r.b[r.off : r.off+n]
	r.off += n
	return v
}

// Parse decodes a class file. The pool is rebuilt through Insert, so the
// result satisfies the same reference rules as an emitted one.
func Parse(data []byte) (cf *ClassFile, err error) {
	defer Catch(&err)
	r := &reader{b: data}
	if r.u4() != Magic {
		invariant(diag.FmtMalformed, "bad magic")
	}
	cf = &ClassFile{Pool: NewPool()}
	cf.Minor = r.u2()
	cf.Major = r.u2()
	count := r.u2()
	for cf.Pool.Count() < count {
		cf.Pool.Insert(r.entry())
	}
	if cf.Pool.Count() != count {
		invariant(diag.FmtMalformed, "constant pool count %d does not match entries", count)
	}
	cf.AccessFlags = AccessFlags(r.u2())
	cf.ThisClass = r.u2()
	cf.SuperClass = r.u2()
	for range r.u2() {
		cf.Interfaces = append(cf.Interfaces, r.u2())
	}
	for range r.u2() {
		flags, name, desc, attrs := r.member()
		cf.Fields = append(cf.Fields, Field{AccessFlags: flags, NameIndex: name, DescriptorIndex: desc, Attributes: attrs})
	}
	for range r.u2() {
		flags, name, desc, attrs := r.member()
		cf.Methods = append(cf.Methods, Method{AccessFlags: flags, NameIndex: name, DescriptorIndex: desc, Attributes: attrs})
	}
	cf.Attributes = r.attributes()
	if r.off != len(data) {
		invariant(diag.FmtMalformed, "%d trailing bytes", len(data)-r.off)
	}
	return cf, nil
}

func (r *reader) entry() Entry {
	switch tag := Tag(r.u1()); tag {
	case TagUtf8:
		s, ok := decodeModifiedUTF8(r.bytes(int(r.u2())))
		if !ok {
			invariant(diag.FmtMalformed, "bad modified UTF-8")
		}
		return Utf8{Value: s}
	case TagInteger:
		return Integer{Value: int32(r.u4())} //nolint:gosec // two's complement bits
	case TagFloat:
		return Float{Value: math.Float32frombits(r.u4())}
	case TagLong:
		return Long{Value: int64(r.u8())} //nolint:gosec // two's complement bits
	case TagDouble:
		return Double{Value: math.Float64frombits(r.u8())}
	case TagClass:
		return Class{NameIndex: r.u2()}
	case TagString:
		return String{Utf8Index: r.u2()}
	case TagFieldRef:
		return FieldRef{ClassIndex: r.u2(), NameAndTypeIndex: r.u2()}
	case TagMethodRef:
		return MethodRef{ClassIndex: r.u2(), NameAndTypeIndex: r.u2()}
	case TagInterfaceMethodRef:
		return InterfaceMethodRef{ClassIndex: r.u2(), NameAndTypeIndex: r.u2()}
	case TagNameAndType:
		return NameAndType{NameIndex: r.u2(), DescriptorIndex: r.u2()}
	case TagMethodHandle:
		return MethodHandle{Kind: r.u1(), ReferenceIndex: r.u2()}
	case TagMethodType:
		return MethodType{DescriptorIndex: r.u2()}
	case TagInvokeDynamic:
		return InvokeDynamic{BootstrapIndex: r.u2(), NameAndTypeIndex: r.u2()}
	default:
		invariant(diag.FmtMalformed, "unknown constant pool tag %d", tag)
		return nil
	}
}

func (r *reader) member() (AccessFlags, uint16, uint16, []Attribute) {
	flags := AccessFlags(r.u2())
	name := r.u2()
	desc := r.u2()
	return flags, name, desc, r.attributes()
}

func (r *reader) attributes() []Attribute {
	var out []Attribute
	for range r.u2() {
		name := r.u2()
		n := r.u4()
		if uint64(n) > uint64(len(r.b)) {
			invariant(diag.FmtMalformed, "attribute length %d exceeds file", n)
		}
		out = append(out, Attribute{NameIndex: name, Info: r.bytes(int(n))})
	}
	return out
}

// Utf8At returns the text of the Utf8 entry at index.
func (p *Pool) Utf8At(index uint16) (string, bool) {
	e, ok := p.byIndex[index]
	if !ok {
		return "", false
	}
	u, ok := e.(Utf8)
	return u.Value, ok
}

// ClassName returns the name of the Class entry at index.
func (p *Pool) ClassName(index uint16) (string, bool) {
	e, ok := p.byIndex[index]
	if !ok {
		return "", false
	}
	c, ok := e.(Class)
	if !ok {
		return "", false
	}
	return p.Utf8At(c.NameIndex)
}
