package classfile

import (
	"io"

	"golang.org/x/text/unicode/norm"

	"diec/internal/diag"
)

// maxPoolCount is the largest constant_pool_count a class file can carry.
const maxPoolCount = 0xFFFF

// Pool is an append-only constant pool.
type Pool struct {
	entries  []Entry
	indices  []uint16
	byIndex  map[uint16]Entry
	reserved map[uint16]bool
	dedup    map[poolKey]uint16
	next     uint16
}

// NewPool returns an empty pool whose first index is 1.
func NewPool() *Pool {
	return &Pool{
		byIndex:  make(map[uint16]Entry),
		reserved: make(map[uint16]bool),
		dedup:    make(map[poolKey]uint16),
		next:     1,
	}
}

// Count is constant_pool_count: the next free index, one more than the
// highest index in use.
func (p *Pool) Count() uint16 { return p.next }

// Len returns the number of entries.
func (p *Pool) Len() int { return len(p.entries) }

// Entry returns the entry at index.
func (p *Pool) Entry(index uint16) (Entry, bool) {
	e, ok := p.byIndex[index]
	return e, ok
}

// Each calls fn for every entry in insertion order.
func (p *Pool) Each(fn func(index uint16, e Entry)) {
	for i, e := range p.entries {
		fn(p.indices[i], e)
	}
}

// Insert appends e unconditionally and returns its index. Every index e
// refers to must already be assigned.
func (p *Pool) Insert(e Entry) uint16 {
	for _, ref := range e.Refs() {
		p.checkRef(ref)
	}
	width := e.Tag().Width()
	if uint32(p.next)+uint32(width) > maxPoolCount {
		invariant(diag.FmtValueOutOfRange, "constant pool overflow inserting %s", e.Tag())
	}
	index := p.next
	p.entries = append(p.entries, e)
	p.indices = append(p.indices, index)
	p.byIndex[index] = e
	if width == 2 {
		p.reserved[index+1] = true
	}
	p.next += width
	return index
}

func (p *Pool) checkRef(ref uint16) {
	switch {
	case ref == 0:
		invariant(diag.FmtInvalidIndex, "constant pool index 0 is never valid")
	case p.reserved[ref]:
		invariant(diag.FmtReservedIndex, "constant pool index %d is the second slot of an 8-byte constant", ref)
	case ref >= p.next:
		invariant(diag.FmtForwardRef, "constant pool index %d is not assigned yet (next is %d)", ref, p.next)
	}
}

// Require panics unless index refers to an entry with one of the tags.
func (p *Pool) Require(index uint16, tags ...Tag) {
	p.checkRef(index)
	e := p.byIndex[index]
	for _, t := range tags {
		if e.Tag() == t {
			return
		}
	}
	invariant(diag.FmtInvalidIndex, "constant pool index %d is %s, want %v", index, e.Tag(), tags)
}

// intern returns the index of an equal entry, inserting e if there is none.
func (p *Pool) intern(e Entry) uint16 {
	k := e.key()
	if idx, ok := p.dedup[k]; ok {
		return idx
	}
	idx := p.Insert(e)
	p.dedup[k] = idx
	return idx
}

// Utf8 interns text, normalized to NFC.
func (p *Pool) Utf8(text string) uint16 {
	return p.intern(Utf8{Value: norm.NFC.String(text)})
}

func (p *Pool) String(text string) uint16 {
	return p.intern(String{Utf8Index: p.Utf8(text)})
}

// ClassRef interns a class by internal name, e.g. java/lang/Object.
func (p *Pool) ClassRef(name string) uint16 {
	return p.intern(Class{NameIndex: p.Utf8(name)})
}

func (p *Pool) NameAndType(name, descriptor string) uint16 {
	return p.intern(NameAndType{NameIndex: p.Utf8(name), DescriptorIndex: p.Utf8(descriptor)})
}

// FieldRef interns a field reference from a Class and a NameAndType index.
func (p *Pool) FieldRef(class, nameAndType uint16) uint16 {
	p.Require(class, TagClass)
	p.Require(nameAndType, TagNameAndType)
	return p.intern(FieldRef{ClassIndex: class, NameAndTypeIndex: nameAndType})
}

// MethodRef interns a method reference from a Class and a NameAndType index.
func (p *Pool) MethodRef(class, nameAndType uint16) uint16 {
	p.Require(class, TagClass)
	p.Require(nameAndType, TagNameAndType)
	return p.intern(MethodRef{ClassIndex: class, NameAndTypeIndex: nameAndType})
}

func (p *Pool) InterfaceMethodRef(class, nameAndType uint16) uint16 {
	p.Require(class, TagClass)
	p.Require(nameAndType, TagNameAndType)
	return p.intern(InterfaceMethodRef{ClassIndex: class, NameAndTypeIndex: nameAndType})
}

// Field interns owner.name:descriptor as a Fieldref.
func (p *Pool) Field(owner, name, descriptor string) uint16 {
	return p.FieldRef(p.ClassRef(owner), p.NameAndType(name, descriptor))
}

// Method interns owner.name:descriptor as a Methodref.
func (p *Pool) Method(owner, name, descriptor string) uint16 {
	return p.MethodRef(p.ClassRef(owner), p.NameAndType(name, descriptor))
}

func (p *Pool) Integer(v int32) uint16 { return p.intern(Integer{Value: v}) }

func (p *Pool) Float(v float32) uint16 { return p.intern(Float{Value: v}) }

func (p *Pool) Long(v int64) uint16 { return p.intern(Long{Value: v}) }

func (p *Pool) Double(v float64) uint16 { return p.intern(Double{Value: v}) }

func (p *Pool) MethodType(descriptor string) uint16 {
	return p.intern(MethodType{DescriptorIndex: p.Utf8(descriptor)})
}

func (p *Pool) MethodHandle(kind uint8, reference uint16) uint16 {
	if kind < RefGetField || kind > RefInvokeInterface {
		invariant(diag.FmtValueOutOfRange, "method handle kind %d", kind)
	}
	p.Require(reference, TagFieldRef, TagMethodRef, TagInterfaceMethodRef)
	return p.intern(MethodHandle{Kind: kind, ReferenceIndex: reference})
}

func (p *Pool) InvokeDynamic(bootstrap uint16, name, descriptor string) uint16 {
	return p.intern(InvokeDynamic{BootstrapIndex: bootstrap, NameAndTypeIndex: p.NameAndType(name, descriptor)})
}

func (p *Pool) write(w *Writer) {
	w.U2(p.next)
	for _, e := range p.entries {
		w.U1(uint8(e.Tag()))
		e.writePayload(w)
	}
}

// WriteTo writes constant_pool_count followed by every entry.
func (p *Pool) WriteTo(out io.Writer) (n int64, err error) {
	defer Catch(&err)
	var w Writer
	p.write(&w)
	m, err := out.Write(w.Bytes())
	return int64(m), err
}
