package classfile

import "io"

const (
	Magic = 0xCAFEBABE
	// MajorJava8 is the class file version emitted by default.
	MajorJava8 = 52
)

// ClassFile is a complete class file.
type ClassFile struct {
	Minor, Major uint16
	Pool         *Pool
	AccessFlags  AccessFlags
	ThisClass    uint16
	SuperClass   uint16
	Interfaces   []uint16
	Fields       []Field
	Methods      []Method
	Attributes   []Attribute
}

// New starts a public class extending java/lang/Object.
func New(name string) *ClassFile {
	p := NewPool()
	return &ClassFile{
		Major:       MajorJava8,
		Pool:        p,
		AccessFlags: AccPublic | AccSuper,
		ThisClass:   p.ClassRef(name),
		SuperClass:  p.ClassRef("java/lang/Object"),
	}
}

// AddField appends a field and returns its position.
func (c *ClassFile) AddField(flags AccessFlags, name, descriptor string, attrs ...Attribute) int {
	c.Fields = append(c.Fields, Field{
		AccessFlags:     flags,
		NameIndex:       c.Pool.Utf8(name),
		DescriptorIndex: c.Pool.Utf8(descriptor),
		Attributes:      attrs,
	})
	return len(c.Fields) - 1
}

// AddMethod appends a method and returns its position.
func (c *ClassFile) AddMethod(flags AccessFlags, name, descriptor string, attrs ...Attribute) int {
	c.Methods = append(c.Methods, Method{
		AccessFlags:     flags,
		NameIndex:       c.Pool.Utf8(name),
		DescriptorIndex: c.Pool.Utf8(descriptor),
		Attributes:      attrs,
	})
	return len(c.Methods) - 1
}

// Bytes serializes the class. Format invariant violations come back as
// errors.
func (c *ClassFile) Bytes() (out []byte, err error) {
	defer Catch(&err)
	var w Writer
	w.U4(Magic)
	w.U2(c.Minor)
	w.U2(c.Major)
	c.Pool.write(&w)
	w.U2(uint16(c.AccessFlags))
	c.Pool.Require(c.ThisClass, TagClass)
	w.U2(c.ThisClass)
	if c.SuperClass != 0 {
		c.Pool.Require(c.SuperClass, TagClass)
	}
	w.U2(c.SuperClass)
	w.Len2(len(c.Interfaces), "interface count")
	for _, i := range c.Interfaces {
		c.Pool.Require(i, TagClass)
		w.U2(i)
	}
	w.Len2(len(c.Fields), "field count")
	for _, f := range c.Fields {
		c.requireMember(f.NameIndex, f.DescriptorIndex, f.Attributes)
		f.write(&w)
	}
	w.Len2(len(c.Methods), "method count")
	for _, m := range c.Methods {
		c.requireMember(m.NameIndex, m.DescriptorIndex, m.Attributes)
		m.write(&w)
	}
	w.Len2(len(c.Attributes), "attribute count")
	for _, a := range c.Attributes {
		c.Pool.Require(a.NameIndex, TagUtf8)
		a.write(&w)
	}
	return w.Bytes(), nil
}

func (c *ClassFile) requireMember(name, desc uint16, attrs []Attribute) {
	c.Pool.Require(name, TagUtf8)
	c.Pool.Require(desc, TagUtf8)
	for _, a := range attrs {
		c.Pool.Require(a.NameIndex, TagUtf8)
	}
}

// WriteTo writes the serialized class to out.
func (c *ClassFile) WriteTo(out io.Writer) (int64, error) {
	b, err := c.Bytes()
	if err != nil {
		return 0, err
	}
	n, err := out.Write(b)
	return int64(n), err
}
