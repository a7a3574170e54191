package classfile

import "strings"

// AccessFlags is a set of ACC_* flags.
type AccessFlags uint16

const (
	AccPublic    AccessFlags = 0x0001
	AccPrivate   AccessFlags = 0x0002
	AccProtected AccessFlags = 0x0004
	AccStatic    AccessFlags = 0x0008
	AccFinal     AccessFlags = 0x0010
	AccSuper     AccessFlags = 0x0020 // classes; ACC_SYNCHRONIZED on methods
	AccVolatile  AccessFlags = 0x0040
	AccTransient AccessFlags = 0x0080
	AccNative    AccessFlags = 0x0100
	AccInterface AccessFlags = 0x0200
	AccAbstract  AccessFlags = 0x0400
	AccStrict    AccessFlags = 0x0800
	AccSynthetic AccessFlags = 0x1000
)

var flagNames = []struct {
	flag AccessFlags
	name string
}{
	{AccPublic, "public"}, {AccPrivate, "private"}, {AccProtected, "protected"},
	{AccStatic, "static"}, {AccFinal, "final"}, {AccNative, "native"},
	{AccAbstract, "abstract"}, {AccSynthetic, "synthetic"},
}

// String lists the member-level flags in source order.
func (f AccessFlags) String() string {
	var parts []string
	for _, fn := range flagNames {
		if f&fn.flag != 0 {
			parts = append(parts, fn.name)
		}
	}
	return strings.Join(parts, " ")
}

// Attribute is a named blob: u2 name index, u4 length, bytes.
type Attribute struct {
	NameIndex uint16
	Info      []byte
}

func (a Attribute) write(w *Writer) {
	w.U2(a.NameIndex)
	w.Len4(len(a.Info), "attribute length")
	w.Raw(a.Info)
}

// Method is a method_info record.
type Method struct {
	AccessFlags     AccessFlags
	NameIndex       uint16
	DescriptorIndex uint16
	Attributes      []Attribute
}

func (m Method) write(w *Writer) {
	writeMember(w, m.AccessFlags, m.NameIndex, m.DescriptorIndex, m.Attributes)
}

// Field is a field_info record; same layout as Method.
type Field struct {
	AccessFlags     AccessFlags
	NameIndex       uint16
	DescriptorIndex uint16
	Attributes      []Attribute
}

func (f Field) write(w *Writer) {
	writeMember(w, f.AccessFlags, f.NameIndex, f.DescriptorIndex, f.Attributes)
}

func writeMember(w *Writer, flags AccessFlags, name, desc uint16, attrs []Attribute) {
	w.U2(uint16(flags))
	w.U2(name)
	w.U2(desc)
	w.Len2(len(attrs), "attribute count")
	for _, a := range attrs {
		a.write(w)
	}
}

// Bytes serializes m on its own.
func (m Method) Bytes() []byte {
	var w Writer
	m.write(&w)
	return w.Bytes()
}

// Bytes serializes a on its own.
func (a Attribute) Bytes() []byte {
	var w Writer
	a.write(&w)
	return w.Bytes()
}

// SourceFile builds a SourceFile attribute naming file.
func SourceFile(p *Pool, file string) Attribute {
	var w Writer
	w.U2(p.Utf8(file))
	return Attribute{NameIndex: p.Utf8("SourceFile"), Info: w.Bytes()}
}

// ConstantValue builds a ConstantValue attribute for a static field.
func ConstantValue(p *Pool, index uint16) Attribute {
	p.Require(index, TagInteger, TagFloat, TagLong, TagDouble, TagString)
	var w Writer
	w.U2(index)
	return Attribute{NameIndex: p.Utf8("ConstantValue"), Info: w.Bytes()}
}
