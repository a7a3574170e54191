package classfile_test

import (
	"bytes"
	"testing"

	"diec/internal/classfile"
)

func TestMethodLayout(t *testing.T) {
	m := classfile.Method{
		AccessFlags:     classfile.AccPublic | classfile.AccStatic,
		NameIndex:       5,
		DescriptorIndex: 6,
		Attributes:      []classfile.Attribute{{NameIndex: 7, Info: []byte{0xAA, 0xBB}}},
	}
	want := []byte{
		0x00, 0x09,
		0x00, 0x05,
		0x00, 0x06,
		0x00, 0x01,
		0x00, 0x07, 0x00, 0x00, 0x00, 0x02, 0xAA, 0xBB,
	}
	if got := m.Bytes(); !bytes.Equal(got, want) {
		t.Fatalf("method bytes = % x, want % x", got, want)
	}
}

func TestSourceFileAttribute(t *testing.T) {
	p := classfile.NewPool()
	a := classfile.SourceFile(p, "hello.die")
	file, _ := p.Utf8At(p.Utf8("hello.die"))
	if file != "hello.die" {
		t.Fatalf("pool lost the file name")
	}
	name, ok := p.Utf8At(a.NameIndex)
	if !ok || name != "SourceFile" {
		t.Fatalf("attribute name = %q", name)
	}
	if !bytes.Equal(a.Info, []byte{0x00, byte(p.Utf8("hello.die"))}) {
		t.Fatalf("info = % x", a.Info)
	}
}

func TestAccessFlagsString(t *testing.T) {
	f := classfile.AccPublic | classfile.AccStatic | classfile.AccNative
	if got := f.String(); got != "public static native" {
		t.Fatalf("String() = %q", got)
	}
}
