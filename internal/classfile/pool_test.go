package classfile_test

import (
	"bytes"
	"errors"
	"testing"

	"diec/internal/classfile"
	"diec/internal/diag"
)

func TestPoolInternIsIdempotent(t *testing.T) {
	p := classfile.NewPool()
	a := p.Utf8("main")
	b := p.Utf8("main")
	if a != b {
		t.Fatalf("Utf8 interned twice: %d vs %d", a, b)
	}
	m1 := p.Method("java/io/PrintStream", "println", "(I)V")
	before := p.Count()
	m2 := p.Method("java/io/PrintStream", "println", "(I)V")
	if m1 != m2 || p.Count() != before {
		t.Fatalf("method ref re-inserted: %d/%d, count %d -> %d", m1, m2, before, p.Count())
	}
	if p.Integer(70000) != p.Integer(70000) {
		t.Fatalf("Integer not interned")
	}
}

func TestPoolUtf8IsNormalized(t *testing.T) {
	p := classfile.NewPool()
	composed := p.Utf8("\u00e9")
	decomposed := p.Utf8("e\u0301")
	if composed != decomposed {
		t.Fatalf("NFC forms should share an entry: %d vs %d", composed, decomposed)
	}
}

func TestPoolWideEntriesTakeTwoSlots(t *testing.T) {
	p := classfile.NewPool()
	l := p.Long(1 << 40)
	u := p.Utf8("x")
	if l != 1 || u != 3 {
		t.Fatalf("want Long at 1 and Utf8 at 3, got %d and %d", l, u)
	}
	if p.Count() != 4 {
		t.Fatalf("count = %d, want 4", p.Count())
	}
	if p.Len() != 2 {
		t.Fatalf("len = %d, want 2", p.Len())
	}
	d := p.Double(2.5)
	if d != 4 || p.Count() != 6 {
		t.Fatalf("Double at %d, count %d", d, p.Count())
	}
}

func TestPoolWriteTo(t *testing.T) {
	p := classfile.NewPool()
	p.Utf8("A")
	p.Integer(-1)
	var buf bytes.Buffer
	if _, err := p.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	want := []byte{
		0x00, 0x03, // count
		0x01, 0x00, 0x01, 'A', // Utf8 "A"
		0x03, 0xFF, 0xFF, 0xFF, 0xFF, // Integer -1
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("pool bytes = % x, want % x", buf.Bytes(), want)
	}
}

func TestPoolModifiedUTF8(t *testing.T) {
	p := classfile.NewPool()
	p.Utf8("\x00\U0001F600")
	var buf bytes.Buffer
	if _, err := p.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	want := []byte{
		0x00, 0x02,
		0x01, 0x00, 0x08,
		0xC0, 0x80, // U+0000
		0xED, 0xA0, 0xBD, 0xED, 0xB8, 0x80, // surrogate pair
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("pool bytes = % x, want % x", buf.Bytes(), want)
	}
}

func TestPoolRejectsBadReferences(t *testing.T) {
	tests := []struct {
		name  string
		build func(p *classfile.Pool)
		code  diag.Code
	}{
		{"index zero", func(p *classfile.Pool) { p.Insert(classfile.Class{NameIndex: 0}) }, diag.FmtInvalidIndex},
		{"forward", func(p *classfile.Pool) { p.Insert(classfile.String{Utf8Index: 5}) }, diag.FmtForwardRef},
		{"reserved slot", func(p *classfile.Pool) {
			p.Long(7)
			p.Insert(classfile.Class{NameIndex: 2})
		}, diag.FmtReservedIndex},
		{"wrong tag", func(p *classfile.Pool) {
			i := p.Integer(1)
			p.FieldRef(i, i)
		}, diag.FmtInvalidIndex},
		{"bad handle kind", func(p *classfile.Pool) {
			p.MethodHandle(0, p.Method("A", "m", "()V"))
		}, diag.FmtValueOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := func() (err error) {
				defer classfile.Catch(&err)
				tt.build(classfile.NewPool())
				return nil
			}()
			if err == nil {
				t.Fatalf("expected a format invariant error")
			}
			if !errors.Is(err, diag.ErrFormatInvariant) {
				t.Fatalf("error %v is not a format invariant", err)
			}
			de, ok := diag.AsError(err)
			if !ok || de.Code != tt.code {
				t.Fatalf("code = %v, want %v", err, tt.code)
			}
		})
	}
}

func TestCatchLeavesOtherPanics(t *testing.T) {
	defer func() {
		if r := recover(); r != "boom" {
			t.Fatalf("recovered %v, want boom", r)
		}
	}()
	func() (err error) {
		defer classfile.Catch(&err)
		panic("boom")
	}()
	t.Fatalf("panic was swallowed")
}

func TestTagBytes(t *testing.T) {
	tests := []struct {
		tag  classfile.Tag
		want uint8
	}{
		{classfile.TagUtf8, 1}, {classfile.TagInteger, 3}, {classfile.TagFloat, 4},
		{classfile.TagLong, 5}, {classfile.TagDouble, 6}, {classfile.TagClass, 7},
		{classfile.TagString, 8}, {classfile.TagFieldRef, 9}, {classfile.TagMethodRef, 10},
		{classfile.TagInterfaceMethodRef, 11}, {classfile.TagNameAndType, 12},
		{classfile.TagMethodHandle, 15}, {classfile.TagMethodType, 16}, {classfile.TagInvokeDynamic, 18},
	}
	for _, tt := range tests {
		if uint8(tt.tag) != tt.want {
			t.Fatalf("%s = %d, want %d", tt.tag, uint8(tt.tag), tt.want)
		}
	}
}
