package emit_test

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"diec/internal/classfile"
	"diec/internal/emit"
	"diec/internal/parser"
	"diec/internal/sema"
)

func compile(t *testing.T, src string, opts emit.Options) []emit.Class {
	t.Helper()
	prog, err := parser.ParseString(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	info, err := sema.Validate(prog)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	out, err := emit.Unit(prog, info, opts)
	if err != nil {
		t.Fatalf("emit: %v", err)
	}
	return out
}

func decode(t *testing.T, data []byte) *classfile.ClassFile {
	t.Helper()
	cf, err := classfile.Parse(data)
	if err != nil {
		t.Fatalf("class file does not decode: %v", err)
	}
	return cf
}

type member struct {
	Name, Desc, Flags string
}

func members(p *classfile.Pool, fields []classfile.Field, methods []classfile.Method) (fs, ms []member) {
	for _, f := range fields {
		fs = append(fs, member{p.Describe(f.NameIndex), p.Describe(f.DescriptorIndex), f.AccessFlags.String()})
	}
	for _, m := range methods {
		ms = append(ms, member{p.Describe(m.NameIndex), p.Describe(m.DescriptorIndex), m.AccessFlags.String()})
	}
	return fs, ms
}

const sample = `
type node = record of { value: int, next: node };
var counter: int;
var buf: array of char of length 8;

func sum(xs: array of int, n: int): int
  var i: int, total: int;
  func step(x: int): int
    return x + 1;
  end step
  i = 0;
  total = 0;
  while i < n do
    total = total + xs[i];
    i = step(i);
  end
  return total;
end sum

func main()
  var head: node;
  alloc head;
  head.value = 100000;
  write head.value;
  write 'x';
  write counter == 0;
end main
`

func TestUnitLayout(t *testing.T) {
	out := compile(t, sample, emit.Options{Class: "Sample", SourceFile: "sample.die"})
	if len(out) != 2 {
		t.Fatalf("want main class and one record class, got %d", len(out))
	}
	if out[0].Name != "Sample" || out[1].Name != "Sample$node" {
		t.Fatalf("class names = %q, %q", out[0].Name, out[1].Name)
	}
	if !bytes.HasPrefix(out[0].Data, []byte{0xCA, 0xFE, 0xBA, 0xBE}) {
		t.Fatalf("missing magic")
	}

	cf := decode(t, out[0].Data)
	if name, _ := cf.Pool.ClassName(cf.ThisClass); name != "Sample" {
		t.Fatalf("this = %q", name)
	}
	if name, _ := cf.Pool.ClassName(cf.SuperClass); name != "java/lang/Object" {
		t.Fatalf("super = %q", name)
	}
	if cf.AccessFlags != classfile.AccPublic|classfile.AccSuper {
		t.Fatalf("class flags = %#x", uint16(cf.AccessFlags))
	}

	fs, ms := members(cf.Pool, cf.Fields, cf.Methods)
	wantFields := []member{
		{"counter", "I", "public static"},
		{"buf", "[C", "public static"},
	}
	wantMethods := []member{
		{"sum", "([II)I", "public static native"},
		{"main", "()V", "public static native"},
		{"sum$step", "(I)I", "public static native"},
	}
	if diff := cmp.Diff(wantFields, fs); diff != "" {
		t.Fatalf("fields (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantMethods, ms); diff != "" {
		t.Fatalf("methods (-want +got):\n%s", diff)
	}
	for _, m := range cf.Methods {
		if len(m.Attributes) != 0 {
			t.Fatalf("methods carry no attributes")
		}
	}

	var attrs []string
	for _, a := range cf.Attributes {
		attrs = append(attrs, cf.Pool.Describe(a.NameIndex))
	}
	if diff := cmp.Diff([]string{"InnerClasses", "SourceFile"}, attrs); diff != "" {
		t.Fatalf("attributes (-want +got):\n%s", diff)
	}
}

func TestWriteReferences(t *testing.T) {
	out := compile(t, sample, emit.Options{})
	cf := decode(t, out[0].Data)
	refs := []struct {
		tag  classfile.Tag
		want string
	}{
		{classfile.TagFieldRef, "java/lang/System.out:Ljava/io/PrintStream;"},
		{classfile.TagMethodRef, "java/io/PrintStream.println:(I)V"},
		{classfile.TagMethodRef, "java/io/PrintStream.println:(C)V"},
		{classfile.TagMethodRef, "java/io/PrintStream.println:(Z)V"},
		{classfile.TagInteger, "100000"},
	}
	for _, r := range refs {
		if _, ok := cf.Pool.Find(r.tag, r.want); !ok {
			t.Fatalf("pool lacks %s %s", r.tag, r.want)
		}
	}
	for _, small := range []string{"0", "1"} {
		if _, ok := cf.Pool.Find(classfile.TagInteger, small); ok {
			t.Fatalf("short literal %s pooled as Integer", small)
		}
	}
}

func TestNoWriteNoPrintStream(t *testing.T) {
	out := compile(t, "func f(): int return 1; end f", emit.Options{})
	if len(out) != 1 {
		t.Fatalf("no records, want one class, got %d", len(out))
	}
	cf := decode(t, out[0].Data)
	if name, _ := cf.Pool.ClassName(cf.ThisClass); name != emit.DefaultClass {
		t.Fatalf("default class name = %q", name)
	}
	if _, ok := cf.Pool.Find(classfile.TagClass, "java/io/PrintStream"); ok {
		t.Fatalf("PrintStream pooled without write")
	}
	for _, a := range cf.Attributes {
		if cf.Pool.Describe(a.NameIndex) == "SourceFile" {
			t.Fatalf("SourceFile emitted without a file name")
		}
	}
}

func TestRecordClass(t *testing.T) {
	out := compile(t, sample, emit.Options{Class: "Sample"})
	rc := decode(t, out[1].Data)
	fs, _ := members(rc.Pool, rc.Fields, nil)
	want := []member{
		{"value", "I", "public"},
		{"next", "LSample$node;", "public"},
	}
	if diff := cmp.Diff(want, fs); diff != "" {
		t.Fatalf("record fields (-want +got):\n%s", diff)
	}
}

func TestProgramIsDeterministic(t *testing.T) {
	build := func() []byte {
		prog, err := parser.ParseString(sample)
		if err != nil {
			t.Fatalf("parse: %v", err)
		}
		info, err := sema.Validate(prog)
		if err != nil {
			t.Fatalf("validate: %v", err)
		}
		data, err := emit.Program(prog, info, emit.Options{Class: "Sample"})
		if err != nil {
			t.Fatalf("emit: %v", err)
		}
		return data
	}
	if !bytes.Equal(build(), build()) {
		t.Fatalf("two builds differ")
	}
}

func TestMajorOverride(t *testing.T) {
	out := compile(t, "var x: bool;", emit.Options{Major: 61})
	if cf := decode(t, out[0].Data); cf.Major != 61 {
		t.Fatalf("major = %d", cf.Major)
	}
}
