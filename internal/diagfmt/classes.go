package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"diec/internal/classfile"
)

// FormatClass prints a javap-like listing of cf: header, constant pool,
// fields, methods and class attributes.
func FormatClass(w io.Writer, cf *classfile.ClassFile) error {
	var sb strings.Builder
	name, _ := cf.Pool.ClassName(cf.ThisClass)
	super, _ := cf.Pool.ClassName(cf.SuperClass)
	fmt.Fprintf(&sb, "class %s extends %s\n", name, super)
	fmt.Fprintf(&sb, "  minor version: %d\n  major version: %d\n", cf.Minor, cf.Major)
	fmt.Fprintf(&sb, "  flags: (0x%04x) %s\n", uint16(cf.AccessFlags), cf.AccessFlags)

	sb.WriteString("Constant pool:\n")
	cf.Pool.Each(func(index uint16, e classfile.Entry) {
		fmt.Fprintf(&sb, "  %5s = %-18s %s\n", fmt.Sprintf("#%d", index), e.Tag(), cf.Pool.Describe(index))
	})

	if len(cf.Fields) > 0 {
		sb.WriteString("Fields:\n")
		for _, f := range cf.Fields {
			writeMember(&sb, cf.Pool, f.AccessFlags, f.NameIndex, f.DescriptorIndex, f.Attributes)
		}
	}
	if len(cf.Methods) > 0 {
		sb.WriteString("Methods:\n")
		for _, m := range cf.Methods {
			writeMember(&sb, cf.Pool, m.AccessFlags, m.NameIndex, m.DescriptorIndex, m.Attributes)
		}
	}
	if len(cf.Attributes) > 0 {
		sb.WriteString("Attributes:\n")
		for _, a := range cf.Attributes {
			writeAttr(&sb, cf.Pool, a, "  ")
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeMember(sb *strings.Builder, pool *classfile.Pool, flags classfile.AccessFlags, name, desc uint16, attrs []classfile.Attribute) {
	sb.WriteString("  ")
	if s := flags.String(); s != "" {
		sb.WriteString(s)
		sb.WriteByte(' ')
	}
	fmt.Fprintf(sb, "%s:%s\n", pool.Describe(name), pool.Describe(desc))
	for _, a := range attrs {
		writeAttr(sb, pool, a, "    ")
	}
}

func writeAttr(sb *strings.Builder, pool *classfile.Pool, a classfile.Attribute, indent string) {
	fmt.Fprintf(sb, "%s%s: %d bytes\n", indent, pool.Describe(a.NameIndex), len(a.Info))
}
