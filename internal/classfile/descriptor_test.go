package classfile_test

import (
	"errors"
	"testing"

	"diec/internal/classfile"
	"diec/internal/diag"
	"diec/internal/types"
)

func TestDescriptors(t *testing.T) {
	in := types.NewInterner()
	b := in.Builtins()
	ints := in.Intern(types.MakeArray(b.Int, types.ArrayDynamicLength))
	grid := in.Intern(types.MakeArray(ints, 3))
	node := in.RegisterRecord("node")
	in.SetRecordFields(node, []types.Field{{Name: "value", Type: b.Int}, {Name: "next", Type: node}})
	alias := in.RegisterAlias("list")
	in.SetAliasTarget(alias, node)

	d := classfile.Descriptors{Types: in, Class: "Main"}
	tests := []struct {
		id   types.TypeID
		want string
	}{
		{b.Int, "I"},
		{b.Char, "C"},
		{b.Bool, "Z"},
		{b.Void, "V"},
		{ints, "[I"},
		{grid, "[[I"},
		{node, "LMain$node;"},
		{alias, "LMain$node;"},
	}
	for _, tt := range tests {
		if got := d.FieldDescriptor(tt.id); got != tt.want {
			t.Fatalf("FieldDescriptor(%s) = %q, want %q", types.Label(in, tt.id), got, tt.want)
		}
	}
	if got := d.MethodDescriptor([]types.TypeID{b.Int, ints, node}, b.Bool); got != "(I[ILMain$node;)Z" {
		t.Fatalf("MethodDescriptor = %q", got)
	}
	if got := d.MethodDescriptor(nil, b.Void); got != "()V" {
		t.Fatalf("MethodDescriptor = %q", got)
	}
}

func TestDescriptorOfInvalidType(t *testing.T) {
	in := types.NewInterner()
	d := classfile.Descriptors{Types: in, Class: "Main"}
	err := func() (err error) {
		defer classfile.Catch(&err)
		d.FieldDescriptor(in.Builtins().Invalid)
		return nil
	}()
	if !errors.Is(err, diag.ErrFormatInvariant) {
		t.Fatalf("err = %v, want format invariant", err)
	}
}
