package classfile

import (
	"strings"

	"diec/internal/diag"
	"diec/internal/types"
)

// Descriptors maps die types to JVM descriptors. Records become nested
// classes of Class: L<Class>$<Record>;
type Descriptors struct {
	Types *types.Interner
	Class string
}

// FieldDescriptor returns the field descriptor of t.
func (d Descriptors) FieldDescriptor(t types.TypeID) string {
	var sb strings.Builder
	d.write(&sb, t)
	return sb.String()
}

// MethodDescriptor returns (params)result.
func (d Descriptors) MethodDescriptor(params []types.TypeID, result types.TypeID) string {
	var sb strings.Builder
	sb.WriteByte('(')
	for _, p := range params {
		d.write(&sb, p)
	}
	sb.WriteByte(')')
	d.write(&sb, result)
	return sb.String()
}

// RecordClass returns the internal class name of a record type.
func (d Descriptors) RecordClass(t types.TypeID) string {
	name := "record"
	if info, ok := d.Types.RecordInfo(t); ok && info.Name != "" {
		name = info.Name
	}
	return d.Class + "$" + name
}

func (d Descriptors) write(sb *strings.Builder, t types.TypeID) {
	t = d.Types.Resolve(t)
	tt, ok := d.Types.Lookup(t)
	if !ok {
		invariant(diag.FmtNoDescriptor, "no descriptor for type %d", t)
	}
	switch tt.Kind {
	case types.KindInt:
		sb.WriteByte('I')
	case types.KindChar:
		sb.WriteByte('C')
	case types.KindBool:
		sb.WriteByte('Z')
	case types.KindVoid:
		sb.WriteByte('V')
	case types.KindArray:
		sb.WriteByte('[')
		d.write(sb, tt.Elem)
	case types.KindRecord:
		sb.WriteByte('L')
		sb.WriteString(d.RecordClass(t))
		sb.WriteByte(';')
	case types.KindNull:
		sb.WriteString("Ljava/lang/Object;")
	default:
		invariant(diag.FmtNoDescriptor, "no descriptor for %s", tt.Kind)
	}
}
