package classfile

import (
	"fmt"
	"strconv"
)

// Describe renders the entry at index the way javap prints constants:
// java/io/PrintStream.println:(I)V for member refs, names for classes.
func (p *Pool) Describe(index uint16) string {
	e, ok := p.byIndex[index]
	if !ok {
		return fmt.Sprintf("#%d?", index)
	}
	switch e := e.(type) {
	case Utf8:
		return e.Value
	case Integer:
		return strconv.FormatInt(int64(e.Value), 10)
	case Float:
		return strconv.FormatFloat(float64(e.Value), 'g', -1, 32) + "f"
	case Long:
		return strconv.FormatInt(e.Value, 10) + "l"
	case Double:
		return strconv.FormatFloat(e.Value, 'g', -1, 64) + "d"
	case Class:
		return p.Describe(e.NameIndex)
	case String:
		return strconv.Quote(p.Describe(e.Utf8Index))
	case NameAndType:
		return p.Describe(e.NameIndex) + ":" + p.Describe(e.DescriptorIndex)
	case FieldRef:
		return p.Describe(e.ClassIndex) + "." + p.Describe(e.NameAndTypeIndex)
	case MethodRef:
		return p.Describe(e.ClassIndex) + "." + p.Describe(e.NameAndTypeIndex)
	case InterfaceMethodRef:
		return p.Describe(e.ClassIndex) + "." + p.Describe(e.NameAndTypeIndex)
	case MethodHandle:
		return fmt.Sprintf("%d:%s", e.Kind, p.Describe(e.ReferenceIndex))
	case MethodType:
		return p.Describe(e.DescriptorIndex)
	case InvokeDynamic:
		return fmt.Sprintf("#%d:%s", e.BootstrapIndex, p.Describe(e.NameAndTypeIndex))
	default:
		return e.Tag().String()
	}
}

// Find returns the index of the first entry with tag whose description
// equals want.
func (p *Pool) Find(tag Tag, want string) (uint16, bool) {
	for i, e := range p.entries {
		if e.Tag() == tag && p.Describe(p.indices[i]) == want {
			return p.indices[i], true
		}
	}
	return 0, false
}
