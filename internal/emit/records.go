package emit

import (
	"diec/internal/classfile"
)

// RecordClasses emits one class per record type, in registration order.
func (e *Emitter) RecordClasses() (out []Class, err error) {
	defer classfile.Catch(&err)
	for _, r := range e.types.Records() {
		name := e.desc.RecordClass(r)
		cf := classfile.New(name)
		if e.opts.Major != 0 {
			cf.Major = e.opts.Major
		}
		info, _ := e.types.RecordInfo(r)
		for _, f := range info.Fields {
			cf.AddField(classfile.AccPublic, f.Name, e.desc.FieldDescriptor(f.Type))
		}
		if e.opts.SourceFile != "" {
			cf.Attributes = append(cf.Attributes, classfile.SourceFile(cf.Pool, e.opts.SourceFile))
		}
		data, err := cf.Bytes()
		if err != nil {
			return nil, err
		}
		out = append(out, Class{Name: name, Data: data})
	}
	return out, nil
}
