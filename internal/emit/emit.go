package emit

import (
	"fmt"
	"math"

	"diec/internal/ast"
	"diec/internal/classfile"
	"diec/internal/sema"
	"diec/internal/symbols"
	"diec/internal/types"
)

// DefaultClass is used when Options.Class is empty.
const DefaultClass = "Main"

const (
	printStream = "java/io/PrintStream"
	systemClass = "java/lang/System"
)

// Options controls class naming.
type Options struct {
	// Class is the internal name of the main class.
	Class string
	// SourceFile, if set, is recorded in a SourceFile attribute.
	SourceFile string
	// Major overrides the class file major version.
	Major uint16
}

// Class is one emitted class file.
type Class struct {
	Name string
	Data []byte
}

// Emitter builds the class files of one program.
type Emitter struct {
	prog  *ast.Program
	info  *sema.Info
	types *types.Interner
	syms  *symbols.Table
	opts  Options
	desc  classfile.Descriptors
	main  *classfile.ClassFile
}

// New prepares an emitter; info must come from a successful sema pass
// over prog.
func New(prog *ast.Program, info *sema.Info, opts Options) *Emitter {
	if opts.Class == "" {
		opts.Class = DefaultClass
	}
	return &Emitter{
		prog:  prog,
		info:  info,
		types: info.Types,
		syms:  info.Table,
		opts:  opts,
		desc:  classfile.Descriptors{Types: info.Types, Class: opts.Class},
	}
}

// Program emits the main class of prog.
func Program(prog *ast.Program, info *sema.Info, opts Options) ([]byte, error) {
	cf, err := New(prog, info, opts).MainClass()
	if err != nil {
		return nil, err
	}
	return cf.Bytes()
}

// Unit emits the main class followed by one class per record type.
func Unit(prog *ast.Program, info *sema.Info, opts Options) ([]Class, error) {
	e := New(prog, info, opts)
	cf, err := e.MainClass()
	if err != nil {
		return nil, err
	}
	data, err := cf.Bytes()
	if err != nil {
		return nil, err
	}
	out := []Class{{Name: e.opts.Class, Data: data}}
	records, err := e.RecordClasses()
	if err != nil {
		return nil, err
	}
	return append(out, records...), nil
}

// MainClass builds the main class structure.
func (e *Emitter) MainClass() (cf *classfile.ClassFile, err error) {
	defer classfile.Catch(&err)
	if e.main != nil {
		return e.main, nil
	}
	cf = classfile.New(e.opts.Class)
	if e.opts.Major != 0 {
		cf.Major = e.opts.Major
	}
	e.emitGlobals(cf)
	e.emitFunctions(cf)
	if err := e.collectConstants(cf.Pool); err != nil {
		return nil, err
	}
	e.emitInnerClasses(cf)
	if e.opts.SourceFile != "" {
		cf.Attributes = append(cf.Attributes, classfile.SourceFile(cf.Pool, e.opts.SourceFile))
	}
	e.main = cf
	return cf, nil
}

func (e *Emitter) emitGlobals(cf *classfile.ClassFile) {
	for _, id := range e.syms.Globals() {
		sym := e.syms.Symbol(id)
		cf.AddField(classfile.AccPublic|classfile.AccStatic, sym.Name, e.desc.FieldDescriptor(sym.Type))
	}
}

func (e *Emitter) emitFunctions(cf *classfile.ClassFile) {
	for _, id := range e.syms.Functions() {
		sym := e.syms.Symbol(id)
		if sym.Signature == nil {
			panic(fmt.Sprintf("emit: function %s has no signature", sym.Name))
		}
		name := sym.QualName
		if name == "" {
			name = sym.Name
		}
		cf.AddMethod(
			classfile.AccPublic|classfile.AccStatic|classfile.AccNative,
			name,
			e.desc.MethodDescriptor(sym.Signature.Params, sym.Signature.Result),
		)
	}
}

// collectConstants pools what the statement bodies reference: println
// overloads for write and Integer constants for int literals that do not
// fit a sipush operand.
func (e *Emitter) collectConstants(pool *classfile.Pool) error {
	return ast.Walk(e.prog, ast.Funcs{EnterFn: func(n ast.Node) (ast.Action, error) {
		switch n := n.(type) {
		case *ast.Write:
			pool.Field(systemClass, "out", "L"+printStream+";")
			pool.Method(printStream, "println", e.printlnDescriptor(n.Value))
		case *ast.Literal:
			if n.Kind == ast.LitInt && (n.Value < math.MinInt16 || n.Value > math.MaxInt16) {
				pool.Integer(n.Value)
			}
		case *ast.TypeDecl, ast.TypeExpr:
			return ast.SkipChildren, nil
		}
		return ast.Descend, nil
	}})
}

func (e *Emitter) printlnDescriptor(value ast.Expr) string {
	t := e.info.TypeOf(value)
	if t == types.NoTypeID {
		panic(fmt.Sprintf("emit: write operand at line %d has no type", value.Pos()))
	}
	return e.desc.MethodDescriptor([]types.TypeID{t}, e.types.Builtins().Void)
}

func (e *Emitter) emitInnerClasses(cf *classfile.ClassFile) {
	records := e.types.Records()
	if len(records) == 0 {
		return
	}
	pool := cf.Pool
	var w classfile.Writer
	w.Len2(len(records), "inner class count")
	for _, r := range records {
		info, _ := e.types.RecordInfo(r)
		w.U2(pool.ClassRef(e.desc.RecordClass(r)))
		w.U2(cf.ThisClass)
		w.U2(pool.Utf8(info.Name))
		w.U2(uint16(classfile.AccPublic | classfile.AccStatic))
	}
	cf.Attributes = append(cf.Attributes, classfile.Attribute{
		NameIndex: pool.Utf8("InnerClasses"),
		Info:      append([]byte(nil), w.Bytes()...),
	})
}
