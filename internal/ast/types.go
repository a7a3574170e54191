package ast

type IntType struct{ Line int }

type CharType struct{ Line int }

type BoolType struct{ Line int }

// ArrayType has Length 0 when the length is left to allocation time.
type ArrayType struct {
	Elem   TypeExpr
	Length int
	Line   int
}

type RecordType struct {
	Fields []*Field
	Line   int
}

// NamedType refers to a type declared with "type".
type NamedType struct {
	Name string
	Line int
}

func (n *IntType) Pos() int    { return n.Line }
func (n *CharType) Pos() int   { return n.Line }
func (n *BoolType) Pos() int   { return n.Line }
func (n *ArrayType) Pos() int  { return n.Line }
func (n *RecordType) Pos() int { return n.Line }
func (n *NamedType) Pos() int  { return n.Line }

func (*IntType) node()    {}
func (*CharType) node()   {}
func (*BoolType) node()   {}
func (*ArrayType) node()  {}
func (*RecordType) node() {}
func (*NamedType) node()  {}

func (*IntType) typeNode()    {}
func (*CharType) typeNode()   {}
func (*BoolType) typeNode()   {}
func (*ArrayType) typeNode()  {}
func (*RecordType) typeNode() {}
func (*NamedType) typeNode()  {}
