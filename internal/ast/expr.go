package ast

type BinaryOp struct {
	Op    BinaryOperator
	Left  Expr
	Right Expr
	Line  int
}

type UnaryOp struct {
	Op      UnaryOperator
	Operand Expr
	Line    int
}

type LitKind uint8

const (
	LitInt LitKind = iota
	LitChar
	LitTrue
	LitFalse
	LitNull
)

func (k LitKind) String() string {
	switch k {
	case LitInt:
		return "int"
	case LitChar:
		return "char"
	case LitTrue:
		return "true"
	case LitFalse:
		return "false"
	case LitNull:
		return "null"
	default:
		return "invalid"
	}
}

// Literal keeps the lexeme; Value holds the decoded int or char code.
type Literal struct {
	Kind  LitKind
	Text  string
	Value int32
	Line  int
}

type Identifier struct {
	Name string
	Line int
	Off  uint32 // byte offset of the name
}

type Index struct {
	Base  Expr
	Index Expr
	Line  int
}

type FieldAccess struct {
	Base  Expr
	Field string
	Line  int
}

type Call struct {
	Callee *Identifier
	Args   []Expr
	Line   int
}

// Abs is |e|: absolute value of an int or length of an array.
type Abs struct {
	Operand Expr
	Line    int
}

func (n *BinaryOp) Pos() int    { return n.Line }
func (n *UnaryOp) Pos() int     { return n.Line }
func (n *Literal) Pos() int     { return n.Line }
func (n *Identifier) Pos() int  { return n.Line }
func (n *Index) Pos() int       { return n.Line }
func (n *FieldAccess) Pos() int { return n.Line }
func (n *Call) Pos() int        { return n.Line }
func (n *Abs) Pos() int         { return n.Line }

func (*BinaryOp) node()    {}
func (*UnaryOp) node()     {}
func (*Literal) node()     {}
func (*Identifier) node()  {}
func (*Index) node()       {}
func (*FieldAccess) node() {}
func (*Call) node()        {}
func (*Abs) node()         {}

func (*BinaryOp) exprNode()    {}
func (*UnaryOp) exprNode()     {}
func (*Literal) exprNode()     {}
func (*Identifier) exprNode()  {}
func (*Index) exprNode()       {}
func (*FieldAccess) exprNode() {}
func (*Call) exprNode()        {}
func (*Abs) exprNode()         {}
