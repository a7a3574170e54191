package ast

// Node is any syntax tree node.
type Node interface {
	// Pos returns the 1-based source line the node starts on.
	Pos() int
	node()
}

// Decl is a declaration: function, variable or type alias.
type Decl interface {
	Node
	declNode()
}

// Stmt is a statement.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is an expression.
type Expr interface {
	Node
	exprNode()
}

// TypeExpr is a type as written in source.
type TypeExpr interface {
	Node
	typeNode()
}

type Program struct {
	Decls []Decl
	Line  int
}

// FunctionDecl is a function with its nested declarations and body.
// Head.Name must equal Tail.Name; the name weeder enforces it.
type FunctionDecl struct {
	Head   *FunctionHead
	Tail   *FunctionTail
	Locals []Decl
	Body   []Stmt
}

type FunctionHead struct {
	Name   string
	Params []*Param
	Result TypeExpr // nil for functions without a result
	Line   int
}

type FunctionTail struct {
	Name string
	Line int
}

type Param struct {
	Name string
	Type TypeExpr
	Line int
}

type VarDecl struct {
	Name string
	Type TypeExpr
	Line int
	Off  uint32 // byte offset of the name
}

type TypeDecl struct {
	Name string
	Type TypeExpr
	Line int
}

// Field is one member of a record type.
type Field struct {
	Name string
	Type TypeExpr
	Line int
}

func (n *Program) Pos() int      { return n.Line }
func (n *FunctionDecl) Pos() int { return n.Head.Line }
func (n *FunctionHead) Pos() int { return n.Line }
func (n *FunctionTail) Pos() int { return n.Line }
func (n *Param) Pos() int        { return n.Line }
func (n *VarDecl) Pos() int      { return n.Line }
func (n *TypeDecl) Pos() int     { return n.Line }
func (n *Field) Pos() int        { return n.Line }

func (*Program) node()      {}
func (*FunctionDecl) node() {}
func (*FunctionHead) node() {}
func (*FunctionTail) node() {}
func (*Param) node()        {}
func (*VarDecl) node()      {}
func (*TypeDecl) node()     {}
func (*Field) node()        {}

func (*FunctionDecl) declNode() {}
func (*VarDecl) declNode()      {}
func (*TypeDecl) declNode()     {}
