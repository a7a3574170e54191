package ast

type Assign struct {
	Target Expr
	Value  Expr
	Line   int
}

// If has an optional Else branch.
type If struct {
	Cond Expr
	Then *Block
	Else *Block
	Line int
}

type While struct {
	Cond Expr
	Body *Block
	Line int
}

type Write struct {
	Value Expr
	Line  int
}

// Return has a nil Value for a bare return.
type Return struct {
	Value Expr
	Line  int
}

type Block struct {
	Stmts []Stmt
	Line  int
}

// Alloc allocates a record or array on the heap and stores it in Target.
// Length is set for "alloc x of length n".
type Alloc struct {
	Target Expr
	Length Expr
	Line   int
}

// CallStmt evaluates a call for its effects.
type CallStmt struct {
	Call *Call
	Line int
}

func (n *Assign) Pos() int   { return n.Line }
func (n *If) Pos() int       { return n.Line }
func (n *While) Pos() int    { return n.Line }
func (n *Write) Pos() int    { return n.Line }
func (n *Return) Pos() int   { return n.Line }
func (n *Block) Pos() int    { return n.Line }
func (n *Alloc) Pos() int    { return n.Line }
func (n *CallStmt) Pos() int { return n.Line }

func (*Assign) node()   {}
func (*If) node()       {}
func (*While) node()    {}
func (*Write) node()    {}
func (*Return) node()   {}
func (*Block) node()    {}
func (*Alloc) node()    {}
func (*CallStmt) node() {}

func (*Assign) stmtNode()   {}
func (*If) stmtNode()       {}
func (*While) stmtNode()    {}
func (*Write) stmtNode()    {}
func (*Return) stmtNode()   {}
func (*Block) stmtNode()    {}
func (*Alloc) stmtNode()    {}
func (*CallStmt) stmtNode() {}
