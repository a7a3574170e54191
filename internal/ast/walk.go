package ast

import "fmt"

// Action tells Walk whether to visit a node's children.
type Action uint8

const (
	Descend Action = iota
	SkipChildren
)

// Visitor receives Enter before a node's children and Exit after them.
// Exit is called even when Enter returned SkipChildren.
type Visitor interface {
	Enter(n Node) (Action, error)
	Exit(n Node) error
}

// Funcs adapts plain functions to Visitor. Nil fields are no-ops.
type Funcs struct {
	EnterFn func(Node) (Action, error)
	ExitFn  func(Node) error
}

func (f Funcs) Enter(n Node) (Action, error) {
	if f.EnterFn == nil {
		return Descend, nil
	}
	return f.EnterFn(n)
}

func (f Funcs) Exit(n Node) error {
	if f.ExitFn == nil {
		return nil
	}
	return f.ExitFn(n)
}

// Walk visits root depth-first. The first error aborts the walk.
func Walk(root Node, v Visitor) error {
	if root == nil {
		return nil
	}
	act, err := v.Enter(root)
	if err != nil {
		return err
	}
	if act == Descend {
		for _, c := range Children(root) {
			if err := Walk(c, v); err != nil {
				return err
			}
		}
	}
	return v.Exit(root)
}

// Inspect walks the tree calling fn on entry; returning false skips children.
func Inspect(root Node, fn func(Node) bool) {
	_ = Walk(root, Funcs{EnterFn: func(n Node) (Action, error) {
		if fn(n) {
			return Descend, nil
		}
		return SkipChildren, nil
	}})
}

// Children returns the direct children of n in source order.
// Absent optional children are omitted.
func Children(n Node) []Node {
	var out []Node
	add := func(c Node) {
		if c != nil {
			out = append(out, c)
		}
	}
	switch n := n.(type) {
	case *Program:
		for _, d := range n.Decls {
			add(d)
		}
	case *FunctionDecl:
		add(n.Head)
		for _, d := range n.Locals {
			add(d)
		}
		for _, s := range n.Body {
			add(s)
		}
		add(n.Tail)
	case *FunctionHead:
		for _, p := range n.Params {
			add(p)
		}
		if n.Result != nil {
			add(n.Result)
		}
	case *FunctionTail:
	case *Param:
		add(n.Type)
	case *VarDecl:
		add(n.Type)
	case *TypeDecl:
		add(n.Type)
	case *Field:
		add(n.Type)

	case *Assign:
		add(n.Target)
		add(n.Value)
	case *If:
		add(n.Cond)
		add(n.Then)
		if n.Else != nil {
			add(n.Else)
		}
	case *While:
		add(n.Cond)
		add(n.Body)
	case *Write:
		add(n.Value)
	case *Return:
		if n.Value != nil {
			add(n.Value)
		}
	case *Block:
		for _, s := range n.Stmts {
			add(s)
		}
	case *Alloc:
		add(n.Target)
		if n.Length != nil {
			add(n.Length)
		}
	case *CallStmt:
		add(n.Call)

	case *BinaryOp:
		add(n.Left)
		add(n.Right)
	case *UnaryOp:
		add(n.Operand)
	case *Literal, *Identifier:
	case *Index:
		add(n.Base)
		add(n.Index)
	case *FieldAccess:
		add(n.Base)
	case *Call:
		add(n.Callee)
		for _, a := range n.Args {
			add(a)
		}
	case *Abs:
		add(n.Operand)

	case *IntType, *CharType, *BoolType, *NamedType:
	case *ArrayType:
		add(n.Elem)
	case *RecordType:
		for _, f := range n.Fields {
			add(f)
		}
	default:
		panic(fmt.Sprintf("ast: unexpected node %T", n))
	}
	return out
}
