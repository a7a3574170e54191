package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fxamacker/cbor/v2"
)

// Shape is the structure of a subtree with line numbers dropped.
type Shape struct {
	Kind     string  `cbor:"1,keyasint" json:"kind"`
	Attr     string  `cbor:"2,keyasint,omitempty" json:"attr,omitempty"`
	Children []Shape `cbor:"3,keyasint,omitempty" json:"children,omitempty"`
}

// ShapeOf builds the line-free shape of n.
func ShapeOf(n Node) Shape {
	s := Shape{Kind: nodeKind(n), Attr: nodeAttr(n)}
	for _, c := range Children(n) {
		s.Children = append(s.Children, ShapeOf(c))
	}
	return s
}

var shapeMode = func() cbor.EncMode {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return em
}()

// EncodeShape serializes the shape of n in canonical CBOR, so equal trees
// encode to equal bytes.
func EncodeShape(n Node) ([]byte, error) {
	return shapeMode.Marshal(ShapeOf(n))
}

// DecodeShape is the inverse of EncodeShape.
func DecodeShape(data []byte) (Shape, error) {
	var s Shape
	err := cbor.Unmarshal(data, &s)
	return s, err
}

// String renders the shape as an s-expression.
func (s Shape) String() string {
	var sb strings.Builder
	s.write(&sb)
	return sb.String()
}

func (s Shape) write(sb *strings.Builder) {
	sb.WriteByte('(')
	sb.WriteString(s.Kind)
	if s.Attr != "" {
		sb.WriteByte(' ')
		sb.WriteString(s.Attr)
	}
	for _, c := range s.Children {
		sb.WriteByte(' ')
		c.write(sb)
	}
	sb.WriteByte(')')
}

func nodeKind(n Node) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", n), "*ast.")
}

func nodeAttr(n Node) string {
	switch n := n.(type) {
	case *FunctionHead:
		return n.Name
	case *FunctionTail:
		return n.Name
	case *Param:
		return n.Name
	case *VarDecl:
		return n.Name
	case *TypeDecl:
		return n.Name
	case *Field:
		return n.Name
	case *BinaryOp:
		return n.Op.String()
	case *UnaryOp:
		return n.Op.String()
	case *Literal:
		return n.Kind.String() + ":" + n.Text
	case *Identifier:
		return n.Name
	case *FieldAccess:
		return n.Field
	case *ArrayType:
		if n.Length > 0 {
			return strconv.Itoa(n.Length)
		}
	case *NamedType:
		return n.Name
	}
	return ""
}
