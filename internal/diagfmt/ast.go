package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"diec/internal/ast"
)

// FormatASTTree prints the tree with box-drawing connectors, one node per
// line, followed by its source line.
func FormatASTTree(w io.Writer, root ast.Node) error {
	if root == nil {
		return nil
	}
	var sb strings.Builder
	writeNode(&sb, root, ast.ShapeOf(root), "", "")
	_, err := io.WriteString(w, sb.String())
	return err
}

// writeNode walks the node and its shape in lockstep; ShapeOf and
// ast.Children yield children in the same order.
func writeNode(sb *strings.Builder, n ast.Node, s ast.Shape, lead, childLead string) {
	sb.WriteString(lead)
	sb.WriteString(s.Kind)
	if s.Attr != "" {
		sb.WriteByte(' ')
		sb.WriteString(s.Attr)
	}
	fmt.Fprintf(sb, " @%d\n", n.Pos())
	kids := ast.Children(n)
	for i, c := range kids {
		last := i == len(kids)-1
		conn, next := "├─ ", "│  "
		if last {
			conn, next = "└─ ", "   "
		}
		writeNode(sb, c, s.Children[i], childLead+conn, childLead+next)
	}
}

// FormatASTJSON writes the line-free shape of the tree as JSON.
func FormatASTJSON(w io.Writer, root ast.Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ast.ShapeOf(root))
}

// FormatASTCBOR writes the canonical CBOR encoding of the tree shape.
func FormatASTCBOR(w io.Writer, root ast.Node) error {
	data, err := ast.EncodeShape(root)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
