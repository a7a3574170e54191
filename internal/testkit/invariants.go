package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"diec/internal/ast"
	"diec/internal/source"
)

// CheckLineInvariants runs a minimal set of position invariants on a parsed
// file:
//
//  1. every node line lies within the file
//  2. a function tail never precedes its head
//  3. top-level declarations appear in non-decreasing line order
func CheckLineInvariants(prog *ast.Program, sf *source.File) error {
	if prog == nil || sf == nil {
		return fmt.Errorf("nil program or file")
	}
	limit, err := safecast.Conv[int32](sf.LineCount())
	if err != nil {
		return fmt.Errorf("line count overflow: %w", err)
	}

	var bad error
	ast.Inspect(prog, func(n ast.Node) bool {
		if bad != nil {
			return false
		}
		if line := n.Pos(); line < 1 || line > int(limit) {
			bad = fmt.Errorf("%T at line %d outside 1..%d", n, line, limit)
			return false
		}
		if fn, ok := n.(*ast.FunctionDecl); ok && fn.Tail != nil && fn.Tail.Line < fn.Head.Line {
			bad = fmt.Errorf("function %s: tail line %d before head line %d", fn.Head.Name, fn.Tail.Line, fn.Head.Line)
			return false
		}
		return true
	})
	if bad != nil {
		return bad
	}

	prev := 0
	for _, d := range prog.Decls {
		if d.Pos() < prev {
			return fmt.Errorf("declaration at line %d follows line %d", d.Pos(), prev)
		}
		prev = d.Pos()
	}
	return nil
}
