package lexer

import (
	"testing"

	"diec/internal/source"
)

// helper function to create a file
func createFile(content string) *source.File {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.die", []byte(content))
	return fs.Get(id)
}

// TestSequentialReading проверяет последовательное чтение и счётчик строк
func TestSequentialReading(t *testing.T) {
	cursor := NewCursor(createFile("a\nb"))

	if cursor.EOF() || cursor.Peek() != 'a' || cursor.Line() != 1 {
		t.Fatalf("unexpected start state")
	}
	cursor.Advance(2)
	if cursor.Peek() != 'b' || cursor.Line() != 2 {
		t.Fatalf("expected 'b' on line 2, got %q on line %d", cursor.Peek(), cursor.Line())
	}
	cursor.Advance(10)
	if !cursor.EOF() || cursor.Peek() != 0 || cursor.Remaining() != "" {
		t.Fatalf("expected EOF after over-advance")
	}
}

func TestMarkReset(t *testing.T) {
	cursor := NewCursor(createFile("ab\ncd"))
	cursor.Advance(1)
	m := cursor.Mark()
	cursor.Advance(3)
	if cursor.Line() != 2 {
		t.Fatalf("expected line 2, got %d", cursor.Line())
	}
	sp := cursor.SpanFrom(m)
	if sp.Start != 1 || sp.End != 4 {
		t.Fatalf("unexpected span %v", sp)
	}
	cursor.Reset(m)
	if cursor.Off != 1 || cursor.Line() != 1 || cursor.Remaining() != "b\ncd" {
		t.Fatalf("reset did not restore position: off=%d line=%d", cursor.Off, cursor.Line())
	}
}
