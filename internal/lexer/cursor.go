package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"diec/internal/source"
)

// Cursor представляет собой позицию в файле
type Cursor struct {
	File *source.File
	Off  uint32
	line int
	text string
}

// NewCursor creates a new cursor for the provided file.
func NewCursor(f *source.File) Cursor {
	if _, err := safecast.Conv[uint32](len(f.Content)); err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return Cursor{File: f, line: 1, text: string(f.Content)}
}

func (c *Cursor) limit() uint32 {
	return uint32(len(c.File.Content)) // checked in NewCursor
}

// EOF проверяет, достигнут ли конец файла
func (c *Cursor) EOF() bool {
	return c.Off >= c.limit()
}

// Peek читает текущий байт, если есть, иначе возвращает 0
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.File.Content[c.Off]
}

// Remaining returns the unread part of the source.
func (c *Cursor) Remaining() string {
	if c.EOF() {
		return ""
	}
	return c.text[c.Off:]
}

// Line returns the 1-based line of the current offset.
func (c *Cursor) Line() int {
	return c.line
}

// Advance moves the cursor n bytes forward, stopping at the end of input.
func (c *Cursor) Advance(n int) {
	for ; n > 0 && !c.EOF(); n-- {
		if c.File.Content[c.Off] == '\n' {
			c.line++
		}
		c.Off++
	}
}

// Mark это метка, что бы быстро вернуть курсор назад
type Mark struct {
	off  uint32
	line int
}

// Mark сохраняет текущую позицию курсора
func (c *Cursor) Mark() Mark {
	return Mark{off: c.Off, line: c.line}
}

// SpanFrom получает Span для фрагмента, начиная с метки
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{
		File:  c.File.ID,
		Start: m.off,
		End:   c.Off,
	}
}

// Reset возвращает курсор назад к метке
func (c *Cursor) Reset(m Mark) {
	c.Off = m.off
	c.line = m.line
}
