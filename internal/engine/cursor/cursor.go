package cursor

import (
	"fmt"

	"github.com/dshills/jim/internal/engine/buffer"
)

// Point is an alias for buffer.Point for convenience.
type Point = buffer.Point

// Cursor represents the insertion point in a buffer.
type Cursor struct {
	index  int
	column int
	line   int
}

// New creates a cursor at offset 0.
func New() *Cursor {
	return &Cursor{}
}

// NewAt creates a cursor at the given offset of buf.
// The offset is clamped to the buffer.
func NewAt(buf *buffer.Buffer, index int) *Cursor {
	c := New()
	c.SetIndex(buf, index)
	return c
}

// Index returns the cursor's absolute rune offset.
func (c *Cursor) Index() int {
	return c.index
}

// Column returns the cursor's 0-indexed column.
func (c *Cursor) Column() int {
	return c.column
}

// Line returns the cursor's 0-indexed line.
func (c *Cursor) Line() int {
	return c.line
}

// String returns a debug representation of the cursor.
func (c *Cursor) String() string {
	return fmt.Sprintf("Cursor{index: %d, x: %d, y: %d}", c.index, c.column, c.line)
}

// SetIndex moves the cursor to index and re-derives column and line.
// The index is clamped to [0, buf.Len()].
func (c *Cursor) SetIndex(buf *buffer.Buffer, index int) {
	if index < 0 {
		index = 0
	}
	if index > buf.Len() {
		index = buf.Len()
	}
	p := buf.OffsetToPoint(index)
	c.index = index
	c.column = p.Column
	c.line = p.Line
}

// Sync re-derives the cursor from its index after the buffer changed
// underneath it, for example after a reload.
func (c *Cursor) Sync(buf *buffer.Buffer) {
	c.SetIndex(buf, c.index)
}

// Position returns the (column, line) pair with the column clamped to the
// current line's length.
func (c *Cursor) Position(buf *buffer.Buffer) Point {
	length := c.lineLength(buf)
	col := c.column
	if col > length {
		col = length
	}
	return Point{Line: c.line, Column: col}
}

// Movement

// MoveLeft moves up to n columns left, stopping at column 0.
func (c *Cursor) MoveLeft(buf *buffer.Buffer, n int) {
	for i := 0; i < n; i++ {
		if c.column == 0 {
			return
		}
		c.column--
		c.index--
	}
}

// MoveRight moves up to n columns right, stopping on the last character
// of the line.
func (c *Cursor) MoveRight(buf *buffer.Buffer, n int) {
	length := c.lineLength(buf)
	for i := 0; i < n; i++ {
		if c.column+1 >= length {
			return
		}
		c.column++
		c.index++
	}
}

// ForceMoveRight moves up to n columns right and may land one column past
// the last character (the append position). It refuses to move when the
// rune just before the cursor is a newline, so it does nothing at column
// 0 of any line but the first, and it never steps onto a newline.
func (c *Cursor) ForceMoveRight(buf *buffer.Buffer, n int) {
	length := c.lineLength(buf)
	for i := 0; i < n; i++ {
		if prev, ok := buf.RuneAt(c.index - 1); ok && prev == '\n' {
			return
		}
		if c.column >= length {
			return
		}
		c.column++
		c.index++
	}
}

// MoveFullLeft moves to column 0 of the current line.
func (c *Cursor) MoveFullLeft() {
	c.index -= c.column
	c.column = 0
}

// MoveFullRight moves to the append position of the current line.
func (c *Cursor) MoveFullRight(buf *buffer.Buffer) {
	length := c.lineLength(buf)
	c.index += length - c.column
	c.column = length
}

// MoveUp moves up to n lines up, clamping the column to each target line.
func (c *Cursor) MoveUp(buf *buffer.Buffer, n int) {
	for i := 0; i < n; i++ {
		if c.line == 0 {
			return
		}
		c.moveToLine(buf, c.line-1)
	}
}

// MoveDown moves up to n lines down, clamping the column to each target line.
func (c *Cursor) MoveDown(buf *buffer.Buffer, n int) {
	for i := 0; i < n; i++ {
		if c.line+1 >= buf.LineCount() {
			return
		}
		c.moveToLine(buf, c.line+1)
	}
}

// MoveToLine moves to the given line, clamping the line to the buffer and
// the column to the line.
func (c *Cursor) MoveToLine(buf *buffer.Buffer, line int) {
	if line < 0 {
		line = 0
	}
	if last := buf.LineCount() - 1; line > last {
		line = last
	}
	c.moveToLine(buf, line)
}

func (c *Cursor) moveToLine(buf *buffer.Buffer, line int) {
	index, err := buf.PointToOffset(Point{Line: line, Column: c.column})
	if err != nil {
		return
	}
	start, _ := buf.LineStart(line)
	c.line = line
	c.column = index - start
	c.index = index
}

// Editing

// WriteChar inserts r at the cursor and moves past it. A newline splits
// the current line and puts the cursor at the start of the new one.
func (c *Cursor) WriteChar(buf *buffer.Buffer, r rune) error {
	if err := buf.Insert(c.index, r); err != nil {
		return fmt.Errorf("write %q at %d: %w", r, c.index, err)
	}

	c.index++
	if r == '\n' {
		c.line++
		c.column = 0
	} else {
		c.column++
	}
	return nil
}

// WriteString writes each rune of s in order.
func (c *Cursor) WriteString(buf *buffer.Buffer, s string) error {
	for _, r := range s {
		if err := c.WriteChar(buf, r); err != nil {
			return err
		}
	}
	return nil
}

// Backspace removes the rune before the cursor. Removing a newline joins
// the current line onto the previous one and leaves the cursor at the
// previous line's old end. Does nothing at the start of the buffer.
func (c *Cursor) Backspace(buf *buffer.Buffer) error {
	if c.index == 0 {
		return nil
	}

	prev, ok := buf.RuneAt(c.index - 1)
	if !ok {
		return fmt.Errorf("backspace at %d: %w", c.index, buffer.ErrOutOfBounds)
	}

	if prev == '\n' {
		c.line--
		c.column, _ = buf.LineLength(c.line)
	} else {
		c.column--
	}
	c.index--

	if err := buf.Remove(c.index); err != nil {
		return fmt.Errorf("backspace at %d: %w", c.index+1, err)
	}
	return nil
}

// Delete removes the rune under the cursor without crossing a newline.
// If the cursor ends up past the last character of a non-empty line it
// steps back onto it.
func (c *Cursor) Delete(buf *buffer.Buffer) error {
	r, ok := buf.RuneAt(c.index)
	if !ok || r == '\n' {
		return nil
	}

	if err := buf.Remove(c.index); err != nil {
		return fmt.Errorf("delete at %d: %w", c.index, err)
	}

	if length := c.lineLength(buf); c.column > 0 && c.column >= length {
		c.column--
		c.index--
	}
	return nil
}

// lineLength returns the length of the cursor's line, or 0 if the line
// no longer exists.
func (c *Cursor) lineLength(buf *buffer.Buffer) int {
	length, _ := buf.LineLength(c.line)
	return length
}
