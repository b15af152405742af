// Package cursor provides the edit position inside a buffer.
//
// A Cursor keeps two views of the same position in step:
//
//   - Index: the absolute rune offset into the buffer
//   - Column and Line: the 0-indexed (x, y) coordinate
//
// After every operation Index equals the start of Line plus Column, and
// Column never exceeds the length of Line.
//
// Movement Model:
//
// All movements saturate: asking to move past an edge of the buffer or
// of the current line leaves the cursor where it is. Horizontal movement
// never wraps to a neighbouring line. Only writing a newline, backspacing
// over one, and moving up or down change the line.
//
// The cursor never holds a copy of the text. Every method that needs to
// look at or change content takes the buffer as an argument:
//
//	buf := buffer.NewBufferFromString("hello\nworld")
//	c := cursor.New()
//
//	c.MoveDown(buf, 1)      // (0, 1)
//	c.MoveFullRight(buf)    // (5, 1), append position
//	c.WriteChar(buf, '!')   // "hello\nworld!"
//
// Thread Safety:
//
// A Cursor is not safe for concurrent use.
package cursor
