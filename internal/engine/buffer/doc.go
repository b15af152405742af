// Package buffer provides the mutable text buffer edited by the cursor.
//
// A Buffer holds its content as a sequence of runes. Newline characters
// are ordinary content; the buffer derives line boundaries from them and
// keeps a line-start index up to date on every insert and remove.
//
// Basic usage:
//
//	buf := buffer.NewBufferFromString("hello\nworld")
//
//	buf.Insert(5, '!')   // "hello!\nworld"
//	buf.Remove(0)        // "ello!\nworld"
//
//	n, ok := buf.LineLength(1) // 5, true
//	_, ok = buf.LineLength(2)  // 0, false: no such line
//
// Positions:
//
// All offsets are rune indexes. A Point is a (line, column) pair where
// column counts runes from the start of the line.
//
// The buffer does no clamping of its own: out-of-range indexes fail with
// ErrOutOfBounds and callers (the cursor) are expected to clamp first.
// A Buffer is not safe for concurrent use; the editor mutates it from a
// single goroutine.
package buffer
