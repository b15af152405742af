package buffer

import (
	"errors"
	"sort"

	"github.com/google/uuid"
)

// Errors returned by buffer operations.
var (
	ErrOutOfBounds = errors.New("index out of bounds")
)

// ID identifies a buffer for the lifetime of an editing session.
type ID = uuid.UUID

// Buffer is an editable sequence of runes bound to a storage path.
type Buffer struct {
	id       ID
	path     string
	content  []rune
	tabWidth int
	modified bool

	// lineStarts[n] is the index of the first rune of line n.
	// lineStarts[0] is always 0.
	lineStarts []int
}

// NewBuffer creates a new empty buffer.
func NewBuffer(opts ...Option) *Buffer {
	b := &Buffer{
		id:         uuid.New(),
		tabWidth:   4,
		lineStarts: []int{0},
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// NewBufferFromString creates a buffer with initial content.
func NewBufferFromString(s string, opts ...Option) *Buffer {
	b := NewBuffer(opts...)
	b.SetText(s)
	b.modified = false
	return b
}

// ID returns the buffer's session identity.
func (b *Buffer) ID() ID {
	return b.id
}

// Path returns the storage path the buffer was loaded from, if any.
func (b *Buffer) Path() string {
	return b.path
}

// TabWidth returns the display width of a tab character.
func (b *Buffer) TabWidth() int {
	return b.tabWidth
}

// Modified reports whether the buffer changed since it was loaded or
// last marked clean.
func (b *Buffer) Modified() bool {
	return b.modified
}

// MarkClean clears the modified flag, typically after a save.
func (b *Buffer) MarkClean() {
	b.modified = false
}

// Read Operations

// Text returns the full buffer content as a string.
func (b *Buffer) Text() string {
	return string(b.content)
}

// Len returns the number of runes in the buffer.
func (b *Buffer) Len() int {
	return len(b.content)
}

// IsEmpty returns true if the buffer has no content.
func (b *Buffer) IsEmpty() bool {
	return len(b.content) == 0
}

// RuneAt returns the rune at index, or false if index is out of range.
func (b *Buffer) RuneAt(index int) (rune, bool) {
	if index < 0 || index >= len(b.content) {
		return 0, false
	}
	return b.content[index], true
}

// LineCount returns the number of lines. An empty buffer has one line.
func (b *Buffer) LineCount() int {
	return len(b.lineStarts)
}

// LineStart returns the index of the first rune of line n.
func (b *Buffer) LineStart(n int) (int, bool) {
	if n < 0 || n >= len(b.lineStarts) {
		return 0, false
	}
	return b.lineStarts[n], true
}

// LineLength returns the number of runes in line n, excluding its
// newline. The second result is false if there is no such line.
func (b *Buffer) LineLength(n int) (int, bool) {
	if n < 0 || n >= len(b.lineStarts) {
		return 0, false
	}
	return b.lineEnd(n) - b.lineStarts[n], true
}

// Line returns the text of line n without its newline.
func (b *Buffer) Line(n int) (string, bool) {
	if n < 0 || n >= len(b.lineStarts) {
		return "", false
	}
	return string(b.content[b.lineStarts[n]:b.lineEnd(n)]), true
}

// Lines returns the text of every line, without newlines.
func (b *Buffer) Lines() []string {
	lines := make([]string, len(b.lineStarts))
	for n := range b.lineStarts {
		lines[n] = string(b.content[b.lineStarts[n]:b.lineEnd(n)])
	}
	return lines
}

// lineEnd returns the index just past the last rune of line n.
func (b *Buffer) lineEnd(n int) int {
	if n+1 < len(b.lineStarts) {
		return b.lineStarts[n+1] - 1
	}
	return len(b.content)
}

// Coordinate Conversion

// OffsetToPoint converts a rune index to line/column.
// Indexes past the end map to the end of the buffer.
func (b *Buffer) OffsetToPoint(index int) Point {
	if index < 0 {
		index = 0
	}
	if index > len(b.content) {
		index = len(b.content)
	}
	line := sort.SearchInts(b.lineStarts, index+1) - 1
	return Point{Line: line, Column: index - b.lineStarts[line]}
}

// PointToOffset converts line/column to a rune index.
// The column is clamped to the line's length.
func (b *Buffer) PointToOffset(p Point) (int, error) {
	length, ok := b.LineLength(p.Line)
	if !ok {
		return 0, ErrOutOfBounds
	}
	col := p.Column
	if col < 0 {
		col = 0
	}
	if col > length {
		col = length
	}
	return b.lineStarts[p.Line] + col, nil
}

// Write Operations

// Insert inserts r before index. Subsequent content shifts right by one.
func (b *Buffer) Insert(index int, r rune) error {
	if index < 0 || index > len(b.content) {
		return ErrOutOfBounds
	}

	b.content = append(b.content, 0)
	copy(b.content[index+1:], b.content[index:])
	b.content[index] = r

	// Line starts after the insertion point move right.
	first := sort.SearchInts(b.lineStarts, index+1)
	for i := first; i < len(b.lineStarts); i++ {
		b.lineStarts[i]++
	}
	if r == '\n' {
		b.lineStarts = append(b.lineStarts, 0)
		copy(b.lineStarts[first+1:], b.lineStarts[first:])
		b.lineStarts[first] = index + 1
	}

	b.modified = true
	return nil
}

// Remove deletes the rune at index.
func (b *Buffer) Remove(index int) error {
	if index < 0 || index >= len(b.content) {
		return ErrOutOfBounds
	}

	r := b.content[index]
	b.content = append(b.content[:index], b.content[index+1:]...)

	first := sort.SearchInts(b.lineStarts, index+1)
	if r == '\n' {
		// The line that began just after this newline disappears.
		b.lineStarts = append(b.lineStarts[:first], b.lineStarts[first+1:]...)
	}
	for i := first; i < len(b.lineStarts); i++ {
		b.lineStarts[i]--
	}

	b.modified = true
	return nil
}

// SetText replaces the entire buffer content.
func (b *Buffer) SetText(s string) {
	b.content = []rune(s)
	b.reindex()
	b.modified = true
}

// reindex rebuilds the line-start index from scratch.
func (b *Buffer) reindex() {
	b.lineStarts = b.lineStarts[:0]
	b.lineStarts = append(b.lineStarts, 0)
	for i, r := range b.content {
		if r == '\n' {
			b.lineStarts = append(b.lineStarts, i+1)
		}
	}
}
