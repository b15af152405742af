package buffer

import "fmt"

// Point is a (line, column) coordinate in a buffer. Both are 0-indexed
// and Column counts runes, so a tab or a wide character is one column.
type Point struct {
	Line   int
	Column int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Column)
}
