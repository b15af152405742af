// Package viewport tracks which part of the buffer is on screen.
package viewport

import "sync"

// Viewport represents the visible portion of the buffer. Lines are buffer
// lines and columns are screen columns.
type Viewport struct {
	mu sync.RWMutex

	// Position in buffer
	topLine    int
	leftColumn int

	// Size in screen cells
	width  int
	height int

	// Scroll margins (keep cursor this far from edges)
	marginVertical   int
	marginHorizontal int
}

// NewViewport creates a viewport with the given size.
// Width and height are clamped to a minimum of 1.
func NewViewport(width, height int) *Viewport {
	v := &Viewport{}
	v.resize(width, height)
	return v
}

// Width returns the viewport width.
func (v *Viewport) Width() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.width
}

// Height returns the viewport height.
func (v *Viewport) Height() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.height
}

// TopLine returns the first visible line.
func (v *Viewport) TopLine() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.topLine
}

// BottomLine returns the last visible line.
func (v *Viewport) BottomLine() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.topLine + v.height - 1
}

// LeftColumn returns the first visible column.
func (v *Viewport) LeftColumn() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.leftColumn
}

// Resize updates the viewport size.
func (v *Viewport) Resize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.resize(width, height)
}

func (v *Viewport) resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	v.width = width
	v.height = height
}

// SetMargins sets how many lines and columns to keep between the cursor
// and the viewport edges.
func (v *Viewport) SetMargins(vertical, horizontal int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.marginVertical = max(vertical, 0)
	v.marginHorizontal = max(horizontal, 0)
}

// effectiveMargin shrinks margin so both margins fit in size with a
// cell to spare.
func effectiveMargin(margin, size int) int {
	if limit := (size - 1) / 2; margin > limit {
		return limit
	}
	return margin
}

// BufferToScreen converts a buffer line and screen column to a position
// relative to the viewport.
func (v *Viewport) BufferToScreen(line, col int) (row, screenCol int) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return line - v.topLine, col - v.leftColumn
}

// ScrollToReveal scrolls the least amount that keeps (line, col) inside
// the margins. It returns true if the viewport moved.
func (v *Viewport) ScrollToReveal(line, col int) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	top, left := v.topLine, v.leftColumn

	mv := effectiveMargin(v.marginVertical, v.height)
	if line < v.topLine+mv {
		top = max(line-mv, 0)
	} else if line > v.topLine+v.height-1-mv {
		top = line - v.height + 1 + mv
	}

	mh := effectiveMargin(v.marginHorizontal, v.width)
	if col < v.leftColumn+mh {
		left = max(col-mh, 0)
	} else if col > v.leftColumn+v.width-1-mh {
		left = col - v.width + 1 + mh
	}

	moved := top != v.topLine || left != v.leftColumn
	v.topLine, v.leftColumn = top, left
	return moved
}
