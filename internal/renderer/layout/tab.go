// Package layout turns a line of text into screen cells.
package layout

import (
	"github.com/rivo/uniseg"
)

// Glyph is one grapheme cluster placed on screen.
type Glyph struct {
	// Runes is what to draw. Tabs are drawn as spaces.
	Runes []rune

	// Start is the rune index of the cluster in the line.
	Start int

	// Col is the screen column of the first cell.
	Col int

	// Width is the number of cells covered.
	Width int

	// Size is the number of runes of the line the glyph stands for.
	Size int
}

// TabExpander lays out text with tab stops every tabWidth cells.
type TabExpander struct {
	tabWidth int
}

// NewTabExpander creates a tab expander with the given tab width.
func NewTabExpander(tabWidth int) *TabExpander {
	if tabWidth < 1 {
		tabWidth = 4
	}
	return &TabExpander{tabWidth: tabWidth}
}

// TabWidth returns the current tab width.
func (t *TabExpander) TabWidth() int {
	return t.tabWidth
}

// SetTabWidth sets the tab width.
func (t *TabExpander) SetTabWidth(width int) {
	if width < 1 {
		width = 1
	}
	t.tabWidth = width
}

// NextTabStop returns the next tab stop column after the given column.
func (t *TabExpander) NextTabStop(col int) int {
	return col + t.tabWidth - (col % t.tabWidth)
}

// Layout splits line into glyphs. Wide clusters take two cells and
// control characters are shown as '?'.
func (t *TabExpander) Layout(line string) []Glyph {
	var glyphs []Glyph
	col, start := 0, 0

	g := uniseg.NewGraphemes(line)
	for g.Next() {
		runes := g.Runes()
		glyph := Glyph{Runes: runes, Start: start, Col: col, Size: len(runes)}

		switch {
		case len(runes) == 1 && runes[0] == '\t':
			glyph.Runes = []rune{' '}
			glyph.Width = t.NextTabStop(col) - col
		case g.Width() == 0:
			glyph.Runes = []rune{'?'}
			glyph.Width = 1
		default:
			glyph.Width = g.Width()
		}

		glyphs = append(glyphs, glyph)
		col += glyph.Width
		start += glyph.Size
	}
	return glyphs
}

// ScreenColumn returns the screen column of the rune at index runeCol.
// Indexes inside a cluster map to the cluster's column, and indexes past
// the end continue one cell per rune.
func (t *TabExpander) ScreenColumn(line string, runeCol int) int {
	end, runes := 0, 0
	for _, g := range t.Layout(line) {
		if runeCol < g.Start+g.Size {
			return g.Col
		}
		end = g.Col + g.Width
		runes = g.Start + g.Size
	}
	return end + runeCol - runes
}

// DefaultTabExpander returns a tab expander with the default tab width of 4.
func DefaultTabExpander() *TabExpander {
	return NewTabExpander(4)
}
