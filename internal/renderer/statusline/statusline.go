// Package statusline draws the status bar and the line under it.
package statusline

import (
	"fmt"

	"github.com/rivo/uniseg"

	"github.com/dshills/jim/internal/editor"
	"github.com/dshills/jim/internal/input/mode"
	"github.com/dshills/jim/internal/renderer/backend"
	"github.com/dshills/jim/internal/renderer/theme"
)

// commandPrompt is drawn before the command line.
const commandPrompt = ':'

// StatusLine renders the two bottom rows: the status bar with mode, file
// and position, and below it either the command line or the last message.
type StatusLine struct {
	theme *theme.Theme
	width int
}

// New creates a status line.
func New(th *theme.Theme) *StatusLine {
	return &StatusLine{theme: th}
}

// Resize updates the status line width.
func (s *StatusLine) Resize(width int) {
	s.width = width
}

// Height returns the number of rows the status line uses.
func (s *StatusLine) Height() int {
	return 2
}

// Render draws the status bar at row and the message or command line at
// row+1. In Command mode it returns the cursor column on the command line.
func (s *StatusLine) Render(b backend.Backend, v editor.View, row int) (cursorX int, ok bool) {
	s.renderStatusBar(b, v, row)

	if v.Mode == mode.Command {
		return s.renderCommandLine(b, v.CommandLine, row+1), true
	}
	s.renderMessage(b, v, row+1)
	return 0, false
}

// renderStatusBar renders the mode and file info line.
func (s *StatusLine) renderStatusBar(b backend.Backend, v editor.View, row int) {
	bar := s.theme.StatusBar
	s.fill(b, row, bar)

	col := drawText(b, 0, row, " "+v.Mode.DisplayName()+" ", s.theme.Mode(v.Mode), s.width)
	col = drawText(b, col, row, " ", bar, s.width)

	pos := FormatPosition(v)
	name := v.Name
	if v.Modified {
		name += " [+]"
	}
	drawText(b, col, row, name, bar, s.width-uniseg.StringWidth(pos)-2)

	if start := s.width - uniseg.StringWidth(pos) - 1; start > col {
		drawText(b, start, row, pos, bar, s.width)
	}
}

// renderCommandLine renders the command input line.
func (s *StatusLine) renderCommandLine(b backend.Backend, line string, row int) int {
	s.fill(b, row, s.theme.Message)
	drawText(b, 0, row, string(commandPrompt), s.theme.Message, s.width)
	end := drawText(b, 1, row, line, s.theme.Message, s.width)
	return min(end, s.width-1)
}

// renderMessage renders the status message.
func (s *StatusLine) renderMessage(b backend.Backend, v editor.View, row int) {
	style := s.theme.Message
	if v.StatusError {
		style = s.theme.Error
	}
	s.fill(b, row, style)
	drawText(b, 0, row, v.Status, style, s.width)
}

func (s *StatusLine) fill(b backend.Backend, row int, style backend.Style) {
	for x := 0; x < s.width; x++ {
		b.SetCell(x, row, ' ', nil, style)
	}
}

// FormatPosition formats the right side of the status bar, for example
// "2 buffers  Ln 3, Col 1". Lines and columns are shown 1-indexed.
func FormatPosition(v editor.View) string {
	pos := fmt.Sprintf("Ln %d, Col %d", v.Cursor.Line+1, v.Cursor.Column+1)
	if v.Buffers > 1 {
		pos = fmt.Sprintf("%d buffers  %s", v.Buffers, pos)
	}
	return pos
}

// drawText draws text from column x, stopping before limit. It returns
// the column after the last cell drawn.
func drawText(b backend.Backend, x, row int, text string, style backend.Style, limit int) int {
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		runes := g.Runes()
		w := g.Width()
		if w == 0 {
			continue
		}
		if x+w > limit {
			break
		}
		b.SetCell(x, row, runes[0], runes[1:], style)
		x += w
	}
	return x
}
