package renderer

import (
	"github.com/dshills/jim/internal/editor"
	"github.com/dshills/jim/internal/input/mode"
	"github.com/dshills/jim/internal/renderer/backend"
	"github.com/dshills/jim/internal/renderer/layout"
	"github.com/dshills/jim/internal/renderer/statusline"
	"github.com/dshills/jim/internal/renderer/theme"
	"github.com/dshills/jim/internal/renderer/viewport"
)

// fillerRune marks rows past the end of the buffer.
const fillerRune = '~'

// Options configures the renderer.
type Options struct {
	// Theme supplies the styles. Nil means theme.Default().
	Theme *theme.Theme

	// Lines and columns kept between the cursor and the viewport edges.
	ScrollMarginVertical   int
	ScrollMarginHorizontal int
}

// DefaultOptions returns sensible default options.
func DefaultOptions() Options {
	return Options{
		ScrollMarginVertical:   2,
		ScrollMarginHorizontal: 4,
	}
}

// Renderer draws views on a backend.
type Renderer struct {
	backend  backend.Backend
	theme    *theme.Theme
	viewport *viewport.Viewport
	tabs     *layout.TabExpander
	status   *statusline.StatusLine
}

// New creates a renderer with the given options.
func New(b backend.Backend, opts Options) *Renderer {
	th := opts.Theme
	if th == nil {
		th = theme.Default()
	}

	w, h := b.Size()
	vp := viewport.NewViewport(w, h)
	vp.SetMargins(opts.ScrollMarginVertical, opts.ScrollMarginHorizontal)

	return &Renderer{
		backend:  b,
		theme:    th,
		viewport: vp,
		tabs:     layout.DefaultTabExpander(),
		status:   statusline.New(th),
	}
}

// Viewport returns the renderer's viewport.
func (r *Renderer) Viewport() *viewport.Viewport {
	return r.viewport
}

// Draw renders v and flushes it to the terminal.
func (r *Renderer) Draw(v editor.View) {
	b := r.backend
	width, height := b.Size()
	textHeight := height - r.status.Height()
	if textHeight < 1 {
		textHeight = 1
	}

	r.viewport.Resize(width, textHeight)
	r.status.Resize(width)
	r.tabs.SetTabWidth(v.TabWidth)

	b.Clear()

	cursorLine := ""
	if v.Cursor.Line < len(v.Lines) {
		cursorLine = v.Lines[v.Cursor.Line]
	}
	cursorCol := r.tabs.ScreenColumn(cursorLine, v.Cursor.Column)
	r.viewport.ScrollToReveal(v.Cursor.Line, cursorCol)

	top := r.viewport.TopLine()
	bottom := min(r.viewport.BottomLine(), top+height-1)
	for line := top; line <= bottom; line++ {
		row := line - top
		if line >= len(v.Lines) {
			b.SetCell(0, row, fillerRune, nil, r.theme.Filler)
			continue
		}
		r.drawLine(row, v.Lines[line], width)
	}

	cursorX, cursorY := r.viewport.BufferToScreen(v.Cursor.Line, cursorCol)
	if textHeight < height {
		if x, ok := r.status.Render(b, v, textHeight); ok {
			cursorX, cursorY = x, textHeight+1
		}
	}

	b.SetCursorStyle(cursorStyle(v.Mode))
	b.ShowCursor(cursorX, cursorY)
	b.Show()
}

// drawLine draws one buffer line on row, shifted by the viewport's left
// column. Clusters cut by the left edge are skipped.
func (r *Renderer) drawLine(row int, text string, width int) {
	left := r.viewport.LeftColumn()
	for _, g := range r.tabs.Layout(text) {
		x := g.Col - left
		if x < 0 {
			continue
		}
		if x+g.Width > width {
			break
		}
		if g.Runes[0] == ' ' && g.Width > 1 {
			for i := 0; i < g.Width; i++ {
				r.backend.SetCell(x+i, row, ' ', nil, r.theme.Text)
			}
			continue
		}
		r.backend.SetCell(x, row, g.Runes[0], g.Runes[1:], r.theme.Text)
	}
}

func cursorStyle(m mode.Mode) backend.CursorStyle {
	if m.CursorStyle() == mode.CursorBlock {
		return backend.CursorBlock
	}
	return backend.CursorBar
}
