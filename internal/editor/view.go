package editor

import (
	"github.com/dshills/jim/internal/engine/buffer"
	"github.com/dshills/jim/internal/input/mode"
)

// View is a read-only snapshot of what the screen should show.
type View struct {
	Name        string
	Modified    bool
	Lines       []string
	Cursor      buffer.Point
	TabWidth    int
	Mode        mode.Mode
	CommandLine string
	Status      string
	StatusError bool
	Buffers     int
}

// View captures the current state for rendering.
func (e *Editor) View() View {
	doc := e.Front()
	return View{
		Name:        doc.Name(),
		Modified:    doc.Modified(),
		Lines:       doc.Buffer.Lines(),
		Cursor:      doc.Position(),
		TabWidth:    doc.Buffer.TabWidth(),
		Mode:        e.mode.Current(),
		CommandLine: e.mode.CommandLine(),
		Status:      e.Status(),
		StatusError: e.StatusIsError(),
		Buffers:     len(e.docs),
	}
}
