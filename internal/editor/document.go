package editor

import (
	"path/filepath"

	"github.com/dshills/jim/internal/engine/buffer"
	"github.com/dshills/jim/internal/engine/cursor"
)

// Document pairs a buffer with the cursor editing it.
type Document struct {
	Buffer *buffer.Buffer
	Cursor *cursor.Cursor
}

// NewDocument creates a document for buf with the cursor at offset 0.
func NewDocument(buf *buffer.Buffer) *Document {
	return &Document{
		Buffer: buf,
		Cursor: cursor.New(),
	}
}

// Path returns the file the document is bound to.
func (d *Document) Path() string {
	return d.Buffer.Path()
}

// Name returns a display name for the document.
func (d *Document) Name() string {
	if d.Buffer.Path() == "" {
		return "Untitled"
	}
	return filepath.Base(d.Buffer.Path())
}

// Modified reports whether the document has unsaved changes.
func (d *Document) Modified() bool {
	return d.Buffer.Modified()
}

// Position returns the cursor's (column, line) position.
func (d *Document) Position() buffer.Point {
	return d.Cursor.Position(d.Buffer)
}

// isScratch reports whether the document is an untouched unnamed buffer.
func (d *Document) isScratch() bool {
	return d.Buffer.Path() == "" && !d.Buffer.Modified() && d.Buffer.IsEmpty()
}
