package editor

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/dshills/jim/internal/engine/buffer"
	"github.com/dshills/jim/internal/engine/store"
	"github.com/dshills/jim/internal/input/mode"
)

// ErrNoDocument is returned when an operation needs a document that does
// not exist.
var ErrNoDocument = errors.New("no document")

// Option configures an Editor.
type Option func(*Editor)

// WithStore sets the store used to load and save files.
func WithStore(s *store.Store) Option {
	return func(e *Editor) {
		e.store = s
	}
}

// WithTabWidth sets the tab width for new buffers.
func WithTabWidth(width int) Option {
	return func(e *Editor) {
		if width > 0 {
			e.tabWidth = width
		}
	}
}

// Editor is an editing session.
type Editor struct {
	// docs[0] is the front document.
	docs      []*Document
	mode      *mode.State
	store     *store.Store
	tabWidth  int
	status    string
	statusErr bool
	quit      bool
}

// New creates an editor holding a single empty scratch document.
func New(opts ...Option) *Editor {
	e := &Editor{
		mode:     mode.NewState(),
		tabWidth: 4,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.store == nil {
		e.store = store.New()
	}
	e.docs = []*Document{e.newDocument("", "")}
	return e
}

func (e *Editor) newDocument(path, text string) *Document {
	buf := buffer.NewBufferFromString(text,
		buffer.WithPath(path),
		buffer.WithTabWidth(e.tabWidth),
	)
	return NewDocument(buf)
}

// Mode returns the mode state.
func (e *Editor) Mode() *mode.State {
	return e.mode
}

// Store returns the store used for file access.
func (e *Editor) Store() *store.Store {
	return e.store
}

// Front returns the document being edited.
func (e *Editor) Front() *Document {
	return e.docs[0]
}

// Documents returns the open documents, most recently used first.
func (e *Editor) Documents() []*Document {
	docs := make([]*Document, len(e.docs))
	copy(docs, e.docs)
	return docs
}

// Open brings the document for path to the front, loading it if it is
// not open yet. A file that does not exist yet opens as an empty buffer
// bound to path.
func (e *Editor) Open(path string) (*Document, error) {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	for i, doc := range e.docs {
		if doc.Path() == path {
			e.toFront(i)
			return doc, nil
		}
	}

	text, err := e.store.Load(path)
	if err != nil {
		if !store.IsNotExist(err) {
			return nil, err
		}
		text = ""
		e.SetStatus(fmt.Sprintf("%q [New File]", filepath.Base(path)))
	}

	return e.push(e.newDocument(path, text)), nil
}

// OpenString opens a document with the given content without touching
// the store. The document is bound to path, which may be empty.
func (e *Editor) OpenString(path, text string) *Document {
	return e.push(e.newDocument(path, text))
}

// push puts doc at the front, replacing the initial scratch document if
// it was never used.
func (e *Editor) push(doc *Document) *Document {
	if len(e.docs) == 1 && e.docs[0].isScratch() {
		e.docs[0] = doc
		return doc
	}
	e.docs = append([]*Document{doc}, e.docs...)
	return doc
}

func (e *Editor) toFront(i int) {
	if i == 0 {
		return
	}
	doc := e.docs[i]
	copy(e.docs[1 : i+1], e.docs[:i])
	e.docs[0] = doc
}

// Next rotates the front document to the back and returns the new front.
func (e *Editor) Next() *Document {
	if len(e.docs) > 1 {
		front := e.docs[0]
		copy(e.docs, e.docs[1:])
		e.docs[len(e.docs)-1] = front
	}
	return e.docs[0]
}

// Previous brings the least recently used document to the front.
func (e *Editor) Previous() *Document {
	e.toFront(len(e.docs) - 1)
	return e.docs[0]
}

// Save writes the front document to its path.
func (e *Editor) Save() error {
	doc := e.Front()
	if err := e.store.Save(doc.Path(), doc.Buffer.Text()); err != nil {
		return err
	}
	doc.Buffer.MarkClean()
	e.SetStatus(fmt.Sprintf("%q %dL written", doc.Name(), doc.Buffer.LineCount()))
	return nil
}

// Reload replaces the front document's content with the file on disk,
// discarding unsaved changes. The cursor keeps its offset where possible.
func (e *Editor) Reload() error {
	doc := e.Front()
	if doc.Path() == "" {
		return fmt.Errorf("%w: %w", store.ErrIO, store.ErrNoPath)
	}
	text, err := e.store.Load(doc.Path())
	if err != nil {
		return err
	}
	doc.Buffer.SetText(text)
	doc.Buffer.MarkClean()
	doc.Cursor.Sync(doc.Buffer)
	e.SetStatus(fmt.Sprintf("%q reloaded", doc.Name()))
	return nil
}

// Status returns the current status message.
func (e *Editor) Status() string {
	return e.status
}

// SetStatus replaces the status message.
func (e *Editor) SetStatus(msg string) {
	e.status = msg
	e.statusErr = false
}

// SetError shows err as the status message.
func (e *Editor) SetError(err error) {
	e.status = err.Error()
	e.statusErr = true
}

// StatusIsError reports whether the status message came from SetError.
func (e *Editor) StatusIsError() bool {
	return e.statusErr
}

// Quit asks the session to end.
func (e *Editor) Quit() {
	e.quit = true
}

// Quitting reports whether Quit was called.
func (e *Editor) Quitting() bool {
	return e.quit
}
