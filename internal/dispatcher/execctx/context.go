// Package execctx provides the dispatch context threaded through every
// action invocation.
package execctx

import (
	"github.com/dshills/jim/internal/editor"
	"github.com/dshills/jim/internal/engine/buffer"
	"github.com/dshills/jim/internal/engine/cursor"
	"github.com/dshills/jim/internal/input/key"
	"github.com/dshills/jim/internal/input/keymap"
	"github.com/dshills/jim/internal/input/mode"
)

// DefaultHistorySize is the number of keys kept in the history when no
// size is configured.
const DefaultHistorySize = 16

// Context is the dispatch state shared between the dispatcher and the
// actions it runs.
//
// It holds the rolling key history, the armed pending mapping (if any)
// and the editor whose front document the actions operate on. While a
// mapping is armed the context is locked: no other mapping is evaluated
// until the next key fires it.
type Context struct {
	// Editor is the session actions operate on.
	Editor *editor.Editor

	history key.Sequence
	limit   int
	armed   *keymap.Mapping
	action  string
}

// New creates a context for ed keeping at most historySize keys.
// A non-positive size selects DefaultHistorySize.
func New(ed *editor.Editor, historySize int) *Context {
	if historySize <= 0 {
		historySize = DefaultHistorySize
	}
	return &Context{
		Editor:  ed,
		history: make(key.Sequence, 0, historySize),
		limit:   historySize,
	}
}

// Document returns the front document.
func (c *Context) Document() *editor.Document {
	return c.Editor.Front()
}

// Buffer returns the front document's buffer.
func (c *Context) Buffer() *buffer.Buffer {
	return c.Editor.Front().Buffer
}

// Cursor returns the front document's cursor.
func (c *Context) Cursor() *cursor.Cursor {
	return c.Editor.Front().Cursor
}

// Mode returns the editor's mode state.
func (c *Context) Mode() *mode.State {
	return c.Editor.Mode()
}

// History

// History returns a copy of the key history, oldest first.
func (c *Context) History() key.Sequence {
	return c.history.Clone()
}

// HistorySize returns the maximum number of keys kept.
func (c *Context) HistorySize() int {
	return c.limit
}

// Push appends ev to the history, dropping the oldest key when full.
func (c *Context) Push(ev key.Event) {
	if len(c.history) == c.limit {
		copy(c.history, c.history[1:])
		c.history = c.history[:len(c.history)-1]
	}
	c.history = append(c.history, ev)
}

// ClearHistory empties the key history.
func (c *Context) ClearHistory() {
	c.history = c.history[:0]
}

// Arg returns the most recent key. For a pending mapping this is the
// argument key that fired it.
func (c *Context) Arg() (key.Event, bool) {
	return c.history.Last()
}

// ArgRune returns the argument key as a printable character.
func (c *Context) ArgRune() (rune, bool) {
	ev, ok := c.Arg()
	if !ok || !ev.IsChar() {
		return 0, false
	}
	return ev.Rune, true
}

// Pending mappings

// Arm records m as waiting for its argument key and locks the context.
func (c *Context) Arm(m *keymap.Mapping) {
	c.armed = m
}

// Armed returns the mapping waiting for its argument, or nil.
func (c *Context) Armed() *keymap.Mapping {
	return c.armed
}

// Locked reports whether a pending mapping holds the lock.
func (c *Context) Locked() bool {
	return c.armed != nil
}

// Disarm releases the armed mapping and the lock.
func (c *Context) Disarm() {
	c.armed = nil
}

// Action returns the name of the action being run.
func (c *Context) Action() string {
	return c.action
}

// SetAction records the name of the action about to run.
func (c *Context) SetAction(name string) {
	c.action = name
}

// Validate checks that the context can run actions.
func (c *Context) Validate() error {
	if c.Editor == nil {
		return ErrMissingEditor
	}
	return nil
}
