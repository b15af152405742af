// Package backend provides the terminal abstraction the editor draws on
// and reads keys from.
package backend

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/jim/internal/input/key"
)

// CursorStyle defines how the cursor appears.
type CursorStyle int

const (
	CursorBlock CursorStyle = iota
	CursorBar
	CursorHidden
)

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
	EventInterrupt
	EventClosed
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key is set for EventKey.
	Key key.Event

	// Width and Height are set for EventResize.
	Width, Height int
}

// Style is the look of a cell.
type Style = tcell.Style

// StyleDefault is the terminal's default look.
var StyleDefault = tcell.StyleDefault

// Backend is a character-cell display with keyboard input.
type Backend interface {
	// Init puts the terminal into raw mode and takes over the screen.
	Init() error

	// Shutdown restores the terminal.
	Shutdown()

	// Size returns the screen size in cells.
	Size() (width, height int)

	// PollEvent blocks until the next event. It returns EventClosed
	// once the backend has been shut down.
	PollEvent() Event

	// Interrupt wakes a blocked PollEvent with an EventInterrupt.
	Interrupt()

	// Clear blanks the back buffer.
	Clear()

	// SetCell writes a grapheme cluster at (x, y). combining holds any
	// runes after the first.
	SetCell(x, y int, r rune, combining []rune, style Style)

	// ShowCursor places the cursor at (x, y).
	ShowCursor(x, y int)

	// HideCursor hides the cursor.
	HideCursor()

	// SetCursorStyle sets the cursor shape.
	SetCursorStyle(style CursorStyle)

	// Show flushes the back buffer to the terminal.
	Show()
}
