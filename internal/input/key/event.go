package key

import (
	"fmt"
	"strings"
	"unicode"
)

// Event represents a single key press. Events are plain values and two
// events are equal exactly when they compare equal with ==.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates a key event for a character.
// Shift is dropped because it is already reflected in the rune.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods.Without(ModShift)}
}

// NewSpecialEvent creates a key event for a named key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{Key: key, Modifiers: mods}
}

// Rune is shorthand for an unmodified character event.
func Rune(r rune) Event {
	return NewRuneEvent(r, ModNone)
}

// Special is shorthand for an unmodified named key event.
func Special(k Key) Event {
	return NewSpecialEvent(k, ModNone)
}

// Common events.
var (
	Escape    = Special(KeyEscape)
	Enter     = Special(KeyEnter)
	Backspace = Special(KeyBackspace)
	Tab       = Special(KeyTab)
)

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true if this is an unmodified printable character, the
// kind of event that inserts text.
func (e Event) IsChar() bool {
	return e.IsRune() && e.Modifiers == ModNone && unicode.IsPrint(e.Rune)
}

// IsModified returns true if any modifier is pressed.
func (e Event) IsModified() bool {
	return e.Modifiers != ModNone
}

// String returns the event in mapping notation.
// Examples: "a", "<Esc>", "<C-s>", "<lCr>", "<Space>"
func (e Event) String() string {
	if e.IsRune() && !e.IsModified() {
		switch e.Rune {
		case ' ':
			return "<Space>"
		case '<':
			return "<lt>"
		}
		return string(e.Rune)
	}

	var parts []string
	if mods := e.Modifiers.ShortString(); mods != "" {
		parts = append(parts, mods)
	}

	switch e.Key {
	case KeyRune:
		parts = append(parts, strings.ToLower(string(e.Rune)))
	default:
		parts = append(parts, e.Key.String())
	}

	return "<" + strings.Join(parts, "-") + ">"
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("key.Event{Key: %s, Rune: %q, Modifiers: %q}",
		e.Key, e.Rune, e.Modifiers.ShortString())
}
