package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a single key specification into an Event.
//
// Supported formats:
//   - Single character: "a", "A", "1", "@"
//   - Bracketed names: "<Esc>", "<CR>", "<BS>", "<lCr>", "<rCr>", "<Space>"
//   - Chords: "<C-s>", "<A-f>", "<C-S-Up>"
func Parse(spec string) (Event, error) {
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	if len(spec) > 2 && strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") {
		return parseBracketed(spec[1 : len(spec)-1])
	}

	r, size := utf8.DecodeRuneInString(spec)
	if size == len(spec) && r != utf8.RuneError {
		return Rune(r), nil
	}

	return Event{}, fmt.Errorf("%w: %q", ErrInvalidSpec, spec)
}

// parseBracketed parses the inside of <...>, like "C-s", "CR" or "lCr".
func parseBracketed(inner string) (Event, error) {
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return Event{}, ErrInvalidSpec
	}

	// "-" on its own is the minus key, and "C--" is Ctrl+minus.
	var mods Modifier
	keyPart := inner
	for len(keyPart) > 2 && keyPart[1] == '-' {
		mod := ModifierFromName(keyPart[:1])
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, keyPart[:1])
		}
		mods = mods.With(mod)
		keyPart = keyPart[2:]
	}

	return parseKeyWithModifiers(keyPart, mods)
}

// parseKeyWithModifiers parses a key part with already-known modifiers
func parseKeyWithModifiers(keyPart string, mods Modifier) (Event, error) {
	switch strings.ToLower(keyPart) {
	case "space":
		return NewRuneEvent(' ', mods), nil
	case "lt":
		return NewRuneEvent('<', mods), nil
	case "gt":
		return NewRuneEvent('>', mods), nil
	case "bar":
		return NewRuneEvent('|', mods), nil
	case "bslash":
		return NewRuneEvent('\\', mods), nil
	}

	if k := KeyFromName(keyPart); k != KeyNone {
		return NewSpecialEvent(k, mods), nil
	}

	r, size := utf8.DecodeRuneInString(keyPart)
	if size == len(keyPart) && r != utf8.RuneError {
		switch {
		case mods.Has(ModCtrl):
			// Control chords are case-insensitive.
			r = unicode.ToLower(r)
		case mods.Has(ModShift):
			r = unicode.ToUpper(r)
		}
		return NewRuneEvent(r, mods), nil
	}

	return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, keyPart)
}
