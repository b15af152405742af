// Package key provides key event types and the key-sequence notation used
// to declare mappings.
//
// This package defines the fundamental types for representing keyboard input:
//
//   - Key: identifies a named key, or KeyRune for printable characters
//   - Modifier: Ctrl, Alt and Meta held during a key press
//   - Event: a single key press; events compare with ==
//   - Sequence: an ordered list of events
//
// # Key Notation
//
// Mapping sequences are written as plain characters with named keys in
// angle brackets:
//
//   - Characters: "h", "gg", "dd", ":"
//   - Named keys: "<Esc>", "<CR>", "<BS>", "<Tab>", "<Space>", "<lt>"
//   - Modifier keys on their own: "<lCr>" (left Control), "<rCr>" (right Control)
//   - Chords: "<C-s>", "<A-x>", "<C-S-Up>"
//
// A '<' without a closing '>' is a literal '<'.
package key
