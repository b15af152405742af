// Package cursor provides handlers for cursor movement operations.
//
// # Basic Movements
//
// The Handler type provides basic cursor movements:
//   - cursor.moveLeft (h): Move cursor left one character
//   - cursor.moveRight (l): Move cursor right one character
//   - cursor.moveUp (k): Move cursor up one line
//   - cursor.moveDown (j): Move cursor down one line
//   - cursor.moveLineStart (0): Move to start of line
//   - cursor.moveLineEnd ($): Move to last character of line
//   - cursor.moveFirstLine (gg): Move to first line
//   - cursor.moveLastLine (G): Move to last line
//
// # Line Search
//
// Find and till take the character to search for as the argument key of
// a pending mapping. The search covers the rest of the current line after
// the cursor:
//   - cursor.findForward (f{char}): Move one past the next {char}
//   - cursor.tillForward (t{char}): Move onto the next {char}
//
// If {char} does not occur later in the line the cursor stays put.
package cursor
