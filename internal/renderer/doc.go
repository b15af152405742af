// Package renderer draws an editor.View on a terminal backend.
//
// The screen is split into the text area and two rows at the bottom for
// the status bar and the command line:
//
//	┌─────────────────────────────────────────┐
//	│ text area (viewport over buffer lines)  │
//	│ ~                                       │
//	├─────────────────────────────────────────┤
//	│ NORMAL  main.go [+]       Ln 3, Col 1   │
//	│ :wq                                     │
//	└─────────────────────────────────────────┘
//
// Lines are laid out by grapheme cluster, so wide characters take two
// cells and tabs expand to the next tab stop. The viewport scrolls just
// enough to keep the cursor on screen.
//
// Usage:
//
//	term, _ := backend.NewTerminal()
//	r := renderer.New(term)
//	r.Draw(ed.View())
package renderer
