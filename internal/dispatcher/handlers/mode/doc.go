// Package mode provides handlers for mode switching operations.
//
// The Handler type provides mode transitions out of Normal mode:
//   - mode.insert (i): Insert before cursor
//   - mode.insertLineStart (I): Insert at start of line
//   - mode.append (a): Append after cursor
//   - mode.appendLineEnd (A): Append at end of line
//   - mode.openLineBelow (o): Open a new line below and insert
//   - mode.command (:): Enter the command line
//
// Leaving Insert and Command mode is handled by the dispatcher itself,
// since no mapping table is consulted in those modes.
package mode
