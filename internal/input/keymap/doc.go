// Package keymap provides the Normal mode mapping table and the Command
// mode command table.
//
// # Key Concepts
//
// Binding: a declaration of a key sequence, the name of the action it
// triggers, and whether it is pending.
//
// Mapping: a binding whose key sequence has been parsed into events.
//
// Command: a command-line name bound to an action name. Several names may
// bind the same action.
//
// # Pending Mappings
//
// A pending mapping needs one more key, its argument, before its action
// can run. "f" followed by "x" jumps to the next "x" on the line. The
// keymap only records the flag; arming and firing are the dispatcher's
// job.
//
// # Matching
//
// Two strategies find the mapping that matches the recent key history:
//
//	MatchWindow  the sequence appears anywhere in the history
//	MatchTail    the sequence is exactly the most recent keys
//
// MatchWindow is the long-standing behaviour and the default. Because
// the history is cleared every time a mapping fires, it only differs
// from MatchTail when unmatched keys pile up in the history. MatchTail
// walks a trie of all sequences so each keypress costs at most the
// length of the history.
//
// Whichever strategy is used, when several mappings match the one
// registered first wins.
//
// # Usage
//
//	km := keymap.New()
//	km.Add(keymap.NewBinding("h", "cursor.moveLeft"))
//	km.Add(keymap.NewBinding("f", "cursor.findForward").AsPending())
//	km.AddCommand(keymap.NewCommand("w", "editor.save"))
//
//	if m, ok := km.Match(history, keymap.MatchWindow); ok {
//	    // run m.Action
//	}
package keymap
