// Package mode provides the editor's input modes.
//
// There are exactly three modes:
//   - Normal: keys are matched against mappings
//   - Insert: keys insert text
//   - Command: keys build up a command line that runs on Enter
//
// State tracks the current mode together with the command line typed in
// Command mode. The command line is cleared on every entry to and exit
// from Command mode. Transitions happen only when the dispatcher asks
// for them; nothing changes mode on its own.
package mode
