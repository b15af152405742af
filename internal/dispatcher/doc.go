// Package dispatcher turns key events into editor operations.
//
// Every key is routed by the current mode:
//
//   - Normal: the key is appended to a bounded history and the keymap is
//     matched against it. A matching mapping runs its action by name.
//   - Insert: printable keys are written at the cursor; Enter, Tab and
//     Backspace edit text; Escape returns to Normal.
//   - Command: keys accumulate on the command line; Enter runs the
//     command bound to the exact line; Escape abandons it.
//
// # Pending Mappings
//
// A pending mapping needs one more key before it can run, such as the
// character a find motion searches for. When its sequence matches the
// mapping is armed and the dispatcher is locked. The next key is pushed
// to the history without being matched, and the armed mapping fires with
// that key as its argument. The history is cleared after every mapping
// fires.
//
// # Action Lookup
//
// Actions are resolved by name in two tiers:
//
//  1. Handler Registry: exact action names, used by scripted commands.
//  2. Namespace Router: the prefix before the first dot selects a
//     NamespaceHandler (e.g., "cursor" handles "cursor.moveDown").
//
// An exact registration shadows a namespace handler for the same name.
//
// # Thread Safety
//
// A Dispatcher is driven by the application's event loop and must not be
// used from more than one goroutine. The registry and router may be
// populated concurrently.
package dispatcher
