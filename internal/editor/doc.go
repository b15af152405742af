// Package editor holds the editing session: the open documents, the
// current mode and the status message.
//
// Documents are kept in most-recently-used order. The front document is
// the one the user is editing; every key is applied to it. Opening a file
// that is already open brings it to the front instead of loading it again.
//
// An Editor is driven from a single goroutine, the application's event
// loop, and is not safe for concurrent use.
package editor
