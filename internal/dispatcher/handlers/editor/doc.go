// Package editor provides handlers for text and file operations on the
// front document:
//   - editor.deleteChar (x): Delete the character under the cursor
//   - editor.save (:w): Write the document to its file
//   - editor.quit (:q): End the session
//   - editor.saveQuit (:wq, :x): Write, then end the session
//   - editor.reload (:e!): Discard changes and re-read the file
//
// Storage failures are returned to the caller; the session continues.
package editor
