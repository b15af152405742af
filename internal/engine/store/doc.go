// Package store loads and saves buffer content.
//
// The store is the editor's only contact with persistent storage. It
// reads and writes whole files as UTF-8 text and performs no encoding or
// line-ending translation. All failures are wrapped in ErrIO so callers
// can tell storage problems apart from editing errors with errors.Is.
//
// The FileSystem interface lets tests run against MemFS instead of the
// real disk.
package store
