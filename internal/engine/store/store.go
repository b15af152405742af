package store

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
)

// Errors returned by store operations.
var (
	// ErrIO wraps every load or save failure.
	ErrIO = errors.New("storage failure")

	// ErrNoPath indicates a save was attempted on a buffer with no path.
	ErrNoPath = errors.New("no file name")
)

// filePerm is the mode used for newly created files.
const filePerm fs.FileMode = 0o644

// Store reads and writes whole files through a FileSystem.
type Store struct {
	fs FileSystem
}

// New creates a store backed by the OS file system.
func New() *Store {
	return &Store{fs: OSFS{}}
}

// NewWithFS creates a store with a custom file system.
func NewWithFS(fsys FileSystem) *Store {
	return &Store{fs: fsys}
}

// Load returns the content of the file at path.
func (s *Store) Load(path string) (string, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: loading %s: %w", ErrIO, path, err)
	}
	return string(data), nil
}

// Save writes content to path. The data is written to a temporary file
// next to path and renamed over it so a failed save never truncates the
// existing file.
func (s *Store) Save(path, content string) error {
	if path == "" {
		return fmt.Errorf("%w: %w", ErrIO, ErrNoPath)
	}

	tmp := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+".jim~")
	if err := s.fs.WriteFile(tmp, []byte(content), filePerm); err != nil {
		return fmt.Errorf("%w: saving %s: %w", ErrIO, path, err)
	}
	if err := s.fs.Rename(tmp, path); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("%w: saving %s: %w", ErrIO, path, err)
	}
	return nil
}

// IsNotExist reports whether err was caused by a missing file.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
