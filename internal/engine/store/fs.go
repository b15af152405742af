package store

import (
	"io/fs"
	"os"
	"path"
	"sync"
)

// FileSystem is the subset of file operations the store needs.
type FileSystem interface {
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to path, creating or truncating it.
	WriteFile(path string, data []byte, perm fs.FileMode) error

	// Rename atomically replaces newPath with oldPath.
	Rename(oldPath, newPath string) error

	// Remove deletes path.
	Remove(path string) error
}

// OSFS implements FileSystem using the real OS file system.
type OSFS struct{}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile writes data to path.
func (OSFS) WriteFile(path string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(path, data, perm)
}

// Rename renames oldPath to newPath.
func (OSFS) Rename(oldPath, newPath string) error {
	return os.Rename(oldPath, newPath)
}

// Remove deletes path.
func (OSFS) Remove(path string) error {
	return os.Remove(path)
}

// MemFS implements FileSystem in memory. It is used by tests.
//
// MemFS is safe for concurrent use.
type MemFS struct {
	mu    sync.RWMutex
	files map[string][]byte

	// FailWrites makes every WriteFile call fail with this error.
	FailWrites error
}

// NewMemFS creates a new in-memory file system.
func NewMemFS() *MemFS {
	return &MemFS{files: make(map[string][]byte)}
}

// Ensure MemFS implements FileSystem.
var _ FileSystem = (*MemFS)(nil)

// ReadFile reads the entire file at p.
func (m *MemFS) ReadFile(p string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.files[path.Clean(p)]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: p, Err: fs.ErrNotExist}
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// WriteFile stores a copy of data at p.
func (m *MemFS) WriteFile(p string, data []byte, _ fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailWrites != nil {
		return &fs.PathError{Op: "write", Path: p, Err: m.FailWrites}
	}
	stored := make([]byte, len(data))
	copy(stored, data)
	m.files[path.Clean(p)] = stored
	return nil
}

// Rename moves oldPath to newPath, replacing any existing file.
func (m *MemFS) Rename(oldPath, newPath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, ok := m.files[path.Clean(oldPath)]
	if !ok {
		return &fs.PathError{Op: "rename", Path: oldPath, Err: fs.ErrNotExist}
	}
	delete(m.files, path.Clean(oldPath))
	m.files[path.Clean(newPath)] = data
	return nil
}

// Remove deletes p.
func (m *MemFS) Remove(p string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.files[path.Clean(p)]; !ok {
		return &fs.PathError{Op: "remove", Path: p, Err: fs.ErrNotExist}
	}
	delete(m.files, path.Clean(p))
	return nil
}

// AddFile adds a file with the given content.
func (m *MemFS) AddFile(p, content string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path.Clean(p)] = []byte(content)
}

// Files returns the number of files held.
func (m *MemFS) Files() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.files)
}
