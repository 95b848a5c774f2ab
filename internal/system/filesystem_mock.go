package system

import (
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"syscall"
)

// MockFileSystem is an in-memory FileSystemManager for testing purposes.
// Per-path errors can be injected for reads, writes and directory creation.
type MockFileSystem struct {
	mu           sync.Mutex
	WrittenFiles map[string][]byte
	Directories  map[string]bool

	ReadErrors  map[string]error
	WriteErrors map[string]error
	DirErrors   map[string]error

	Reads  int
	Writes int
}

// NewMockFileSystem creates a new MockFileSystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		WrittenFiles: make(map[string][]byte),
		Directories:  make(map[string]bool),
		ReadErrors:   make(map[string]error),
		WriteErrors:  make(map[string]error),
		DirErrors:    make(map[string]error),
	}
}

// AddFile seeds a file and its parent directories.
func (m *MockFileSystem) AddFile(path string, content []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)
	m.addDirLocked(filepath.Dir(path))
	m.WrittenFiles[path] = append([]byte(nil), content...)
}

// File returns the stored content of path.
func (m *MockFileSystem) File(path string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.WrittenFiles[filepath.Clean(path)]
	return data, ok
}

// HasDirectory reports whether path was created or seeded as a directory.
func (m *MockFileSystem) HasDirectory(path string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.dirExistsLocked(filepath.Clean(path))
}

// ReadFile returns the stored content or a not-exist error.
func (m *MockFileSystem) ReadFile(path string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Reads++

	path = filepath.Clean(path)
	if err, ok := m.ReadErrors[path]; ok {
		return nil, err
	}
	data, ok := m.WrittenFiles[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return append([]byte(nil), data...), nil
}

// WriteFile captures the content that would be written to a file.
// The parent directory must exist, as it would on a real file system.
func (m *MockFileSystem) WriteFile(path string, content []byte, perms os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Writes++

	path = filepath.Clean(path)
	if err, ok := m.WriteErrors[path]; ok {
		return err
	}
	if !m.dirExistsLocked(filepath.Dir(path)) {
		return &fs.PathError{Op: "open", Path: path, Err: syscall.ENOENT}
	}
	m.WrittenFiles[path] = append([]byte(nil), content...)
	return nil
}

// EnsureDirectory records path and all of its ancestors as directories.
func (m *MockFileSystem) EnsureDirectory(path string, perms os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	path = filepath.Clean(path)
	if err, ok := m.DirErrors[path]; ok {
		return err
	}
	m.addDirLocked(path)
	return nil
}

func (m *MockFileSystem) addDirLocked(path string) {
	for p := path; !isRoot(p); p = filepath.Dir(p) {
		m.Directories[p] = true
	}
}

func (m *MockFileSystem) dirExistsLocked(path string) bool {
	return isRoot(path) || m.Directories[path]
}

func isRoot(path string) bool {
	return path == "." || path == string(filepath.Separator)
}
