package system

import "os"

// FileSystemManager defines the file operations the content ensurer relies on.
// This allows for mocking the file system in tests.
type FileSystemManager interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, content []byte, perms os.FileMode) error
	EnsureDirectory(path string, perms os.FileMode) error
}

var (
	_ FileSystemManager = (*FileSystem)(nil)
	_ FileSystemManager = (*MockFileSystem)(nil)
)
