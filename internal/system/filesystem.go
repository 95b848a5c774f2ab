package system

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/google/renameio/v2"
)

// FileSystem handles file system operations on the local host
type FileSystem struct {
	atomicWrites bool
}

// NewFileSystem creates a new FileSystem instance
func NewFileSystem() *FileSystem {
	return &FileSystem{}
}

// SetAtomicWrites switches WriteFile between truncate-and-write (default)
// and temp-file-plus-rename replacement
func (f *FileSystem) SetAtomicWrites(enabled bool) {
	f.atomicWrites = enabled
}

// AtomicWrites reports whether atomic replacement is enabled
func (f *FileSystem) AtomicWrites() bool {
	return f.atomicWrites
}

// ReadFile returns the full content of the file at path.
// A missing file yields an error matching fs.ErrNotExist.
func (f *FileSystem) ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return data, nil
}

// WriteFile writes content to path, replacing whatever was there.
// perms only applies when the file is created; an existing file keeps its mode.
func (f *FileSystem) WriteFile(path string, content []byte, perms os.FileMode) error {
	if f.atomicWrites {
		return f.writeFileAtomic(path, content, perms)
	}

	if err := os.WriteFile(path, content, perms); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}

func (f *FileSystem) writeFileAtomic(path string, content []byte, perms os.FileMode) error {
	// renameio applies the given mode to the replacement, so carry the old one over
	if info, err := os.Stat(path); err == nil {
		perms = info.Mode().Perm()
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to stat file %s: %w", path, err)
	}

	if err := renameio.WriteFile(path, content, perms); err != nil {
		return fmt.Errorf("failed to atomically write file %s: %w", path, err)
	}
	return nil
}

// EnsureDirectory creates a directory and any missing parents.
// If the directory already exists, it does nothing. Losing a creation race to
// another process is not an error as long as the path ends up a directory.
func (f *FileSystem) EnsureDirectory(path string, perms os.FileMode) error {
	// Check if directory exists
	if info, err := os.Stat(path); err == nil {
		if !info.IsDir() {
			return fmt.Errorf("%s exists but is not a directory", path)
		}
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to check directory %s: %w", path, err)
	}

	if err := os.MkdirAll(path, perms); err != nil {
		if errors.Is(err, fs.ErrExist) {
			if ok, statErr := f.DirectoryExists(path); statErr == nil && ok {
				return nil
			}
		}
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}

	return nil
}

// FileExists checks if a file exists
func (f *FileSystem) FileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check if file exists %s: %w", path, err)
}

// DirectoryExists checks if a directory exists
func (f *FileSystem) DirectoryExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err == nil {
		return info.IsDir(), nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check if directory exists %s: %w", path, err)
}
