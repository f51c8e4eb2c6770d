// Package osfilesystem provides a filesystem implementation using the os package.
package osfilesystem

import (
	"os"
	"path/filepath"

	"github.com/user/imgbench/pkg/ports"
)

// FileSystem implements ports.FileSystem using the os package.
// Relative paths are resolved against root when one is set.
type FileSystem struct {
	root string
}

// New creates a FileSystem that resolves paths against the working directory.
func New() *FileSystem {
	return &FileSystem{}
}

// NewRooted creates a FileSystem that resolves relative paths against root.
// The CLI uses it so image paths in a config file are relative to that file.
func NewRooted(root string) *FileSystem {
	return &FileSystem{root: root}
}

func (fs *FileSystem) resolve(path string) string {
	if fs.root == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(fs.root, path)
}

// ReadFile reads the entire contents of a file.
func (fs *FileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(fs.resolve(path))
}

// WriteFile writes data to a file, creating parent directories as needed.
func (fs *FileSystem) WriteFile(path string, data []byte) error {
	path = fs.resolve(path)
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}

// MkdirAll creates a directory and all parent directories.
func (fs *FileSystem) MkdirAll(path string) error {
	return os.MkdirAll(fs.resolve(path), 0755)
}

// Exists checks if a file or directory exists.
func (fs *FileSystem) Exists(path string) (bool, error) {
	_, err := os.Stat(fs.resolve(path))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// Ensure FileSystem implements ports.FileSystem
var _ ports.FileSystem = (*FileSystem)(nil)
