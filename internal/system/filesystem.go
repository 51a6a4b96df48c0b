package system

import "os"

// FileSystem handles file system operations against the local disk
type FileSystem struct{}

// NewFileSystem creates a new FileSystem instance
func NewFileSystem() *FileSystem {
	return &FileSystem{}
}

// EnsureDirectory creates a directory (and any missing parents) with the given permissions.
// If the directory already exists, it does nothing.
// Errors from the os package are returned unwrapped so callers see the *fs.PathError.
func (fs *FileSystem) EnsureDirectory(path string, perms os.FileMode) error {
	return os.MkdirAll(path, perms)
}

// WriteFile creates or truncates the file at path and writes content to it
func (fs *FileSystem) WriteFile(path string, content []byte, perms os.FileMode) error {
	return os.WriteFile(path, content, perms)
}
