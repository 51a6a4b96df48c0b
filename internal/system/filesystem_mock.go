package system

import (
	"os"
	"sync"
)

// MockFileSystem is an in-memory FileSystemManager for tests.
// It records directories and written files, and can be told to fail on a given path.
type MockFileSystem struct {
	mu           sync.Mutex
	Directories  []string
	WrittenFiles map[string][]byte
	// FailOn maps a path to the error returned when that path is touched
	FailOn map[string]error
}

// NewMockFileSystem creates a new MockFileSystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		WrittenFiles: make(map[string][]byte),
		FailOn:       make(map[string]error),
	}
}

// WriteFile captures the content that would be written to a file.
// A second write to the same path replaces the first.
func (m *MockFileSystem) WriteFile(path string, content []byte, perms os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err, ok := m.FailOn[path]; ok {
		return err
	}
	m.WrittenFiles[path] = append([]byte(nil), content...)
	return nil
}

// EnsureDirectory records the directory in creation order.
func (m *MockFileSystem) EnsureDirectory(path string, perms os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err, ok := m.FailOn[path]; ok {
		return err
	}
	m.Directories = append(m.Directories, path)
	return nil
}
