// Package scaffold creates the numbered Day folders and their placeholder
// task files.
package scaffold

import (
	"os"
	"path/filepath"

	"github.com/zoro11031/day-scaffold/internal/system"
	"github.com/zoro11031/day-scaffold/internal/ui"
)

const (
	dirPerms  os.FileMode = 0755
	filePerms os.FileMode = 0644
)

// Scaffolder creates one folder and one markdown file per day in a range
type Scaffolder struct {
	fs      system.FileSystemManager
	ui      *ui.UI
	baseDir string
}

// New creates a Scaffolder rooted at baseDir. An empty baseDir means the working directory.
func New(fs system.FileSystemManager, ui *ui.UI, baseDir string) *Scaffolder {
	if baseDir == "" {
		baseDir = "."
	}
	return &Scaffolder{
		fs:      fs,
		ui:      ui,
		baseDir: baseDir,
	}
}

// BaseDir returns the directory the Day folders are created in
func (s *Scaffolder) BaseDir() string {
	return s.baseDir
}

// Plan calls fn with each entry Run would create for the range, without touching the disk
func Plan(start, end int, fn func(Entry) error) error {
	return Range{Start: start, End: end}.Each(func(day int) error {
		return fn(NewEntry(day))
	})
}

// Run creates DayN/DayN-Tasks-and-Answers.md for every N from start to end inclusive,
// printing one "Created:" line per entry. Existing directories are reused and existing
// files are overwritten. The first filesystem error stops the run and is returned as is;
// entries already written are left in place.
func (s *Scaffolder) Run(start, end int) error {
	return Plan(start, end, func(entry Entry) error {
		if err := s.create(entry); err != nil {
			return err
		}
		s.ui.Printf("Created: %s", entry.RelPath())
		return nil
	})
}

func (s *Scaffolder) create(entry Entry) error {
	dir := filepath.Join(s.baseDir, entry.FolderName)
	if err := s.fs.EnsureDirectory(dir, dirPerms); err != nil {
		return err
	}
	return s.fs.WriteFile(filepath.Join(dir, entry.FileName), entry.Content(), filePerms)
}
