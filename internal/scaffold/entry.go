package scaffold

import (
	"fmt"
	"math"
)

const fileSuffix = "-Tasks-and-Answers.md"

// Entry is the folder/file pair derived from a single day index
type Entry struct {
	Day        int
	FolderName string
	FileName   string
}

// NewEntry derives the folder and file names for day
func NewEntry(day int) Entry {
	folder := fmt.Sprintf("Day%d", day)
	return Entry{
		Day:        day,
		FolderName: folder,
		FileName:   folder + fileSuffix,
	}
}

// RelPath returns the slash-separated path reported on the console
func (e Entry) RelPath() string {
	return e.FolderName + "/" + e.FileName
}

// Content returns the placeholder markdown written into the entry's file
func (e Entry) Content() []byte {
	return []byte(fmt.Sprintf("# %s Tasks and Answers\n\nAdd tasks and answers here.\n", e.FolderName))
}

// Range is an inclusive span of day indices. Start > End is an empty range.
type Range struct {
	Start int
	End   int
}

// Len returns the number of days in the range.
// The count is computed in uint64 so ranges spanning most of int don't overflow;
// the one range wider than uint64 (math.MinInt to math.MaxInt) saturates.
func (r Range) Len() uint64 {
	if r.Start > r.End {
		return 0
	}
	span := uint64(r.End) - uint64(r.Start)
	if span == math.MaxUint64 {
		return span
	}
	return span + 1
}

// Each calls fn for every index in ascending order, stopping at the first error.
// Indices are produced one at a time, so large ranges cost no memory up front.
func (r Range) Each(fn func(day int) error) error {
	if r.Start > r.End {
		return nil
	}
	// Compare before incrementing so End == math.MaxInt terminates.
	for day := r.Start; ; day++ {
		if err := fn(day); err != nil {
			return err
		}
		if day == r.End {
			return nil
		}
	}
}
