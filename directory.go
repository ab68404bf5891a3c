package dircmp

import (
	"os"
)

// DirectoryExist reports whether path resolves to a directory
func DirectoryExist(path string) bool {
	stat, err := os.Stat(path)
	return err == nil && stat.IsDir()
}

// ListEntries returns the base names of the immediate children of a directory.
// A missing, unreadable or non-directory path fails with ErrDirectoryUnavailable.
func ListEntries(path string, options ...ListOption) (EntrySet, error) {
	opts := defaultListOptions()
	for _, opt := range options {
		opt(opts)
	}

	if err := opts.validate(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, newDirectoryUnavailableError(path, err)
	}

	set := make(EntrySet, len(entries))
	for _, entry := range entries {
		ok, err := opts.accept(entry.Name())
		if err != nil {
			return nil, err
		}
		if ok {
			set.Add(entry.Name())
		}
	}

	return set, nil
}

// UnionEntries returns the deduplicated union of both sets in lexicographic order
func UnionEntries(left, right EntrySet) []string {
	union := make(EntrySet, left.Len()+right.Len())
	for name := range left {
		union.Add(name)
	}
	for name := range right {
		union.Add(name)
	}

	return union.Sorted()
}
