package dircmp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(dir, 0755))
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
}

func TestDirectoryOperations(t *testing.T) {
	// Create a temporary directory for tests
	tmpDir, err := os.MkdirTemp("", "dircmp_dir_test_*")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	t.Run("DirectoryExist", func(t *testing.T) {
		filePath := filepath.Join(tmpDir, "plain.txt")
		writeFiles(t, tmpDir, map[string]string{"plain.txt": "x"})

		assert.True(t, DirectoryExist(tmpDir))
		assert.False(t, DirectoryExist(filePath))
		assert.False(t, DirectoryExist(filepath.Join(tmpDir, "nope")))
	})

	t.Run("ListEntries", func(t *testing.T) {
		dirPath := filepath.Join(tmpDir, "list")
		writeFiles(t, dirPath, map[string]string{
			"a.txt":   "a",
			"b.txt":   "b",
			".hidden": "h",
		})
		require.NoError(t, os.Mkdir(filepath.Join(dirPath, "sub"), 0755))
		writeFiles(t, filepath.Join(dirPath, "sub"), map[string]string{"deep.txt": "d"})

		entries, err := ListEntries(dirPath)
		require.NoError(t, err)

		// Immediate children only, directories included, nested files excluded
		assert.Equal(t, []string{".hidden", "a.txt", "b.txt", "sub"}, entries.Sorted())
		assert.False(t, entries.Has("deep.txt"))
	})

	t.Run("ListEmptyDirectory", func(t *testing.T) {
		dirPath := filepath.Join(tmpDir, "empty")
		require.NoError(t, os.Mkdir(dirPath, 0755))

		entries, err := ListEntries(dirPath)
		require.NoError(t, err)
		assert.Equal(t, 0, entries.Len())
	})

	t.Run("ListMissingDirectory", func(t *testing.T) {
		missing := filepath.Join(tmpDir, "missing")

		_, err := ListEntries(missing)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDirectoryUnavailable)
		assert.ErrorIs(t, err, os.ErrNotExist)
		assert.Contains(t, err.Error(), missing)
	})

	t.Run("ListFileInsteadOfDirectory", func(t *testing.T) {
		filePath := filepath.Join(tmpDir, "not_a_dir.txt")
		writeFiles(t, tmpDir, map[string]string{"not_a_dir.txt": "x"})

		_, err := ListEntries(filePath)
		assert.ErrorIs(t, err, ErrDirectoryUnavailable)
	})

	t.Run("UnionEntries", func(t *testing.T) {
		left := NewEntrySet("c.txt", "a.txt", "b.txt")
		right := NewEntrySet("b.txt", "d.txt", "a.txt")

		assert.Equal(t, []string{"a.txt", "b.txt", "c.txt", "d.txt"}, UnionEntries(left, right))
		assert.Empty(t, UnionEntries(NewEntrySet(), NewEntrySet()))
	})
}

func TestListFilters(t *testing.T) {
	dirPath := t.TempDir()
	writeFiles(t, dirPath, map[string]string{
		"main.go":      "package main",
		"main_test.go": "package main",
		"README.md":    "# readme",
		"notes.txt":    "notes",
		".env":         "A=1",
	})

	tests := []struct {
		name    string
		options []ListOption
		want    []string
	}{
		{
			name: "no filters",
			want: []string{".env", "README.md", "main.go", "main_test.go", "notes.txt"},
		},
		{
			name:    "ignore hidden",
			options: []ListOption{WithIgnoreHidden()},
			want:    []string{"README.md", "main.go", "main_test.go", "notes.txt"},
		},
		{
			name:    "include",
			options: []ListOption{WithIncludePatterns("*.go")},
			want:    []string{"main.go", "main_test.go"},
		},
		{
			name:    "include several",
			options: []ListOption{WithIncludePatterns("*.md", "*.txt")},
			want:    []string{"README.md", "notes.txt"},
		},
		{
			name:    "exclude wins over include",
			options: []ListOption{WithIncludePatterns("*.go"), WithExcludePatterns("*_test.go")},
			want:    []string{"main.go"},
		},
		{
			name:    "brace pattern",
			options: []ListOption{WithIncludePatterns("*.{md,txt}")},
			want:    []string{"README.md", "notes.txt"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := ListEntries(dirPath, tt.options...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, entries.Sorted())
		})
	}

	t.Run("invalid pattern", func(t *testing.T) {
		_, err := ListEntries(dirPath, WithIncludePatterns("[unclosed"))
		assert.ErrorIs(t, err, ErrInvalidPattern)
	})
}
