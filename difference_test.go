package dircmp

import (
	"context"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDifferenceIsDifferent(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{text: "", want: false},
		{text: "   ", want: false},
		{text: "\n\t \n", want: false},
		{text: "1c1\n< foo\n---\n> bar\n", want: true},
		{text: "  x  ", want: true},
	}

	for _, tt := range tests {
		t.Run(strings.ReplaceAll(tt.text, "\n", `\n`), func(t *testing.T) {
			assert.Equal(t, tt.want, Difference{Text: tt.text}.IsDifferent())
		})
	}
}

func TestLineDiffer(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"same_left.txt":  "hello\n",
		"same_right.txt": "hello\n",
		"foo.txt":        "foo\n",
		"bar.txt":        "bar\n",
		"eol.txt":        "foo",
	})

	differ := LineDiffer{Context: DefaultContextLines}

	t.Run("Identical", func(t *testing.T) {
		diff, err := differ.Diff(ctx, filepath.Join(dir, "same_left.txt"), filepath.Join(dir, "same_right.txt"))
		require.NoError(t, err)
		assert.False(t, diff.IsDifferent())
		assert.Empty(t, diff.Text)
	})

	t.Run("Different", func(t *testing.T) {
		left, right := filepath.Join(dir, "foo.txt"), filepath.Join(dir, "bar.txt")

		diff, err := differ.Diff(ctx, left, right)
		require.NoError(t, err)
		assert.True(t, diff.IsDifferent())
		assert.Contains(t, diff.Text, "--- "+left)
		assert.Contains(t, diff.Text, "+++ "+right)
		assert.Contains(t, diff.Text, "-foo")
		assert.Contains(t, diff.Text, "+bar")
	})

	t.Run("MissingTrailingNewline", func(t *testing.T) {
		diff, err := differ.Diff(ctx, filepath.Join(dir, "foo.txt"), filepath.Join(dir, "eol.txt"))
		require.NoError(t, err)
		assert.True(t, diff.IsDifferent())
	})

	t.Run("ReadFailure", func(t *testing.T) {
		_, err := differ.Diff(ctx, filepath.Join(dir, "foo.txt"), filepath.Join(dir, "vanished.txt"))
		assert.ErrorIs(t, err, ErrReadFile)
	})

	t.Run("CancelledBeforeRead", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		diff, err := differ.Diff(cancelled, filepath.Join(dir, "vanished.txt"), filepath.Join(dir, "bar.txt"))
		assert.ErrorIs(t, err, context.Canceled)
		assert.NotErrorIs(t, err, ErrReadFile)
		assert.Empty(t, diff.Text)
	})

	t.Run("CancelledBeforeDiff", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		diff, err := differ.Diff(cancelled, filepath.Join(dir, "foo.txt"), filepath.Join(dir, "bar.txt"))
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, diff.IsDifferent())
	})
}

func TestToolDiffer(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"left.txt":  "foo\n",
		"right.txt": "bar\n",
		"same.txt":  "foo\n",
	})
	left := filepath.Join(dir, "left.txt")
	right := filepath.Join(dir, "right.txt")

	t.Run("SystemDiff", func(t *testing.T) {
		if _, err := exec.LookPath("diff"); err != nil {
			t.Skip("diff is not installed")
		}

		diff, err := ToolDiffer{}.Diff(ctx, left, right)
		require.NoError(t, err)
		assert.True(t, diff.IsDifferent())
		assert.Contains(t, diff.Text, "< foo")
		assert.Contains(t, diff.Text, "> bar")

		diff, err = ToolDiffer{}.Diff(ctx, left, filepath.Join(dir, "same.txt"))
		require.NoError(t, err)
		assert.False(t, diff.IsDifferent())
	})

	t.Run("WhitespaceOutputWithExitOne", func(t *testing.T) {
		if _, err := exec.LookPath("sh"); err != nil {
			t.Skip("sh is not installed")
		}

		// The tool claims a difference through its status but prints only blanks.
		differ := ToolDiffer{Program: "sh", Args: []string{"-c", `printf '  \n\n'; exit 1`, "sh"}}
		diff, err := differ.Diff(ctx, left, right)
		require.NoError(t, err)
		assert.False(t, diff.IsDifferent())
	})

	t.Run("ToolTrouble", func(t *testing.T) {
		if _, err := exec.LookPath("sh"); err != nil {
			t.Skip("sh is not installed")
		}

		differ := ToolDiffer{Program: "sh", Args: []string{"-c", `echo broken >&2; exit 2`, "sh"}}
		_, err := differ.Diff(ctx, left, right)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrComputeDiff)
	})

	t.Run("ProgramNotFound", func(t *testing.T) {
		differ := ToolDiffer{Program: filepath.Join(dir, "no-such-diff")}
		_, err := differ.Diff(ctx, left, right)
		assert.ErrorIs(t, err, ErrComputeDiff)
	})
}
