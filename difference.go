package dircmp

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Difference is the textual difference between two files
type Difference struct {
	Left  string
	Right string
	Text  string
}

// IsDifferent reports whether the diff text carries anything besides whitespace.
// Exit statuses of external tools are deliberately not consulted.
func (d Difference) IsDifferent() bool {
	return strings.TrimSpace(d.Text) != ""
}

// Differ computes the line-level difference between two files
type Differ interface {
	Diff(ctx context.Context, left, right string) (Difference, error)
}

// LineDiffer produces unified diffs in process. The context is checked between
// reads and before diffing; a diff already in progress runs to completion.
type LineDiffer struct {
	Context int // Number of unchanged lines around each hunk
}

func (d LineDiffer) Diff(ctx context.Context, left, right string) (Difference, error) {
	result := Difference{Left: left, Right: right}

	if err := ctx.Err(); err != nil {
		return result, err
	}

	leftData, err := ReadFile(left)
	if err != nil {
		return result, err
	}

	if err := ctx.Err(); err != nil {
		return result, err
	}

	rightData, err := ReadFile(right)
	if err != nil {
		return result, err
	}

	if bytes.Equal(leftData, rightData) {
		return result, nil
	}

	if err := ctx.Err(); err != nil {
		return result, err
	}

	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(leftData)),
		B:        difflib.SplitLines(string(rightData)),
		FromFile: left,
		ToFile:   right,
		Context:  d.Context,
	})
	if err != nil {
		return result, newComputeDiffError(left, right, "", err)
	}

	result.Text = text
	return result, nil
}

// ToolDiffer runs an external diff program as "Program Args... left right".
// Exit status 0 and 1 are both success; the output decides the outcome.
type ToolDiffer struct {
	Program string
	Args    []string
}

const defaultDiffProgram = "diff"

func (d ToolDiffer) Diff(ctx context.Context, left, right string) (Difference, error) {
	result := Difference{Left: left, Right: right}

	program := d.Program
	if program == "" {
		program = defaultDiffProgram
	}

	args := append(append([]string{}, d.Args...), left, right)
	cmd := exec.CommandContext(ctx, program, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return result, ctxErr
	}

	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) || exitErr.ExitCode() != 1 {
			return result, newComputeDiffError(left, right, strings.TrimSpace(stderr.String()), err)
		}
	}

	result.Text = stdout.String()
	return result, nil
}
