package dircmp

import (
	"time"

	"github.com/boostgo/errorx"
)

var (
	ErrDirectoryUnavailable = errorx.New("dircmp.directory.unavailable")
	ErrInvalidPattern       = errorx.New("dircmp.directory.invalid_pattern")

	ErrReadFile       = errorx.New("dircmp.file.read")
	ErrWriteArtifact  = errorx.New("dircmp.artifact.write")
	ErrDeleteArtifact = errorx.New("dircmp.artifact.delete")
	ErrArtifactLocked = errorx.New("dircmp.artifact.locked")
	ErrLockArtifacts  = errorx.New("dircmp.artifact.lock")

	ErrComputeDiff = errorx.New("dircmp.diff.compute")
	ErrDiffTimeout = errorx.New("dircmp.diff.timeout")

	ErrRunCancelled = errorx.New("dircmp.run.cancelled")
)

type pathErrorContext struct {
	Path  string `json:"path"`
	Error error  `json:"error"`
}

func newDirectoryUnavailableError(path string, err error) error {
	return ErrDirectoryUnavailable.
		SetError(err).
		SetData(pathErrorContext{
			Path:  path,
			Error: err,
		})
}

func newInvalidPatternError(pattern string, err error) error {
	return ErrInvalidPattern.
		SetError(err).
		SetData(struct {
			Pattern string `json:"pattern"`
			Error   error  `json:"error"`
		}{
			Pattern: pattern,
			Error:   err,
		})
}

func newReadFileError(path string, err error) error {
	return ErrReadFile.
		SetError(err).
		SetData(pathErrorContext{
			Path:  path,
			Error: err,
		})
}

func newWriteArtifactError(path string, err error) error {
	return ErrWriteArtifact.
		SetError(err).
		SetData(pathErrorContext{
			Path:  path,
			Error: err,
		})
}

func newDeleteArtifactError(path string, err error) error {
	return ErrDeleteArtifact.
		SetError(err).
		SetData(pathErrorContext{
			Path:  path,
			Error: err,
		})
}

func newArtifactLockedError(path string, err error) error {
	return ErrArtifactLocked.
		SetError(err).
		SetData(pathErrorContext{
			Path:  path,
			Error: err,
		})
}

func newLockArtifactsError(path string, err error) error {
	return ErrLockArtifacts.
		SetError(err).
		SetData(pathErrorContext{
			Path:  path,
			Error: err,
		})
}

type diffErrorContext struct {
	Left   string `json:"left"`
	Right  string `json:"right"`
	Stderr string `json:"stderr,omitempty"`
	Error  error  `json:"error"`
}

func newComputeDiffError(left, right, stderr string, err error) error {
	return ErrComputeDiff.
		SetError(err).
		SetData(diffErrorContext{
			Left:   left,
			Right:  right,
			Stderr: stderr,
			Error:  err,
		})
}

func newDiffTimeoutError(left, right string, timeout time.Duration, err error) error {
	return ErrDiffTimeout.
		SetError(err).
		SetData(struct {
			Left    string `json:"left"`
			Right   string `json:"right"`
			Timeout string `json:"timeout"`
			Error   error  `json:"error"`
		}{
			Left:    left,
			Right:   right,
			Timeout: timeout.String(),
			Error:   err,
		})
}

func newRunCancelledError(left, right string, err error) error {
	return ErrRunCancelled.
		SetError(err).
		SetData(struct {
			Left  string `json:"left"`
			Right string `json:"right"`
			Error error  `json:"error"`
		}{
			Left:  left,
			Right: right,
			Error: err,
		})
}
