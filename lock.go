package dircmp

import (
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

const lockFileName = ".dircmp.lock"

// artifactLock keeps two runs from writing artifacts into the same directory at once
type artifactLock struct {
	locker *flock.Flock
}

// lockArtifactDir fails with ErrArtifactLocked when another run holds the lock,
// and with ErrLockArtifacts when the lock file cannot be opened at all.
func lockArtifactDir(dir string) (*artifactLock, error) {
	path := filepath.Join(dir, lockFileName)
	locker := flock.New(path)

	ok, err := locker.TryLock()
	if err != nil {
		_ = locker.Close()
		return nil, newLockArtifactsError(path, err)
	}
	if !ok {
		_ = locker.Close()
		return nil, newArtifactLockedError(path, os.ErrExist)
	}

	return &artifactLock{locker: locker}, nil
}

// release unlocks without removing the lock file
func (l *artifactLock) release() {
	if l == nil {
		return
	}

	_ = l.locker.Close()
}
