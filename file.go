package dircmp

import (
	"errors"
	"os"
	"path/filepath"
)

const artifactSuffix = ".diff.txt"

// ArtifactName returns the diff artifact file name for an entry
func ArtifactName(entry string) string {
	return entry + artifactSuffix
}

// ProbeFile reports whether path is a regular file, something else, or missing.
// Symbolic links are followed.
func ProbeFile(path string) FileKind {
	stat, err := os.Stat(path)
	if err != nil {
		return KindMissing
	}

	if stat.Mode().IsRegular() {
		return KindFile
	}

	return KindOther
}

func FileExist(path string) bool {
	return ProbeFile(path) == KindFile
}

// ReadFile reads entire file content as bytes
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newReadFileError(path, err)
	}

	return data, nil
}

// AtomicWriteFile writes data to a temporary file next to path and renames it into place.
// The temporary file never outlives a failed write.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return newWriteArtifactError(path, err)
	}
	tmpPath := tmp.Name()

	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return newWriteArtifactError(path, err)
	}
	if err = tmp.Sync(); err != nil {
		return newWriteArtifactError(path, err)
	}
	if err = tmp.Close(); err != nil {
		return newWriteArtifactError(path, err)
	}
	if err = os.Chmod(tmpPath, perm); err != nil {
		return newWriteArtifactError(path, err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return newWriteArtifactError(path, err)
	}

	return nil
}

// DeleteFile removes a file
func DeleteFile(path string) error {
	if !FileExist(path) {
		return nil // Already doesn't exist
	}

	if err := os.Remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return newDeleteArtifactError(path, err)
	}

	return nil
}
