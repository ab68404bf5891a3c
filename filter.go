package dircmp

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// validate checks every configured pattern before any listing happens
func (opts *listOptions) validate() error {
	for _, patterns := range [][]string{opts.includePatterns, opts.excludePatterns} {
		for _, pattern := range patterns {
			if !doublestar.ValidatePattern(pattern) {
				return newInvalidPatternError(pattern, doublestar.ErrBadPattern)
			}
		}
	}

	return nil
}

// accept reports whether a base name passes the hidden, exclude and include filters.
// Exclude patterns win over include patterns.
func (opts *listOptions) accept(name string) (bool, error) {
	if opts.ignoreHidden && isHidden(name) {
		return false, nil
	}

	for _, pattern := range opts.excludePatterns {
		matched, err := matchPattern(name, pattern)
		if err != nil {
			return false, err
		}
		if matched {
			return false, nil
		}
	}

	if len(opts.includePatterns) == 0 {
		return true, nil
	}

	for _, pattern := range opts.includePatterns {
		matched, err := matchPattern(name, pattern)
		if err != nil {
			return false, err
		}
		if matched {
			return true, nil
		}
	}

	return false, nil
}

// matchPattern matches a glob pattern against a base name
func matchPattern(name, pattern string) (bool, error) {
	matched, err := doublestar.Match(pattern, name)
	if err != nil {
		return false, newInvalidPatternError(pattern, err)
	}

	return matched, nil
}

// isHidden checks if an entry is hidden
func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
