package dircmp

// ListOption represents options for directory listing
type ListOption func(*listOptions)

type listOptions struct {
	ignoreHidden    bool
	includePatterns []string
	excludePatterns []string
}

// defaultListOptions returns default listing options
func defaultListOptions() *listOptions {
	return &listOptions{
		ignoreHidden:    false,
		includePatterns: []string{},
		excludePatterns: []string{},
	}
}

// WithIgnoreHidden skips entries whose name starts with a dot
func WithIgnoreHidden() ListOption {
	return func(opts *listOptions) {
		opts.ignoreHidden = true
	}
}

// WithIncludePatterns adds patterns that entry names must match
func WithIncludePatterns(patterns ...string) ListOption {
	return func(opts *listOptions) {
		opts.includePatterns = append(opts.includePatterns, patterns...)
	}
}

// WithExcludePatterns adds patterns that entry names must not match
func WithExcludePatterns(patterns ...string) ListOption {
	return func(opts *listOptions) {
		opts.excludePatterns = append(opts.excludePatterns, patterns...)
	}
}
