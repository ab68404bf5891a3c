package dircmp

import (
	"log/slog"
	"os"
	"time"
)

const (
	DefaultTimeout      = 30 * time.Second
	DefaultContextLines = 3
)

// Option represents optional parameters for a Comparator
type Option func(*compareOptions)

type compareOptions struct {
	artifactDir  string
	artifactPerm os.FileMode
	timeout      time.Duration
	concurrency  int
	lock         bool
	differ       Differ
	logger       *slog.Logger
	listOptions  []ListOption
}

// defaultCompareOptions returns default comparator options
func defaultCompareOptions() *compareOptions {
	return &compareOptions{
		artifactDir:  ".",
		artifactPerm: 0644,
		timeout:      DefaultTimeout,
		concurrency:  1,
		lock:         true,
		differ:       LineDiffer{Context: DefaultContextLines},
		logger:       slog.New(slog.DiscardHandler),
	}
}

// WithArtifactDir sets the directory diff artifacts are written to
func WithArtifactDir(dir string) Option {
	return func(opts *compareOptions) {
		if dir != "" {
			opts.artifactDir = dir
		}
	}
}

// WithArtifactPermissions sets the file mode of written artifacts
func WithArtifactPermissions(perm os.FileMode) Option {
	return func(opts *compareOptions) {
		opts.artifactPerm = perm
	}
}

// WithTimeout bounds a single entry comparison, zero disables the bound
func WithTimeout(timeout time.Duration) Option {
	return func(opts *compareOptions) {
		opts.timeout = timeout
	}
}

// WithConcurrency sets how many entries are compared at once
func WithConcurrency(n int) Option {
	return func(opts *compareOptions) {
		if n < 1 {
			n = 1
		}
		opts.concurrency = n
	}
}

// WithArtifactLock enables or disables locking the artifact directory during a run
func WithArtifactLock(enabled bool) Option {
	return func(opts *compareOptions) {
		opts.lock = enabled
	}
}

// WithDiffer replaces the diff collaborator
func WithDiffer(differ Differ) Option {
	return func(opts *compareOptions) {
		if differ != nil {
			opts.differ = differ
		}
	}
}

// WithLogger sets the logger, nothing is logged by default
func WithLogger(logger *slog.Logger) Option {
	return func(opts *compareOptions) {
		if logger != nil {
			opts.logger = logger
		}
	}
}

// WithListOptions applies listing filters to both roots
func WithListOptions(options ...ListOption) Option {
	return func(opts *compareOptions) {
		opts.listOptions = append(opts.listOptions, options...)
	}
}
