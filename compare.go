package dircmp

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/sourcegraph/conc/pool"
)

// Comparator compares the entries of two directories and persists diff artifacts
type Comparator struct {
	opts *compareOptions
}

func NewComparator(options ...Option) *Comparator {
	opts := defaultCompareOptions()
	for _, opt := range options {
		opt(opts)
	}

	return &Comparator{opts: opts}
}

// Compare runs a single comparison of left against right
func Compare(ctx context.Context, left, right string, options ...Option) (*Report, error) {
	return NewComparator(options...).Run(ctx, left, right)
}

// ArtifactPath returns where the diff artifact of an entry is written
func (c *Comparator) ArtifactPath(name string) string {
	return filepath.Join(c.opts.artifactDir, ArtifactName(name))
}

// Run lists both roots, classifies every entry of their union and groups the
// entries present on both sides. Only an unavailable root, a lock held by another
// run or cancellation fails the run; per-entry failures are reported in the result.
func (c *Comparator) Run(ctx context.Context, left, right string) (*Report, error) {
	logger := c.opts.logger.With("left", left, "right", right)

	leftEntries, err := ListEntries(left, c.opts.listOptions...)
	if err != nil {
		return nil, err
	}

	rightEntries, err := ListEntries(right, c.opts.listOptions...)
	if err != nil {
		return nil, err
	}

	names := UnionEntries(leftEntries, rightEntries)
	logger.Debug("listed entries",
		"left_count", leftEntries.Len(),
		"right_count", rightEntries.Len(),
		"union_count", len(names))

	if c.opts.lock {
		lock, err := lockArtifactDir(c.opts.artifactDir)
		switch {
		case errors.Is(err, ErrArtifactLocked):
			return nil, err
		case err != nil:
			// Write failures surface per entry.
			logger.Warn("artifact directory not locked", "error", err)
		}
		defer lock.release()
	}

	results := make([]EntryResult, len(names))
	if c.opts.concurrency > 1 && len(names) > 1 {
		// Each goroutine owns one slot of results; Wait is the join point.
		p := pool.New().WithMaxGoroutines(c.opts.concurrency)
		for i, name := range names {
			p.Go(func() {
				if ctx.Err() != nil {
					return
				}
				results[i] = c.Classify(ctx, name, left, right)
			})
		}
		p.Wait()
	} else {
		for i, name := range names {
			if ctx.Err() != nil {
				break
			}
			results[i] = c.Classify(ctx, name, left, right)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, newRunCancelledError(left, right, err)
	}

	report := newReport(left, right, results)
	logger.Debug("comparison finished", "failures", len(report.Failures()))

	return report, nil
}

// Classify compares one entry of both roots. Entries that are not a regular file
// on both sides are MissingOnOneSide and leave artifacts untouched.
func (c *Comparator) Classify(ctx context.Context, name, leftRoot, rightRoot string) EntryResult {
	result := EntryResult{Name: name}
	logger := c.opts.logger.With("entry", name)

	leftPath := filepath.Join(leftRoot, name)
	rightPath := filepath.Join(rightRoot, name)

	leftKind, rightKind := ProbeFile(leftPath), ProbeFile(rightPath)
	if leftKind != KindFile || rightKind != KindFile {
		result.Classification = MissingOnOneSide
		logger.Debug("entry skipped",
			string(SideLeft), leftKind.String(),
			string(SideRight), rightKind.String())
		return result
	}

	diff, err := c.diff(ctx, leftPath, rightPath)
	switch {
	case errors.Is(err, ErrDiffTimeout):
		result.Classification = ComparisonTimedOut
		result.Err = err
		return result
	case err != nil:
		result.Classification = ComparisonFailed
		result.Err = err
		return result
	}

	artifact := c.ArtifactPath(name)

	if !diff.IsDifferent() {
		result.Classification = Identical
		if err := DeleteFile(artifact); err != nil {
			result.Err = err
		}
		logger.Debug("entry identical")
		return result
	}

	result.Classification = Different

	// Cancelled while in flight: write nothing for this entry.
	if err := ctx.Err(); err != nil {
		result.Err = err
		return result
	}

	if err := AtomicWriteFile(artifact, []byte(diff.Text), c.opts.artifactPerm); err != nil {
		result.Err = err
		return result
	}

	result.Artifact = artifact
	logger.Debug("entry differs", "artifact", artifact)

	return result
}

type diffOutcome struct {
	diff Difference
	err  error
}

// diff runs the differ under the per-entry timeout
func (c *Comparator) diff(ctx context.Context, left, right string) (Difference, error) {
	if c.opts.timeout <= 0 {
		return c.opts.differ.Diff(ctx, left, right)
	}

	diffCtx, cancel := context.WithTimeout(ctx, c.opts.timeout)
	defer cancel()

	done := make(chan diffOutcome, 1)
	go func() {
		diff, err := c.opts.differ.Diff(diffCtx, left, right)
		done <- diffOutcome{diff: diff, err: err}
	}()

	select {
	case out := <-done:
		if out.err != nil && ctx.Err() == nil && errors.Is(diffCtx.Err(), context.DeadlineExceeded) {
			return out.diff, newDiffTimeoutError(left, right, c.opts.timeout, out.err)
		}
		return out.diff, out.err
	case <-diffCtx.Done():
		if err := ctx.Err(); err != nil {
			return Difference{Left: left, Right: right}, err
		}
		return Difference{Left: left, Right: right}, newDiffTimeoutError(left, right, c.opts.timeout, diffCtx.Err())
	}
}
