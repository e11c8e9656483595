// Package checker orchestrates a full verification run: discover archives
// under a root, verify each representative path, and reduce the results into
// a summary. Verification failures stay inside their result; only an unusable
// root or caller cancellation aborts a run.
package checker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"archivecheck/internal/archive"
	"archivecheck/internal/discover"
	"archivecheck/internal/logging"
	"archivecheck/internal/services"
)

// Verifier checks one representative archive path.
type Verifier interface {
	Verify(ctx context.Context, path string) archive.Result
}

// ProgressFunc observes completed verifications. Calls are serialized;
// completed counts up from 1 to total in completion order, which is not
// report order.
type ProgressFunc func(completed, total int, result archive.Result)

// Option configures the checker.
type Option func(*Checker)

// WithJobs sets how many archives are verified concurrently.
func WithJobs(jobs int) Option {
	return func(c *Checker) {
		if jobs > 0 {
			c.jobs = jobs
		}
	}
}

// WithExcludeDirs skips directories by name during discovery.
func WithExcludeDirs(dirs []string) Option {
	return func(c *Checker) {
		c.exclude = dirs
	}
}

// WithLogger attaches a logger for run-level diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Checker) {
		if logger != nil {
			c.logger = logging.NewComponentLogger(logger, "checker")
		}
	}
}

// WithProgress registers a completion callback.
func WithProgress(fn ProgressFunc) Option {
	return func(c *Checker) {
		c.progress = fn
	}
}

// Checker discovers archives under a root and verifies each one.
type Checker struct {
	verifier Verifier
	jobs     int
	exclude  []string
	logger   *slog.Logger
	progress ProgressFunc
}

// New constructs a checker around the given verifier.
func New(verifier Verifier, opts ...Option) *Checker {
	c := &Checker{
		verifier: verifier,
		jobs:     1,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Summary aggregates one verification run.
type Summary struct {
	RunID   string
	Root    string
	Results []archive.Result
	Passed  int
	Failed  int
	Elapsed time.Duration
}

// Success reports whether the run passed: no archives found, or every
// outcome valid.
func (s *Summary) Success() bool {
	return s.Failed == 0
}

// Failures returns the non-valid results in report order.
func (s *Summary) Failures() []archive.Result {
	var failures []archive.Result
	for _, result := range s.Results {
		if !result.Outcome.Passed() {
			failures = append(failures, result)
		}
	}
	return failures
}

// Run scans root and verifies every discovered archive with up to the
// configured number of workers. Results keep discovery order regardless of
// completion order. The returned error is non-nil only when the root cannot
// be scanned or ctx ends the run early.
func (c *Checker) Run(ctx context.Context, root string) (*Summary, error) {
	start := time.Now()
	runID := uuid.NewString()
	ctx = services.WithRunID(ctx, runID)
	log := logging.WithContext(ctx, c.logger)

	paths, err := discover.Scan(root, discover.Options{ExcludeDirs: c.exclude})
	if err != nil {
		return nil, err
	}
	log.Info("discovered archives",
		logging.String("root", root),
		logging.Int("archives", len(paths)),
		logging.Int("jobs", c.jobs))

	results := make([]archive.Result, len(paths))
	var (
		progressMu sync.Mutex
		completed  int
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(c.jobs)
	for i, path := range paths {
		i, path := i, path // per-iteration copies: required for correctness under the pre-1.22 loopvar semantics this module builds with
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			result := c.verifier.Verify(egCtx, path)
			results[i] = result
			if c.progress != nil {
				progressMu.Lock()
				completed++
				c.progress(completed, len(paths), result)
				progressMu.Unlock()
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	summary := &Summary{
		RunID:   runID,
		Root:    root,
		Results: results,
		Elapsed: time.Since(start),
	}
	for _, result := range results {
		if result.Outcome.Passed() {
			summary.Passed++
		} else {
			summary.Failed++
		}
	}

	log.Info("run complete",
		logging.Int("passed", summary.Passed),
		logging.Int("failed", summary.Failed),
		logging.Duration("elapsed", summary.Elapsed))
	return summary, nil
}
