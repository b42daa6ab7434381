package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"gooze.dev/pkg/testrunner/internal/adapter"
	m "gooze.dev/pkg/testrunner/internal/model"
)

// ProgressFunc is told about every test the per-test correlator finished.
type ProgressFunc func(done, total int, test string)

// executeFunc runs one engine request and classifies its events.
type executeFunc func(ctx context.Context, req m.ExecutionRequest) (*m.TestResult, error)

// CoverageCorrelator attributes statement coverage to a whole run or to each
// test individually.
type CoverageCorrelator struct {
	fsAdapter adapter.SourceFSAdapter
	coverage  adapter.CoverageAdapter
}

// NewCoverageCorrelator constructs a CoverageCorrelator keeping its profiles
// in temp dirs created through fsAdapter.
func NewCoverageCorrelator(fsAdapter adapter.SourceFSAdapter, coverage adapter.CoverageAdapter) *CoverageCorrelator {
	return &CoverageCorrelator{fsAdapter: fsAdapter, coverage: coverage}
}

// Aggregate runs the whole request once with one profile.
func (c *CoverageCorrelator) Aggregate(ctx context.Context, req m.ExecutionRequest, execute executeFunc) (m.Coverage, *m.TestResult, error) {
	dir, cleanup, err := c.profileDir(ctx)
	if err != nil {
		return m.Coverage{}, nil, err
	}
	defer cleanup()

	req.CoverProfile = m.Path(filepath.Join(string(dir), "aggregate.out"))

	result, err := execute(ctx, req)
	if err != nil {
		return m.Coverage{}, nil, err
	}

	coverage, err := c.measure(ctx, req.CoverProfile)
	if err != nil {
		return m.Coverage{}, nil, err
	}

	return coverage, result, nil
}

// PerTest runs every test case on its own, each with a fresh profile, and
// records the coverage of each run under the test name. Every entry carries
// the same total.
func (c *CoverageCorrelator) PerTest(
	ctx context.Context,
	req m.ExecutionRequest,
	tests []m.TestCase,
	execute executeFunc,
	progress ProgressFunc,
) (*m.CoveragePerTestMethod, error) {
	perTest := m.NewCoveragePerTestMethod()
	if len(tests) == 0 {
		return perTest, nil
	}

	dir, cleanup, err := c.profileDir(ctx)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	profiles := make([]m.Path, 0, len(tests))
	measured := make([]m.Coverage, 0, len(tests))

	for i, tc := range tests {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		single := req
		single.Packages = []m.Package{tc.Package}
		single.Run = []string{tc.Name}
		single.CoverProfile = m.Path(filepath.Join(string(dir), fmt.Sprintf("test%d.out", i)))

		if _, err := execute(ctx, single); err != nil {
			return nil, err
		}

		coverage, err := c.measure(ctx, single.CoverProfile)
		if err != nil {
			return nil, err
		}

		slog.Debug("Measured test coverage", "test", tc.Name, "covered", coverage.InstructionsCovered, "total", coverage.InstructionsTotal)

		profiles = append(profiles, single.CoverProfile)
		measured = append(measured, coverage)

		if progress != nil {
			progress(i+1, len(tests), tc.Name)
		}
	}

	// A test binary only instruments the packages it links, so the total
	// is taken over the union of every profile.
	total := measured[0].InstructionsTotal
	if len(profiles) > 1 {
		union, err := c.measure(ctx, profiles...)
		if err != nil {
			return nil, err
		}

		total = union.InstructionsTotal
	}

	for i, tc := range tests {
		perTest.Set(tc.Name, m.Coverage{InstructionsCovered: measured[i].InstructionsCovered, InstructionsTotal: total})
	}

	return perTest, nil
}

func (c *CoverageCorrelator) profileDir(ctx context.Context) (m.Path, func(), error) {
	dir, err := c.fsAdapter.CreateTempDir(ctx, "testrunner-cover-*")
	if err != nil {
		slog.Error("Failed to create coverage dir", "error", err)
		return "", nil, m.NewExecutionError(fmt.Errorf("create coverage dir: %w", err), "")
	}

	cleanup := func() {
		// The run context may be cancelled by now.
		if err := c.fsAdapter.RemoveAll(context.WithoutCancel(ctx), dir); err != nil {
			slog.Error("Failed to cleanup coverage dir", "dir", dir, "error", err)
		}
	}

	return dir, cleanup, nil
}

func (c *CoverageCorrelator) measure(ctx context.Context, profiles ...m.Path) (m.Coverage, error) {
	coverage, err := c.coverage.Measure(ctx, profiles...)
	if err != nil {
		return m.Coverage{}, m.NewExecutionError(fmt.Errorf("measure coverage: %w", err), "")
	}

	return coverage, nil
}
