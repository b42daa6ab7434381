package adapter

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/tools/cover"
	m "gooze.dev/pkg/testrunner/internal/model"
)

// CoverageAdapter reads statement counters out of coverage profiles.
type CoverageAdapter interface {
	// Measure merges the given profiles and returns the statement counters
	// of the instrumented packages.
	Measure(ctx context.Context, profiles ...m.Path) (m.Coverage, error)
}

// ProfileCoverageAdapter parses go coverage profiles with x/tools/cover.
type ProfileCoverageAdapter struct{}

// NewProfileCoverageAdapter constructs a ProfileCoverageAdapter.
func NewProfileCoverageAdapter() *ProfileCoverageAdapter {
	return &ProfileCoverageAdapter{}
}

type blockKey struct {
	file      string
	startLine int
	startCol  int
	endLine   int
	endCol    int
}

// Measure counts each block once per source position. A block is covered
// when any profile recorded a non-zero count for it.
func (a *ProfileCoverageAdapter) Measure(ctx context.Context, profiles ...m.Path) (m.Coverage, error) {
	if err := ctx.Err(); err != nil {
		return m.Coverage{}, err
	}

	statements := make(map[blockKey]int)
	covered := make(map[blockKey]bool)

	for _, path := range profiles {
		parsed, err := cover.ParseProfiles(string(path))
		if err != nil {
			slog.Error("Failed to parse coverage profile", "profile", path, "error", err)
			return m.Coverage{}, fmt.Errorf("parse coverage profile %s: %w", path, err)
		}

		for _, profile := range parsed {
			for _, block := range profile.Blocks {
				key := blockKey{
					file:      profile.FileName,
					startLine: block.StartLine,
					startCol:  block.StartCol,
					endLine:   block.EndLine,
					endCol:    block.EndCol,
				}

				statements[key] = block.NumStmt
				if block.Count > 0 {
					covered[key] = true
				}
			}
		}
	}

	var coverage m.Coverage

	for key, numStmt := range statements {
		coverage.InstructionsTotal += numStmt
		if covered[key] {
			coverage.InstructionsCovered += numStmt
		}
	}

	slog.Debug("Measured coverage", "profiles", len(profiles), "covered", coverage.InstructionsCovered, "total", coverage.InstructionsTotal)

	return coverage, nil
}
