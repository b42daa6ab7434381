package adapter

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "gooze.dev/pkg/testrunner/internal/model"
)

func TestProfileCoverageAdapter_Measure(t *testing.T) {
	dir := t.TempDir()
	profile := filepath.Join(dir, "cover.out")

	writeTestFile(t, profile, `mode: set
example.com/p/calc.go:4.24,6.2 1 1
example.com/p/calc.go:9.18,10.12 1 1
example.com/p/calc.go:10.12,12.3 1 0
example.com/p/calc.go:14.2,14.10 1 1
example.com/p/other.go:3.20,7.2 3 0
`)

	coverage, err := NewProfileCoverageAdapter().Measure(context.Background(), m.Path(profile))
	require.NoError(t, err)

	assert.Equal(t, m.Coverage{InstructionsCovered: 3, InstructionsTotal: 7}, coverage)
}

func TestProfileCoverageAdapter_Measure_MergesProfiles(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.out")
	second := filepath.Join(dir, "second.out")

	writeTestFile(t, first, "mode: count\nexample.com/p/calc.go:4.24,6.2 2 0\nexample.com/p/calc.go:9.18,10.12 1 3\n")
	writeTestFile(t, second, "mode: count\nexample.com/p/calc.go:4.24,6.2 2 5\nexample.com/p/calc.go:9.18,10.12 1 0\n")

	coverage, err := NewProfileCoverageAdapter().Measure(context.Background(), m.Path(first), m.Path(second))
	require.NoError(t, err)

	assert.Equal(t, m.Coverage{InstructionsCovered: 3, InstructionsTotal: 3}, coverage)
}

func TestProfileCoverageAdapter_Measure_Errors(t *testing.T) {
	adapter := NewProfileCoverageAdapter()

	_, err := adapter.Measure(context.Background(), m.Path(filepath.Join(t.TempDir(), "missing.out")))
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = adapter.Measure(ctx)
	require.ErrorIs(t, err, context.Canceled)

	coverage, err := adapter.Measure(context.Background())
	require.NoError(t, err)
	assert.Zero(t, coverage.Ratio())
}
