package adapter

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "gooze.dev/pkg/testrunner/internal/model"
)

func TestYAMLReportStore_SaveAndLoad(t *testing.T) {
	store := NewReportStore()
	path := m.Path(filepath.Join(t.TempDir(), "reports", "last.yaml"))

	result := m.NewTestResult()
	result.RunningTests = []string{"TestA", "TestB"}
	result.PassingTests = []string{"TestA"}
	result.FailingTests = []m.Failure{{TestCaseName: "TestB", Package: "example.com/p", Message: "boom"}}

	perTest := m.NewCoveragePerTestMethod()
	perTest.Set("TestA", m.Coverage{InstructionsCovered: 2, InstructionsTotal: 9})

	record := m.RunRecord{
		ID:       "4b3c0c51-0f0e-4a52-9f55-3c2f4f0f6f11",
		Kind:     m.RunKindTests,
		Started:  time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		Duration: 1500 * time.Millisecond,
		Options:  m.Options{Binaries: "/project", Classes: []string{"./p"}},
		Result:   result,
		PerTest:  perTest,
	}

	require.NoError(t, store.SaveReport(context.Background(), path, record))

	loaded, err := store.LoadReport(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, record.ID, loaded.ID)
	assert.Equal(t, record.Kind, loaded.Kind)
	assert.True(t, record.Started.Equal(loaded.Started))
	assert.Equal(t, record.Duration, loaded.Duration)
	assert.Equal(t, record.Options, loaded.Options)
	assert.Equal(t, record.Result, loaded.Result)
	assert.Equal(t, record.PerTest, loaded.PerTest)
	assert.Nil(t, loaded.Coverage)
}

func TestYAMLReportStore_LoadErrors(t *testing.T) {
	store := NewReportStore()
	dir := t.TempDir()

	_, err := store.LoadReport(context.Background(), m.Path(filepath.Join(dir, "missing.yaml")))
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	writeTestFile(t, invalid, "id: [unterminated\n")

	_, err = store.LoadReport(context.Background(), m.Path(invalid))
	assert.Error(t, err)
}
