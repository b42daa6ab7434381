// Package controller provides output adapters for displaying test runs.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	m "gooze.dev/pkg/testrunner/internal/model"
)

// UI defines the interface for displaying run results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayTests(ctx context.Context, tests []m.TestCase) error
	DisplayTestResult(ctx context.Context, result *m.TestResult) error
	DisplayCoverage(ctx context.Context, coverage m.Coverage) error
	DisplayCoveragePerTest(ctx context.Context, perTest *m.CoveragePerTestMethod) error
	DisplayRecord(ctx context.Context, record m.RunRecord) error
	// DisplayProgress reports that done of total per-test runs finished.
	DisplayProgress(done, total int, test string)
	DisplayError(ctx context.Context, err error)
}

// IsTTY reports whether w is an interactive terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// NewUI picks the TUI when interactive is true, the plain UI otherwise.
func NewUI(cmd *cobra.Command, interactive bool) UI {
	if interactive {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}
