package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	m "gooze.dev/pkg/testrunner/internal/model"
)

// Outcome labels used in tables.
const (
	labelPassing    = "passing"
	labelFailing    = "failing"
	labelAssumption = "assumption"
	labelIgnored    = "ignored"
	labelSelected   = "selected"
)

var (
	passColor   = color.New(color.FgGreen)
	failColor   = color.New(color.FgRed, color.Bold)
	assumeColor = color.New(color.FgYellow)
	ignoreColor = color.New(color.FgHiBlack)
)

// SimpleUI implements UI using cobra Command's output streams.
type SimpleUI struct {
	cmd *cobra.Command

	mu  sync.Mutex
	bar *progressbar.ProgressBar
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayTests prints the tests a selection resolves to.
func (s *SimpleUI) DisplayTests(ctx context.Context, tests []m.TestCase) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderTestsTable(tests))

	return nil
}

func renderTestsTable(tests []m.TestCase) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Package", "Test", "Status", "Location"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	ignoredCount := 0

	for _, tc := range tests {
		status := labelSelected
		if tc.StaticallySkipped {
			status = ignoreColor.Sprint(labelIgnored)
			ignoredCount++
		}

		table.Append([]string{
			tc.Package.ImportPath,
			tc.Name,
			status,
			fmt.Sprintf("%s:%d", shortFile(tc.File), tc.Line),
		})
	}

	table.SetFooter([]string{
		"",
		fmt.Sprintf("Total %d", len(tests)),
		fmt.Sprintf("%d ignored", ignoredCount),
		"",
	})

	table.Render()

	return tableBuffer.String()
}

// DisplayTestResult prints one row per classified test, then the failures.
func (s *SimpleUI) DisplayTestResult(ctx context.Context, result *m.TestResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderTestResult(result))

	return nil
}

func renderTestResult(result *m.TestResult) string {
	if result == nil {
		result = m.NewTestResult()
	}

	var out bytes.Buffer

	table := tablewriter.NewWriter(&out)
	table.SetHeader([]string{"Test", "Outcome"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, name := range result.PassingTests {
		table.Append([]string{name, passColor.Sprint(labelPassing)})
	}

	for _, failure := range result.FailingTests {
		table.Append([]string{failure.TestCaseName, failColor.Sprint(labelFailing)})
	}

	for _, name := range result.AssumptionFailingTests {
		table.Append([]string{name, assumeColor.Sprint(labelAssumption)})
	}

	for _, name := range result.IgnoredTests {
		table.Append([]string{name, ignoreColor.Sprint(labelIgnored)})
	}

	table.Render()

	for _, failure := range result.FailingTests {
		fmt.Fprintf(&out, "\n%s %s\n", failColor.Sprint("FAIL"), failure.TestCaseName)

		for _, line := range strings.Split(failure.Message, "\n") {
			fmt.Fprintf(&out, "    %s\n", strings.TrimSpace(line))
		}
	}

	fmt.Fprintf(&out, "\n%s\n", summaryLine(result))

	return out.String()
}

func summaryLine(result *m.TestResult) string {
	return fmt.Sprintf("running %d, passing %d, failing %d, assumption failing %d, ignored %d",
		len(result.RunningTests),
		len(result.PassingTests),
		len(result.FailingTests),
		len(result.AssumptionFailingTests),
		len(result.IgnoredTests))
}

// DisplayCoverage prints the aggregate statement coverage.
func (s *SimpleUI) DisplayCoverage(ctx context.Context, coverage m.Coverage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("Coverage: %s\n", coverage.String())

	return nil
}

// DisplayCoveragePerTest prints the coverage of every measured test.
func (s *SimpleUI) DisplayCoveragePerTest(ctx context.Context, perTest *m.CoveragePerTestMethod) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderPerTestTable(perTest))

	return nil
}

func renderPerTestTable(perTest *m.CoveragePerTestMethod) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Test", "Covered", "Total", "Ratio"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT})

	if perTest != nil {
		for _, name := range perTest.Tests() {
			coverage := perTest.Entries[name]
			table.Append([]string{
				name,
				fmt.Sprintf("%d", coverage.InstructionsCovered),
				fmt.Sprintf("%d", coverage.InstructionsTotal),
				fmt.Sprintf("%.2f%%", coverage.Ratio()*100),
			})
		}
	}

	table.Render()

	return tableBuffer.String()
}

// DisplayRecord prints a stored run.
func (s *SimpleUI) DisplayRecord(ctx context.Context, record m.RunRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderRecord(record))

	return nil
}

func renderRecord(record m.RunRecord) string {
	var out strings.Builder

	fmt.Fprintf(&out, "Run %s (%s)\n", record.ID, record.Kind)
	fmt.Fprintf(&out, "Started %s, took %s\n", record.Started.Format(time.RFC3339), record.Duration.Round(time.Millisecond))

	if len(record.Options.Classes) > 0 {
		fmt.Fprintf(&out, "Packages: %s\n", strings.Join(record.Options.Classes, ", "))
	}

	out.WriteString("\n")

	if record.Result != nil {
		out.WriteString(renderTestResult(record.Result))
	}

	if record.Coverage != nil {
		fmt.Fprintf(&out, "Coverage: %s\n", record.Coverage.String())
	}

	if record.PerTest != nil {
		out.WriteString(renderPerTestTable(record.PerTest))
	}

	return out.String()
}

// DisplayProgress renders a progress bar on stderr for per-test runs.
func (s *SimpleUI) DisplayProgress(done, total int, test string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.bar == nil {
		s.bar = progressbar.NewOptions(total,
			progressbar.OptionSetWriter(s.cmd.ErrOrStderr()),
			progressbar.OptionSetDescription("measuring"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	s.bar.Describe(test)
	_ = s.bar.Set(done)

	if done >= total {
		_ = s.bar.Finish()
		s.bar = nil
	}
}

// DisplayError prints err on stderr.
func (s *SimpleUI) DisplayError(ctx context.Context, err error) {
	if ctx.Err() != nil || err == nil {
		return
	}

	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), "%s %v\n", failColor.Sprint("error:"), err)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func shortFile(path m.Path) string {
	p := string(path)
	if idx := strings.LastIndex(p, "/"); idx >= 0 {
		return p[idx+1:]
	}

	return p
}
