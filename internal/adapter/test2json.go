package adapter

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	m "gooze.dev/pkg/testrunner/internal/model"
)

// test2json actions, see `go doc test2json`.
const (
	actionStart       = "start"
	actionRun         = "run"
	actionPause       = "pause"
	actionCont        = "cont"
	actionPass        = "pass"
	actionFail        = "fail"
	actionSkip        = "skip"
	actionOutput      = "output"
	actionBench       = "bench"
	actionBuildOutput = "build-output"
	actionBuildFail   = "build-fail"
)

const (
	maxEventLineBytes  = 4 * 1024 * 1024
	maxDiagnosticBytes = 64 * 1024
)

// resolutionDiagnostics are go command messages meaning a package could not be found.
var resolutionDiagnostics = []string{
	"cannot find package",
	"no required module provides package",
	"cannot find module providing package",
	"finding module for package",
	"is not in std",
	"matched no packages",
	"directory not found",
	"no test files",
}

// testEvent is one line of go test -json / test2json output.
type testEvent struct {
	Time        time.Time
	Action      string
	Package     string
	Test        string
	Elapsed     float64
	Output      string
	FailedBuild string
	ImportPath  string
}

// toModel translates a test-level event into the engine-neutral event.
func (e testEvent) toModel() (m.Event, bool) {
	if e.Test == "" {
		return m.Event{}, false
	}

	event := m.Event{
		Package: e.Package,
		Test:    e.Test,
		Elapsed: time.Duration(e.Elapsed * float64(time.Second)),
	}

	switch e.Action {
	case actionRun:
		event.Kind = m.EventStarted
	case actionPass:
		event.Kind = m.EventPassed
	case actionFail:
		event.Kind = m.EventFailed
	case actionSkip:
		event.Kind = m.EventAssumptionViolated
	case actionOutput:
		event.Kind = m.EventOutput
		event.Output = e.Output
	default:
		return m.Event{}, false
	}

	return event, true
}

// streamStats accumulates what the engine reported outside of test events.
type streamStats struct {
	failedTests    map[string]int
	failedPackages []string
	buildFailed    bool
	diagnostics    bytes.Buffer
}

func newStreamStats() *streamStats {
	return &streamStats{failedTests: make(map[string]int)}
}

func (s *streamStats) observe(e testEvent) {
	switch e.Action {
	case actionFail:
		if e.Test != "" {
			s.failedTests[e.Package]++
			return
		}

		s.failedPackages = append(s.failedPackages, e.Package)
		if e.FailedBuild != "" {
			s.buildFailed = true
		}
	case actionBuildFail:
		s.buildFailed = true
	case actionBuildOutput:
		s.addDiagnostic(e.Output)
	case actionOutput:
		if e.Test == "" {
			s.addDiagnostic(e.Output)
		}
	case actionStart, actionRun, actionPause, actionCont, actionPass, actionSkip, actionBench:
	}
}

func (s *streamStats) addDiagnostic(text string) {
	if s.diagnostics.Len()+len(text) > maxDiagnosticBytes {
		return
	}

	s.diagnostics.WriteString(text)
}

// verdict decides whether the finished engine process ended normally.
// Failing tests are a normal outcome; anything else is an engine fault.
func (s *streamStats) verdict(waitErr error, stderr string) error {
	diag := strings.TrimSpace(strings.TrimSpace(stderr) + "\n" + s.diagnostics.String())

	if isResolutionDiagnostic(diag) {
		return m.ResolutionErrorf("%s", firstLine(diag))
	}

	if s.buildFailed {
		return m.NewExecutionError(errors.New("build failed"), diag)
	}

	for _, pkg := range s.failedPackages {
		if s.failedTests[pkg] == 0 {
			return m.NewExecutionError(fmt.Errorf("package %s failed outside of any test", pkg), diag)
		}
	}

	if waitErr == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) && exitErr.ExitCode() == 1 && s.totalFailedTests() > 0 {
		return nil
	}

	return m.NewExecutionError(waitErr, diag)
}

func (s *streamStats) totalFailedTests() int {
	total := 0
	for _, n := range s.failedTests {
		total += n
	}

	return total
}

func isResolutionDiagnostic(diag string) bool {
	lower := strings.ToLower(diag)
	for _, marker := range resolutionDiagnostics {
		if strings.Contains(lower, marker) {
			return true
		}
	}

	return false
}

func firstLine(text string) string {
	line, _, _ := strings.Cut(text, "\n")
	return line
}

// streamProcess starts cmd, decodes its stdout as test2json lines and pushes
// test events to events in the order they were emitted. It returns once the
// process has exited and its output is drained.
func streamProcess(ctx context.Context, cmd *exec.Cmd, req m.ExecutionRequest, events chan<- m.Event) (*streamStats, error) {
	stats := newStreamStats()

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return stats, m.NewExecutionError(fmt.Errorf("stdout pipe: %w", err), "")
	}

	var stderr bytes.Buffer
	if req.Output != nil {
		cmd.Stderr = io.MultiWriter(&stderr, req.Output)
	} else {
		cmd.Stderr = &stderr
	}

	configureProcess(cmd)

	slog.Debug("Starting test engine", "dir", cmd.Dir, "args", cmd.Args)

	if err := cmd.Start(); err != nil {
		slog.Error("Failed to start test engine", "path", cmd.Path, "error", err)
		return stats, m.NewExecutionError(fmt.Errorf("start %s: %w", cmd.Path, err), "")
	}

	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 0, 64*1024), maxEventLineBytes)

	cancelled := false

	for scanner.Scan() && !cancelled {
		line := scanner.Bytes()

		var raw testEvent
		if err := json.Unmarshal(line, &raw); err != nil {
			mirrorOutput(req, string(line)+"\n")
			stats.addDiagnostic(string(line) + "\n")

			continue
		}

		mirrorOutput(req, raw.Output)
		stats.observe(raw)

		event, ok := raw.toModel()
		if !ok {
			continue
		}

		select {
		case events <- event:
		case <-ctx.Done():
			cancelled = true
		}
	}

	if err := scanner.Err(); err != nil && ctx.Err() == nil {
		slog.Warn("Reading test engine output failed", "error", err)
	}

	// Drain whatever is left so Wait does not race the pipe.
	_, _ = io.Copy(io.Discard, stdout)

	waitErr := cmd.Wait()

	if err := ctx.Err(); err != nil {
		return stats, err
	}

	return stats, stats.verdict(waitErr, stderr.String())
}

// mirrorOutput forwards human-readable engine output to the request writer
// and, in verbose mode, to the debug log.
func mirrorOutput(req m.ExecutionRequest, text string) {
	if text == "" {
		return
	}

	if req.Output != nil {
		_, _ = io.WriteString(req.Output, text)
	}

	if req.Verbose {
		slog.Debug("engine output", "line", strings.TrimRight(text, "\n"))
	}
}
