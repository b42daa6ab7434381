package adapter

import (
	"context"
	"os"
	"os/exec"
	"regexp"
	"strings"

	m "gooze.dev/pkg/testrunner/internal/model"
)

// DefaultGoBinary is the go command used when a request names none.
const DefaultGoBinary = "go"

// TestRunnerAdapter abstracts the execution engine.
type TestRunnerAdapter interface {
	// Run executes the requested tests and pushes one event per lifecycle
	// transition to events, in engine order. It returns after the engine
	// has fully exited. Run never closes events.
	Run(ctx context.Context, req m.ExecutionRequest, events chan<- m.Event) error
}

// GoTestRunnerAdapter drives `go test -json`.
type GoTestRunnerAdapter struct{}

// NewGoTestRunnerAdapter constructs a GoTestRunnerAdapter.
func NewGoTestRunnerAdapter() *GoTestRunnerAdapter {
	return &GoTestRunnerAdapter{}
}

// Run runs 'go test -json' on all requested packages in one invocation.
func (a *GoTestRunnerAdapter) Run(ctx context.Context, req m.ExecutionRequest, events chan<- m.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, goBinary(req), a.buildArgs(req)...)
	cmd.Dir = string(req.ProjectDir)
	cmd.Env = append(os.Environ(), req.Env...)

	_, err := streamProcess(ctx, cmd, req, events)

	return err
}

func (a *GoTestRunnerAdapter) buildArgs(req m.ExecutionRequest) []string {
	args := []string{"test", "-json", "-count=1"}
	args = append(args, req.ExtraFlags...)

	if len(req.Run) > 0 {
		args = append(args, "-run", AnchoredPattern(req.Run))
	}

	if len(req.Skip) > 0 {
		args = append(args, "-skip", AnchoredPattern(req.Skip))
	}

	if req.Measuring() {
		args = append(args, "-coverprofile="+string(req.CoverProfile))
		if len(req.CoverPackages) > 0 {
			args = append(args, "-coverpkg="+strings.Join(req.CoverPackages, ","))
		}
	}

	for _, pkg := range req.Packages {
		args = append(args, pkg.Pattern)
	}

	return args
}

// AnchoredPattern builds a -run/-skip expression matching exactly the given
// top-level test names.
func AnchoredPattern(names []string) string {
	quoted := make([]string, 0, len(names))
	for _, name := range names {
		quoted = append(quoted, regexp.QuoteMeta(name))
	}

	return "^(" + strings.Join(quoted, "|") + ")$"
}

func goBinary(req m.ExecutionRequest) string {
	if req.GoBinary == "" {
		return DefaultGoBinary
	}

	return req.GoBinary
}
