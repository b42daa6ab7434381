package adapter

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	m "gooze.dev/pkg/testrunner/internal/model"
)

// BinaryTestRunnerAdapter compiles each package into a test binary with
// `go test -c` and runs it through `go tool test2json`. Build flags from the
// request apply to compilation only.
type BinaryTestRunnerAdapter struct {
	fsAdapter SourceFSAdapter
}

// NewBinaryTestRunnerAdapter constructs a BinaryTestRunnerAdapter that keeps
// its binaries in temp dirs created through fsAdapter.
func NewBinaryTestRunnerAdapter(fsAdapter SourceFSAdapter) *BinaryTestRunnerAdapter {
	return &BinaryTestRunnerAdapter{fsAdapter: fsAdapter}
}

// Run compiles and runs the requested packages one after another.
func (a *BinaryTestRunnerAdapter) Run(ctx context.Context, req m.ExecutionRequest, events chan<- m.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tmpDir, err := a.fsAdapter.CreateTempDir(ctx, "testrunner-bin-*")
	if err != nil {
		slog.Error("Failed to create temp dir", "error", err)
		return m.NewExecutionError(fmt.Errorf("create temp dir: %w", err), "")
	}

	defer func() {
		if err := a.fsAdapter.RemoveAll(ctx, tmpDir); err != nil {
			slog.Error("Failed to cleanup temp dir", "tmpDir", tmpDir, "error", err)
		}
	}()

	profiles := make([]string, 0, len(req.Packages))

	for i, pkg := range req.Packages {
		binary := filepath.Join(string(tmpDir), fmt.Sprintf("pkg%d.test", i))

		if err := a.compile(ctx, req, pkg, binary); err != nil {
			return err
		}

		profile := ""
		if req.Measuring() {
			profile = filepath.Join(string(tmpDir), fmt.Sprintf("pkg%d.cov", i))
			profiles = append(profiles, profile)
		}

		if err := a.execute(ctx, req, pkg, binary, profile, events); err != nil {
			return err
		}
	}

	if req.Measuring() {
		if err := concatProfiles(string(req.CoverProfile), profiles); err != nil {
			slog.Error("Failed to merge coverage profiles", "profile", req.CoverProfile, "error", err)
			return m.NewExecutionError(fmt.Errorf("merge coverage profiles: %w", err), "")
		}
	}

	return nil
}

func (a *BinaryTestRunnerAdapter) compile(ctx context.Context, req m.ExecutionRequest, pkg m.Package, binary string) error {
	args := []string{"test", "-c", "-o", binary}
	if req.Measuring() {
		args = append(args, "-cover")
		if len(req.CoverPackages) > 0 {
			args = append(args, "-coverpkg="+strings.Join(req.CoverPackages, ","))
		}
	}

	args = append(args, req.ExtraFlags...)
	args = append(args, pkg.Pattern)

	cmd := exec.CommandContext(ctx, goBinary(req), args...)
	cmd.Dir = string(req.ProjectDir)
	cmd.Env = append(os.Environ(), req.Env...)
	configureProcess(cmd)

	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	slog.Debug("Compiling test binary", "package", pkg.ImportPath, "binary", binary)

	runErr := cmd.Run()
	if err := ctx.Err(); err != nil {
		return err
	}

	diag := strings.TrimSpace(output.String())
	mirrorOutput(req, output.String())

	if runErr != nil {
		if isResolutionDiagnostic(diag) {
			return m.ResolutionErrorf("%s", firstLine(diag))
		}

		slog.Error("Failed to compile test binary", "package", pkg.ImportPath, "error", runErr)

		return m.NewExecutionError(fmt.Errorf("compile %s: %w", pkg.ImportPath, runErr), diag)
	}

	if _, err := os.Stat(binary); err != nil {
		return m.ResolutionErrorf("package %q produced no test binary", pkg.Name)
	}

	return nil
}

func (a *BinaryTestRunnerAdapter) execute(
	ctx context.Context,
	req m.ExecutionRequest,
	pkg m.Package,
	binary string,
	profile string,
	events chan<- m.Event,
) error {
	args := []string{"tool", "test2json", "-t", "-p", pkg.ImportPath, binary, "-test.v=test2json", "-test.count=1"}

	if len(req.Run) > 0 {
		args = append(args, "-test.run="+AnchoredPattern(req.Run))
	}

	if len(req.Skip) > 0 {
		args = append(args, "-test.skip="+AnchoredPattern(req.Skip))
	}

	if profile != "" {
		args = append(args, "-test.coverprofile="+profile)
	}

	// go test runs binaries from the package directory; keep that contract.
	cmd := exec.CommandContext(ctx, goBinary(req), args...)
	cmd.Dir = string(pkg.Dir)
	cmd.Env = append(os.Environ(), req.Env...)

	_, err := streamProcess(ctx, cmd, req, events)

	return err
}

// concatProfiles writes the blocks of every source profile into dst under
// a single mode line.
func concatProfiles(dst string, sources []string) error {
	var out bytes.Buffer

	modeWritten := false

	for _, source := range sources {
		// #nosec G304 - profile written by our own test binary
		data, err := os.ReadFile(source)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}

		if err != nil {
			return err
		}

		scanner := bufio.NewScanner(bytes.NewReader(data))
		for scanner.Scan() {
			line := scanner.Text()
			if strings.HasPrefix(line, "mode:") {
				if modeWritten {
					continue
				}

				modeWritten = true
			}

			out.WriteString(line)
			out.WriteByte('\n')
		}

		if err := scanner.Err(); err != nil {
			return err
		}
	}

	if !modeWritten {
		out.WriteString("mode: set\n")
	}

	return os.WriteFile(dst, out.Bytes(), 0o600)
}
