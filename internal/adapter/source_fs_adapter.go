// Package adapter contains the infrastructure adapters of the test runner:
// filesystem access, test discovery, test engines and coverage measurement.
package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	m "gooze.dev/pkg/testrunner/internal/model"
)

// SourceFSAdapter abstracts the filesystem operations the domain layer relies
// on when locating packages inside a user project.
type SourceFSAdapter interface {
	// FindProjectRoot searches for a go.mod file walking up from startPath.
	FindProjectRoot(ctx context.Context, startPath m.Path) (m.Path, error)

	// ModulePath returns the module path declared in root/go.mod.
	ModulePath(ctx context.Context, root m.Path) (string, error)

	// ResolvePackage turns a package name (relative directory or import path)
	// into a Package rooted in project. Failures wrap model.ErrResolution.
	ResolvePackage(ctx context.Context, project m.Path, name string) (m.Package, error)

	// CreateTempDir creates a temporary directory.
	CreateTempDir(ctx context.Context, pattern string) (m.Path, error)

	// RemoveAll removes a directory and all its contents.
	RemoveAll(ctx context.Context, path m.Path) error
}

// LocalSourceFSAdapter implements SourceFSAdapter on the local disk.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// FindProjectRoot searches for go.mod walking up the directory tree.
func (a *LocalSourceFSAdapter) FindProjectRoot(ctx context.Context, startPath m.Path) (m.Path, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	dir, err := filepath.Abs(string(startPath))
	if err != nil {
		return "", fmt.Errorf("absolute path of %s: %w", startPath, err)
	}

	if info, statErr := os.Stat(dir); statErr == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}

	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return m.Path(dir), nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("go.mod not found in any parent directory of %s", startPath)
		}

		dir = parent
	}
}

// ModulePath reads the module directive of root/go.mod.
func (a *LocalSourceFSAdapter) ModulePath(ctx context.Context, root m.Path) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	goModPath := filepath.Join(string(root), "go.mod")

	// #nosec G304 - go.mod of the project under test
	data, err := os.ReadFile(goModPath)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", goModPath, err)
	}

	modulePath := modfile.ModulePath(data)
	if modulePath == "" {
		return "", fmt.Errorf("no module directive in %s", goModPath)
	}

	return modulePath, nil
}

// ResolvePackage locates the directory of name and computes its import path
// and the pattern go test expects when run from project.
func (a *LocalSourceFSAdapter) ResolvePackage(ctx context.Context, project m.Path, name string) (m.Package, error) {
	if err := ctx.Err(); err != nil {
		return m.Package{}, err
	}

	projectDir, err := filepath.Abs(string(project))
	if err != nil {
		return m.Package{}, m.ResolutionErrorf("project %s: %v", project, err)
	}

	if info, err := os.Stat(projectDir); err != nil || !info.IsDir() {
		return m.Package{}, m.ResolutionErrorf("project directory %s does not exist", project)
	}

	root, err := a.FindProjectRoot(ctx, m.Path(projectDir))
	if err != nil {
		return m.Package{}, m.ResolutionErrorf("%v", err)
	}

	modulePath, err := a.ModulePath(ctx, root)
	if err != nil {
		return m.Package{}, m.ResolutionErrorf("%v", err)
	}

	dir := a.packageDir(projectDir, string(root), modulePath, name)

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		slog.Debug("Package directory not found", "package", name, "dir", dir)
		return m.Package{}, m.ResolutionErrorf("package %q not found in %s", name, project)
	}

	relToRoot, err := filepath.Rel(string(root), dir)
	if err != nil || strings.HasPrefix(relToRoot, "..") {
		return m.Package{}, m.ResolutionErrorf("package %q is outside module %s", name, modulePath)
	}

	importPath := modulePath
	if relToRoot != "." {
		importPath = modulePath + "/" + filepath.ToSlash(relToRoot)
	}

	return m.Package{
		Name:       name,
		ImportPath: importPath,
		Pattern:    a.pattern(projectDir, dir),
		Dir:        m.Path(dir),
	}, nil
}

func (a *LocalSourceFSAdapter) packageDir(projectDir, root, modulePath, name string) string {
	name = strings.TrimSpace(name)

	switch {
	case name == modulePath:
		return root
	case strings.HasPrefix(name, modulePath+"/"):
		return filepath.Join(root, filepath.FromSlash(strings.TrimPrefix(name, modulePath+"/")))
	case filepath.IsAbs(name):
		return filepath.Clean(name)
	default:
		return filepath.Join(projectDir, filepath.FromSlash(name))
	}
}

func (a *LocalSourceFSAdapter) pattern(projectDir, dir string) string {
	rel, err := filepath.Rel(projectDir, dir)
	if err != nil {
		return dir
	}

	rel = filepath.ToSlash(rel)
	if rel == "." || strings.HasPrefix(rel, "../") {
		return rel
	}

	return "./" + rel
}

// CreateTempDir creates a temporary directory.
func (a *LocalSourceFSAdapter) CreateTempDir(ctx context.Context, pattern string) (m.Path, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	tmpDir, err := os.MkdirTemp("", pattern)
	if err != nil {
		return "", err
	}

	return m.Path(tmpDir), nil
}

// RemoveAll removes a directory and all its contents.
func (a *LocalSourceFSAdapter) RemoveAll(_ context.Context, path m.Path) error {
	return os.RemoveAll(string(path))
}
