package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "gooze.dev/pkg/testrunner/internal/model"
)

func TestLocalSourceFSAdapter_FindProjectRoot(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	goModDir := filepath.Join(root, "project")
	mustMkdir(t, goModDir)
	writeTestFile(t, filepath.Join(goModDir, "go.mod"), "module example.com/project\n")

	subDir := filepath.Join(goModDir, "sub", "pkg")
	require.NoError(t, os.MkdirAll(subDir, 0o755))

	got, err := adapter.FindProjectRoot(context.Background(), m.Path(filepath.Join(subDir, "file.go")))
	require.NoError(t, err)
	assert.Equal(t, m.Path(goModDir), got)

	_, err = adapter.FindProjectRoot(context.Background(), m.Path(root))
	assert.Error(t, err)
}

func TestLocalSourceFSAdapter_ModulePath(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "go.mod"), "// comment\nmodule example.com/project\n\ngo 1.22\n")

	got, err := adapter.ModulePath(context.Background(), m.Path(root))
	require.NoError(t, err)
	assert.Equal(t, "example.com/project", got)

	empty := t.TempDir()
	writeTestFile(t, filepath.Join(empty, "go.mod"), "go 1.22\n")

	_, err = adapter.ModulePath(context.Background(), m.Path(empty))
	assert.Error(t, err)
}

func TestLocalSourceFSAdapter_ResolvePackage(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()
	project := fixtureProject(t)

	tests := []struct {
		name       string
		pkg        string
		importPath string
		pattern    string
	}{
		{name: "relative dir", pkg: "./failing", importPath: "example.com/fixture/failing", pattern: "./failing"},
		{name: "bare dir", pkg: "table", importPath: "example.com/fixture/table", pattern: "./table"},
		{name: "import path", pkg: "example.com/fixture/source", importPath: "example.com/fixture/source", pattern: "./source"},
		{name: "module root", pkg: ".", importPath: "example.com/fixture", pattern: "."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pkg, err := adapter.ResolvePackage(context.Background(), project, tt.pkg)
			require.NoError(t, err)

			assert.Equal(t, tt.pkg, pkg.Name)
			assert.Equal(t, tt.importPath, pkg.ImportPath)
			assert.Equal(t, tt.pattern, pkg.Pattern)
			assert.DirExists(t, string(pkg.Dir))
		})
	}
}

func TestLocalSourceFSAdapter_ResolvePackage_FromSubdirectory(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()
	project := m.Path(filepath.Join(string(fixtureProject(t)), "failing"))

	pkg, err := adapter.ResolvePackage(context.Background(), project, "../table")
	require.NoError(t, err)

	assert.Equal(t, "example.com/fixture/table", pkg.ImportPath)
	assert.Equal(t, "../table", pkg.Pattern)
}

func TestLocalSourceFSAdapter_ResolvePackage_Errors(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()
	project := fixtureProject(t)

	_, err := adapter.ResolvePackage(context.Background(), project, "./does_not_exist")
	require.ErrorIs(t, err, m.ErrResolution)

	_, err = adapter.ResolvePackage(context.Background(), m.Path(filepath.Join(t.TempDir(), "missing")), "./failing")
	require.ErrorIs(t, err, m.ErrResolution)

	_, err = adapter.ResolvePackage(context.Background(), m.Path(t.TempDir()), ".")
	require.ErrorIs(t, err, m.ErrResolution)
}

func TestLocalSourceFSAdapter_ContextCancellation(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := adapter.ResolvePackage(ctx, fixtureProject(t), "./failing")
	require.ErrorIs(t, err, context.Canceled)

	_, err = adapter.CreateTempDir(ctx, "testrunner-test-*")
	require.ErrorIs(t, err, context.Canceled)
}

func TestLocalSourceFSAdapter_CreateTempDirAndRemoveAll(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	tmp, err := adapter.CreateTempDir(context.Background(), "testrunner-test-*")
	require.NoError(t, err)
	assert.DirExists(t, string(tmp))

	writeTestFile(t, filepath.Join(string(tmp), "cover.out"), "mode: set\n")

	require.NoError(t, adapter.RemoveAll(context.Background(), tmp))
	assert.NoDirExists(t, string(tmp))
}

func fixtureProject(t *testing.T) m.Path {
	t.Helper()

	dir, err := filepath.Abs(filepath.Join("testdata", "project"))
	require.NoError(t, err)

	return m.Path(dir)
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	writeTestBytes(t, path, []byte(contents))
}

func writeTestBytes(t *testing.T, path string, contents []byte) {
	t.Helper()
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("failed to create dir %s: %v", path, err)
	}
}
