package adapter

import (
	"context"
	"fmt"
	"go/ast"
	"go/build"
	"go/parser"
	"go/token"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	m "gooze.dev/pkg/testrunner/internal/model"
)

// GoFileAdapter encapsulates Go-specific parsing so the domain layer can
// select tests without knowing how test functions are declared.
type GoFileAdapter interface {
	// Parse builds an AST using the provided file set and optional source
	// bytes. A nil src reads filename from disk.
	Parse(fileSet *token.FileSet, filename string, src []byte) (*ast.File, error)

	// DiscoverTests lists the top-level tests declared in the package's
	// _test.go files that build with buildTags. A missing directory or a
	// package without test files is a resolution error.
	DiscoverTests(ctx context.Context, pkg m.Package, buildTags []string) ([]m.TestCase, error)
}

// LocalGoFileAdapter provides a concrete GoFileAdapter backed by go/parser.
type LocalGoFileAdapter struct {
	buildContext build.Context
}

// NewLocalGoFileAdapter constructs a LocalGoFileAdapter that honours the
// build constraints of the host platform.
func NewLocalGoFileAdapter() *LocalGoFileAdapter {
	return &LocalGoFileAdapter{buildContext: build.Default}
}

// Parse builds an AST for the provided filename/source pair.
func (a *LocalGoFileAdapter) Parse(fileSet *token.FileSet, filename string, src []byte) (*ast.File, error) {
	// parser.ParseFile only reads the file for an untyped nil.
	if src == nil {
		return parser.ParseFile(fileSet, filename, nil, parser.SkipObjectResolution)
	}

	return parser.ParseFile(fileSet, filename, src, parser.SkipObjectResolution)
}

// DiscoverTests scans the package directory, non-recursively.
func (a *LocalGoFileAdapter) DiscoverTests(ctx context.Context, pkg m.Package, buildTags []string) ([]m.TestCase, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dir := string(pkg.Dir)

	entries, err := os.ReadDir(dir)
	if err != nil {
		slog.Error("Failed to read package directory", "package", pkg.Name, "dir", dir, "error", err)
		return nil, m.ResolutionErrorf("package %q: %v", pkg.Name, err)
	}

	buildContext := a.buildContext
	buildContext.BuildTags = append(slices.Clone(buildContext.BuildTags), buildTags...)

	fileSet := token.NewFileSet()
	testFiles := 0

	var tests []m.TestCase

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), "_test.go") {
			continue
		}

		match, err := buildContext.MatchFile(dir, entry.Name())
		if err != nil || !match {
			continue
		}

		testFiles++
		path := filepath.Join(dir, entry.Name())

		src, err := os.ReadFile(path)
		if err != nil {
			slog.Error("Failed to read test file", "path", path, "error", err)
			return nil, m.NewExecutionError(fmt.Errorf("read %s: %w", path, err), "")
		}

		file, err := a.Parse(fileSet, path, src)
		if err != nil {
			slog.Error("Failed to parse test file", "path", path, "error", err)
			return nil, m.NewExecutionError(fmt.Errorf("parse %s: %w", path, err), "")
		}

		tests = append(tests, a.testsInFile(fileSet, file, pkg, m.Path(path))...)
	}

	if testFiles == 0 {
		return nil, m.ResolutionErrorf("package %q has no test files", pkg.Name)
	}

	slog.Debug("Discovered tests", "package", pkg.Name, "count", len(tests))

	return tests, nil
}

func (a *LocalGoFileAdapter) testsInFile(fileSet *token.FileSet, file *ast.File, pkg m.Package, path m.Path) []m.TestCase {
	testingName, dotImport := testingImportName(file)
	if testingName == "" && !dotImport {
		return nil
	}

	var tests []m.TestCase

	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Recv != nil || fn.Body == nil {
			continue
		}

		if !isTestName(fn.Name.Name) {
			continue
		}

		param, ok := testingParam(fn.Type, testingName, dotImport)
		if !ok {
			continue
		}

		tests = append(tests, m.TestCase{
			Package:           pkg,
			Name:              fn.Name.Name,
			File:              path,
			Line:              fileSet.Position(fn.Pos()).Line,
			StaticallySkipped: startsWithSkip(fn.Body, param),
		})
	}

	return tests
}

// testingImportName returns the local name of the "testing" import.
func testingImportName(file *ast.File) (string, bool) {
	for _, spec := range file.Imports {
		path, err := strconv.Unquote(spec.Path.Value)
		if err != nil || path != "testing" {
			continue
		}

		if spec.Name == nil {
			return "testing", false
		}

		if spec.Name.Name == "." {
			return "", true
		}

		return spec.Name.Name, false
	}

	return "", false
}

// isTestName mirrors the go tool rule: "Test" followed by nothing or a
// non-lowercase rune. TestMain is the harness entry point, not a test.
func isTestName(name string) bool {
	if !strings.HasPrefix(name, "Test") || name == "TestMain" {
		return false
	}

	if len(name) == len("Test") {
		return true
	}

	r, _ := utf8.DecodeRuneInString(name[len("Test"):])

	return !unicode.IsLower(r)
}

// testingParam checks the signature func(x *testing.T) and returns x.
func testingParam(fnType *ast.FuncType, testingName string, dotImport bool) (string, bool) {
	if fnType.Results != nil && len(fnType.Results.List) > 0 {
		return "", false
	}

	if fnType.TypeParams != nil || fnType.Params == nil || len(fnType.Params.List) != 1 {
		return "", false
	}

	field := fnType.Params.List[0]
	if len(field.Names) > 1 {
		return "", false
	}

	star, ok := field.Type.(*ast.StarExpr)
	if !ok {
		return "", false
	}

	switch x := star.X.(type) {
	case *ast.SelectorExpr:
		ident, ok := x.X.(*ast.Ident)
		if !ok || ident.Name != testingName || x.Sel.Name != "T" {
			return "", false
		}
	case *ast.Ident:
		if !dotImport || x.Name != "T" {
			return "", false
		}
	default:
		return "", false
	}

	if len(field.Names) == 0 {
		return "_", true
	}

	return field.Names[0].Name, true
}

func startsWithSkip(body *ast.BlockStmt, param string) bool {
	if param == "_" || len(body.List) == 0 {
		return false
	}

	stmt, ok := body.List[0].(*ast.ExprStmt)
	if !ok {
		return false
	}

	call, ok := stmt.X.(*ast.CallExpr)
	if !ok {
		return false
	}

	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return false
	}

	recv, ok := sel.X.(*ast.Ident)
	if !ok || recv.Name != param {
		return false
	}

	switch sel.Sel.Name {
	case "Skip", "Skipf", "SkipNow":
		return true
	default:
		return false
	}
}
