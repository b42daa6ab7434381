// Package model defines the data structures shared by the test runner layers.
package model

// Path represents a file system path.
type Path string

// Package is a Go package resolved inside a project.
type Package struct {
	// Name is the package as the caller named it (relative dir or import path).
	Name string `yaml:"name"`
	// ImportPath is the full import path inside the module.
	ImportPath string `yaml:"import_path"`
	// Pattern is the "./rel" pattern relative to the project directory.
	Pattern string `yaml:"pattern"`
	// Dir is the absolute directory of the package.
	Dir Path `yaml:"dir"`
}

// TestCase is one top-level test function discovered in a package.
type TestCase struct {
	Package Package
	Name    string
	File    Path
	Line    int

	// StaticallySkipped is true when the test body starts with an
	// unconditional t.Skip, t.Skipf or t.SkipNow.
	StaticallySkipped bool
}
