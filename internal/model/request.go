package model

import (
	"io"
	"time"
)

// ExecutionRequest describes one invocation of a test engine.
type ExecutionRequest struct {
	ProjectDir Path
	Packages   []Package

	// Run lists the top-level tests to execute. Engines never receive an
	// empty list: the orchestrator skips the engine call instead.
	Run []string
	// Skip lists top-level tests that must not execute.
	Skip []string

	ExtraFlags []string
	Env        []string
	GoBinary   string

	// CoverProfile, when set, asks the engine to write a statement profile
	// for CoverPackages to this path.
	CoverProfile  Path
	CoverPackages []string

	// Output receives the raw engine output when non-nil.
	Output  io.Writer
	Verbose bool
}

// Measuring reports whether the request asks for a coverage profile.
func (r ExecutionRequest) Measuring() bool {
	return r.CoverProfile != ""
}

// Options is the configuration surface a caller hands to the orchestrator.
type Options struct {
	// Binaries is the project directory holding the packages.
	Binaries string `yaml:"binaries"`
	// Classes are the packages whose tests to run, in order.
	Classes []string `yaml:"classes"`
	// Methods restricts the run to these tests; empty runs all.
	Methods []string `yaml:"methods,omitempty"`
	// Blacklist names tests that never run.
	Blacklist []string `yaml:"blacklist,omitempty"`
	// Compiled selects the precompiled test binary engine.
	Compiled bool `yaml:"compiled,omitempty"`
}

// RunKind names what a stored run measured.
type RunKind string

// Run kinds recorded in a RunRecord.
const (
	RunKindTests           RunKind = "tests"
	RunKindCoverage        RunKind = "coverage"
	RunKindCoveragePerTest RunKind = "coverage-per-test"
)

// RunRecord is the persisted outcome of one command invocation.
type RunRecord struct {
	ID       string                 `yaml:"id"`
	Kind     RunKind                `yaml:"kind"`
	Started  time.Time              `yaml:"started"`
	Duration time.Duration          `yaml:"duration"`
	Options  Options                `yaml:"options"`
	Result   *TestResult            `yaml:"result,omitempty"`
	Coverage *Coverage              `yaml:"coverage,omitempty"`
	PerTest  *CoveragePerTestMethod `yaml:"per_test,omitempty"`
}
