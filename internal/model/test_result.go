package model

import (
	"fmt"
	"slices"
)

// Failure describes why a single test case failed.
type Failure struct {
	TestCaseName string `yaml:"test"`
	Package      string `yaml:"package,omitempty"`
	Message      string `yaml:"message"`
}

func (f Failure) String() string {
	return fmt.Sprintf("%s: %s", f.TestCaseName, f.Message)
}

// TestResult holds the classification of every test of one run.
//
// RunningTests is the union of PassingTests, the names of FailingTests and
// AssumptionFailingTests. IgnoredTests never overlaps RunningTests.
type TestResult struct {
	RunningTests           []string  `yaml:"running"`
	PassingTests           []string  `yaml:"passing"`
	FailingTests           []Failure `yaml:"failing"`
	AssumptionFailingTests []string  `yaml:"assumption_failing"`
	IgnoredTests           []string  `yaml:"ignored"`
}

// NewTestResult returns an empty result with non-nil sets.
func NewTestResult() *TestResult {
	return &TestResult{
		RunningTests:           []string{},
		PassingTests:           []string{},
		FailingTests:           []Failure{},
		AssumptionFailingTests: []string{},
		IgnoredTests:           []string{},
	}
}

// FailingNames returns the names of the failing tests in report order.
func (r *TestResult) FailingNames() []string {
	names := make([]string, 0, len(r.FailingTests))
	for _, failure := range r.FailingTests {
		names = append(names, failure.TestCaseName)
	}

	return names
}

// FailureOf returns the failure recorded for name. It returns an error
// wrapping ErrInvalidLookup when name did not fail.
func (r *TestResult) FailureOf(name string) (Failure, error) {
	for _, failure := range r.FailingTests {
		if failure.TestCaseName == name {
			return failure, nil
		}
	}

	return Failure{}, fmt.Errorf("%w: %q is not a failing test", ErrInvalidLookup, name)
}

// Merge returns the per-category union of r and other. The first failure
// recorded for a name is kept.
func (r *TestResult) Merge(other *TestResult) *TestResult {
	merged := NewTestResult()
	if r == nil && other == nil {
		return merged
	}

	for _, res := range []*TestResult{r, other} {
		if res == nil {
			continue
		}

		merged.RunningTests = appendUnique(merged.RunningTests, res.RunningTests...)
		merged.PassingTests = appendUnique(merged.PassingTests, res.PassingTests...)
		merged.AssumptionFailingTests = appendUnique(merged.AssumptionFailingTests, res.AssumptionFailingTests...)
		merged.IgnoredTests = appendUnique(merged.IgnoredTests, res.IgnoredTests...)

		for _, failure := range res.FailingTests {
			if _, err := merged.FailureOf(failure.TestCaseName); err == nil {
				continue
			}

			merged.FailingTests = append(merged.FailingTests, failure)
		}
	}

	return merged
}

// Validate checks the set invariants of the result.
func (r *TestResult) Validate() error {
	outcomes := make(map[string]string)

	record := func(category string, names []string) error {
		for _, name := range names {
			if prev, ok := outcomes[name]; ok {
				return fmt.Errorf("test %q is both %s and %s", name, prev, category)
			}

			outcomes[name] = category
		}

		return nil
	}

	if err := record("passing", r.PassingTests); err != nil {
		return err
	}

	if err := record("failing", r.FailingNames()); err != nil {
		return err
	}

	if err := record("assumption failing", r.AssumptionFailingTests); err != nil {
		return err
	}

	if len(outcomes) != len(r.RunningTests) {
		return fmt.Errorf("running has %d tests, outcomes cover %d", len(r.RunningTests), len(outcomes))
	}

	for _, name := range r.RunningTests {
		if _, ok := outcomes[name]; !ok {
			return fmt.Errorf("running test %q has no outcome", name)
		}
	}

	for _, name := range r.IgnoredTests {
		if slices.Contains(r.RunningTests, name) {
			return fmt.Errorf("ignored test %q is also running", name)
		}
	}

	return nil
}

func (r *TestResult) String() string {
	return fmt.Sprintf("running=%d passing=%d failing=%d assumption_failing=%d ignored=%d",
		len(r.RunningTests), len(r.PassingTests), len(r.FailingTests),
		len(r.AssumptionFailingTests), len(r.IgnoredTests))
}

func appendUnique(dst []string, names ...string) []string {
	for _, name := range names {
		if !slices.Contains(dst, name) {
			dst = append(dst, name)
		}
	}

	return dst
}
