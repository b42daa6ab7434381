package model

import (
	"fmt"
	"sort"
)

// Coverage holds statement counters of the packages under measurement.
type Coverage struct {
	InstructionsCovered int `yaml:"covered"`
	InstructionsTotal   int `yaml:"total"`
}

// Ratio returns covered/total, or 0 when nothing was measured.
func (c Coverage) Ratio() float64 {
	if c.InstructionsTotal == 0 {
		return 0
	}

	return float64(c.InstructionsCovered) / float64(c.InstructionsTotal)
}

func (c Coverage) String() string {
	return fmt.Sprintf("%d/%d (%.2f%%)", c.InstructionsCovered, c.InstructionsTotal, c.Ratio()*100)
}

// CoveragePerTestMethod maps each measured test to the coverage of running it alone.
type CoveragePerTestMethod struct {
	Entries map[string]Coverage `yaml:"tests"`
}

// NewCoveragePerTestMethod returns an empty mapping.
func NewCoveragePerTestMethod() *CoveragePerTestMethod {
	return &CoveragePerTestMethod{Entries: make(map[string]Coverage)}
}

// Set records the coverage of test.
func (c *CoveragePerTestMethod) Set(test string, coverage Coverage) {
	if c.Entries == nil {
		c.Entries = make(map[string]Coverage)
	}

	c.Entries[test] = coverage
}

// CoverageOf returns the coverage of test, or an error wrapping
// ErrInvalidLookup when it was not measured.
func (c *CoveragePerTestMethod) CoverageOf(test string) (Coverage, error) {
	coverage, ok := c.Entries[test]
	if !ok {
		return Coverage{}, fmt.Errorf("%w: no coverage measured for %q", ErrInvalidLookup, test)
	}

	return coverage, nil
}

// Tests returns the measured test names sorted.
func (c *CoveragePerTestMethod) Tests() []string {
	names := make([]string, 0, len(c.Entries))
	for name := range c.Entries {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Len returns the number of measured tests.
func (c *CoveragePerTestMethod) Len() int {
	return len(c.Entries)
}
