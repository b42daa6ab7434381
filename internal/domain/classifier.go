package domain

import (
	"context"
	"strings"

	"github.com/acarl005/stripansi"
	m "gooze.dev/pkg/testrunner/internal/model"
)

type unitState int

const (
	stateNotStarted unitState = iota
	stateRunning
	statePassed
	stateFailed
	stateAssumptionFailed
	stateSkipped
)

func (s unitState) terminal() bool {
	return s >= statePassed
}

// rank orders outcomes when several units report under one name.
func (s unitState) rank() int {
	switch s {
	case stateFailed, stateRunning:
		return 4
	case stateAssumptionFailed:
		return 3
	case statePassed:
		return 2
	case stateSkipped:
		return 1
	case stateNotStarted:
		return 0
	default:
		return 0
	}
}

type unitKey struct {
	pkg  string
	name string
}

type unit struct {
	key      unitKey
	state    unitState
	output   strings.Builder
	children []*unit
}

func (u *unit) failedDescendant() bool {
	for _, child := range u.children {
		if child.state == stateFailed || child.failedDescendant() {
			return true
		}
	}

	return false
}

// framingPrefixes are engine status lines that carry no failure detail.
var framingPrefixes = []string{
	"=== RUN", "=== PAUSE", "=== CONT", "=== NAME",
	"--- FAIL", "--- PASS", "--- SKIP",
}

const (
	failedMessage     = "test failed"
	unfinishedMessage = "test started but never finished"
)

// ClassifierOption configures a Classifier.
type ClassifierOption func(*Classifier)

// WithNaming selects how subtest instances are reported.
func WithNaming(naming Naming) ClassifierOption {
	return func(c *Classifier) {
		c.naming = naming
	}
}

// WithNameMapper reports each leaf unit under mapper(name). Units mapped to
// the same name are merged, the worst outcome winning.
func WithNameMapper(mapper func(string) string) ClassifierOption {
	return func(c *Classifier) {
		c.mapper = mapper
	}
}

// WithExclusion drops every unit for which excluded returns true, along with
// its subtests.
func WithExclusion(excluded func(string) bool) ClassifierOption {
	return func(c *Classifier) {
		c.excluded = excluded
	}
}

// Classifier folds engine events into a TestResult. It is not safe for
// concurrent use; one goroutine feeds it.
type Classifier struct {
	naming   Naming
	mapper   func(string) string
	excluded func(string) bool

	units map[unitKey]*unit
	order []*unit
}

// NewClassifier returns an empty Classifier.
func NewClassifier(opts ...ClassifierOption) *Classifier {
	c := &Classifier{
		naming: NamingInstance,
		units:  make(map[unitKey]*unit),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Consume observes events until the channel is closed or ctx is done.
func (c *Classifier) Consume(ctx context.Context, events <-chan m.Event) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-events:
			if !ok {
				return nil
			}

			c.Observe(event)
		}
	}
}

// Observe applies one event. The first terminal event of a unit wins and
// later ones are ignored.
func (c *Classifier) Observe(event m.Event) {
	if event.Test == "" {
		return
	}

	u := c.unit(event.Package, event.Test)

	switch event.Kind {
	case m.EventStarted:
		if u.state == stateNotStarted {
			u.state = stateRunning
		}
	case m.EventOutput:
		u.output.WriteString(event.Output)
	case m.EventPassed:
		c.finish(u, statePassed)
	case m.EventFailed:
		c.finish(u, stateFailed)
	case m.EventAssumptionViolated:
		c.finish(u, stateAssumptionFailed)
	case m.EventSkippedStatically:
		if u.state == stateNotStarted {
			u.state = stateSkipped
		}
	}
}

func (c *Classifier) finish(u *unit, state unitState) {
	if u.state.terminal() {
		return
	}

	u.state = state
}

func (c *Classifier) unit(pkg, name string) *unit {
	key := unitKey{pkg: pkg, name: name}
	if u, ok := c.units[key]; ok {
		return u
	}

	u := &unit{key: key}
	c.units[key] = u
	c.order = append(c.order, u)

	if idx := strings.LastIndex(name, "/"); idx > 0 {
		parent := c.unit(pkg, name[:idx])
		parent.children = append(parent.children, u)
	}

	return u
}

type reported struct {
	name   string
	pkg    string
	state  unitState
	output strings.Builder
}

// Result builds the TestResult of everything observed so far. Units that
// started but never finished are reported as failing.
func (c *Classifier) Result() *m.TestResult {
	var (
		groups = make(map[string]*reported)
		order  []*reported
	)

	for _, u := range c.order {
		if !c.reportable(u) {
			continue
		}

		name := c.reportName(u.key.name)

		group, ok := groups[name]
		if !ok {
			group = &reported{name: name, pkg: u.key.pkg, state: stateNotStarted}
			groups[name] = group
			order = append(order, group)
		}

		if u.state.rank() > group.state.rank() {
			group.state = u.state
			group.pkg = u.key.pkg
		}

		c.collectOutput(&group.output, u)
	}

	result := m.NewTestResult()

	for _, group := range order {
		switch group.state {
		case stateSkipped:
			result.IgnoredTests = append(result.IgnoredTests, group.name)
			continue
		case stateNotStarted:
			continue
		case statePassed:
			result.PassingTests = append(result.PassingTests, group.name)
		case stateAssumptionFailed:
			result.AssumptionFailingTests = append(result.AssumptionFailingTests, group.name)
		case stateFailed, stateRunning:
			message := failureMessage(group.output.String())

			switch {
			case group.state == stateRunning:
				message = strings.TrimSpace(message + "\n" + unfinishedMessage)
			case message == "":
				message = failedMessage
			}

			result.FailingTests = append(result.FailingTests, m.Failure{
				TestCaseName: group.name,
				Package:      group.pkg,
				Message:      message,
			})
		}

		result.RunningTests = append(result.RunningTests, group.name)
	}

	return result
}

func (c *Classifier) reportable(u *unit) bool {
	if c.isExcluded(u.key.name) {
		return false
	}

	if c.naming == NamingDeclaring && c.mapper == nil {
		return !strings.Contains(u.key.name, "/")
	}

	if len(u.children) == 0 {
		return true
	}

	// A container is only reported when it failed on its own.
	return u.state == stateFailed && !u.failedDescendant()
}

func (c *Classifier) isExcluded(name string) bool {
	if c.excluded == nil {
		return false
	}

	for {
		if c.excluded(name) {
			return true
		}

		idx := strings.LastIndex(name, "/")
		if idx <= 0 {
			return false
		}

		name = name[:idx]
	}
}

func (c *Classifier) reportName(name string) string {
	if c.mapper != nil {
		return c.mapper(name)
	}

	return name
}

// collectOutput appends the output of u and, for a rolled-up test, of its
// failing subtests.
func (c *Classifier) collectOutput(dst *strings.Builder, u *unit) {
	if u.state != stateFailed && u.state != stateRunning {
		return
	}

	dst.WriteString(u.output.String())

	if c.naming != NamingDeclaring || c.mapper != nil {
		return
	}

	for _, child := range u.children {
		if c.isExcluded(child.key.name) {
			continue
		}

		c.collectOutput(dst, child)
	}
}

// failureMessage returns the output without ANSI escapes and framing lines.
func failureMessage(output string) string {
	lines := strings.Split(stripansi.Strip(output), "\n")
	kept := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || isFraming(trimmed) {
			continue
		}

		kept = append(kept, strings.TrimRight(line, " \t\r"))
	}

	return strings.Join(kept, "\n")
}

func isFraming(line string) bool {
	for _, prefix := range framingPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}

	return false
}

// DeclaringName returns the top-level test a subtest instance belongs to.
func DeclaringName(name string) string {
	top, _, _ := strings.Cut(name, "/")
	return top
}
