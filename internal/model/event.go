package model

import "time"

// EventKind enumerates the lifecycle transitions reported by an engine.
type EventKind int

const (
	// EventStarted means the test began executing.
	EventStarted EventKind = iota
	// EventPassed means the test finished without failure or skip.
	EventPassed
	// EventFailed means the test finished with a failure.
	EventFailed
	// EventAssumptionViolated means the test skipped itself at runtime.
	EventAssumptionViolated
	// EventSkippedStatically means the test was never executed.
	EventSkippedStatically
	// EventOutput carries a line of output attributed to the test.
	EventOutput
)

func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventPassed:
		return "passed"
	case EventFailed:
		return "failed"
	case EventAssumptionViolated:
		return "assumption-violated"
	case EventSkippedStatically:
		return "skipped-statically"
	case EventOutput:
		return "output"
	default:
		return "unknown"
	}
}

// Event is one typed callback from the execution engine.
type Event struct {
	Kind    EventKind
	Package string
	Test    string
	Output  string
	Elapsed time.Duration
}

// IsTerminal reports whether the event closes the lifecycle of its test.
func (e Event) IsTerminal() bool {
	switch e.Kind {
	case EventPassed, EventFailed, EventAssumptionViolated, EventSkippedStatically:
		return true
	case EventStarted, EventOutput:
		return false
	default:
		return false
	}
}
