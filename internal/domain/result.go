package domain

import "github.com/fatih/color"

// OutcomeKind classifies how a single test invocation finished.
type OutcomeKind int

const (
	// Passed means the body returned normally.
	Passed OutcomeKind = iota
	// Failed means the body raised a *Failure.
	Failed
	// Errored means the body raised anything else.
	Errored
)

// String returns the plain label of the kind.
func (k OutcomeKind) String() string {
	switch k {
	case Passed:
		return "OK"
	case Failed:
		return "FAIL"
	case Errored:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Display returns the label coloured for terminal output.
func (k OutcomeKind) Display() string {
	switch k {
	case Passed:
		return color.GreenString(k.String())
	case Failed:
		return color.RedString(k.String())
	default:
		return color.YellowString(k.String())
	}
}

// Outcome is the result of running one test case.
type Outcome struct {
	Kind    OutcomeKind
	Message string // Empty when Kind is Passed
}

// OK reports whether the outcome counts as a pass.
func (o Outcome) OK() bool {
	return o.Kind == Passed
}
