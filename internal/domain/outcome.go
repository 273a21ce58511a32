package domain

// OutcomeKind classifies how a case ended
type OutcomeKind int

const (
	Passed OutcomeKind = iota
	CommandFailed
	OutputMismatch
	ComparisonFailed
)

// String returns a short label for the kind
func (k OutcomeKind) String() string {
	switch k {
	case Passed:
		return "passed"
	case CommandFailed:
		return "command failed"
	case OutputMismatch:
		return "output mismatch"
	case ComparisonFailed:
		return "comparison failed"
	default:
		return "unknown"
	}
}

// CaseOutcome is the terminal result of one test case.
// Only the fields relevant to Kind are set.
type CaseOutcome struct {
	Kind OutcomeKind

	// CommandFailed
	StepIndex   int    // 1 for compile, 2 for run
	Command     string // Description of the failed step
	Diagnostics string // Captured stderr and exit details

	// OutputMismatch
	Actual   string
	Expected string

	// ComparisonFailed
	Err error
}

// Passed reports whether the case succeeded
func (o CaseOutcome) Passed() bool {
	return o.Kind == Passed
}

// NewPassed returns a passing outcome
func NewPassed() CaseOutcome {
	return CaseOutcome{Kind: Passed}
}

// NewCommandFailed returns the outcome of a pipeline step that did not exit successfully
func NewCommandFailed(stepIndex int, command, diagnostics string) CaseOutcome {
	return CaseOutcome{
		Kind:        CommandFailed,
		StepIndex:   stepIndex,
		Command:     command,
		Diagnostics: diagnostics,
	}
}

// NewOutputMismatch returns the outcome of a golden-file comparison that found different text
func NewOutputMismatch(actual, expected string) CaseOutcome {
	return CaseOutcome{Kind: OutputMismatch, Actual: actual, Expected: expected}
}

// NewComparisonFailed returns the outcome of a comparison that could not read its inputs
func NewComparisonFailed(err error) CaseOutcome {
	return CaseOutcome{Kind: ComparisonFailed, Err: err}
}
