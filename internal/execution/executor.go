package execution

import (
	"context"
	"fmt"
	"time"

	"pit/internal/domain"
)

// ProcessRunner runs one external command step to completion
type ProcessRunner interface {
	Run(ctx context.Context, step domain.CommandStep) ExitResult
}

// Comparator checks the output of a case whose pipeline succeeded
type Comparator interface {
	Compare(tc domain.TestCase) domain.CaseOutcome
}

// ExitResult describes how a step ended
type ExitResult struct {
	Success     bool          // Process exited with status 0
	ExitCode    int           // -1 when the process did not exit on its own
	Diagnostics string        // Captured stderr, plus stdout when not redirected
	Duration    time.Duration // Wall time of the step
	Err         error         // Start, redirect or timeout failure
}

// Reason explains a failed result in one line
func (r ExitResult) Reason() string {
	if r.Success {
		return ""
	}
	if r.Err != nil {
		return r.Err.Error()
	}
	return fmt.Sprintf("exit status %d", r.ExitCode)
}
