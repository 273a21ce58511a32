// Package golden compares captured program output with golden files.
package golden

import (
	"bytes"
	"os"

	"pit/internal/domain"
)

// Comparator checks actual output against the expected file byte for byte
type Comparator struct{}

// NewComparator creates a new Comparator
func NewComparator() *Comparator {
	return &Comparator{}
}

// Compare reads both files of the case. Whitespace and trailing newlines
// count; an unreadable file is a ComparisonFailed outcome, not a mismatch.
func (c *Comparator) Compare(tc domain.TestCase) domain.CaseOutcome {
	actual, err := os.ReadFile(tc.ActualOutputPath)
	if err != nil {
		return domain.NewComparisonFailed(domain.NewComparisonError(tc.ActualOutputPath, err))
	}

	expected, err := os.ReadFile(tc.ExpectedOutputPath)
	if err != nil {
		return domain.NewComparisonFailed(domain.NewComparisonError(tc.ExpectedOutputPath, err))
	}

	if !bytes.Equal(actual, expected) {
		return domain.NewOutputMismatch(string(actual), string(expected))
	}
	return domain.NewPassed()
}
