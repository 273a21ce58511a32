package ui

import "pit/internal/domain"

// Reporter receives harness progress. Implementations decide presentation.
type Reporter interface {
	RunStarted(total int)
	CaseStarted(name string)
	CaseFinished(name string, outcome domain.CaseOutcome)
	Summary(summary domain.HarnessSummary)
}

// MultiReporter forwards every event to each reporter in order
type MultiReporter []Reporter

// RunStarted implements Reporter
func (m MultiReporter) RunStarted(total int) {
	for _, r := range m {
		r.RunStarted(total)
	}
}

// CaseStarted implements Reporter
func (m MultiReporter) CaseStarted(name string) {
	for _, r := range m {
		r.CaseStarted(name)
	}
}

// CaseFinished implements Reporter
func (m MultiReporter) CaseFinished(name string, outcome domain.CaseOutcome) {
	for _, r := range m {
		r.CaseFinished(name, outcome)
	}
}

// Summary implements Reporter
func (m MultiReporter) Summary(summary domain.HarnessSummary) {
	for _, r := range m {
		r.Summary(summary)
	}
}

// Failure is a failed case kept for later inspection
type Failure struct {
	Name    string
	Outcome domain.CaseOutcome
}

// FailureCollector remembers failed cases for the interactive viewer
type FailureCollector struct {
	Failures []Failure
}

// NewFailureCollector creates an empty FailureCollector
func NewFailureCollector() *FailureCollector {
	return &FailureCollector{}
}

func (c *FailureCollector) RunStarted(int)                {}
func (c *FailureCollector) CaseStarted(string)            {}
func (c *FailureCollector) Summary(domain.HarnessSummary) {}

// CaseFinished records non-passing outcomes
func (c *FailureCollector) CaseFinished(name string, outcome domain.CaseOutcome) {
	if outcome.Passed() {
		return
	}
	c.Failures = append(c.Failures, Failure{Name: name, Outcome: outcome})
}
