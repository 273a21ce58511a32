package domain

// HarnessSummary aggregates the outcomes of one harness run
type HarnessSummary struct {
	Total  int // Cases processed
	Failed int // Cases whose outcome is not Passed
}

// Record folds one case outcome into the summary
func (s *HarnessSummary) Record(outcome CaseOutcome) {
	s.Total++
	if !outcome.Passed() {
		s.Failed++
	}
}

// Passed returns the number of passing cases
func (s HarnessSummary) Passed() int {
	return s.Total - s.Failed
}

// Succeeded reports whether no case failed
func (s HarnessSummary) Succeeded() bool {
	return s.Failed == 0
}
