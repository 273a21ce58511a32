package execution

import (
	"context"

	"github.com/sirupsen/logrus"

	"pit/internal/domain"
	"pit/internal/ui"
)

// Harness processes test cases one at a time
type Harness struct {
	pipeline   *Pipeline
	comparator Comparator
	reporter   ui.Reporter
	logger     *logrus.Logger
}

// NewHarness creates a new Harness
func NewHarness(pipeline *Pipeline, comparator Comparator, reporter ui.Reporter, logger *logrus.Logger) *Harness {
	if logger == nil {
		logger = logrus.New()
	}
	return &Harness{
		pipeline:   pipeline,
		comparator: comparator,
		reporter:   reporter,
		logger:     logger,
	}
}

// Run processes every case and returns the tally. A failing case never
// stops the loop.
func (h *Harness) Run(ctx context.Context, cases []domain.TestCase) domain.HarnessSummary {
	var summary domain.HarnessSummary

	h.reporter.RunStarted(len(cases))
	for _, tc := range cases {
		h.reporter.CaseStarted(tc.Name)

		outcome := h.runCase(ctx, tc)

		h.logger.WithFields(logrus.Fields{
			"case":    tc.Name,
			"outcome": outcome.Kind.String(),
		}).Debug("Case finished")

		h.reporter.CaseFinished(tc.Name, outcome)
		summary.Record(outcome)
	}
	h.reporter.Summary(summary)

	return summary
}

func (h *Harness) runCase(ctx context.Context, tc domain.TestCase) domain.CaseOutcome {
	outcome, ok := h.pipeline.Run(ctx, tc)
	if !ok {
		return outcome
	}
	return h.comparator.Compare(tc)
}
