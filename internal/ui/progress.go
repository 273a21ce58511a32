package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"pit/internal/domain"
)

// ProgressReporter draws a progress bar and prints details only for failures
type ProgressReporter struct {
	barOut  io.Writer
	details *GTestReporter
	bar     *progressbar.ProgressBar
	passed  int
	failed  int
}

// NewProgressReporter creates a reporter that draws on barOut and prints
// failure details and the summary through details
func NewProgressReporter(barOut io.Writer, details *GTestReporter) *ProgressReporter {
	return &ProgressReporter{barOut: barOut, details: details}
}

// RunStarted implements Reporter
func (p *ProgressReporter) RunStarted(total int) {
	p.bar = progressbar.NewOptions(total,
		progressbar.OptionSetDescription(p.describe()),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWriter(p.barOut),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(p.barOut, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)
}

// CaseStarted implements Reporter
func (p *ProgressReporter) CaseStarted(string) {}

// CaseFinished implements Reporter
func (p *ProgressReporter) CaseFinished(name string, outcome domain.CaseOutcome) {
	if outcome.Passed() {
		p.passed++
	} else {
		p.failed++
		_ = p.bar.Clear()
		p.details.CaseStarted(name)
		p.details.CaseFinished(name, outcome)
	}
	p.bar.Describe(p.describe())
	_ = p.bar.Add(1)
}

// Summary implements Reporter
func (p *ProgressReporter) Summary(summary domain.HarnessSummary) {
	_ = p.bar.Finish()
	p.details.Summary(summary)
}

func (p *ProgressReporter) describe() string {
	return color.CyanString("Running tests: ") +
		color.GreenString("[success: %d", p.passed) +
		" | " +
		color.RedString("failed: %d]", p.failed)
}
