package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"pit/internal/domain"
)

// Status markers in the style of Google Test
const (
	markerBanner = "[==========]"
	markerRule   = "[----------]"
	markerRun    = "[ RUN      ]"
	markerOK     = "[       OK ]"
	markerFailed = "[   FAILED ]"
	markerBlank  = "[          ]"
)

// GTestReporter prints one block per case with coloured markers
type GTestReporter struct {
	out      io.Writer
	casesDir string
	green    *color.Color
	red      *color.Color
}

// NewGTestReporter creates a reporter writing to out. With colorize false
// the markers are plain text; otherwise fatih/color decides based on the terminal.
func NewGTestReporter(out io.Writer, casesDir string, colorize bool) *GTestReporter {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	if !colorize {
		green.DisableColor()
		red.DisableColor()
	}
	return &GTestReporter{
		out:      out,
		casesDir: casesDir,
		green:    green,
		red:      red,
	}
}

// RunStarted implements Reporter
func (r *GTestReporter) RunStarted(total int) {
	fmt.Fprintln(r.out, "Peryan Integration Tester")
	r.marker(r.green, markerBanner, fmt.Sprintf("Running %d testcase(s) under %s", total, r.casesDir))
}

// CaseStarted implements Reporter
func (r *GTestReporter) CaseStarted(name string) {
	r.marker(r.green, markerRule, "")
	r.marker(r.green, markerRun, name)
}

// CaseFinished implements Reporter
func (r *GTestReporter) CaseFinished(name string, outcome domain.CaseOutcome) {
	if outcome.Passed() {
		r.marker(r.green, markerOK, name)
		r.marker(r.green, markerRule, "")
		return
	}

	r.printFailureDetails(outcome)
	r.marker(r.red, markerFailed, name)
	r.marker(r.red, markerRule, "")
}

// Summary implements Reporter
func (r *GTestReporter) Summary(summary domain.HarnessSummary) {
	if summary.Succeeded() {
		r.marker(r.green, markerBanner, "All integration tests succeeded.")
		return
	}
	r.marker(r.red, markerBanner, fmt.Sprintf("%d integration test(s) failed", summary.Failed))
}

func (r *GTestReporter) printFailureDetails(outcome domain.CaseOutcome) {
	switch outcome.Kind {
	case domain.CommandFailed:
		r.marker(r.red, markerBlank, "Error while executing: "+outcome.Command)
		if outcome.Diagnostics != "" {
			writeText(r.out, outcome.Diagnostics)
		}
	case domain.OutputMismatch:
		fmt.Fprintln(r.out, "Error: assertion failed:")
		writeText(r.out, "Actual: "+outcome.Actual)
		writeText(r.out, "Expected: "+outcome.Expected)
	case domain.ComparisonFailed:
		r.marker(r.red, markerBlank, fmt.Sprintf("Error while comparing: %v", outcome.Err))
	}
}

func (r *GTestReporter) marker(c *color.Color, marker, text string) {
	if text == "" {
		fmt.Fprintln(r.out, c.Sprint(marker))
		return
	}
	fmt.Fprintf(r.out, "%s %s\n", c.Sprint(marker), text)
}

// writeText prints s unchanged and ends the line only if s does not already
func writeText(w io.Writer, s string) {
	io.WriteString(w, s)
	if !strings.HasSuffix(s, "\n") {
		io.WriteString(w, "\n")
	}
}
