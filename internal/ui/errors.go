package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"pit/internal/domain"
)

// FailureViewer browses failed cases in an interactive TUI
type FailureViewer struct{}

// NewFailureViewer creates a new FailureViewer
func NewFailureViewer() *FailureViewer {
	return &FailureViewer{}
}

// View blocks until the user quits the viewer
func (fv *FailureViewer) View(failures []Failure) error {
	if len(failures) == 0 {
		color.Green("✓ No test failures found!")
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	for i, failure := range failures {
		list.AddItem(fmt.Sprintf("[yellow]%d.[white] %s", i+1, tview.Escape(failure.Name)), "", 0, nil)
	}
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 2, 0, false).
		AddItem(detailsView, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true).
		SetText(fmt.Sprintf(" Failed cases (%d) | ↑↓ to navigate, → to scroll details, ← to go back, q or Ctrl+C to exit ", len(failures)))

	updateDetails := func(index int) {
		if index < 0 || index >= len(failures) {
			return
		}
		statsView.SetText(formatFailureStats(failures[index]))
		detailsView.SetText(formatFailureDetails(failures[index].Outcome)).ScrollToBeginning()
	}

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails(index)
	})

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyEsc:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'q' {
				app.Stop()
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'q' {
				app.Stop()
				return nil
			}
		}
		return event
	})

	updateDetails(0)

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// formatFailureStats renders the one-line header above the details pane
func formatFailureStats(failure Failure) string {
	return fmt.Sprintf("[cyan]case:[white] [yellow]%s[white]  [cyan]outcome:[white] [red]%s[white]\n",
		tview.Escape(failure.Name), failure.Outcome.Kind)
}

// formatFailureDetails renders an outcome with tview colour tags
func formatFailureDetails(outcome domain.CaseOutcome) string {
	var b strings.Builder

	switch outcome.Kind {
	case domain.CommandFailed:
		step := "run"
		if outcome.StepIndex == domain.CompileStep {
			step = "compile"
		}
		fmt.Fprintf(&b, "[yellow]Failed step:[white] %d (%s)\n\n", outcome.StepIndex, step)
		fmt.Fprintf(&b, "[yellow]Command:[white]\n%s\n\n", tview.Escape(outcome.Command))
		if outcome.Diagnostics != "" {
			fmt.Fprintf(&b, "[yellow]Diagnostics:[white]\n%s\n", tview.Escape(outcome.Diagnostics))
		}
	case domain.OutputMismatch:
		fmt.Fprintf(&b, "[yellow]Actual:[white]\n%s\n", visibleEOL(outcome.Actual))
		fmt.Fprintf(&b, "[yellow]Expected:[white]\n%s\n", visibleEOL(outcome.Expected))
	case domain.ComparisonFailed:
		fmt.Fprintf(&b, "[red]%s[white]\n", tview.Escape(fmt.Sprint(outcome.Err)))
	}

	return b.String()
}

// visibleEOL escapes s and marks line-end differences so they show up
func visibleEOL(s string) string {
	s = tview.Escape(strings.ReplaceAll(s, "\r", "␍"))
	if !strings.HasSuffix(s, "\n") {
		return s + "[gray](no newline at end)[white]"
	}
	return s
}
