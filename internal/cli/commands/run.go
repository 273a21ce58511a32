package commands

import (
	"os"

	"pit/internal/cli"
	"pit/internal/config"
	"pit/internal/discovery"
	"pit/internal/domain"
	"pit/internal/execution"
	"pit/internal/ui"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// RunCommand handles the run command
type RunCommand struct {
	flags      *cli.Flags
	scanner    *discovery.Scanner
	filter     *discovery.Filter
	comparator execution.Comparator
	viewer     ui.Viewer
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	flags *cli.Flags,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	comparator execution.Comparator,
	viewer ui.Viewer,
) *RunCommand {
	return &RunCommand{
		flags:      flags,
		scanner:    scanner,
		filter:     filter,
		comparator: comparator,
		viewer:     viewer,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(rc.flags.ToConfigFlags())
	if err != nil {
		return err
	}

	logger, err := cli.NewLogger(cfg.Logging, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	// Discover cases; a missing cases directory aborts the run
	layout := cfg.GetLayout()
	cases, err := rc.scanner.Scan(layout)
	if err != nil {
		return err
	}
	discovered := len(cases)

	cases = rc.filter.FilterByName(cases, cfg.Flags.NameFilter)
	if discovered > 0 && len(cases) == 0 {
		color.New(color.FgYellow).Fprintf(cmd.ErrOrStderr(), "No test case matches %q\n", cfg.Flags.NameFilter)
	}

	logger.WithFields(logrus.Fields{
		"dir":        layout.CasesPath(),
		"discovered": discovered,
		"selected":   len(cases),
		"compiler":   cfg.GetCompilerPath(),
	}).Info("Discovered test cases")

	collector := ui.NewFailureCollector()
	reporter := ui.MultiReporter{rc.newReporter(cmd, cfg), collector}

	runner := execution.NewExecRunner(logger, cfg.Execution.Timeout)
	pipeline := execution.NewPipeline(runner, cfg.GetCompilerPath(), cfg.GetCompileEnv())
	harness := execution.NewHarness(pipeline, rc.comparator, reporter, logger)

	summary := harness.Run(cmd.Context(), cases)

	if cfg.Flags.Inspect && len(collector.Failures) > 0 {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			logger.Warn("Failure viewer needs an interactive terminal; skipping")
		} else if err := rc.viewer.View(collector.Failures); err != nil {
			return err
		}
	}

	if !summary.Succeeded() {
		return &domain.FailuresError{Count: summary.Failed}
	}
	return nil
}

// newReporter picks the console reporter from the report section
func (rc *RunCommand) newReporter(cmd *cobra.Command, cfg *config.Config) ui.Reporter {
	gtest := ui.NewGTestReporter(cmd.OutOrStdout(), cfg.Layout.CasesDir, cfg.Report.Color)
	if cfg.Report.Format == config.FormatProgress {
		return ui.NewProgressReporter(cmd.ErrOrStderr(), gtest)
	}
	return gtest
}
