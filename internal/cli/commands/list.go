package commands

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"pit/internal/cli"
	"pit/internal/config"
	"pit/internal/discovery"
)

// ListCommand handles the list command
type ListCommand struct {
	flags   *cli.Flags
	scanner *discovery.Scanner
	filter  *discovery.Filter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	flags *cli.Flags,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
) *ListCommand {
	return &ListCommand{
		flags:   flags,
		scanner: scanner,
		filter:  filter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(lc.flags.ToConfigFlags())
	if err != nil {
		return err
	}

	cases, err := lc.scanner.Scan(cfg.GetLayout())
	if err != nil {
		return err
	}

	cases = lc.filter.FilterByName(cases, cfg.Flags.NameFilter)

	out := cmd.OutOrStdout()
	yellow := color.New(color.FgYellow)
	if !cfg.Report.Color {
		yellow.DisableColor()
	}

	if len(cases) == 0 {
		yellow.Fprintln(out, "No test cases found")
		return nil
	}

	missing := 0
	for _, tc := range cases {
		if _, err := os.Stat(tc.ExpectedOutputPath); err != nil {
			missing++
			fmt.Fprintf(out, "%s %s\n", tc.Name, yellow.Sprint("(no golden file)"))
			continue
		}
		fmt.Fprintln(out, tc.Name)
	}

	fmt.Fprintf(out, "\n%d test case(s)", len(cases))
	if missing > 0 {
		fmt.Fprintf(out, ", %d without golden file", missing)
	}
	fmt.Fprintln(out)
	return nil
}
