package commands

import (
	"pit/internal/cli"
	"pit/internal/config"
	"pit/internal/discovery"
	"pit/internal/golden"
	"pit/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Run  *RunCommand
	List *ListCommand
}

// NewCommands creates all commands with dependencies. Anything that depends
// on the loaded configuration is built when a command executes.
func NewCommands(flags *cli.Flags) *Commands {
	scanner := discovery.NewScanner()
	filter := discovery.NewFilter()
	comparator := golden.NewComparator()
	viewer := ui.NewFailureViewer()

	return &Commands{
		Run:  NewRunCommand(flags, scanner, filter, comparator, viewer),
		List: NewListCommand(flags, scanner, filter),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags) {
	rootCmd.PersistentFlags().StringVarP(&flags.Root, "root", "C", config.DefaultRoot, "Harness directory containing cases/, expected/, pit.toml and .env")
	rootCmd.PersistentFlags().StringVar(&flags.ConfigFile, "config", "", "Config file (default: <root>/pit.toml if present)")
	rootCmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&flags.Debug, "debug", false, "Enable debug output")
	rootCmd.PersistentFlags().BoolVar(&flags.NoColor, "no-color", false, "Disable coloured output")

	// Run command
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Compile and run every test case and compare with golden files",
		Long: `Discover test cases under <root>/cases, compile each one with the Peryan
compiler, run the compiled program with stdout captured to <root>/actual and
compare it byte for byte with <root>/expected.

Exits with status 1 when any case fails.`,
		Args: cobra.NoArgs,
		RunE: c.Run.Execute,
	}
	runCmd.Flags().StringVar(&flags.Compiler, "compiler", "", "Path to the compiler (default "+config.DefaultCompilerPath+")")
	runCmd.Flags().StringVar(&flags.RuntimePath, "runtime-path", "", "Runtime library directory passed to the compiler (default "+config.DefaultRuntimePath+")")
	runCmd.Flags().DurationVar(&flags.Timeout, "timeout", 0, "Kill a compile or run step after this long (0 = no limit)")
	runCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter cases by name pattern (supports wildcards, e.g. 'fib*' or '*loop*')")
	runCmd.Flags().StringVar(&flags.Format, "format", "", "Report format: gtest or progress")
	runCmd.Flags().BoolVar(&flags.Inspect, "inspect", false, "Open the failure viewer when the run finishes with failures")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List discovered test cases",
		Long:  "Scan the cases directory and list test cases without running them",
		Args:  cobra.NoArgs,
		RunE:  c.List.Execute,
	}
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter cases by name pattern (supports wildcards, e.g. 'fib*' or '*loop*')")
	rootCmd.AddCommand(listCmd)
}
