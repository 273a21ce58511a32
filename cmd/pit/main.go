package main

import (
	"errors"
	"fmt"
	"os"

	"pit/internal/cli"
	"pit/internal/cli/commands"
	"pit/internal/domain"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:           "pit",
		Short:         "Peryan integration tester",
		Long:          `Compile every integration test case with the Peryan compiler, run the result and compare its output with the golden files.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Flags are populated by cobra and read when a command executes
	var flags cli.Flags

	cmds := commands.NewCommands(&flags)
	cmds.Register(rootCmd, &flags)

	if err := rootCmd.Execute(); err != nil {
		// Failing cases were already reported; only the exit status is left
		var failures *domain.FailuresError
		if !errors.As(err, &failures) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
