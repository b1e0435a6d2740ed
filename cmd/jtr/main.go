package main

import (
	"fmt"
	"os"

	"jtr/internal/cli"
	"jtr/internal/cli/commands"
	"jtr/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "jtr",
		Short:   "JUnit test overview reporter",
		Long:    `A test overview reporter for JUnit projects. Scans test modules for test methods and disabled tests, extracts failures from JUnit XML results, and generates Markdown and JSON reports for CI.`,
		Version: version,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
