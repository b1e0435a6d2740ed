package commands

import (
	"jtr/internal/annotation"
	"jtr/internal/config"
	"jtr/internal/discovery"
	"jtr/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// ScanCommand handles the scan command
type ScanCommand struct {
	config    *config.Config
	filter    *discovery.Filter
	scanner   *annotation.Scanner
	formatter *ui.Formatter
}

// NewScanCommand creates a new ScanCommand
func NewScanCommand(
	cfg *config.Config,
	filter *discovery.Filter,
	scanner *annotation.Scanner,
	formatter *ui.Formatter,
) *ScanCommand {
	return &ScanCommand{
		config:    cfg,
		filter:    filter,
		scanner:   scanner,
		formatter: formatter,
	}
}

// Execute runs the command
func (sc *ScanCommand) Execute(cmd *cobra.Command, args []string) error {
	tests, err := scanTestMethods(sc.config, sc.filter, sc.scanner, false)
	if err != nil {
		return err
	}
	if len(tests) == 0 {
		color.Yellow("No test methods found")
		return nil
	}

	if sc.config.Flags.DisabledOnly {
		sc.formatter.PrintDisabled(tests)
		return nil
	}

	sc.formatter.PrintMethods(tests)
	sc.formatter.PrintSummary(tests)
	return nil
}
