package commands

import (
	"fmt"

	"jtr/internal/config"
	"jtr/internal/storage"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// HistoryCommand handles the history command
type HistoryCommand struct {
	config  *config.Config
	history *storage.HistoryStore
}

// NewHistoryCommand creates a new HistoryCommand
func NewHistoryCommand(cfg *config.Config, history *storage.HistoryStore) *HistoryCommand {
	return &HistoryCommand{
		config:  cfg,
		history: history,
	}
}

// Execute runs the command
func (hc *HistoryCommand) Execute(cmd *cobra.Command, args []string) error {
	if hc.config.Flags.InitSchema {
		if err := hc.history.EnsureSchema(); err != nil {
			return err
		}
		color.Green("✓ History table ready")
		return nil
	}

	limit := hc.config.Flags.Limit
	if limit <= 0 {
		limit = 10
	}
	runs, err := hc.history.RecentRuns(limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		color.Yellow("No recorded runs")
		return nil
	}

	color.Cyan("%-8s %-12s %-8s %-8s %-8s %-9s %-9s %s", "ID", "Run", "Modules", "Tests", "Enabled", "Disabled", "Failures", "Recorded")
	for _, run := range runs {
		fmt.Printf("%-8d %-12s %-8d %-8d %-8d %-9d %-9d %s\n",
			run.ID, run.RunLabel, run.Modules, run.TotalTests, run.EnabledTests, run.DisabledTests, run.Failures,
			run.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
