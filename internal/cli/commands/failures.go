package commands

import (
	"jtr/internal/config"
	"jtr/internal/domain"
	"jtr/internal/junit"
	"jtr/internal/storage"
	"jtr/internal/ui"

	"github.com/spf13/cobra"
)

// FailuresCommand handles the failures command
type FailuresCommand struct {
	config    *config.Config
	extractor junit.Parser
	storage   storage.Storage
	formatter *ui.Formatter
	viewer    ui.Viewer
}

// NewFailuresCommand creates a new FailuresCommand
func NewFailuresCommand(
	cfg *config.Config,
	extractor junit.Parser,
	st storage.Storage,
	formatter *ui.Formatter,
	viewer ui.Viewer,
) *FailuresCommand {
	return &FailuresCommand{
		config:    cfg,
		extractor: extractor,
		storage:   st,
		formatter: formatter,
		viewer:    viewer,
	}
}

// Execute runs the command
func (fc *FailuresCommand) Execute(cmd *cobra.Command, args []string) error {
	var output *domain.FailuresOutput

	if fc.config.Flags.FromLast {
		loaded, err := fc.storage.LoadFailures()
		if err != nil {
			return err
		}
		output = loaded
	} else {
		failures, meta := extractFailures(fc.config, fc.extractor)
		output = &domain.FailuresOutput{Meta: meta, Details: failures}
	}

	if fc.config.Flags.Print {
		fc.formatter.PrintFailures(output.Details)
		return nil
	}
	return fc.viewer.View(output)
}
