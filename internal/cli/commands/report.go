package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"jtr/internal/annotation"
	"jtr/internal/config"
	"jtr/internal/discovery"
	"jtr/internal/domain"
	"jtr/internal/junit"
	"jtr/internal/report"
	"jtr/internal/storage"
	"jtr/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// ReportCommand handles the report command
type ReportCommand struct {
	config     *config.Config
	filter     *discovery.Filter
	scanner    *annotation.Scanner
	extractor  junit.Parser
	aggregator *report.Aggregator
	renderer   *report.MarkdownRenderer
	storage    storage.Storage
	history    *storage.HistoryStore
	formatter  *ui.Formatter
	viewer     ui.Viewer
}

// NewReportCommand creates a new ReportCommand
func NewReportCommand(
	cfg *config.Config,
	filter *discovery.Filter,
	scanner *annotation.Scanner,
	extractor junit.Parser,
	aggregator *report.Aggregator,
	renderer *report.MarkdownRenderer,
	st storage.Storage,
	history *storage.HistoryStore,
	formatter *ui.Formatter,
	viewer ui.Viewer,
) *ReportCommand {
	return &ReportCommand{
		config:     cfg,
		filter:     filter,
		scanner:    scanner,
		extractor:  extractor,
		aggregator: aggregator,
		renderer:   renderer,
		storage:    st,
		history:    history,
		formatter:  formatter,
		viewer:     viewer,
	}
}

// Execute runs the command
func (rc *ReportCommand) Execute(cmd *cobra.Command, args []string) error {
	tests, err := scanTestMethods(rc.config, rc.filter, rc.scanner, true)
	if err != nil {
		return err
	}

	failures, meta := extractFailures(rc.config, rc.extractor)

	// Assemble and persist the reports
	output := rc.aggregator.BuildReport(tests)
	markdown := rc.renderer.Render(tests, rc.config.RunLabel())
	if err := rc.storage.SaveReport(output, markdown); err != nil {
		return err
	}
	if err := rc.storage.SaveFailures(&domain.FailuresOutput{Meta: meta, Details: failures}); err != nil {
		return err
	}

	rc.formatter.PrintSummary(tests)
	rc.formatter.PrintFailures(failures)

	fmt.Println()
	color.White("Markdown report written to: %s", rc.config.GetMarkdownPath())
	color.White("JSON report written to:     %s", rc.config.GetJSONPath())

	if rc.config.Flags.History {
		if err := rc.history.SaveRun(output.Summary, len(failures), rc.config.RunLabel()); err != nil {
			color.Yellow("⚠ Could not record run history: %v", err)
		} else {
			color.Green("✓ Run history recorded")
		}
	}

	if rc.config.Flags.OpenFailures && len(failures) > 0 {
		return rc.viewer.View(&domain.FailuresOutput{Meta: meta, Details: failures})
	}
	return nil
}

// scanTestMethods discovers test modules and scans their source files.
// Unreadable files are reported and skipped; they never abort the batch.
func scanTestMethods(cfg *config.Config, filter *discovery.Filter, scanner *annotation.Scanner, showProgress bool) ([]domain.TestMethod, error) {
	dirScanner := discovery.NewScanner(cfg.PathsToIgnore, cfg.ModuleSuffix, cfg.SourceExt)

	modules, err := dirScanner.Modules(cfg.ProjectPath)
	if err != nil {
		return nil, err
	}
	if len(modules) == 0 {
		color.Yellow("No test modules found under %s", cfg.ProjectPath)
		return nil, nil
	}
	color.White("Found %d test module(s)", len(modules))

	type moduleFiles struct {
		plugin string
		files  []string
	}
	var pending []moduleFiles
	total := 0
	for _, module := range modules {
		files, err := dirScanner.Sources(module)
		if err != nil {
			color.Yellow("⚠ Skipping module %s: %v", module, err)
			continue
		}
		files = filter.ByName(files, cfg.Flags.NameFilter)
		pending = append(pending, moduleFiles{plugin: baseName(module), files: files})
		total += len(files)
	}

	var progress *ui.ProgressBar
	if showProgress && total > 0 {
		progress = ui.NewProgressBar(total)
	}

	var tests []domain.TestMethod
	scanned := 0
	disabled := 0
	for _, m := range pending {
		for _, file := range m.files {
			batch, err := scanner.ScanFile(file, m.plugin, cfg.ProjectPath)
			if err != nil {
				color.Yellow("⚠ Skipping unreadable file: %v", err)
			}
			for _, test := range batch {
				if test.IsDisabled {
					disabled++
				}
			}
			tests = append(tests, batch...)
			scanned++
			if progress != nil {
				progress.Update(scanned, len(tests), disabled)
			}
		}
	}
	if progress != nil {
		progress.Finish()
	}

	return tests, nil
}

// baseName returns the plugin name for a module directory
func baseName(module string) string {
	return filepath.Base(module)
}

// extractFailures parses every discovered result document. A malformed
// document is reported and contributes zero records; the batch continues.
func extractFailures(cfg *config.Config, extractor junit.Parser) ([]domain.FailureRecord, domain.FailuresMeta) {
	meta := domain.FailuresMeta{
		Timestamp: time.Now().Format(time.RFC3339),
		RunLabel:  cfg.RunLabel(),
	}

	dirScanner := discovery.NewScanner(cfg.PathsToIgnore, cfg.ModuleSuffix, cfg.SourceExt)
	reports, err := dirScanner.Reports(cfg.GetResultsPath())
	if err != nil {
		color.Yellow("No result documents: %v", err)
		return nil, meta
	}
	meta.ResultFiles = len(reports)

	var failures []domain.FailureRecord
	for _, path := range reports {
		data, err := os.ReadFile(path)
		if err != nil {
			color.Yellow("⚠ Skipping unreadable document %s: %v", path, err)
			meta.SkippedFiles++
			continue
		}
		records, err := extractor.Extract(data)
		if err != nil {
			color.Yellow("⚠ Skipping malformed document %s: %v", path, err)
			meta.SkippedFiles++
			continue
		}
		for _, record := range records {
			if record.Kind == domain.KindError {
				meta.ErrorCount++
			} else {
				meta.FailureCount++
			}
		}
		failures = append(failures, records...)
	}

	return failures, meta
}
