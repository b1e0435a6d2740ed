package commands

import (
	"jtr/internal/annotation"
	"jtr/internal/cli"
	"jtr/internal/config"
	"jtr/internal/discovery"
	"jtr/internal/junit"
	"jtr/internal/report"
	"jtr/internal/storage"
	"jtr/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Report   *ReportCommand
	Scan     *ScanCommand
	Failures *FailuresCommand
	History  *HistoryCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	filter := discovery.NewFilter()
	sourceScanner := annotation.NewScanner()
	extractor := junit.NewExtractor()
	aggregator := report.NewAggregator()
	renderer := report.NewMarkdownRenderer(aggregator)
	jsonStorage := storage.NewJSONStorage(cfg)
	historyStore := storage.NewHistoryStore(cfg)
	formatter := ui.NewFormatter(cfg, aggregator)
	failureViewer := ui.NewFailureViewer(cfg)

	return &Commands{
		Report:   NewReportCommand(cfg, filter, sourceScanner, extractor, aggregator, renderer, jsonStorage, historyStore, formatter, failureViewer),
		Scan:     NewScanCommand(cfg, filter, sourceScanner, formatter),
		Failures: NewFailuresCommand(cfg, extractor, jsonStorage, formatter, failureViewer),
		History:  NewHistoryCommand(cfg, historyStore),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	applyFlags := func(cmd *cobra.Command, args []string) error {
		// Re-resolve config with flags after parsing (picks up jtr.yml and .env)
		*cfg = *config.Load(flags.ToConfigFlags())
		return nil
	}

	// Report command
	reportCmd := &cobra.Command{
		Use:     "report",
		Short:   "Generate the test overview report",
		Long:    "Scan test modules and JUnit XML results, then write Markdown and JSON reports",
		RunE:    c.Report.Execute,
		PreRunE: applyFlags,
	}
	reportCmd.Flags().StringVarP(&flags.ProjectPath, "project", "p", "", "Repository root containing the test modules")
	reportCmd.Flags().StringVarP(&flags.ResultsPath, "results", "r", "", "Path to JUnit XML result files")
	reportCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter source files by name pattern (supports wildcards, e.g., '*CleanUpTest.java' or '*Visitor*')")
	reportCmd.Flags().BoolVar(&flags.OpenFailures, "open-failures", false, "Open the failures viewer when the report contains failures")
	reportCmd.Flags().BoolVar(&flags.History, "history", false, "Append the run summary to the MySQL history table")
	rootCmd.AddCommand(reportCmd)

	// Scan command
	scanCmd := &cobra.Command{
		Use:     "scan",
		Short:   "List discovered test methods",
		Long:    "Scan test modules and list test methods without writing reports",
		RunE:    c.Scan.Execute,
		PreRunE: applyFlags,
	}
	scanCmd.Flags().StringVarP(&flags.ProjectPath, "project", "p", "", "Repository root containing the test modules")
	scanCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter source files by name pattern (supports wildcards)")
	scanCmd.Flags().BoolVarP(&flags.DisabledOnly, "disabled", "d", false, "List only disabled tests with their reasons")
	rootCmd.AddCommand(scanCmd)

	// Failures command
	failuresCmd := &cobra.Command{
		Use:     "failures",
		Short:   "View extracted test failures interactively",
		Long:    "Extract failures from JUnit XML results (or the last saved report) and browse them",
		RunE:    c.Failures.Execute,
		PreRunE: applyFlags,
	}
	failuresCmd.Flags().StringVarP(&flags.ProjectPath, "project", "p", "", "Repository root")
	failuresCmd.Flags().StringVarP(&flags.ResultsPath, "results", "r", "", "Path to JUnit XML result files")
	failuresCmd.Flags().BoolVar(&flags.FromLast, "last", false, "Use the failures saved by the last report run instead of re-parsing")
	failuresCmd.Flags().BoolVar(&flags.Print, "print", false, "Print failures to the console instead of opening the viewer")
	rootCmd.AddCommand(failuresCmd)

	// History command
	historyCmd := &cobra.Command{
		Use:     "history",
		Short:   "Show recorded run history",
		Long:    "List run summaries recorded in the MySQL history table",
		RunE:    c.History.Execute,
		PreRunE: applyFlags,
	}
	historyCmd.Flags().StringVarP(&flags.ProjectPath, "project", "p", "", "Repository root (for .env lookup)")
	historyCmd.Flags().BoolVar(&flags.InitSchema, "init", false, "Create the history table if it does not exist")
	historyCmd.Flags().IntVarP(&flags.Limit, "limit", "n", 10, "Number of runs to show")
	rootCmd.AddCommand(historyCmd)
}
