package ui

import (
	"fmt"
	"sort"

	"github.com/fatih/color"

	"jtr/internal/config"
	"jtr/internal/domain"
	"jtr/internal/report"
)

// Formatter formats and displays console output
type Formatter struct {
	config     *config.Config
	aggregator *report.Aggregator
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config, aggregator *report.Aggregator) *Formatter {
	return &Formatter{
		config:     cfg,
		aggregator: aggregator,
	}
}

// PrintSummary displays overall and per-plugin statistics
func (f *Formatter) PrintSummary(tests []domain.TestMethod) {
	summaries := f.aggregator.Summaries(tests)
	overall := f.aggregator.Overall(summaries)

	fmt.Print("\n")
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                    Test Overview Statistics                   ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝\n")

	fmt.Println("┌─────────────────────────────────┬─────────────────────────────┐")

	fmt.Printf("│ %-31s │ ", "Total Test Modules")
	color.White("%-27d │\n", overall.TotalModules)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Total Test Files")
	color.White("%-27d │\n", overall.TotalFiles)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Total Tests")
	color.White("%-27d │\n", overall.TotalTests)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Enabled Tests")
	color.Green("%-27d │\n", overall.EnabledTests)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Disabled Tests")
	color.Yellow("%-27d │\n", overall.DisabledTests)

	fmt.Println("└─────────────────────────────────┴─────────────────────────────┘")
	fmt.Println()

	for _, name := range report.SortedPlugins(summaries) {
		s := summaries[name]
		if s.DisabledTests > 0 {
			color.Yellow("  %s: %d tests (%d disabled, %d%%) in %d file(s)",
				s.PluginName, s.TotalTests, s.DisabledTests, s.DisabledPercent(), s.TestFiles)
		} else {
			color.Green("  %s: %d tests in %d file(s)", s.PluginName, s.TotalTests, s.TestFiles)
		}
	}
}

// PrintDisabled displays all disabled tests grouped per plugin with reasons
func (f *Formatter) PrintDisabled(tests []domain.TestMethod) {
	grouped := f.aggregator.DisabledByPlugin(tests)
	if len(grouped) == 0 {
		color.Green("✓ No disabled tests found!")
		return
	}

	plugins := make([]string, 0, len(grouped))
	for name := range grouped {
		plugins = append(plugins, name)
	}
	sort.Strings(plugins)

	for _, name := range plugins {
		disabled := grouped[name]
		fmt.Println()
		color.Cyan("%s (%d disabled)", name, len(disabled))
		for _, test := range disabled {
			color.Yellow("  ⊘ %s.%s()", test.ClassName, test.MethodName)
			color.White("    reason: %s", test.DisabledReason)
			color.White("    file:   %s:%d", test.FilePath, test.LineNumber)
		}
	}
}

// PrintMethods lists every discovered test method
func (f *Formatter) PrintMethods(tests []domain.TestMethod) {
	for _, test := range tests {
		marker := color.GreenString("✓")
		if test.IsDisabled {
			marker = color.YellowString("⊘")
		}
		fmt.Printf("%s %s.%s() [%s] %s:%d\n",
			marker, test.ClassName, test.MethodName, test.TestType, test.FilePath, test.LineNumber)
	}
	fmt.Println()
	color.White("Total: %d test method(s)", len(tests))
}

// PrintFailures displays extracted failure records
func (f *Formatter) PrintFailures(failures []domain.FailureRecord) {
	if len(failures) == 0 {
		color.Green("✓ No test failures found!")
		return
	}

	fmt.Print("\n")
	color.Red("╔════════════════════════════════════════════════════════════╗")
	color.Red("║                     Extracted Failures                     ║")
	color.Red("╚════════════════════════════════════════════════════════════╝\n")

	for i, failure := range failures {
		fmt.Println()
		color.Red("%d. %s.%s [%s]", i+1, failure.ClassName, failure.TestName, failure.Kind)
		color.White("   %s", failure.Message)
		if failure.Diff != nil {
			color.Green("   expected: %s", failure.Diff.Expected)
			color.Red("   actual:   %s", failure.Diff.Actual)
		}
	}

	fmt.Println()
	color.Red("✗ %d failure record(s) extracted", len(failures))
}
