package report

import (
	"fmt"
	"sort"
	"strings"

	"jtr/internal/domain"
)

// MarkdownRenderer renders the test overview report as Markdown
type MarkdownRenderer struct {
	aggregator *Aggregator
}

// NewMarkdownRenderer creates a new MarkdownRenderer
func NewMarkdownRenderer(aggregator *Aggregator) *MarkdownRenderer {
	return &MarkdownRenderer{aggregator: aggregator}
}

// Render produces the full Markdown report. runLabel identifies the run,
// e.g. a CI run ID or "local".
func (r *MarkdownRenderer) Render(tests []domain.TestMethod, runLabel string) string {
	summaries := r.aggregator.Summaries(tests)
	overall := r.aggregator.Overall(summaries)

	var lines []string
	lines = append(lines, "# JUnit Test Overview Report\n")
	lines = append(lines, fmt.Sprintf("Generated on: %s\n", runLabel))

	lines = append(lines, "## Overall Statistics\n")
	lines = append(lines, fmt.Sprintf("- **Total Test Modules:** %d", overall.TotalModules))
	lines = append(lines, fmt.Sprintf("- **Total Test Files:** %d", overall.TotalFiles))
	lines = append(lines, fmt.Sprintf("- **Total Tests:** %d", overall.TotalTests))
	lines = append(lines, fmt.Sprintf("- **Enabled Tests:** %d (%d%%)", overall.EnabledTests, percent(overall.EnabledTests, overall.TotalTests)))
	lines = append(lines, fmt.Sprintf("- **Disabled Tests:** %d (%d%%)\n", overall.DisabledTests, percent(overall.DisabledTests, overall.TotalTests)))

	lines = append(lines, "## Test Summary by Plugin\n")
	lines = append(lines, "| Plugin | Test Files | Total Tests | Enabled | Disabled | Disabled % |")
	lines = append(lines, "|--------|------------|-------------|---------|----------|-----------|")
	for _, name := range SortedPlugins(summaries) {
		s := summaries[name]
		lines = append(lines, fmt.Sprintf(
			"| %s | %d | %d | %d | %d | %d%% |",
			s.PluginName, s.TestFiles, s.TotalTests, s.EnabledTests, s.DisabledTests, s.DisabledPercent(),
		))
	}

	lines = append(lines, "\n## Disabled Tests Details\n")

	disabledByPlugin := r.aggregator.DisabledByPlugin(tests)
	if len(disabledByPlugin) == 0 {
		lines = append(lines, "*No disabled tests found!* 🎉\n")
		return strings.Join(lines, "\n")
	}

	plugins := make([]string, 0, len(disabledByPlugin))
	for name := range disabledByPlugin {
		plugins = append(plugins, name)
	}
	sort.Strings(plugins)

	for _, name := range plugins {
		disabled := disabledByPlugin[name]
		lines = append(lines, fmt.Sprintf("\n### %s (%d disabled)\n", name, len(disabled)))
		for _, test := range disabled {
			lines = append(lines, fmt.Sprintf("- `%s.%s()` - %s", test.ClassName, test.MethodName, test.DisabledReason))
			lines = append(lines, fmt.Sprintf("  - File: `%s:%d`", test.FilePath, test.LineNumber))
		}
	}

	return strings.Join(lines, "\n")
}

// percent computes a floor percentage, 0 when total is zero
func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return 100 * part / total
}
