package report

import (
	"sort"

	"jtr/internal/domain"
)

// Aggregator computes per-plugin summaries and overall totals from the
// scanned test-method set. It performs a single pass over an immutable
// snapshot; records are never mutated.
type Aggregator struct{}

// NewAggregator creates a new Aggregator
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Summaries groups tests by plugin and computes statistics for each.
// Enabled counts are derived as total minus disabled, never counted
// independently.
func (a *Aggregator) Summaries(tests []domain.TestMethod) map[string]domain.PluginSummary {
	grouped := make(map[string][]domain.TestMethod)
	for _, test := range tests {
		grouped[test.Plugin] = append(grouped[test.Plugin], test)
	}

	summaries := make(map[string]domain.PluginSummary, len(grouped))
	for plugin, pluginTests := range grouped {
		disabled := 0
		files := make(map[string]bool)
		for _, test := range pluginTests {
			if test.IsDisabled {
				disabled++
			}
			files[test.FilePath] = true
		}

		total := len(pluginTests)
		summaries[plugin] = domain.PluginSummary{
			PluginName:    plugin,
			TotalTests:    total,
			DisabledTests: disabled,
			EnabledTests:  total - disabled,
			TestFiles:     len(files),
		}
	}

	return summaries
}

// SortedPlugins returns the plugin names in alphabetical order
func SortedPlugins(summaries map[string]domain.PluginSummary) []string {
	names := make([]string, 0, len(summaries))
	for name := range summaries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Overall sums per-plugin summaries into global totals
func (a *Aggregator) Overall(summaries map[string]domain.PluginSummary) domain.ReportSummary {
	overall := domain.ReportSummary{TotalModules: len(summaries)}
	for _, s := range summaries {
		overall.TotalFiles += s.TestFiles
		overall.TotalTests += s.TotalTests
		overall.EnabledTests += s.EnabledTests
		overall.DisabledTests += s.DisabledTests
	}
	return overall
}

// DisabledByPlugin groups disabled tests per plugin, each group sorted by
// file path then line number.
func (a *Aggregator) DisabledByPlugin(tests []domain.TestMethod) map[string][]domain.TestMethod {
	grouped := make(map[string][]domain.TestMethod)
	for _, test := range tests {
		if test.IsDisabled {
			grouped[test.Plugin] = append(grouped[test.Plugin], test)
		}
	}

	for _, group := range grouped {
		sort.Slice(group, func(i, j int) bool {
			if group[i].FilePath != group[j].FilePath {
				return group[i].FilePath < group[j].FilePath
			}
			return group[i].LineNumber < group[j].LineNumber
		})
	}

	return grouped
}

// BuildReport assembles the complete JSON report structure
func (a *Aggregator) BuildReport(tests []domain.TestMethod) *domain.ReportOutput {
	summaries := a.Summaries(tests)

	var disabled []domain.TestMethod
	for _, test := range tests {
		if test.IsDisabled {
			disabled = append(disabled, test)
		}
	}

	return &domain.ReportOutput{
		Summary:       a.Overall(summaries),
		Plugins:       summaries,
		DisabledTests: disabled,
	}
}
