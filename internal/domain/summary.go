package domain

// PluginSummary holds aggregate statistics for one plugin module
type PluginSummary struct {
	PluginName    string `json:"plugin_name"`
	TotalTests    int    `json:"total_tests"`
	DisabledTests int    `json:"disabled_tests"`
	EnabledTests  int    `json:"enabled_tests"`
	TestFiles     int    `json:"test_files"` // distinct files, not records
}

// DisabledPercent returns the floor percentage of disabled tests, 0 for an empty plugin
func (s PluginSummary) DisabledPercent() int {
	if s.TotalTests == 0 {
		return 0
	}
	return 100 * s.DisabledTests / s.TotalTests
}

// ReportSummary holds overall totals across all plugins
type ReportSummary struct {
	TotalModules  int `json:"total_modules"`
	TotalFiles    int `json:"total_files"`
	TotalTests    int `json:"total_tests"`
	EnabledTests  int `json:"enabled_tests"`
	DisabledTests int `json:"disabled_tests"`
}

// ReportOutput is the complete JSON report structure
type ReportOutput struct {
	Summary       ReportSummary            `json:"summary"`
	Plugins       map[string]PluginSummary `json:"plugins"`
	DisabledTests []TestMethod             `json:"disabled_tests"`
}
