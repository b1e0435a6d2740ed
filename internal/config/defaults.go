package config

const (
	// DefaultProjectPath is the default repository root to scan
	DefaultProjectPath = "."
	// DefaultResultsPath is the default location of XML result documents,
	// relative to the project path
	DefaultResultsPath = "target/surefire-reports"
	// DefaultModuleSuffix marks directories that are test modules
	DefaultModuleSuffix = "_test"
	// DefaultSourceExt is the source file extension to scan
	DefaultSourceExt = ".java"
	// DefaultOutputMarkdownFile is the Markdown report file name
	DefaultOutputMarkdownFile = "test-report.md"
	// DefaultOutputJSONFile is the JSON report file name
	DefaultOutputJSONFile = "test-report.json"
	// DefaultFailuresJSONFile is the extracted-failures file name
	DefaultFailuresJSONFile = "test-failures.json"
	// DefaultConfigFile is the optional YAML config file name
	DefaultConfigFile = "jtr.yml"
)

// DefaultPathsToIgnore are directories skipped when scanning for sources and reports
var DefaultPathsToIgnore = []string{
	"target",
	"bin",
	"build",
	"out",
	"node_modules",
	".settings",
}
