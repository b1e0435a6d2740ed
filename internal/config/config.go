package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string
	ResultsPath string

	// Scanner settings
	ModuleSuffix string
	SourceExt    string

	// Output settings
	OutputMarkdownFile string
	OutputJSONFile     string
	FailuresJSONFile   string

	// Paths to ignore when scanning
	PathsToIgnore []string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	ProjectPath  string
	ResultsPath  string
	NameFilter   string
	DisabledOnly bool
	OpenFailures bool
	History      bool
	FromLast     bool
	InitSchema   bool
	Print        bool
	Limit        int
}

// FileConfig is the optional jtr.yml override file
type FileConfig struct {
	ResultsPath  string   `yaml:"results_path"`
	ModuleSuffix string   `yaml:"module_suffix"`
	SourceExt    string   `yaml:"source_ext"`
	Ignore       []string `yaml:"ignore"`
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		ProjectPath:        DefaultProjectPath,
		ResultsPath:        DefaultResultsPath,
		ModuleSuffix:       DefaultModuleSuffix,
		SourceExt:          DefaultSourceExt,
		OutputMarkdownFile: DefaultOutputMarkdownFile,
		OutputJSONFile:     DefaultOutputJSONFile,
		FailuresJSONFile:   DefaultFailuresJSONFile,
	}
	cfg.PathsToIgnore = make([]string, len(DefaultPathsToIgnore))
	copy(cfg.PathsToIgnore, DefaultPathsToIgnore)
	return cfg
}

// Load creates a config, applies the optional jtr.yml file, flags and .env
func Load(flags Flags) *Config {
	cfg := New()
	cfg.Flags = flags

	if flags.ProjectPath != "" {
		cfg.ProjectPath = flags.ProjectPath
	}

	// File overrides sit between defaults and flags
	cfg.applyFile(filepath.Join(cfg.ProjectPath, DefaultConfigFile))

	// .env may not exist, that's okay - use environment variables
	_ = godotenv.Load(filepath.Join(cfg.ProjectPath, ".env"))

	return cfg
}

// applyFile merges a YAML config file into the config if it exists
func (c *Config) applyFile(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return
	}

	if fc.ResultsPath != "" {
		c.ResultsPath = fc.ResultsPath
	}
	if fc.ModuleSuffix != "" {
		c.ModuleSuffix = fc.ModuleSuffix
	}
	if fc.SourceExt != "" {
		c.SourceExt = fc.SourceExt
	}
	if len(fc.Ignore) > 0 {
		c.PathsToIgnore = append(c.PathsToIgnore, fc.Ignore...)
	}
}

// GetResultsPath returns the results path, using the flag if provided
func (c *Config) GetResultsPath() string {
	path := c.ResultsPath
	if c.Flags.ResultsPath != "" {
		path = c.Flags.ResultsPath
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.ProjectPath, path)
}

// GetOutputDir returns the report output directory. CI runs write into the
// workspace directory, local runs into the project path.
func (c *Config) GetOutputDir() string {
	if ws := os.Getenv("GITHUB_WORKSPACE"); ws != "" {
		return ws
	}
	return c.ProjectPath
}

// GetMarkdownPath returns the full path to the Markdown report.
// Resolves to an absolute path so report and failures always read/write the
// same files regardless of cwd.
func (c *Config) GetMarkdownPath() string {
	return c.outputPath(c.OutputMarkdownFile)
}

// GetJSONPath returns the full path to the JSON report
func (c *Config) GetJSONPath() string {
	return c.outputPath(c.OutputJSONFile)
}

// GetFailuresPath returns the full path to the extracted-failures JSON file
func (c *Config) GetFailuresPath() string {
	return c.outputPath(c.FailuresJSONFile)
}

func (c *Config) outputPath(name string) string {
	p := filepath.Join(c.GetOutputDir(), name)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// RunLabel identifies the run in reports: the CI run ID when present, else "local"
func (c *Config) RunLabel() string {
	if id := os.Getenv("GITHUB_RUN_ID"); id != "" {
		return id
	}
	return "local"
}
