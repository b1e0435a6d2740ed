package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.ProjectPath != DefaultProjectPath {
		t.Errorf("expected ProjectPath %s, got %s", DefaultProjectPath, cfg.ProjectPath)
	}
	if cfg.ModuleSuffix != DefaultModuleSuffix {
		t.Errorf("expected ModuleSuffix %s, got %s", DefaultModuleSuffix, cfg.ModuleSuffix)
	}
	if cfg.SourceExt != DefaultSourceExt {
		t.Errorf("expected SourceExt %s, got %s", DefaultSourceExt, cfg.SourceExt)
	}
	if len(cfg.PathsToIgnore) != len(DefaultPathsToIgnore) {
		t.Errorf("expected %d ignored paths, got %d", len(DefaultPathsToIgnore), len(cfg.PathsToIgnore))
	}
}

func TestConfig_GetResultsPath(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected string
	}{
		{
			name: "default path under project",
			config: &Config{
				ProjectPath: "/project",
				ResultsPath: DefaultResultsPath,
			},
			expected: "/project/target/surefire-reports",
		},
		{
			name: "relative flag path",
			config: &Config{
				ProjectPath: "/project",
				ResultsPath: DefaultResultsPath,
				Flags:       Flags{ResultsPath: "build/reports"},
			},
			expected: "/project/build/reports",
		},
		{
			name: "absolute flag path",
			config: &Config{
				ProjectPath: "/project",
				ResultsPath: DefaultResultsPath,
				Flags:       Flags{ResultsPath: "/absolute/reports"},
			},
			expected: "/absolute/reports",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.config.GetResultsPath()
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestConfig_OutputPaths(t *testing.T) {
	t.Run("workspace env overrides the output dir", func(t *testing.T) {
		t.Setenv("GITHUB_WORKSPACE", "/workspace")
		cfg := New()
		if got := cfg.GetMarkdownPath(); got != "/workspace/test-report.md" {
			t.Errorf("unexpected markdown path: %s", got)
		}
		if got := cfg.GetJSONPath(); got != "/workspace/test-report.json" {
			t.Errorf("unexpected JSON path: %s", got)
		}
		if got := cfg.GetFailuresPath(); got != "/workspace/test-failures.json" {
			t.Errorf("unexpected failures path: %s", got)
		}
	})

	t.Run("falls back to the project path", func(t *testing.T) {
		t.Setenv("GITHUB_WORKSPACE", "")
		cfg := New()
		cfg.ProjectPath = "/project"
		if got := cfg.GetJSONPath(); got != "/project/test-report.json" {
			t.Errorf("unexpected JSON path: %s", got)
		}
	})
}

func TestConfig_RunLabel(t *testing.T) {
	t.Run("uses the CI run id", func(t *testing.T) {
		t.Setenv("GITHUB_RUN_ID", "987654")
		cfg := New()
		if got := cfg.RunLabel(); got != "987654" {
			t.Errorf("expected 987654, got %s", got)
		}
	})

	t.Run("defaults to local", func(t *testing.T) {
		t.Setenv("GITHUB_RUN_ID", "")
		cfg := New()
		if got := cfg.RunLabel(); got != "local" {
			t.Errorf("expected local, got %s", got)
		}
	})
}

func TestLoad_FileOverrides(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "jtr-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	yml := `results_path: build/test-results
module_suffix: -tests
source_ext: .kt
ignore:
  - generated
`
	if err := os.WriteFile(filepath.Join(tmpDir, DefaultConfigFile), []byte(yml), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg := Load(Flags{ProjectPath: tmpDir})

	if cfg.ResultsPath != "build/test-results" {
		t.Errorf("expected results_path override, got %s", cfg.ResultsPath)
	}
	if cfg.ModuleSuffix != "-tests" {
		t.Errorf("expected module_suffix override, got %s", cfg.ModuleSuffix)
	}
	if cfg.SourceExt != ".kt" {
		t.Errorf("expected source_ext override, got %s", cfg.SourceExt)
	}
	found := false
	for _, dir := range cfg.PathsToIgnore {
		if dir == "generated" {
			found = true
		}
	}
	if !found {
		t.Error("expected 'generated' appended to ignored paths")
	}
}

func TestLoad_WithoutFile(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "jtr-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	cfg := Load(Flags{ProjectPath: tmpDir})

	if cfg.ProjectPath != tmpDir {
		t.Errorf("expected project path %s, got %s", tmpDir, cfg.ProjectPath)
	}
	if cfg.ResultsPath != DefaultResultsPath {
		t.Errorf("expected default results path, got %s", cfg.ResultsPath)
	}
}
