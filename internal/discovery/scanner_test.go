package discovery

import (
	"os"
	"path/filepath"
	"testing"
)

func TestScanner_Modules(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "jtr-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	dirs := []string{
		"sandbox_common_test",
		"sandbox_tools_test",
		"sandbox_common",
		"docs",
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(filepath.Join(tmpDir, dir), 0755); err != nil {
			t.Fatalf("failed to create dir %s: %v", dir, err)
		}
	}
	// A file with the suffix must not count as a module
	if err := os.WriteFile(filepath.Join(tmpDir, "notes_test"), []byte("x"), 0644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}

	scanner := NewScanner(nil, "_test", ".java")

	t.Run("finds module directories sorted by name", func(t *testing.T) {
		modules, err := scanner.Modules(tmpDir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(modules) != 2 {
			t.Fatalf("expected 2 modules, got %d: %v", len(modules), modules)
		}
		if filepath.Base(modules[0]) != "sandbox_common_test" || filepath.Base(modules[1]) != "sandbox_tools_test" {
			t.Errorf("unexpected module order: %v", modules)
		}
	})

	t.Run("returns error for non-existent root", func(t *testing.T) {
		if _, err := scanner.Modules("/non/existent/path"); err == nil {
			t.Error("expected error for non-existent root")
		}
	})
}

func TestScanner_Sources(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "jtr-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	module := filepath.Join(tmpDir, "sandbox_common_test")
	files := []string{
		"src/org/sandbox/FirstTest.java",
		"src/org/sandbox/SecondTest.java",
		"src/org/sandbox/helper.txt",
		"src/target/Generated.java",
		"README.md",
	}
	for _, file := range files {
		fullPath := filepath.Join(module, file)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			t.Fatalf("failed to create dir for %s: %v", file, err)
		}
		if err := os.WriteFile(fullPath, []byte("content"), 0644); err != nil {
			t.Fatalf("failed to create file %s: %v", file, err)
		}
	}

	scanner := NewScanner([]string{"target"}, "_test", ".java")

	t.Run("finds java files under src, skipping ignored dirs", func(t *testing.T) {
		sources, err := scanner.Sources(module)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(sources) != 2 {
			t.Errorf("expected 2 source files, got %d: %v", len(sources), sources)
		}
	})

	t.Run("module without src contributes no files", func(t *testing.T) {
		empty := filepath.Join(tmpDir, "empty_test")
		if err := os.MkdirAll(empty, 0755); err != nil {
			t.Fatalf("failed to create dir: %v", err)
		}
		sources, err := scanner.Sources(empty)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(sources) != 0 {
			t.Errorf("expected no source files, got %d", len(sources))
		}
	})
}

func TestScanner_Reports(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "jtr-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	files := []string{
		"surefire-reports/TEST-org.sandbox.FirstTest.xml",
		"surefire-reports/TEST-org.sandbox.SecondTest.xml",
		"surefire-reports/FirstTest.txt",
		".hidden/TEST-Skipped.xml",
	}
	for _, file := range files {
		fullPath := filepath.Join(tmpDir, file)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			t.Fatalf("failed to create dir for %s: %v", file, err)
		}
		if err := os.WriteFile(fullPath, []byte("<testsuite/>"), 0644); err != nil {
			t.Fatalf("failed to create file %s: %v", file, err)
		}
	}

	scanner := NewScanner(nil, "_test", ".java")

	t.Run("finds xml documents, skipping hidden dirs", func(t *testing.T) {
		reports, err := scanner.Reports(tmpDir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(reports) != 2 {
			t.Errorf("expected 2 reports, got %d: %v", len(reports), reports)
		}
	})

	t.Run("accepts a single xml file directly", func(t *testing.T) {
		single := filepath.Join(tmpDir, "surefire-reports", "TEST-org.sandbox.FirstTest.xml")
		reports, err := scanner.Reports(single)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(reports) != 1 {
			t.Errorf("expected 1 report, got %d", len(reports))
		}
	})

	t.Run("returns error for non-existent path", func(t *testing.T) {
		if _, err := scanner.Reports(filepath.Join(tmpDir, "missing")); err == nil {
			t.Error("expected error for non-existent path")
		}
	})
}
