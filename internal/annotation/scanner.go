package annotation

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"jtr/internal/domain"
)

var (
	packagePattern = regexp.MustCompile(`package\s+([\w.]+);`)
	classPattern   = regexp.MustCompile(`(?:public\s+)?class\s+(\w+)`)
	// A method declaration: optional visibility, optional static, a
	// return-type token, an identifier, an opening parenthesis.
	methodPattern = regexp.MustCompile(`^\s*(?:public|private|protected)?\s+(?:static\s+)?(?:void|\w+)\s+(\w+)\s*\(`)
)

// Scanner extracts test methods from source text using the window classifier
type Scanner struct {
	classifier *Classifier
}

// NewScanner creates a new Scanner
func NewScanner() *Scanner {
	return &Scanner{classifier: NewClassifier()}
}

// ScanSource scans the full text of one source file and returns a fresh batch
// of test-method records; the caller owns concatenation across files.
//
// Each method declaration independently re-scans its own preceding window, so
// the window is never reset between declarations: a marker within range of two
// adjacent short methods applies to both.
func (s *Scanner) ScanSource(content, plugin, relPath string) []domain.TestMethod {
	className := extractClassName(content)
	if className == "" {
		return nil
	}
	if pkg := extractPackage(content); pkg != "" {
		className = pkg + "." + className
	}

	lines := strings.Split(content, "\n")
	var methods []domain.TestMethod

	for i, line := range lines {
		m := methodPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		start := i - WindowSize
		if start < 0 {
			start = 0
		}
		cls := s.classifier.Classify(lines[start:i])
		if !cls.IsTest {
			continue
		}

		reason := ""
		if cls.Disabled {
			reason = cls.Reason
		}
		methods = append(methods, domain.TestMethod{
			Plugin:         plugin,
			FilePath:       relPath,
			ClassName:      className,
			MethodName:     m[1],
			IsDisabled:     cls.Disabled,
			DisabledReason: reason,
			TestType:       cls.Kind,
			LineNumber:     i + 1,
		})
	}

	return methods
}

// ScanFile reads one source file and scans it. The file path is recorded
// relative to repoRoot.
func (s *Scanner) ScanFile(path, plugin, repoRoot string) ([]domain.TestMethod, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read source file %s: %w", path, err)
	}

	relPath, err := filepath.Rel(repoRoot, path)
	if err != nil {
		relPath = path
	}

	return s.ScanSource(string(content), plugin, relPath), nil
}

func extractPackage(content string) string {
	if m := packagePattern.FindStringSubmatch(content); m != nil {
		return m[1]
	}
	return ""
}

func extractClassName(content string) string {
	if m := classPattern.FindStringSubmatch(content); m != nil {
		return m[1]
	}
	return ""
}
