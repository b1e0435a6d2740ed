package discovery

import (
	"path/filepath"
	"strings"
)

// Filter filters files by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// ByName filters files by name pattern using wildcard matching.
// Supports patterns like "*CleanUpTest.java" or "*Visitor*"; a pattern
// without wildcards is treated as a substring match.
func (f *Filter) ByName(files []string, pattern string) []string {
	if pattern == "" {
		return files
	}

	var filtered []string
	for _, file := range files {
		name := filepath.Base(file)

		// filepath.Match handles * and ? wildcards
		if matched, err := filepath.Match(pattern, name); err == nil && matched {
			filtered = append(filtered, file)
			continue
		}

		if strings.ContainsAny(pattern, "*?") {
			// Fall back to ordered substring matching for patterns like
			// "*Payment*" that filepath.Match is stricter about
			if matchesParts(name, strings.Split(pattern, "*")) {
				filtered = append(filtered, file)
			}
			continue
		}

		if strings.Contains(name, pattern) {
			filtered = append(filtered, file)
		}
	}

	return filtered
}

// matchesParts reports whether every non-empty part appears in name.
// At least one part must be non-empty.
func matchesParts(name string, parts []string) bool {
	matchedAny := false
	for _, part := range parts {
		if part == "" {
			continue
		}
		if !strings.Contains(name, part) {
			return false
		}
		matchedAny = true
	}
	return matchedAny
}
