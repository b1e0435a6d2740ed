package discovery

import (
	"testing"
)

func TestFilter_ByName(t *testing.T) {
	filter := NewFilter()

	tests := []struct {
		name     string
		files    []string
		pattern  string
		expected int // Expected number of matches
	}{
		{
			name:     "empty pattern returns all",
			files:    []string{"FirstTest.java", "SecondTest.java", "ThirdTest.java"},
			pattern:  "",
			expected: 3,
		},
		{
			name:     "wildcard pattern matches suffix",
			files:    []string{"CleanUpTest.java", "VisitorTest.java"},
			pattern:  "*CleanUpTest.java",
			expected: 1,
		},
		{
			name:     "wildcard pattern matches substring",
			files:    []string{"VisitorTest.java", "FluentVisitorTest.java", "CleanUpTest.java"},
			pattern:  "*Visitor*",
			expected: 2,
		},
		{
			name:     "simple contains match",
			files:    []string{"VisitorTest.java", "CleanUpTest.java"},
			pattern:  "CleanUp",
			expected: 1,
		},
		{
			name:     "no matches",
			files:    []string{"VisitorTest.java", "CleanUpTest.java"},
			pattern:  "*NonExistent*",
			expected: 0,
		},
		{
			name:     "full path with wildcard",
			files:    []string{"/path/to/VisitorTest.java", "/path/to/CleanUpTest.java"},
			pattern:  "*VisitorTest.java",
			expected: 1,
		},
		{
			name:     "pattern with multiple wildcards",
			files:    []string{"JUnitCleanUpTest.java", "JUnitMigrationTest.java", "VisitorTest.java"},
			pattern:  "*JUnit*Test.java",
			expected: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := filter.ByName(tt.files, tt.pattern)
			if len(result) != tt.expected {
				t.Errorf("expected %d matches, got %d", tt.expected, len(result))
			}
		})
	}

	t.Run("empty file list", func(t *testing.T) {
		result := filter.ByName([]string{}, "*Test.java")
		if len(result) != 0 {
			t.Errorf("expected empty result, got %d items", len(result))
		}
	})
}
