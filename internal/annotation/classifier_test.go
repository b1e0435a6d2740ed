package annotation

import (
	"testing"

	"jtr/internal/domain"
)

func TestClassifier_Classify(t *testing.T) {
	classifier := NewClassifier()

	tests := []struct {
		name     string
		window   []string
		isTest   bool
		kind     domain.TestKind
		disabled bool
		reason   string
	}{
		{
			name:   "plain test marker",
			window: []string{"@Test"},
			isTest: true,
			kind:   domain.KindTest,
		},
		{
			name:   "parameterized test marker",
			window: []string{"@ParameterizedTest", "@ValueSource(ints = {1, 2, 3})"},
			isTest: true,
			kind:   domain.KindParameterized,
		},
		{
			name:   "repeated test marker",
			window: []string{"@RepeatedTest(5)"},
			isTest: true,
			kind:   domain.KindRepeated,
		},
		{
			name:   "no marker means not a test",
			window: []string{"// just a helper", "private int counter;"},
			isTest: false,
		},
		{
			name:   "marker nearest the declaration wins",
			window: []string{"@Test", "@ParameterizedTest"},
			isTest: true,
			kind:   domain.KindParameterized,
		},
		{
			name:     "disabled with quoted reason",
			window:   []string{"@Test", `@Disabled("Fails on Windows, see issue 42")`},
			isTest:   true,
			kind:     domain.KindTest,
			disabled: true,
			reason:   "Fails on Windows, see issue 42",
		},
		{
			name:     "disabled with single-quoted reason",
			window:   []string{"@Test", "@Disabled('flaky')"},
			isTest:   true,
			kind:     domain.KindTest,
			disabled: true,
			reason:   "flaky",
		},
		{
			name:     "disabled without reason uses sentinel",
			window:   []string{"@Test", "@Disabled"},
			isTest:   true,
			kind:     domain.KindTest,
			disabled: true,
			reason:   domain.NoReasonSpecified,
		},
		{
			name:     "disabled with empty parens uses sentinel",
			window:   []string{"@Test", "@Disabled()"},
			isTest:   true,
			kind:     domain.KindTest,
			disabled: true,
			reason:   domain.NoReasonSpecified,
		},
		{
			name:     "commented-out disabled leaves the test enabled",
			window:   []string{"@Test", `// @Disabled("was flaky before the fix")`},
			isTest:   true,
			kind:     domain.KindTest,
			disabled: false,
		},
		{
			name:     "disabled followed by a comment is honored",
			window:   []string{"@Test", `@Disabled("slow") // revisit after the cache rewrite`},
			isTest:   true,
			kind:     domain.KindTest,
			disabled: true,
			reason:   "slow",
		},
		{
			name:     "disabled on its own does not make a test",
			window:   []string{`@Disabled("not wired up yet")`},
			isTest:   false,
			disabled: true,
			reason:   "not wired up yet",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := classifier.Classify(tt.window)
			if result.IsTest != tt.isTest {
				t.Errorf("IsTest: expected %v, got %v", tt.isTest, result.IsTest)
			}
			if tt.isTest && result.Kind != tt.kind {
				t.Errorf("Kind: expected %q, got %q", tt.kind, result.Kind)
			}
			if result.Disabled != tt.disabled {
				t.Errorf("Disabled: expected %v, got %v", tt.disabled, result.Disabled)
			}
			if tt.disabled && result.Reason != tt.reason {
				t.Errorf("Reason: expected %q, got %q", tt.reason, result.Reason)
			}
		})
	}
}
