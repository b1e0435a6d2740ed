package annotation

import (
	"regexp"
	"strings"

	"jtr/internal/domain"
)

// WindowSize is the number of lines scanned backward from a method declaration
const WindowSize = 10

// Classification is the outcome of scanning one lookback window
type Classification struct {
	IsTest   bool
	Kind     domain.TestKind
	Disabled bool
	Reason   string
}

var disabledReasonPattern = regexp.MustCompile(`@Disabled\s*\(\s*["']([^"']+)["']\s*\)`)

// Classifier classifies annotation markers in a lookback window.
// It is deliberately a line-level pattern matcher, not a parser.
type Classifier struct{}

// NewClassifier creates a new Classifier
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify scans the window in order. Later lines are closer to the
// declaration, so when several test-kind markers appear the last one wins.
// A @Disabled sitting at or after a same-line // comment token is ignored:
// a commented-out marker leaves the test enabled.
func (c *Classifier) Classify(window []string) Classification {
	var result Classification

	for _, raw := range window {
		line := strings.TrimSpace(raw)

		if strings.Contains(line, "@Test") {
			result.IsTest = true
			result.Kind = domain.KindTest
		} else if strings.Contains(line, "@ParameterizedTest") {
			result.IsTest = true
			result.Kind = domain.KindParameterized
		} else if strings.Contains(line, "@RepeatedTest") {
			result.IsTest = true
			result.Kind = domain.KindRepeated
		}

		if idx := strings.Index(line, "@Disabled"); idx >= 0 {
			if ci := strings.Index(line, "//"); ci >= 0 && ci < idx {
				continue
			}
			result.Disabled = true
			if m := disabledReasonPattern.FindStringSubmatch(line); m != nil {
				result.Reason = m[1]
			} else {
				result.Reason = domain.NoReasonSpecified
			}
		}
	}

	return result
}
