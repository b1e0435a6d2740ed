package junit

import (
	"regexp"
	"strings"

	"jtr/internal/domain"
)

// diffRules are tried in order against the parse source; the first match wins.
// Swapping the order changes behavior on inputs matching both shapes.
var diffRules = []*regexp.Regexp{
	// JUnit/AssertJ style: expected: <X> but was: <Y>
	regexp.MustCompile(`(?is)expected:\s*<(.*?)>\s*but was:\s*<(.*?)>`),
	// Hamcrest style: Expected: X Actual: Y
	regexp.MustCompile(`(?is)expected:\s*(.+?)\s+actual:\s*(.+)`),
}

// RecoverDiff makes a best-effort attempt to recover an expected/actual pair
// from a failure. The stack trace is preferred as the parse source when it
// spans multiple lines, otherwise the message is used. Returns nil when no
// rule matches; callers fall back to the raw message.
func RecoverDiff(message, stackTrace string) *domain.Diff {
	source := message
	if strings.Contains(strings.TrimRight(stackTrace, "\n \t"), "\n") {
		source = stackTrace
	}

	for _, rule := range diffRules {
		if m := rule.FindStringSubmatch(source); m != nil {
			return &domain.Diff{
				Expected: strings.TrimSpace(m[1]),
				Actual:   strings.TrimSpace(m[2]),
			}
		}
	}
	return nil
}
