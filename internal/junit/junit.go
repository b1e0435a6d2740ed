package junit

import (
	"encoding/xml"
	"fmt"
	"strings"

	"jtr/internal/domain"
)

const (
	// DefaultMessage is used when a failure node carries no message attribute
	DefaultMessage = "No message"
	// DefaultStackTrace is used when a failure node has no body text
	DefaultStackTrace = "No stacktrace"

	// MaxMessageLen caps the message field
	MaxMessageLen = 1000
	// MaxStackTraceLen caps the stack trace field
	MaxStackTraceLen = 5000

	// TruncationMarker is appended when a field is clipped
	TruncationMarker = "... [truncated]"
)

// testSuites is the multi-suite document root
type testSuites struct {
	XMLName xml.Name    `xml:"testsuites"`
	Suites  []testSuite `xml:"testsuite"`
}

// testSuite is a single suite node, either the root or a child of testsuites
type testSuite struct {
	XMLName xml.Name   `xml:"testsuite"`
	Name    string     `xml:"name,attr"`
	Cases   []testCase `xml:"testcase"`
}

type testCase struct {
	ClassName string      `xml:"classname,attr"`
	Name      string      `xml:"name,attr"`
	Failure   *resultNode `xml:"failure"`
	Error     *resultNode `xml:"error"`
}

type resultNode struct {
	Message string `xml:"message,attr"`
	Body    string `xml:",chardata"`
}

// Extractor parses JUnit-style XML result documents
type Extractor struct{}

// NewExtractor creates a new Extractor
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses one result document and returns all failure and error records.
// A test case carrying both a failure and an error node produces two records.
// An unparseable document returns an error and no records.
func (e *Extractor) Extract(data []byte) ([]domain.FailureRecord, error) {
	suites, err := normalizeRoot(data)
	if err != nil {
		return nil, err
	}

	var records []domain.FailureRecord
	for _, suite := range suites {
		for _, tc := range suite.Cases {
			className := tc.ClassName
			if className == "" {
				className = suite.Name
			}
			if tc.Failure != nil {
				records = append(records, buildRecord(className, tc.Name, domain.KindFailure, tc.Failure))
			}
			if tc.Error != nil {
				records = append(records, buildRecord(className, tc.Name, domain.KindError, tc.Error))
			}
		}
	}

	return records, nil
}

// normalizeRoot accepts both document shapes: a <testsuites> container or a
// bare <testsuite> root, returned as a single-element slice.
func normalizeRoot(data []byte) ([]testSuite, error) {
	var multi testSuites
	if err := xml.Unmarshal(data, &multi); err == nil {
		return multi.Suites, nil
	}

	var single testSuite
	if err := xml.Unmarshal(data, &single); err != nil {
		return nil, fmt.Errorf("parse result document: %w", err)
	}
	return []testSuite{single}, nil
}

func buildRecord(className, testName string, kind domain.FailureKind, node *resultNode) domain.FailureRecord {
	message := node.Message
	if message == "" {
		message = DefaultMessage
	}
	message = truncate(message, MaxMessageLen)

	stackTrace := strings.TrimSpace(node.Body)
	if stackTrace == "" {
		stackTrace = DefaultStackTrace
	}
	stackTrace = truncate(stackTrace, MaxStackTraceLen)

	return domain.FailureRecord{
		ClassName:  className,
		TestName:   testName,
		Kind:       kind,
		Message:    message,
		StackTrace: stackTrace,
		Diff:       RecoverDiff(message, stackTrace),
	}
}

// truncate clips s to limit runes and appends the truncation marker when clipped
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + TruncationMarker
}
