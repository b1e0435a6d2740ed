package domain

// FailureKind distinguishes structural assertion failures from unexpected errors
type FailureKind string

const (
	// KindFailure is an assertion failure recorded by the test framework
	KindFailure FailureKind = "failure"
	// KindError is an unexpected exception recorded by the test framework
	KindError FailureKind = "error"
)

// Diff is an expected/actual pair recovered from a failure message or stack trace
type Diff struct {
	Expected string `json:"expected"`
	Actual   string `json:"actual"`
}

// FailureRecord represents one failed or errored test case from a result document
type FailureRecord struct {
	ClassName  string      `json:"class_name"`
	TestName   string      `json:"test_name"`
	Kind       FailureKind `json:"kind"`
	Message    string      `json:"message"`
	StackTrace string      `json:"stack_trace"`
	Diff       *Diff       `json:"diff,omitempty"` // nil when no pattern matched
}

// FailuresMeta contains metadata about an extraction run
type FailuresMeta struct {
	ResultFiles  int    `json:"result_files"`
	SkippedFiles int    `json:"skipped_files"` // unparseable documents
	FailureCount int    `json:"failure_count"`
	ErrorCount   int    `json:"error_count"`
	Timestamp    string `json:"timestamp"`
	RunLabel     string `json:"run_label"`
}

// FailuresOutput is the complete output structure for extracted failures
type FailuresOutput struct {
	Meta    FailuresMeta    `json:"meta"`
	Details []FailureRecord `json:"details"`
}
