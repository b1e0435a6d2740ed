package domain

// TestKind reflects which test-style annotation preceded a method
type TestKind string

const (
	// KindTest is a plain @Test method
	KindTest TestKind = "Test"
	// KindParameterized is a @ParameterizedTest method
	KindParameterized TestKind = "ParameterizedTest"
	// KindRepeated is a @RepeatedTest method
	KindRepeated TestKind = "RepeatedTest"
)

// NoReasonSpecified is recorded when @Disabled carries no parsable reason
const NoReasonSpecified = "No reason specified"

// TestMethod represents a single test method found in a source file
type TestMethod struct {
	Plugin         string   `json:"plugin"`
	FilePath       string   `json:"file_path"` // relative to the repository root
	ClassName      string   `json:"class_name"`
	MethodName     string   `json:"method_name"`
	IsDisabled     bool     `json:"is_disabled"`
	DisabledReason string   `json:"disabled_reason"`
	TestType       TestKind `json:"test_type"`
	LineNumber     int      `json:"line_number"` // 1-based line of the declaration
}
