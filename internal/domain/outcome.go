package domain

// Status classifies a single executed test case.
type Status string

const (
	StatusPassed Status = "PASSED"
	StatusFailed Status = "FAILED"
	StatusError  Status = "ERROR"

	// StatusLoadFailed marks the synthetic record emitted when the pipeline
	// fails before any test runs. Lowercase on the wire, matching the report
	// contract consumed downstream.
	StatusLoadFailed Status = "failed"
)

// Synthetic test identifiers for pipeline-stage failures.
const (
	SyntheticModuleLoadError = "ModuleLoadError"
	SyntheticSuiteLoadError  = "TestModuleLoadError"
	SyntheticExecutionError  = "TestExecutionError"
)

// ReasonPassed is the reason string recorded for every passing test.
const ReasonPassed = "Test passed successfully"

// OutcomeRecord is the result of one executed test case, or of one
// pipeline-stage failure when no tests could run.
type OutcomeRecord struct {
	Test        string `json:"test"`
	Description string `json:"description"`
	Result      Status `json:"result"`
	Reason      string `json:"reason"`
}
