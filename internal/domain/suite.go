package domain

// SymbolCall invokes one of the submission's bound functions by name. The
// aliases below are deliberately structural: values of these types cross the
// interpreter boundary, where only identical unnamed signatures convert.
type SymbolCall = func(name string, args ...interface{}) (interface{}, error)

// RunFunc executes one test case against the bound namespace. An empty
// failure and nil error mean the test passed; a non-empty failure means an
// assertion did not hold; a non-nil error means the case could not be
// exercised at all.
type RunFunc = func(call SymbolCall) (failure string, err error)

// AddFunc registers one test case. A Test Suite Definition must export
// `Register(add AddFunc)` and call add once per case, in declaration order.
type AddFunc = func(name, description string, run RunFunc)

// TestCase is one registered case of a Test Suite Definition.
type TestCase struct {
	Name        string
	Description string
	Run         RunFunc
}

// TestSuite is a loaded Test Suite Definition: its cases in declaration
// order plus the raw source kept for the report envelope.
type TestSuite struct {
	Path   string
	Source string
	Cases  []TestCase
}
