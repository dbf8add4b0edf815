package domain

import "time"

// CheckResult is the outcome of a single assertion within a case.
type CheckResult struct {
	Passed  bool   // Whether the check held
	Fatal   bool   // Whether the check aborts the case on failure
	Message string // Diagnostic text, includes both operand values on failure
	File    string // Source file of the call site
	Line    int    // Source line of the call site
	Diff    string // Unified diff for failing string comparisons, if any
}

// CaseResult is the outcome of executing one registered case.
type CaseResult struct {
	Suite    string        // Suite the case belongs to
	Name     string        // Case name within the suite
	Checks   []CheckResult // Every check the case recorded, in order
	Passed   bool          // Whether every check passed
	Aborted  bool          // Whether a fatal check cut the case short
	Duration time.Duration // Time taken to execute
}

// FullName returns the suite-qualified case name.
func (r CaseResult) FullName() string {
	return r.Suite + "/" + r.Name
}

// RunSummary aggregates all case results of a single run.
type RunSummary struct {
	RunID        string
	TotalCases   int
	PassedCases  int
	FailedCases  int
	TotalChecks  int
	FailedChecks int
	Duration     time.Duration
	Results      []CaseResult
	Failures     []Failure
}

// Ok reports whether every check in every case passed.
func (s RunSummary) Ok() bool {
	return s.FailedChecks == 0
}
