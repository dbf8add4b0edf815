package domain

// Failure represents a single failed check, flattened for display.
type Failure struct {
	CaseName string // Suite-qualified name of the enclosing case
	Message  string
	File     string
	Line     int
	Diff     string // Unified diff when the failing check compared strings
	Fatal    bool   // Whether this failure aborted the case
}

// CollectFailures flattens the failed checks of the given results.
func CollectFailures(results []CaseResult) []Failure {
	var failures []Failure
	for _, result := range results {
		for _, chk := range result.Checks {
			if chk.Passed {
				continue
			}
			failures = append(failures, Failure{
				CaseName: result.FullName(),
				Message:  chk.Message,
				File:     chk.File,
				Line:     chk.Line,
				Diff:     chk.Diff,
				Fatal:    chk.Fatal,
			})
		}
	}
	return failures
}
