package check

import (
	"fmt"
	"path/filepath"
	"reflect"
	"runtime"

	"github.com/Tythos/gtestbox/internal/domain"
)

// abort is the panic value raised by fatal checks. The runner recovers it
// and marks the case aborted; any other panic propagates.
type abort struct{}

// Aborted reports whether a recovered panic value came from a fatal check.
func Aborted(recovered any) bool {
	_, ok := recovered.(abort)
	return ok
}

// T records check outcomes for a single case. Expect methods are non-fatal:
// they record the outcome and continue. Require methods record the outcome
// and abort the enclosing case on failure.
type T struct {
	checks []domain.CheckResult
	failed bool
}

// New returns an empty recorder for one case execution.
func New() *T {
	return &T{}
}

// Checks returns every outcome recorded so far, in order.
func (t *T) Checks() []domain.CheckResult {
	return t.checks
}

// Failed reports whether any recorded check failed.
func (t *T) Failed() bool {
	return t.failed
}

// ExpectEqual asserts that actual equals expected.
func (t *T) ExpectEqual(expected, actual any) {
	t.record(deepEqual(expected, actual), false, equalMessage(expected, actual), diffFor(expected, actual))
}

// ExpectNotEqual asserts that the two values differ.
func (t *T) ExpectNotEqual(first, second any) {
	t.record(!deepEqual(first, second), false, notEqualMessage(first, second), "")
}

// RequireEqual asserts that actual equals expected, aborting the case on failure.
func (t *T) RequireEqual(expected, actual any) {
	t.record(deepEqual(expected, actual), true, equalMessage(expected, actual), diffFor(expected, actual))
}

// RequireNotEqual asserts that the two values differ, aborting the case on failure.
func (t *T) RequireNotEqual(first, second any) {
	t.record(!deepEqual(first, second), true, notEqualMessage(first, second), "")
}

func (t *T) record(passed, fatal bool, message, diff string) {
	file, line := callSite()
	t.checks = append(t.checks, domain.CheckResult{
		Passed:  passed,
		Fatal:   fatal,
		Message: message,
		File:    file,
		Line:    line,
		Diff:    diff,
	})
	if !passed {
		t.failed = true
		if fatal {
			panic(abort{})
		}
	}
}

// callSite resolves the assertion call site: callSite -> record -> the
// Expect/Require method -> the case body.
func callSite() (string, int) {
	_, file, line, ok := runtime.Caller(3)
	if !ok {
		return "", 0
	}
	return filepath.Base(file), line
}

// deepEqual compares content, not identity; equal values of different
// concrete types still compare unequal.
func deepEqual(first, second any) bool {
	return reflect.DeepEqual(first, second)
}

func equalMessage(expected, actual any) string {
	if deepEqual(expected, actual) {
		return fmt.Sprintf("%v == %v", expected, actual)
	}
	return fmt.Sprintf("values differ\nExpected: %v\nActual:   %v", expected, actual)
}

func notEqualMessage(first, second any) string {
	if deepEqual(first, second) {
		return fmt.Sprintf("values are equal\nFirst:  %v\nSecond: %v", first, second)
	}
	return fmt.Sprintf("%v != %v", first, second)
}
