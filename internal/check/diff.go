package check

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// diffFor returns a unified diff for failing string comparisons. Single-line
// operands already appear verbatim in the diagnostic, so only multi-line
// content gets a diff.
func diffFor(expected, actual any) string {
	expectedText, firstOk := expected.(string)
	actualText, secondOk := actual.(string)
	if !firstOk || !secondOk || expectedText == actualText {
		return ""
	}
	if !strings.Contains(expectedText, "\n") && !strings.Contains(actualText, "\n") {
		return ""
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(expectedText),
		B:        difflib.SplitLines(actualText),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return ""
	}
	return text
}
