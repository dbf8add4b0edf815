package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/Tythos/gtestbox/internal/config"
	"github.com/Tythos/gtestbox/internal/domain"
	"github.com/Tythos/gtestbox/internal/registry"
)

// Formatter formats and displays run output.
type Formatter struct {
	config *config.Config
}

// NewFormatter creates a new Formatter.
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{config: cfg}
}

// applyColorMode is evaluated per print call because the no-color flag only
// lands on the config after command-line parsing.
func (f *Formatter) applyColorMode() {
	if f.config.NoColor {
		color.NoColor = true
	}
}

// PrintSummary displays the run statistics table followed by failure details
// when any check failed.
func (f *Formatter) PrintSummary(summary domain.RunSummary) error {
	f.applyColorMode()
	fmt.Print("\n")
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                      Run Statistics                           ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝\n")

	fmt.Println("┌─────────────────────────────────┬─────────────────────────────┐")

	fmt.Printf("│ %-31s │ ", "Run ID")
	color.White("%-27s │\n", shortRunID(summary.RunID))
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Total Cases")
	color.White("%-27d │\n", summary.TotalCases)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Passed Cases")
	color.Green("%-27d │\n", summary.PassedCases)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Failed Cases")
	color.Red("%-27d │\n", summary.FailedCases)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Total Checks")
	color.White("%-27d │\n", summary.TotalChecks)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Failed Checks")
	color.Red("%-27d │\n", summary.FailedChecks)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Duration")
	color.White("%-27s │\n", fmt.Sprintf("%.3fs", summary.Duration.Seconds()))

	fmt.Println("└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Println()
	if summary.Ok() {
		color.Green("✓ All checks passed!")
		return nil
	}

	color.Red("✗ %d check(s) failed in %d case(s)", summary.FailedChecks, summary.FailedCases)
	fmt.Println()
	f.printFailures(summary.Failures)
	return nil
}

func (f *Formatter) printFailures(failures []domain.Failure) {
	for index, failure := range failures {
		fmt.Print(FormatFailure(index+1, failure))
	}
}

// FormatFailure renders one numbered failure block.
func FormatFailure(number int, failure domain.Failure) string {
	var builder strings.Builder

	location := ""
	if failure.File != "" {
		location = fmt.Sprintf(" (%s:%d)", failure.File, failure.Line)
	}
	builder.WriteString(color.RedString("  %d) %s%s\n", number, failure.CaseName, location))

	for _, line := range strings.Split(strings.TrimSuffix(failure.Message, "\n"), "\n") {
		builder.WriteString(fmt.Sprintf("     %s\n", line))
	}
	if failure.Diff != "" {
		builder.WriteString("     Diff:\n")
		for _, line := range strings.Split(strings.TrimSuffix(failure.Diff, "\n"), "\n") {
			builder.WriteString(fmt.Sprintf("       %s\n", line))
		}
	}
	if failure.Fatal {
		builder.WriteString(color.YellowString("     (fatal: remaining checks in this case were skipped)\n"))
	}
	builder.WriteString("\n")

	return builder.String()
}

// PrintCaseResults prints one line per check, grouped by case (verbose mode).
func (f *Formatter) PrintCaseResults(results []domain.CaseResult) {
	f.applyColorMode()
	fmt.Println()
	for _, result := range results {
		if result.Passed {
			color.Green("✓ %s (%.3fs)", result.FullName(), result.Duration.Seconds())
		} else {
			color.Red("✗ %s (%.3fs)", result.FullName(), result.Duration.Seconds())
		}
		for _, chk := range result.Checks {
			line := firstLine(chk.Message)
			if chk.Passed {
				fmt.Printf("    %s %s\n", color.GreenString("ok"), line)
			} else {
				fmt.Printf("    %s %s (%s:%d)\n", color.RedString("FAIL"), line, chk.File, chk.Line)
			}
		}
		if result.Aborted {
			color.Yellow("    aborted by fatal check")
		}
	}
}

func firstLine(text string) string {
	if index := strings.IndexByte(text, '\n'); index >= 0 {
		return text[:index]
	}
	return text
}

// PrintCaseList prints registered cases grouped by suite without running them.
func (f *Formatter) PrintCaseList(cases []registry.Case) error {
	f.applyColorMode()
	color.Green("Found %d registered case(s):\n", len(cases))

	bySuite := make(map[string][]registry.Case)
	var suites []string
	for _, c := range cases {
		if _, seen := bySuite[c.Suite]; !seen {
			suites = append(suites, c.Suite)
		}
		bySuite[c.Suite] = append(bySuite[c.Suite], c)
	}
	sort.Strings(suites)

	for i, suite := range suites {
		isLastSuite := i == len(suites)-1
		if isLastSuite {
			color.Cyan("└── %s", suite)
		} else {
			color.Cyan("├── %s", suite)
		}

		members := bySuite[suite]
		for j, c := range members {
			isLastCase := j == len(members)-1

			var prefix string
			if isLastSuite {
				if isLastCase {
					prefix = "    └── "
				} else {
					prefix = "    ├── "
				}
			} else {
				if isLastCase {
					prefix = "│   └── "
				} else {
					prefix = "│   ├── "
				}
			}

			fmt.Printf("%s%s\n", prefix, color.YellowString(c.Name))
		}
	}

	return nil
}

func shortRunID(runID string) string {
	if len(runID) > 8 {
		return runID[:8]
	}
	return runID
}
