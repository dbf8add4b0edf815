package execution

import (
	"time"

	"github.com/google/uuid"

	"github.com/Tythos/gtestbox/internal/domain"
)

// NewRunID returns a unique identifier for one run.
func NewRunID() string {
	return uuid.NewString()
}

// Summarize folds case results into a run summary.
func Summarize(runID string, results []domain.CaseResult, duration time.Duration) domain.RunSummary {
	summary := domain.RunSummary{
		RunID:      runID,
		TotalCases: len(results),
		Duration:   duration,
		Results:    results,
		Failures:   domain.CollectFailures(results),
	}

	for _, result := range results {
		if result.Passed {
			summary.PassedCases++
		} else {
			summary.FailedCases++
		}
		for _, chk := range result.Checks {
			summary.TotalChecks++
			if !chk.Passed {
				summary.FailedChecks++
			}
		}
	}

	return summary
}
