package execution

import (
	"time"

	"github.com/Tythos/gtestbox/internal/config"
	"github.com/Tythos/gtestbox/internal/domain"
	"github.com/Tythos/gtestbox/internal/registry"
	"github.com/Tythos/gtestbox/internal/ui"
)

// BatchExecutor runs a batch of cases sequentially, in registration order.
// Registration happens before execution and the registry is read-only from
// here on, so ordering is deterministic across runs.
type BatchExecutor struct {
	config   *config.Config
	runner   *Runner
	progress *ui.ProgressBar
}

// NewBatchExecutor creates a new BatchExecutor.
func NewBatchExecutor(cfg *config.Config, runner *Runner) *BatchExecutor {
	return &BatchExecutor{
		config: cfg,
		runner: runner,
	}
}

// SetProgress sets the progress bar updated after each case.
func (e *BatchExecutor) SetProgress(progress *ui.ProgressBar) {
	e.progress = progress
}

// Execute runs all cases, honoring the configured fail-fast flag.
func (e *BatchExecutor) Execute(cases []registry.Case) ([]domain.CaseResult, time.Duration, error) {
	return e.ExecuteWithOptions(cases, e.config.Flags.FailFast)
}

// ExecuteWithOptions runs cases with optional fail-fast (stop after the
// first failing case).
func (e *BatchExecutor) ExecuteWithOptions(cases []registry.Case, failFast bool) ([]domain.CaseResult, time.Duration, error) {
	if len(cases) == 0 {
		return nil, 0, nil
	}

	startTime := time.Now()
	var results []domain.CaseResult
	var passedChecks, failedChecks int

	for completed, c := range cases {
		result := e.runner.Run(c)
		results = append(results, result)

		for _, chk := range result.Checks {
			if chk.Passed {
				passedChecks++
			} else {
				failedChecks++
			}
		}
		if e.progress != nil {
			e.progress.Update(completed+1, passedChecks, failedChecks)
		}

		if failFast && !result.Passed {
			break
		}
	}

	if e.progress != nil {
		e.progress.Finish()
	}
	return results, time.Since(startTime), nil
}
