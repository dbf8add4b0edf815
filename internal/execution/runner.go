package execution

import (
	"time"

	"github.com/Tythos/gtestbox/internal/check"
	"github.com/Tythos/gtestbox/internal/config"
	"github.com/Tythos/gtestbox/internal/domain"
	"github.com/Tythos/gtestbox/internal/registry"
)

// Runner executes a single registered case.
type Runner struct {
	config *config.Config
}

// NewRunner creates a new Runner.
func NewRunner(cfg *config.Config) *Runner {
	return &Runner{config: cfg}
}

// Run executes one case body against a fresh recorder. A failing fatal check
// aborts the case; the abort never escapes the runner. Any other panic from
// the case body propagates unchanged.
func (r *Runner) Run(c registry.Case) domain.CaseResult {
	recorder := check.New()
	start := time.Now()

	aborted := invoke(c, recorder)

	return domain.CaseResult{
		Suite:    c.Suite,
		Name:     c.Name,
		Checks:   recorder.Checks(),
		Passed:   !recorder.Failed(),
		Aborted:  aborted,
		Duration: time.Since(start),
	}
}

func invoke(c registry.Case, recorder *check.T) (aborted bool) {
	defer func() {
		if recovered := recover(); recovered != nil {
			if check.Aborted(recovered) {
				aborted = true
				return
			}
			panic(recovered)
		}
	}()
	c.Fn(recorder)
	return false
}
