package execution

import (
	"time"

	"github.com/Tythos/gtestbox/internal/domain"
	"github.com/Tythos/gtestbox/internal/registry"
)

// Executor executes cases and returns their results.
type Executor interface {
	Execute(cases []registry.Case) ([]domain.CaseResult, time.Duration, error)
}
