package execution

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tythos/gtestbox/internal/check"
	"github.com/Tythos/gtestbox/internal/config"
	"github.com/Tythos/gtestbox/internal/registry"
)

func passingCase(suite, name string) registry.Case {
	return registry.Case{
		Suite: suite,
		Name:  name,
		Fn: func(t *check.T) {
			t.ExpectNotEqual("hello", "world")
			t.ExpectEqual(42, 7*6)
		},
	}
}

func TestRunner_PassingCase(t *testing.T) {
	runner := NewRunner(config.New())

	result := runner.Run(passingCase("HelloTest", "BasicAssertions"))

	assert.True(t, result.Passed)
	assert.False(t, result.Aborted)
	assert.Equal(t, "HelloTest/BasicAssertions", result.FullName())
	require.Len(t, result.Checks, 2)
	assert.True(t, result.Checks[0].Passed)
	assert.True(t, result.Checks[1].Passed)
}

func TestRunner_NonFatalFailureRunsRemainingChecks(t *testing.T) {
	runner := NewRunner(config.New())

	result := runner.Run(registry.Case{
		Suite: "HelloTest",
		Name:  "Mutated",
		Fn: func(t *check.T) {
			t.ExpectEqual(43, 7*6)
			t.ExpectNotEqual("hello", "world")
		},
	})

	assert.False(t, result.Passed)
	assert.False(t, result.Aborted)
	require.Len(t, result.Checks, 2)
	assert.False(t, result.Checks[0].Passed)
	assert.True(t, result.Checks[1].Passed)
}

func TestRunner_FatalFailureAbortsCaseOnly(t *testing.T) {
	runner := NewRunner(config.New())
	reached := false

	result := runner.Run(registry.Case{
		Suite: "FatalTest",
		Name:  "AbortsEarly",
		Fn: func(t *check.T) {
			t.RequireEqual(1, 2)
			reached = true
		},
	})

	assert.False(t, result.Passed)
	assert.True(t, result.Aborted)
	assert.False(t, reached, "case body must not continue past a failing fatal check")
	require.Len(t, result.Checks, 1)
	assert.True(t, result.Checks[0].Fatal)
}

func TestRunner_ForeignPanicPropagates(t *testing.T) {
	runner := NewRunner(config.New())

	assert.PanicsWithValue(t, "boom", func() {
		runner.Run(registry.Case{
			Suite: "PanicTest",
			Name:  "Boom",
			Fn:    func(*check.T) { panic("boom") },
		})
	})
}

func TestRunner_Idempotent(t *testing.T) {
	runner := NewRunner(config.New())
	c := passingCase("HelloTest", "BasicAssertions")

	first := runner.Run(c)
	second := runner.Run(c)

	assert.Equal(t, first.Passed, second.Passed)
	require.Equal(t, len(first.Checks), len(second.Checks))
	for i := range first.Checks {
		assert.Equal(t, first.Checks[i].Passed, second.Checks[i].Passed)
		assert.Equal(t, first.Checks[i].Message, second.Checks[i].Message)
	}
}
