package execution

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tythos/gtestbox/internal/check"
	"github.com/Tythos/gtestbox/internal/config"
	"github.com/Tythos/gtestbox/internal/registry"
)

func failingCase(suite, name string) registry.Case {
	return registry.Case{
		Suite: suite,
		Name:  name,
		Fn: func(t *check.T) {
			t.ExpectEqual(1, 2)
		},
	}
}

func TestBatchExecutor_RunsInRegistrationOrder(t *testing.T) {
	cfg := config.New()
	executor := NewBatchExecutor(cfg, NewRunner(cfg))

	cases := []registry.Case{
		passingCase("SuiteB", "First"),
		passingCase("SuiteA", "Second"),
		passingCase("SuiteC", "Third"),
	}

	results, _, err := executor.ExecuteWithOptions(cases, false)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "SuiteB/First", results[0].FullName())
	assert.Equal(t, "SuiteA/Second", results[1].FullName())
	assert.Equal(t, "SuiteC/Third", results[2].FullName())
}

func TestBatchExecutor_EmptyBatch(t *testing.T) {
	cfg := config.New()
	executor := NewBatchExecutor(cfg, NewRunner(cfg))

	results, duration, err := executor.ExecuteWithOptions(nil, false)
	require.NoError(t, err)
	assert.Nil(t, results)
	assert.Zero(t, duration)
}

func TestBatchExecutor_FailFastStopsAfterFirstFailure(t *testing.T) {
	cfg := config.New()
	executor := NewBatchExecutor(cfg, NewRunner(cfg))

	cases := []registry.Case{
		passingCase("SuiteA", "Passes"),
		failingCase("SuiteB", "Fails"),
		passingCase("SuiteC", "NeverRuns"),
	}

	results, _, err := executor.ExecuteWithOptions(cases, true)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.True(t, results[0].Passed)
	assert.False(t, results[1].Passed)
}

func TestBatchExecutor_FailureDoesNotStopWithoutFailFast(t *testing.T) {
	cfg := config.New()
	executor := NewBatchExecutor(cfg, NewRunner(cfg))

	cases := []registry.Case{
		failingCase("SuiteA", "Fails"),
		passingCase("SuiteB", "StillRuns"),
	}

	results, _, err := executor.ExecuteWithOptions(cases, false)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.True(t, results[1].Passed)
}

func TestSummarize_Counts(t *testing.T) {
	cfg := config.New()
	executor := NewBatchExecutor(cfg, NewRunner(cfg))

	cases := []registry.Case{
		passingCase("HelloTest", "BasicAssertions"),
		failingCase("MutatedTest", "Fails"),
	}

	results, duration, err := executor.ExecuteWithOptions(cases, false)
	require.NoError(t, err)

	summary := Summarize(NewRunID(), results, duration)
	assert.Equal(t, 2, summary.TotalCases)
	assert.Equal(t, 1, summary.PassedCases)
	assert.Equal(t, 1, summary.FailedCases)
	assert.Equal(t, 3, summary.TotalChecks)
	assert.Equal(t, 1, summary.FailedChecks)
	assert.False(t, summary.Ok())
	require.Len(t, summary.Failures, 1)
	assert.Equal(t, "MutatedTest/Fails", summary.Failures[0].CaseName)
	assert.NotEmpty(t, summary.RunID)
}

func TestSummarize_AllPassing(t *testing.T) {
	cfg := config.New()
	executor := NewBatchExecutor(cfg, NewRunner(cfg))

	results, duration, err := executor.ExecuteWithOptions([]registry.Case{
		passingCase("HelloTest", "BasicAssertions"),
	}, false)
	require.NoError(t, err)

	summary := Summarize(NewRunID(), results, duration)
	assert.True(t, summary.Ok())
	assert.Empty(t, summary.Failures)
	assert.Equal(t, 2, summary.TotalChecks)
}

func TestNewRunID_Unique(t *testing.T) {
	assert.NotEqual(t, NewRunID(), NewRunID())
}
