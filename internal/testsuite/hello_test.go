package testsuite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tythos/gtestbox/internal/config"
	"github.com/Tythos/gtestbox/internal/execution"
	"github.com/Tythos/gtestbox/internal/registry"
)

func TestRegister_AddsHelloCase(t *testing.T) {
	reg := registry.New()
	Register(reg)

	require.Equal(t, 1, reg.Len())
	assert.Equal(t, "HelloTest/BasicAssertions", reg.Cases()[0].FullName())
}

func TestBuiltinSuite_AllChecksPass(t *testing.T) {
	reg := registry.New()
	Register(reg)

	cfg := config.New()
	executor := execution.NewBatchExecutor(cfg, execution.NewRunner(cfg))
	results, duration, err := executor.Execute(reg.Cases())
	require.NoError(t, err)

	summary := execution.Summarize(execution.NewRunID(), results, duration)
	assert.True(t, summary.Ok())
	assert.Equal(t, 1, summary.TotalCases)
	assert.Equal(t, 2, summary.TotalChecks)
	assert.Equal(t, 0, summary.FailedChecks)
	assert.Empty(t, summary.Failures)
}

func TestBuiltinSuite_IdempotentAcrossRuns(t *testing.T) {
	reg := registry.New()
	Register(reg)

	cfg := config.New()
	executor := execution.NewBatchExecutor(cfg, execution.NewRunner(cfg))

	first, _, err := executor.Execute(reg.Cases())
	require.NoError(t, err)
	second, _, err := executor.Execute(reg.Cases())
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Passed, second[i].Passed)
		assert.Equal(t, first[i].FullName(), second[i].FullName())
		require.Equal(t, len(first[i].Checks), len(second[i].Checks))
		for j := range first[i].Checks {
			assert.Equal(t, first[i].Checks[j].Passed, second[i].Checks[j].Passed)
			assert.Equal(t, first[i].Checks[j].Message, second[i].Checks[j].Message)
		}
	}
}
