package anyof

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/anyof/config"
)

func testConfig() config.Config {
	cfg := config.Default()
	cfg.N = 10_000
	cfg.Seed = 4711
	return cfg
}

func TestRunnerEndToEnd(t *testing.T) {
	runner, err := New(testConfig(), WithLogger(NoopLogger()), WithMaxProcs(4))
	require.NoError(t, err)
	require.NotEmpty(t, runner.RunID())

	reports, err := runner.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, reports, 3)

	names := []string{"Worst Case", "Best Case", "Average Case"}
	for i, rep := range reports {
		assert.Equal(t, names[i], rep.Scenario)
		assert.Equal(t, runner.RunID(), rep.RunID)
		assert.Equal(t, 10_000, rep.N)
		assert.Equal(t, 4, rep.Procs)
		assert.Len(t, rep.References, 4)
		assert.NotEmpty(t, rep.Timings)
		assert.Greater(t, rep.BestK, 0)
		assert.InDelta(t, float64(rep.BestK)/4.0, rep.Ratio, 1e-12)
	}
}

func TestRunnerRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.RunsPerK = 0

	_, err := New(cfg)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestRunnerRejectsUnknownScenario(t *testing.T) {
	cfg := testConfig()
	cfg.Scenarios = []string{"worst", "pessimal"}

	_, err := New(cfg)
	require.ErrorIs(t, err, config.ErrUnknownScenario)
}

func TestRunnerHonorsCancellation(t *testing.T) {
	runner, err := New(testConfig(), WithLogger(NoopLogger()))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = runner.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunnerCandidateOverride(t *testing.T) {
	cfg := testConfig()
	cfg.Scenarios = []string{"average"}

	runner, err := New(cfg, WithLogger(NoopLogger()), WithMaxProcs(2), WithCandidateKs(1, 3))
	require.NoError(t, err)

	reports, err := runner.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, reports, 1)

	var measured []int
	for _, kt := range reports[0].Timings {
		measured = append(measured, kt.K)
	}
	assert.Equal(t, []int{1, 3}, measured)
}
