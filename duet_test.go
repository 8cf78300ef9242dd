package duet_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/aretw0/duet"
	"github.com/aretw0/duet/internal/testutils"
	"github.com/aretw0/duet/pkg/observability"
	"github.com/aretw0/duet/pkg/puzzle"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_SolveInput(t *testing.T) {
	eng, err := duet.New()
	require.NoError(t, err)

	ans, err := eng.SolveInput(context.Background(), 18, "snd 1\nsnd 2\nsnd p\nrcv a\nrcv b\nrcv c\nrcv d\n")
	require.NoError(t, err)
	assert.Equal(t, "3", ans.Part2)
	assert.Equal(t, puzzle.Day(18), ans.Day)
	assert.Equal(t, []puzzle.Day{7, 8, 9, 12, 18, 20, 23}, eng.Days())
}

func TestEngine_SolveFromFilesWithMetrics(t *testing.T) {
	dir := testutils.SetupInputs(t, map[puzzle.Day]string{9: "{{<ab>},{<ab>},{<ab>},{<ab>}}\n"})
	cfgPath := testutils.WriteConfig(t, dir, "duet.yaml", "inputs: "+dir+"\n")

	m := observability.New()
	var ends int
	eng, err := duet.New(
		duet.WithConfigFile(cfgPath),
		duet.WithMetrics(m),
		duet.WithLifecycleHooks(puzzle.LifecycleHooks{
			OnSolveEnd: func(context.Context, *puzzle.SolveEvent) { ends++ },
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "day09.txt"), eng.InputPath(9))

	ans, err := eng.Solve(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, "9", ans.Part1)
	assert.Equal(t, "8", ans.Part2)

	assert.Equal(t, 1, ends)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Solves.WithLabelValues("day09", observability.OutcomeOK)))
}

func TestEngine_SolveAll(t *testing.T) {
	dir := testutils.SetupInputs(t, map[puzzle.Day]string{12: "0 <-> 1\n1 <-> 0\n2 <-> 2\n"})

	eng, err := duet.New(duet.WithInputs(dir))
	require.NoError(t, err)

	results, err := eng.SolveAll(context.Background())
	assert.ErrorIs(t, err, puzzle.ErrNoInput)
	require.Len(t, results, len(eng.Days()))

	for _, r := range results {
		if r.Day == 12 {
			require.NoError(t, r.Err)
			assert.Equal(t, "2", r.Answer.Part1)
			assert.Equal(t, "2", r.Answer.Part2)
		} else {
			assert.ErrorIs(t, r.Err, puzzle.ErrNoInput)
		}
	}
}

func TestEngine_WithSolverOverrides(t *testing.T) {
	eng, err := duet.New(duet.WithSolver(18, func(context.Context, string) (puzzle.Answer, error) {
		return puzzle.Answer{Part1: "custom"}, nil
	}), duet.WithSolver(25, func(context.Context, string) (puzzle.Answer, error) {
		return puzzle.Answer{Part1: "xmas"}, nil
	}))
	require.NoError(t, err)

	ans, err := eng.SolveInput(context.Background(), 18, "anything")
	require.NoError(t, err)
	assert.Equal(t, "custom", ans.Part1)
	assert.Contains(t, eng.Days(), puzzle.Day(25))
}

func TestEngine_BadConfig(t *testing.T) {
	path := testutils.WriteConfig(t, t.TempDir(), "duet.yaml", "log_format: xml\n")

	_, err := duet.New(duet.WithConfigFile(path))
	assert.Error(t, err)
}
