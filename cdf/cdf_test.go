package cdf_test

import (
	"testing"

	"github.com/katalvlaran/subtraj/cdf"
	"github.com/katalvlaran/subtraj/etd"
	"github.com/katalvlaran/subtraj/trajectory"
	"github.com/stretchr/testify/require"
)

func mustTraj(t *testing.T, raw [][2]float64) *trajectory.Trajectory {
	t.Helper()
	tr, err := trajectory.New("t", 0, raw)
	require.NoError(t, err)

	return tr
}

func TestDecidePlainIdenticalTrajectoriesWithinZero(t *testing.T) {
	a := mustTraj(t, [][2]float64{{0, 0}, {1, 0}, {2, 0}})
	b := mustTraj(t, [][2]float64{{0, 0}, {1, 0}, {2, 0}})
	s := cdf.NewSolver()
	require.True(t, s.DecidePlain(a, b, 1e-9))
}

func TestDecidePlainIdenticalZeroDelta(t *testing.T) {
	a := mustTraj(t, [][2]float64{{0, 0}, {1, 0}, {2, 0}})
	b := mustTraj(t, [][2]float64{{0, 0}, {1, 0}, {2, 0}})
	s := cdf.NewSolver()
	require.True(t, s.DecidePlain(a, b, 0))
}

func TestDecidePlainParallelOffsetThreshold(t *testing.T) {
	a := mustTraj(t, [][2]float64{{0, 0}, {10, 0}})
	b := mustTraj(t, [][2]float64{{0, 1}, {10, 1}})
	s := cdf.NewSolver()
	require.False(t, s.DecidePlain(a, b, 0.9))
	require.True(t, s.DecidePlain(a, b, 1.1))
}

func TestDecidePlainZigZagVsStraightThreshold(t *testing.T) {
	zigzag := mustTraj(t, [][2]float64{{0, 0}, {1, 1}, {2, 0}, {3, 1}, {4, 0}})
	straight := mustTraj(t, [][2]float64{{0, 0}, {4, 0}})
	s := cdf.NewSolver()
	require.False(t, s.DecidePlain(zigzag, straight, 0.9))
	require.True(t, s.DecidePlain(zigzag, straight, 1.1))
}

func TestDecidePlainRejectsBeyondDelta(t *testing.T) {
	a := mustTraj(t, [][2]float64{{0, 0}, {10, 0}})
	b := mustTraj(t, [][2]float64{{0, 5}, {10, 5}})
	s := cdf.NewSolver()
	require.False(t, s.DecidePlain(a, b, 1.0))
	require.True(t, s.DecidePlain(a, b, 5.0))
}

func TestDecidePlainRejectsEndpointMismatch(t *testing.T) {
	a := mustTraj(t, [][2]float64{{0, 0}, {10, 0}})
	b := mustTraj(t, [][2]float64{{0, 0}, {10, 100}})
	s := cdf.NewSolver()
	require.False(t, s.DecidePlain(a, b, 1.0))
}

func TestShortcutSolverAgreesWithPlainWhenNoShortcuts(t *testing.T) {
	a := mustTraj(t, [][2]float64{{0, 0}, {3, 1}, {6, -1}, {10, 0}})
	b := mustTraj(t, [][2]float64{{0, 0}, {4, 0.5}, {10, 0.2}})

	plain := cdf.NewSolver()
	shortcuts := cdf.NewShortcutSolver()

	for _, delta := range []float64{0.1, 0.5, 1.0, 2.0, 5.0} {
		require.Equal(t, plain.DecidePlain(a, b, delta), shortcuts.Decide(a, b, delta, delta), "delta=%v", delta)
	}
}

func TestEqualTimeBoundImpliesDecisionYes(t *testing.T) {
	pairs := [][2][][2]float64{
		{{{0, 0}, {1, 1}, {2, 0}, {3, 1}, {4, 0}}, {{0, 0}, {4, 0}}},
		{{{0, 0}, {10, 0}}, {{0, 1}, {10, 1}}},
		{{{0, 0}, {3, 1}, {6, -1}, {10, 0}}, {{0, 0}, {4, 0.5}, {10, 0.2}}},
	}
	s := cdf.NewSolver()
	for i, pair := range pairs {
		a := mustTraj(t, pair[0])
		b := mustTraj(t, pair[1])
		bound := etd.Evaluate(a, b)
		require.True(t, s.DecidePlain(a, b, bound+1e-9), "pair %d", i)
	}
}

func TestShortcutSolverAgreesWithPlainOnZigZag(t *testing.T) {
	zigzag := mustTraj(t, [][2]float64{{0, 0}, {1, 1}, {2, 0}, {3, 1}, {4, 0}})
	straight := mustTraj(t, [][2]float64{{0, 0}, {4, 0}})

	plain := cdf.NewSolver()
	shortcuts := cdf.NewShortcutSolver()

	for _, delta := range []float64{0.5, 0.9, 1.0, 1.1, 2.0} {
		require.Equal(t, plain.DecidePlain(zigzag, straight, delta), shortcuts.Decide(zigzag, straight, delta, delta), "delta=%v", delta)
		require.Equal(t, plain.DecidePlain(straight, zigzag, delta), shortcuts.Decide(straight, zigzag, delta, delta), "delta=%v swapped", delta)
	}
}
