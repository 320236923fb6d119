package etd_test

import (
	"testing"

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

func TestEvaluateIdenticalIsZero(t *testing.T) {
	a := mustTraj(t, [][2]float64{{0, 0}, {1, 0}, {2, 0}})
	b := mustTraj(t, [][2]float64{{0, 0}, {1, 0}, {2, 0}})
	require.InDelta(t, 0.0, etd.Evaluate(a, b), 1e-12)
}

func TestEvaluateParallelOffset(t *testing.T) {
	p := mustTraj(t, [][2]float64{{0, 0}, {10, 0}})
	q := mustTraj(t, [][2]float64{{0, 1}, {10, 1}})
	require.InDelta(t, 1.0, etd.Evaluate(p, q), 1e-9)
}

func TestEvaluateSameSetDifferentSampling(t *testing.T) {
	p := mustTraj(t, [][2]float64{{0, 0}, {1, 0}, {2, 0}, {3, 0}})
	q := mustTraj(t, [][2]float64{{0, 0}, {3, 0}})
	require.InDelta(t, 0.0, etd.Evaluate(p, q), 1e-9)
}

func TestEvaluateZigZagVsStraight(t *testing.T) {
	zigzag := mustTraj(t, [][2]float64{{0, 0}, {1, 1}, {2, 0}, {3, 1}, {4, 0}})
	straight := mustTraj(t, [][2]float64{{0, 0}, {4, 0}})
	d := etd.Evaluate(zigzag, straight)
	require.Greater(t, d, 0.9)
}
