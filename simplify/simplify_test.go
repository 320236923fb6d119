package simplify_test

import (
	"testing"

	"github.com/katalvlaran/subtraj/etd"
	"github.com/katalvlaran/subtraj/simplify"
	"github.com/katalvlaran/subtraj/trajectory"
	"github.com/stretchr/testify/require"
)

func straightish(t *testing.T) *trajectory.Trajectory {
	t.Helper()
	raw := [][2]float64{
		{0, 0}, {1, 0.01}, {2, -0.01}, {3, 0.02}, {4, 0}, {5, 0.01}, {6, 0}, {7, -0.02}, {8, 0}, {9, 0},
	}
	tr, err := trajectory.New("straightish", 0, raw)
	require.NoError(t, err)

	return tr
}

func TestSimplifyKeepsEndpointsAndDropsNoPortals(t *testing.T) {
	tr := straightish(t)
	sp := simplify.New()
	out := sp.Simplify(tr, 0.5)

	require.Equal(t, tr.First(), out.First())
	require.Equal(t, tr.Last(), out.Last())
	require.Less(t, out.Len(), tr.Len())
	require.Empty(t, out.Portals)
	require.Same(t, tr, out.Source)
}

func TestSimplifyTighterEpsilonKeepsMoreVertices(t *testing.T) {
	tr := straightish(t)
	sp := simplify.New()
	loose := sp.Simplify(tr, 1.0)
	tight := sp.Simplify(tr, 0.001)

	require.LessOrEqual(t, loose.Len(), tight.Len())
}

func chord(t *testing.T, a, b [2]float64) *trajectory.Trajectory {
	t.Helper()
	tr, err := trajectory.New("chord", -1, [][2]float64{a, b})
	require.NoError(t, err)

	return tr
}

func TestSimplifyConsecutivePairsStayWithinEpsilon(t *testing.T) {
	tr := straightish(t)
	sp := simplify.New()
	eps := 0.3
	out := sp.Simplify(tr, eps)

	for j := 0; j+1 < out.Len(); j++ {
		seg := chord(t,
			[2]float64{out.Points[j].X, out.Points[j].Y},
			[2]float64{out.Points[j+1].X, out.Points[j+1].Y})
		d := etd.Window(tr, seg, out.SourceIndex[j], out.SourceIndex[j+1]+1, 0, 2)
		require.LessOrEqual(t, d, eps, "pair %d-%d", j, j+1)
	}
}

func TestSimplifyWithZeroEpsilonKeepsEveryVertex(t *testing.T) {
	tr := straightish(t)
	sp := simplify.New()
	out := sp.Simplify(tr, 0)

	require.Equal(t, tr.Len(), out.Len())
	for i := range tr.Points {
		require.Equal(t, tr.Points[i].X, out.Points[i].X)
		require.Equal(t, tr.Points[i].Y, out.Points[i].Y)
	}
}

func TestSimplifyProgressiveRecordsPortals(t *testing.T) {
	tr := straightish(t)
	sp := simplify.New()
	out := sp.SimplifyProgressive(tr, tr, 0.5)

	require.NotEmpty(t, out.Portals)
	require.Equal(t, tr.First(), out.First())
	require.Equal(t, tr.Last(), out.Last())
}

func TestProgressivePortalDistancesMatchRecomputedBound(t *testing.T) {
	tr := straightish(t)
	sp := simplify.New()
	out := sp.SimplifyProgressive(tr, tr, 0.5)

	require.NotEmpty(t, out.Portals)
	for _, p := range out.Portals {
		seg := chord(t,
			[2]float64{tr.Points[p.Source].X, tr.Points[p.Source].Y},
			[2]float64{tr.Points[p.Destination].X, tr.Points[p.Destination].Y})
		d := etd.Window(tr, seg, p.Source, p.Destination+1, 0, 2)
		require.InDelta(t, p.Distance, d, 1e-9, "portal %d->%d", p.Source, p.Destination)
	}
}

func TestBuildDatasetLadderProducesFourLevelsWithEmptyShortcuts(t *testing.T) {
	tr := straightish(t)
	sp := simplify.New()
	var acc simplify.RatioAccumulator
	simplify.BuildDatasetLadder(tr, sp, &acc)

	require.Len(t, tr.Simplifications, 4)
	for _, level := range tr.Simplifications {
		require.GreaterOrEqual(t, level.Len(), 2)
		require.Empty(t, level.Portals)
	}
	require.Empty(t, tr.Shortcuts)
	require.Equal(t, 1, acc.Count[0])
}

func TestBuildQueryLadderPopulatesShortcutsAtEveryLevel(t *testing.T) {
	tr := straightish(t)
	sp := simplify.New()
	var acc simplify.RatioAccumulator
	simplify.BuildDatasetLadder(tr, sp, &acc)
	means := acc.Means()

	query := straightish(t)
	simplify.BuildQueryLadder(query, means, sp)

	require.Len(t, query.Simplifications, 4)
	require.NotEmpty(t, query.Shortcuts)
	// level 3 gets its own 2-level sub-ladder, so it should also have shortcuts.
	require.NotEmpty(t, query.Simplifications[3].Shortcuts)
}
