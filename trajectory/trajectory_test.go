package trajectory_test

import (
	"testing"

	"github.com/katalvlaran/subtraj/trajectory"
	"github.com/stretchr/testify/require"
)

func TestNewDropsDuplicatesAndComputesTotals(t *testing.T) {
	raw := [][2]float64{{0, 0}, {0, 0}, {1, 0}, {1, 0}, {2, 0}}
	tr, err := trajectory.New("t", 0, raw)
	require.NoError(t, err)
	require.Equal(t, 3, tr.Len())
	require.Equal(t, 0.0, tr.Distances[0])
	for i := 1; i < tr.Len(); i++ {
		require.Greater(t, tr.Distances[i], 0.0)
		require.Equal(t, tr.Totals[i-1]+tr.Distances[i], tr.Totals[i])
	}
	for i := 1; i < len(tr.SourceIndex); i++ {
		require.Greater(t, tr.SourceIndex[i], tr.SourceIndex[i-1])
	}
	require.True(t, tr.First().IsStart)
	require.False(t, tr.Last().IsStart)
}

func TestNewDegenerateSingleVertex(t *testing.T) {
	_, err := trajectory.New("t", 0, [][2]float64{{0, 0}, {0, 0}, {0, 0}})
	require.ErrorIs(t, err, trajectory.ErrDegenerate)
}

func TestMergeShortcutsFiltersAndSorts(t *testing.T) {
	tr, err := trajectory.New("t", 0, [][2]float64{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}})
	require.NoError(t, err)
	simp := &trajectory.Trajectory{
		Portals: []trajectory.Portal{
			{Source: 0, Destination: 1, Distance: 0}, // uninformative, dropped
			{Source: 0, Destination: 3, Distance: 1.5},
			{Source: 0, Destination: 2, Distance: 0.5},
			{Source: 0, Destination: 3, Distance: 999}, // duplicate destination, first wins
		},
	}
	tr.Simplifications = []*trajectory.Trajectory{simp}
	tr.MergeShortcuts()

	list := tr.Shortcuts[0]
	require.Len(t, list, 2)
	require.Equal(t, 2, list[0].Destination)
	require.Equal(t, 3, list[1].Destination)
	require.Equal(t, 1.5, list[1].Distance)
}

func TestLevelOutOfRange(t *testing.T) {
	tr, err := trajectory.New("t", 0, [][2]float64{{0, 0}, {1, 1}})
	require.NoError(t, err)
	_, err = tr.Level(0)
	require.ErrorIs(t, err, trajectory.ErrLevelOutOfRange)
}
