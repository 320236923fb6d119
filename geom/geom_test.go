package geom_test

import (
	"testing"

	"github.com/katalvlaran/subtraj/geom"
	"github.com/stretchr/testify/require"
)

func TestBoundingBoxDiagonal(t *testing.T) {
	b := geom.NewBoundingBox()
	require.True(t, b.Empty())
	b.AddPoint(0, 0)
	b.AddPoint(3, 4)
	require.False(t, b.Empty())
	require.InDelta(t, 5.0, b.Diagonal(), 1e-9)
}

func TestBoundingBoxMerge(t *testing.T) {
	a := geom.NewBoundingBox()
	a.AddPoint(0, 0)
	b := geom.NewBoundingBox()
	b.AddPoint(10, 10)
	a.Merge(b)
	require.Equal(t, 0.0, a.MinX)
	require.Equal(t, 10.0, a.MaxX)
}

func TestSegmentPointIntervalComplete(t *testing.T) {
	a := geom.Point{X: 0, Y: 0}
	b1 := geom.Point{X: -1, Y: 100}
	b2 := geom.Point{X: 1, Y: 100}
	// segment is far away (distance 100) vs huge eps => complete
	iv, ok := geom.SegmentPointInterval(a, b1, b2, 1000)
	require.True(t, ok)
	require.True(t, iv.Complete())
}

func TestSegmentPointIntervalEmpty(t *testing.T) {
	a := geom.Point{X: 0, Y: 0}
	b1 := geom.Point{X: -1, Y: 100}
	b2 := geom.Point{X: 1, Y: 100}
	iv, ok := geom.SegmentPointInterval(a, b1, b2, 1)
	require.False(t, ok)
	require.True(t, iv.Empty())
}

func TestSegmentPointIntervalPartial(t *testing.T) {
	a := geom.Point{X: 0, Y: 0}
	b1 := geom.Point{X: -10, Y: 1}
	b2 := geom.Point{X: 10, Y: 1}
	iv, ok := geom.SegmentPointInterval(a, b1, b2, 2)
	require.True(t, ok)
	require.False(t, iv.Complete())
	require.False(t, iv.Empty())
	require.True(t, iv.Start < iv.End)
}
