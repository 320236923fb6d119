package geom

import "math"

// BoundingBox accumulates the axis-aligned bounding box of a set of
// points. The zero value is not empty: it is the degenerate box at the
// origin, so AddPoint on it always includes (0, 0). Use NewBoundingBox
// (Min* = MaxFloat64, Max* = -MaxFloat64) to start from an empty box.
type BoundingBox struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// NewBoundingBox returns an empty bounding box ready for AddPoint calls.
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		MinX: math.MaxFloat64,
		MinY: math.MaxFloat64,
		MaxX: -math.MaxFloat64,
		MaxY: -math.MaxFloat64,
	}
}

// AddPoint widens the box to include (x, y).
func (b *BoundingBox) AddPoint(x, y float64) {
	if x < b.MinX {
		b.MinX = x
	}
	if y < b.MinY {
		b.MinY = y
	}
	if x > b.MaxX {
		b.MaxX = x
	}
	if y > b.MaxY {
		b.MaxY = y
	}
}

// Merge widens b to also cover other.
func (b *BoundingBox) Merge(other BoundingBox) {
	if other.MinX < b.MinX {
		b.MinX = other.MinX
	}
	if other.MinY < b.MinY {
		b.MinY = other.MinY
	}
	if other.MaxX > b.MaxX {
		b.MaxX = other.MaxX
	}
	if other.MaxY > b.MaxY {
		b.MaxY = other.MaxY
	}
}

// Empty reports whether no point has ever been added.
func (b BoundingBox) Empty() bool {
	return b.MinX > b.MaxX || b.MinY > b.MaxY
}

// Diagonal returns the Euclidean length of the box's diagonal.
func (b BoundingBox) Diagonal() float64 {
	w := b.MaxX - b.MinX
	h := b.MaxY - b.MinY
	return math.Sqrt(w*w + h*h)
}
