package geom

import "math"

// Point is a single 2D vertex of a trajectory.
//
// TrajectoryID identifies which trajectory this point was sampled from
// (its index in the dataset, or -1 for a query trajectory not yet part of
// the dataset). IsStart marks whether this is the first vertex of its
// trajectory; the spatial hash uses IsStart to distinguish start-point
// buckets from end-point buckets occupying the same cell.
//
// Point is immutable after construction and used only as a value type.
type Point struct {
	X, Y         float64
	TrajectoryID int
	IsStart      bool
}

// Sub returns p-q as a displacement vector (Dx, Dy).
func (p Point) Sub(q Point) (dx, dy float64) {
	return p.X - q.X, p.Y - q.Y
}

// DistSq returns the squared Euclidean distance between p and q.
// Squared distances avoid a sqrt in hot comparison loops; callers take
// the sqrt only where an actual distance value is required.
func (p Point) DistSq(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Sqrt(p.DistSq(q))
}

// Lerp returns the point at parameter t along the segment p->q, t in [0,1].
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X:            p.X + (q.X-p.X)*t,
		Y:            p.Y + (q.Y-p.Y)*t,
		TrajectoryID: p.TrajectoryID,
		IsStart:      false,
	}
}

// Clamp01 clamps v to the closed interval [0, 1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
