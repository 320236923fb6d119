package geom

import "math"

// Interval is a parametric sub-range [Start, End] of a segment b1->b2,
// with Start, End in [0, 1]. It is the free-space "edge" used throughout
// the decision-Fréchet solver: the set of points on a cell edge within
// some epsilon of a diagram vertex.
type Interval struct {
	Start, End float64
}

// Empty reports whether the interval contains no points. By convention
// the zero Interval (Start==End==0) is the canonical empty interval.
func (r Interval) Empty() bool {
	return r.Start == r.End
}

// Complete reports whether the interval spans the entire segment [0, 1].
func (r Interval) Complete() bool {
	return r.Start == 0 && r.End == 1
}

// SegmentPointInterval returns the parametric sub-interval of points on
// segment b1->b2 that lie within Euclidean distance eps of point a.
//
// The interval is found by solving the quadratic A*t^2 + B*t + C = 0 for
// the boundary of the disc of radius eps around a, where
//
//	A = |b2-b1|^2
//	B = 2*(b2-b1)dot(b1-a)
//	C = |b1-a|^2 - eps^2
//
// and clamping the real roots to [0, 1]. Returns ok=false if the
// discriminant is negative or the clamped interval is degenerate-empty
// on the wrong side of the segment.
func SegmentPointInterval(a, b1, b2 Point, eps float64) (iv Interval, ok bool) {
	b2m1x := b2.X - b1.X
	b2m1y := b2.Y - b1.Y
	b1max := b1.X - a.X
	b1may := b1.Y - a.Y

	A := b2m1x*b2m1x + b2m1y*b2m1y
	B := 2 * (b2m1x*b1max + b2m1y*b1may)
	C := b1max*b1max + b1may*b1may - eps*eps

	D := B*B - 4*A*C
	if D < 0 {
		return Interval{}, false
	}
	sqrtD := math.Sqrt(D)
	t1 := (-B - sqrtD) / (2 * A)
	t2 := (-B + sqrtD) / (2 * A)
	if t2 < t1 {
		t1, t2 = t2, t1
	}
	if t2 < 0 || t1 > 1 {
		return Interval{}, false
	}
	return Interval{Start: Clamp01(t1), End: Clamp01(t2)}, true
}
