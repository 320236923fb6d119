package etd

import (
	"math"

	"github.com/katalvlaran/subtraj/trajectory"
)

// Evaluate returns the equal-time-distance between the full extents of p
// and q.
func Evaluate(p, q *trajectory.Trajectory) float64 {
	return Window(p, q, 0, p.Len(), 0, q.Len())
}

// Window returns the equal-time-distance between the sub-polyline of p
// spanning vertex indices [pStart, pEnd) and the sub-polyline of q
// spanning [qStart, qEnd).
//
// Both windows are walked at a common parameter s from 0 to 1,
// proportional to arc length within the window; at each step the cursor
// whose next vertex event fires first is advanced and the other side is
// linearly interpolated within its current segment. The maximum squared
// pointwise distance encountered (including both endpoints) is returned
// as its square root.
//
// If either window has zero arc length, the result is the larger of the
// start-point and end-point distances (a segment collapsed to a point
// can only be compared pointwise).
func Window(p, q *trajectory.Trajectory, pStart, pEnd, qStart, qEnd int) float64 {
	pOffset := p.Totals[pStart]
	qOffset := q.Totals[qStart]
	pDist := p.Totals[pEnd-1] - pOffset
	qDist := q.Totals[qEnd-1] - qOffset

	startSq := p.Points[pStart].DistSq(q.Points[qStart])
	endSq := p.Points[pEnd-1].DistSq(q.Points[qEnd-1])
	maxSq := math.Max(startSq, endSq)

	if pDist == 0 || qDist == 0 {
		return math.Sqrt(maxSq)
	}

	pScale := qDist / pDist
	pPtr := pStart + 1
	qPtr := qStart + 1
	position := 0.0

	for !(pPtr == pEnd-1 && qPtr == qEnd-1) {
		posP := position * pDist
		posQ := position * qDist
		nextDistP := p.Totals[pPtr] - pOffset - posP
		nextDistQ := q.Totals[qPtr] - qOffset - posQ
		if pPtr == pEnd-1 {
			nextDistP = math.MaxFloat64
		}
		if qPtr == qEnd-1 {
			nextDistQ = math.MaxFloat64
		}

		var pPt, qPt struct{ X, Y float64 }
		if nextDistP*pScale < nextDistQ {
			pPt.X, pPt.Y = p.Points[pPtr].X, p.Points[pPtr].Y
			position = (p.Totals[pPtr] - pOffset) / pDist
			scale := (position*qDist - (q.Totals[qPtr-1] - qOffset)) / q.Distances[qPtr]
			dx := q.Points[qPtr].X - q.Points[qPtr-1].X
			dy := q.Points[qPtr].Y - q.Points[qPtr-1].Y
			qPt.X = q.Points[qPtr-1].X + dx*scale
			qPt.Y = q.Points[qPtr-1].Y + dy*scale
			pPtr++
		} else {
			qPt.X, qPt.Y = q.Points[qPtr].X, q.Points[qPtr].Y
			position = (q.Totals[qPtr] - qOffset) / qDist
			scale := (position*pDist - (p.Totals[pPtr-1] - pOffset)) / p.Distances[pPtr]
			dx := p.Points[pPtr].X - p.Points[pPtr-1].X
			dy := p.Points[pPtr].Y - p.Points[pPtr-1].Y
			pPt.X = p.Points[pPtr-1].X + dx*scale
			pPt.Y = p.Points[pPtr-1].Y + dy*scale
			qPtr++
		}

		dx := pPt.X - qPt.X
		dy := pPt.Y - qPt.Y
		if nm := dx*dx + dy*dy; nm > maxSq {
			maxSq = nm
		}
	}

	// final cursor positions; redundant with startSq/endSq when the loop
	// runs to completion.
	if nm := p.Points[pPtr].DistSq(q.Points[qPtr]); nm > maxSq {
		maxSq = nm
	}

	return math.Sqrt(maxSq)
}
