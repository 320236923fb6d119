package cdf

import (
	"github.com/katalvlaran/subtraj/geom"
	"github.com/katalvlaran/subtraj/trajectory"
)

type qEntry struct {
	rowIndex    int
	lowestRight float64
}

// Solver holds the two swapped row-interval queues reused across
// DecidePlain calls, sized to the largest trajectory seen so far.
// Not safe for concurrent use.
type Solver struct {
	queue [2][]qEntry
	rows  int
}

// Rows returns the cumulative count of free-space diagram rows
// processed across every DecidePlain call on this Solver.
func (s *Solver) Rows() int { return s.rows }

// NewSolver returns an empty, ready-to-use Solver.
func NewSolver() *Solver {
	return &Solver{}
}

func (s *Solver) ensureCap(n int) {
	for len(s.queue[0]) < n {
		s.queue[0] = append(s.queue[0], qEntry{})
		s.queue[1] = append(s.queue[1], qEntry{})
	}
}

// DecidePlain reports whether the continuous Fréchet distance between P
// and Q is at most delta, computing only the reachable part of the
// free-space diagram and never consulting shortcuts. It is the
// shortcut-free parity twin of ShortcutSolver.Decide, kept for
// correctness comparisons rather than used on the query hot path.
func (s *Solver) DecidePlain(P, Q *trajectory.Trajectory, delta float64) bool {
	sizeP, sizeQ := P.Len(), Q.Len()
	if P.Points[0].Dist(Q.Points[0]) > delta || P.Points[sizeP-1].Dist(Q.Points[sizeQ-1]) > delta {
		return false
	}
	if sizeP <= 1 || sizeQ <= 1 {
		return false
	}

	maxLen := sizeP
	if sizeQ > maxLen {
		maxLen = sizeQ
	}
	s.ensureCap(maxLen)

	first, second := 0, 1
	var qsize [2]int
	s.queue[first][0] = qEntry{rowIndex: 0, lowestRight: 0}
	qsize[first] = 1
	qsize[second] = 0

	for column := 0; column < sizeQ-1; column++ {
		if qsize[first] == 0 {
			return false
		}
		qsize[second] = 0
		row := s.queue[first][0].rowIndex
		qIndex := 0

		for qIndex < qsize[first] {
			leftMostTop := 2.0
			for {
				s.rows++
				outside := qIndex >= qsize[first]

				rIv, rFree := geom.SegmentPointInterval(Q.Points[column+1], P.Points[row], P.Points[row+1], delta)
				if rFree {
					if leftMostTop <= 1 {
						s.queue[second][qsize[second]] = qEntry{rowIndex: row, lowestRight: rIv.Start}
						qsize[second]++
					} else if !outside && row == s.queue[first][qIndex].rowIndex && s.queue[first][qIndex].lowestRight <= rIv.End {
						lr := s.queue[first][qIndex].lowestRight
						if rIv.Start > lr {
							lr = rIv.Start
						}
						s.queue[second][qsize[second]] = qEntry{rowIndex: row, lowestRight: lr}
						qsize[second]++
					}
				}

				tIv, tFree := geom.SegmentPointInterval(P.Points[row+1], Q.Points[column], Q.Points[column+1], delta)
				if !outside && row == s.queue[first][qIndex].rowIndex {
					qIndex++
					if tFree {
						leftMostTop = tIv.Start
					} else {
						leftMostTop = 2
					}
				} else if tFree && leftMostTop <= tIv.End {
					if tIv.Start > leftMostTop {
						leftMostTop = tIv.Start
					}
				} else {
					leftMostTop = 2
				}

				row++
				if !(leftMostTop <= 1 && row < sizeP-1) {
					break
				}
			}
		}

		first, second = second, first
	}

	endIndex := qsize[first] - 1
	if endIndex < 0 {
		return false
	}

	return s.queue[first][endIndex].rowIndex == sizeP-2 && s.queue[first][endIndex].lowestRight <= 1
}
