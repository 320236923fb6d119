package cdf

import (
	"math"

	"github.com/katalvlaran/subtraj/geom"
	"github.com/katalvlaran/subtraj/trajectory"
)

type qsEntry struct {
	startRow, endRow int
	lowestRight      float64
}

// ShortcutSolver holds the two swapped queues used by Decide, each
// entry now spanning a run of rows rather than a single row, plus a
// cumulative row counter. Not safe for concurrent use.
type ShortcutSolver struct {
	queue [2][]qsEntry
	rows  int
}

// Rows returns the cumulative count of free-space diagram rows
// processed across every Decide call on this ShortcutSolver. Rows
// skipped by a portal jump are not counted, which is what makes the
// counter worth watching: it shrinks as the shortcuts pay off.
func (s *ShortcutSolver) Rows() int { return s.rows }

// NewShortcutSolver returns an empty, ready-to-use ShortcutSolver.
func NewShortcutSolver() *ShortcutSolver {
	return &ShortcutSolver{}
}

func (s *ShortcutSolver) ensureCap(n int) {
	for len(s.queue[0]) < n {
		s.queue[0] = append(s.queue[0], qsEntry{})
		s.queue[1] = append(s.queue[1], qsEntry{})
	}
}

func computeSegmentFrechet(p trajectory.Portal, q geom.Point, points []geom.Point) float64 {
	startSq := points[p.Source].DistSq(q)
	endSq := points[p.Destination].DistSq(q)

	return math.Sqrt(math.Max(startSq, endSq))
}

// Decide reports whether the continuous Fréchet distance between P and Q
// is at most queryDelta, using P's shortcut map (P.Shortcuts) to jump the
// row cursor ahead whenever a completed free-space run on the right edge
// lines up with a portal's source row. baseQueryDelta bounds a
// candidate jump's own simplification error separately from queryDelta:
// callers that have tightened queryDelta via triangle-inequality pruning
// (see the query package) pass the original, untightened delta here to
// avoid rejecting a jump purely because of slack introduced upstream.
// Callers with no tightening should pass the same value for both.
func (s *ShortcutSolver) Decide(P, Q *trajectory.Trajectory, queryDelta, baseQueryDelta float64) bool {
	sizeP, sizeQ := P.Len(), Q.Len()
	if P.Points[0].Dist(Q.Points[0]) > queryDelta || P.Points[sizeP-1].Dist(Q.Points[sizeQ-1]) > queryDelta {
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
	s.queue[first][0] = qsEntry{startRow: 0, endRow: 0, lowestRight: 0}
	qsize[first] = 1
	qsize[second] = 0

	// rIv persists across probes: when SegmentPointInterval reports
	// infeasible, the previous feasible interval is retained rather
	// than reset, since the jump check below reads it outside the
	// feasibility branch.
	var rIv geom.Interval

	for column := 0; column < sizeQ-1; column++ {
		if qsize[first] == 0 {
			return false
		}
		qsize[second] = 0
		row := s.queue[first][0].startRow
		qIndex := 0

		for qIndex < qsize[first] {
			leftMostTop := 2.0
			for {
				s.rows++
				outside := qIndex >= qsize[first]

				rNew, rFree := geom.SegmentPointInterval(Q.Points[column+1], P.Points[row], P.Points[row+1], queryDelta)
				if rFree {
					rIv = rNew
					if leftMostTop <= 1 {
						newLR := rIv.Start
						if rIv.Complete() && qsize[second] > 0 && s.queue[second][qsize[second]-1].endRow == row-1 {
							s.queue[second][qsize[second]-1].endRow = row
						} else {
							s.queue[second][qsize[second]] = qsEntry{startRow: row, endRow: row, lowestRight: newLR}
							qsize[second]++
						}
					} else if !outside && row >= s.queue[first][qIndex].startRow && row <= s.queue[first][qIndex].endRow {
						if !(row == s.queue[first][qIndex].startRow && s.queue[first][qIndex].lowestRight > rIv.End) {
							prevR := 0.0
							if row == s.queue[first][qIndex].startRow {
								prevR = s.queue[first][qIndex].lowestRight
							}
							newLR := math.Max(prevR, rIv.Start)
							if rIv.Complete() && newLR == 0.0 && qsize[second] > 0 && s.queue[second][qsize[second]-1].endRow == row-1 {
								s.queue[second][qsize[second]-1].endRow = row
							} else {
								s.queue[second][qsize[second]] = qsEntry{startRow: row, endRow: row, lowestRight: newLR}
								qsize[second]++
							}
						}
					}
				}

				tIv, tFree := geom.SegmentPointInterval(P.Points[row+1], Q.Points[column], Q.Points[column+1], queryDelta)
				if !outside && row <= s.queue[first][qIndex].endRow && row >= s.queue[first][qIndex].startRow {
					if row == s.queue[first][qIndex].endRow {
						qIndex++
					}
					if tFree {
						leftMostTop = tIv.Start
					} else {
						leftMostTop = 2
					}
				} else if tFree && leftMostTop <= tIv.End {
					leftMostTop = math.Max(leftMostTop, tIv.Start)
				} else {
					leftMostTop = 2
				}

				// try a portal jump
				if !outside && qsize[second] > 0 && s.queue[second][qsize[second]-1].endRow == row && rIv.End == 1 {
					gapSize := s.queue[first][qIndex].endRow - s.queue[first][qIndex].startRow
					if gapSize > 1 {
						ports := P.Shortcuts[row]
						best := -1
						for _, p := range ports {
							if p.Destination <= s.queue[first][qIndex].endRow {
								segFrechet := computeSegmentFrechet(p, Q.Points[column], P.Points)
								if segFrechet+p.Distance <= baseQueryDelta {
									best = p.Destination
								}
							} else {
								// jumps are sorted by destination; can't reach this one or any later.
								break
							}
						}
						if best != -1 {
							row = best - 1 // -1 to counter the row++ below
							s.queue[second][qsize[second]-1].endRow = row
						}
					}
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
	last := s.queue[first][endIndex]
	exit := last.startRow == sizeP-2 && last.lowestRight <= 1

	return exit || (last.endRow == sizeP-2 && last.startRow != sizeP-2)
}
