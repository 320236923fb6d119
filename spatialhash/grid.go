package spatialhash

import (
	"fmt"
	"math"

	"github.com/katalvlaran/subtraj/geom"
	"github.com/katalvlaran/subtraj/trajectory"
)

// DefaultSlotsPerDimension is the grid resolution used when none is
// configured explicitly.
const DefaultSlotsPerDimension = 500

// DefaultTolerance is the numerical-representation tolerance used when
// deciding whether a coordinate sits exactly on a grid boundary.
const DefaultTolerance = 1e-5

// Grid is a uniform S x S bucket grid over a bounding box.
type Grid struct {
	slots int
	tol   float64
	bbox  geom.BoundingBox
	cells [][][]geom.Point
}

// New builds an empty grid of slots x slots cells spanning bbox.
func New(bbox geom.BoundingBox, slots int, tol float64) *Grid {
	cells := make([][][]geom.Point, slots)
	for i := range cells {
		cells[i] = make([][]geom.Point, slots)
	}

	return &Grid{slots: slots, tol: tol, bbox: bbox, cells: cells}
}

// NewDefault builds a grid at the package's default resolution and
// tolerance.
func NewDefault(bbox geom.BoundingBox) *Grid {
	return New(bbox, DefaultSlotsPerDimension, DefaultTolerance)
}

// findSlot maps val within [min, max] to a cell index along one
// dimension. With allowOverflow false, a value outside [min, max] beyond
// tol panics rather than silently clamping, since that indicates a point
// outside the grid's bounding box was inserted. With allowOverflow true
// (used for range-query bounds), out-of-range values clamp to the
// nearest edge slot.
func (g *Grid) findSlot(val, min, max float64, allowOverflow bool) int {
	var slot int
	switch {
	case math.Abs(min-val) < g.tol:
		slot = 0
	case math.Abs(max-val) < g.tol:
		slot = g.slots - 1
	default:
		step := math.Abs(max-min) / float64(g.slots)
		slot = int((val - min) / step)
	}

	if slot >= g.slots || slot < 0 {
		if !allowOverflow {
			panic(fmt.Sprintf("spatialhash: value %g out of grid bounds [%g, %g]", val, min, max))
		}
		if slot >= g.slots {
			slot = g.slots - 1
		} else {
			slot = 0
		}
	}

	return slot
}

func (g *Grid) slotX(val float64, allowOverflow bool) int {
	return g.findSlot(val, g.bbox.MinX, g.bbox.MaxX, allowOverflow)
}

func (g *Grid) slotY(val float64, allowOverflow bool) int {
	return g.findSlot(val, g.bbox.MinY, g.bbox.MaxY, allowOverflow)
}

// Insert adds a point to its cell. Panics if the point falls outside the
// grid's bounding box by more than the configured tolerance.
func (g *Grid) Insert(p geom.Point) {
	x := g.slotX(p.X, false)
	y := g.slotY(p.Y, false)
	g.cells[x][y] = append(g.cells[x][y], p)
}

// IndexTrajectories inserts every trajectory's first and last vertex
// into the grid, in dataset order. Nil slots (trajectories discarded as
// degenerate at load) are skipped.
func IndexTrajectories(g *Grid, trajectories []*trajectory.Trajectory) {
	for _, t := range trajectories {
		if t == nil {
			continue
		}
		g.Insert(t.First())
		g.Insert(t.Last())
	}
}

// RangeQuery visits every indexed point within strictly-less-than eps of
// p that shares p's IsStart flag (start points only match other start
// points, end points only match other end points).
func (g *Grid) RangeQuery(p geom.Point, eps float64, visit func(geom.Point)) {
	loX := g.slotX(p.X-eps, true)
	hiX := g.slotX(p.X+eps, true)
	loY := g.slotY(p.Y-eps, true)
	hiY := g.slotY(p.Y+eps, true)
	epsSq := eps * eps

	for i := loX; i <= hiX; i++ {
		for j := loY; j <= hiY; j++ {
			for _, q := range g.cells[i][j] {
				if q.IsStart != p.IsStart {
					continue
				}
				if q.DistSq(p) < epsSq {
					visit(q)
				}
			}
		}
	}
}

// CandidatesWithEndCheck finds every trajectory in trajectories whose
// start point lies within eps of start AND whose end point lies within
// eps of end, calling emit once per surviving candidate. trajectories
// must be indexed by geom.Point.TrajectoryID. This is the grid's
// actual query-time entry point, combining the start-point range query
// with a direct end-point distance check.
func (g *Grid) CandidatesWithEndCheck(start, end geom.Point, eps float64, trajectories []*trajectory.Trajectory, emit func(*trajectory.Trajectory)) {
	epsSq := eps * eps
	g.RangeQuery(start, eps, func(q geom.Point) {
		t := trajectories[q.TrajectoryID]
		if t.Last().DistSq(end) < epsSq {
			emit(t)
		}
	})
}
