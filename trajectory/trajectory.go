package trajectory

import (
	"sort"

	"github.com/katalvlaran/subtraj/geom"
)

// Portal is a freespace shortcut: the parent trajectory can "jump" from
// vertex Source to vertex Destination, with Distance an equal-time-distance
// upper bound on the Fréchet distance between the parent's sub-polyline
// [Source..Destination] and the single chord Source->Destination.
//
// Source < Destination always holds. Portals with Destination-Source==1
// carry no shortcut information (the chord already *is* the sub-polyline)
// and are filtered out before being stored in a shortcut map.
type Portal struct {
	Source      int
	Destination int
	Distance    float64
}

// Trajectory is a polyline together with everything derived from it:
// per-vertex cumulative arc length, a mapping back to original-vertex
// indices (identity for an original, indices into the Source trajectory
// for a simplification), an optional non-owning link to that source
// trajectory, and an owned ladder of simplifications, coarsest first.
//
// A Trajectory plays both the "original" and "simplification" roles:
// Source == nil marks an original; Source != nil marks a
// simplification, with Epsilon the tolerance it was
// built against and Portals the shortcuts observed while building it
// (populated only by the progressive simplifier, see simplify package).
type Trajectory struct {
	Name string

	Points      []geom.Point
	Distances   []float64 // Distances[i] = |P_i - P_{i-1}|, Distances[0] = 0
	Totals      []float64 // Totals[i] = sum_{j<=i} Distances[j]
	SourceIndex []int     // SourceIndex[i] = index of Points[i] in the ultimate source trajectory

	BBox        geom.BoundingBox
	TotalLength float64

	// Source is a non-owning reference to the original trajectory that
	// SourceIndex refers to. nil for an original, loaded trajectory.
	Source  *Trajectory
	Epsilon float64
	Portals []Portal

	// Simplifications is the owned, increasing-fidelity ladder built for
	// this trajectory by simplify.BuildDatasetLadder or
	// simplify.BuildQueryLadder. Empty until built.
	Simplifications []*Trajectory

	// Shortcuts aggregates every simplification's portals, keyed by
	// source vertex index on this trajectory, sorted by destination
	// ascending, deduplicated by destination, with 1-hop portals dropped.
	// Built by MergeShortcuts, which the simplify ladder builders call
	// after the ladder is complete.
	Shortcuts map[int][]Portal
}

// New builds a Trajectory from raw (x, y) points loaded for dataset slot
// id (use id < 0 for a query trajectory not part of the dataset).
// Consecutive exact-duplicate points are dropped. Returns ErrDegenerate
// if fewer than 2 points remain.
func New(name string, id int, raw [][2]float64) (*Trajectory, error) {
	t := &Trajectory{Name: name, BBox: geom.NewBoundingBox()}
	t.Distances = append(t.Distances, 0)
	t.Totals = append(t.Totals, 0)

	for _, xy := range raw {
		p := geom.Point{X: xy[0], Y: xy[1], TrajectoryID: id, IsStart: len(t.Points) == 0}
		t.BBox.AddPoint(p.X, p.Y)
		if len(t.Points) == 0 {
			t.Points = append(t.Points, p)
			t.SourceIndex = append(t.SourceIndex, 0)
			continue
		}
		prev := t.Points[len(t.Points)-1]
		if prev.X == p.X && prev.Y == p.Y {
			continue // drop exact-duplicate consecutive vertex
		}
		d := prev.Dist(p)
		t.Distances = append(t.Distances, d)
		t.Totals = append(t.Totals, t.Totals[len(t.Totals)-1]+d)
		t.Points = append(t.Points, p)
		t.SourceIndex = append(t.SourceIndex, len(t.SourceIndex))
	}

	if len(t.Points) < 2 {
		return nil, ErrDegenerate
	}
	t.TotalLength = t.Totals[len(t.Totals)-1]

	return t, nil
}

// Len returns the number of vertices.
func (t *Trajectory) Len() int { return len(t.Points) }

// First returns the trajectory's first vertex.
func (t *Trajectory) First() geom.Point { return t.Points[0] }

// Last returns the trajectory's last vertex.
func (t *Trajectory) Last() geom.Point { return t.Points[len(t.Points)-1] }

// Diagonal returns the Euclidean length of this trajectory's own
// bounding-box diagonal (distinct from the global dataset bounding box
// used by the spatial hash).
func (t *Trajectory) Diagonal() float64 { return t.BBox.Diagonal() }

// Level returns the i-th rung of the simplification ladder, or
// ErrLevelOutOfRange if i is out of bounds.
func (t *Trajectory) Level(i int) (*Trajectory, error) {
	if i < 0 || i >= len(t.Simplifications) {
		return nil, ErrLevelOutOfRange
	}
	return t.Simplifications[i], nil
}

// AddPortal appends a raw (possibly uninformative or duplicate) portal
// candidate observed while this trajectory was being built as a
// simplification. Filtering happens later, in MergeShortcuts.
func (t *Trajectory) AddPortal(p Portal) {
	t.Portals = append(t.Portals, p)
}

// MergeShortcuts folds the portals collected across every simplification
// in t.Simplifications into t.Shortcuts: portals with Destination-Source
// == 1 are dropped as uninformative, duplicates by (Source, Destination)
// are removed, and each source's bucket is sorted by Destination
// ascending. Safe to call multiple times; it always rebuilds from
// scratch so re-running a ladder builder and MergeShortcuts stays
// idempotent.
func (t *Trajectory) MergeShortcuts() {
	buckets := make(map[int]map[int]float64)
	for _, simp := range t.Simplifications {
		for _, p := range simp.Portals {
			if p.Destination-p.Source == 1 {
				continue
			}
			b, ok := buckets[p.Source]
			if !ok {
				b = make(map[int]float64)
				buckets[p.Source] = b
			}
			if _, dup := b[p.Destination]; !dup {
				b[p.Destination] = p.Distance
			}
		}
	}
	shortcuts := make(map[int][]Portal, len(buckets))
	for src, dsts := range buckets {
		list := make([]Portal, 0, len(dsts))
		for dst, dist := range dsts {
			list = append(list, Portal{Source: src, Destination: dst, Distance: dist})
		}
		sort.Slice(list, func(i, j int) bool { return list[i].Destination < list[j].Destination })
		shortcuts[src] = list
	}
	t.Shortcuts = shortcuts
}
