package simplify

import (
	"math"

	"github.com/katalvlaran/subtraj/etd"
	"github.com/katalvlaran/subtraj/geom"
	"github.com/katalvlaran/subtraj/search"
	"github.com/katalvlaran/subtraj/trajectory"
)

// Simplifier holds the scratch buffers reused across Simplify and
// SimplifyProgressive calls so repeated ladder construction over many
// trajectories does not reallocate per call. Not safe for concurrent use;
// the worker pool gives each worker its own Simplifier.
type Simplifier struct {
	// Base and ExponentStep feed search.IntDoubleSearch's exponential
	// probe phase. The 2/1 defaults are rarely worth changing.
	Base         float64
	ExponentStep float64

	points    []geom.Point
	distances []float64
	totals    []float64
	sourceIdx []int
}

// New returns a Simplifier with the default double-and-search growth
// rate.
func New() *Simplifier {
	return &Simplifier{Base: 2, ExponentStep: 1}
}

func (s *Simplifier) reset(first geom.Point, firstSourceIdx int) {
	s.points = append(s.points[:0], first)
	s.distances = append(s.distances[:0], 0)
	s.totals = append(s.totals[:0], 0)
	s.sourceIdx = append(s.sourceIdx[:0], firstSourceIdx)
}

func (s *Simplifier) ensureCap(n int) {
	for len(s.points) < n {
		s.points = append(s.points, geom.Point{})
		s.distances = append(s.distances, 0)
		s.totals = append(s.totals, 0)
		s.sourceIdx = append(s.sourceIdx, 0)
	}
}

// scratch returns a *trajectory.Trajectory view over the first n entries
// of the in-progress simplification buffer, suitable as the "q" side of
// an etd.Window call. It shares backing arrays with s, so it is only
// valid until the next probe overwrites them.
func (s *Simplifier) scratch(n int) *trajectory.Trajectory {
	return &trajectory.Trajectory{
		Points:    s.points[:n],
		Distances: s.distances[:n],
		Totals:    s.totals[:n],
	}
}

func (s *Simplifier) finish(name string, source *trajectory.Trajectory, epsilon float64, simpSize int) *trajectory.Trajectory {
	out := &trajectory.Trajectory{
		Name:        name,
		Points:      append([]geom.Point(nil), s.points[:simpSize]...),
		Distances:   append([]float64(nil), s.distances[:simpSize]...),
		Totals:      append([]float64(nil), s.totals[:simpSize]...),
		SourceIndex: append([]int(nil), s.sourceIdx[:simpSize]...),
		Source:      source,
		Epsilon:     epsilon,
	}
	out.TotalLength = out.Totals[len(out.Totals)-1]
	out.BBox = geom.NewBoundingBox()
	for _, p := range out.Points {
		out.BBox.AddPoint(p.X, p.Y)
	}
	return out
}

// Simplify builds a plain Agarwal simplification of t at the given
// epsilon: it greedily extends the simplified polyline as far as it can
// while the equal-time-distance between the simplified tail and the
// corresponding span of t stays within epsilon. It records no portals.
//
// The tentative distance/total a rejected probe writes into the scratch
// buffer is not restored when the boundary is found; the committed
// vertex's coordinates are correct but its arc-length slot keeps
// whatever the last probe left there. The double-and-search can finish
// on a rejected probe beyond the committed k (the binary phase returns
// its lower bound without probing it again), in which case the returned
// simplification's Distances/Totals entry for that vertex holds the
// rejected candidate's values.
func (s *Simplifier) Simplify(t *trajectory.Trajectory, epsilon float64) *trajectory.Trajectory {
	s.reset(t.Points[0], 0)
	simpSize := 1
	rangeStart := 1
	prevK := 0

	for {
		k := s.findMatchPlain(t, epsilon, rangeStart, t.Len(), prevK, simpSize)
		s.ensureCap(simpSize + 1)
		s.points[simpSize] = t.Points[k]
		s.sourceIdx[simpSize] = k
		simpSize++
		if k == t.Len()-1 {
			break
		}
		prevK = k
		rangeStart = k + 1
	}

	return s.finish(t.Name+"[simplified]", t, epsilon, simpSize)
}

func (s *Simplifier) findMatchPlain(t *trajectory.Trajectory, epsilon float64, start, end, prevK, simpSize int) int {
	f := func(k int) bool {
		s.ensureCap(simpSize + 1)
		s.points[simpSize] = t.Points[k]
		d := math.Hypot(t.Points[k].X-s.points[simpSize-1].X, t.Points[k].Y-s.points[simpSize-1].Y)
		s.distances[simpSize] = d
		s.totals[simpSize] = s.totals[simpSize-1] + d

		dist := etd.Window(t, s.scratch(simpSize+1), prevK, k+1, simpSize-1, simpSize+1)

		return dist <= epsilon
	}

	return search.IntDoubleSearch(f, start, end, s.Base, s.ExponentStep)
}

// SimplifyProgressive builds a simplification of parent at the given
// epsilon, judging feasibility against source's equal-time-distance
// rather than parent's — the defining difference from Simplify. Every
// probed (parent-index, candidate) pair is recorded as a Portal on the
// returned trajectory, win or lose; this is the only path that ever
// populates a trajectory's Portals/Shortcuts.
func (s *Simplifier) SimplifyProgressive(parent, source *trajectory.Trajectory, epsilon float64) *trajectory.Trajectory {
	s.reset(parent.Points[0], parent.SourceIndex[0])
	out := &trajectory.Trajectory{Name: parent.Name + "[progressive]"}
	simpSize := 1
	rangeStart := 1
	prevK := 0

	for {
		k := s.findMatchProgressive(parent, source, out, epsilon, rangeStart, parent.Len(), prevK, simpSize)
		s.ensureCap(simpSize + 1)
		s.points[simpSize] = parent.Points[k]
		s.sourceIdx[simpSize] = parent.SourceIndex[k]
		simpSize++
		if k == parent.Len()-1 {
			break
		}
		prevK = k
		rangeStart = k + 1
	}

	finished := s.finish(out.Name, source, epsilon, simpSize)
	finished.Portals = out.Portals

	return finished
}

func (s *Simplifier) findMatchProgressive(parent, source, out *trajectory.Trajectory, epsilon float64, start, end, prevK, simpSize int) int {
	f := func(k int) bool {
		s.ensureCap(simpSize + 1)
		s.points[simpSize] = parent.Points[k]
		d := math.Hypot(parent.Points[k].X-s.points[simpSize-1].X, parent.Points[k].Y-s.points[simpSize-1].Y)
		s.distances[simpSize] = d
		s.totals[simpSize] = s.totals[simpSize-1] + d

		srcStart := parent.SourceIndex[prevK]
		srcEnd := source.Len()
		if k+1 < len(parent.SourceIndex) {
			srcEnd = parent.SourceIndex[k+1]
		}

		dist := etd.Window(source, s.scratch(simpSize+1), srcStart, srcEnd, simpSize-1, simpSize+1)
		out.AddPortal(trajectory.Portal{Source: prevK, Destination: k, Distance: dist})

		return dist <= epsilon
	}

	return search.IntDoubleSearch(f, start, end, s.Base, s.ExponentStep)
}
