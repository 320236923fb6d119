package simplify

import (
	"math"

	"github.com/katalvlaran/subtraj/search"
	"github.com/katalvlaran/subtraj/trajectory"
)

// Ratios are the target vertex-count ratios for the four ladder levels,
// coarsest first.
var Ratios = [4]float64{0.07, 0.19, 0.24, 0.32}

const (
	// MinVertices is the floor every level's target vertex count is
	// clamped to.
	MinVertices = 20
	// Level0Max caps level 0's target. Since MinVertices already forces
	// every target to at least 20, this clamp means level 0's target is
	// always exactly 18 regardless of trajectory size.
	Level0Max = 18
	// MaxEpsilonIterations bounds the per-level epsilon bisection.
	MaxEpsilonIterations = 10
)

// RatioAccumulator collects learned epsilon/diagonal ratios observed
// while building dataset-trajectory ladders, one (sum, count) pair per
// ladder level. The worker pool gives each worker its own accumulator
// and folds them together at the join point under a mutex (see
// internal/stats); the accumulator itself is not goroutine-safe.
type RatioAccumulator struct {
	Sum   [4]float64
	Count [4]int
}

// Add records a single observed ratio for ladder level i.
func (a *RatioAccumulator) Add(level int, ratio float64) {
	a.Sum[level] += ratio
	a.Count[level]++
}

// Merge folds other into a.
func (a *RatioAccumulator) Merge(other RatioAccumulator) {
	for i := 0; i < 4; i++ {
		a.Sum[i] += other.Sum[i]
		a.Count[i] += other.Count[i]
	}
}

// Means returns the average ratio per level, falling back to Ratios[i]
// for any level i with no observations — this only matters before any
// dataset trajectory has been processed.
func (a RatioAccumulator) Means() [4]float64 {
	var out [4]float64
	for i := 0; i < 4; i++ {
		if a.Count[i] == 0 {
			out[i] = Ratios[i]
			continue
		}
		out[i] = a.Sum[i] / float64(a.Count[i])
	}
	return out
}

// BuildDatasetLadder builds the 4-level plain-Agarwal simplification
// ladder for a dataset trajectory t, storing the result on
// t.Simplifications and merging (empty) shortcuts via t.MergeShortcuts.
// Each level's epsilon is found by bisecting (diagonal/100000,
// upperBound] for up to MaxEpsilonIterations steps against the
// feasibility test "simplification still has more than target vertices",
// narrowing the upper bound for the next (finer) level to the epsilon
// just found. Observed epsilon/diagonal ratios are recorded into acc for
// later reuse when simplifying query trajectories.
func BuildDatasetLadder(t *trajectory.Trajectory, sp *Simplifier, acc *RatioAccumulator) {
	diagonal := t.Diagonal()
	lowerBound := diagonal / 100000
	upperBound := diagonal / 2
	n := t.Len()

	simps := make([]*trajectory.Trajectory, len(Ratios))
	for i, ratio := range Ratios {
		target := int(math.Ceil(ratio * float64(n)))
		if target < MinVertices {
			target = MinVertices
		}
		if i == 0 && target > Level0Max {
			target = Level0Max
		}

		var simp *trajectory.Trajectory
		f := func(eps float64) bool {
			simp = sp.Simplify(t, eps)

			return simp.Len() > target
		}
		finalEps := search.RealSearch(f, lowerBound, upperBound, MaxEpsilonIterations)
		simp.Epsilon = finalEps
		simps[i] = simp

		upperBound = finalEps
		if acc != nil {
			acc.Add(i, finalEps/diagonal)
		}
	}

	t.Simplifications = simps
	t.MergeShortcuts()
}

// BuildQueryLadder builds the 4-level progressive-Agarwal simplification
// ladder for a query trajectory: the ladder is first built directly
// against the query itself (parent == source == query), giving
// query.Shortcuts its portals; then each level i >= 1 gets a nested
// sub-ladder of i-1 levels (epsilons of levels 0..i-2), built against the
// original query, giving that level's own Shortcuts map its portals.
// Level 1's sub-ladder is empty, so level 1 (like level 0) carries no
// shortcuts of its own.
// ratios supplies the per-level epsilon as diagonal*ratio[i],
// typically RatioAccumulator.Means() learned from the dataset.
func BuildQueryLadder(query *trajectory.Trajectory, ratios [4]float64, sp *Simplifier) {
	diagonal := query.Diagonal()
	levels := len(Ratios)

	query.Simplifications = buildProgressiveLadder(query, query, diagonal, ratios[:], levels, sp)
	query.MergeShortcuts()

	for i := 1; i < levels; i++ {
		level := query.Simplifications[i]
		level.Simplifications = buildProgressiveLadder(level, query, diagonal, ratios[:], i-1, sp)
		level.MergeShortcuts()
	}
}

func buildProgressiveLadder(parent, source *trajectory.Trajectory, diagonal float64, ratios []float64, count int, sp *Simplifier) []*trajectory.Trajectory {
	out := make([]*trajectory.Trajectory, count)
	for i := 0; i < count; i++ {
		out[i] = sp.SimplifyProgressive(parent, source, diagonal*ratios[i])
	}

	return out
}
