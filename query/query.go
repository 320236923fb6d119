package query

import (
	"github.com/katalvlaran/subtraj/cdf"
	"github.com/katalvlaran/subtraj/etd"
	"github.com/katalvlaran/subtraj/spatialhash"
	"github.com/katalvlaran/subtraj/trajectory"
)

// Verdict is the outcome of a single pruning stage against one
// candidate.
type Verdict int

const (
	// Maybe means the stage could not resolve the candidate; pass it to
	// the next stage.
	Maybe Verdict = iota
	// Yes means the candidate is definitely within the threshold.
	Yes
	// No means the candidate is definitely outside the threshold.
	No
)

// Stats counts how many candidates survived each pruning stage of one
// Solve call, plus the free-space diagram rows the decision-Fréchet
// solver processed while resolving them.
type Stats struct {
	DiHash         int // candidates that passed the spatial-hash gate
	Simplification int // of those, candidates not resolved by the ladder
	EqualTime      int // of those, candidates not resolved by ETD
	Results        int // total matches emitted
	CDFRows        int // free-space rows processed by the CDF solver
}

// Pipeline holds the per-worker state needed to solve queries against a
// fixed, already-preprocessed dataset: the spatial index, the dataset
// itself, and a reusable CDF solver. Not safe for concurrent use —
// give each worker its own Pipeline sharing Grid and Dataset.
type Pipeline struct {
	Grid    *spatialhash.Grid
	Dataset []*trajectory.Trajectory
	Solver  *cdf.ShortcutSolver
}

// NewPipeline returns a Pipeline with a fresh CDF solver ready for reuse
// across many Solve calls.
func NewPipeline(grid *spatialhash.Grid, dataset []*trajectory.Trajectory) *Pipeline {
	return &Pipeline{Grid: grid, Dataset: dataset, Solver: cdf.NewShortcutSolver()}
}

// Solve finds every dataset trajectory within delta of query under the
// continuous Fréchet distance, calling emit once per match, and returns
// stage survival counts for diagnostics.
func (p *Pipeline) Solve(query *trajectory.Trajectory, delta float64, emit func(*trajectory.Trajectory)) Stats {
	var stats Stats
	rowsBefore := p.Solver.Rows()

	p.Grid.CandidatesWithEndCheck(query.First(), query.Last(), delta, p.Dataset, func(t *trajectory.Trajectory) {
		stats.DiHash++

		switch p.pruneWithSimplifications(query, t, delta) {
		case Yes:
			stats.Results++
			emit(t)
		case No:
			// resolved, discard
		case Maybe:
			stats.Simplification++
			if p.pruneWithEqualTime(query, t, delta) {
				stats.Results++
				emit(t)
				return
			}
			stats.EqualTime++
			if p.pruneWithDecisionFrechet(query, t, delta) {
				stats.Results++
				emit(t)
			}
		}
	})
	stats.CDFRows = p.Solver.Rows() - rowsBefore

	return stats
}

// pruneWithSimplifications walks the simplification ladder from
// coarsest to finest, tightening the decision threshold by each level's
// pair of simplification epsilons (triangle inequality) and asking the
// shortcut-aware CDF solver to confirm or refute at the tightened
// bounds. The CDF solver is always invoked with the query-side
// simplification first, since only query simplifications carry a
// populated shortcut map (see the simplify package).
func (p *Pipeline) pruneWithSimplifications(query, t *trajectory.Trajectory, delta float64) Verdict {
	for i := range query.Simplifications {
		qSimp := query.Simplifications[i]
		tSimp := t.Simplifications[i]

		lower := delta - qSimp.Epsilon - tSimp.Epsilon
		upper := delta + qSimp.Epsilon + tSimp.Epsilon

		if etd.Evaluate(tSimp, qSimp) < lower {
			return Yes
		}

		if lower > 0 && p.Solver.Decide(qSimp, tSimp, lower, delta) {
			return Yes
		}

		if upper > 0 && !p.Solver.Decide(qSimp, tSimp, upper, delta) {
			return No
		}
	}

	return Maybe
}

// pruneWithEqualTime uses the equal-time-distance between the original
// (unsimplified) polylines as an upper bound on the true Fréchet
// distance: if it already clears delta, the candidate is a confirmed
// match without running the full CDF solver.
func (p *Pipeline) pruneWithEqualTime(query, t *trajectory.Trajectory, delta float64) bool {
	return etd.Evaluate(t, query) < delta
}

// pruneWithDecisionFrechet is the final, conclusive stage: a full
// decision-Fréchet computation between the query and the candidate's
// original polylines.
func (p *Pipeline) pruneWithDecisionFrechet(query, t *trajectory.Trajectory, delta float64) bool {
	return p.Solver.Decide(query, t, delta, delta)
}
