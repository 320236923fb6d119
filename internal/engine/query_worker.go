package engine

import (
	"context"
	"fmt"

	"github.com/katalvlaran/subtraj/internal/ioutil"
	stat "github.com/katalvlaran/subtraj/internal/stats"
	"github.com/katalvlaran/subtraj/query"
	"github.com/katalvlaran/subtraj/simplify"
	"github.com/katalvlaran/subtraj/spatialhash"
	"github.com/katalvlaran/subtraj/trajectory"
)

// queryWorker loads, simplifies, and solves one batch of queries
// against the shared, already-preprocessed dataset pipeline.
type queryWorker struct {
	loader  ioutil.TrajectoryLoader
	queries []ioutil.Query
	ratios  [4]float64
	writer  ioutil.ResultWriter
	metrics *stat.Metrics

	sp       *simplify.Simplifier
	pipeline *query.Pipeline
}

func newQueryWorker(loader ioutil.TrajectoryLoader, queries []ioutil.Query, ratios [4]float64, writer ioutil.ResultWriter, metrics *stat.Metrics, grid *spatialhash.Grid, dataset []*trajectory.Trajectory, base, step float64) *queryWorker {
	sp := simplify.New()
	sp.Base = base
	sp.ExponentStep = step

	return &queryWorker{
		loader:   loader,
		queries:  queries,
		ratios:   ratios,
		writer:   writer,
		metrics:  metrics,
		sp:       sp,
		pipeline: query.NewPipeline(grid, dataset),
	}
}

// Process implements pool.Worker.
func (w *queryWorker) Process(ctx context.Context, lo, hi int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for i := lo; i < hi; i++ {
		q := w.queries[i]

		qt, err := w.loader.LoadTrajectory(q.TrajectoryFilename, -1)
		if err != nil {
			return fmt.Errorf("engine: loading query trajectory %q: %w", q.TrajectoryFilename, err)
		}
		simplify.BuildQueryLadder(qt, w.ratios, w.sp)

		var matches []string
		st := w.pipeline.Solve(qt, q.Delta, func(t *trajectory.Trajectory) {
			matches = append(matches, t.Name)
		})
		if w.metrics != nil {
			w.metrics.Observe(st)
		}

		if err := w.writer.WriteResult(q.Number, matches); err != nil {
			return fmt.Errorf("engine: writing result for query %d: %w", q.Number, err)
		}
	}

	return nil
}
