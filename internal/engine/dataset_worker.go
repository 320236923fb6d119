package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/subtraj/internal/ioutil"
	"github.com/katalvlaran/subtraj/internal/stats"
	"github.com/katalvlaran/subtraj/simplify"
	"github.com/katalvlaran/subtraj/trajectory"
)

// datasetWorker loads and builds the simplification ladder for one
// batch of dataset trajectories. A private simplify.Simplifier lets its
// scratch buffers outlive the batch they were allocated for, reused by
// every subsequent batch this worker claims.
type datasetWorker struct {
	loader ioutil.TrajectoryLoader
	names  []string
	out    []*trajectory.Trajectory
	join   *stats.RatioJoin

	sp *simplify.Simplifier
}

func newDatasetWorker(loader ioutil.TrajectoryLoader, names []string, out []*trajectory.Trajectory, join *stats.RatioJoin, base, step float64) *datasetWorker {
	sp := simplify.New()
	sp.Base = base
	sp.ExponentStep = step

	return &datasetWorker{loader: loader, names: names, out: out, join: join, sp: sp}
}

// Process implements pool.Worker.
func (w *datasetWorker) Process(ctx context.Context, lo, hi int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var acc simplify.RatioAccumulator
	for i := lo; i < hi; i++ {
		t, err := w.loader.LoadTrajectory(w.names[i], i)
		if errors.Is(err, trajectory.ErrDegenerate) {
			// fewer than 2 vertices after dedup; slot stays nil and the
			// trajectory never enters the spatial index.
			continue
		}
		if err != nil {
			return fmt.Errorf("engine: loading dataset trajectory %d: %w", i, err)
		}
		simplify.BuildDatasetLadder(t, w.sp, &acc)
		w.out[i] = t
	}
	w.join.Fold(acc)

	return nil
}
