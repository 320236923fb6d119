package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/subtraj/geom"
	"github.com/katalvlaran/subtraj/internal/config"
	"github.com/katalvlaran/subtraj/internal/ioutil"
	"github.com/katalvlaran/subtraj/internal/pool"
	"github.com/katalvlaran/subtraj/internal/stats"
	"github.com/katalvlaran/subtraj/spatialhash"
	"github.com/katalvlaran/subtraj/trajectory"
)

// Options is everything one subtraj run needs beyond the tunables
// already captured in config.Config.
type Options struct {
	Cfg         config.Config
	DatasetPath string
	QueriesPath string
	OutDir      string
	Metrics     *stats.Metrics // nil disables metric collection
}

func (o Options) loader() ioutil.TrajectoryLoader {
	if o.Cfg.FastIO {
		return ioutil.FastLoader{DirPrefix: o.Cfg.TrajectoryDirPrefix}
	}

	return ioutil.ScannerLoader{DirPrefix: o.Cfg.TrajectoryDirPrefix}
}

func (o Options) workers() int {
	if !o.Cfg.UseMultithread {
		return 1
	}

	return o.Cfg.Workers
}

// Run executes one complete preprocess-then-solve pass: load and
// simplify every dataset trajectory, build the spatial index, then load,
// simplify, and solve every query, writing one result-NNNNN.txt per
// query to opts.OutDir. Returns the wall-clock breakdown.
func Run(ctx context.Context, opts Options) (stats.Timings, error) {
	var timings stats.Timings
	runStart := time.Now()

	names, err := ioutil.FileDatasetParser{}.ParseDatasetFile(opts.DatasetPath)
	if err != nil {
		return timings, err
	}
	queries, err := ioutil.FileQueryParser{}.ParseQueryFile(opts.QueriesPath)
	if err != nil {
		return timings, err
	}

	preStart := time.Now()
	dataset := make([]*trajectory.Trajectory, len(names))
	join := &stats.RatioJoin{}

	loader := opts.loader()
	err = pool.Run(ctx, opts.workers(), len(names), opts.Cfg.BatchSize, func() pool.Worker {
		return newDatasetWorker(loader, names, dataset, join, opts.Cfg.SearchBase, opts.Cfg.SearchExponentStep)
	})
	if err != nil {
		return timings, fmt.Errorf("engine: preprocessing: %w", err)
	}

	bbox := geom.NewBoundingBox()
	for _, t := range dataset {
		if t == nil {
			continue
		}
		bbox.Merge(t.BBox)
	}
	grid := spatialhash.New(bbox, opts.Cfg.HashCells, opts.Cfg.HashTolerance)
	spatialhash.IndexTrajectories(grid, dataset)
	ratios := join.Means()
	if opts.Metrics != nil {
		opts.Metrics.SetLearnedRatios(ratios)
	}
	timings.Preprocessing = time.Since(preStart)

	solveStart := time.Now()
	writer := ioutil.FileResultWriter{Dir: opts.OutDir}
	err = pool.Run(ctx, opts.workers(), len(queries), opts.Cfg.BatchSize, func() pool.Worker {
		return newQueryWorker(loader, queries, ratios, writer, opts.Metrics, grid, dataset, opts.Cfg.SearchBase, opts.Cfg.SearchExponentStep)
	})
	if err != nil {
		return timings, fmt.Errorf("engine: solving queries: %w", err)
	}
	timings.Solve = time.Since(solveStart)
	timings.Total = time.Since(runStart)

	return timings, nil
}
