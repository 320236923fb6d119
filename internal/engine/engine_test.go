package engine_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/subtraj/internal/config"
	"github.com/katalvlaran/subtraj/internal/engine"
	"github.com/katalvlaran/subtraj/internal/stats"
)

func writeTrajectoryFile(t *testing.T, dir, name string, points [][2]float64) string {
	t.Helper()
	var sb strings.Builder
	sb.WriteString("header\n")
	for _, p := range points {
		fmt.Fprintf(&sb, "%g %g 0 0\n", p[0], p[1])
	}
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0o600))

	return path
}

func TestRunProducesOneResultFilePerQuery(t *testing.T) {
	dir := t.TempDir()

	closeTraj := [][2]float64{{0, 0}, {2, 0.1}, {4, -0.1}, {6, 0.1}, {8, 0}, {10, 0}}
	farTraj := [][2]float64{{0, 20}, {2, 20}, {4, 20}, {6, 20}, {8, 20}, {10, 20}}
	writeTrajectoryFile(t, dir, "close.txt", closeTraj)
	writeTrajectoryFile(t, dir, "far.txt", farTraj)
	queryTraj := [][2]float64{{0, 0}, {5, 0}, {10, 0}}
	writeTrajectoryFile(t, dir, "query.txt", queryTraj)

	datasetPath := filepath.Join(dir, "dataset.txt")
	require.NoError(t, os.WriteFile(datasetPath, []byte("close.txt\nfar.txt\n"), 0o600))

	queriesPath := filepath.Join(dir, "queries.txt")
	require.NoError(t, os.WriteFile(queriesPath, []byte("query.txt 1.0\n"), 0o600))

	outDir := filepath.Join(dir, "out")
	require.NoError(t, os.Mkdir(outDir, 0o755))

	cfg := config.Default()
	cfg.TrajectoryDirPrefix = dir + string(os.PathSeparator)
	cfg.Workers = 2
	cfg.BatchSize = 1

	metrics := stats.NewMetrics(prometheus.NewRegistry())

	timings, err := engine.Run(context.Background(), engine.Options{
		Cfg:         cfg,
		DatasetPath: datasetPath,
		QueriesPath: queriesPath,
		OutDir:      outDir,
		Metrics:     metrics,
	})
	require.NoError(t, err)
	require.GreaterOrEqual(t, timings.Total, timings.Preprocessing)

	data, err := os.ReadFile(filepath.Join(outDir, "result-00000.txt"))
	require.NoError(t, err)
	require.Equal(t, "close.txt\n", string(data))
}

func TestRunSkipsDegenerateDatasetTrajectory(t *testing.T) {
	dir := t.TempDir()

	writeTrajectoryFile(t, dir, "good.txt", [][2]float64{{0, 0}, {1, 0}, {2, 0}})
	// one vertex after dedup: discarded at load, slot stays empty
	writeTrajectoryFile(t, dir, "degenerate.txt", [][2]float64{{5, 5}, {5, 5}, {5, 5}})
	writeTrajectoryFile(t, dir, "query.txt", [][2]float64{{0, 0}, {1, 0}, {2, 0}})

	datasetPath := filepath.Join(dir, "dataset.txt")
	require.NoError(t, os.WriteFile(datasetPath, []byte("good.txt\ndegenerate.txt\n"), 0o600))
	queriesPath := filepath.Join(dir, "queries.txt")
	require.NoError(t, os.WriteFile(queriesPath, []byte("query.txt 0.5\n"), 0o600))
	outDir := filepath.Join(dir, "out")
	require.NoError(t, os.Mkdir(outDir, 0o755))

	cfg := config.Default()
	cfg.TrajectoryDirPrefix = dir + string(os.PathSeparator)

	_, err := engine.Run(context.Background(), engine.Options{
		Cfg:         cfg,
		DatasetPath: datasetPath,
		QueriesPath: queriesPath,
		OutDir:      outDir,
	})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(outDir, "result-00000.txt"))
	require.NoError(t, err)
	require.Equal(t, "good.txt\n", string(data))
}

func TestRunWritesEmptyResultFileWhenNothingMatches(t *testing.T) {
	dir := t.TempDir()

	writeTrajectoryFile(t, dir, "a.txt", [][2]float64{{0, 0}, {1, 0}, {2, 0}})
	writeTrajectoryFile(t, dir, "far.txt", [][2]float64{{50, 50}, {51, 50}, {52, 50}})

	datasetPath := filepath.Join(dir, "dataset.txt")
	require.NoError(t, os.WriteFile(datasetPath, []byte("a.txt\n"), 0o600))
	queriesPath := filepath.Join(dir, "queries.txt")
	require.NoError(t, os.WriteFile(queriesPath, []byte("far.txt 1.0\n"), 0o600))
	outDir := filepath.Join(dir, "out")
	require.NoError(t, os.Mkdir(outDir, 0o755))

	cfg := config.Default()
	cfg.TrajectoryDirPrefix = dir + string(os.PathSeparator)

	_, err := engine.Run(context.Background(), engine.Options{
		Cfg:         cfg,
		DatasetPath: datasetPath,
		QueriesPath: queriesPath,
		OutDir:      outDir,
	})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(outDir, "result-00000.txt"))
	require.NoError(t, err)
	require.Empty(t, data)
}

func TestRunSingleThreadMatchesDefaultLoader(t *testing.T) {
	dir := t.TempDir()
	writeTrajectoryFile(t, dir, "a.txt", [][2]float64{{0, 0}, {1, 0}, {2, 0}})
	writeTrajectoryFile(t, dir, "q.txt", [][2]float64{{0, 0}, {1, 0}, {2, 0}})

	datasetPath := filepath.Join(dir, "dataset.txt")
	require.NoError(t, os.WriteFile(datasetPath, []byte("a.txt\n"), 0o600))
	queriesPath := filepath.Join(dir, "queries.txt")
	require.NoError(t, os.WriteFile(queriesPath, []byte("q.txt 0.5\n"), 0o600))
	outDir := filepath.Join(dir, "out")
	require.NoError(t, os.Mkdir(outDir, 0o755))

	cfg := config.Default()
	cfg.TrajectoryDirPrefix = dir + string(os.PathSeparator)
	cfg.UseMultithread = false

	_, err := engine.Run(context.Background(), engine.Options{
		Cfg:         cfg,
		DatasetPath: datasetPath,
		QueriesPath: queriesPath,
		OutDir:      outDir,
	})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(outDir, "result-00000.txt"))
	require.NoError(t, err)
	require.Equal(t, "a.txt\n", string(data))
}
