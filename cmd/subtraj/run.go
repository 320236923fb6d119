package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/subtraj/internal/config"
	"github.com/katalvlaran/subtraj/internal/engine"
	"github.com/katalvlaran/subtraj/internal/stats"
)

var (
	flagDataset      string
	flagQueries      string
	flagOut          string
	flagWorkers      int
	flagSingleThread bool
	flagFastIO       bool
	flagConfig       string
	flagMetricsAddr  string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Preprocess a dataset and solve a batch of queries against it",
	RunE:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagDataset, "dataset", "", "path to the dataset file (required)")
	runCmd.Flags().StringVar(&flagQueries, "queries", "", "path to the query file (required)")
	runCmd.Flags().StringVar(&flagOut, "out", ".", "directory to write result-NNNNN.txt files to")
	runCmd.Flags().IntVar(&flagWorkers, "workers", 0, "worker-pool size (0 = use config/default)")
	runCmd.Flags().BoolVar(&flagSingleThread, "single-thread", false, "disable the worker pool and run everything on one goroutine")
	runCmd.Flags().BoolVar(&flagFastIO, "fast-io", false, "use the hand-tokenizing trajectory loader instead of the bufio.Scanner one")
	runCmd.Flags().StringVar(&flagConfig, "config", "", "optional YAML config file overriding the defaults")
	runCmd.Flags().StringVar(&flagMetricsAddr, "metrics-addr", "", "if set, serve Prometheus metrics on this address (e.g. :9090) for the duration of the run")

	_ = runCmd.MarkFlagRequired("dataset")
	_ = runCmd.MarkFlagRequired("queries")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if flagConfig != "" {
		loaded, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if flagWorkers > 0 {
		cfg.Workers = flagWorkers
	}
	if flagSingleThread {
		cfg.UseMultithread = false
	}
	if flagFastIO {
		cfg.FastIO = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(flagOut, 0o755); err != nil {
		return fmt.Errorf("subtraj: creating output dir %s: %w", flagOut, err)
	}

	reg := prometheus.NewRegistry()
	metrics := stats.NewMetrics(reg)

	var srv *http.Server
	if flagMetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		srv = &http.Server{Addr: flagMetricsAddr, Handler: mux}
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				fmt.Fprintf(os.Stderr, "subtraj: metrics server: %v\n", err)
			}
		}()
	}

	timings, err := engine.Run(context.Background(), engine.Options{
		Cfg:         cfg,
		DatasetPath: flagDataset,
		QueriesPath: flagQueries,
		OutDir:      flagOut,
		Metrics:     metrics,
	})

	if srv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}

	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "preprocessing: %s  solve: %s  total: %s\n",
		timings.Preprocessing, timings.Solve, timings.Total)

	return nil
}
