// Package stats collects everything the query pipeline needs to report
// about its own run: per-batch learned-ratio accumulators folded under
// a mutex as each preprocessing batch completes, Prometheus counters for the
// per-stage candidate survival rates, and a wall-clock Timings
// breakdown.
package stats
