// Package engine wires the two pipeline phases together: loading and
// simplifying the dataset, then solving queries against it. Timing is
// reported via internal/stats.Timings; learned simplification ratios
// are aggregated across workers via internal/stats.RatioJoin.
package engine
