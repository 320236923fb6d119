package stats

import (
	"sync"
	"time"

	"github.com/katalvlaran/subtraj/simplify"
)

// Timings records the wall-clock breakdown of a run: the preprocessing
// phase, the query-solving phase, and the whole run end to end.
type Timings struct {
	Preprocessing time.Duration
	Solve         time.Duration
	Total         time.Duration
}

// RatioJoin folds per-worker simplify.RatioAccumulator values into one
// shared accumulator under a mutex. Each preprocessing worker keeps a
// private RatioAccumulator for each batch it processes and calls Fold
// when that batch completes; no worker ever touches another's
// accumulator.
type RatioJoin struct {
	mu    sync.Mutex
	total simplify.RatioAccumulator
}

// Fold merges worker's accumulator into the shared total.
func (j *RatioJoin) Fold(worker simplify.RatioAccumulator) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.total.Merge(worker)
}

// Means returns the learned mean ratio per ladder level, for seeding
// BuildQueryLadder once preprocessing has finished.
func (j *RatioJoin) Means() [4]float64 {
	j.mu.Lock()
	defer j.mu.Unlock()

	return j.total.Means()
}
