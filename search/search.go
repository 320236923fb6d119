package search

import "math"

// IntPredicate reports whether index k still satisfies the search
// criterion. It is assumed monotone: true for every k from start up to
// some threshold, false beyond it. Implementations are free to mutate
// shared scratch buffers as they probe — see package doc.
type IntPredicate func(k int) bool

// IntDoubleSearch finds the largest k in [start, end) for which f holds,
// assuming f(start) is true. It probes k=start, then k += floor(base^(step*i))
// for i=0,1,2,..., clamped to end-1; on the first k where f is false, it
// binary-searches [prevK, k] for the boundary. If probing reaches end-1
// with f still true, end-1 is returned directly.
func IntDoubleSearch(f IntPredicate, start, end int, base float64, step float64) int {
	k := start
	prevK := start
	iteration := 0
	for {
		if k > end-1 {
			k = end - 1
		}
		if !f(k) {
			return binaryIntSearch(f, prevK, k)
		}
		if k == end-1 {
			return k
		}
		prevK = k
		k += int(math.Floor(math.Pow(base, step*float64(iteration))))
		iteration++
	}
}

// binaryIntSearch finds the largest k in [lo, hi] with f(k) true, given
// f(lo)==true and f(hi)==false.
func binaryIntSearch(f IntPredicate, lo, hi int) int {
	for hi-lo > 1 {
		mid := lo + (hi-lo)/2
		if f(mid) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}

// RealPredicate reports whether the construction built at probe value v
// should be treated as "search higher" (true) or "search lower" (false).
type RealPredicate func(v float64) bool

// RealSearch bisects (low, high] for maxIterations steps, evaluating f
// at the midpoint of the current bracket each time, narrowing toward the
// half f selects, and returns the last probed value. Unlike
// IntDoubleSearch this does not converge to an exact boundary; it
// returns whatever the bounded number of probes landed on; the ladder
// builder caps the search and accepts whatever was produced.
func RealSearch(f RealPredicate, low, high float64, maxIterations int) float64 {
	last := high
	for i := 0; i < maxIterations; i++ {
		mid := low + (high-low)/2
		last = mid
		if f(mid) {
			low = mid
		} else {
			high = mid
		}
	}
	return last
}
