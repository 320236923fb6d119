// Package pool implements the worker pool shared by the preprocessing
// and query-solving phases: a fixed number of workers each loop "claim
// a batch, process it, repeat" against a shared, mutex-guarded cursor,
// rather than one goroutine per batch — so a worker's private scratch
// buffers (simplifier buffers, I/O buffer) are allocated once and
// reused across every batch it claims.
//
// The pool is built on golang.org/x/sync/errgroup so a worker's error
// aborts the whole run instead of being silently swallowed.
package pool
