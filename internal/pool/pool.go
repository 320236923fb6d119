package pool

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// cursor is a shared, mutex-guarded batch allocator: Next hands out
// successive [lo, hi) ranges of size at most batch until total is
// exhausted, then returns ok=false.
type cursor struct {
	mu    sync.Mutex
	next  int
	total int
	batch int
}

func (c *cursor) Next() (lo, hi int, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.next >= c.total {
		return 0, 0, false
	}
	lo = c.next
	hi = lo + c.batch
	if hi > c.total {
		hi = c.total
	}
	c.next = hi

	return lo, hi, true
}

// Worker processes one claimed batch [lo, hi) of the shared range. A
// single Worker instance is reused across every batch its goroutine
// claims, so implementations should hold their scratch buffers
// (simplifier buffers, I/O buffer, a private stats accumulator) as
// fields rather than allocating them per call.
type Worker interface {
	Process(ctx context.Context, lo, hi int) error
}

// Run processes [0, total) in batches of size batch, spread across
// workers concurrent goroutines via errgroup.Group.SetLimit(workers).
// newWorker is called exactly once per goroutine to build that
// goroutine's private Worker. The first error returned by any Worker
// aborts the whole run and is returned from Run; batches already
// claimed by other workers still run to completion.
//
// If workers <= 1, Run builds a single Worker and processes every batch
// on the calling goroutine, the single-thread debug path.
func Run(ctx context.Context, workers, total, batch int, newWorker func() Worker) error {
	if total <= 0 {
		return nil
	}
	c := &cursor{total: total, batch: batch}

	if workers <= 1 {
		w := newWorker()
		for {
			lo, hi, ok := c.Next()
			if !ok {
				return nil
			}
			if err := w.Process(ctx, lo, hi); err != nil {
				return err
			}
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := 0; i < workers; i++ {
		g.Go(func() error {
			w := newWorker()
			for {
				lo, hi, ok := c.Next()
				if !ok {
					return nil
				}
				if err := w.Process(gctx, lo, hi); err != nil {
					return err
				}
			}
		})
	}

	return g.Wait()
}
