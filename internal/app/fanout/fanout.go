// Package fanout runs a function across a slice of items with bounded
// concurrency, preserving input order in the results. todoctl uses Collect to
// fetch the tasks of several stories at once and Run to complete or delete
// several tasks in one invocation.
package fanout

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Result holds the outcome of processing a single item.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Value R
	Err   error
}

// Run executes fn for each item using at most maxWorkers concurrent calls and
// reports every item's outcome in input order. A failing item does not stop
// the others.
//
// If ctx is done while an item waits for a worker slot, that item records
// ctx.Err() and fn is not called for it. Calls already running are left to
// observe ctx themselves.
//
// An empty items slice yields an empty non-nil slice. A maxWorkers below one
// is treated as one.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	if len(items) == 0 {
		return []Result[R]{}
	}

	results := make([]Result[R], len(items))
	sem := semaphore.NewWeighted(int64(max(maxWorkers, 1)))
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Go(func() {
			if err := sem.Acquire(ctx, 1); err != nil {
				results[i] = Result[R]{Err: err}
				return
			}
			defer sem.Release(1)

			val, err := fn(ctx, item)
			results[i] = Result[R]{Value: val, Err: err}
		})
	}

	wg.Wait()
	return results
}

// Collect is the fail-fast form of Run: it returns the values in input order,
// or the first error, in which case the context passed to the remaining calls
// is cancelled.
func Collect[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) ([]R, error) {
	values := make([]R, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(maxWorkers, 1))

	for i, item := range items {
		g.Go(func() error {
			val, err := fn(gctx, item)
			if err != nil {
				return err
			}
			values[i] = val
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return values, nil
}
