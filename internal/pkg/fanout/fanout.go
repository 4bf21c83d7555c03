// Package fanout runs independent, I/O-bound calls concurrently with a cap on the
// number of calls in flight. It is built on golang.org/x/sync/errgroup: the first
// error cancels the shared context and is the one returned.
package fanout

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// DefaultLimit is the number of calls allowed in flight when a caller passes limit <= 0.
// It matches the largest technology set a capacity may have.
const DefaultLimit = 20

// Map calls fn for every item with at most limit calls in flight and returns the
// results in input order. On failure it returns the first error and no results.
//
// Example:
//
//	ids, err := fanout.Map(ctx, capacities, fanout.DefaultLimit,
//	    func(ctx context.Context, c *capacity.Capacity) (kernel.ID, error) {
//	        return c.ID(), detach(ctx, c)
//	    })
func Map[T, R any](
	ctx context.Context,
	items []T,
	limit int,
	fn func(context.Context, T) (R, error),
) ([]R, error) {
	results := make([]R, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(normalize(limit))

	for i, item := range items {
		g.Go(func() error {
			r, err := call(gctx, item, fn)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Collect calls fn for every item with at most limit calls in flight and returns
// the results in completion order. On failure it returns the first error together
// with the results of the calls that had already succeeded, so callers can tell
// how far a non-transactional fan-out got.
func Collect[T, R any](
	ctx context.Context,
	items []T,
	limit int,
	fn func(context.Context, T) (R, error),
) ([]R, error) {
	var (
		mu      sync.Mutex
		results = make([]R, 0, len(items))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(normalize(limit))

	for _, item := range items {
		g.Go(func() error {
			r, err := call(gctx, item, fn)
			if err != nil {
				return err
			}
			mu.Lock()
			results = append(results, r)
			mu.Unlock()
			return nil
		})
	}

	err := g.Wait()

	mu.Lock()
	defer mu.Unlock()
	return results, err
}

// call turns a panic in fn into an error so that one bad branch cannot take the
// process down halfway through a fan-out.
func call[T, R any](ctx context.Context, item T, fn func(context.Context, T) (R, error)) (r R, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("fanout: panic: %v", p)
		}
	}()
	return fn(ctx, item)
}

func normalize(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return limit
}
