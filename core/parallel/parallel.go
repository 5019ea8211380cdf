// Package parallel fans chunked work out to one goroutine per CPU.
package parallel

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Workers returns how many chunks items would be split into.
func Workers(items int) int {
	n := runtime.NumCPU()
	if n > items {
		n = items
	}
	return n
}

// Parallelize splits [0, items) into contiguous ranges, one per worker, and
// runs fn on each concurrently. The first error cancels ctx for the
// remaining workers and is returned.
func Parallelize(ctx context.Context, items int, fn func(ctx context.Context, start, end int) error) error {
	if items == 0 {
		return nil
	}

	numWorkers := Workers(items)
	chunkSize := (items + numWorkers - 1) / numWorkers

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < numWorkers; i++ {
		start := i * chunkSize
		end := start + chunkSize
		if end > items {
			end = items
		}
		if start >= end {
			continue
		}

		g.Go(func() error {
			return fn(ctx, start, end)
		})
	}
	return g.Wait()
}

// ParallelizeWithThreshold runs fn sequentially over the whole range when
// items <= threshold and falls back to Parallelize otherwise.
func ParallelizeWithThreshold(ctx context.Context, items, threshold int, fn func(ctx context.Context, start, end int) error) error {
	if items <= threshold {
		if items == 0 {
			return nil
		}
		return fn(ctx, 0, items)
	}
	return Parallelize(ctx, items, fn)
}
