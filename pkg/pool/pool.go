// Package pool runs units of work over a list of inputs with a cap on how many
// are in flight at once.
package pool

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Run calls fn once for every item, with at most limit calls in flight.
//
// A new call starts as soon as a running one returns, and Run returns only
// after every started call has returned. Completion order is unspecified.
// A limit below 1 is treated as 1. Once ctx is done, items that have not been
// started yet are skipped; fn is responsible for honoring ctx itself.
// fn cannot fail: per-item errors are the caller's to record.
func Run[T any](ctx context.Context, items []T, limit int, fn func(context.Context, T)) {
	if len(items) == 0 {
		return
	}
	limit = max(limit, 1)

	var g errgroup.Group
	g.SetLimit(limit)
	for _, item := range items {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			fn(ctx, item)
			return nil
		})
	}
	g.Wait() // only joins; every goroutine returns nil
}
