package common

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// RunBlocking runs one context-aware operation inside a fresh errgroup scope,
// waits for it and tears the scope down before returning
func RunBlocking[T any](parent context.Context, op func(ctx context.Context) (T, error)) (T, error) {
	g, ctx := errgroup.WithContext(parent)

	var result T
	g.Go(func() error {
		value, err := op(ctx)
		if err != nil {
			return err
		}
		result = value
		return nil
	})

	if err := g.Wait(); err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}
