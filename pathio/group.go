package pathio

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// All runs op for every path concurrently. Results are returned in the order
// of paths. The first failure cancels the context handed to the remaining
// operations and is returned as a *PathError for the path that failed.
func All[T any](ctx context.Context, paths []string, op func(context.Context, string) (T, error)) ([]T, error) {
	return Limit(ctx, -1, paths, op)
}

// Limit is like All but runs at most n operations at a time.
// n <= 0 means no limit.
func Limit[T any](ctx context.Context, n int, paths []string, op func(context.Context, string) (T, error)) ([]T, error) {
	if n <= 0 {
		n = -1
	}
	results := make([]T, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(n)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			v, err := CallContext(ctx, path, func(ctx context.Context) (T, error) {
				return op(ctx, path)
			})
			if err != nil {
				return err
			}
			results[i] = v
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
