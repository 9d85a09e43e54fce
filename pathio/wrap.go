package pathio

import "context"

// Wrap attaches path to err. On success v is passed through unchanged and
// nothing is allocated; on failure the returned error is a *PathError.
func Wrap[T any](v T, err error, path string) (T, error) {
	if err != nil {
		return v, New(path, err)
	}
	return v, nil
}

// Call runs op and wraps its error with path.
func Call[T any](path string, op func() (T, error)) (T, error) {
	v, err := op()
	return Wrap(v, err, path)
}

// Apply runs op on path and wraps its error with that same path.
// It fits any function shaped like os.ReadFile or os.Open.
func Apply[T any](path string, op func(string) (T, error)) (T, error) {
	v, err := op(path)
	return Wrap(v, err, path)
}

// Do runs an operation that returns only an error and wraps it with path.
func Do(path string, op func() error) error {
	if err := op(); err != nil {
		return New(path, err)
	}
	return nil
}

// CallContext runs a context-aware op and wraps its error with path.
// When ctx is already done op is not started and ctx's error is returned,
// wrapped with path.
func CallContext[T any](ctx context.Context, path string, op func(context.Context) (T, error)) (T, error) {
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, New(path, err)
	}
	v, err := op(ctx)
	return Wrap(v, err, path)
}
