package async

import (
	"context"
	"errors"
	"sync"
)

// Future is the pending result of a function started with Go.
type Future[T any] struct {
	done   chan struct{}
	result T
	err    error
}

// Go runs fn in its own goroutine. A context that is already done yields
// its error without calling fn.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		if err := ctx.Err(); err != nil {
			f.err = err
			return
		}
		f.result, f.err = fn(ctx)
	}()
	return f
}

// Await blocks until the future completes or ctx is done.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		var zero T
		return zero, errors.Join(ErrAwaitCancelled, ctx.Err())
	}
}

// Done reports whether the future has completed without blocking.
func (f *Future[T]) Done() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// WaitAll waits for every future. Results keep the order of futures; all
// errors are joined.
func WaitAll[T any](ctx context.Context, futures ...*Future[T]) ([]T, error) {
	results := make([]T, len(futures))
	var errs []error
	for i, f := range futures {
		res, err := f.Await(ctx)
		results[i] = res
		if err != nil {
			errs = append(errs, err)
		}
	}
	return results, errors.Join(errs...)
}

// Map calls fn for every input with at most limit calls running at once.
// A non-positive limit runs everything concurrently. Results keep input
// order and errors are joined.
func Map[In, Out any](ctx context.Context, inputs []In, limit int, fn func(context.Context, In) (Out, error)) ([]Out, error) {
	if limit <= 0 || limit > len(inputs) {
		limit = len(inputs)
	}

	results := make([]Out, len(inputs))
	errs := make([]error, len(inputs))
	sem := make(chan struct{}, max(limit, 1))

	var wg sync.WaitGroup
	for i, in := range inputs {
		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			errs[i] = ctx.Err()
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			results[i], errs[i] = fn(ctx, in)
		}()
	}
	wg.Wait()

	return results, errors.Join(errs...)
}
