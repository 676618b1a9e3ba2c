package async

import (
	"context"
	"sync"
)

// Future is the eventual value of a computation running in its own goroutine.
type Future[U any] struct {
	result   U
	err      error
	panicked any
	once     sync.Once
	done     chan struct{}
}

func newFuture[U any]() *Future[U] {
	return &Future[U]{done: make(chan struct{})}
}

// Await blocks until the computation finishes. A panic raised by the
// computation is re-raised here, in the awaiting goroutine.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	if f.panicked != nil {
		panic(f.panicked)
	}
	return f.result, f.err
}

// AwaitContext is like Await but gives up when ctx is done, returning ctx.Err().
// The computation itself keeps running.
func (f *Future[U]) AwaitContext(ctx context.Context) (U, error) {
	select {
	case <-f.done:
		return f.Await()
	case <-ctx.Done():
		var zero U
		return zero, ctx.Err()
	}
}

// IsComplete reports whether the computation has finished, without blocking.
func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Done returns a channel closed when the computation finishes.
func (f *Future[U]) Done() <-chan struct{} {
	return f.done
}

func (f *Future[U]) complete(res U, err error) {
	f.once.Do(func() {
		f.result = res
		f.err = err
	})
}

// Go runs fn in a new goroutine. If ctx is already done when the goroutine
// starts, fn is skipped and the future completes with ctx.Err().
func Go[U any](ctx context.Context, fn func(context.Context) (U, error)) *Future[U] {
	f := newFuture[U]()

	go func() {
		defer close(f.done)
		defer func() {
			if p := recover(); p != nil {
				f.panicked = p
			}
		}()

		select {
		case <-ctx.Done():
			var zero U
			f.complete(zero, ctx.Err())
			return
		default:
		}

		f.complete(fn(ctx))
	}()

	return f
}

// Async is Go with an explicit parameter passed to fn.
func Async[T, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	return Go(ctx, func(ctx context.Context) (U, error) {
		return fn(ctx, param)
	})
}

// Resolved returns an already completed future.
func Resolved[U any](value U, err error) *Future[U] {
	f := newFuture[U]()
	f.complete(value, err)
	close(f.done)
	return f
}

// Settled pairs a future's value with its error.
type Settled[U any] struct {
	Value U
	Err   error
}

// WaitAllSettled waits for every future, regardless of failures, and returns
// the outcomes in argument order. Total wait time is bounded by the slowest
// future.
func WaitAllSettled[U any](futures ...*Future[U]) []Settled[U] {
	out := make([]Settled[U], len(futures))
	for i, f := range futures {
		out[i].Value, out[i].Err = f.Await()
	}
	return out
}

// WaitAll waits for every future and returns the first error encountered in
// argument order, together with all values collected so far.
func WaitAll[U any](futures ...*Future[U]) ([]U, error) {
	results := make([]U, len(futures))
	for i, f := range futures {
		res, err := f.Await()
		results[i] = res
		if err != nil {
			return results, err
		}
	}
	return results, nil
}
