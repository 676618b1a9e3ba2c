package result

import (
	"context"

	"github.com/dmitrymomot/outcome/pkg/async"
)

// Await waits for an asynchronously produced outcome. If ctx ends first the
// outcome is an OperationCanceled failure; an error completing the future is
// classified with FromError.
func Await(ctx context.Context, f *async.Future[Result]) Result {
	r, err := f.AwaitContext(ctx)
	if err != nil {
		return FromError(err)
	}
	return r
}

// AwaitOf is the typed counterpart of Await.
func AwaitOf[T any](ctx context.Context, f *async.Future[Of[T]]) Of[T] {
	r, err := f.AwaitContext(ctx)
	if err != nil {
		return FromErrorOf[T](err)
	}
	return r
}

// MatchAsync awaits f and dispatches like Match.
func MatchAsync[U any](ctx context.Context, f *async.Future[Result], onSuccess func() U, onFailure func(Result) U) U {
	requireHandlers(handler{"onSuccess", onSuccess == nil}, handler{"onFailure", onFailure == nil})
	return Match(Await(ctx, f), onSuccess, onFailure)
}

// MatchOfAsync awaits f and dispatches like MatchOf.
func MatchOfAsync[T, U any](ctx context.Context, f *async.Future[Of[T]], onSuccess func(T) U, onFailure func(Result) U) U {
	requireHandlers(handler{"onSuccess", onSuccess == nil}, handler{"onFailure", onFailure == nil})
	return MatchOf(AwaitOf(ctx, f), onSuccess, onFailure)
}

// SwitchAsync awaits f and dispatches like Result.Switch.
func SwitchAsync(ctx context.Context, f *async.Future[Result], onSuccess func(), onFailure func(Result), includeCanceled bool) {
	requireHandlers(handler{"onSuccess", onSuccess == nil}, handler{"onFailure", onFailure == nil})
	Await(ctx, f).Switch(onSuccess, onFailure, includeCanceled)
}

// SwitchOfAsync awaits f and dispatches like Of.Switch.
func SwitchOfAsync[T any](ctx context.Context, f *async.Future[Of[T]], onSuccess func(T), onFailure func(Result), includeCanceled bool) {
	requireHandlers(handler{"onSuccess", onSuccess == nil}, handler{"onFailure", onFailure == nil})
	AwaitOf(ctx, f).Switch(onSuccess, onFailure, includeCanceled)
}

// ThenAsync continues with fn once f succeeds. Failures skip fn.
func ThenAsync[T, U any](ctx context.Context, f *async.Future[Of[T]], fn func(context.Context, T) Of[U]) *async.Future[Of[U]] {
	requireHandlers(handler{"fn", fn == nil})
	return async.Go(ctx, func(ctx context.Context) (Of[U], error) {
		r := AwaitOf(ctx, f)
		if r.IsFailure() {
			return Of[U]{outcome: r.outcome}, nil
		}
		return fn(ctx, r.value), nil
	})
}

// MapAsync transforms the value of f once it succeeds, keeping its ResultType.
// An error from fn, or an absent value, is classified with FromErrorOf.
func MapAsync[T, U any](ctx context.Context, f *async.Future[Of[T]], fn func(context.Context, T) (U, error)) *async.Future[Of[U]] {
	requireHandlers(handler{"fn", fn == nil})
	return async.Go(ctx, func(ctx context.Context) (Of[U], error) {
		r := AwaitOf(ctx, f)
		if r.IsFailure() {
			return Of[U]{outcome: r.outcome}, nil
		}
		v, err := fn(ctx, r.value)
		if err != nil {
			return FromErrorOf[U](err), nil
		}
		out, err := FromValue(v)
		if err != nil {
			return FromErrorOf[U](err), nil
		}
		out.outcome = r.outcome
		return out, nil
	})
}

// CombineAsync starts every op concurrently, waits for all of them and combines
// the outcomes in argument order. A failing or cancelled op does not stop the
// others.
func CombineAsync(ctx context.Context, ops ...func(context.Context) Result) Result {
	futures := make([]*async.Future[Result], len(ops))
	for i, op := range ops {
		requireHandlers(handler{"op", op == nil})
		futures[i] = async.Go(ctx, func(ctx context.Context) (Result, error) {
			return op(ctx), nil
		})
	}

	results := make([]Result, len(futures))
	for i, s := range async.WaitAllSettled(futures...) {
		if s.Err != nil {
			results[i] = FromError(s.Err)
			continue
		}
		results[i] = s.Value
	}
	return Combine(results...)
}

// CombineOfAsync is the typed counterpart of CombineAsync.
func CombineOfAsync[T any](ctx context.Context, ops ...func(context.Context) Of[T]) Of[T] {
	futures := make([]*async.Future[Of[T]], len(ops))
	for i, op := range ops {
		requireHandlers(handler{"op", op == nil})
		futures[i] = async.Go(ctx, func(ctx context.Context) (Of[T], error) {
			return op(ctx), nil
		})
	}

	results := make([]Of[T], len(futures))
	for i, s := range async.WaitAllSettled(futures...) {
		if s.Err != nil {
			results[i] = FromErrorOf[T](s.Err)
			continue
		}
		results[i] = s.Value
	}
	return CombineOf(results...)
}
