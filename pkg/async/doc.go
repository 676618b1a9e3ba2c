// Package async provides a small generic Future used by the outcome and
// validation packages to run rule evaluations and outcome producers
// concurrently.
//
// A Future is obtained from Go or Async, which start the supplied function in
// its own goroutine and return immediately. Callers wait with Await, bound the
// wait with AwaitContext, or poll with IsComplete. WaitAllSettled collects
// every result without stopping at the first failure, which is what outcome
// aggregation needs; WaitAll stops at the first error.
//
// # Usage
//
//	f := async.Go(ctx, func(ctx context.Context) (int, error) {
//	    return lookup(ctx, "answer")
//	})
//	v, err := f.AwaitContext(ctx)
//
// # Error Handling
//
// Errors returned by the callback are handed back unchanged. When the context
// is already cancelled before the goroutine runs, the callback is skipped and
// the future completes with ctx.Err(). A panic inside the callback is captured
// and re-raised by Await in the caller's goroutine.
package async
