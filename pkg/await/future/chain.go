package future

import (
	"github.com/ev-ko/await/pkg/await"
)

// Then derives a Future by switching the successful value through a
// function that itself returns an Outcome. Failure and cancellation pass
// through to the derived Future, which becomes the one that must be
// observed.
func Then[In, Out any](f *Future[In], onSuccess func(v In) await.Outcome[Out]) *Future[Out] {
	return derive(f, func(o await.Outcome[In]) await.Outcome[Out] {
		return await.Switch(o, onSuccess)
	})
}

// ThenTry derives a Future through a function returning (Out, error).
func ThenTry[In, Out any](f *Future[In], try func(v In) (Out, error)) *Future[Out] {
	return derive(f, func(o await.Outcome[In]) await.Outcome[Out] {
		return await.Try(o, try)
	})
}

// Map derives a Future through a pure transformation of the value.
func Map[In, Out any](f *Future[In], onSuccess func(v In) Out) *Future[Out] {
	return derive(f, func(o await.Outcome[In]) await.Outcome[Out] {
		return await.Map(o, onSuccess)
	})
}

func derive[In, Out any](f *Future[In], step func(await.Outcome[In]) await.Outcome[Out]) *Future[Out] {
	out := Deferred[Out]()
	f.markObserved()
	f.subscribe(func(o await.Outcome[In]) {
		defer func() {
			if r := recover(); r != nil {
				out.Reject(PanicError{Value: r})
			}
		}()
		out.Settle(step(o))
	})
	return out
}

// Catch registers a failure observer and counts as observing the
// outcome. It returns the receiver for chaining; the outcome itself is
// not changed.
func (f *Future[T]) Catch(onFailure func(err error)) *Future[T] {
	f.markObserved()
	f.subscribe(func(o await.Outcome[T]) {
		if o.IsFailure() || o.IsCancel() {
			onFailure(o.Err())
		}
	})
	return f
}

// Ensure runs a side effect on success without changing the outcome.
// Unlike Catch it does not count as observing a failure.
func (f *Future[T]) Ensure(onSuccess func(v T)) *Future[T] {
	f.subscribe(func(o await.Outcome[T]) {
		if o.IsSuccess() {
			onSuccess(o.Value())
		}
	})
	return f
}
