package bridge

import (
	"context"
	"errors"

	"github.com/ev-ko/await/pkg/await"
	"github.com/ev-ko/await/pkg/await/future"
)

// ErrNilFuture rejects a guarded call whose body returned no future.
var ErrNilFuture = errors.New("bridge: guarded body returned nil future")

// Wrap adapts a single continuation-style call into a Future. start is
// invoked immediately with a continuation that settles the returned
// Future; a failing operation rejects it, so the error reaches await
// callers as an ordinary failed outcome instead of escaping.
func Wrap[T any](start func(cb await.Callback[T])) *future.Future[T] {
	f := future.Deferred[T]()

	var cb await.Callback[T] = func(value T, err error) {
		if err != nil {
			f.Reject(err)
			return
		}
		f.Resolve(value)
	}
	start(cb.Once())

	return f
}

// Promisify converts an operation taking (arg, continuation) into one
// returning a Future. It is the generic form of Wrap: both produce the
// same outcome for the same underlying operation.
func Promisify[A, T any](op func(arg A, cb await.Callback[T])) func(A) *future.Future[T] {
	return func(arg A) *future.Future[T] {
		return Wrap(func(cb await.Callback[T]) {
			op(arg, cb)
		})
	}
}

// Promisify2 is Promisify for two-argument operations.
func Promisify2[A, B, T any](op func(a A, b B, cb await.Callback[T])) func(A, B) *future.Future[T] {
	return func(a A, b B) *future.Future[T] {
		return Wrap(func(cb await.Callback[T]) {
			op(a, b, cb)
		})
	}
}

// Forward is the inverse adapter: it delivers the eventual outcome of a
// Future into a continuation, which counts as observing the Future. The
// continuation is invoked exactly once, on the settling goroutine.
func Forward[T any](f *future.Future[T], cb await.Callback[T]) {
	f.Settled(cb.Once())
}

// ForwardCtx forwards like Forward but gives up when ctx is done first,
// delivering ctx.Err() into the continuation. A late settlement of the
// Future is then discarded with its failure path still observed.
func ForwardCtx[T any](ctx context.Context, f *future.Future[T], cb await.Callback[T]) {
	once := cb.Once()

	f.Settled(once)
	if ctx.Done() == nil {
		return
	}

	go func() {
		select {
		case <-f.Done():
		case <-ctx.Done():
			var zero T
			once(zero, ctx.Err())
		}
	}()
}

// Guard runs a body that produces a Future where a plain continuation is
// expected and the produced Future would otherwise be discarded. Every
// failure path of the body — a panic while starting, a nil future, or
// the eventual rejection — is forwarded into cb's error channel, so the
// discarded Future can never carry an unobserved failure.
func Guard[T any](cb await.Callback[T], body func() *future.Future[T]) {
	once := cb.Once()

	var f *future.Future[T]
	func() {
		defer func() {
			if r := recover(); r != nil {
				var zero T
				once(zero, future.PanicError{Value: r})
			}
		}()
		f = body()
	}()

	if f == nil {
		// no-op after a panic: once has already delivered
		var zero T
		once(zero, ErrNilFuture)
		return
	}
	Forward(f, once)
}
