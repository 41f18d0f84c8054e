package future

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/ev-ko/await/pkg/await"
)

// A Future is a deferred result: a placeholder returned immediately by an
// operation that will later settle to exactly one await.Outcome. The first
// call to Resolve, Reject or Settle wins; every observer sees that same
// outcome, no matter when it attaches.
//
// A Future whose settled outcome is a failure must be observed — through
// Await, OutcomeCtx, Catch, Settled or Discard — before it is dropped.
// A rejected Future that is garbage collected with no observer is
// reported through the package's unobserved-failure handler, because at
// that point no code can ever react to the error.
type Future[T any] struct {
	mu       sync.Mutex
	done     chan struct{}
	out      await.Outcome[T]
	settled  bool
	observed bool
	subs     []func(await.Outcome[T])
}

// A PanicError is the rejection reason of a Future whose executor or
// chained function panicked instead of returning.
type PanicError struct {
	Value any
}

func (e PanicError) Error() string {
	return fmt.Sprintf("future: recovered panic: %v", e.Value)
}

// Deferred creates an unsettled Future to be settled manually via
// Resolve or Reject.
func Deferred[T any]() *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	runtime.SetFinalizer(f, (*Future[T]).reportIfUnobserved)
	return f
}

// New runs the executor on its own goroutine and returns the Future it
// settles. The executor body is wrapped in a universal recover: a panic
// on any path rejects the Future with a PanicError instead of crashing
// the goroutine, so no failure can escape the returned Future.
func New[T any](executor func(resolve func(v T), reject func(err error))) *Future[T] {
	f := Deferred[T]()

	go func() {
		defer func() {
			if r := recover(); r != nil {
				f.Reject(PanicError{Value: r})
			}
		}()
		executor(func(v T) { f.Resolve(v) }, func(err error) { f.Reject(err) })
	}()

	return f
}

// Resolved returns a Future already settled with the given value.
func Resolved[T any](v T) *Future[T] {
	f := Deferred[T]()
	f.Resolve(v)
	return f
}

// Rejected returns a Future already settled with the given failure.
func Rejected[T any](err error) *Future[T] {
	f := Deferred[T]()
	f.Reject(err)
	return f
}

// Resolve settles the Future successfully. It reports whether this call
// performed the settlement; later calls have no effect.
func (f *Future[T]) Resolve(v T) bool {
	return f.settle(await.Success(v))
}

// Reject settles the Future with a failure. Cancellation errors settle
// as cancelled outcomes. Later calls have no effect.
func (f *Future[T]) Reject(err error) bool {
	if await.IsCancellation(err) {
		return f.settle(await.Cancel[T](err))
	}
	return f.settle(await.Failure[T](err))
}

// Settle applies a ready Outcome to the Future.
func (f *Future[T]) Settle(o await.Outcome[T]) bool {
	return f.settle(o)
}

func (f *Future[T]) settle(o await.Outcome[T]) bool {
	f.mu.Lock()
	if f.settled {
		f.mu.Unlock()
		return false
	}
	f.out = o
	f.settled = true
	subs := f.subs
	f.subs = nil
	close(f.done)
	f.mu.Unlock()

	for _, sub := range subs {
		sub(o)
	}
	return true
}

// subscribe registers fn to run once with the settled outcome. If the
// Future is already settled, fn runs inline on the caller's goroutine;
// otherwise it runs on the settling goroutine.
func (f *Future[T]) subscribe(fn func(await.Outcome[T])) {
	f.mu.Lock()
	if f.settled {
		o := f.out
		f.mu.Unlock()
		fn(o)
		return
	}
	f.subs = append(f.subs, fn)
	f.mu.Unlock()
}

func (f *Future[T]) markObserved() {
	f.mu.Lock()
	f.observed = true
	f.mu.Unlock()
}

// Await blocks until the Future settles or ctx is done, whichever comes
// first, and counts as observing the outcome.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	f.markObserved()

	select {
	case <-f.done:
		o := f.out
		if o.IsSuccess() {
			return o.Value(), nil
		}
		var zero T
		return zero, o.Err()
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// OutcomeCtx is Await in Outcome form. When ctx wins, the result is a
// cancelled Outcome carrying ctx.Err(); the Future itself stays as it is.
func (f *Future[T]) OutcomeCtx(ctx context.Context) await.Outcome[T] {
	f.markObserved()

	select {
	case <-f.done:
		return f.out
	case <-ctx.Done():
		return await.Cancel[T](ctx.Err())
	}
}

// Done is closed when the Future settles.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Settled forwards the eventual outcome into a continuation and counts
// as observing it. The continuation is invoked exactly once.
func (f *Future[T]) Settled(cb await.Callback[T]) {
	f.markObserved()
	f.subscribe(func(o await.Outcome[T]) {
		cb.Complete(o)
	})
}

// Discard attaches a failure observer and drops the Future. Use it when
// a calling convention forces discarding a deferred result: the eventual
// failure, if any, goes to the unobserved-failure handler deliberately
// instead of surfacing as a leak at collection time.
func (f *Future[T]) Discard() {
	f.markObserved()
	f.subscribe(func(o await.Outcome[T]) {
		if o.IsFailure() || o.IsCancel() {
			report(o.Id(), o.Err())
		}
	})
}

// reportIfUnobserved runs as the finalizer. Settlement and observation
// are both final by collection time, so no lock ordering issue exists
// with a live settle call.
func (f *Future[T]) reportIfUnobserved() {
	f.mu.Lock()
	leaked := f.settled && !f.observed && (f.out.IsFailure() || f.out.IsCancel())
	o := f.out
	f.mu.Unlock()

	if leaked {
		report(o.Id(), o.Err())
	}
}
