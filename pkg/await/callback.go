package await

import "sync"

// Callback is a continuation: an operation that cannot return its result
// directly invokes the Callback with a value or a non-nil error when it
// completes. A Callback is the single outcome channel of the operation;
// implementations must invoke it exactly once.
type Callback[T any] func(value T, err error)

// Complete delivers an Outcome into the continuation. Cancelled outcomes
// arrive on the error channel like any other failure.
func (cb Callback[T]) Complete(o Outcome[T]) {
	if o.IsSuccess() {
		cb(o.Value(), nil)
		return
	}
	var zero T
	cb(zero, o.Err())
}

// Once wraps the continuation so that only the first invocation is
// delivered. Misbehaving operations that signal completion twice do not
// reach the caller twice.
func (cb Callback[T]) Once() Callback[T] {
	var once sync.Once
	return func(value T, err error) {
		once.Do(func() {
			cb(value, err)
		})
	}
}
