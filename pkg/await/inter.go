package await

import "time"

type ValueProvider[T any] interface {
	// Value returns the successful result value
	Value() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithError defines an interface for types that can return a value or an error
type WithError[T any] interface {
	ValueProvider[T]
	// Err returns the error if the operation failed
	Err() error
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
}

// WithCancel extends WithError with cancellation support
type WithCancel[T any] interface {
	WithError[T]
	// IsCancel returns true if the operation was cancelled
	IsCancel() bool
}
