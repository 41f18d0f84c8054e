package await

import (
	"time"

	"github.com/google/uuid"
)

type Outcome[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	isSuccess bool
	isCancel  bool
	hasValue  bool
}

func Success[T any](v T) Outcome[T] {
	return Outcome[T]{
		value:     v,
		err:       nil,
		isSuccess: true,
		isCancel:  false,
		createdAt: time.Now().UTC(),
		hasValue:  true,
		id:        uuid.New(),
	}
}

func Failure[T any](err error) Outcome[T] {
	return Outcome[T]{
		err:       err,
		isSuccess: false,
		isCancel:  false,
		createdAt: time.Now().UTC(),
		hasValue:  false,
		id:        uuid.New(),
	}
}

func Cancel[T any](err error) Outcome[T] {
	return Outcome[T]{
		err:       err,
		isSuccess: false,
		isCancel:  true,
		createdAt: time.Now().UTC(),
		hasValue:  false,
		id:        uuid.New(),
	}
}

// From carries a failed or cancelled Outcome across a type boundary,
// preserving its identity and timestamps.
func From[In, Out any](from Outcome[In]) Outcome[Out] {
	return Outcome[Out]{
		err:       from.err,
		isSuccess: from.isSuccess,
		isCancel:  from.isCancel,
		createdAt: from.createdAt,
		hasValue:  false,
		id:        from.id,
	}
}

func (o Outcome[T]) Value() T {
	return o.value
}

func (o Outcome[T]) Err() error {
	return o.err
}

func (o Outcome[T]) IsSuccess() bool {
	return o.isSuccess
}

func (o Outcome[T]) IsFailure() bool {
	return !o.isSuccess && o.err != nil
}

func (o Outcome[T]) IsCancel() bool {
	return o.isCancel
}

func (o Outcome[T]) HasValue() bool {
	return o.hasValue
}

func (o Outcome[T]) CreatedAt() time.Time {
	return o.createdAt
}

func (o Outcome[T]) IsEmpty() bool {
	return o.err == nil && !o.isCancel && !o.isSuccess
}

func (o Outcome[T]) Id() uuid.UUID {
	return o.id
}
