package track

import (
	"time"

	"github.com/google/uuid"
)

// Result is the outcome of one step. Its id is assigned when the value first
// enters the track and is kept by every step that maps it.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	isSuccess bool
	isCancel  bool
}

func Success[T any](v T) Result[T] {
	return Result[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		value:     v,
		isSuccess: true,
	}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		err:       err,
	}
}

func Cancel[T any](err error) Result[T] {
	return Result[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		err:       err,
		isCancel:  true,
	}
}

// carry moves from onto a new value type, keeping id and creation time.
func carry[In, Out any](from Result[In], v Out) Result[Out] {
	return Result[Out]{
		id:        from.id,
		createdAt: from.createdAt,
		value:     v,
		err:       from.err,
		isSuccess: from.isSuccess,
		isCancel:  from.isCancel,
	}
}

// derail keeps the failure or cancellation of from under a new value type.
func derail[In, Out any](from Result[In]) Result[Out] {
	var zero Out
	return carry(from, zero)
}

func (r Result[T]) Value() T {
	return r.value
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsCancel() bool {
	return r.isCancel
}

// IsFailure is true for failures that are not cancellations.
func (r Result[T]) IsFailure() bool {
	return !r.isSuccess && !r.isCancel
}

func (r Result[T]) ID() uuid.UUID {
	return r.id
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}
