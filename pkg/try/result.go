package try

import (
	"time"

	"github.com/google/uuid"
)

// Result is the outcome of a wrapped operation: either a success carrying a
// value, or a failure carrying a normalized error. The success tag is the
// single source of truth for which variant a Result holds.
type Result[T any] struct {
	id         uuid.UUID
	createdAt  time.Time
	result     T
	err        error
	isSuccess  bool
	elapsed    time.Duration
	hasElapsed bool
}

func Success[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		err:       nil,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{
		err:       Normalize(err),
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// SuccessElapsed builds a success with a wall-clock measurement attached.
// Used by the executors when timing is enabled.
func SuccessElapsed[T any](r T, elapsed time.Duration) Result[T] {
	res := Success(r)
	res.elapsed = elapsed
	res.hasElapsed = true
	return res
}

// FailElapsed builds a failure with a wall-clock measurement attached.
func FailElapsed[T any](err error, elapsed time.Duration) Result[T] {
	res := Fail[T](err)
	res.elapsed = elapsed
	res.hasElapsed = true
	return res
}

// FailFrom carries a failure across a type boundary, preserving the error,
// identity, timestamp and measurement of the original result.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:        from.err,
		isSuccess:  false,
		createdAt:  from.createdAt,
		id:         from.id,
		elapsed:    from.elapsed,
		hasElapsed: from.hasElapsed,
	}
}

func (r Result[T]) Result() T {
	return r.result
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

// Elapsed returns the wall-clock duration of the originating operation and
// whether one was measured.
func (r Result[T]) Elapsed() (time.Duration, bool) {
	return r.elapsed, r.hasElapsed
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// Map transforms the value of a success and rewraps it as a fresh success;
// any measurement on the input is not carried forward. A failure passes
// through untouched.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if r.IsFailure() {
		return FailFrom[T, U](r)
	}
	return Success(fn(r.result))
}
