package try

import "context"

// Operation is a unit of work invoked by the executors. The retrying
// executor calls it afresh on every attempt, so it must be safe to invoke
// more than once.
type Operation[T any] func(ctx context.Context) (T, error)

// Attempt invokes op exactly once, converting a panic into a *PanicError
// and normalizing any returned error. The operation's own failures never
// propagate as panics out of Attempt.
func Attempt[T any](ctx context.Context, op Operation[T]) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = NewPanicError(r)
		}
	}()

	v, err = op(ctx)
	if err != nil {
		err = Normalize(err)
	}
	return v, err
}
