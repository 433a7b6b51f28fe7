package solo

import (
	"context"
	"errors"
	"time"

	"github.com/Marian1309/try-catch/pkg/try"
)

// RunSync executes op once, synchronously, within the calling context.
// Panics and returned errors become a failure result; the OnFinally hook
// runs on every exit path.
func RunSync[T any](ctx context.Context, op try.Operation[T], opts ...try.Option) try.Result[T] {
	return RunSyncSelect(ctx, op, ident[T], opts...)
}

// RunSyncSelect executes op once and applies sel to the successful value
// before wrapping it. Panics raised by sel are not recovered: they count as
// programming errors in caller-supplied code and propagate, with OnFinally
// still running.
func RunSyncSelect[T, S any](ctx context.Context, op try.Operation[T], sel func(T) S, opts ...try.Option) try.Result[S] {
	if op == nil {
		panic("try: operation must not be nil")
	}
	if sel == nil {
		panic("try: select must not be nil")
	}

	cfg := try.Apply(opts...)
	defer cfg.Finish()

	start := time.Now()

	v, err := try.Attempt(ctx, op)
	if err != nil {
		cfg.Report(err)
		return failed[S](cfg, err, start)
	}
	return succeed(cfg, sel(v), start)
}

// Run executes op with the configured retry policy: a strictly sequential
// attempt loop with a fixed pause between failed attempts. Every failed
// attempt is reported; the failure result carries the last attempt's error.
func Run[T any](ctx context.Context, op try.Operation[T], opts ...try.Option) try.Result[T] {
	return RunSelect(ctx, op, ident[T], opts...)
}

// RunSelect is Run with a transform applied to the successful value.
func RunSelect[T, S any](ctx context.Context, op try.Operation[T], sel func(T) S, opts ...try.Option) try.Result[S] {
	if op == nil {
		panic("try: operation must not be nil")
	}
	if sel == nil {
		panic("try: select must not be nil")
	}

	cfg := try.Apply(opts...)
	defer cfg.Finish()

	start := time.Now()

	attempts := cfg.Retry.Attempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		v, err := try.Attempt(ctx, op)
		if err == nil {
			return succeed(cfg, sel(v), start)
		}

		cfg.Report(err)
		lastErr = err

		if i+1 >= attempts {
			break
		}
		if cfg.Retry.Delay > 0 {
			if serr := try.Sleep(ctx, cfg.Retry.Delay); serr != nil {
				// context ended mid-pause; stop retrying
				lastErr = errors.Join(lastErr, serr)
				break
			}
		}
	}
	return failed[S](cfg, lastErr, start)
}

func ident[T any](v T) T { return v }

func succeed[S any](cfg try.Settings, v S, start time.Time) try.Result[S] {
	if cfg.Timing {
		return try.SuccessElapsed(v, time.Since(start))
	}
	return try.Success(v)
}

func failed[S any](cfg try.Settings, err error, start time.Time) try.Result[S] {
	if cfg.Timing {
		return try.FailElapsed[S](err, time.Since(start))
	}
	return try.Fail[S](err)
}
