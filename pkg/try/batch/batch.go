package batch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Marian1309/try-catch/pkg/try"
)

// Partial aggregates the settled outcomes of a fail-soft batch. Entries
// appear in original input order, never completion order; SuccessIndices
// and ErrorIndices map entries back to their position in the input batch
// and together partition [0, N) exactly.
type Partial[T any] struct {
	Successes      []T
	Errors         []error
	SuccessIndices []int
	ErrorIndices   []int
}

type settled[T any] struct {
	idx int
	val T
	err error
}

// All runs every operation concurrently and fails fast: the first observed
// failure cancels the context passed to the remaining operations and
// becomes the failure result, reported exactly once. If every operation
// succeeds, the success holds the values in original input order.
//
// All returns only after every operation goroutine has returned, so no
// work is left in flight; an operation that ignores cancellation delays
// the failure result until it finishes.
func All[T any](ctx context.Context, ops []try.Operation[T], opts ...try.Option) try.Result[[]T] {
	cfg := try.Apply(opts...)
	defer cfg.Finish()

	start := time.Now()
	checkOps(ops)

	if len(ops) == 0 {
		return succeed(cfg, []T{}, start)
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([]T, len(ops))
	out := launch(runCtx, ops, cfg.Limit)

	done := 0
	for res := range out {
		if res.err != nil {
			cancel()
			// wait for the cancelled siblings to settle before returning
			for range out {
			}
			cfg.Report(res.err)
			return failed[[]T](cfg, res.err, start)
		}
		results[res.idx] = res.val
		done++
		if done == len(ops) {
			break
		}
	}
	return succeed(cfg, results, start)
}

// AllSafe runs every operation concurrently and waits for all of them to
// settle; a failing operation never short-circuits its siblings. Each
// failure is normalized and reported individually. If at least one
// operation succeeded the success carries the Partial aggregate; if none
// did, the failure states the total count and wraps the joined errors.
func AllSafe[T any](ctx context.Context, ops []try.Operation[T], opts ...try.Option) try.Result[Partial[T]] {
	cfg := try.Apply(opts...)
	defer cfg.Finish()

	start := time.Now()
	checkOps(ops)

	outcomes := make([]settled[T], len(ops))
	out := launch(ctx, ops, cfg.Limit)
	for res := range out {
		outcomes[res.idx] = res
	}

	var p Partial[T]
	for i, res := range outcomes {
		if res.err != nil {
			cfg.Report(res.err)
			p.Errors = append(p.Errors, res.err)
			p.ErrorIndices = append(p.ErrorIndices, i)
			continue
		}
		p.Successes = append(p.Successes, res.val)
		p.SuccessIndices = append(p.SuccessIndices, i)
	}

	if len(ops) > 0 && len(p.Successes) == 0 {
		err := fmt.Errorf("all %d operations failed: %w", len(ops), errors.Join(p.Errors...))
		return failed[Partial[T]](cfg, err, start)
	}
	return succeed(cfg, p, start)
}

// launch starts one goroutine per operation, bounded by limit when it is
// positive, and returns a channel of settled outcomes closed after the
// last operation returns. The channel is buffered so no sender ever
// blocks on the receiver.
func launch[T any](ctx context.Context, ops []try.Operation[T], limit int) <-chan settled[T] {
	out := make(chan settled[T], len(ops))

	var sem chan struct{}
	if limit > 0 {
		sem = make(chan struct{}, limit)
	}

	var wg sync.WaitGroup
	wg.Add(len(ops))
	for i, op := range ops {
		i, op := i, op
		go func() {
			defer wg.Done()

			if sem != nil {
				select {
				case sem <- struct{}{}:
					defer func() { <-sem }()
				case <-ctx.Done():
					out <- settled[T]{idx: i, err: try.Normalize(ctx.Err())}
					return
				}
			}

			v, err := try.Attempt(ctx, op)
			out <- settled[T]{idx: i, val: v, err: err}
		}()
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func checkOps[T any](ops []try.Operation[T]) {
	for i, op := range ops {
		if op == nil {
			panic(fmt.Sprintf("try: batch operation[%d] must not be nil", i))
		}
	}
}

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
