package tests

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Marian1309/try-catch/pkg/try"
	"github.com/Marian1309/try-catch/pkg/try/batch"
	"github.com/Marian1309/try-catch/pkg/try/chain"
	"github.com/Marian1309/try-catch/pkg/try/solo"
)

// fetchQuote simulates a flaky lookup that succeeds once the given number
// of calls has been made.
func fetchQuote(succeedOn int, calls *int) try.Operation[string] {
	return func(ctx context.Context) (string, error) {
		*calls++
		if *calls < succeedOn {
			return "", fmt.Errorf("upstream unavailable (call %d)", *calls)
		}
		return "all good", nil
	}
}

func TestRetryThenBatchPipeline(t *testing.T) {
	t.Cleanup(try.ResetGlobal)

	var reported []error
	try.SetGlobal(try.WithOnError(func(err error) {
		reported = append(reported, err)
	}))

	// a flaky single operation recovers within its retry budget
	calls := 0
	quote := solo.Run(context.Background(), fetchQuote(3, &calls),
		try.WithRetry(3, 5*time.Millisecond))

	require.True(t, quote.IsSuccess())
	assert.Equal(t, "all good", quote.Result())
	assert.Equal(t, 3, calls)
	assert.Len(t, reported, 2) // two failed attempts before success

	// a fail-soft batch over mixed outcomes
	ops := []try.Operation[string]{
		func(ctx context.Context) (string, error) { return "alpha", nil },
		func(ctx context.Context) (string, error) { return "", errors.New("beta down") },
		func(ctx context.Context) (string, error) { return "gamma", nil },
	}

	settled := batch.AllSafe(context.Background(), ops)
	require.True(t, settled.IsSuccess())

	p := settled.Result()
	assert.Equal(t, []string{"alpha", "gamma"}, p.Successes)
	assert.Equal(t, []int{0, 2}, p.SuccessIndices)
	assert.Equal(t, []int{1}, p.ErrorIndices)
	assert.Len(t, reported, 3) // one more for the failing batch entry

	// transform the aggregate with the mapping utility
	upper := try.Map(settled, func(in batch.Partial[string]) []string {
		out := make([]string, len(in.Successes))
		for i, s := range in.Successes {
			out[i] = strings.ToUpper(s)
		}
		return out
	})

	require.True(t, upper.IsSuccess())
	assert.Equal(t, []string{"ALPHA", "GAMMA"}, upper.Result())
}

func TestLocalOptionsOverrideGlobal(t *testing.T) {
	t.Cleanup(try.ResetGlobal)

	try.SetGlobal(try.WithRetry(4, 0))

	attempts := 0
	alwaysFail := func(ctx context.Context) (int, error) {
		attempts++
		return 0, errors.New("nope")
	}

	// global policy applies when no local one is given
	solo.Run(context.Background(), alwaysFail)
	assert.Equal(t, 4, attempts)

	// local policy wins
	attempts = 0
	solo.Run(context.Background(), alwaysFail, try.WithRetry(1, 0))
	assert.Equal(t, 1, attempts)
}

func TestFailFastAgainstFailSoft(t *testing.T) {
	boom := errors.New("x")
	ops := []try.Operation[int]{
		func(ctx context.Context) (int, error) { return 1, nil },
		func(ctx context.Context) (int, error) { return 0, boom },
		func(ctx context.Context) (int, error) { return 3, nil },
	}

	fast := batch.All(context.Background(), ops)
	require.True(t, fast.IsFailure())
	assert.ErrorIs(t, fast.Err(), boom)

	soft := batch.AllSafe(context.Background(), ops)
	require.True(t, soft.IsSuccess())
	assert.Equal(t, []int{1, 3}, soft.Result().Successes)
}

func TestChainOverExecutorResult(t *testing.T) {
	ctx := context.Background()

	res := solo.RunSync(ctx, func(ctx context.Context) (int, error) {
		return 12, nil
	})

	label := chain.Finally(
		chain.Map(chain.FromResult(ctx, res), func(ctx context.Context, v int) int {
			return v * 2
		}),
		func(ctx context.Context, v int) string { return fmt.Sprintf("value=%d", v) },
		func(ctx context.Context, err error) string { return "failed" },
	)

	assert.Equal(t, "value=24", label)
}
