package try

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Result must keep satisfying the capability interfaces.
var _ WithElapsed[int] = Result[int]{}

func TestSuccess(t *testing.T) {
	r := Success(42)

	assert.True(t, r.IsSuccess())
	assert.False(t, r.IsFailure())
	assert.Equal(t, 42, r.Result())
	assert.NoError(t, r.Err())
	assert.False(t, r.CreatedAt().IsZero())

	_, ok := r.Elapsed()
	assert.False(t, ok)
}

func TestFail(t *testing.T) {
	boom := errors.New("boom")
	r := Fail[int](boom)

	assert.False(t, r.IsSuccess())
	assert.True(t, r.IsFailure())
	assert.Equal(t, boom, r.Err())
	assert.Zero(t, r.Result())
}

func TestTagExclusivity(t *testing.T) {
	for _, r := range []Result[int]{Success(1), Fail[int](errors.New("x"))} {
		assert.NotEqual(t, r.IsSuccess(), r.IsFailure())
	}
}

func TestElapsedConstructors(t *testing.T) {
	s := SuccessElapsed("ok", 150*time.Millisecond)
	d, ok := s.Elapsed()
	require.True(t, ok)
	assert.Equal(t, 150*time.Millisecond, d)

	f := FailElapsed[string](errors.New("x"), 20*time.Millisecond)
	d, ok = f.Elapsed()
	require.True(t, ok)
	assert.Equal(t, 20*time.Millisecond, d)
	assert.True(t, f.IsFailure())
}

func TestFailFromPreservesIdentity(t *testing.T) {
	boom := errors.New("boom")
	from := FailElapsed[int](boom, 30*time.Millisecond)

	to := FailFrom[int, string](from)

	assert.True(t, to.IsFailure())
	assert.Equal(t, boom, to.Err())
	assert.Equal(t, from.Id(), to.Id())
	assert.Equal(t, from.CreatedAt(), to.CreatedAt())

	d, ok := to.Elapsed()
	require.True(t, ok)
	assert.Equal(t, 30*time.Millisecond, d)
}

func TestMapSuccess(t *testing.T) {
	r := Map(Success(5), func(v int) int { return v * 2 })

	require.True(t, r.IsSuccess())
	assert.Equal(t, 10, r.Result())
}

func TestMapDropsElapsed(t *testing.T) {
	r := Map(SuccessElapsed(5, time.Second), func(v int) string { return "n" })

	require.True(t, r.IsSuccess())
	_, ok := r.Elapsed()
	assert.False(t, ok)
}

func TestMapFailurePassthrough(t *testing.T) {
	boom := errors.New("boom")
	from := Fail[int](boom)

	r := Map(from, func(v int) int { return v * 2 })

	require.True(t, r.IsFailure())
	assert.Equal(t, boom, r.Err())
	assert.Equal(t, from.Id(), r.Id())
}
