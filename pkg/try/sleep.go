package try

import (
	"context"
	"time"
)

// Sleep pauses for d, unblocking early if ctx is done. It returns nil after
// a full pause and ctx.Err() on cancellation. A non-positive d does not
// pause at all: Sleep then returns ctx.Err(), so it never reports success
// on a context that is already done.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
