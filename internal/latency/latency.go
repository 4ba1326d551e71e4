package latency

import (
	"context"
	"time"
)

// Wait blocks for d or until ctx is done, whichever comes first. A zero or
// negative d still reports a context that is already cancelled.
func Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		// a cancel that raced the timer still wins
		return ctx.Err()
	}
}
