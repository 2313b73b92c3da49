package memory

import (
	"context"
	"time"
)

// Latency is the synthetic delay every catalog read waits before answering.
type Latency time.Duration

func (l Latency) wait(ctx context.Context) error {
	if l <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(time.Duration(l))
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
