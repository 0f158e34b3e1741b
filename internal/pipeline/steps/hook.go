package steps

import (
	"context"
	"time"
)

// InferenceHook runs before each stage's own logic. It stands in for model inference:
// the default adds a fixed latency, and a real backend can replace it without
// changing the stage contract.
type InferenceHook func(ctx context.Context, stepID string) error

// Delay returns a hook that waits d before every stage, or until ctx is done.
func Delay(d time.Duration) InferenceHook {
	return func(ctx context.Context, _ string) error {
		if d <= 0 {
			return nil
		}
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			return nil
		}
	}
}

// NoDelay is a hook that returns immediately.
func NoDelay(context.Context, string) error {
	return nil
}
