package shop

import (
	"context"
	"time"
)

// WaitFunc blocks for d or until ctx is done, whichever comes first.
// It returns a non-nil error only when the wait was cut short.
type WaitFunc func(ctx context.Context, d time.Duration) error

// Sleep is the WaitFunc backed by a real timer.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// NoWait returns immediately unless ctx is already done.
func NoWait(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}

// Delays are the simulated durations of the preparation steps.
type Delays struct {
	Milk  time.Duration
	Syrup time.Duration
	Brew  time.Duration
}

// DefaultDelays returns the delays used by the demo: two seconds before the
// milk, then one second for each following step.
func DefaultDelays() Delays {
	return Delays{
		Milk:  2 * time.Second,
		Syrup: time.Second,
		Brew:  time.Second,
	}
}
