package codewing

import (
	"context"
	"time"
)

// Ticker is anything advanced once per tick. *Engine implements it.
type Ticker interface {
	Update(dt float64)
}

// TickerFunc adapts a plain function to Ticker.
type TickerFunc func(dt float64)

// Update implements Ticker.
func (f TickerFunc) Update(dt float64) {
	f(dt)
}

// TickSource calls a Ticker repeatedly until it is exhausted or ctx is
// cancelled. Cancelling stops processing after the current tick.
type TickSource interface {
	Run(ctx context.Context, t Ticker) error
}

// FixedStep runs Ticks ticks back to back with a constant dt, as fast as
// possible. Ticks <= 0 runs until ctx is cancelled. Used for tests and
// offline recording.
type FixedStep struct {
	DT    float64
	Ticks int
}

// Run implements TickSource.
func (f FixedStep) Run(ctx context.Context, t Ticker) error {
	dt := f.DT
	if !(dt > 0) {
		dt = 1.0 / 60
	}
	for i := 0; f.Ticks <= 0 || i < f.Ticks; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		t.Update(dt)
	}
	return nil
}

// Interval ticks on a wall-clock period, passing the measured elapsed time
// as dt. It runs until ctx is cancelled.
type Interval struct {
	Period time.Duration
}

// Run implements TickSource.
func (iv Interval) Run(ctx context.Context, t Ticker) error {
	period := iv.Period
	if period <= 0 {
		period = time.Second / 60
	}
	tk := time.NewTicker(period)
	defer tk.Stop()
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-tk.C:
			t.Update(now.Sub(last).Seconds())
			last = now
		}
	}
}
