package codewing

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestFixedStepCount(t *testing.T) {
	var n int
	var dts []float64
	err := FixedStep{DT: 0.5, Ticks: 7}.Run(context.Background(), TickerFunc(func(dt float64) {
		n++
		dts = append(dts, dt)
	}))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if n != 7 {
		t.Errorf("ticks = %d, want 7", n)
	}
	for _, dt := range dts {
		if dt != 0.5 {
			t.Fatalf("dt = %v, want 0.5", dt)
		}
	}
}

func TestFixedStepDefaultDT(t *testing.T) {
	var got float64
	_ = FixedStep{Ticks: 1}.Run(context.Background(), TickerFunc(func(dt float64) { got = dt }))
	assertNear(t, "dt", got, 1.0/60)
}

func TestFixedStepCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	n := 0
	err := FixedStep{}.Run(ctx, TickerFunc(func(float64) {
		n++
		if n == 25 {
			cancel()
		}
	}))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if n != 25 {
		t.Errorf("ticks = %d, want 25", n)
	}
}

func TestIntervalStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	n := 0
	err := Interval{Period: 5 * time.Millisecond}.Run(ctx, TickerFunc(func(dt float64) {
		if dt <= 0 {
			t.Errorf("dt = %v, want positive", dt)
		}
		n++
	}))
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("err = %v, want DeadlineExceeded", err)
	}
	if n == 0 {
		t.Error("Interval never ticked")
	}
}
