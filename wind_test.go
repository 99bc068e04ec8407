package codewing

import "testing"

func TestNewWindCalm(t *testing.T) {
	w := NewWind(WindConfig{Strength: 0})
	if w != nil {
		t.Fatal("zero strength should return nil")
	}
	if f := w.Force(10, 10, 5); f != 0 {
		t.Errorf("nil wind force = %v, want 0", f)
	}
}

func TestWindDeterministicAndBounded(t *testing.T) {
	cfg := DefaultConfig().Wind
	cfg.Strength = 0.5
	a, b := NewWind(cfg), NewWind(cfg)
	varied := false
	first := a.Force(0, 0, 0)
	for i := 0; i < 100; i++ {
		x, y, c := float64(i*37), float64(i*11), float64(i)
		fa, fb := a.Force(x, y, c), b.Force(x, y, c)
		if fa != fb {
			t.Fatalf("same seed differs at %d: %v vs %v", i, fa, fb)
		}
		// Three octaves sum to at most 1.75 times the strength.
		if fa < -2*cfg.Strength || fa > 2*cfg.Strength {
			t.Fatalf("force %v out of range for strength %v", fa, cfg.Strength)
		}
		if fa != first {
			varied = true
		}
	}
	if !varied {
		t.Error("wind force is constant")
	}
}

func TestWindPushesBrokenParticles(t *testing.T) {
	cfg := DefaultConfig().Wind
	cfg.Strength = 2
	w := NewWind(cfg)
	ph := BrokenPhysics{Friction: 1}
	p := Particle{RelX: 123, RelY: 45, Alpha: 1, State: Broken}
	want := w.Force(123, 45, 7)
	integrateBroken(&p, &ph, 7, w)
	assertNear(t, "VX", p.VX, want)
}
