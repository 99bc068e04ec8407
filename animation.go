package codewing

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// fadeTween drives a shape's opacity from 0 to 1 after spawning. Shapes with
// no tween are fully opaque.
type fadeTween struct {
	tween *gween.Tween
	done  bool
}

// newFadeIn returns a fade over duration seconds using fn, or nil when the
// duration is not positive.
func newFadeIn(duration float32, fn ease.TweenFunc) *fadeTween {
	if !(duration > 0) {
		return nil
	}
	if fn == nil {
		fn = ease.OutQuad
	}
	return &fadeTween{tween: gween.New(0, 1, duration, fn)}
}

// Update advances the fade by dt seconds and returns the current opacity.
func (f *fadeTween) Update(dt float32) float64 {
	if f.done {
		return 1
	}
	v, finished := f.tween.Update(dt)
	if finished {
		f.done = true
		return 1
	}
	return clamp01(float64(v))
}

// Done reports whether the fade has reached full opacity.
func (f *fadeTween) Done() bool {
	return f.done
}
