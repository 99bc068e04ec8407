package codewing

import (
	"math"
	"math/rand/v2"
)

// minScale is the floor applied to malformed shape scales.
const minScale = 0.05

// Shape is a rigid group of particles forming one silhouette. While Alive the
// shape rises and sways and its particles follow it; once broken every
// particle is simulated on its own and the shape only tracks Opacity.
type Shape struct {
	ID uint64
	// X is the current horizontal position; AnchorX the sway centre as a
	// fraction of the surface width.
	X       float64
	AnchorX float64
	BaseY   float64

	Scale         float64
	RiseSpeed     float64
	SwayPhase     float64
	SwayFrequency float64
	SwayAmplitude float64
	Opacity       float64
	State         ShapeState

	Particles []Particle

	fade      *fadeTween
	lastClock float64
}

// newShape builds a shape at anchor fraction ax (of width) and baseY using
// particles that are already size-sorted.
func newShape(id uint64, ax, width, baseY, scale float64, particles []Particle) *Shape {
	return &Shape{
		ID:        id,
		AnchorX:   ax,
		X:         ax * width,
		BaseY:     baseY,
		Scale:     sanitizeScale(scale),
		Opacity:   1,
		Particles: particles,
	}
}

// sanitizeScale maps non-finite or non-positive scales to minScale.
func sanitizeScale(scale float64) float64 {
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale < minScale {
		return minScale
	}
	return scale
}

// ParticlePos returns the absolute position of particle i.
func (s *Shape) ParticlePos(i int) (float64, float64) {
	p := &s.Particles[i]
	if p.State == Broken {
		return p.RelX, p.RelY
	}
	return s.X + p.RelX, s.BaseY + p.RelY
}

// shatter breaks the whole shape at once: every particle receives its
// absolute position and a random velocity in [-impulse, impulse] per axis.
// Returns false if the shape was already broken.
func (s *Shape) shatter(rng *rand.Rand, impulse float64) bool {
	if s.State == ShapeBroken {
		return false
	}
	s.State = ShapeBroken
	s.fade = nil
	s.Opacity = 1
	span := 2 * impulse
	for i := range s.Particles {
		p := &s.Particles[i]
		p.release(s.X+p.RelX, s.BaseY+p.RelY, centered(rng, span), centered(rng, span))
	}
	return true
}

// resize recomputes the position derived from the anchor fraction.
func (s *Shape) resize(width float64) {
	if s.State != Alive {
		return
	}
	s.X = s.AnchorX*width + s.swayOffset(s.lastClock)
}
