package codewing

import (
	"image"
	"math"
	"math/rand/v2"
)

// Field is a flat swarm of glyphs scattered over an image's opaque region and
// centred on the surface. There is no owning shape: clicks break individual
// particles, which then fall and fade on their own.
//
// Attached particles keep a normalized offset (unit box spans the image's
// long side) so a resize recomputes their on-screen positions.
type Field struct {
	cfg       FieldConfig
	rng       *rand.Rand
	particles []Particle
	fellBack  bool

	width, height  float64
	cx, cy, extent float64
}

// NewField samples src with an AlphaSampler. A nil or unusable src yields the
// fallback scatter rather than an empty field.
func NewField(cfg FieldConfig, rng *rand.Rand, src image.Image) *Field {
	f := &Field{cfg: cfg, rng: rng}
	f.Reseed(src)
	return f
}

// Reseed discards all particles and samples src again.
func (f *Field) Reseed(src image.Image) {
	s := NewAlphaSampler(src, f.cfg.Sampler, f.cfg.Vocabulary)
	ps, _, fellBack := s.sample(f.rng, 1)
	f.particles = ps
	f.fellBack = fellBack
}

// Config returns a pointer to the field's config for live tuning.
func (f *Field) Config() *FieldConfig {
	return &f.cfg
}

// FellBack reports whether the last sampling used the fallback scatter.
func (f *Field) FellBack() bool {
	return f.fellBack
}

// Particles returns the live particles. The returned slice MUST NOT be mutated.
func (f *Field) Particles() []Particle {
	return f.particles
}

// Len returns the number of live particles.
func (f *Field) Len() int {
	return len(f.particles)
}

// AttachedCount returns the number of particles not yet broken.
func (f *Field) AttachedCount() int {
	n := 0
	for i := range f.particles {
		if f.particles[i].State == Attached {
			n++
		}
	}
	return n
}

// ParticlePos returns the absolute position of particle i.
func (f *Field) ParticlePos(i int) (float64, float64) {
	p := &f.particles[i]
	if p.State == Broken {
		return p.RelX, p.RelY
	}
	return f.attachedPos(p)
}

func (f *Field) attachedPos(p *Particle) (float64, float64) {
	return f.cx + p.RelX*f.extent, f.cy + p.RelY*f.extent
}

// step integrates broken particles by one tick.
func (f *Field) step(clock float64) {
	for i := range f.particles {
		p := &f.particles[i]
		if p.State == Broken {
			integrateBroken(p, &f.cfg.Physics, clock, nil)
		}
	}
}

// prune drops faded particles and broken ones below the bottom margin.
// Returns the number removed.
func (f *Field) prune() int {
	before := len(f.particles)
	limit := f.height + f.cfg.Margin
	f.particles = compactParticles(f.particles, func(p *Particle) bool {
		if p.Alpha <= 0 {
			return false
		}
		return p.State == Attached || p.RelY <= limit
	})
	return before - len(f.particles)
}

// resize recentres the field; attached positions follow automatically and
// broken particles keep their absolute positions.
func (f *Field) resize(width, height float64) {
	f.width, f.height = width, height
	f.cx, f.cy = width/2, height/2
	f.extent = f.cfg.Extent * math.Min(width, height)
}
