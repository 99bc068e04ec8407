package codewing

import (
	"math"
	"sort"
)

// Particle is one glyph sprite. While Attached, RelX/RelY are an offset from
// the owner's origin and the velocity is zero. Once Broken, RelX/RelY hold an
// absolute world position and VX/VY are integrated every tick.
type Particle struct {
	RelX, RelY    float64
	VX, VY        float64
	Text          string
	Size          float64
	Alpha         float64
	Rotation      float64
	RotationSpeed float64
	Layer         Layer
	State         ParticleState
}

// Visible reports whether the particle still has opacity to draw.
func (p *Particle) Visible() bool {
	return p.Alpha > 0
}

// release converts an attached particle to Broken at the absolute position
// (x, y) with velocity (vx, vy). Broken particles are left untouched.
func (p *Particle) release(x, y, vx, vy float64) bool {
	if p.State == Broken {
		return false
	}
	p.State = Broken
	p.RelX, p.RelY = x, y
	p.VX, p.VY = vx, vy
	return true
}

// sortBySize orders particles by ascending glyph size so the renderer changes
// font size as rarely as possible. Stable, so equal sizes keep sample order.
func sortBySize(ps []Particle) {
	sort.SliceStable(ps, func(i, j int) bool { return ps[i].Size < ps[j].Size })
}

// roundSize rounds a glyph size and clamps it to at least 1 pixel.
func roundSize(v float64) float64 {
	v = math.Round(finiteOr(v, 1))
	if v < 1 {
		return 1
	}
	return v
}

// compactParticles removes particles for which keep returns false, in place,
// preserving order.
func compactParticles(ps []Particle, keep func(*Particle) bool) []Particle {
	n := 0
	for i := range ps {
		if keep(&ps[i]) {
			if n != i {
				ps[n] = ps[i]
			}
			n++
		}
	}
	clear(ps[n:])
	return ps[:n]
}
