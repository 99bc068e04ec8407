package codewing

import (
	"math"
	"math/rand/v2"
	"slices"

	"github.com/tanema/gween/ease"
)

// Swarm owns the live set of rising shapes. It spawns new shapes at random,
// advances them and drops the ones that have left the surface or faded out.
type Swarm struct {
	cfg     SwarmConfig
	rng     *rand.Rand
	sampler Sampler
	wind    *Wind

	shapes        []*Shape
	nextID        uint64
	width, height float64
}

// NewSwarm creates an empty swarm that samples shapes with a CurveSampler.
func NewSwarm(cfg SwarmConfig, rng *rand.Rand, wind *Wind) *Swarm {
	return &Swarm{
		cfg:     cfg,
		rng:     rng,
		sampler: NewCurveSampler(cfg.Curve, cfg.Vocabulary),
		wind:    wind,
	}
}

// SetSampler replaces the shape sampler.
func (sw *Swarm) SetSampler(s Sampler) {
	sw.sampler = s
}

// Config returns a pointer to the swarm's config for live tuning.
func (sw *Swarm) Config() *SwarmConfig {
	return &sw.cfg
}

// Shapes returns the live shapes. The returned slice MUST NOT be mutated.
func (sw *Swarm) Shapes() []*Shape {
	return sw.shapes
}

// Len returns the number of live shapes.
func (sw *Swarm) Len() int {
	return len(sw.shapes)
}

// ParticleCount returns the number of particles across all live shapes.
func (sw *Swarm) ParticleCount() int {
	n := 0
	for _, s := range sw.shapes {
		n += len(s.Particles)
	}
	return n
}

// maybeSpawn rolls the per-tick spawn chance.
func (sw *Swarm) maybeSpawn() *Shape {
	if sw.rng.Float64() >= sw.cfg.SpawnChance {
		return nil
	}
	return sw.Spawn()
}

// Spawn adds a shape just below the bottom edge at a random horizontal
// anchor. Returns nil while the swarm is at MaxShapes.
func (sw *Swarm) Spawn() *Shape {
	if sw.cfg.MaxShapes > 0 && len(sw.shapes) >= sw.cfg.MaxShapes {
		return nil
	}
	skew := sw.cfg.ScaleSkew
	if !(skew > 0) {
		skew = 1
	}
	r := sw.cfg.Scale
	scale := r.Min + math.Pow(sw.rng.Float64(), skew)*(r.Max-r.Min)
	ax := sw.rng.Float64()
	return sw.spawn(ax, sw.height+sw.cfg.SpawnOffset, scale)
}

// SpawnAt adds a shape whose sway centre is at x (pixels) and whose origin
// starts at y, bypassing the spawn chance but not MaxShapes.
func (sw *Swarm) SpawnAt(x, y, scale float64) *Shape {
	if sw.cfg.MaxShapes > 0 && len(sw.shapes) >= sw.cfg.MaxShapes {
		return nil
	}
	ax := 0.5
	if sw.width > 0 {
		ax = x / sw.width
	}
	return sw.spawn(ax, y, scale)
}

func (sw *Swarm) spawn(ax, baseY, scale float64) *Shape {
	scale = sanitizeScale(scale)
	var ps []Particle
	if sw.sampler != nil {
		ps = sw.sampler.Sample(sw.rng, scale)
	}
	sw.nextID++
	s := newShape(sw.nextID, ax, sw.width, baseY, scale, ps)
	s.RiseSpeed = sw.cfg.RiseSpeed.Random(sw.rng) / math.Sqrt(s.Scale)
	s.SwayPhase = sw.rng.Float64() * 2 * math.Pi
	s.SwayFrequency = sw.cfg.SwayFrequency.Random(sw.rng)
	s.SwayAmplitude = sw.cfg.SwayAmplitude.Random(sw.rng)
	if sw.width > 0 {
		s.X = ax*sw.width + s.swayOffset(0)
	}
	if s.fade = newFadeIn(sw.cfg.FadeIn, ease.OutQuad); s.fade != nil {
		s.Opacity = 0
	}
	sw.shapes = append(sw.shapes, s)
	return s
}

// step advances every shape by one tick.
func (sw *Swarm) step(clock float64, dt float32) {
	for _, s := range sw.shapes {
		s.step(clock, sw.width, dt, &sw.cfg, sw.wind)
	}
}

// prune removes expired shapes and dead particles of broken shapes. Returns
// the number of shapes removed.
func (sw *Swarm) prune() int {
	before := len(sw.shapes)
	for _, s := range sw.shapes {
		s.prune(sw.height, sw.cfg.Margin)
	}
	sw.shapes = slices.DeleteFunc(sw.shapes, func(s *Shape) bool {
		return s.expired(sw.cfg.Margin)
	})
	return before - len(sw.shapes)
}

// resize records new surface dimensions and recomputes anchored positions.
func (sw *Swarm) resize(width, height float64) {
	sw.width, sw.height = width, height
	for _, s := range sw.shapes {
		s.resize(width)
	}
}

// Reset drops every shape.
func (sw *Swarm) Reset() {
	clear(sw.shapes)
	sw.shapes = sw.shapes[:0]
}
