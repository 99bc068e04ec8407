package codewing

import (
	"github.com/aquilax/go-perlin"
)

// Wind samples a slowly drifting Perlin field as a lateral force on broken
// swarm particles.
type Wind struct {
	noise    *perlin.Perlin
	strength float64
	scale    float64
	drift    float64
}

// NewWind returns a wind field, or nil when cfg.Strength is zero.
func NewWind(cfg WindConfig) *Wind {
	if cfg.Strength == 0 {
		return nil
	}
	return &Wind{
		noise:    perlin.NewPerlin(2, 2, 3, cfg.Seed),
		strength: cfg.Strength,
		scale:    cfg.Scale,
		drift:    cfg.Drift,
	}
}

// Force returns the horizontal push at (x, y) at the given tick clock.
// A nil Wind is calm.
func (w *Wind) Force(x, y, clock float64) float64 {
	if w == nil {
		return 0
	}
	return w.strength * w.noise.Noise3D(x*w.scale, y*w.scale, clock*w.drift)
}
