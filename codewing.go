package codewing

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at draw submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default glyph tint.
var ColorWhite = Color{1, 1, 1, 1}

// WithAlpha returns c with its alpha multiplied by a.
func (c Color) WithAlpha(a float64) Color {
	c.A *= a
	return c
}

// Vec2 is a 2D vector used for positions, offsets and velocities.
type Vec2 struct {
	X, Y float64
}

// Range is a general-purpose min/max range used throughout Config.
type Range struct {
	Min, Max float64
}

// BlendMode selects a compositing operation for glyph drawing.
type BlendMode uint8

const (
	BlendNormal BlendMode = iota // source-over (standard alpha blending)
	BlendAdd                     // additive / lighter, used for glowing debris
)

// EbitenBlend returns the ebiten.Blend value corresponding to this BlendMode.
func (b BlendMode) EbitenBlend() ebiten.Blend {
	switch b {
	case BlendAdd:
		return ebiten.BlendLighter
	default:
		return ebiten.BlendSourceOver
	}
}

// Layer classifies a particle for size, opacity and color. The curve sampler
// uses the named layers; the raster sampler uses LayerIndex(i) for palette
// bands, where lower indices are drawn first.
type Layer uint8

const (
	LayerBody      Layer = iota // vertical body line through the shape origin
	LayerWingInner              // curve points close to the origin: smaller, dimmer
	LayerWingOuter              // remaining curve points
)

// LayerIndex returns the Layer for raster palette band i.
func LayerIndex(i int) Layer {
	if i < 0 {
		i = 0
	}
	if i > math.MaxUint8 {
		i = math.MaxUint8
	}
	return Layer(i)
}

// ParticleState is the lifecycle phase of a particle. Transitions are one-way.
type ParticleState uint8

const (
	Attached ParticleState = iota // moves rigidly with its owner
	Broken                        // independently simulated debris
)

func (s ParticleState) String() string {
	if s == Broken {
		return "broken"
	}
	return "attached"
}

// ShapeState is the lifecycle phase of a shape. Transitions are one-way.
type ShapeState uint8

const (
	Alive       ShapeState = iota // rising and swaying as a rigid body
	ShapeBroken                   // particles released; only opacity is tracked
)

func (s ShapeState) String() string {
	if s == ShapeBroken {
		return "broken"
	}
	return "alive"
}

// clamp01 restricts v to [0, 1]. NaN maps to 0.
func clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// finiteOr returns v if it is a finite number, otherwise fallback.
func finiteOr(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}
