package codewing

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- BlurFilter ---

// BlurFilter applies a Kawase iterative blur using downscale/upscale passes.
// No Kage shader needed: bilinear filtering during DrawImage does the work.
type BlurFilter struct {
	Radius int
	temps  []*ebiten.Image
	imgOp  ebiten.DrawImageOptions
}

// NewBlurFilter creates a blur filter with the given radius (in pixels).
func NewBlurFilter(radius int) *BlurFilter {
	return &BlurFilter{Radius: max(radius, 0)}
}

// blurPasses is the number of half-size steps for radius: log2(radius),
// minimum 1. Zero for no blur.
func blurPasses(radius int) int {
	if radius <= 0 {
		return 0
	}
	return max(int(math.Ceil(math.Log2(float64(radius)))), 1)
}

// Apply renders a Kawase blur from src into dst.
func (f *BlurFilter) Apply(src, dst *ebiten.Image) {
	op := &f.imgOp
	passes := blurPasses(f.Radius)
	if passes == 0 {
		op.GeoM.Reset()
		op.ColorScale.Reset()
		op.Filter = ebiten.FilterNearest
		dst.DrawImage(src, op)
		return
	}

	for len(f.temps) < passes {
		f.temps = append(f.temps, nil)
	}
	for i := passes; i < len(f.temps); i++ {
		if f.temps[i] != nil {
			f.temps[i].Deallocate()
			f.temps[i] = nil
		}
	}
	f.temps = f.temps[:passes]

	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	current := src
	for i := 0; i < passes; i++ {
		w, h = max(w/2, 1), max(h/2, 1)
		if t := f.temps[i]; t == nil || t.Bounds().Dx() != w || t.Bounds().Dy() != h {
			if t != nil {
				t.Deallocate()
			}
			f.temps[i] = ebiten.NewImage(w, h)
		} else {
			t.Clear()
		}
		f.scaleInto(f.temps[i], current)
		current = f.temps[i]
	}
	for i := passes - 2; i >= 0; i-- {
		f.temps[i].Clear()
		f.scaleInto(f.temps[i], current)
		current = f.temps[i]
	}
	f.scaleInto(dst, current)
}

// scaleInto draws src stretched over dst with linear filtering.
func (f *BlurFilter) scaleInto(dst, src *ebiten.Image) {
	op := &f.imgOp
	op.GeoM.Reset()
	op.ColorScale.Reset()
	sb, db := src.Bounds(), dst.Bounds()
	op.GeoM.Scale(float64(db.Dx())/float64(sb.Dx()), float64(db.Dy())/float64(sb.Dy()))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(src, op)
}

// Dispose releases the intermediate images.
func (f *BlurFilter) Dispose() {
	for _, t := range f.temps {
		if t != nil {
			t.Deallocate()
		}
	}
	f.temps = nil
}

// --- GlowFilter ---

// GlowFilter blurs the glyph layer and adds it back on top, so bright debris
// bleeds light into its surroundings. The result in dst is only the halo;
// Game composites it with BlendAdd.
type GlowFilter struct {
	Blur *BlurFilter
	// Intensity scales the halo; 0 disables the effect.
	Intensity float64

	halo  *ebiten.Image
	imgOp ebiten.DrawImageOptions
}

// NewGlowFilter returns a glow with the given blur radius and intensity.
func NewGlowFilter(radius int, intensity float64) *GlowFilter {
	return &GlowFilter{Blur: NewBlurFilter(radius), Intensity: clampIntensity(intensity)}
}

// clampIntensity keeps intensity finite and within [0, 4].
func clampIntensity(v float64) float64 {
	return math.Min(math.Max(finiteOr(v, 0), 0), 4)
}

// Enabled reports whether Apply draws anything.
func (g *GlowFilter) Enabled() bool {
	return g != nil && g.Intensity > 0 && g.Blur != nil && g.Blur.Radius > 0
}

// Apply renders the scaled halo of src into dst.
func (g *GlowFilter) Apply(src, dst *ebiten.Image) {
	if !g.Enabled() {
		return
	}
	b := src.Bounds()
	if g.halo == nil || g.halo.Bounds() != b {
		if g.halo != nil {
			g.halo.Deallocate()
		}
		g.halo = ebiten.NewImage(b.Dx(), b.Dy())
	} else {
		g.halo.Clear()
	}
	g.Blur.Apply(src, g.halo)

	op := &g.imgOp
	op.GeoM.Reset()
	op.ColorScale.Reset()
	op.ColorScale.ScaleAlpha(float32(g.Intensity))
	op.Blend = BlendAdd.EbitenBlend()
	dst.DrawImage(g.halo, op)
}

// Dispose releases the halo and blur images.
func (g *GlowFilter) Dispose() {
	if g.halo != nil {
		g.halo.Deallocate()
		g.halo = nil
	}
	if g.Blur != nil {
		g.Blur.Dispose()
	}
}
