package codewing

import (
	"image"
	"image/color"
	"math"

	"github.com/aquilax/go-perlin"
)

// chromeRamp is the metallic color ramp, dark to bright.
var chromeRamp = mustPalette("#1B2A3A", "#5F7F9F", "#C8DCEB", "#F4FAFF")

// ChromeButterfly paints a w×h base image for the melt effect: the butterfly
// mask, extent×min(w, h) pixels on its long side and centred, shaded with
// Perlin bands so drips leave visible streaks. The background is transparent.
func ChromeButterfly(w, h int, extent float64, seed int64) *image.RGBA {
	w, h = max(w, 1), max(h, 1)
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	size := int(math.Round(finiteOr(extent, 0.8) * float64(min(w, h))))
	if size < 8 {
		return out
	}
	mask := ButterflyMask(size)
	mb := mask.Bounds()
	ox := (w - mb.Dx()) / 2
	oy := (h - mb.Dy()) / 2

	ramp := Gradient(chromeRamp, 64)
	noise := perlin.NewPerlin(2, 2, 3, seed)
	k := 4 / float64(size)
	for y := 0; y < mb.Dy(); y++ {
		for x := 0; x < mb.Dx(); x++ {
			m := mask.NRGBAAt(x, y)
			if m.A == 0 {
				continue
			}
			// Horizontal streaks: stretch noise along x.
			n := noise.Noise2D(float64(x)*k*0.3, float64(y)*k)
			v := clamp01(0.5 + n + 0.35*(float64(m.R)/255-0.5))
			c := ramp[min(int(v*float64(len(ramp))), len(ramp)-1)]
			a := float64(m.A) / 255
			px, py := ox+x, oy+y
			if !image.Pt(px, py).In(out.Rect) {
				continue
			}
			out.SetRGBA(px, py, color.RGBA{
				R: uint8(c.R * a * 255),
				G: uint8(c.G * a * 255),
				B: uint8(c.B * a * 255),
				A: m.A,
			})
		}
	}
	return out
}
