package codewing

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"
)

// Butterfly outline in path units: two closed cubic loops (wings, then tail),
// roughly spanning x in [-53, 53] and y in [-34, 90].
var butterflyPath = [][]float32{
	{0, 0,
		10.6, -22.4, 31.8, -33.6, 42.4, -11.2,
		53, 11.2, 21.2, 44.8, 0, 22.4,
		-21.2, 44.8, -53, 11.2, -42.4, -11.2,
		-31.8, -33.6, -10.6, -22.4, 0, 0},
	{0, 22.4,
		5.3, 44.8, 21.2, 56, 31.8, 78.4,
		21.2, 89.6, 0, 67.2, 0, 56,
		0, 67.2, -21.2, 89.6, -31.8, 78.4,
		-21.2, 56, -5.3, 44.8, 0, 22.4},
}

// Sampling box of the outline in path units.
const (
	butterflyMinX = -55.0
	butterflyMinY = -56.0
	butterflyW    = 110.0
	butterflyH    = 140.0
)

// ButterflyMask rasterizes the butterfly outline into an NRGBA image whose
// long side is size pixels. Alpha is path coverage; the gray level falls off
// toward the wing tips so raster sampling produces depth bands.
func ButterflyMask(size int) *image.NRGBA {
	if size < 8 {
		size = 8
	}
	k := float64(size) / butterflyH
	w := int(math.Round(butterflyW * k))
	h := size

	cov := image.NewAlpha(image.Rect(0, 0, w, h))
	z := vector.NewRasterizer(w, h)
	tx := func(x float32) float32 { return float32((float64(x) - butterflyMinX) * k) }
	ty := func(y float32) float32 { return float32((float64(y) - butterflyMinY) * k) }
	for _, loop := range butterflyPath {
		z.MoveTo(tx(loop[0]), ty(loop[1]))
		for i := 2; i+5 < len(loop); i += 6 {
			z.CubeTo(
				tx(loop[i]), ty(loop[i+1]),
				tx(loop[i+2]), ty(loop[i+3]),
				tx(loop[i+4]), ty(loop[i+5]),
			)
		}
		z.ClosePath()
	}
	z.Draw(cov, cov.Bounds(), image.Opaque, image.Point{})

	out := image.NewNRGBA(cov.Bounds())
	cx := float64(w) / 2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a := cov.AlphaAt(x, y).A
			if a == 0 {
				continue
			}
			d := math.Min(1, math.Abs(float64(x)+0.5-cx)/(cx*0.9))
			g := uint8(255 * (1 - 0.6*d))
			out.SetNRGBA(x, y, color.NRGBA{R: g, G: g, B: g, A: a})
		}
	}
	return out
}
