package codewing

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseHex converts a "#rrggbb" or "#rgb" string to an opaque Color.
func ParseHex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("codewing: parse color %q: %w", s, err)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: 1}, nil
}

// ParsePalette converts a list of hex strings. An empty list yields white.
func ParsePalette(hexes []string) ([]Color, error) {
	if len(hexes) == 0 {
		return []Color{ColorWhite}, nil
	}
	out := make([]Color, 0, len(hexes))
	for _, h := range hexes {
		c, err := ParseHex(h)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// mustPalette is ParsePalette for compile-time constant inputs.
func mustPalette(hexes ...string) []Color {
	p, err := ParsePalette(hexes)
	if err != nil {
		panic(err)
	}
	return p
}

// Gradient returns n colors blended in CIE-Lab space across the stops of
// palette. With a single stop every band gets that color.
func Gradient(palette []Color, n int) []Color {
	if n <= 0 {
		return nil
	}
	if len(palette) == 0 {
		palette = []Color{ColorWhite}
	}
	out := make([]Color, n)
	if len(palette) == 1 || n == 1 {
		for i := range out {
			out[i] = palette[0]
		}
		return out
	}
	segs := float64(len(palette) - 1)
	for i := range out {
		t := float64(i) / float64(n-1) * segs
		lo := int(t)
		if lo >= len(palette)-1 {
			lo = len(palette) - 2
		}
		a := palette[lo]
		b := palette[lo+1]
		ca := colorful.Color{R: a.R, G: a.G, B: a.B}
		cb := colorful.Color{R: b.R, G: b.G, B: b.B}
		m := ca.BlendLab(cb, t-float64(lo)).Clamped()
		out[i] = Color{R: m.R, G: m.G, B: m.B, A: a.A + (b.A-a.A)*(t-float64(lo))}
	}
	return out
}
