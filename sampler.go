package codewing

import (
	"image"
	"math"
	"math/rand/v2"
	"sort"

	xdraw "golang.org/x/image/draw"
)

// maxCurveSteps bounds the curve walk when Step is tiny.
const maxCurveSteps = 1 << 16

// Sampler produces the initial particles of one shape at the given scale,
// sorted for rendering. Implementations never return an error; degenerate
// input yields a degenerate (possibly empty) set.
type Sampler interface {
	Sample(rng *rand.Rand, scale float64) []Particle
}

// --- Parametric curve ---

// CurveSampler scatters glyphs along the polar butterfly curve
// r(t) = e^cos(t) - 2cos(4t) - sin(t/12)^5, plus a short vertical body.
type CurveSampler struct {
	Config     CurveConfig
	Vocabulary []string
}

// NewCurveSampler returns a CurveSampler using cfg and vocab.
func NewCurveSampler(cfg CurveConfig, vocab []string) *CurveSampler {
	return &CurveSampler{Config: cfg, Vocabulary: vocab}
}

// butterflyPoint evaluates the curve at t in curve units.
func butterflyPoint(t float64) (x, y float64) {
	r := math.Exp(math.Cos(t)) - 2*math.Cos(4*t) - math.Pow(math.Sin(t/12), 5)
	return r * math.Sin(t), -r * math.Cos(t)
}

// isInner reports whether a curve point belongs to the inner wing layer.
func isInner(x, y, threshold float64) bool {
	return math.Abs(x) < threshold && math.Abs(y) < threshold
}

// Steps returns the number of parameter values visited per sample.
func (c *CurveSampler) Steps() int {
	step := c.Config.Step
	if !(step > 0) || !(c.Config.TMax >= 0) {
		return 0
	}
	n := int(math.Floor(c.Config.TMax/step+1e-9)) + 1
	if n > maxCurveSteps {
		n = maxCurveSteps
	}
	return n
}

// Sample implements Sampler.
func (c *CurveSampler) Sample(rng *rand.Rand, scale float64) []Particle {
	cfg := &c.Config
	scale = sanitizeScale(scale)
	steps := c.Steps()
	body := max(cfg.BodyCount, 0)

	ps := make([]Particle, 0, body+int(float64(steps)*clamp01(cfg.WingDensity))+8)

	half := float64(body) / 2
	for i := 0; i < body; i++ {
		ps = append(ps, Particle{
			RelX:          centered(rng, cfg.BodyWidth) * scale,
			RelY:          (float64(i) - half) * cfg.BodySpacing * scale,
			Text:          pick(rng, c.Vocabulary),
			Size:          roundSize(cfg.BodySize * scale),
			Alpha:         clamp01(cfg.BodyAlpha.Random(rng)),
			RotationSpeed: centered(rng, cfg.BodySpin),
			Layer:         LayerBody,
		})
	}

	unit := cfg.CurveScale * scale
	for i := 0; i < steps; i++ {
		if rng.Float64() >= cfg.WingDensity {
			continue
		}
		x, y := butterflyPoint(float64(i) * cfg.Step)
		p := Particle{
			RelX:          x * unit,
			RelY:          y * unit,
			Text:          pick(rng, c.Vocabulary),
			Rotation:      centered(rng, cfg.Tilt),
			RotationSpeed: centered(rng, cfg.Spin),
		}
		if isInner(x, y, cfg.InnerThreshold) {
			p.Layer = LayerWingInner
			p.Size = roundSize(cfg.InnerSize.Random(rng) * scale)
			p.Alpha = clamp01(cfg.InnerAlpha)
		} else {
			p.Layer = LayerWingOuter
			p.Size = roundSize(cfg.OuterSize.Random(rng) * scale)
			p.Alpha = clamp01(cfg.OuterAlpha)
		}
		ps = append(ps, p)
	}

	sortBySize(ps)
	return ps
}

// --- Raster alpha ---

// AlphaSampler scatters glyphs inside the opaque region of an image by
// rejection sampling a downsampled copy. Positions are normalized so the
// image's long side spans [-0.5, 0.5].
type AlphaSampler struct {
	Config     AlphaConfig
	Vocabulary []string

	work *image.NRGBA // downsampled source, nil when unusable
	long float64
}

// NewAlphaSampler downsamples src to at most cfg.WorkingSize on its long side.
// A nil or empty src produces a sampler that always falls back.
func NewAlphaSampler(src image.Image, cfg AlphaConfig, vocab []string) *AlphaSampler {
	s := &AlphaSampler{Config: cfg, Vocabulary: vocab}
	if src == nil {
		return s
	}
	b := src.Bounds()
	if b.Empty() {
		return s
	}
	w, h := b.Dx(), b.Dy()
	limit := cfg.WorkingSize
	if limit <= 0 {
		limit = 128
	}
	if long := max(w, h); long > limit {
		k := float64(limit) / float64(long)
		w = max(1, int(math.Round(float64(w)*k)))
		h = max(1, int(math.Round(float64(h)*k)))
	}
	s.work = image.NewNRGBA(image.Rect(0, 0, w, h))
	if w == b.Dx() && h == b.Dy() {
		xdraw.Draw(s.work, s.work.Bounds(), src, b.Min, xdraw.Src)
	} else {
		xdraw.ApproxBiLinear.Scale(s.work, s.work.Bounds(), src, b, xdraw.Src, nil)
	}
	s.long = float64(max(w, h))
	return s
}

// WorkingBounds returns the size of the downsampled image.
func (s *AlphaSampler) WorkingBounds() image.Rectangle {
	if s.work == nil {
		return image.Rectangle{}
	}
	return s.work.Bounds()
}

// Sample implements Sampler.
func (s *AlphaSampler) Sample(rng *rand.Rand, scale float64) []Particle {
	ps, _, _ := s.sample(rng, scale)
	return ps
}

// sample returns the particles, the working-image pixel each came from
// (aligned by index), and whether the fallback scatter was used.
func (s *AlphaSampler) sample(rng *rand.Rand, scale float64) ([]Particle, []image.Point, bool) {
	cfg := &s.Config
	scale = sanitizeScale(scale)

	var ps []Particle
	var src []image.Point
	if s.work != nil && cfg.TargetCount > 0 {
		ps, src = s.reject(rng, scale)
	}
	if len(ps) < cfg.MinSamples {
		return s.fallback(rng, scale), nil, true
	}

	idx := make([]int, len(ps))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		pa, pb := &ps[idx[a]], &ps[idx[b]]
		if pa.Layer != pb.Layer {
			return pa.Layer < pb.Layer
		}
		return pa.Size < pb.Size
	})
	sortedPs := make([]Particle, len(ps))
	sortedSrc := make([]image.Point, len(ps))
	for i, j := range idx {
		sortedPs[i] = ps[j]
		sortedSrc[i] = src[j]
	}
	return sortedPs, sortedSrc, false
}

// reject draws random pixels until TargetCount are accepted or the attempt
// budget runs out. A short result is not an error.
func (s *AlphaSampler) reject(rng *rand.Rand, scale float64) ([]Particle, []image.Point) {
	cfg := &s.Config
	b := s.work.Bounds()
	w, h := b.Dx(), b.Dy()
	layers := max(cfg.Layers, 1)
	budget := cfg.TargetCount * max(cfg.AttemptFactor, 1)

	ps := make([]Particle, 0, cfg.TargetCount)
	src := make([]image.Point, 0, cfg.TargetCount)
	for attempt := 0; attempt < budget && len(ps) < cfg.TargetCount; attempt++ {
		px := rng.IntN(w)
		py := rng.IntN(h)
		c := s.work.NRGBAAt(px, py)
		if c.A <= cfg.Threshold {
			continue
		}
		lum := (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
		band := min(int(lum*float64(layers)), layers-1)
		ps = append(ps, Particle{
			RelX:  (float64(px) + rng.Float64() - float64(w)/2) / s.long,
			RelY:  (float64(py) + rng.Float64() - float64(h)/2) / s.long,
			Text:  pick(rng, s.Vocabulary),
			Size:  roundSize(cfg.Size.Random(rng) * scale),
			Alpha: clamp01(cfg.Alpha.Random(rng)),
			Layer: LayerIndex(band),
		})
		src = append(src, image.Pt(px, py))
	}
	return ps, src
}

// fallback returns a fixed-size scatter over the unit box so the visual is
// never empty.
func (s *AlphaSampler) fallback(rng *rand.Rand, scale float64) []Particle {
	cfg := &s.Config
	n := cfg.FallbackCount
	if n <= 0 {
		n = max(cfg.MinSamples, 1)
	}
	text := cfg.FallbackText
	if text == "" {
		text = "ERROR"
	}
	size := cfg.FallbackSize
	if !(size > 0) {
		size = 12
	}
	ps := make([]Particle, n)
	for i := range ps {
		ps[i] = Particle{
			RelX:  centered(rng, 1),
			RelY:  centered(rng, 1),
			Text:  text,
			Size:  roundSize(size * scale),
			Alpha: 1,
		}
	}
	return ps
}
