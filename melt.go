package codewing

import (
	"image"
	"math"
	"math/rand/v2"
	"slices"
)

// Drip is one transient pixel-block displacement. Each tick it copies a
// block starting at (X - Width/2, Y) down by Speed pixels.
type Drip struct {
	X, Y  float64
	Speed float64
	Life  float64
	Width float64
}

// MeltEngine owns the live drips and the framebuffer they smear. The base
// image is overwritten in place, so melting cannot be undone.
//
// Overlapping drips are not coordinated: they read and write shared regions
// in list order, which compounds artifacts under rapid clicks.
type MeltEngine struct {
	cfg   MeltConfig
	rng   *rand.Rand
	fb    Framebuffer
	drips []Drip

	skipped int
}

// NewMeltEngine returns a melt engine over fb. fb may be nil; drips then
// decay without touching any pixels.
func NewMeltEngine(cfg MeltConfig, rng *rand.Rand, fb Framebuffer) *MeltEngine {
	return &MeltEngine{cfg: cfg, rng: rng, fb: fb}
}

// SetFramebuffer replaces the buffer being melted.
func (m *MeltEngine) SetFramebuffer(fb Framebuffer) {
	m.fb = fb
}

// Framebuffer returns the buffer being melted.
func (m *MeltEngine) Framebuffer() Framebuffer {
	return m.fb
}

// Config returns a pointer to the melt config for live tuning.
func (m *MeltEngine) Config() *MeltConfig {
	return &m.cfg
}

// Drips returns the live drips. The returned slice MUST NOT be mutated.
func (m *MeltEngine) Drips() []Drip {
	return m.drips
}

// Len returns the number of live drips.
func (m *MeltEngine) Len() int {
	return len(m.drips)
}

// Skipped returns how many per-drip block moves were skipped because the
// clipped region was empty or the buffer rejected it.
func (m *MeltEngine) Skipped() int {
	return m.skipped
}

// Spawn adds a batch of drips around (x, y) and returns the batch size.
func (m *MeltEngine) Spawn(x, y float64) int {
	n := max(m.cfg.DripBatch, 0)
	for i := 0; i < n; i++ {
		m.drips = append(m.drips, Drip{
			X:     x + centered(m.rng, m.cfg.Spread),
			Y:     y,
			Speed: m.cfg.Speed.Random(m.rng),
			Life:  m.cfg.Life,
			Width: m.cfg.Width.Random(m.rng),
		})
	}
	return n
}

// Update advances every drip by one tick and removes finished ones.
func (m *MeltEngine) Update() {
	if len(m.drips) == 0 {
		return
	}
	for i := range m.drips {
		d := &m.drips[i]
		if d.Life <= 0 {
			continue
		}
		if !m.displace(d) {
			m.skipped++
		}
		d.Y += d.Speed
		d.Life -= m.cfg.LifeDecay
		d.Speed *= m.cfg.SpeedDamping
	}

	bottom := math.Inf(1)
	if m.fb != nil {
		bottom = float64(m.fb.Bounds().Max.Y)
	}
	m.drips = slices.DeleteFunc(m.drips, func(d Drip) bool {
		return d.Life <= 0 || d.Y >= bottom || math.IsNaN(d.Y)
	})
}

// displace copies the drip's source block down by its speed with a small
// horizontal jitter. Reports whether pixels were moved.
func (m *MeltEngine) displace(d *Drip) bool {
	jitter := math.Round(centered(m.rng, 2*m.cfg.Jitter))
	if m.fb == nil {
		return false
	}
	h := math.Ceil(d.Speed * m.cfg.HeightFactor)
	if !(h >= 1) || !(d.Width >= 1) || math.IsNaN(d.X) || math.IsNaN(d.Y) {
		return false
	}
	x0 := int(math.Floor(d.X - d.Width/2))
	y0 := int(math.Floor(d.Y))
	src := image.Rect(x0, y0, x0+int(math.Round(d.Width)), y0+int(h))

	blk, err := m.fb.ReadBlock(src)
	if err != nil {
		return false
	}
	at := blk.Rect.Min.Add(image.Pt(int(jitter), int(math.Round(d.Speed))))
	return m.fb.WriteBlock(at, blk) == nil
}

// Reset drops every drip. Pixels already moved stay moved.
func (m *MeltEngine) Reset() {
	m.drips = m.drips[:0]
}
