package codewing

import "math"

// glyphCommand is a single draw instruction emitted while walking the live
// particles.
type glyphCommand struct {
	glyph Glyph
	size  float64
}

// theme holds the resolved colors the renderer tints glyphs with.
type theme struct {
	swarm       Color
	swarmBroken Color
	field       []Color
	fieldBroken Color
}

// newTheme parses the palettes of cfg.
func newTheme(cfg *Config) (theme, error) {
	var th theme
	swarm, err := ParsePalette(cfg.Swarm.Palette)
	if err != nil {
		return th, err
	}
	th.swarm = swarm[0]
	th.swarmBroken = swarm[len(swarm)-1]

	field, err := ParsePalette(cfg.Field.Palette)
	if err != nil {
		return th, err
	}
	th.field = Gradient(field, max(cfg.Field.Sampler.Layers, 1))

	th.fieldBroken = ColorWhite
	if cfg.Field.BrokenColor != "" {
		if th.fieldBroken, err = ParseHex(cfg.Field.BrokenColor); err != nil {
			return th, err
		}
	}
	return th, nil
}

// fieldColor returns the attached tint for a raster layer.
func (th *theme) fieldColor(l Layer) Color {
	if len(th.field) == 0 {
		return ColorWhite
	}
	return th.field[min(int(l), len(th.field)-1)]
}

// Renderer turns the live particle state into glyph draws. Commands are
// emitted in draw order and the font size is only switched when it changes
// from one glyph to the next, so size-sorted input yields a handful of
// switches per frame.
type Renderer struct {
	commands []glyphCommand

	// Per-frame counters, read by debug logging.
	glyphs       int
	fontSwitches int
}

// Draw clears dst and draws the field beneath the swarm.
func (r *Renderer) Draw(dst Surface, sw *Swarm, f *Field, th *theme) {
	r.commands = r.commands[:0]
	if f != nil {
		r.emitField(f, th)
	}
	if sw != nil {
		r.emitSwarm(sw, th)
	}
	r.submit(dst)
}

func (r *Renderer) emitSwarm(sw *Swarm, th *theme) {
	for _, s := range sw.shapes {
		opacity := 1.0
		if s.State == Alive {
			opacity = clamp01(s.Opacity)
		}
		if opacity <= 0 {
			continue
		}
		c := th.swarm
		if s.State == ShapeBroken {
			c = th.swarmBroken
		}
		for i := range s.Particles {
			p := &s.Particles[i]
			if !p.Visible() {
				continue
			}
			x, y := s.ParticlePos(i)
			r.push(p, x, y, c.WithAlpha(clamp01(p.Alpha)*opacity), BlendNormal)
		}
	}
}

func (r *Renderer) emitField(f *Field, th *theme) {
	for i := range f.particles {
		p := &f.particles[i]
		if !p.Visible() {
			continue
		}
		x, y := f.ParticlePos(i)
		if p.State == Broken {
			r.push(p, x, y, th.fieldBroken.WithAlpha(clamp01(p.Alpha)), BlendAdd)
			continue
		}
		r.push(p, x, y, th.fieldColor(p.Layer).WithAlpha(clamp01(p.Alpha)), BlendNormal)
	}
}

func (r *Renderer) push(p *Particle, x, y float64, c Color, blend BlendMode) {
	if math.IsNaN(x) || math.IsNaN(y) {
		return
	}
	r.commands = append(r.commands, glyphCommand{
		glyph: Glyph{Text: p.Text, X: x, Y: y, Rotation: p.Rotation, Color: c, Blend: blend},
		size:  p.Size,
	})
}

// submit clears dst and replays the command list.
func (r *Renderer) submit(dst Surface) {
	r.glyphs = 0
	r.fontSwitches = 0
	if dst == nil {
		return
	}
	dst.Clear()
	current := -1.0
	for i := range r.commands {
		cmd := &r.commands[i]
		if cmd.size != current {
			dst.SetFontSize(cmd.size)
			current = cmd.size
			r.fontSwitches++
		}
		dst.DrawGlyph(cmd.glyph)
		r.glyphs++
	}
}

// FontSwitches returns the number of SetFontSize calls in the last frame.
func (r *Renderer) FontSwitches() int {
	return r.fontSwitches
}

// Glyphs returns the number of glyphs drawn in the last frame.
func (r *Renderer) Glyphs() int {
	return r.glyphs
}
