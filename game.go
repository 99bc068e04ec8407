package codewing

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window and surfaces created by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	ShowFPS       bool
	// Background fills the window behind every layer.
	Background Color
	// Bold selects Go Mono Bold for glyphs.
	Bold bool
	// Glow is the halo blur radius in pixels; 0 disables it.
	Glow          int
	GlowIntensity float64
	// MeltBase, when set, produces the base raster for the melt effect at the
	// given window size. It is called again after every resize, which resets
	// any melting done so far.
	MeltBase func(w, h int) image.Image
}

// Game adapts an Engine to ebiten.Game. The screen is composited from the
// melt framebuffer, when present, an optional glow halo, and a transparent
// glyph layer above it.
type Game struct {
	engine     *Engine
	surface    *EbitenSurface
	layer      *ebiten.Image
	melt       *RenderTexture
	meltBase   func(w, h int) image.Image
	glow       *GlowFilter
	fps        *fpsWidget
	background Color
	stopped    bool
	w, h       int
}

// NewGame wraps e for use with ebiten.RunGame.
func NewGame(e *Engine, font *GlyphFont, cfg RunConfig) *Game {
	g := &Game{
		engine:     e,
		surface:    NewEbitenSurface(nil, font),
		meltBase:   cfg.MeltBase,
		background: cfg.Background,
	}
	if cfg.Glow > 0 {
		intensity := cfg.GlowIntensity
		if intensity == 0 {
			intensity = 1
		}
		g.glow = NewGlowFilter(cfg.Glow, intensity)
	}
	if cfg.ShowFPS {
		g.fps = newFPSWidget()
	}
	return g
}

// Stop makes the next Update end the game loop.
func (g *Game) Stop() {
	g.stopped = true
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if g.stopped {
		return ebiten.Termination
	}
	if !g.engine.hasInjected() {
		readEbitenInput(g.engine)
	}
	dt := 1.0 / float64(ebiten.TPS())
	g.engine.Update(dt)
	if g.fps != nil {
		g.fps.update(dt, g.engine)
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.background.A > 0 {
		screen.Fill(g.background.toRGBA())
	}
	if g.melt != nil {
		screen.DrawImage(g.melt.Image(), nil)
	}
	if g.layer != nil {
		g.engine.Draw(g.surface)
		if g.glow.Enabled() {
			g.glow.Apply(g.layer, screen)
		}
		screen.DrawImage(g.layer, nil)
	}
	if g.fps != nil {
		g.fps.draw(screen)
	}
	g.engine.flushScreenshots(screen)
}

// Layout implements ebiten.Game. Size changes are forwarded to the engine
// and the offscreen layers are reallocated.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := max(outsideWidth, 1), max(outsideHeight, 1)
	if w != g.w || h != g.h {
		g.resize(w, h)
	}
	return w, h
}

func (g *Game) resize(w, h int) {
	g.w, g.h = w, h
	if g.layer != nil {
		g.layer.Deallocate()
	}
	g.layer = ebiten.NewImage(w, h)
	g.surface.SetTarget(g.layer)
	g.engine.Resize(float64(w), float64(h))

	if g.meltBase == nil {
		return
	}
	if g.melt == nil {
		g.melt = NewRenderTexture(w, h)
	} else {
		g.melt.Resize(w, h)
	}
	if base := g.meltBase(w, h); base != nil {
		g.melt.Load(base)
	}
	if m := g.engine.Melt(); m != nil {
		m.Reset()
		m.SetFramebuffer(g.melt)
	} else {
		g.engine.EnableMelt(g.melt)
	}
}

// Run is a convenience entry point that creates a window and runs e until
// the window is closed.
func Run(e *Engine, cfg RunConfig) error {
	font, err := DefaultGlyphFont(cfg.Bold)
	if err != nil {
		return err
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	w, h := cfg.Width, cfg.Height
	if w <= 0 {
		w = 640
	}
	if h <= 0 {
		h = 480
	}
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(NewGame(e, font, cfg))
}
