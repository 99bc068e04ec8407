package codewing

import (
	"image"
	"math/rand/v2"
	"time"
)

// Engine owns every live simulation object and advances them one tick per
// Update call. A tick runs four phases in order: spawn, collision, physics,
// prune. The melt effect, when enabled, runs after them as an independent
// pass over its own framebuffer.
//
// Engine is not safe for concurrent use; drive it from a single goroutine.
type Engine struct {
	// SpawnEnabled gates automatic swarm spawning. Defaults to true.
	SpawnEnabled bool
	// ScreenshotDir is where Screenshot writes PNG files. Defaults to "screenshots".
	ScreenshotDir string

	cfg      Config
	rng      *rand.Rand
	theme    theme
	wind     *Wind
	swarm    *Swarm
	field    *Field
	melt     *MeltEngine
	renderer Renderer
	sink     EventSink

	pointer         pointerState
	clicks          []Vec2
	injectQueue     []syntheticPointerEvent
	testRunner      *TestRunner
	screenshotQueue []string

	ticks         uint64
	width, height float64

	debug bool
	stats tickStats
}

// NewEngine creates an engine with a swarm and no field or melt effect. A nil
// rng is replaced by a wall-clock seeded one. Returns an error if a palette
// in cfg does not parse.
func NewEngine(cfg Config, rng *rand.Rand) (*Engine, error) {
	if rng == nil {
		rng = NewTimeRand()
	}
	th, err := newTheme(&cfg)
	if err != nil {
		return nil, err
	}
	wind := NewWind(cfg.Wind)
	return &Engine{
		SpawnEnabled:  true,
		ScreenshotDir: "screenshots",
		cfg:           cfg,
		rng:           rng,
		theme:         th,
		wind:          wind,
		swarm:         NewSwarm(cfg.Swarm, rng, wind),
	}, nil
}

// EnableField samples src into a flat breakable field and attaches it. A nil
// src uses the built-in butterfly mask.
func (e *Engine) EnableField(src image.Image) *Field {
	if src == nil {
		src = ButterflyMask(e.cfg.Field.Sampler.WorkingSize)
	}
	e.field = NewField(e.cfg.Field, e.rng, src)
	e.field.resize(e.width, e.height)
	return e.field
}

// EnableMelt attaches a melt effect over fb. Clicks spawn drips.
func (e *Engine) EnableMelt(fb Framebuffer) *MeltEngine {
	e.melt = NewMeltEngine(e.cfg.Melt, e.rng, fb)
	return e.melt
}

// SetEventSink sets the receiver of BreakEvents. nil disables publishing.
func (e *Engine) SetEventSink(sink EventSink) {
	e.sink = sink
}

// SetDebugMode enables or disables per-tick stats logging on stderr.
func (e *Engine) SetDebugMode(enabled bool) {
	e.debug = enabled
}

// Swarm returns the rising swarm.
func (e *Engine) Swarm() *Swarm { return e.swarm }

// Field returns the flat field, or nil when not enabled.
func (e *Engine) Field() *Field { return e.field }

// Melt returns the melt engine, or nil when not enabled.
func (e *Engine) Melt() *MeltEngine { return e.melt }

// Ticks returns the number of completed ticks.
func (e *Engine) Ticks() uint64 { return e.ticks }

// Size returns the current surface dimensions.
func (e *Engine) Size() (float64, float64) { return e.width, e.height }

// Resize notifies the engine of new surface dimensions. Attached positions
// are recomputed; broken particles keep their absolute positions.
func (e *Engine) Resize(width, height float64) {
	width, height = max(finiteOr(width, 0), 0), max(finiteOr(height, 0), 0)
	e.width, e.height = width, height
	e.swarm.resize(width, height)
	if e.field != nil {
		e.field.resize(width, height)
	}
}

// Update advances the simulation by one tick. dt is the wall time of the
// tick in seconds and only drives the spawn fade.
func (e *Engine) Update(dt float64) {
	var start time.Time
	if e.debug {
		start = time.Now()
	}
	if e.testRunner != nil {
		e.testRunner.step(e)
	}
	e.processInjectedInput()

	e.ticks++
	clock := float64(e.ticks)
	e.stats = tickStats{drawTime: e.stats.drawTime}

	if e.SpawnEnabled && e.swarm.maybeSpawn() != nil {
		e.stats.spawned++
	}

	e.collide()

	e.swarm.step(clock, float32(dt))
	if e.field != nil {
		e.field.step(clock)
	}

	e.stats.prunedShapes = e.swarm.prune()
	if e.field != nil {
		e.stats.prunedParticles = e.field.prune()
	}

	if e.melt != nil {
		skipped := e.melt.Skipped()
		e.melt.Update()
		e.stats.skippedMoves = e.melt.Skipped() - skipped
	}

	if e.debug {
		e.stats.updateTime = time.Since(start)
		e.debugLog()
	}
}

// collide breaks swarm shapes under the pointer and applies queued clicks.
func (e *Engine) collide() {
	if e.pointer.active {
		e.stats.brokenShapes = e.swarm.hitShapes(e.pointer.x, e.pointer.y, func(s *Shape) {
			e.emit(BreakEvent{Kind: EventShapeBroken, X: s.X, Y: s.BaseY, ShapeID: s.ID, Count: len(s.Particles)})
		})
	}
	for _, c := range e.clicks {
		if e.field != nil {
			if n := e.field.hitParticles(c.X, c.Y); n > 0 {
				e.stats.brokenParticles += n
				e.emit(BreakEvent{Kind: EventParticlesBroken, X: c.X, Y: c.Y, Count: n})
			}
		}
		if e.melt != nil {
			n := e.melt.Spawn(c.X, c.Y)
			e.stats.drips += n
			e.emit(BreakEvent{Kind: EventDripsSpawned, X: c.X, Y: c.Y, Count: n})
		}
	}
	e.clicks = e.clicks[:0]
}

func (e *Engine) emit(ev BreakEvent) {
	if e.sink == nil {
		return
	}
	ev.Tick = e.ticks
	e.sink.Emit(ev)
}

// Draw renders the field and swarm onto dst. The melt framebuffer is not
// drawn here; composite it beneath dst yourself.
func (e *Engine) Draw(dst Surface) {
	var start time.Time
	if e.debug {
		start = time.Now()
	}
	e.renderer.Draw(dst, e.swarm, e.field, &e.theme)
	if e.debug {
		e.stats.drawTime = time.Since(start)
	}
}

// Reset drops all shapes and drips and clears pending input. The field is
// left as is; call Field().Reseed to restore it.
func (e *Engine) Reset() {
	e.swarm.Reset()
	if e.melt != nil {
		e.melt.Reset()
	}
	e.clicks = e.clicks[:0]
	e.pointer = pointerState{}
}
