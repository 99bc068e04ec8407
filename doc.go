// Package codewing is a glyph-particle effects engine for [Ebitengine].
//
// Shapes are made of short code keywords instead of sprites. A [Swarm] of
// butterflies rises from below the surface and shatters into falling,
// fluttering debris when the pointer touches it. A [Field] scatters glyphs
// over the opaque region of any image and breaks apart where you click.
// A [MeltEngine] drags blocks of pixels downward in a [Framebuffer] to melt
// a base image.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	engine, err := codewing.NewEngine(codewing.DefaultConfig(), nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	codewing.Run(engine, codewing.RunConfig{
//		Title: "Butterflies", Width: 960, Height: 720,
//	})
//
// For full control, drive the engine yourself. [Engine.Update] advances one
// tick; [Engine.Draw] renders onto any [Surface]:
//
//	engine.Resize(w, h)
//	engine.PointerMove(x, y)
//	engine.Update(1.0 / 60)
//	engine.Draw(surface)
//
// # Ticks
//
// Every Update runs four phases in order: spawn, collision, physics and
// prune. All motion constants are per tick, so a [FixedStep] source replays
// a run exactly given the same seed from [NewRand].
//
// # Surfaces
//
// [EbitenSurface] draws with text/v2 and the embedded Go Mono fonts. The
// codewing/term package draws into a terminal through tcell. Break events can
// be bridged into a Donburi world with codewing/ecs.
//
// [Ebitengine]: https://ebitengine.org
package codewing
