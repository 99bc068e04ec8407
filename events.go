package codewing

// EventKind identifies what a BreakEvent reports.
type EventKind uint8

const (
	EventShapeBroken     EventKind = iota // a swarm shape was shattered by the pointer
	EventParticlesBroken                  // a click released field particles
	EventDripsSpawned                     // a click started a batch of melt drips
)

func (k EventKind) String() string {
	switch k {
	case EventShapeBroken:
		return "shape-broken"
	case EventParticlesBroken:
		return "particles-broken"
	case EventDripsSpawned:
		return "drips-spawned"
	default:
		return "unknown"
	}
}

// BreakEvent is published during Engine.Update for every interaction that
// changed simulation state.
type BreakEvent struct {
	Kind EventKind
	// Tick is the engine tick the event happened on.
	Tick uint64
	// X and Y are the pointer position for clicks, or the shape origin.
	X, Y float64
	// ShapeID is set for EventShapeBroken.
	ShapeID uint64
	// Count is the number of particles released or drips spawned.
	Count int
}

// EventSink receives BreakEvents. Emit is called synchronously from
// Engine.Update and must not call back into the engine.
type EventSink interface {
	Emit(BreakEvent)
}

// EventSinkFunc adapts a plain function to EventSink.
type EventSinkFunc func(BreakEvent)

// Emit implements EventSink.
func (f EventSinkFunc) Emit(ev BreakEvent) {
	f(ev)
}
