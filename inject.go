package codewing

// pointerEventKind selects what a synthetic event does.
type pointerEventKind uint8

const (
	pointerMove pointerEventKind = iota
	pointerLeave
	pointerClick
)

// syntheticPointerEvent represents a single injected pointer event in
// surface coordinates.
type syntheticPointerEvent struct {
	kind pointerEventKind
	x, y float64
}

// InjectMove queues a pointer move. Events are consumed one per tick at the
// start of Update, before the collision phase.
func (e *Engine) InjectMove(x, y float64) {
	e.injectQueue = append(e.injectQueue, syntheticPointerEvent{kind: pointerMove, x: x, y: y})
}

// InjectLeave queues the pointer leaving the surface.
func (e *Engine) InjectLeave() {
	e.injectQueue = append(e.injectQueue, syntheticPointerEvent{kind: pointerLeave})
}

// InjectClick queues a click at (x, y). Consumes one tick.
func (e *Engine) InjectClick(x, y float64) {
	e.injectQueue = append(e.injectQueue, syntheticPointerEvent{kind: pointerClick, x: x, y: y})
}

// InjectSwipe queues a pointer sweep from (fromX, fromY) to (toX, toY) over
// frames moves, followed by a leave. Minimum frames is 1.
func (e *Engine) InjectSwipe(fromX, fromY, toX, toY float64, frames int) {
	if frames < 1 {
		frames = 1
	}
	for i := 0; i < frames; i++ {
		t := 1.0
		if frames > 1 {
			t = float64(i) / float64(frames-1)
		}
		e.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	e.InjectLeave()
}

// hasInjected reports whether synthetic events are pending, in which case
// real device input should be skipped.
func (e *Engine) hasInjected() bool {
	return len(e.injectQueue) > 0
}

// processInjectedInput pops one event from the inject queue and applies it.
// Returns true if an event was consumed.
func (e *Engine) processInjectedInput() bool {
	if len(e.injectQueue) == 0 {
		return false
	}
	evt := e.injectQueue[0]
	copy(e.injectQueue, e.injectQueue[1:])
	e.injectQueue = e.injectQueue[:len(e.injectQueue)-1]

	switch evt.kind {
	case pointerMove:
		e.PointerMove(evt.x, evt.y)
	case pointerLeave:
		e.PointerLeave()
	case pointerClick:
		e.Click(evt.x, evt.y)
	}
	return true
}
