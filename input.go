package codewing

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// pointerState is the last known pointer position. Inactive after the
// pointer leaves the surface, which disables hover collision.
type pointerState struct {
	x, y   float64
	active bool
}

// PointerMove records the pointer position. Shapes under it break on the next
// tick and keep breaking while it stays active.
func (e *Engine) PointerMove(x, y float64) {
	e.pointer = pointerState{x: x, y: y, active: true}
}

// PointerLeave marks the pointer as off-surface.
func (e *Engine) PointerLeave() {
	e.pointer.active = false
}

// Click queues a click for the next tick's collision phase.
func (e *Engine) Click(x, y float64) {
	e.clicks = append(e.clicks, Vec2{X: x, Y: y})
}

// Pointer returns the last pointer position and whether it is on the surface.
func (e *Engine) Pointer() (x, y float64, active bool) {
	return e.pointer.x, e.pointer.y, e.pointer.active
}

// touchIDs is reused across frames to avoid allocation.
var touchIDs []ebiten.TouchID

// readEbitenInput polls mouse and touch state and feeds it to e. The first
// touch acts as the pointer; every new touch counts as a click.
func readEbitenInput(e *Engine) {
	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
	if len(touchIDs) > 0 {
		tx, ty := ebiten.TouchPosition(touchIDs[0])
		e.PointerMove(float64(tx), float64(ty))
	} else {
		mx, my := ebiten.CursorPosition()
		x, y := float64(mx), float64(my)
		if x >= 0 && y >= 0 && x < e.width && y < e.height {
			e.PointerMove(x, y)
		} else {
			e.PointerLeave()
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		e.Click(float64(mx), float64(my))
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		tx, ty := ebiten.TouchPosition(id)
		e.Click(float64(tx), float64(ty))
	}
}
