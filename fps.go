package codewing

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsWidget displays FPS, TPS and live counts in the top-left corner.
// The text is refreshed every ~0.5 seconds.
type fpsWidget struct {
	img        *ebiten.Image
	lastUpdate float64
}

func newFPSWidget() *fpsWidget {
	// 160x48 is enough for three short lines of debug text.
	return &fpsWidget{img: ebiten.NewImage(160, 48), lastUpdate: 1}
}

func (w *fpsWidget) update(dt float64, e *Engine) {
	w.lastUpdate += dt
	if w.lastUpdate < 0.5 {
		return
	}
	w.lastUpdate = 0

	w.img.Clear()
	// Semi-transparent background for readability
	w.img.Fill(color.RGBA{0, 0, 0, 128})

	ebitenutil.DebugPrint(w.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nShapes: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), e.swarm.Len()))
}

func (w *fpsWidget) draw(screen *ebiten.Image) {
	screen.DrawImage(w.img, nil)
}
