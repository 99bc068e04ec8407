// Package term renders codewing glyphs into a terminal through tcell and
// translates terminal mouse and resize events into engine input.
//
// The engine works in pixels; the terminal in cells. Every cell is treated as
// CellWidth×CellHeight pixels, so an 80×24 terminal is a 640×384 surface.
package term

import (
	"math"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/codewing"
)

// Nominal cell size in engine pixels.
const (
	CellWidth  = 8
	CellHeight = 16
)

// minAlpha is the opacity below which a glyph is not drawn at all.
const minAlpha = 0.05

// Surface implements codewing.Surface over a tcell.Screen. Glyphs are laid
// out horizontally from their centre cell; rotation is ignored. Colors are
// blended toward Background by alpha since terminal cells have no opacity.
type Surface struct {
	Background codewing.Color

	screen tcell.Screen
	size   float64
}

// NewSurface returns a surface drawing to screen.
func NewSurface(screen tcell.Screen) *Surface {
	return &Surface{screen: screen}
}

// PixelSize returns the screen dimensions in engine pixels.
func (s *Surface) PixelSize() (float64, float64) {
	w, h := s.screen.Size()
	return float64(w * CellWidth), float64(h * CellHeight)
}

// Clear implements codewing.Surface.
func (s *Surface) Clear() {
	s.screen.Clear()
}

// SetFontSize implements codewing.Surface. Cells have a fixed size, so the
// size only decides whether long words are cut to their first rune.
func (s *Surface) SetFontSize(size float64) {
	s.size = size
}

// DrawGlyph implements codewing.Surface.
func (s *Surface) DrawGlyph(g codewing.Glyph) {
	if g.Color.A < minAlpha || g.Text == "" {
		return
	}
	if math.IsNaN(g.X) || math.IsNaN(g.Y) {
		return
	}
	text := g.Text
	if s.size > 0 && s.size < CellWidth {
		_, n := utf8.DecodeRuneInString(text)
		text = text[:n]
	}
	w, h := s.screen.Size()
	row := int(math.Floor(g.Y / CellHeight))
	if row < 0 || row >= h {
		return
	}
	n := utf8.RuneCountInString(text)
	col := int(math.Floor(g.X/CellWidth)) - n/2
	style := tcell.StyleDefault.Foreground(s.blend(g.Color))
	if g.Blend == codewing.BlendAdd {
		style = style.Bold(true)
	}
	for _, r := range text {
		if col >= 0 && col < w {
			s.screen.SetContent(col, row, r, nil, style)
		}
		col++
	}
}

// blend flattens a straight-alpha color over the background.
func (s *Surface) blend(c codewing.Color) tcell.Color {
	a := min(max(c.A, 0), 1)
	bg := s.Background
	mix := func(fg, bg float64) int32 {
		return int32(math.Round(255 * min(max(fg*a+bg*(1-a), 0), 1)))
	}
	return tcell.NewRGBColor(mix(c.R, bg.R), mix(c.G, bg.G), mix(c.B, bg.B))
}

// Input translates tcell events into engine calls. It tracks the primary
// button so only the press edge counts as a click. Losing focus or a mouse
// report outside the screen ends hover.
type Input struct {
	pressed bool
}

// Handle applies ev to e. It returns false when the user asked to quit
// (Escape, Ctrl-C or q).
func (in *Input) Handle(e *codewing.Engine, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune && ev.Rune() == 'q' {
			return false
		}
	case *tcell.EventFocus:
		if !ev.Focused {
			e.PointerLeave()
			in.pressed = false
		}
	case *tcell.EventMouse:
		cx, cy := ev.Position()
		x := (float64(cx) + 0.5) * CellWidth
		y := (float64(cy) + 0.5) * CellHeight
		if w, h := e.Size(); cx < 0 || cy < 0 || (w > 0 && x > w) || (h > 0 && y > h) {
			e.PointerLeave()
			in.pressed = false
			return true
		}
		e.PointerMove(x, y)
		down := ev.Buttons()&tcell.Button1 != 0
		if down && !in.pressed {
			e.Click(x, y)
		}
		in.pressed = down
	case *tcell.EventResize:
		w, h := ev.Size()
		e.Resize(float64(w*CellWidth), float64(h*CellHeight))
	}
	return true
}
