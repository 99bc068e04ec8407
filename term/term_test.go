package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/codewing"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)
	return screen
}

func TestSurface_PixelSize(t *testing.T) {
	s := NewSurface(newScreen(t))
	w, h := s.PixelSize()
	if w != 80*CellWidth || h != 24*CellHeight {
		t.Errorf("PixelSize = (%v, %v), want (%v, %v)", w, h, 80*CellWidth, 24*CellHeight)
	}
}

func TestSurface_DrawGlyphCentred(t *testing.T) {
	screen := newScreen(t)
	s := NewSurface(screen)
	s.SetFontSize(12)
	// Centre of cell (10, 5).
	s.DrawGlyph(codewing.Glyph{Text: "func", X: 10*CellWidth + 4, Y: 5*CellHeight + 8, Color: codewing.ColorWhite})

	want := "func"
	for i, r := range want {
		got, _, _, _ := screen.GetContent(8+i, 5)
		if got != r {
			t.Errorf("cell (%d, 5) = %q, want %q", 8+i, got, r)
		}
	}
}

func TestSurface_DrawGlyphClipsEdges(t *testing.T) {
	screen := newScreen(t)
	s := NewSurface(screen)
	s.SetFontSize(12)
	// Must not panic for glyphs straddling or beyond the screen edge.
	s.DrawGlyph(codewing.Glyph{Text: "return", X: 0, Y: 0, Color: codewing.ColorWhite})
	s.DrawGlyph(codewing.Glyph{Text: "return", X: 80 * CellWidth, Y: 5, Color: codewing.ColorWhite})
	s.DrawGlyph(codewing.Glyph{Text: "x", X: -100, Y: -100, Color: codewing.ColorWhite})
	s.DrawGlyph(codewing.Glyph{Text: "x", X: 10, Y: 24 * CellHeight, Color: codewing.ColorWhite})

	got, _, _, _ := screen.GetContent(0, 0)
	if got != 'u' {
		t.Errorf("cell (0, 0) = %q, want 'u'", got)
	}
}

func TestSurface_SkipsTransparent(t *testing.T) {
	screen := newScreen(t)
	s := NewSurface(screen)
	s.DrawGlyph(codewing.Glyph{Text: "null", X: 100, Y: 100, Color: codewing.ColorWhite.WithAlpha(0.01)})

	got, _, _, _ := screen.GetContent(int(100/CellWidth), int(100/CellHeight))
	if got != ' ' && got != 0 {
		t.Errorf("transparent glyph drew %q", got)
	}
}

func TestSurface_BlendTowardBackground(t *testing.T) {
	s := NewSurface(newScreen(t))
	tests := []struct {
		name  string
		alpha float64
		want  tcell.Color
	}{
		{"opaque", 1, tcell.NewRGBColor(255, 255, 255)},
		{"half", 0.5, tcell.NewRGBColor(128, 128, 128)},
		{"clear", 0, tcell.NewRGBColor(0, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.blend(codewing.ColorWhite.WithAlpha(tt.alpha)); got != tt.want {
				t.Errorf("blend = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInput_Handle(t *testing.T) {
	e, err := codewing.NewEngine(codewing.DefaultConfig(), codewing.NewRand(1))
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	e.SpawnEnabled = false
	e.EnableMelt(codewing.NewPixelBuffer(640, 384))
	var in Input

	if !in.Handle(e, tcell.NewEventResize(80, 24)) {
		t.Fatal("resize should not quit")
	}
	if w, h := e.Size(); w != 640 || h != 384 {
		t.Errorf("Size = (%v, %v), want (640, 384)", w, h)
	}

	in.Handle(e, tcell.NewEventMouse(3, 2, tcell.ButtonNone, 0))
	x, y, active := e.Pointer()
	if !active || x != 3.5*CellWidth || y != 2.5*CellHeight {
		t.Errorf("Pointer = (%v, %v, %v), want (%v, %v, true)", x, y, active, 3.5*CellWidth, 2.5*CellHeight)
	}

	// Press then hold: one click.
	in.Handle(e, tcell.NewEventMouse(3, 2, tcell.Button1, 0))
	in.Handle(e, tcell.NewEventMouse(4, 2, tcell.Button1, 0))
	e.Update(1.0 / 60)
	if got := e.Melt().Len(); got != 5 {
		t.Errorf("drips = %d, want 5 (one click)", got)
	}

	if in.Handle(e, tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("Escape should quit")
	}
	if in.Handle(e, tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("q should quit")
	}
}

func TestInput_PointerLeave(t *testing.T) {
	e, err := codewing.NewEngine(codewing.DefaultConfig(), codewing.NewRand(1))
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	var in Input
	in.Handle(e, tcell.NewEventResize(80, 24))

	tests := []struct {
		name string
		ev   tcell.Event
	}{
		{"focus lost", tcell.NewEventFocus(false)},
		{"off screen", tcell.NewEventMouse(90, 2, tcell.ButtonNone, 0)},
		{"negative", tcell.NewEventMouse(-1, -1, tcell.ButtonNone, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in.Handle(e, tcell.NewEventMouse(3, 2, tcell.ButtonNone, 0))
			if _, _, active := e.Pointer(); !active {
				t.Fatal("pointer inactive after move")
			}
			if !in.Handle(e, tt.ev) {
				t.Fatal("event should not quit")
			}
			if _, _, active := e.Pointer(); active {
				t.Error("pointer still active")
			}
		})
	}

	// Regaining focus leaves the pointer alone until the next move.
	in.Handle(e, tcell.NewEventFocus(true))
	if _, _, active := e.Pointer(); active {
		t.Error("focus gained reactivated the pointer")
	}
}
