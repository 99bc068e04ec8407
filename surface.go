package codewing

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Glyph is one text draw: the string centred on (X, Y) and rotated by
// Rotation radians about that point. Color is straight alpha.
type Glyph struct {
	Text     string
	X, Y     float64
	Rotation float64
	Color    Color
	Blend    BlendMode
}

// Surface is the drawing capability the Renderer needs. Implementations may
// target a GPU image, a terminal, or a recording for tests.
type Surface interface {
	// Clear wipes the surface for a new frame.
	Clear()
	// SetFontSize selects the glyph size for subsequent DrawGlyph calls.
	SetFontSize(size float64)
	DrawGlyph(g Glyph)
}

// EbitenSurface draws glyphs onto an *ebiten.Image with text/v2.
type EbitenSurface struct {
	// Background fills the target on Clear. A zero alpha clears to transparent.
	Background Color

	target *ebiten.Image
	font   *GlyphFont
	face   *text.GoTextFace
}

// NewEbitenSurface returns a surface over target using font.
func NewEbitenSurface(target *ebiten.Image, font *GlyphFont) *EbitenSurface {
	return &EbitenSurface{target: target, font: font, face: font.Face(12)}
}

// SetTarget redirects drawing, e.g. after the window is resized.
func (s *EbitenSurface) SetTarget(target *ebiten.Image) {
	s.target = target
}

// Target returns the image being drawn to.
func (s *EbitenSurface) Target() *ebiten.Image {
	return s.target
}

// Clear implements Surface.
func (s *EbitenSurface) Clear() {
	if s.target == nil {
		return
	}
	if s.Background.A > 0 {
		s.target.Fill(s.Background.toRGBA())
		return
	}
	s.target.Clear()
}

// SetFontSize implements Surface.
func (s *EbitenSurface) SetFontSize(size float64) {
	s.face = s.font.Face(size)
}

// DrawGlyph implements Surface.
func (s *EbitenSurface) DrawGlyph(g Glyph) {
	if s.target == nil || g.Text == "" || g.Color.A <= 0 {
		return
	}
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	if g.Rotation != 0 {
		op.GeoM.Rotate(g.Rotation)
	}
	op.GeoM.Translate(g.X, g.Y)
	a := clamp01(g.Color.A)
	op.ColorScale.Scale(
		float32(g.Color.R*a),
		float32(g.Color.G*a),
		float32(g.Color.B*a),
		float32(a),
	)
	op.Blend = g.Blend.EbitenBlend()
	text.Draw(s.target, g.Text, s.face, op)
}
