package codewing

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
)

// GlyphFont wraps Ebitengine's text/v2 for TrueType glyph rendering. Faces are
// created lazily per size and cached, so a frame that draws particles sorted
// by size only builds a handful of faces.
type GlyphFont struct {
	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
}

// LoadGlyphFont loads a TrueType font from raw TTF/OTF data.
func LoadGlyphFont(ttfData []byte) (*GlyphFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("codewing: failed to parse TTF data: %w", err)
	}
	return &GlyphFont{
		source: source,
		faces:  make(map[float64]*text.GoTextFace),
	}, nil
}

// DefaultGlyphFont loads the embedded Go Mono face, or Go Mono Bold.
func DefaultGlyphFont(bold bool) (*GlyphFont, error) {
	if bold {
		return LoadGlyphFont(gomonobold.TTF)
	}
	return LoadGlyphFont(gomono.TTF)
}

// Face returns the cached face for size, creating it on first use.
func (f *GlyphFont) Face(size float64) *text.GoTextFace {
	if face, ok := f.faces[size]; ok {
		return face
	}
	face := &text.GoTextFace{Source: f.source, Size: size}
	f.faces[size] = face
	return face
}
