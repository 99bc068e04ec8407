package codewing

import (
	"errors"
	"image"
	"testing"
)

var _ Framebuffer = (*RenderTexture)(nil)
var _ Framebuffer = (*PixelBuffer)(nil)

func TestNewRenderTextureDimensions(t *testing.T) {
	rt := NewRenderTexture(128, 64)
	defer rt.Dispose()

	if rt.Width() != 128 {
		t.Errorf("Width = %d, want 128", rt.Width())
	}
	if rt.Height() != 64 {
		t.Errorf("Height = %d, want 64", rt.Height())
	}
	if rt.Bounds() != image.Rect(0, 0, 128, 64) {
		t.Errorf("Bounds = %v, want 128x64", rt.Bounds())
	}
	if rt.Image() == nil {
		t.Error("Image() should not be nil")
	}
}

func TestNewRenderTextureFrom(t *testing.T) {
	rt := NewRenderTextureFrom(image.NewRGBA(image.Rect(0, 0, 30, 20)))
	defer rt.Dispose()
	if rt.Width() != 30 || rt.Height() != 20 {
		t.Errorf("size = %dx%d, want 30x20", rt.Width(), rt.Height())
	}
}

func TestRenderTextureResize(t *testing.T) {
	rt := NewRenderTexture(32, 32)
	defer rt.Dispose()
	old := rt.Image()

	rt.Resize(64, 48)
	if rt.Width() != 64 || rt.Height() != 48 {
		t.Errorf("size = %dx%d, want 64x48", rt.Width(), rt.Height())
	}
	if rt.Image() == old {
		t.Error("Resize should allocate a new image")
	}
}

func TestRenderTextureDispose(t *testing.T) {
	rt := NewRenderTexture(16, 16)
	rt.Dispose()
	if rt.Image() != nil {
		t.Error("Image() should be nil after Dispose")
	}
	rt.Dispose()
}

func TestRenderTextureRejectsOutsideBlocks(t *testing.T) {
	rt := NewRenderTexture(16, 16)
	defer rt.Dispose()

	if _, err := rt.ReadBlock(image.Rect(20, 20, 30, 30)); !errors.Is(err, ErrEmptyBlock) {
		t.Errorf("outside read err = %v, want ErrEmptyBlock", err)
	}
	blk := Block{Rect: image.Rect(0, 0, 2, 2), Pix: make([]byte, 16)}
	if err := rt.WriteBlock(image.Pt(-10, 0), blk); !errors.Is(err, ErrEmptyBlock) {
		t.Errorf("outside write err = %v, want ErrEmptyBlock", err)
	}
	blk.Pix = blk.Pix[:8]
	if err := rt.WriteBlock(image.Pt(0, 0), blk); !errors.Is(err, ErrBlockMismatch) {
		t.Errorf("short block err = %v, want ErrBlockMismatch", err)
	}
}
