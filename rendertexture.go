package codewing

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// RenderTexture is a persistent offscreen canvas that doubles as the GPU
// Framebuffer for the melt effect. It is owned by the caller and is NOT
// recycled between frames, so drips accumulate across ticks.
//
// ReadBlock and WriteBlock go through ReadPixels/WritePixels and are only
// valid while the game loop is running.
type RenderTexture struct {
	image *ebiten.Image
	w, h  int
}

// NewRenderTexture creates a persistent offscreen canvas of the given size.
func NewRenderTexture(w, h int) *RenderTexture {
	return &RenderTexture{
		image: ebiten.NewImage(w, h),
		w:     w,
		h:     h,
	}
}

// NewRenderTextureFrom creates a canvas holding a copy of src.
func NewRenderTextureFrom(src image.Image) *RenderTexture {
	img := ebiten.NewImageFromImage(src)
	b := img.Bounds()
	return &RenderTexture{image: img, w: b.Dx(), h: b.Dy()}
}

// Image returns the underlying *ebiten.Image for direct manipulation.
func (rt *RenderTexture) Image() *ebiten.Image {
	return rt.image
}

// Width returns the texture width in pixels.
func (rt *RenderTexture) Width() int {
	return rt.w
}

// Height returns the texture height in pixels.
func (rt *RenderTexture) Height() int {
	return rt.h
}

// Clear fills the texture with transparent black.
func (rt *RenderTexture) Clear() {
	rt.image.Clear()
}

// Load replaces the texture contents with src, scaled to fill the canvas.
func (rt *RenderTexture) Load(src image.Image) {
	rt.image.Clear()
	img := ebiten.NewImageFromImage(src)
	b := img.Bounds()
	var op ebiten.DrawImageOptions
	if b.Dx() > 0 && b.Dy() > 0 {
		op.GeoM.Scale(float64(rt.w)/float64(b.Dx()), float64(rt.h)/float64(b.Dy()))
	}
	op.Filter = ebiten.FilterLinear
	rt.image.DrawImage(img, &op)
	img.Deallocate()
}

// Bounds implements Framebuffer.
func (rt *RenderTexture) Bounds() image.Rectangle {
	return image.Rect(0, 0, rt.w, rt.h)
}

// ReadBlock implements Framebuffer.
func (rt *RenderTexture) ReadBlock(r image.Rectangle) (Block, error) {
	clip := r.Canon().Intersect(rt.Bounds())
	if clip.Empty() {
		return Block{}, ErrEmptyBlock
	}
	pix := make([]byte, 4*clip.Dx()*clip.Dy())
	rt.image.SubImage(clip).(*ebiten.Image).ReadPixels(pix)
	return Block{Rect: clip, Pix: pix}, nil
}

// WriteBlock implements Framebuffer.
func (rt *RenderTexture) WriteBlock(at image.Point, b Block) error {
	dst, clip, err := clipWrite(at, b, rt.Bounds())
	if err != nil {
		return err
	}
	rt.image.SubImage(clip).(*ebiten.Image).WritePixels(cropBlock(b, dst, clip))
	return nil
}

// Resize deallocates the old image and creates a new one at the given dimensions.
func (rt *RenderTexture) Resize(width, height int) {
	if rt.image != nil {
		rt.image.Deallocate()
	}
	rt.image = ebiten.NewImage(width, height)
	rt.w = width
	rt.h = height
}

// Dispose deallocates the underlying image. The RenderTexture should not be
// used after calling Dispose.
func (rt *RenderTexture) Dispose() {
	if rt.image != nil {
		rt.image.Deallocate()
		rt.image = nil
	}
}

// toRGBA converts a Color to a colorRGBA (premultiplied).
func (c Color) toRGBA() colorRGBA {
	return colorRGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// colorRGBA implements the color.Color interface for image.Fill.
type colorRGBA struct {
	R, G, B, A uint8
}

func (c colorRGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
}
