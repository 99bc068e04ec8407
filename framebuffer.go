package codewing

import (
	"errors"
	"image"

	xdraw "golang.org/x/image/draw"
)

var (
	// ErrEmptyBlock is returned when a block rectangle lies entirely outside
	// the framebuffer after clipping.
	ErrEmptyBlock = errors.New("codewing: block is empty after clipping")
	// ErrBlockMismatch is returned when a block's pixel slice does not match
	// its rectangle.
	ErrBlockMismatch = errors.New("codewing: block pixels do not match rectangle")
)

// Block is a rectangle of premultiplied RGBA pixels, 4 bytes per pixel,
// row-major, with no padding between rows.
type Block struct {
	Rect image.Rectangle
	Pix  []byte
}

// valid reports whether Pix holds exactly the pixels of Rect.
func (b Block) valid() bool {
	return !b.Rect.Empty() && len(b.Pix) == 4*b.Rect.Dx()*b.Rect.Dy()
}

// Framebuffer is the raster capability the melt effect mutates. Both methods
// clip against Bounds; nothing outside the buffer is ever read or written.
type Framebuffer interface {
	Bounds() image.Rectangle
	// ReadBlock returns the pixels of r clipped to Bounds. The returned
	// Block's Rect is the clipped rectangle.
	ReadBlock(r image.Rectangle) (Block, error)
	// WriteBlock copies b with its top-left corner at 'at', dropping the
	// part that falls outside Bounds.
	WriteBlock(at image.Point, b Block) error
}

// clipWrite returns the destination rectangle of a block placed at 'at' and
// its intersection with bounds.
func clipWrite(at image.Point, b Block, bounds image.Rectangle) (dst, clip image.Rectangle, err error) {
	if !b.valid() {
		return image.Rectangle{}, image.Rectangle{}, ErrBlockMismatch
	}
	dst = image.Rectangle{Min: at, Max: at.Add(b.Rect.Size())}
	clip = dst.Intersect(bounds)
	if clip.Empty() {
		return dst, clip, ErrEmptyBlock
	}
	return dst, clip, nil
}

// cropBlock extracts the clip region of a block whose pixels are laid out
// over dst. clip must be inside dst.
func cropBlock(b Block, dst, clip image.Rectangle) []byte {
	if clip == dst {
		return b.Pix
	}
	stride := 4 * dst.Dx()
	row := 4 * clip.Dx()
	out := make([]byte, row*clip.Dy())
	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		off := (y-dst.Min.Y)*stride + 4*(clip.Min.X-dst.Min.X)
		copy(out[(y-clip.Min.Y)*row:], b.Pix[off:off+row])
	}
	return out
}

// PixelBuffer is an in-memory Framebuffer backed by an *image.RGBA.
type PixelBuffer struct {
	img *image.RGBA
}

// NewPixelBuffer returns a transparent w×h buffer.
func NewPixelBuffer(w, h int) *PixelBuffer {
	return &PixelBuffer{img: image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0)))}
}

// PixelBufferFrom copies src into a new buffer with its origin at (0, 0).
func PixelBufferFrom(src image.Image) *PixelBuffer {
	b := src.Bounds()
	pb := NewPixelBuffer(b.Dx(), b.Dy())
	xdraw.Draw(pb.img, pb.img.Bounds(), src, b.Min, xdraw.Src)
	return pb
}

// Image returns the backing image.
func (pb *PixelBuffer) Image() *image.RGBA {
	return pb.img
}

// Bounds implements Framebuffer.
func (pb *PixelBuffer) Bounds() image.Rectangle {
	return pb.img.Bounds()
}

// ReadBlock implements Framebuffer.
func (pb *PixelBuffer) ReadBlock(r image.Rectangle) (Block, error) {
	clip := r.Canon().Intersect(pb.img.Bounds())
	if clip.Empty() {
		return Block{}, ErrEmptyBlock
	}
	row := 4 * clip.Dx()
	pix := make([]byte, row*clip.Dy())
	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		off := pb.img.PixOffset(clip.Min.X, y)
		copy(pix[(y-clip.Min.Y)*row:], pb.img.Pix[off:off+row])
	}
	return Block{Rect: clip, Pix: pix}, nil
}

// WriteBlock implements Framebuffer.
func (pb *PixelBuffer) WriteBlock(at image.Point, b Block) error {
	dst, clip, err := clipWrite(at, b, pb.img.Bounds())
	if err != nil {
		return err
	}
	pix := cropBlock(b, dst, clip)
	row := 4 * clip.Dx()
	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		off := pb.img.PixOffset(clip.Min.X, y)
		copy(pb.img.Pix[off:off+row], pix[(y-clip.Min.Y)*row:])
	}
	return nil
}
