package codewing

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func fixedMeltConfig() MeltConfig {
	cfg := DefaultConfig().Melt
	cfg.DripBatch = 1
	cfg.Spread = 0
	cfg.Jitter = 0
	cfg.Speed = Range{4, 4}
	cfg.Width = Range{10, 10}
	return cfg
}

// --- PixelBuffer ---

func TestPixelBufferReadClips(t *testing.T) {
	pb := NewPixelBuffer(4, 4)
	blk, err := pb.ReadBlock(image.Rect(-2, -2, 3, 3))
	if err != nil {
		t.Fatalf("ReadBlock: %v", err)
	}
	if blk.Rect != image.Rect(0, 0, 3, 3) {
		t.Errorf("Rect = %v, want (0,0)-(3,3)", blk.Rect)
	}
	if len(blk.Pix) != 36 {
		t.Errorf("len(Pix) = %d, want 36", len(blk.Pix))
	}

	if _, err := pb.ReadBlock(image.Rect(10, 10, 20, 20)); !errors.Is(err, ErrEmptyBlock) {
		t.Errorf("outside read err = %v, want ErrEmptyBlock", err)
	}
}

func TestPixelBufferWriteClips(t *testing.T) {
	pb := NewPixelBuffer(4, 4)
	blk := Block{Rect: image.Rect(0, 0, 2, 2), Pix: []byte{
		10, 0, 0, 255, 20, 0, 0, 255,
		30, 0, 0, 255, 40, 0, 0, 255,
	}}
	if err := pb.WriteBlock(image.Pt(3, 3), blk); err != nil {
		t.Fatalf("WriteBlock: %v", err)
	}
	if got := pb.Image().RGBAAt(3, 3); got.R != 10 || got.A != 255 {
		t.Errorf("pixel (3,3) = %v, want R 10", got)
	}
	if got := pb.Image().RGBAAt(2, 3); got.A != 0 {
		t.Errorf("pixel (2,3) = %v, want untouched", got)
	}

	if err := pb.WriteBlock(image.Pt(-5, 0), blk); !errors.Is(err, ErrEmptyBlock) {
		t.Errorf("outside write err = %v, want ErrEmptyBlock", err)
	}
	bad := Block{Rect: image.Rect(0, 0, 2, 2), Pix: make([]byte, 4)}
	if err := pb.WriteBlock(image.Pt(0, 0), bad); !errors.Is(err, ErrBlockMismatch) {
		t.Errorf("mismatched write err = %v, want ErrBlockMismatch", err)
	}
}

func TestPixelBufferFromOffsetsOrigin(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 9, 9))
	src.SetRGBA(5, 5, color.RGBA{255, 0, 0, 255})
	pb := PixelBufferFrom(src)
	if pb.Bounds() != image.Rect(0, 0, 4, 4) {
		t.Errorf("Bounds = %v, want 4x4 at origin", pb.Bounds())
	}
	if got := pb.Image().RGBAAt(0, 0); got.R != 255 {
		t.Errorf("pixel (0,0) = %v, want red", got)
	}
}

// --- MeltEngine ---

func TestMeltSpawnBatch(t *testing.T) {
	m := NewMeltEngine(DefaultConfig().Melt, NewRand(1), nil)
	if n := m.Spawn(100, 50); n != 5 {
		t.Errorf("Spawn = %d, want 5", n)
	}
	for _, d := range m.Drips() {
		if d.X < 70 || d.X >= 130 {
			t.Errorf("drip X = %v, want within [70, 130)", d.X)
		}
		if d.Y != 50 || d.Life != 1.5 {
			t.Errorf("drip Y = %v life = %v, want 50 and 1.5", d.Y, d.Life)
		}
		if d.Speed < 4 || d.Speed > 10 || d.Width < 20 || d.Width > 50 {
			t.Errorf("drip speed %v width %v out of range", d.Speed, d.Width)
		}
	}
}

func TestMeltLifetime(t *testing.T) {
	m := NewMeltEngine(DefaultConfig().Melt, NewRand(1), nil)
	m.Spawn(100, 0)
	ticks := 0
	for m.Len() > 0 && ticks < 500 {
		m.Update()
		ticks++
	}
	// 1.5 / 0.015 = 100 ticks, allowing one tick of float drift.
	if ticks < 100 || ticks > 101 {
		t.Errorf("drips lived %d ticks, want 100 or 101", ticks)
	}
	if m.Skipped() != 5*ticks {
		t.Errorf("Skipped = %d, want %d with no framebuffer", m.Skipped(), 5*ticks)
	}
}

func TestMeltRemovedAtBottom(t *testing.T) {
	m := NewMeltEngine(fixedMeltConfig(), NewRand(1), NewPixelBuffer(40, 10))
	m.Spawn(20, 7)
	m.Update()
	if m.Len() != 0 {
		t.Errorf("drip at Y %v survived past bottom 10", m.Drips()[0].Y)
	}
}

func TestMeltDisplacesBlock(t *testing.T) {
	pb := NewPixelBuffer(40, 40)
	img := pb.Image()
	for y := 0; y < 10; y++ {
		for x := 15; x < 25; x++ {
			img.SetRGBA(x, y, color.RGBA{255, 255, 255, 255})
		}
	}
	m := NewMeltEngine(fixedMeltConfig(), NewRand(1), pb)
	m.Spawn(20, 0)
	m.Update()

	// Source (15,0)-(25,10) is copied down by speed 4 onto (15,4)-(25,14).
	tests := []struct {
		x, y   int
		opaque bool
	}{
		{20, 0, true},
		{20, 13, true},
		{24, 13, true},
		{20, 14, false},
		{14, 5, false},
		{25, 5, false},
	}
	for _, tt := range tests {
		if got := img.RGBAAt(tt.x, tt.y).A == 255; got != tt.opaque {
			t.Errorf("pixel (%d,%d) opaque = %v, want %v", tt.x, tt.y, got, tt.opaque)
		}
	}
	if m.Skipped() != 0 {
		t.Errorf("Skipped = %d, want 0", m.Skipped())
	}
	d := m.Drips()[0]
	assertNear(t, "Y", d.Y, 4)
	assertNear(t, "Speed", d.Speed, 3.96)
	assertNear(t, "Life", d.Life, 1.485)
}

// boundsChecker wraps a Framebuffer and records any access outside Bounds.
type boundsChecker struct {
	*PixelBuffer
	t      *testing.T
	writes int
}

func (b *boundsChecker) ReadBlock(r image.Rectangle) (Block, error) {
	blk, err := b.PixelBuffer.ReadBlock(r)
	if err == nil && !blk.Rect.In(b.Bounds()) {
		b.t.Errorf("read %v outside %v", blk.Rect, b.Bounds())
	}
	return blk, err
}

func (b *boundsChecker) WriteBlock(at image.Point, blk Block) error {
	err := b.PixelBuffer.WriteBlock(at, blk)
	if err == nil {
		b.writes++
	}
	return err
}

func TestMeltNearEdgesStaysInBounds(t *testing.T) {
	fb := &boundsChecker{PixelBuffer: NewPixelBuffer(64, 48), t: t}
	m := NewMeltEngine(DefaultConfig().Melt, NewRand(5), fb)
	for _, pt := range [][2]float64{{-10, -10}, {0, 0}, {63, 47}, {70, 20}, {-100, 30}, {32, 46}} {
		m.Spawn(pt[0], pt[1])
	}
	for i := 0; i < 200 && m.Len() > 0; i++ {
		m.Update()
	}
	if m.Len() != 0 {
		t.Errorf("%d drips still alive after 200 ticks", m.Len())
	}
	if fb.writes == 0 {
		t.Error("no block was written")
	}
	if m.Skipped() == 0 {
		t.Error("off-buffer drips were not skipped")
	}
}

func TestMeltReset(t *testing.T) {
	m := NewMeltEngine(DefaultConfig().Melt, NewRand(1), nil)
	m.Spawn(0, 0)
	m.Reset()
	if m.Len() != 0 {
		t.Errorf("Len after Reset = %d", m.Len())
	}
	m.Update()
}
