package renderer

import (
	"errors"
	"image"
	"testing"

	"github.com/spaghettifunk/softrast/engine/core"
	"github.com/spaghettifunk/softrast/engine/math"
)

type recordingSurface struct {
	frames []*image.RGBA
}

func (s *recordingSurface) Present(frame *image.RGBA) error {
	s.frames = append(s.frames, frame)
	return nil
}

func isZero(pix []uint8) bool {
	for _, p := range pix {
		if p != 0 {
			return false
		}
	}
	return true
}

func TestNewDeviceInvalidSize(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"zero width", 0, 10},
		{"zero height", 10, 0},
		{"negative", -4, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewDevice(tt.width, tt.height)
			if !errors.Is(err, core.ErrInvalidBufferSize) {
				t.Fatalf("expected ErrInvalidBufferSize, got %v", err)
			}
			if d != nil {
				t.Fatal("expected nil device")
			}
		})
	}
}

func TestPresentBeforeClear(t *testing.T) {
	d, err := NewDevice(8, 6)
	if err != nil {
		t.Fatal(err)
	}
	if len(d.Image().Pix) != 8*6*4 {
		t.Fatalf("unexpected buffer length %d", len(d.Image().Pix))
	}

	s := &recordingSurface{}
	if err := d.Present(s); err != nil {
		t.Fatal(err)
	}
	if len(s.frames) != 1 || s.frames[0] != d.Image() {
		t.Fatal("surface did not receive the back buffer")
	}
	if !isZero(s.frames[0].Pix) {
		t.Fatal("fresh buffer is not transparent black")
	}
}

func TestClear(t *testing.T) {
	d, _ := NewDevice(16, 16)
	d.DrawLine(math.NewVec2(0, 0), math.NewVec2(15, 15))
	d.DrawPoint(math.NewVec2(-1, 3))
	if d.Stats().Plotted == 0 || d.Stats().Clipped != 1 {
		t.Fatalf("unexpected stats before clear: %s", d.Stats())
	}

	d.Clear()
	if !isZero(d.Image().Pix) {
		t.Fatal("Clear left pixels behind")
	}
	if d.Stats() != (FrameStats{}) {
		t.Fatalf("Clear did not reset stats: %s", d.Stats())
	}

	// idempotent
	d.Clear()
	if !isZero(d.Image().Pix) {
		t.Fatal("second Clear changed the buffer")
	}
}

func TestPutPixel(t *testing.T) {
	d, _ := NewDevice(4, 3)
	d.PutPixel(2, 1, math.NewColor4(0.5, 1, 0, 1))

	pix := d.Image().Pix
	want := []uint8{127, 255, 0, 255}
	for i, w := range want {
		if pix[24+i] != w {
			t.Fatalf("channel %d: expected %d, got %d", i, w, pix[24+i])
		}
	}
	for i, p := range pix {
		if (i < 24 || i >= 28) && p != 0 {
			t.Fatalf("byte %d was touched", i)
		}
	}

	d.PutPixel(0, 0, math.NewColor4(2, -1, 0.999, 1))
	if pix[0] != 255 || pix[1] != 0 || pix[2] != 254 {
		t.Fatalf("channels not clamped and truncated: %v", pix[0:4])
	}
}
