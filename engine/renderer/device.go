package renderer

import (
	"fmt"
	"image"

	"github.com/spaghettifunk/softrast/engine/core"
	"github.com/spaghettifunk/softrast/engine/math"
)

// Surface receives a completed frame. Implementations must treat the image
// as read-only and must not keep it past the call.
type Surface interface {
	Present(frame *image.RGBA) error
}

/**
 * @brief The software rendering device. It exclusively owns a single RGBA
 * back buffer sized at construction; the buffer is never reallocated.
 *
 * Per frame the host calls Clear, then Render one or more times, then
 * Present. A Device is not safe for concurrent use.
 */
type Device struct {
	width      int
	height     int
	backbuffer *image.RGBA
	projection math.Mat4
	wire       [4]uint8
	stats      FrameStats

	// test hook, called for every DrawLine before rasterization.
	onLine func(p0, p1 math.Vec2)
}

// NewDevice allocates a device with a width x height back buffer. The buffer
// starts fully transparent black, the same state Clear leaves behind.
func NewDevice(width, height int) (*Device, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("new device %dx%d: %w", width, height, core.ErrInvalidBufferSize)
	}
	d := &Device{
		width:      width,
		height:     height,
		backbuffer: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
	d.projection = ProjectionMatrix(width, height)
	r, g, b, a := WireColor.RGBA8()
	d.wire = [4]uint8{r, g, b, a}
	return d, nil
}

func (d *Device) Width() int  { return d.width }
func (d *Device) Height() int { return d.height }

// Image exposes the back buffer for reading.
func (d *Device) Image() *image.RGBA { return d.backbuffer }

// Stats returns the counters accumulated since the last Clear.
func (d *Device) Stats() FrameStats { return d.stats }

// Clear resets every pixel to transparent black and zeroes the frame stats.
func (d *Device) Clear() {
	clear(d.backbuffer.Pix)
	d.stats = FrameStats{}
}

// PutPixel stores color at (x, y). The coordinates are not checked: callers
// must clip first, which DrawPoint does.
func (d *Device) PutPixel(x, y int, color math.Color4) {
	r, g, b, a := color.RGBA8()
	d.putRGBA8(x, y, r, g, b, a)
}

func (d *Device) putRGBA8(x, y int, r, g, b, a uint8) {
	i := (x + y*d.width) * 4
	pix := d.backbuffer.Pix[i : i+4 : i+4]
	pix[0] = r
	pix[1] = g
	pix[2] = b
	pix[3] = a
}

// Present hands the back buffer to the surface. The buffer is left untouched.
func (d *Device) Present(s Surface) error {
	return s.Present(d.backbuffer)
}
