package renderer

import (
	gomath "math"
	"math/big"

	"github.com/spaghettifunk/softrast/engine/math"
)

// WireColor is the colour of every edge: opaque yellow.
var WireColor = math.NewColor4(1, 1, 0, 1)

// Endpoints within this magnitude are walked with machine integers. It is the
// largest magnitude at which float32 still holds every integer.
const maxScreenCoord = 1 << 24

// DrawPoint plots p in the wire colour if it lies inside the buffer and
// silently drops it otherwise.
func (d *Device) DrawPoint(p math.Vec2) {
	d.drawPoint(int(p.X), int(p.Y))
}

func (d *Device) drawPoint(x, y int) {
	if x >= 0 && y >= 0 && x < d.width && y < d.height {
		d.putRGBA8(x, y, d.wire[0], d.wire[1], d.wire[2], d.wire[3])
		d.stats.Plotted++
		return
	}
	d.stats.Clipped++
}

// DrawLine rasterizes the segment p0-p1 with Bresenham's algorithm, clipping
// per pixel. Endpoints are truncated to integers. The segment is always
// walked from its lexicographically smaller endpoint so that p0-p1 and p1-p0
// cover the same pixels. Only a segment with a NaN or infinite endpoint is
// dropped; a far endpoint still yields the exact on-screen pixels.
func (d *Device) DrawLine(p0, p1 math.Vec2) {
	if d.onLine != nil {
		d.onLine(p0, p1)
	}
	d.stats.Lines++
	if !p0.IsFinite() || !p1.IsFinite() {
		d.stats.Dropped++
		return
	}
	if !nearScreen(p0) || !nearScreen(p1) {
		d.drawLongLine(truncBig(p0.X), truncBig(p0.Y), truncBig(p1.X), truncBig(p1.Y))
		return
	}

	x0, y0 := int(p0.X), int(p0.Y)
	x1, y1 := int(p1.X), int(p1.Y)
	if x1 < x0 || (x1 == x0 && y1 < y0) {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}

	dx := math.Abs(x1 - x0)
	dy := math.Abs(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		d.drawPoint(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// drawLongLine plots the same pixels as the Bresenham walk of DrawLine but
// only visits the steps that land inside the buffer. Along the major axis
// step k, the minor offset of the walk is floor((2*k*minor + major - 1) / (2*major)).
func (d *Device) drawLongLine(x0, y0, x1, y1 *big.Int) {
	if c := x1.Cmp(x0); c < 0 || (c == 0 && y1.Cmp(y0) < 0) {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}

	dx := new(big.Int).Sub(x1, x0)
	dy := new(big.Int).Sub(y1, y0)
	sy := dy.Sign()
	dy.Abs(dy)

	xMajor := dx.Cmp(dy) >= 0
	major, minor := dx, dy
	// offset along the major axis of the first and last visible step
	var first, last *big.Int
	if xMajor {
		first, last = visibleSteps(x0, 1, d.width, dx)
	} else {
		major, minor = dy, dx
		first, last = visibleSteps(y0, sy, d.height, dy)
	}

	visited := int64(0)
	if first.Cmp(last) <= 0 {
		twoMajor := new(big.Int).Lsh(major, 1)
		twoMinor := new(big.Int).Lsh(minor, 1)
		offset := new(big.Int)
		x, y := new(big.Int), new(big.Int)

		for k := new(big.Int).Set(first); k.Cmp(last) <= 0; k.Add(k, big.NewInt(1)) {
			if major.Sign() == 0 {
				offset.SetInt64(0)
			} else {
				offset.Mul(k, twoMinor)
				offset.Add(offset, major)
				offset.Sub(offset, big.NewInt(1))
				offset.Quo(offset, twoMajor)
			}
			if xMajor {
				x.Add(x0, k)
				y.Mul(offset, big.NewInt(int64(sy)))
				y.Add(y, y0)
			} else {
				x.Add(x0, offset)
				y.Mul(k, big.NewInt(int64(sy)))
				y.Add(y, y0)
			}
			d.drawPoint(screenInt(x), screenInt(y))
			visited++
		}
	}

	// every step of the walk that was never visited lies outside the buffer
	skipped := new(big.Int).Add(major, big.NewInt(1))
	skipped.Sub(skipped, big.NewInt(visited))
	if skipped.IsInt64() && skipped.Int64() <= int64(gomath.MaxInt-d.stats.Clipped) {
		d.stats.Clipped += int(skipped.Int64())
	} else {
		d.stats.Clipped = gomath.MaxInt
	}
}

// visibleSteps returns the range of steps k in [0, n] for which
// origin + dir*k falls inside [0, size).
func visibleSteps(origin *big.Int, dir, size int, n *big.Int) (first, last *big.Int) {
	edge := big.NewInt(int64(size - 1))
	if dir >= 0 {
		first = new(big.Int).Neg(origin)
		last = new(big.Int).Sub(edge, origin)
	} else {
		first = new(big.Int).Sub(origin, edge)
		last = new(big.Int).Set(origin)
	}
	if first.Sign() < 0 {
		first.SetInt64(0)
	}
	if last.Cmp(n) > 0 {
		last.Set(n)
	}
	return first, last
}

func nearScreen(p math.Vec2) bool {
	return math.Abs(p.X) <= maxScreenCoord && math.Abs(p.Y) <= maxScreenCoord
}

// truncBig truncates v toward zero without overflow. v must be finite.
func truncBig(v float32) *big.Int {
	i, _ := big.NewFloat(float64(v)).Int(nil)
	return i
}

// screenInt narrows a coordinate for the per-pixel clip. Anything outside
// the int range is far off screen either way.
func screenInt(v *big.Int) int {
	if !v.IsInt64() || v.Int64() > gomath.MaxInt || v.Int64() < gomath.MinInt {
		return -1
	}
	return int(v.Int64())
}
