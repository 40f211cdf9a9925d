package scene

import (
	gomath "math"

	"github.com/spaghettifunk/softrast/engine/math"
)

/**
 * @brief Represents a camera looking from Position towards Target. The host
 * owns it and may move it between frames; the renderer only reads it.
 */
type Camera struct {
	Position math.Vec3
	Target   math.Vec3
}

func NewCamera() *Camera {
	camera := &Camera{}
	camera.Reset()
	return camera
}

func (c *Camera) Reset() {
	c.Position = math.NewVec3Zero()
	c.Target = math.NewVec3Zero()
}

// Forward returns the normalized viewing direction.
func (c *Camera) Forward() math.Vec3 {
	return c.Target.Sub(c.Position).Normalized()
}

// MoveForward moves the camera along its viewing direction, keeping the target.
func (c *Camera) MoveForward(amount float32) {
	c.Position = c.Position.Add(c.Forward().MulScalar(amount))
}

func (c *Camera) MoveBackward(amount float32) {
	c.MoveForward(-amount)
}

// Orbit rotates the camera position around the target by the given yaw, in radians.
func (c *Camera) Orbit(yaw float32) {
	offset := c.Position.Sub(c.Target)
	c.Position = c.Target.Add(offset.Transform(math.NewMat4EulerY(yaw)))
}

// FrameExtents aims the camera at the centre of e and pulls it back along its
// current viewing direction until the bounding sphere of e fits a vertical
// field of view of fov radians. Empty extents only retarget the camera.
func (c *Camera) FrameExtents(e math.Extents3D, fov float32) {
	forward := c.Forward()
	if forward == math.NewVec3Zero() {
		forward = math.NewVec3(0, 0, -1)
	}
	c.Target = e.Center()

	radius := e.Size().Length() * 0.5
	if radius == 0 {
		return
	}
	distance := radius / float32(gomath.Sin(float64(fov)*0.5))
	c.Position = c.Target.Sub(forward.MulScalar(distance))
}
