package renderer

import (
	"github.com/spaghettifunk/softrast/engine/math"
	"github.com/spaghettifunk/softrast/engine/scene"
)

// Projection policy. These are engine defaults and are not configurable.
const (
	FieldOfView float32 = 0.78
	NearPlane   float32 = 0.01
	FarPlane    float32 = 1.0
)

// ViewMatrix looks from the camera position at its target, with +Y up.
func ViewMatrix(camera *scene.Camera) math.Mat4 {
	return math.NewMat4LookAtLH(camera.Position, camera.Target, math.NewVec3Up())
}

// ProjectionMatrix returns the fixed perspective projection for a buffer of
// the given size.
func ProjectionMatrix(width, height int) math.Mat4 {
	aspect := float32(width) / float32(height)
	return math.NewMat4PerspectiveFovLH(FieldOfView, aspect, NearPlane, FarPlane)
}

// WorldMatrix rotates the mesh about its origin, then moves it to its position.
func WorldMatrix(mesh *scene.Mesh) math.Mat4 {
	return math.NewMat4World(mesh.Position, mesh.Rotation)
}

// Project maps a model-space point through transform to screen pixels.
// The origin is the top-left corner and Y grows downwards. Coordinates are
// truncated toward zero, not rounded.
func (d *Device) Project(coord math.Vec3, transform math.Mat4) math.Vec2 {
	point := coord.TransformCoordinates(transform)

	w := float32(d.width)
	h := float32(d.height)
	x := math.Trunc(point.X*w/2 + w/2)
	y := math.Trunc(-point.Y*h/2 + h/2)
	return math.NewVec2(x, y)
}
