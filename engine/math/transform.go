package math

// NewMat4World builds the world matrix of an object that first rotates about
// its own origin (rotation holds Euler angles in radians: X is pitch, Y is
// yaw, Z is roll) and is then moved to position.
func NewMat4World(position, rotation Vec3) Mat4 {
	r := NewMat4RotationYawPitchRoll(rotation.Y, rotation.X, rotation.Z)
	t := NewMat4Translation(position)
	return r.Mul(t)
}

// NewMat4Transform composes the full model-to-clip matrix as
// world * view * projection. The order is significant.
func NewMat4Transform(world, view, projection Mat4) Mat4 {
	return world.Mul(view).Mul(projection)
}
