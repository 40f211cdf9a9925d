package math

import (
	m "math"
)

const (
	/** @brief An approximate representation of PI. */
	K_PI float32 = 3.14159265358979323846
	/** @brief An approximate representation of PI divided by 2. */
	K_HALF_PI float32 = 0.5 * K_PI
	/** @brief Smallest positive number where 1.0 + FLOAT_EPSILON != 0 */
	K_FLOAT_EPSILON float32 = 1.192092896e-07
)

/**
 * Note that these are here in order to prevent having to convert
 * to and from float64 everywhere.
 */
func ksin(x float32) float32 {
	return float32(m.Sin(float64(x)))
}

func kcos(x float32) float32 {
	return float32(m.Cos(float64(x)))
}

func ktan(x float32) float32 {
	return float32(m.Tan(float64(x)))
}

func ksqrt(x float32) float32 {
	return float32(m.Sqrt(float64(x)))
}

func kabs(x float32) float32 {
	return float32(m.Abs(float64(x)))
}

// IsFinite reports whether x is neither NaN nor an infinity.
func IsFinite(x float32) bool {
	return !m.IsNaN(float64(x)) && !m.IsInf(float64(x), 0)
}

// Trunc rounds x toward zero. NaN and infinities are returned unchanged.
func Trunc(x float32) float32 {
	return float32(m.Trunc(float64(x)))
}

// ------------------------------------------
// Vector 2
// ------------------------------------------

/**
 * @brief Creates and returns a new 2-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @return A new 2-element vector.
 */
func NewVec2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// IsFinite reports whether both components are finite numbers.
func (v Vec2) IsFinite() bool {
	return IsFinite(v.X) && IsFinite(v.Y)
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is less than tolerance.
 *
 * @param other The second vector.
 * @param tolerance The difference tolerance. Typically K_FLOAT_EPSILON or similar.
 * @return True if within tolerance; otherwise false.
 */
func (v Vec2) Compare(other Vec2, tolerance float32) bool {
	if kabs(v.X-other.X) > tolerance {
		return false
	}
	if kabs(v.Y-other.Y) > tolerance {
		return false
	}
	return true
}

// ------------------------------------------
// Vector 3
// ------------------------------------------

/**
 * @brief Creates and returns a new 3-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @param z The z value.
 * @return A new 3-element vector.
 */
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

/**
 * @brief Creates and returns a 3-component vector with all components set to 0.0f.
 */
func NewVec3Zero() Vec3 {
	return Vec3{}
}

/**
 * @brief Creates and returns a 3-component vector pointing up (0, 1, 0).
 */
func NewVec3Up() Vec3 {
	return Vec3{X: 0, Y: 1, Z: 0}
}

func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

func (v Vec3) MulScalar(scalar float32) Vec3 {
	return Vec3{X: v.X * scalar, Y: v.Y * scalar, Z: v.Z * scalar}
}

/**
 * @brief Returns the squared length of the provided vector.
 */
func (v Vec3) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

/**
 * @brief Returns the length of the provided vector.
 */
func (v Vec3) Length() float32 {
	return ksqrt(v.LengthSquared())
}

/**
 * @brief Returns a normalized copy of the supplied vector. A zero-length
 * vector is returned unchanged.
 */
func (v Vec3) Normalized() Vec3 {
	length := v.Length()
	if length == 0 {
		return v
	}
	return Vec3{X: v.X / length, Y: v.Y / length, Z: v.Z / length}
}

/**
 * @brief Returns the dot product between the provided vectors.
 */
func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

/**
 * @brief Calculates and returns the cross product of the supplied vectors.
 * The cross product is a new vector which is orthoganal to both provided vectors.
 */
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is less than tolerance.
 */
func (v Vec3) Compare(other Vec3, tolerance float32) bool {
	if kabs(v.X-other.X) > tolerance {
		return false
	}
	if kabs(v.Y-other.Y) > tolerance {
		return false
	}
	if kabs(v.Z-other.Z) > tolerance {
		return false
	}
	return true
}

/**
 * @brief Transform v by m. NOTE: It is assumed by this function that the
 * vector v is a point, not a direction, and is calculated as if a w component
 * with a value of 1.0f is there. No perspective divide is applied.
 *
 * @param m The matrix to transform by.
 * @return A transformed copy of v.
 */
func (v Vec3) Transform(m Mat4) Vec3 {
	out := Vec3{}
	out.X = v.X*m.Data[0+0] + v.Y*m.Data[4+0] + v.Z*m.Data[8+0] + 1.0*m.Data[12+0]
	out.Y = v.X*m.Data[0+1] + v.Y*m.Data[4+1] + v.Z*m.Data[8+1] + 1.0*m.Data[12+1]
	out.Z = v.X*m.Data[0+2] + v.Y*m.Data[4+2] + v.Z*m.Data[8+2] + 1.0*m.Data[12+2]
	return out
}

/**
 * @brief Transforms the point v by m and divides the result by the
 * resulting w component (the perspective divide). This is the full
 * coordinate transform used to go from model space to normalized device
 * coordinates.
 *
 * @param m The matrix to transform by.
 * @return The transformed and normalized point.
 */
func (v Vec3) TransformCoordinates(m Mat4) Vec3 {
	out := v.Transform(m)
	w := v.X*m.Data[3] + v.Y*m.Data[7] + v.Z*m.Data[11] + m.Data[15]
	return Vec3{X: out.X / w, Y: out.Y / w, Z: out.Z / w}
}

// ------------------------------------------
// Colour
// ------------------------------------------

/**
 * @brief Creates a new colour from normalized channel values.
 */
func NewColor4(r, g, b, a float32) Color4 {
	return Color4{R: r, G: g, B: b, A: a}
}

// RGBA8 converts every channel to [0, 255] with channel*255, truncating
// toward zero. Channels are clamped to [0, 1] first so out-of-range input
// cannot wrap around.
func (c Color4) RGBA8() (r, g, b, a uint8) {
	return channel8(c.R), channel8(c.G), channel8(c.B), channel8(c.A)
}

func channel8(v float32) uint8 {
	return uint8(Clamp(v, 0, 1) * 255)
}

// ------------------------------------------
// Matrix 4
// ------------------------------------------

/**
 * @brief Creates and returns an identity matrix:
 *
 * {
 *   {1, 0, 0, 0},
 *   {0, 1, 0, 0},
 *   {0, 0, 1, 0},
 *   {0, 0, 0, 1}
 * }
 *
 * @return A new identity matrix
 */
func NewMat4Identity() Mat4 {
	out_matrix := Mat4{}
	out_matrix.Data[0] = 1.0
	out_matrix.Data[5] = 1.0
	out_matrix.Data[10] = 1.0
	out_matrix.Data[15] = 1.0
	return out_matrix
}

/**
 * @brief Returns the result of multiplying mt and other. Since points are
 * row vectors, the result applies mt first and other second.
 *
 * @param other The second matrix to be multiplied.
 * @return The result of the matrix multiplication.
 */
func (mt Mat4) Mul(other Mat4) Mat4 {
	out_matrix := Mat4{}

	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			sum := float32(0)
			for i := 0; i < 4; i++ {
				sum += mt.Data[row*4+i] * other.Data[i*4+col]
			}
			out_matrix.Data[row*4+col] = sum
		}
	}

	return out_matrix
}

/**
 * @brief Creates and returns a left-handed perspective matrix with a fixed
 * vertical field of view. Depth is mapped to [0, 1].
 *
 * @param fov_radians The field of view in radians.
 * @param aspect_ratio The aspect ratio (width / height).
 * @param near_clip The near clipping plane distance.
 * @param far_clip The far clipping plane distance.
 * @return A new perspective matrix.
 */
func NewMat4PerspectiveFovLH(fov_radians, aspect_ratio, near_clip, far_clip float32) Mat4 {
	t := 1.0 / ktan(fov_radians*0.5)
	out_matrix := Mat4{}
	out_matrix.Data[0] = t / aspect_ratio
	out_matrix.Data[5] = t
	out_matrix.Data[10] = far_clip / (far_clip - near_clip)
	out_matrix.Data[11] = 1.0
	out_matrix.Data[14] = -(near_clip * far_clip) / (far_clip - near_clip)
	return out_matrix
}

/**
 * @brief Creates and returns a left-handed look-at matrix, or a matrix
 * looking at target from the perspective of eye.
 *
 * @param eye The position of the viewer.
 * @param target The position to "look at".
 * @param up The up vector.
 * @return A matrix looking at target from the perspective of eye.
 */
func NewMat4LookAtLH(eye, target, up Vec3) Mat4 {
	z_axis := target.Sub(eye).Normalized()
	x_axis := up.Cross(z_axis)
	if x_axis.LengthSquared() == 0 {
		// up and the view direction are parallel, pick any perpendicular axis.
		x_axis = Vec3{X: 1}
	} else {
		x_axis = x_axis.Normalized()
	}
	y_axis := z_axis.Cross(x_axis).Normalized()

	out_matrix := Mat4{}
	out_matrix.Data[0] = x_axis.X
	out_matrix.Data[1] = y_axis.X
	out_matrix.Data[2] = z_axis.X
	out_matrix.Data[4] = x_axis.Y
	out_matrix.Data[5] = y_axis.Y
	out_matrix.Data[6] = z_axis.Y
	out_matrix.Data[8] = x_axis.Z
	out_matrix.Data[9] = y_axis.Z
	out_matrix.Data[10] = z_axis.Z
	out_matrix.Data[12] = -x_axis.Dot(eye)
	out_matrix.Data[13] = -y_axis.Dot(eye)
	out_matrix.Data[14] = -z_axis.Dot(eye)
	out_matrix.Data[15] = 1.0

	return out_matrix
}

/**
 * @brief Creates and returns a translation matrix from the given position.
 *
 * @param position The position to be used to create the matrix.
 * @return A newly created translation matrix.
 */
func NewMat4Translation(position Vec3) Mat4 {
	out_matrix := NewMat4Identity()
	out_matrix.Data[12] = position.X
	out_matrix.Data[13] = position.Y
	out_matrix.Data[14] = position.Z
	return out_matrix
}

/**
 * @brief Creates a rotation matrix from the provided y angle.
 *
 * @param angle_radians The y angle in radians.
 * @return A rotation matrix.
 */
func NewMat4EulerY(angle_radians float32) Mat4 {
	out_matrix := NewMat4Identity()
	c := kcos(angle_radians)
	s := ksin(angle_radians)

	out_matrix.Data[0] = c
	out_matrix.Data[2] = -s
	out_matrix.Data[8] = s
	out_matrix.Data[10] = c
	return out_matrix
}

/**
 * @brief Creates a rotation matrix from yaw (around Y), pitch (around X)
 * and roll (around Z). Roll is applied first, then pitch, then yaw, so the
 * result rotates about Z, then X, then Y.
 *
 * @param yaw The y rotation in radians.
 * @param pitch The x rotation in radians.
 * @param roll The z rotation in radians.
 * @return A rotation matrix.
 */
func NewMat4RotationYawPitchRoll(yaw, pitch, roll float32) Mat4 {
	return NewQuatYawPitchRoll(yaw, pitch, roll).ToMat4()
}

// ------------------------------------------
// Quaternion
// ------------------------------------------

/**
 * @brief Creates a quaternion from yaw (Y), pitch (X) and roll (Z) angles
 * given in radians.
 */
func NewQuatYawPitchRoll(yaw, pitch, roll float32) Quaternion {
	half_roll := roll * 0.5
	half_pitch := pitch * 0.5
	half_yaw := yaw * 0.5

	sin_roll, cos_roll := ksin(half_roll), kcos(half_roll)
	sin_pitch, cos_pitch := ksin(half_pitch), kcos(half_pitch)
	sin_yaw, cos_yaw := ksin(half_yaw), kcos(half_yaw)

	return Quaternion{
		X: cos_yaw*sin_pitch*cos_roll + sin_yaw*cos_pitch*sin_roll,
		Y: sin_yaw*cos_pitch*cos_roll - cos_yaw*sin_pitch*sin_roll,
		Z: cos_yaw*cos_pitch*sin_roll - sin_yaw*sin_pitch*cos_roll,
		W: cos_yaw*cos_pitch*cos_roll + sin_yaw*sin_pitch*sin_roll,
	}
}

func (q Quaternion) Normal() float32 {
	return ksqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

func (q Quaternion) Normalize() Quaternion {
	normal := q.Normal()
	if normal == 0 {
		return Quaternion{W: 1}
	}
	return Quaternion{
		q.X / normal,
		q.Y / normal,
		q.Z / normal,
		q.W / normal}
}

/**
 * @brief Creates a rotation matrix from the given quaternion, laid out for
 * row vectors.
 */
func (q Quaternion) ToMat4() Mat4 {
	n := q.Normalize()

	xx, yy, zz := n.X*n.X, n.Y*n.Y, n.Z*n.Z
	xy, zw, zx := n.X*n.Y, n.Z*n.W, n.Z*n.X
	yw, yz, xw := n.Y*n.W, n.Y*n.Z, n.X*n.W

	out_matrix := NewMat4Identity()
	out_matrix.Data[0] = 1.0 - 2.0*(yy+zz)
	out_matrix.Data[1] = 2.0 * (xy + zw)
	out_matrix.Data[2] = 2.0 * (zx - yw)

	out_matrix.Data[4] = 2.0 * (xy - zw)
	out_matrix.Data[5] = 1.0 - 2.0*(zz+xx)
	out_matrix.Data[6] = 2.0 * (yz + xw)

	out_matrix.Data[8] = 2.0 * (zx + yw)
	out_matrix.Data[9] = 2.0 * (yz - xw)
	out_matrix.Data[10] = 1.0 - 2.0*(yy+xx)

	return out_matrix
}

