package scene

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spaghettifunk/softrast/engine/core"
	"github.com/spaghettifunk/softrast/engine/math"
)

// Face holds three indices into a mesh's vertex list. The triangle edges
// are A-B, B-C and C-A; winding order does not matter for wireframes.
type Face struct {
	A, B, C int
}

/**
 * @brief A static polygon mesh. Vertices and faces are fixed once the mesh
 * has been built; Position and Rotation (Euler angles in radians) may be
 * changed by the host between frames. The renderer only ever reads meshes.
 */
type Mesh struct {
	ID       uuid.UUID
	Name     string
	Position math.Vec3
	Rotation math.Vec3
	Vertices []math.Vec3
	Faces    []Face
}

// NewMesh allocates a mesh with zeroed vertex and face arrays of the given sizes.
func NewMesh(name string, verticesCount, facesCount int) *Mesh {
	return &Mesh{
		ID:       uuid.New(),
		Name:     name,
		Position: math.NewVec3Zero(),
		Rotation: math.NewVec3Zero(),
		Vertices: make([]math.Vec3, verticesCount),
		Faces:    make([]Face, facesCount),
	}
}

// Validate checks that every face index refers to an existing vertex.
// It is meant to run once at import time, never per frame.
func (m *Mesh) Validate() error {
	n := len(m.Vertices)
	for i, f := range m.Faces {
		for _, idx := range [3]int{f.A, f.B, f.C} {
			if idx < 0 || idx >= n {
				return fmt.Errorf("mesh %q face %d: index %d with %d vertices: %w", m.Name, i, idx, n, core.ErrInvalidFaceIndex)
			}
		}
	}
	return nil
}

// Extents returns the model-space bounds of the mesh.
func (m *Mesh) Extents() math.Extents3D {
	return math.ExtentsFromPoints(m.Vertices)
}
