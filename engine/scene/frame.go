package scene

import (
	"github.com/spaghettifunk/softrast/engine/math"
)

// Frame is the scene state handed to the renderer for one pass. The host
// owns the camera and meshes; the renderer borrows them for the call only.
type Frame struct {
	Camera *Camera
	Meshes []*Mesh
}

// NewFrame returns a frame for camera and meshes.
func NewFrame(camera *Camera, meshes ...*Mesh) *Frame {
	return &Frame{Camera: camera, Meshes: meshes}
}

// FaceCount returns the total number of faces across all meshes. Nil meshes
// are skipped, as the renderer skips them.
func (f *Frame) FaceCount() int {
	n := 0
	for _, m := range f.Meshes {
		if m == nil {
			continue
		}
		n += len(m.Faces)
	}
	return n
}

// Extents returns the world space bounds of every mesh vertex, rotation
// ignored. A frame without vertices yields zero extents.
func (f *Frame) Extents() math.Extents3D {
	var corners []math.Vec3
	for _, m := range f.Meshes {
		if m == nil || len(m.Vertices) == 0 {
			continue
		}
		e := m.Extents()
		corners = append(corners, e.Min.Add(m.Position), e.Max.Add(m.Position))
	}
	return math.ExtentsFromPoints(corners)
}
