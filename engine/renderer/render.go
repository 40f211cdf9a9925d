package renderer

import (
	"github.com/spaghettifunk/softrast/engine/math"
	"github.com/spaghettifunk/softrast/engine/scene"
)

// Render draws the wireframe of every mesh as seen from camera. View and
// projection are computed once per call; meshes and faces are drawn in input
// order and every face issues three lines (A-B, B-C, C-A), so shared edges
// are drawn once per face. Render neither clears nor presents.
//
// Meshes must have been validated: face indices are not checked here.
func (d *Device) Render(camera *scene.Camera, meshes []*scene.Mesh) {
	if camera == nil {
		return
	}
	view := ViewMatrix(camera)

	for _, mesh := range meshes {
		if mesh == nil {
			continue
		}
		transform := math.NewMat4Transform(WorldMatrix(mesh), view, d.projection)

		for _, face := range mesh.Faces {
			pixelA := d.Project(mesh.Vertices[face.A], transform)
			pixelB := d.Project(mesh.Vertices[face.B], transform)
			pixelC := d.Project(mesh.Vertices[face.C], transform)

			d.DrawLine(pixelA, pixelB)
			d.DrawLine(pixelB, pixelC)
			d.DrawLine(pixelC, pixelA)
		}
		d.stats.Meshes++
		d.stats.Faces += len(mesh.Faces)
	}
}

// RenderFrame renders the camera and meshes held by f.
func (d *Device) RenderFrame(f *scene.Frame) {
	if f == nil {
		return
	}
	d.Render(f.Camera, f.Meshes)
}
