package loaders

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spaghettifunk/softrast/engine/core"
	"github.com/spaghettifunk/softrast/engine/math"
	"github.com/spaghettifunk/softrast/engine/scene"
)

// babylonFile is the subset of a Babylon scene export the importer reads.
type babylonFile struct {
	Meshes []babylonMesh `json:"meshes"`
}

type babylonMesh struct {
	Name     string    `json:"name"`
	Position []float32 `json:"position"`
	Vertices []float32 `json:"vertices"`
	Indices  []int     `json:"indices"`
	UVCount  int       `json:"uvCount"`
}

// VertexStride returns how many floats each vertex occupies in the flat
// vertex array of an export with uvCount texture coordinate sets. Position
// and normal take 6 floats, each UV set adds 2. Unknown counts fall back to 1.
func VertexStride(uvCount int) int {
	switch uvCount {
	case 0:
		return 6
	case 1:
		return 8
	case 2:
		return 10
	default:
		return 1
	}
}

type MeshLoader struct{}

// Load reads a Babylon JSON scene from path and returns its meshes.
func (ml *MeshLoader) Load(path string) ([]*scene.Mesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	meshes, err := ml.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	core.LogDebug("loaded %d meshes from %s", len(meshes), path)
	return meshes, nil
}

// Parse converts a Babylon JSON document into meshes. Every mesh is validated
// so the renderer never sees an out-of-range face index.
func (ml *MeshLoader) Parse(data []byte) ([]*scene.Mesh, error) {
	var file babylonFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrMalformedMesh, err)
	}

	meshes := make([]*scene.Mesh, 0, len(file.Meshes))
	for i, imported := range file.Meshes {
		mesh, err := imported.toMesh()
		if err != nil {
			return nil, fmt.Errorf("mesh %d (%q): %w", i, imported.Name, err)
		}
		meshes = append(meshes, mesh)
	}
	return meshes, nil
}

func (bm babylonMesh) toMesh() (*scene.Mesh, error) {
	if len(bm.Position) < 3 {
		return nil, fmt.Errorf("%w: position has %d components", core.ErrMalformedMesh, len(bm.Position))
	}
	if len(bm.Indices)%3 != 0 {
		return nil, fmt.Errorf("%w: %d indices is not a multiple of 3", core.ErrMalformedMesh, len(bm.Indices))
	}

	stride := VertexStride(bm.UVCount)
	verticesCount := 0
	if stride >= 3 {
		if len(bm.Vertices)%stride != 0 {
			return nil, fmt.Errorf("%w: %d floats is not a multiple of the vertex stride %d",
				core.ErrMalformedMesh, len(bm.Vertices), stride)
		}
		verticesCount = len(bm.Vertices) / stride
	} else if len(bm.Vertices) >= 3 {
		// only positions whose three components are all present
		verticesCount = (len(bm.Vertices)-3)/stride + 1
	}
	facesCount := len(bm.Indices) / 3

	mesh := scene.NewMesh(bm.Name, verticesCount, facesCount)
	for i := 0; i < verticesCount; i++ {
		x := bm.Vertices[i*stride]
		y := bm.Vertices[i*stride+1]
		z := bm.Vertices[i*stride+2]
		mesh.Vertices[i] = math.NewVec3(x, y, z)
	}
	for i := 0; i < facesCount; i++ {
		mesh.Faces[i] = scene.Face{
			A: bm.Indices[i*3],
			B: bm.Indices[i*3+1],
			C: bm.Indices[i*3+2],
		}
	}
	mesh.Position = math.NewVec3(bm.Position[0], bm.Position[1], bm.Position[2])

	if err := mesh.Validate(); err != nil {
		return nil, err
	}
	return mesh, nil
}
