package scene

import "github.com/spaghettifunk/softrast/engine/math"

// NewCube builds the 8-vertex, 12-face cube spanning -1..1 on every axis.
func NewCube(name string) *Mesh {
	m := NewMesh(name, 8, 12)
	m.Vertices[0] = math.NewVec3(-1, 1, 1)
	m.Vertices[1] = math.NewVec3(1, 1, 1)
	m.Vertices[2] = math.NewVec3(-1, -1, 1)
	m.Vertices[3] = math.NewVec3(1, -1, 1)
	m.Vertices[4] = math.NewVec3(-1, 1, -1)
	m.Vertices[5] = math.NewVec3(1, 1, -1)
	m.Vertices[6] = math.NewVec3(1, -1, -1)
	m.Vertices[7] = math.NewVec3(-1, -1, -1)

	m.Faces[0] = Face{A: 0, B: 1, C: 2}
	m.Faces[1] = Face{A: 1, B: 2, C: 3}
	m.Faces[2] = Face{A: 1, B: 3, C: 6}
	m.Faces[3] = Face{A: 1, B: 5, C: 6}
	m.Faces[4] = Face{A: 0, B: 1, C: 4}
	m.Faces[5] = Face{A: 1, B: 4, C: 5}
	m.Faces[6] = Face{A: 2, B: 3, C: 7}
	m.Faces[7] = Face{A: 3, B: 6, C: 7}
	m.Faces[8] = Face{A: 0, B: 2, C: 7}
	m.Faces[9] = Face{A: 0, B: 4, C: 7}
	m.Faces[10] = Face{A: 4, B: 5, C: 6}
	m.Faces[11] = Face{A: 4, B: 6, C: 7}
	return m
}
