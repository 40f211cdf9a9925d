package scene

import (
	"errors"
	"testing"

	"github.com/spaghettifunk/softrast/engine/core"
	"github.com/spaghettifunk/softrast/engine/math"
)

func TestNewMeshAllocatesFixedArrays(t *testing.T) {
	m := NewMesh("tri", 3, 1)
	if len(m.Vertices) != 3 || len(m.Faces) != 1 {
		t.Fatalf("got %d vertices and %d faces", len(m.Vertices), len(m.Faces))
	}
	if m.Position != math.NewVec3Zero() || m.Rotation != math.NewVec3Zero() {
		t.Error("position and rotation should start at zero")
	}
	if NewMesh("tri", 3, 1).ID == m.ID {
		t.Error("meshes should get distinct ids")
	}
}

func TestMeshValidate(t *testing.T) {
	tests := []struct {
		name string
		face Face
		err  error
	}{
		{"valid", Face{A: 0, B: 1, C: 2}, nil},
		{"index equal to vertex count", Face{A: 0, B: 1, C: 3}, core.ErrInvalidFaceIndex},
		{"negative index", Face{A: -1, B: 1, C: 2}, core.ErrInvalidFaceIndex},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMesh("tri", 3, 1)
			m.Faces[0] = tc.face
			if err := m.Validate(); !errors.Is(err, tc.err) {
				t.Errorf("Validate() = %v, want %v", err, tc.err)
			}
		})
	}
}

func TestCube(t *testing.T) {
	c := NewCube("cube")
	if len(c.Vertices) != 8 || len(c.Faces) != 12 {
		t.Fatalf("cube has %d vertices and %d faces", len(c.Vertices), len(c.Faces))
	}
	if err := c.Validate(); err != nil {
		t.Fatal(err)
	}
	e := c.Extents()
	if e.Min != math.NewVec3(-1, -1, -1) || e.Max != math.NewVec3(1, 1, 1) {
		t.Errorf("cube extents = %+v", e)
	}
	if f := NewFrame(NewCamera(), c, NewCube("other")); f.FaceCount() != 24 {
		t.Errorf("FaceCount() = %d, want 24", f.FaceCount())
	}
}

func TestFrameSkipsNilMeshes(t *testing.T) {
	moved := NewCube("moved")
	moved.Position = math.NewVec3(4, 0, 0)
	f := NewFrame(NewCamera(), nil, NewCube("cube"), nil, moved)

	if got := f.FaceCount(); got != 24 {
		t.Errorf("FaceCount() = %d, want 24", got)
	}
	e := f.Extents()
	if e.Min != math.NewVec3(-1, -1, -1) || e.Max != math.NewVec3(5, 1, 1) {
		t.Errorf("Extents() = %+v", e)
	}
	if got := NewFrame(nil, nil).FaceCount(); got != 0 {
		t.Errorf("FaceCount() of a nil mesh = %d", got)
	}
}

func TestCameraFrameExtents(t *testing.T) {
	c := NewCamera()
	c.Position = math.NewVec3(0, 0, 10)

	e := math.Extents3D{Min: math.NewVec3(1, 1, 1), Max: math.NewVec3(3, 3, 3)}
	c.FrameExtents(e, math.K_HALF_PI)

	if c.Target != math.NewVec3(2, 2, 2) {
		t.Fatalf("target = %v, want the centre of the extents", c.Target)
	}
	// radius sqrt(3) over sin(pi/4) keeps the view direction along -z
	want := math.NewVec3(2, 2, 2+1.7320508/0.70710678)
	if !c.Position.Compare(want, 1e-4) {
		t.Errorf("position = %v, want %v", c.Position, want)
	}

	c.FrameExtents(math.Extents3D{}, math.K_HALF_PI)
	if c.Target != math.NewVec3Zero() || !c.Position.Compare(want, 1e-4) {
		t.Errorf("empty extents should only retarget, got %v -> %v", c.Position, c.Target)
	}
}

func TestCameraMovement(t *testing.T) {
	c := NewCamera()
	c.Position = math.NewVec3(0, 0, 10)

	c.MoveForward(4)
	if !c.Position.Compare(math.NewVec3(0, 0, 6), 1e-5) {
		t.Errorf("after MoveForward position = %v", c.Position)
	}
	c.MoveBackward(4)

	c.Orbit(math.K_HALF_PI)
	if d := c.Position.Sub(c.Target).Length(); d < 9.999 || d > 10.001 {
		t.Errorf("orbit changed the distance to the target: %v", d)
	}
	if c.Target != math.NewVec3Zero() {
		t.Errorf("orbit moved the target to %v", c.Target)
	}
}
