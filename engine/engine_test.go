package engine

import (
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/spaghettifunk/softrast/engine/core"
	"github.com/spaghettifunk/softrast/engine/math"
	"github.com/spaghettifunk/softrast/engine/renderer"
	"github.com/spaghettifunk/softrast/engine/scene"
)

type recordingSurface struct {
	frames int
	last   []uint8
	err    error
}

func (s *recordingSurface) Present(frame *image.RGBA) error {
	if s.err != nil {
		return s.err
	}
	s.frames++
	s.last = append(s.last[:0], frame.Pix...)
	return nil
}

func countDrawn(pix []uint8) int {
	n := 0
	for i := 3; i < len(pix); i += 4 {
		if pix[i] != 0 {
			n++
		}
	}
	return n
}

func newTestGame(calls *[]string) *Game {
	config := DefaultApplicationConfig()
	config.StartWidth = 128
	config.StartHeight = 96

	camera := scene.NewCamera()
	camera.Position = math.NewVec3(0, 0, 10)
	cube := scene.NewCube("Cube")

	return &Game{
		ApplicationConfig: config,
		FnInitialize: func() error {
			*calls = append(*calls, "initialize")
			return nil
		},
		FnUpdate: func(deltaTime float64) error {
			*calls = append(*calls, "update")
			cube.Rotation.Y += 0.01
			return nil
		},
		FnRender: func(device *renderer.Device, deltaTime float64) error {
			*calls = append(*calls, "render")
			if countDrawn(device.Image().Pix) != 0 {
				*calls = append(*calls, "dirty buffer")
			}
			device.Render(camera, []*scene.Mesh{cube})
			return nil
		},
		FnShutdown: func() error {
			*calls = append(*calls, "shutdown")
			return nil
		},
	}
}

func newTestEngine(t *testing.T, calls *[]string) (*Engine, *recordingSurface) {
	t.Helper()
	e, err := New(newTestGame(calls))
	if err != nil {
		t.Fatal(err)
	}
	if err := e.Initialize(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { e.Shutdown() })

	s := &recordingSurface{}
	e.SetSurface(s)
	return e, s
}

func TestNewRejectsBadConfig(t *testing.T) {
	if _, err := New(&Game{}); err == nil {
		t.Fatal("expected an error without a config")
	}

	g := &Game{ApplicationConfig: DefaultApplicationConfig()}
	g.ApplicationConfig.StartHeight = 0
	if _, err := New(g); !errors.Is(err, core.ErrInvalidBufferSize) {
		t.Fatalf("expected ErrInvalidBufferSize, got %v", err)
	}
}

func TestTickBeforeInitialize(t *testing.T) {
	var calls []string
	e, err := New(newTestGame(&calls))
	if err != nil {
		t.Fatal(err)
	}
	defer e.assetManager.Shutdown()

	if err := e.Tick(0.016); !errors.Is(err, core.ErrEngineNotInitialized) {
		t.Fatalf("expected ErrEngineNotInitialized, got %v", err)
	}
	if err := e.Run(); !errors.Is(err, core.ErrEngineNotInitialized) {
		t.Fatalf("expected ErrEngineNotInitialized, got %v", err)
	}
	if len(calls) != 0 {
		t.Fatalf("no game hook should run, got %v", calls)
	}
}

func TestTick(t *testing.T) {
	var calls []string
	e, s := newTestEngine(t, &calls)

	for i := 0; i < 3; i++ {
		if err := e.Tick(0.016); err != nil {
			t.Fatal(err)
		}
	}

	want := []string{"initialize", "update", "render", "update", "render", "update", "render"}
	if len(calls) != len(want) {
		t.Fatalf("expected calls %v, got %v", want, calls)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("expected calls %v, got %v", want, calls)
		}
	}

	if s.frames != 3 || e.Frames() != 3 {
		t.Fatalf("expected 3 presented frames, got %d (%d ticks)", s.frames, e.Frames())
	}
	if countDrawn(s.last) == 0 {
		t.Fatal("presented frame is empty")
	}
	if e.Device().Stats().Lines != 36 {
		t.Fatalf("expected 36 lines in the last frame, got %d", e.Device().Stats().Lines)
	}
}

func TestTickClearsBeforeUpdate(t *testing.T) {
	var calls []string
	e, s := newTestEngine(t, &calls)

	dirty := 0
	e.gameInstance.FnUpdate = func(float64) error {
		if countDrawn(e.Device().Image().Pix) != 0 {
			dirty++
		}
		// whatever the game draws while updating survives into the frame
		e.Device().DrawPoint(math.NewVec2(0, 0))
		return nil
	}
	for i := 0; i < 2; i++ {
		if err := e.Tick(0.016); err != nil {
			t.Fatal(err)
		}
	}

	if dirty != 0 {
		t.Fatalf("update saw the previous frame %d times", dirty)
	}
	if s.last[3] == 0 {
		t.Fatal("pixel drawn during update is missing from the presented frame")
	}
}

func TestTickQuit(t *testing.T) {
	var calls []string
	e, _ := newTestEngine(t, &calls)

	if !core.EventPost(core.EventContext{Type: core.EVENT_CODE_APPLICATION_QUIT}) {
		t.Fatal("event was not queued")
	}
	if err := e.Tick(0.016); !errors.Is(err, core.ErrApplicationQuit) {
		t.Fatalf("expected ErrApplicationQuit, got %v", err)
	}
	if len(calls) != 1 {
		t.Fatalf("no frame should run after quit, got %v", calls)
	}
}

func TestEscapeQuits(t *testing.T) {
	var calls []string
	e, _ := newTestEngine(t, &calls)

	core.InputProcessKey(core.KEY_ESCAPE, true)
	defer core.InputProcessKey(core.KEY_ESCAPE, false)

	if err := e.Tick(0.016); !errors.Is(err, core.ErrApplicationQuit) {
		t.Fatalf("expected ErrApplicationQuit, got %v", err)
	}
}

func TestTickErrors(t *testing.T) {
	var calls []string
	e, s := newTestEngine(t, &calls)

	s.err = errors.New("surface lost")
	if err := e.Tick(0.016); !errors.Is(err, s.err) {
		t.Fatalf("expected the surface error, got %v", err)
	}

	s.err = nil
	boom := errors.New("boom")
	e.gameInstance.FnRender = func(*renderer.Device, float64) error { return boom }
	if err := e.Tick(0.016); !errors.Is(err, boom) {
		t.Fatalf("expected the render error, got %v", err)
	}
}

func TestShutdown(t *testing.T) {
	var calls []string
	e, _ := newTestEngine(t, &calls)

	if err := e.Shutdown(); err != nil {
		t.Fatal(err)
	}
	if e.Stage() != EngineStageShutdown {
		t.Fatalf("unexpected stage %d", e.Stage())
	}
	if err := e.Shutdown(); err != nil {
		t.Fatal(err)
	}
	if calls[len(calls)-1] != "shutdown" || len(calls) != 2 {
		t.Fatalf("game shutdown should run once, got %v", calls)
	}
	if err := e.Tick(0.016); !errors.Is(err, core.ErrEngineNotInitialized) {
		t.Fatalf("expected ErrEngineNotInitialized, got %v", err)
	}
}

func TestRunHeadless(t *testing.T) {
	var calls []string
	g := newTestGame(&calls)
	dir := t.TempDir()
	g.ApplicationConfig.Headless.Enabled = true
	g.ApplicationConfig.Headless.Frames = 3
	g.ApplicationConfig.Headless.Output = filepath.Join(dir, "frame-%02d.png")

	e, err := New(g)
	if err != nil {
		t.Fatal(err)
	}
	if err := e.Initialize(); err != nil {
		t.Fatal(err)
	}
	defer e.Shutdown()

	if err := e.Run(); err != nil {
		t.Fatal(err)
	}
	if e.Frames() != 3 {
		t.Fatalf("expected 3 frames, got %d", e.Frames())
	}
	for _, name := range []string{"frame-00.png", "frame-01.png", "frame-02.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatal(err)
		}
	}
}
