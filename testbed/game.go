package testbed

import (
	"path/filepath"

	"github.com/spaghettifunk/softrast/engine"
	"github.com/spaghettifunk/softrast/engine/core"
	"github.com/spaghettifunk/softrast/engine/math"
	"github.com/spaghettifunk/softrast/engine/renderer"
	"github.com/spaghettifunk/softrast/engine/scene"
)

// Camera units moved per second while a movement key is held.
const cameraSpeed = 5.0

type TestGame struct {
	*engine.Game
}

type sceneSource struct {
	path   string
	meshes []*scene.Mesh
}

type gameState struct {
	WorldCamera *scene.Camera
	sources     []*sceneSource
	spinning    bool
}

func NewTestGame(config *engine.ApplicationConfig) *TestGame {
	tg := &TestGame{
		Game: &engine.Game{
			ApplicationConfig: config,
			State: &gameState{
				WorldCamera: scene.NewCamera(),
				spinning:    true,
			},
		},
	}

	tg.FnInitialize = tg.Initialize
	tg.FnUpdate = tg.Update
	tg.FnRender = tg.Render
	tg.FnShutdown = tg.Shutdown

	return tg
}

func (g *TestGame) state() *gameState {
	return g.State.(*gameState)
}

func (g *TestGame) Initialize() error {
	core.LogDebug("TestGame Initialize fn....")

	state := g.state()
	cfg := g.ApplicationConfig.Scene

	if len(cfg.Files) == 0 {
		state.sources = []*sceneSource{{meshes: []*scene.Mesh{scene.NewCube("Cube")}}}
	}
	for _, path := range cfg.Files {
		meshes, err := g.AssetManager.LoadMeshes(path)
		if err != nil {
			return err
		}
		state.sources = append(state.sources, &sceneSource{path: path, meshes: meshes})

		if cfg.Watch {
			if err := g.AssetManager.Watch(path); err != nil {
				return err
			}
		}
	}

	g.resetCamera()

	core.EventRegister(core.EVENT_CODE_KEY_PRESSED, g.onKey)
	core.EventRegister(core.EVENT_CODE_SCENE_CHANGED, g.onSceneChanged)

	frame := g.Frame()
	core.LogInfo("scene ready with %d meshes and %d faces", len(frame.Meshes), frame.FaceCount())
	return nil
}

// resetCamera restores the configured camera, then frames the whole scene
// when auto framing is on.
func (g *TestGame) resetCamera() {
	cfg := g.ApplicationConfig.Scene
	camera := g.state().WorldCamera
	camera.Position = math.NewVec3(cfg.CameraPosition[0], cfg.CameraPosition[1], cfg.CameraPosition[2])
	camera.Target = math.NewVec3(cfg.CameraTarget[0], cfg.CameraTarget[1], cfg.CameraTarget[2])
	if cfg.AutoFrame {
		camera.FrameExtents(g.Frame().Extents(), renderer.FieldOfView)
	}
}

func (g *TestGame) Update(deltaTime float64) error {
	state := g.state()
	step := float32(cameraSpeed * deltaTime)

	if core.InputIsKeyDown(core.KEY_UP) || core.InputIsKeyDown(core.KEY_W) {
		state.WorldCamera.MoveForward(step)
	}
	if core.InputIsKeyDown(core.KEY_DOWN) || core.InputIsKeyDown(core.KEY_S) {
		state.WorldCamera.MoveBackward(step)
	}
	if core.InputIsKeyDown(core.KEY_LEFT) || core.InputIsKeyDown(core.KEY_A) {
		state.WorldCamera.Orbit(-step / 5)
	}
	if core.InputIsKeyDown(core.KEY_RIGHT) || core.InputIsKeyDown(core.KEY_D) {
		state.WorldCamera.Orbit(step / 5)
	}

	if state.spinning {
		for _, mesh := range g.Meshes() {
			mesh.Rotation.Y += g.ApplicationConfig.Scene.RotationStep
		}
	}
	return nil
}

func (g *TestGame) Render(device *renderer.Device, deltaTime float64) error {
	device.RenderFrame(g.Frame())
	return nil
}

func (g *TestGame) Shutdown() error {
	core.LogDebug("TestGame Shutdown fn....")
	return nil
}

// Meshes returns every mesh of the scene in load order.
func (g *TestGame) Meshes() []*scene.Mesh {
	var meshes []*scene.Mesh
	for _, source := range g.state().sources {
		meshes = append(meshes, source.meshes...)
	}
	return meshes
}

// Frame returns the camera and meshes to draw this tick.
func (g *TestGame) Frame() *scene.Frame {
	return scene.NewFrame(g.state().WorldCamera, g.Meshes()...)
}

func (g *TestGame) Camera() *scene.Camera {
	return g.state().WorldCamera
}

func (g *TestGame) onKey(context core.EventContext) {
	ke, ok := context.Data.(*core.KeyEvent)
	if !ok {
		return
	}

	state := g.state()
	switch ke.KeyCode {
	case core.KEY_SPACE:
		state.spinning = !state.spinning
	case core.KEY_R:
		for _, mesh := range g.Meshes() {
			mesh.Rotation = math.NewVec3Zero()
		}
		g.resetCamera()
	}
}

// onSceneChanged reloads the meshes of a changed file. A file that fails to
// parse keeps the meshes it had.
func (g *TestGame) onSceneChanged(context core.EventContext) {
	fe, ok := context.Data.(*core.FileEvent)
	if !ok {
		return
	}

	changed, err := filepath.Abs(fe.Path)
	if err != nil {
		return
	}
	for _, source := range g.state().sources {
		if source.path == "" {
			continue
		}
		path, err := filepath.Abs(source.path)
		if err != nil || path != changed {
			continue
		}

		meshes, err := g.AssetManager.LoadMeshes(source.path)
		if err != nil {
			core.LogError("reload %s: %s", source.path, err)
			return
		}
		source.meshes = meshes
		core.LogInfo("reloaded %d meshes from %s", len(meshes), source.path)
		return
	}
}
