package engine

import (
	"fmt"

	"github.com/spaghettifunk/softrast/engine/assets"
	"github.com/spaghettifunk/softrast/engine/core"
	"github.com/spaghettifunk/softrast/engine/platform"
	"github.com/spaghettifunk/softrast/engine/renderer"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
	// Engine has released every subsystem
	EngineStageShutdown
)

// Frame statistics are logged once every this many frames.
const statsInterval = 300

type Engine struct {
	currentStage Stage
	gameInstance *Game
	isRunning    bool
	assetManager *assets.AssetManager
	device       *renderer.Device
	surface      renderer.Surface
	clock        *core.Clock
	frame        uint64
}

func New(g *Game) (*Engine, error) {
	if g == nil || g.ApplicationConfig == nil {
		return nil, fmt.Errorf("game has no application config")
	}
	config := g.ApplicationConfig
	if err := config.Validate(); err != nil {
		return nil, err
	}

	device, err := renderer.NewDevice(int(config.StartWidth), int(config.StartHeight))
	if err != nil {
		core.LogError(err.Error())
		return nil, err
	}

	am, err := assets.NewAssetManager()
	if err != nil {
		core.LogError(err.Error())
		return nil, err
	}
	g.AssetManager = am

	return &Engine{
		currentStage: EngineStageUninitialized,
		gameInstance: g,
		clock:        core.NewClock(),
		assetManager: am,
		device:       device,
		surface:      platform.Discard{},
		isRunning:    true,
	}, nil
}

// SetSurface replaces where frames are presented. Run picks a surface on its
// own; this is for hosts that drive Tick themselves.
func (e *Engine) SetSurface(s renderer.Surface) {
	e.surface = s
}

func (e *Engine) Stage() Stage { return e.currentStage }

func (e *Engine) Device() *renderer.Device { return e.device }

func (e *Engine) Initialize() error {
	e.currentStage = EngineStageInitializing
	config := e.gameInstance.ApplicationConfig

	level, err := core.ParseLogLevel(config.LogLevel)
	if err != nil {
		return err
	}
	core.LogSetLevel(level)

	// initialize input
	if err := core.InputInitialize(); err != nil {
		return err
	}

	// initialize events
	if !core.EventSystemInitialize() {
		return fmt.Errorf("failed to initialize the event system")
	}

	// register some events
	core.EventRegister(core.EVENT_CODE_APPLICATION_QUIT, e.onEvent)
	core.EventRegister(core.EVENT_CODE_KEY_PRESSED, e.onKey)
	core.EventRegister(core.EVENT_CODE_KEY_RELEASED, e.onKey)

	if err := core.MetricsInitialize(); err != nil {
		return err
	}

	// initialize subsystems
	if err := e.assetManager.Initialize(config.Scene.AssetsDir); err != nil {
		return err
	}

	if e.gameInstance.FnInitialize != nil {
		if err := e.gameInstance.FnInitialize(); err != nil {
			return err
		}
	}

	e.clock.Start()
	e.currentStage = EngineStageInitialized
	core.LogInfo("engine initialized with a %dx%d frame buffer", e.device.Width(), e.device.Height())
	return nil
}

// Tick runs one complete frame: queued events are dispatched, the buffer is
// cleared, the game updates and renders and the result is presented. It returns core.ErrApplicationQuit once a quit was requested.
func (e *Engine) Tick(delta float64) error {
	if e.currentStage != EngineStageInitialized && e.currentStage != EngineStageRunning {
		return core.ErrEngineNotInitialized
	}
	e.clock.Update()
	frameStart := e.clock.Elapsed()

	core.EventDispatch()
	if !e.isRunning {
		return core.ErrApplicationQuit
	}

	e.device.Clear()
	if e.gameInstance.FnUpdate != nil {
		if err := e.gameInstance.FnUpdate(delta); err != nil {
			core.LogError("Game update failed, shutting down.")
			return err
		}
	}

	if e.gameInstance.FnRender != nil {
		if err := e.gameInstance.FnRender(e.device, delta); err != nil {
			core.LogError("Game render failed, shutting down.")
			return err
		}
	}
	if err := e.device.Present(e.surface); err != nil {
		return fmt.Errorf("present frame %d: %w", e.frame, err)
	}

	// NOTE: Input update/state copying should always be handled
	// after any input should be recorded; I.E. before this line.
	core.InputUpdate()

	e.clock.Update()
	core.MetricsUpdate(e.clock.Elapsed() - frameStart)
	e.frame++
	if e.frame%statsInterval == 0 {
		fps, frameTime := core.MetricsFrame()
		core.LogDebug("frame %d: %.1f fps, %.3f ms, %s", e.frame, fps, frameTime, e.device.Stats())
	}
	return nil
}

// Frames returns how many frames completed.
func (e *Engine) Frames() uint64 { return e.frame }

// Run hands the frame loop to the platform: a window, or a fixed number of
// frames when the config asks for a headless run.
func (e *Engine) Run() error {
	if e.currentStage != EngineStageInitialized {
		return core.ErrEngineNotInitialized
	}
	e.currentStage = EngineStageRunning

	config := e.gameInstance.ApplicationConfig
	if config.Headless.Enabled {
		if config.Headless.Output != "" {
			snapshot, err := platform.NewSnapshot(config.Headless.Output)
			if err != nil {
				return err
			}
			e.surface = snapshot
		}
		frames, err := platform.RunHeadless(config.Headless.Frames, e.Tick)
		core.LogInfo("rendered %d frames", frames)
		return err
	}

	window := platform.NewWindow(platform.WindowConfig{
		Title:  config.Name,
		X:      config.StartPosX,
		Y:      config.StartPosY,
		Width:  int(config.StartWidth),
		Height: int(config.StartHeight),
		Scale:  config.Scale,
		TPS:    config.TicksPerSecond,
	})
	e.surface = window
	return platform.RunWindow(window, e.Tick)
}

func (e *Engine) Shutdown() error {
	if e.currentStage == EngineStageShutdown {
		return nil
	}
	e.currentStage = EngineStageShuttingDown
	e.clock.Stop()

	if e.gameInstance.FnShutdown != nil {
		if err := e.gameInstance.FnShutdown(); err != nil {
			core.LogError(err.Error())
		}
	}
	if err := e.assetManager.Shutdown(); err != nil {
		return err
	}
	if err := core.EventSystemShutdown(); err != nil {
		return err
	}
	if err := core.InputShutdown(); err != nil {
		return err
	}
	e.currentStage = EngineStageShutdown
	return nil
}

func (e *Engine) onEvent(context core.EventContext) {
	switch context.Type {
	case core.EVENT_CODE_APPLICATION_QUIT:
		{
			core.LogInfo("EVENT_CODE_APPLICATION_QUIT received, shutting down.")
			e.isRunning = false
		}
	}
}

func (e *Engine) onKey(context core.EventContext) {
	ke, ok := context.Data.(*core.KeyEvent)
	if !ok {
		core.LogError("wrong event associated with the event type `%d`", context.Type)
		return
	}

	if context.Type == core.EVENT_CODE_KEY_PRESSED && ke.KeyCode == core.KEY_ESCAPE {
		// NOTE: Technically firing an event to itself, but there may be other listeners.
		core.EventFire(core.EventContext{
			Type: core.EVENT_CODE_APPLICATION_QUIT,
		})
		return
	}
	core.LogDebug("key %d event %d", ke.KeyCode, context.Type)
}
