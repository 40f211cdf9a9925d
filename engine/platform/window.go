package platform

import (
	"errors"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spaghettifunk/softrast/engine/core"
)

type WindowConfig struct {
	Title  string
	X, Y   int
	Width  int
	Height int
	// Window pixels per frame buffer pixel.
	Scale float64
	TPS   int
}

var keyMap = map[ebiten.Key]core.KeyCode{
	ebiten.KeyEnter:      core.KEY_ENTER,
	ebiten.KeyEscape:     core.KEY_ESCAPE,
	ebiten.KeySpace:      core.KEY_SPACE,
	ebiten.KeyArrowLeft:  core.KEY_LEFT,
	ebiten.KeyArrowUp:    core.KEY_UP,
	ebiten.KeyArrowRight: core.KEY_RIGHT,
	ebiten.KeyArrowDown:  core.KEY_DOWN,
	ebiten.KeyA:          core.KEY_A,
	ebiten.KeyD:          core.KEY_D,
	ebiten.KeyR:          core.KEY_R,
	ebiten.KeyS:          core.KEY_S,
	ebiten.KeyW:          core.KEY_W,
}

/**
 * @brief A desktop window showing the presented frames. It implements both
 * renderer.Surface and ebiten.Game: ebiten drives the frame loop by calling
 * Update, which ticks the engine, and Draw, which blits the last frame.
 */
type Window struct {
	config WindowConfig
	screen *ebiten.Image
	tick   TickFunc
}

func NewWindow(config WindowConfig) *Window {
	return &Window{config: config}
}

// Present copies the frame into the window's image. It must be called from
// inside Update, which is where the engine tick runs.
func (w *Window) Present(frame *image.RGBA) error {
	if w.screen == nil {
		w.screen = ebiten.NewImage(w.config.Width, w.config.Height)
	}
	w.screen.WritePixels(frame.Pix)
	return nil
}

func (w *Window) Update() error {
	for key, code := range keyMap {
		core.InputProcessKey(code, ebiten.IsKeyPressed(key))
	}

	if err := w.tick(1.0 / float64(ebiten.TPS())); err != nil {
		if errors.Is(err, core.ErrApplicationQuit) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	if w.screen == nil {
		return
	}
	screen.DrawImage(w.screen, nil)
}

// Layout keeps the logical screen at the frame buffer size; ebiten scales it
// to the window.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.config.Width, w.config.Height
}

// RunWindow opens the window and blocks until the tick asks to quit or the
// window is closed.
func RunWindow(w *Window, tick TickFunc) error {
	w.tick = tick

	ebiten.SetWindowTitle(w.config.Title)
	ebiten.SetWindowSize(int(float64(w.config.Width)*w.config.Scale), int(float64(w.config.Height)*w.config.Scale))
	ebiten.SetWindowPosition(w.config.X, w.config.Y)
	ebiten.SetTPS(w.config.TPS)

	core.LogInfo("opening %dx%d window %q", w.config.Width, w.config.Height, w.config.Title)
	return ebiten.RunGame(w)
}
