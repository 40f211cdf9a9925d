package engine

import (
	"github.com/spaghettifunk/softrast/engine/assets"
	"github.com/spaghettifunk/softrast/engine/renderer"
)

type Game struct {
	ApplicationConfig *ApplicationConfig
	// Set by the engine before FnInitialize is called.
	AssetManager *assets.AssetManager
	State        interface{}
	FnInitialize Initialize
	FnUpdate     Update
	FnRender     Render
	FnShutdown   Shutdown
}

type Initialize func() error
type Update func(deltaTime float64) error

// Render draws into a device that was cleared for this frame. It may call
// device.Render any number of times; presenting is done by the engine.
type Render func(device *renderer.Device, deltaTime float64) error
type Shutdown func() error
