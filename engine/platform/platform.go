package platform

import (
	"image"
)

// TickFunc advances the application by one frame. Returning an error that
// wraps core.ErrApplicationQuit stops the loop without reporting a failure.
type TickFunc func(deltaTime float64) error

// Discard is a surface that drops every frame.
type Discard struct{}

func (Discard) Present(*image.RGBA) error { return nil }
