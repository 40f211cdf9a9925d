package core

import (
	"errors"
)

var (
	ErrInvalidFaceIndex     = errors.New("face index out of range")
	ErrInvalidBufferSize    = errors.New("frame buffer dimensions must be positive")
	ErrMalformedMesh        = errors.New("malformed mesh data")
	ErrUnknownLogLevel      = errors.New("unknown log level")
	ErrEngineNotInitialized = errors.New("engine not initialized")
	ErrApplicationQuit      = errors.New("application quit requested")
	ErrUnknown              = errors.New("unknown")
)
