package engine

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spaghettifunk/softrast/engine/core"
)

type ApplicationConfig struct {
	// Window starting position x axis, if applicable.
	StartPosX int `toml:"start_pos_x"`
	// Window starting position y axis, if applicable.
	StartPosY int `toml:"start_pos_y"`
	// Frame buffer width. Fixed for the lifetime of the engine.
	StartWidth uint32 `toml:"width"`
	// Frame buffer height. Fixed for the lifetime of the engine.
	StartHeight uint32 `toml:"height"`
	// Window pixels per frame buffer pixel.
	Scale float64 `toml:"scale"`
	// The application name used in windowing, if applicable.
	Name string `toml:"name"`
	// Frames per second the window loop ticks at.
	TicksPerSecond int    `toml:"ticks_per_second"`
	LogLevel       string `toml:"log_level"`

	Scene SceneConfig `toml:"scene"`
	// Headless runs render a fixed number of frames without a window.
	Headless HeadlessConfig `toml:"headless"`
}

type SceneConfig struct {
	// Babylon JSON files to import. The built-in cube is used when empty.
	Files []string `toml:"files"`
	// Directory indexed for scene files at startup. Optional.
	AssetsDir string `toml:"assets_dir"`
	// Reload the files when they change on disk.
	Watch          bool       `toml:"watch"`
	CameraPosition [3]float32 `toml:"camera_position"`
	CameraTarget   [3]float32 `toml:"camera_target"`
	// Aim the camera at the scene bounds and back it off until they fit.
	// The configured position only supplies the viewing direction.
	AutoFrame bool `toml:"auto_frame"`
	// Radians added to every mesh's yaw each frame.
	RotationStep float32 `toml:"rotation_step"`
}

type HeadlessConfig struct {
	Enabled bool `toml:"enabled"`
	Frames  int  `toml:"frames"`
	// Output file pattern, formatted with the frame number. Empty discards frames.
	Output string `toml:"output"`
}

func DefaultApplicationConfig() *ApplicationConfig {
	return &ApplicationConfig{
		StartPosX:      100,
		StartPosY:      100,
		StartWidth:     640,
		StartHeight:    480,
		Scale:          1,
		Name:           "softrast",
		TicksPerSecond: 60,
		LogLevel:       core.LogLevelInfo.String(),
		Scene: SceneConfig{
			CameraPosition: [3]float32{0, 0, 10},
			RotationStep:   0.01,
		},
		Headless: HeadlessConfig{
			Frames: 120,
		},
	}
}

// LoadApplicationConfig reads a TOML file on top of the defaults, so any key
// missing from the file keeps its default value.
func LoadApplicationConfig(path string) (*ApplicationConfig, error) {
	cfg := DefaultApplicationConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *ApplicationConfig) Validate() error {
	if c.StartWidth == 0 || c.StartHeight == 0 {
		return fmt.Errorf("%dx%d: %w", c.StartWidth, c.StartHeight, core.ErrInvalidBufferSize)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %v", c.Scale)
	}
	if c.TicksPerSecond <= 0 {
		return fmt.Errorf("ticks_per_second must be positive, got %d", c.TicksPerSecond)
	}
	if _, err := core.ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}
