package engine

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pelletier/go-toml/v2"
)

// Config is the engine configuration file layout.
type Config struct {
	Window WindowSettings `toml:"window"`
	Camera CameraConfig   `toml:"camera"`
	Loop   LoopConfig     `toml:"loop"`
}

// CameraConfig holds the initial camera parameters. Fov is in degrees.
type CameraConfig struct {
	Fov  float32 `toml:"fov"`
	Near float32 `toml:"near"`
	Far  float32 `toml:"far"`
}

type LoopConfig struct {
	MaxIterations int64 `toml:"max_iterations"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Window: DefaultWindowSettings(),
		Camera: CameraConfig{
			Fov:  mgl32.RadToDeg(DefaultFov),
			Near: DefaultNearClip,
			Far:  DefaultFarClip,
		},
	}
}

// LoadConfig reads a TOML config from path. Values missing from the file keep
// their defaults, and a missing file yields DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		Logger().Debug("config file not found, using defaults", "path", path)
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := ParseConfig(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes TOML data over cfg.
func ParseConfig(data []byte, cfg *Config) error {
	return toml.Unmarshal(data, cfg)
}

// Apply configures camera from the camera section.
func (c CameraConfig) Apply(camera *Camera) {
	camera.SetFov(mgl32.DegToRad(c.Fov))
	camera.SetClippingDistance(c.Near, c.Far)
}
