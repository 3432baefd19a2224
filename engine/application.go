package engine

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/spaghettifunk/wireframe/engine/core"
	"github.com/spaghettifunk/wireframe/engine/math"
	"github.com/spaghettifunk/wireframe/engine/renderer/components"
	"github.com/spaghettifunk/wireframe/engine/systems"
)

// CameraSettings is the [camera] table.
type CameraSettings struct {
	FOVDegrees float32 `toml:"fov_degrees"`
	Near       float32 `toml:"near"`
	Far        float32 `toml:"far"`
	// "aspect" or "reference".
	Mapping  string     `toml:"mapping"`
	Position [3]float32 `toml:"position"`
	// Pitch, yaw, roll in degrees.
	RotationDegrees [3]float32 `toml:"rotation_degrees"`
}

type ApplicationConfig struct {
	// Window starting position x axis, if applicable.
	StartPosX int `toml:"start_pos_x"`
	// Window starting position y axis, if applicable.
	StartPosY int `toml:"start_pos_y"`
	// Window starting width, also the camera resolution.
	Width uint32 `toml:"width"`
	// Window starting height, also the camera resolution.
	Height uint32 `toml:"height"`
	// The application name used in windowing, if applicable.
	Name     string `toml:"name"`
	LogLevel string `toml:"log_level"`
	// Frames per second the loop is paced at. 0 disables pacing when headless.
	TargetFPS int `toml:"target_fps"`
	// When > 0 the engine runs off-screen for this many frames instead of opening a window.
	HeadlessFrames int `toml:"headless_frames"`
	// Directory receiving one BMP per headless frame. Empty keeps frames in memory.
	FrameDir string                   `toml:"frame_dir"`
	Camera   CameraSettings           `toml:"camera"`
	Objects  []systems.GeometryConfig `toml:"objects"`

	// File the configuration was read from; watched for changes when set.
	Path string `toml:"-"`
}

// DefaultApplicationConfig is an 800x600 window with a 90 degree camera at the origin.
func DefaultApplicationConfig() *ApplicationConfig {
	camera := components.DefaultCameraConfig()
	return &ApplicationConfig{
		StartPosX: 100,
		StartPosY: 100,
		Width:     uint32(camera.Width),
		Height:    uint32(camera.Height),
		Name:      "Wireframe",
		LogLevel:  "info",
		TargetFPS: 60,
		Camera: CameraSettings{
			FOVDegrees: math.RadToDeg(camera.FOV),
			Near:       camera.Near,
			Far:        camera.Far,
			Mapping:    camera.Mapping.String(),
		},
	}
}

/**
 * @brief Decodes a TOML configuration on top of the defaults. Unknown keys
 * are rejected.
 *
 * @return An error wrapping core.ErrConfiguration on malformed or invalid input.
 */
func DecodeApplicationConfig(r io.Reader) (*ApplicationConfig, error) {
	config := DefaultApplicationConfig()
	decoder := toml.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(config); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("%s: %w", strings.TrimSpace(strict.String()), core.ErrConfiguration)
		}
		return nil, fmt.Errorf("decode config: %w: %w", err, core.ErrConfiguration)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadApplicationConfig reads and validates a configuration file.
func LoadApplicationConfig(path string) (*ApplicationConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	config, err := DecodeApplicationConfig(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	config.Path = path
	return config, nil
}

func (c *ApplicationConfig) Validate() error {
	if _, err := core.ParseLogLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level %q: %w", c.LogLevel, core.ErrConfiguration)
	}
	if c.TargetFPS < 0 {
		return fmt.Errorf("target_fps %d must not be negative: %w", c.TargetFPS, core.ErrConfiguration)
	}
	if c.HeadlessFrames < 0 {
		return fmt.Errorf("headless_frames %d must not be negative: %w", c.HeadlessFrames, core.ErrConfiguration)
	}
	camera, err := c.CameraConfig()
	if err != nil {
		return err
	}
	return camera.Validate()
}

// Level returns the parsed log level, debug when unparsable.
func (c *ApplicationConfig) Level() core.LogLevel {
	level, _ := core.ParseLogLevel(c.LogLevel)
	return level
}

// CameraConfig converts the [camera] table and the resolution into a projection configuration.
func (c *ApplicationConfig) CameraConfig() (components.CameraConfig, error) {
	mapping, err := components.ParseScreenMapping(c.Camera.Mapping)
	if err != nil {
		return components.CameraConfig{}, err
	}
	return components.CameraConfig{
		Width:   int(c.Width),
		Height:  int(c.Height),
		FOV:     math.DegToRad(c.Camera.FOVDegrees),
		Near:    c.Camera.Near,
		Far:     c.Camera.Far,
		Mapping: mapping,
	}, nil
}

// CameraPose returns the configured camera position and Euler rotation in radians.
func (c *ApplicationConfig) CameraPose() (math.Vec3, math.Vec3) {
	p := c.Camera.Position
	r := c.Camera.RotationDegrees
	return math.NewVec3(p[0], p[1], p[2]),
		math.NewVec3(math.DegToRad(r[0]), math.DegToRad(r[1]), math.DegToRad(r[2]))
}
