package systems

import (
	"fmt"

	"github.com/spaghettifunk/wireframe/engine/core"
	"github.com/spaghettifunk/wireframe/engine/renderer/components"
)

type cameraLookup struct {
	ReferenceCount uint16
	Camera         *components.Camera
}

/** @brief The camera system configuration. */
type CameraSystemConfig struct {
	/**
	 * @brief NOTE: The maximum number of cameras that can be managed by
	 * the system, not counting the default camera.
	 */
	MaxCameraCount uint16
	/** @brief Projection shared by every camera of the system. */
	Camera components.CameraConfig
}

type CameraSystem struct {
	Config *CameraSystemConfig
	lookup map[string]*cameraLookup
	// A default, non-registered camera that always exists as a fallback.
	DefaultCamera *components.Camera
}

/**
 * @brief Initializes the camera system and its default camera.
 *
 * @param config The configuration for this system.
 * @return An error wrapping core.ErrConfiguration if the configuration is invalid.
 */
func NewCameraSystem(config *CameraSystemConfig) (*CameraSystem, error) {
	if config.MaxCameraCount == 0 {
		err := fmt.Errorf("func NewCameraSystem - config.MaxCameraCount must be > 0: %w", core.ErrConfiguration)
		core.LogError(err.Error())
		return nil, err
	}
	// Setup default camera.
	camera, err := components.NewCamera(config.Camera)
	if err != nil {
		core.LogError(err.Error())
		return nil, err
	}
	return &CameraSystem{
		Config:        config,
		lookup:        make(map[string]*cameraLookup, config.MaxCameraCount),
		DefaultCamera: camera,
	}, nil
}

func (cs *CameraSystem) Shutdown() error {
	cs.lookup = make(map[string]*cameraLookup)
	return nil
}

/**
 * @brief Acquires a pointer to a camera by name.
 * If one is not found, a new one is created and retuned.
 * Internal reference counter is incremented.
 *
 * @param name The name of the camera to acquire.
 */
func (cs *CameraSystem) Acquire(name string) (*components.Camera, error) {
	if name == components.DEFAULT_CAMERA_NAME {
		return cs.DefaultCamera, nil
	}
	l, ok := cs.lookup[name]
	if !ok {
		if len(cs.lookup) >= int(cs.Config.MaxCameraCount) {
			err := fmt.Errorf("func CameraSystemAcquire failed to acquire new slot. Adjust camera system config to allow more")
			core.LogError(err.Error())
			return nil, err
		}

		// Create/register the new camera.
		core.LogDebug("Creating new camera named '%s'...", name)
		camera, err := components.NewCamera(cs.Config.Camera)
		if err != nil {
			return nil, err
		}
		l = &cameraLookup{Camera: camera}
		cs.lookup[name] = l
	}
	l.ReferenceCount++
	return l.Camera, nil
}

/**
 * @brief Releases a camera with the given name. Intenral reference
 * counter is decremented. If this reaches 0, the camera is dropped.
 *
 * @param name The name of the camera to release.
 */
func (cs *CameraSystem) Release(name string) {
	if name == components.DEFAULT_CAMERA_NAME {
		core.LogDebug("Cannot release default camera. Nothing was done.")
		return
	}
	l, ok := cs.lookup[name]
	if !ok {
		core.LogWarn("CameraSystemRelease failed lookup. Nothing was done.")
		return
	}
	l.ReferenceCount--
	if l.ReferenceCount < 1 {
		delete(cs.lookup, name)
	}
}

/**
 * @brief Gets a pointer to the default camera.
 */
func (cs *CameraSystem) GetDefault() *components.Camera {
	return cs.DefaultCamera
}

/**
 * @brief Applies a new projection to every camera. Nothing changes if the
 * configuration is invalid.
 */
func (cs *CameraSystem) Reconfigure(config components.CameraConfig) error {
	if err := config.Validate(); err != nil {
		return err
	}
	cs.Config.Camera = config
	if err := cs.DefaultCamera.Reconfigure(config); err != nil {
		return err
	}
	for _, l := range cs.lookup {
		if err := l.Camera.Reconfigure(config); err != nil {
			return err
		}
	}
	return nil
}

// OnResize changes the resolution of every camera.
func (cs *CameraSystem) OnResize(width, height int) error {
	config := cs.Config.Camera
	config.Width = width
	config.Height = height
	return cs.Reconfigure(config)
}
