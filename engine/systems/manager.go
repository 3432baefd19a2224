package systems

import (
	"runtime"

	"github.com/spaghettifunk/wireframe/engine/renderer/components"
)

type SystemManager struct {
	CameraSystem   *CameraSystem
	GeometrySystem *GeometrySystem
	SceneSystem    *SceneSystem
	JobSystem      *JobSystem
}

func NewSystemManager(camera components.CameraConfig) (*SystemManager, error) {
	cs, err := NewCameraSystem(&CameraSystemConfig{
		MaxCameraCount: 16,
		Camera:         camera,
	})
	if err != nil {
		return nil, err
	}
	gs, err := NewGeometrySystem(&GeometrySystemConfig{
		MaxGeometryCount: 1 << 16,
	})
	if err != nil {
		return nil, err
	}
	js, err := NewJobSystem(runtime.NumCPU(), 8)
	if err != nil {
		return nil, err
	}
	return &SystemManager{
		CameraSystem:   cs,
		GeometrySystem: gs,
		SceneSystem:    NewSceneSystem(),
		JobSystem:      js,
	}, nil
}

// LoadScene replaces the scene with the configured objects.
func (sm *SystemManager) LoadScene(configs []GeometryConfig) error {
	return sm.SceneSystem.Load(sm.GeometrySystem, configs)
}

// Update advances the per frame animation of every system.
func (sm *SystemManager) Update(deltaTime float64) {
	sm.SceneSystem.Update(deltaTime)
}

func (sm *SystemManager) OnResize(width, height int) error {
	return sm.CameraSystem.OnResize(width, height)
}

func (sm *SystemManager) Shutdown() error {
	if err := sm.JobSystem.Shutdown(); err != nil {
		return err
	}
	if err := sm.SceneSystem.Shutdown(); err != nil {
		return err
	}
	if err := sm.GeometrySystem.Shutdown(); err != nil {
		return err
	}
	if err := sm.CameraSystem.Shutdown(); err != nil {
		return err
	}
	return nil
}
