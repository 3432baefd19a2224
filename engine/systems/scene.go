package systems

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/spaghettifunk/wireframe/engine/core"
	"github.com/spaghettifunk/wireframe/engine/math"
)

// SceneObject is a geometry plus its per second spin.
type SceneObject struct {
	Geometry *math.Geometry
	Spin     math.Vec3
}

/**
 * @brief Owns the flat list of objects drawn every frame. Objects keep their
 * insertion order, which is also the draw order.
 */
type SceneSystem struct {
	mu      sync.RWMutex
	objects []*SceneObject
	byName  map[string]*SceneObject
	byID    map[uuid.UUID]*SceneObject
}

func NewSceneSystem() *SceneSystem {
	return &SceneSystem{
		byName: make(map[string]*SceneObject),
		byID:   make(map[uuid.UUID]*SceneObject),
	}
}

/**
 * @brief Adds a geometry with a spin in radians per second.
 *
 * @return An error wrapping core.ErrConfiguration if the name is taken.
 */
func (ss *SceneSystem) Add(g *math.Geometry, spin math.Vec3) error {
	if g == nil {
		return fmt.Errorf("nil geometry: %w", core.ErrConfiguration)
	}
	ss.mu.Lock()
	defer ss.mu.Unlock()
	if _, ok := ss.byName[g.Name]; ok {
		return fmt.Errorf("geometry %q already in the scene: %w", g.Name, core.ErrConfiguration)
	}
	o := &SceneObject{Geometry: g, Spin: spin}
	ss.objects = append(ss.objects, o)
	ss.byName[g.Name] = o
	ss.byID[g.ID] = o
	return nil
}

/**
 * @brief Replaces the whole scene with geometries generated from configs.
 * Either every object is built or the scene is left as it was.
 */
func (ss *SceneSystem) Load(gs *GeometrySystem, configs []GeometryConfig) error {
	next := NewSceneSystem()
	for _, c := range configs {
		g, err := gs.AcquireFromConfig(c)
		if err != nil {
			return err
		}
		if err := next.Add(g, c.Spin()); err != nil {
			return err
		}
	}

	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.objects = next.objects
	ss.byName = next.byName
	ss.byID = next.byID
	core.LogInfo("scene loaded: %d objects", len(ss.objects))
	return nil
}

func (ss *SceneSystem) Remove(id uuid.UUID) bool {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	o, ok := ss.byID[id]
	if !ok {
		return false
	}
	delete(ss.byID, id)
	delete(ss.byName, o.Geometry.Name)
	for i, other := range ss.objects {
		if other == o {
			ss.objects = append(ss.objects[:i], ss.objects[i+1:]...)
			break
		}
	}
	return true
}

func (ss *SceneSystem) Get(name string) (*math.Geometry, bool) {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	o, ok := ss.byName[name]
	if !ok {
		return nil, false
	}
	return o.Geometry, true
}

func (ss *SceneSystem) GetByID(id uuid.UUID) (*math.Geometry, bool) {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	o, ok := ss.byID[id]
	if !ok {
		return nil, false
	}
	return o.Geometry, true
}

// SetSpin changes the spin of a named object.
func (ss *SceneSystem) SetSpin(name string, spin math.Vec3) bool {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	o, ok := ss.byName[name]
	if ok {
		o.Spin = spin
	}
	return ok
}

// Geometries returns the scene in draw order. The slice is a copy.
func (ss *SceneSystem) Geometries() []*math.Geometry {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	out := make([]*math.Geometry, len(ss.objects))
	for i, o := range ss.objects {
		out[i] = o.Geometry
	}
	return out
}

func (ss *SceneSystem) Count() int {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return len(ss.objects)
}

// Update advances every spinning object by deltaTime seconds.
func (ss *SceneSystem) Update(deltaTime float64) {
	dt := float32(deltaTime)
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	for _, o := range ss.objects {
		if o.Spin.X != 0 {
			o.Geometry.Transform.RotateX(o.Spin.X * dt)
		}
		if o.Spin.Y != 0 {
			o.Geometry.Transform.RotateY(o.Spin.Y * dt)
		}
		if o.Spin.Z != 0 {
			o.Geometry.Transform.RotateZ(o.Spin.Z * dt)
		}
	}
}

func (ss *SceneSystem) Shutdown() error {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.objects = nil
	ss.byName = make(map[string]*SceneObject)
	ss.byID = make(map[uuid.UUID]*SceneObject)
	return nil
}
