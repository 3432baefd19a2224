package systems

import (
	"fmt"
	"strings"

	"github.com/spaghettifunk/wireframe/engine/core"
	"github.com/spaghettifunk/wireframe/engine/math"
)

const (
	GeometryKindCube      = "cube"
	GeometryKindPlane     = "plane"
	GeometryKindPyramid   = "pyramid"
	GeometryKindTriangles = "triangles"
)

/**
 * @brief Describes one scene object. Decoded from the [[objects]] tables of
 * the application configuration.
 */
type GeometryConfig struct {
	Name string `toml:"name"`
	/** @brief cube, plane, pyramid or triangles. */
	Kind string `toml:"kind"`
	/** @brief Edge length of the generated primitive. Defaults to 1. */
	Size     float32    `toml:"size"`
	Position [3]float32 `toml:"position"`
	/** @brief Initial rotation in degrees, applied x then y then z. */
	RotationDegrees [3]float32 `toml:"rotation_degrees"`
	/** @brief Rotation speed in degrees per second around each axis. */
	SpinDegrees [3]float32 `toml:"spin_degrees"`
	/** @brief Model space triangles for kind = "triangles". */
	Triangles [][3][3]float32 `toml:"triangles"`
}

// Spin returns the spin rate in radians per second.
func (gc GeometryConfig) Spin() math.Vec3 {
	return math.NewVec3(
		math.DegToRad(gc.SpinDegrees[0]),
		math.DegToRad(gc.SpinDegrees[1]),
		math.DegToRad(gc.SpinDegrees[2]),
	)
}

/** @brief The geometry system configuration. */
type GeometrySystemConfig struct {
	/**
	 * @brief NOTE: The maximum number of geometries that can be generated
	 * by the system over its lifetime.
	 */
	MaxGeometryCount uint32
}

// GeometrySystem builds geometries from configuration.
type GeometrySystem struct {
	Config    *GeometrySystemConfig
	generated uint32
}

func NewGeometrySystem(config *GeometrySystemConfig) (*GeometrySystem, error) {
	if config.MaxGeometryCount == 0 {
		err := fmt.Errorf("func NewGeometrySystem - config.MaxGeometryCount must be > 0: %w", core.ErrConfiguration)
		core.LogWarn(err.Error())
		return nil, err
	}
	return &GeometrySystem{Config: config}, nil
}

func vec3(v [3]float32) math.Vec3 {
	return math.NewVec3(v[0], v[1], v[2])
}

/**
 * @brief Generates a geometry from its configuration: builds the model
 * space triangles of the requested kind, then places the transform at the
 * configured position and rotation.
 *
 * @return An error wrapping core.ErrConfiguration for unknown kinds, a
 * missing name, a negative size or an empty triangle list.
 */
func (gs *GeometrySystem) AcquireFromConfig(config GeometryConfig) (*math.Geometry, error) {
	if gs.generated >= gs.Config.MaxGeometryCount {
		return nil, fmt.Errorf("geometry limit %d reached: %w", gs.Config.MaxGeometryCount, core.ErrConfiguration)
	}
	g, err := GenerateGeometry(config)
	if err != nil {
		return nil, err
	}
	gs.generated++
	return g, nil
}

// Generated is the number of geometries handed out so far.
func (gs *GeometrySystem) Generated() uint32 {
	return gs.generated
}

func (gs *GeometrySystem) Shutdown() error {
	gs.generated = 0
	return nil
}

// GenerateGeometry is AcquireFromConfig without the system bookkeeping.
func GenerateGeometry(config GeometryConfig) (*math.Geometry, error) {
	if strings.TrimSpace(config.Name) == "" {
		return nil, fmt.Errorf("geometry without a name: %w", core.ErrConfiguration)
	}
	size := config.Size
	if size < 0 {
		return nil, fmt.Errorf("geometry %s: negative size %g: %w", config.Name, size, core.ErrConfiguration)
	}
	if size == 0 {
		size = 1
	}

	g := math.NewGeometry(config.Name)
	switch strings.ToLower(config.Kind) {
	case GeometryKindCube:
		g.AddTriangles(math.CubeTriangles(size))
	case GeometryKindPlane:
		g.AddTriangles(math.PlaneTriangles(size, size))
	case GeometryKindPyramid:
		g.AddTriangles(math.PyramidTriangles(size))
	case GeometryKindTriangles:
		if len(config.Triangles) == 0 {
			return nil, fmt.Errorf("geometry %s: no triangles: %w", config.Name, core.ErrConfiguration)
		}
		for _, t := range config.Triangles {
			g.AddTriangle(math.NewTriangle(vec3(t[0]), vec3(t[1]), vec3(t[2])))
		}
	default:
		return nil, fmt.Errorf("geometry %s: unknown kind %q: %w", config.Name, config.Kind, core.ErrConfiguration)
	}

	g.Transform = math.NewTransformFromPosition(vec3(config.Position))
	g.Transform.RotateX(math.DegToRad(config.RotationDegrees[0]))
	g.Transform.RotateY(math.DegToRad(config.RotationDegrees[1]))
	g.Transform.RotateZ(math.DegToRad(config.RotationDegrees[2]))
	return g, nil
}
