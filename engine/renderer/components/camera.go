package components

import (
	"fmt"
	m "math"
	"strings"

	"github.com/spaghettifunk/wireframe/engine/core"
	"github.com/spaghettifunk/wireframe/engine/math"
	"github.com/spaghettifunk/wireframe/engine/renderer"
)

/** @brief How normalized device coordinates are scaled to pixels. */
type ScreenMapping uint8

const (
	/** @brief x is scaled by the width and y by the height. */
	ScreenMappingAspect ScreenMapping = iota
	/** @brief Both axes are scaled by the height. */
	ScreenMappingReference
)

func (s ScreenMapping) String() string {
	switch s {
	case ScreenMappingAspect:
		return "aspect"
	case ScreenMappingReference:
		return "reference"
	}
	return fmt.Sprintf("ScreenMapping(%d)", uint8(s))
}

// ParseScreenMapping accepts "aspect" and "reference"; the empty string selects aspect.
func ParseScreenMapping(s string) (ScreenMapping, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "aspect":
		return ScreenMappingAspect, nil
	case "reference":
		return ScreenMappingReference, nil
	}
	return ScreenMappingAspect, fmt.Errorf("unknown screen mapping %q: %w", s, core.ErrConfiguration)
}

/** @brief Projection parameters of a camera. */
type CameraConfig struct {
	/** @brief Resolution in pixels. */
	Width  int
	Height int
	/** @brief Vertical field of view in radians. */
	FOV float32
	/** @brief Clip plane distances. */
	Near float32
	Far  float32
	/** @brief NDC to pixel mapping. */
	Mapping ScreenMapping
}

/** @brief The name of the default camera. */
const DEFAULT_CAMERA_NAME string = "default"

/** @brief Largest absolute pixel coordinate handed to a canvas. */
const K_SCREEN_LIMIT float32 = 1 << 20

/** @brief Pitch limit, 89 degrees. */
const K_PITCH_LIMIT float32 = 1.55334306

// DefaultCameraConfig matches the demo window: 800x600, 90 degree fov, clip planes at 0.1 and 1000.
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Width:   800,
		Height:  600,
		FOV:     math.K_HALF_PI,
		Near:    0.1,
		Far:     1000,
		Mapping: ScreenMappingAspect,
	}
}

/**
 * @brief Checks that the configuration yields a finite projection matrix.
 *
 * @return An error wrapping core.ErrConfiguration otherwise.
 */
func (c CameraConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("resolution %dx%d must be positive: %w", c.Width, c.Height, core.ErrConfiguration)
	}
	if !(c.FOV > 0 && c.FOV < math.K_PI) {
		return fmt.Errorf("fov %g must be in (0, pi): %w", c.FOV, core.ErrConfiguration)
	}
	if !(c.Near > 0) {
		return fmt.Errorf("near clip %g must be positive: %w", c.Near, core.ErrConfiguration)
	}
	if !(c.Far > c.Near) || m.IsInf(float64(c.Far), 1) {
		return fmt.Errorf("far clip %g must be finite and greater than near clip %g: %w", c.Far, c.Near, core.ErrConfiguration)
	}
	if c.Mapping != ScreenMappingAspect && c.Mapping != ScreenMappingReference {
		return fmt.Errorf("screen mapping %s: %w", c.Mapping, core.ErrConfiguration)
	}
	return nil
}

// AspectRatio is width / height as a float.
func (c CameraConfig) AspectRatio() float32 {
	return float32(c.Width) / float32(c.Height)
}

/**
 * @brief A pinhole camera: a perspective projection plus a pose in the
 * world. It reads the scene and emits line draws, it never mutates it.
 */
type Camera struct {
	config CameraConfig
	/** @brief Rebuilt whenever the projection parameters change. */
	projection math.Mat4
	/**
	 * @brief The position of this camera.
	 * NOTE: Do not set this directly, use SetPosition() instead
	 * so the transform is recalculated when needed.
	 */
	Position math.Vec3
	/**
	 * @brief The rotation of this camera using Euler angles (pitch, yaw, roll).
	 * NOTE: Do not set this directly, use SetEulerRotation() instead
	 * so the transform is recalculated when needed.
	 */
	EulerRotation math.Vec3
	/** @brief Internal flag used to determine when the transform needs to be rebuilt. */
	IsDirty bool
	transform math.Transform
}

/**
 * @brief Creates a camera at the origin looking down +z.
 *
 * @return An error wrapping core.ErrConfiguration if config is invalid.
 */
func NewCamera(config CameraConfig) (*Camera, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("new camera: %w", err)
	}
	camera := &Camera{config: config}
	camera.projection = projectionFor(config)
	camera.Reset()
	return camera, nil
}

func projectionFor(config CameraConfig) math.Mat4 {
	return math.NewMat4Perspective(config.FOV, config.AspectRatio(), config.Near, config.Far)
}

// Reset puts the camera back at the origin with no rotation. The projection is kept.
func (c *Camera) Reset() {
	c.EulerRotation = math.NewVec3Zero()
	c.Position = math.NewVec3Zero()
	c.IsDirty = false
	c.transform = math.NewTransform()
}

func (c *Camera) Config() CameraConfig {
	return c.config
}

func (c *Camera) Projection() math.Mat4 {
	return c.projection
}

/**
 * @brief Replaces every projection parameter at once. On error the camera
 * is left unchanged.
 */
func (c *Camera) Reconfigure(config CameraConfig) error {
	if err := config.Validate(); err != nil {
		return err
	}
	c.config = config
	c.projection = projectionFor(config)
	core.LogDebug("camera reconfigured: %dx%d fov %.1f° clip [%g, %g] mapping %s",
		config.Width, config.Height, math.RadToDeg(config.FOV), config.Near, config.Far, config.Mapping)
	return nil
}

func (c *Camera) SetFOV(fov_radians float32) error {
	config := c.config
	config.FOV = fov_radians
	return c.Reconfigure(config)
}

func (c *Camera) SetResolution(width, height int) error {
	config := c.config
	config.Width = width
	config.Height = height
	return c.Reconfigure(config)
}

func (c *Camera) SetClip(near, far float32) error {
	config := c.config
	config.Near = near
	config.Far = far
	return c.Reconfigure(config)
}

func (c *Camera) SetMapping(mapping ScreenMapping) error {
	config := c.config
	config.Mapping = mapping
	return c.Reconfigure(config)
}

func (c *Camera) GetPosition() math.Vec3 {
	return c.Position
}

func (c *Camera) SetPosition(position math.Vec3) {
	c.Position = position
	c.IsDirty = true
}

func (c *Camera) GetEulerRotation() math.Vec3 {
	return c.EulerRotation
}

func (c *Camera) SetEulerRotation(rotation math.Vec3) {
	c.EulerRotation = rotation
	c.IsDirty = true
}

/**
 * @brief Returns the camera pose in world space, rebuilt from position and
 * Euler rotation when dirty: T(position) · Ry(yaw) · Rx(pitch) · Rz(roll).
 */
func (c *Camera) Transform() math.Transform {
	if c.IsDirty {
		t := math.NewTransformFromPosition(c.Position)
		t.RotateY(c.EulerRotation.Y)
		t.RotateX(c.EulerRotation.X)
		t.RotateZ(c.EulerRotation.Z)
		c.transform = t
		c.IsDirty = false
	}
	return c.transform
}

// GetView returns the world to camera matrix.
func (c *Camera) GetView() math.Mat4 {
	t := c.Transform()
	return t.Inverse()
}

// ViewProjection returns projection · view.
func (c *Camera) ViewProjection() math.Mat4 {
	return c.projection.Mul(c.GetView())
}

// Forward is the canonical forward vector (0, 0, 1) rotated by the camera pose.
func (c *Camera) Forward() math.Vec3 {
	t := c.Transform()
	return t.ApplyDirection(math.NewVec3Forward())
}

func (c *Camera) Backward() math.Vec3 {
	return c.Forward().Negate()
}

func (c *Camera) Right() math.Vec3 {
	t := c.Transform()
	return t.ApplyDirection(math.NewVec3(1, 0, 0))
}

func (c *Camera) Left() math.Vec3 {
	return c.Right().Negate()
}

func (c *Camera) move(direction math.Vec3, amount float32) {
	c.Position = c.Position.Add(direction.MulScalar(amount))
	c.IsDirty = true
}

func (c *Camera) MoveForward(amount float32) {
	c.move(c.Forward(), amount)
}

func (c *Camera) MoveBackward(amount float32) {
	c.move(c.Backward(), amount)
}

func (c *Camera) MoveLeft(amount float32) {
	c.move(c.Left(), amount)
}

func (c *Camera) MoveRight(amount float32) {
	c.move(c.Right(), amount)
}

func (c *Camera) MoveUp(amount float32) {
	c.move(math.NewVec3Up(), amount)
}

func (c *Camera) MoveDown(amount float32) {
	c.move(math.NewVec3Up(), -amount)
}

func (c *Camera) Yaw(amount float32) {
	c.EulerRotation.Y += amount
	c.IsDirty = true
}

func (c *Camera) Pitch(amount float32) {
	c.EulerRotation.X += amount

	// Clamp to avoid Gimbal lock.
	c.EulerRotation.X = math.Clamp(c.EulerRotation.X, -K_PITCH_LIMIT, K_PITCH_LIMIT)

	c.IsDirty = true
}

/**
 * @brief Projects a world point to a pixel.
 *
 * The point is taken into camera space, multiplied by the projection and
 * divided by w. A w of zero (a point in the camera plane) is replaced by
 * K_FLOAT_EPSILON with its sign kept, and the resulting pixel is clamped to
 * ±K_SCREEN_LIMIT.
 */
func (c *Camera) WorldToScreen(point math.Vec3) renderer.ScreenPoint {
	return c.project(c.ViewProjection(), point)
}

func (c *Camera) project(viewProjection math.Mat4, point math.Vec3) renderer.ScreenPoint {
	clip := viewProjection.MulVec4(point.ToVec4(1))
	w := clip.W
	if w > -math.K_FLOAT_EPSILON && w < math.K_FLOAT_EPSILON {
		if m.Signbit(float64(w)) {
			w = -math.K_FLOAT_EPSILON
		} else {
			w = math.K_FLOAT_EPSILON
		}
	}
	ndcX := clip.X / w
	ndcY := clip.Y / w

	scaleX := float32(c.config.Width)
	scaleY := float32(c.config.Height)
	if c.config.Mapping == ScreenMappingReference {
		scaleX = scaleY
	}
	return renderer.ScreenPoint{
		X: toPixel((ndcX + 1) * 0.5 * scaleX),
		Y: toPixel((ndcY + 1) * 0.5 * scaleY),
	}
}

func toPixel(v float32) int {
	if m.IsNaN(float64(v)) {
		return 0
	}
	v = math.Clamp(v, -K_SCREEN_LIMIT, K_SCREEN_LIMIT)
	return int(m.Floor(float64(v) + 0.5))
}

/**
 * @brief Draws the wireframe of every geometry of scene on canvas.
 *
 * For each geometry the world space triangles are computed, triangles whose
 * face normal is turned away from the camera forward vector are culled, and
 * every survivor is projected and drawn as three lines in the order ab, bc,
 * ca. Geometries are visited in slice order; nil entries are skipped.
 *
 * @return The pass counters. A degenerate triangle aborts the pass with an
 * error wrapping core.ErrDegenerateVector.
 */
func (c *Camera) Render(canvas renderer.Canvas, scene []*math.Geometry) (renderer.RenderStats, error) {
	stats := renderer.RenderStats{}
	forward := c.Forward()
	viewProjection := c.ViewProjection()

	for _, geometry := range scene {
		if geometry == nil {
			continue
		}
		stats.Geometries++
		for i, triangle := range geometry.WorldTriangles() {
			stats.Triangles++
			culled, err := triangle.IsBackface(forward)
			if err != nil {
				return stats, fmt.Errorf("render %s triangle %d: %w", geometry.Name, i, err)
			}
			if culled {
				stats.Culled++
				continue
			}
			a := c.project(viewProjection, triangle.A)
			b := c.project(viewProjection, triangle.B)
			cc := c.project(viewProjection, triangle.C)
			canvas.DrawLine(a, b)
			canvas.DrawLine(b, cc)
			canvas.DrawLine(cc, a)
			stats.Lines += 3
		}
	}

	core.LogDebug("render pass: %d geometries, %d triangles, %d culled, %d lines",
		stats.Geometries, stats.Triangles, stats.Culled, stats.Lines)
	return stats, nil
}
