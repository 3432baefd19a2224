package renderer

import (
	"image/color"

	"github.com/spaghettifunk/wireframe/engine/core"
	"github.com/spaghettifunk/wireframe/engine/math"
)

// RenderStats counts what a single pass did.
type RenderStats struct {
	Geometries int
	Triangles  int
	Culled     int
	Lines      int
}

// Add accumulates the counters of other into s.
func (s *RenderStats) Add(other RenderStats) {
	s.Geometries += other.Geometries
	s.Triangles += other.Triangles
	s.Culled += other.Culled
	s.Lines += other.Lines
}

/**
 * @brief Anything that can turn a scene into line draws on a canvas.
 * The camera component is the only implementation.
 */
type View interface {
	Render(canvas Canvas, scene []*math.Geometry) (RenderStats, error)
}

/** @brief Everything the renderer needs to draw one frame. */
type RenderPacket struct {
	DeltaTime float64
	/** @brief The flat list of objects to draw, in draw order. */
	Geometries []*math.Geometry
}

// Black lines on a white background.
var (
	DefaultBackground color.Color = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	DefaultForeground color.Color = color.RGBA{A: 0xff}
)

/**
 * @brief The renderer frontend: owns the canvas backend and the view and
 * sequences begin/draw/end for each frame.
 */
type Renderer struct {
	backend    Canvas
	view       View
	background color.Color
	foreground color.Color
	last       RenderStats
	total      RenderStats
}

func New(backend Canvas, view View) *Renderer {
	return &Renderer{
		backend:    backend,
		view:       view,
		background: DefaultBackground,
		foreground: DefaultForeground,
	}
}

// SetBackend swaps the canvas, e.g. when a window hands out a new screen image every frame.
func (r *Renderer) SetBackend(backend Canvas) {
	r.backend = backend
}

func (r *Renderer) Backend() Canvas {
	return r.backend
}

func (r *Renderer) SetView(view View) {
	r.view = view
}

func (r *Renderer) SetColors(background, foreground color.Color) {
	r.background = background
	r.foreground = foreground
}

// BeginFrame clears the backend to the background colour and arms the line colour.
func (r *Renderer) BeginFrame(deltaTime float64) error {
	r.backend.SetColor(r.background)
	r.backend.Clear()
	r.backend.SetColor(r.foreground)
	return nil
}

func (r *Renderer) EndFrame(deltaTime float64) error {
	return r.backend.Present()
}

/**
 * @brief Draws a complete frame: clear, render every geometry of the packet
 * through the view, present.
 *
 * @return The counters of the render pass, or the first error raised by it.
 * A failed pass is not presented.
 */
func (r *Renderer) DrawFrame(renderPacket *RenderPacket) (RenderStats, error) {
	if err := r.BeginFrame(renderPacket.DeltaTime); err != nil {
		core.LogError(err.Error())
		return RenderStats{}, err
	}
	stats, err := r.view.Render(r.backend, renderPacket.Geometries)
	if err != nil {
		core.LogError("render pass failed: %s", err)
		return stats, err
	}
	if err := r.EndFrame(renderPacket.DeltaTime); err != nil {
		core.LogError("RendererEndFrame failed: %s", err)
		return stats, err
	}
	r.last = stats
	r.total.Add(stats)
	return stats, nil
}

// LastStats returns the counters of the last presented frame.
func (r *Renderer) LastStats() RenderStats {
	return r.last
}

// TotalStats returns the counters summed over every presented frame.
func (r *Renderer) TotalStats() RenderStats {
	return r.total
}
