package software

import (
	"image"
	"image/color"
	m "math"

	xdraw "golang.org/x/image/draw"

	"github.com/spaghettifunk/wireframe/engine/math"
	"github.com/spaghettifunk/wireframe/engine/renderer"
)

/** @brief Receives every presented frame of a software canvas. */
type FrameSink interface {
	WriteFrame(index int, frame *image.RGBA) error
}

/**
 * @brief An off-screen canvas drawing aliased one pixel lines into an RGBA
 * image. Segments are clipped to the image before rasterisation, so far
 * away projected points cost nothing.
 */
type Canvas struct {
	img    *image.RGBA
	color  color.RGBA
	sink   FrameSink
	frames int
}

// NewCanvas creates a width x height canvas. sink may be nil.
func NewCanvas(width, height int, sink FrameSink) *Canvas {
	return &Canvas{
		img:   image.NewRGBA(image.Rect(0, 0, width, height)),
		color: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		sink:  sink,
	}
}

func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Frames is the number of frames presented so far.
func (c *Canvas) Frames() int {
	return c.frames
}

// Resize replaces the backing image. The content is lost.
func (c *Canvas) Resize(width, height int) {
	c.img = image.NewRGBA(image.Rect(0, 0, width, height))
}

func (c *Canvas) SetColor(col color.Color) {
	c.color = color.RGBAModel.Convert(col).(color.RGBA)
}

func (c *Canvas) Clear() {
	xdraw.Draw(c.img, c.img.Bounds(), image.NewUniform(c.color), image.Point{}, xdraw.Src)
}

func (c *Canvas) Present() error {
	if c.sink != nil {
		if err := c.sink.WriteFrame(c.frames, c.img); err != nil {
			return err
		}
	}
	c.frames++
	return nil
}

// DrawLine rasterises the segment with Bresenham's algorithm.
func (c *Canvas) DrawLine(p0, p1 renderer.ScreenPoint) {
	b := c.img.Bounds()
	x0, y0, x1, y1, ok := clipSegment(p0, p1, b)
	if !ok {
		return
	}

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		c.img.SetRGBA(x0, y0, c.color)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

const (
	outInside = 0
	outLeft   = 1 << iota
	outRight
	outBottom
	outTop
)

func outcode(x, y float64, xmin, ymin, xmax, ymax float64) int {
	code := outInside
	if x < xmin {
		code |= outLeft
	} else if x > xmax {
		code |= outRight
	}
	if y < ymin {
		code |= outTop
	} else if y > ymax {
		code |= outBottom
	}
	return code
}

// clipSegment is Cohen-Sutherland against the pixel centres of b.
func clipSegment(p0, p1 renderer.ScreenPoint, b image.Rectangle) (int, int, int, int, bool) {
	if b.Empty() {
		return 0, 0, 0, 0, false
	}
	xmin, ymin := float64(b.Min.X), float64(b.Min.Y)
	xmax, ymax := float64(b.Max.X-1), float64(b.Max.Y-1)
	x0, y0 := float64(p0.X), float64(p0.Y)
	x1, y1 := float64(p1.X), float64(p1.Y)

	code0 := outcode(x0, y0, xmin, ymin, xmax, ymax)
	code1 := outcode(x1, y1, xmin, ymin, xmax, ymax)
	for {
		if code0|code1 == 0 {
			break
		}
		if code0&code1 != 0 {
			return 0, 0, 0, 0, false
		}
		out := code0
		if out == 0 {
			out = code1
		}
		var x, y float64
		switch {
		case out&outBottom != 0:
			x = x0 + (x1-x0)*(ymax-y0)/(y1-y0)
			y = ymax
		case out&outTop != 0:
			x = x0 + (x1-x0)*(ymin-y0)/(y1-y0)
			y = ymin
		case out&outRight != 0:
			y = y0 + (y1-y0)*(xmax-x0)/(x1-x0)
			x = xmax
		default:
			y = y0 + (y1-y0)*(xmin-x0)/(x1-x0)
			x = xmin
		}
		if out == code0 {
			x0, y0 = x, y
			code0 = outcode(x0, y0, xmin, ymin, xmax, ymax)
		} else {
			x1, y1 = x, y
			code1 = outcode(x1, y1, xmin, ymin, xmax, ymax)
		}
	}
	clamp := func(v, lo, hi float64) int {
		return int(math.Clamp(m.Round(v), lo, hi))
	}
	return clamp(x0, xmin, xmax), clamp(y0, ymin, ymax), clamp(x1, xmin, xmax), clamp(y1, ymin, ymax), true
}

var _ renderer.Canvas = (*Canvas)(nil)
