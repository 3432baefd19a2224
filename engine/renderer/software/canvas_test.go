package software

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/spaghettifunk/wireframe/engine/renderer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	black = color.RGBA{A: 0xff}
	white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	red   = color.RGBA{R: 0xff, A: 0xff}
)

type memorySink struct {
	indices []int
	err     error
}

func (m *memorySink) WriteFrame(index int, frame *image.RGBA) error {
	m.indices = append(m.indices, index)
	return m.err
}

func countColor(img *image.RGBA, c color.RGBA) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) == c {
				n++
			}
		}
	}
	return n
}

func newBlackCanvas(w, h int, sink FrameSink) *Canvas {
	c := NewCanvas(w, h, sink)
	c.SetColor(black)
	c.Clear()
	c.SetColor(white)
	return c
}

func TestClearFillsWithCurrentColor(t *testing.T) {
	c := NewCanvas(16, 8, nil)
	c.SetColor(red)
	c.Clear()
	assert.Equal(t, 16*8, countColor(c.Image(), red))
}

func TestDrawLine(t *testing.T) {
	tests := []struct {
		name   string
		p0, p1 renderer.ScreenPoint
		pixels int
	}{
		{"horizontal", renderer.ScreenPoint{X: 1, Y: 1}, renderer.ScreenPoint{X: 5, Y: 1}, 5},
		{"vertical", renderer.ScreenPoint{X: 2, Y: 7}, renderer.ScreenPoint{X: 2, Y: 3}, 5},
		{"diagonal", renderer.ScreenPoint{X: 0, Y: 0}, renderer.ScreenPoint{X: 9, Y: 9}, 10},
		{"single pixel", renderer.ScreenPoint{X: 4, Y: 4}, renderer.ScreenPoint{X: 4, Y: 4}, 1},
		{"outside", renderer.ScreenPoint{X: -5, Y: -5}, renderer.ScreenPoint{X: -1, Y: 20}, 0},
		{"clipped", renderer.ScreenPoint{X: -1 << 20, Y: 5}, renderer.ScreenPoint{X: 1 << 20, Y: 5}, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newBlackCanvas(10, 10, nil)
			c.DrawLine(tt.p0, tt.p1)
			img := c.Image()
			assert.Equal(t, tt.pixels, countColor(img, white))
			if tt.pixels > 0 && tt.name != "clipped" {
				assert.Equal(t, white, img.RGBAAt(tt.p0.X, tt.p0.Y))
				assert.Equal(t, white, img.RGBAAt(tt.p1.X, tt.p1.Y))
			}
		})
	}
}

func TestPresentCountsFrames(t *testing.T) {
	sink := &memorySink{}
	c := newBlackCanvas(4, 4, sink)
	require.NoError(t, c.Present())
	require.NoError(t, c.Present())
	assert.Equal(t, []int{0, 1}, sink.indices)
	assert.Equal(t, 2, c.Frames())

	sink.err = errors.New("disk full")
	assert.Error(t, c.Present())
	assert.Equal(t, 2, c.Frames())
}

func TestResize(t *testing.T) {
	c := NewCanvas(4, 4, nil)
	c.Resize(8, 2)
	assert.Equal(t, image.Rect(0, 0, 8, 2), c.Image().Bounds())
}

func TestBMPDirSinkRoundTrip(t *testing.T) {
	sink, err := NewBMPDirSink(t.TempDir(), "frame_")
	require.NoError(t, err)

	c := newBlackCanvas(12, 6, sink)
	c.DrawLine(renderer.ScreenPoint{X: 0, Y: 2}, renderer.ScreenPoint{X: 11, Y: 2})
	require.NoError(t, c.Present())
	assert.FileExists(t, sink.FramePath(0))

	img, err := sink.ReadFrame(0)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 12, 6), img.Bounds())
	assert.Equal(t, white, color.RGBAModel.Convert(img.At(5, 2)))
	assert.Equal(t, black, color.RGBAModel.Convert(img.At(5, 3)))
}
