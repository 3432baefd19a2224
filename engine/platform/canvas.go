package platform

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/spaghettifunk/wireframe/engine/renderer"
)

// ScreenCanvas draws onto the ebiten screen image of the current frame.
// ebiten presents the screen once Draw returns, so Present is a no-op.
type ScreenCanvas struct {
	screen *ebiten.Image
	color  color.Color
}

func NewScreenCanvas(screen *ebiten.Image) *ScreenCanvas {
	return &ScreenCanvas{screen: screen, color: color.Black}
}

func (c *ScreenCanvas) DrawLine(p0, p1 renderer.ScreenPoint) {
	// Pixel centres.
	vector.StrokeLine(c.screen,
		float32(p0.X)+0.5, float32(p0.Y)+0.5,
		float32(p1.X)+0.5, float32(p1.Y)+0.5,
		1, c.color, false)
}

func (c *ScreenCanvas) Clear() {
	c.screen.Fill(c.color)
}

func (c *ScreenCanvas) SetColor(col color.Color) {
	c.color = col
}

func (c *ScreenCanvas) Present() error {
	return nil
}

var _ renderer.Canvas = (*ScreenCanvas)(nil)
