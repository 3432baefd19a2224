package renderer

import (
	"fmt"
	"image/color"
)

/** @brief An integer pixel position on a Canvas. */
type ScreenPoint struct {
	X, Y int
}

func (p ScreenPoint) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

/**
 * @brief The drawing surface a frame is rendered to. A backend only has to
 * draw straight lines between two pixels with the current colour, fill the
 * whole surface, and hand a finished frame to its destination.
 */
type Canvas interface {
	/** @brief Draws a line from p0 to p1 using the current colour. Points outside the surface are clipped by the backend. */
	DrawLine(p0, p1 ScreenPoint)
	/** @brief Fills the whole surface with the current colour. */
	Clear()
	/** @brief Sets the colour used by the following DrawLine and Clear calls. */
	SetColor(c color.Color)
	/** @brief Publishes the current frame. */
	Present() error
}
