// Package render draws the grid map and the first-person view onto any
// Surface. It knows nothing about windows or terminals.
package render

import (
	"image/color"
)

// Surface is the drawing target both renderers paint on
type Surface interface {
	// Clear fills the whole surface with c
	Clear(c color.Color)
	// FillRect fills the axis-aligned rectangle at (x, y) of size w by h
	FillRect(x, y, w, h float32, c color.Color)
	// DrawLine strokes a segment from (x0, y0) to (x1, y1)
	DrawLine(x0, y0, x1, y1, thickness float32, c color.Color)
}

// Rect is a screen-space rectangle in pixels
type Rect struct {
	X, Y, W, H float32
}

// Layout places the two views on the screen
type Layout struct {
	Map             Rect    // Top-down map area
	World           Rect    // First-person view area
	Columns         int     // Rays cast per frame
	ProjectionScale float64 // k in halfHeight = k / distance
}

// SplitLayout puts the map on the left half of the screen and the
// first-person view on the right half, one ray per pixel column.
func SplitLayout(screenWidth, screenHeight int) Layout {
	half := float32(screenWidth / 2)
	return Layout{
		Map:             Rect{X: 0, Y: 0, W: half, H: float32(screenHeight)},
		World:           Rect{X: half, Y: 0, W: float32(screenWidth) - half, H: float32(screenHeight)},
		Columns:         screenWidth - screenWidth/2,
		ProjectionScale: float64(screenHeight),
	}
}
