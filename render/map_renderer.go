package render

import (
	"image/color"

	"retro3d/components"
	"retro3d/raycast"
)

// ViewConeColor is the color of the per-ray lines on the top-down map
var ViewConeColor = color.RGBA{0, 0, 0, 255}

// MapRenderer draws the grid from above, one rectangle per cell
type MapRenderer struct {
	ShowViewCone bool
}

// NewMapRenderer creates a top-down renderer with the view cone enabled
func NewMapRenderer() *MapRenderer {
	return &MapRenderer{ShowViewCone: true}
}

// Draw paints every cell of grid into area
func (r *MapRenderer) Draw(s Surface, grid raycast.Grid, area Rect) {
	cellW := area.W / float32(grid.Width())
	cellH := area.H / float32(grid.Height())

	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			id, err := grid.CellAt(x, y)
			if err != nil {
				panic(err)
			}
			if id == components.CellEmpty {
				// The frame is cleared to the background already
				continue
			}
			col, err := grid.ColorFor(id)
			if err != nil {
				panic(err)
			}
			s.FillRect(area.X+float32(x)*cellW, area.Y+float32(y)*cellH, cellW, cellH, col)
		}
	}
}

// DrawViewCone draws a line from the viewer to where each ray stopped
func (r *MapRenderer) DrawViewCone(s Surface, grid raycast.Grid, pose components.PoseComponent, hits []raycast.Hit, area Rect) {
	if !r.ShowViewCone {
		return
	}
	cellW := area.W / float32(grid.Width())
	cellH := area.H / float32(grid.Height())

	x0 := area.X + float32(pose.X)*cellW
	y0 := area.Y + float32(pose.Y)*cellH
	for _, hit := range hits {
		s.DrawLine(x0, y0, area.X+float32(hit.X)*cellW, area.Y+float32(hit.Y)*cellH, 1, ViewConeColor)
	}
}
