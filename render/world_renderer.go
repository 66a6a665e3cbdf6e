package render

import (
	"retro3d/raycast"
)

// WorldRenderer draws the first-person view as one vertical wall slice per ray
type WorldRenderer struct {
	ProjectionScale float64
}

// NewWorldRenderer creates a renderer projecting with halfHeight = k / distance
func NewWorldRenderer(k float64) *WorldRenderer {
	return &WorldRenderer{ProjectionScale: k}
}

// Draw paints the slices for hits, left to right, into area.
// Rays that hit nothing leave the background showing.
func (r *WorldRenderer) Draw(s Surface, hits []raycast.Hit, area Rect) {
	if len(hits) == 0 {
		return
	}
	colW := area.W / float32(len(hits))
	centerY := area.Y + area.H/2

	for i, hit := range hits {
		if !hit.Hit {
			continue
		}
		half := float32(min(raycast.ProjectedHalfHeight(hit.Distance, r.ProjectionScale), float64(area.H/2)))
		x := area.X + (float32(i)+0.5)*colW
		s.DrawLine(x, centerY-half, x, centerY+half, colW, hit.Color)
	}
}
