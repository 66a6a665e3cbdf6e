package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ImageSurface paints render output onto an ebiten image
type ImageSurface struct {
	img *ebiten.Image
}

// NewImageSurface wraps img
func NewImageSurface(img *ebiten.Image) *ImageSurface {
	return &ImageSurface{img: img}
}

// Clear fills the whole image
func (s *ImageSurface) Clear(c color.Color) {
	s.img.Fill(c)
}

// FillRect draws a filled rectangle
func (s *ImageSurface) FillRect(x, y, w, h float32, c color.Color) {
	vector.DrawFilledRect(s.img, x, y, w, h, c, false)
}

// DrawLine strokes a line segment
func (s *ImageSurface) DrawLine(x0, y0, x1, y1, thickness float32, c color.Color) {
	vector.StrokeLine(s.img, x0, y0, x1, y1, thickness, c, false)
}
