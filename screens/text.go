package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Debug font cell size
const (
	glyphWidth = 6
	lineHeight = 16
)

// textPainter prints tinted debug-font lines through one reused scratch image
type textPainter struct {
	line *ebiten.Image
}

// draw prints msg at (x, y) tinted with c
func (p *textPainter) draw(dst *ebiten.Image, msg string, x, y int, c color.Color) {
	w := (len(msg) + 1) * glyphWidth
	if p.line == nil || p.line.Bounds().Dx() < w {
		if p.line != nil {
			p.line.Deallocate()
		}
		p.line = ebiten.NewImage(max(w, 640), lineHeight)
	}
	p.line.Clear()
	ebitenutil.DebugPrintAt(p.line, msg, 0, 0)

	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleWithColor(c)
	op.GeoM.Translate(float64(x), float64(y))
	dst.DrawImage(p.line, op)
}
