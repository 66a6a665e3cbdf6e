// Package terminal draws the split view into a character grid with tcell,
// one colored cell per block of logical pixels.
package terminal

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

// Surface scales the logical pixel screen down onto a tcell screen
type Surface struct {
	screen         tcell.Screen
	cols, rows     int
	scaleX, scaleY float64
}

// NewSurface maps a logicalWidth by logicalHeight pixel screen onto screen
func NewSurface(screen tcell.Screen, logicalWidth, logicalHeight int) *Surface {
	cols, rows := screen.Size()
	return &Surface{
		screen: screen,
		cols:   cols,
		rows:   rows,
		scaleX: float64(cols) / float64(logicalWidth),
		scaleY: float64(rows) / float64(logicalHeight),
	}
}

// Size returns the grid size in cells
func (s *Surface) Size() (cols, rows int) {
	return s.cols, s.rows
}

// Clear paints every cell with c
func (s *Surface) Clear(c color.Color) {
	style := cellStyle(c)
	for y := 0; y < s.rows; y++ {
		for x := 0; x < s.cols; x++ {
			s.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// FillRect paints every cell the rectangle touches. A rectangle smaller
// than a cell still paints the cell it starts in.
func (s *Surface) FillRect(x, y, w, h float32, c color.Color) {
	x0 := int(math.Floor(float64(x) * s.scaleX))
	y0 := int(math.Floor(float64(y) * s.scaleY))
	x1 := max(int(math.Ceil(float64(x+w)*s.scaleX)), x0+1)
	y1 := max(int(math.Ceil(float64(y+h)*s.scaleY)), y0+1)

	style := cellStyle(c)
	for cy := max(y0, 0); cy < min(y1, s.rows); cy++ {
		for cx := max(x0, 0); cx < min(x1, s.cols); cx++ {
			s.screen.SetContent(cx, cy, ' ', nil, style)
		}
	}
}

// DrawLine paints the cells on the segment. Thickness is below cell
// resolution and is ignored.
func (s *Surface) DrawLine(x0, y0, x1, y1, thickness float32, c color.Color) {
	style := cellStyle(c)
	bresenham(s.cell(x0, y0), s.cell(x1, y1), func(cx, cy int) {
		if cx >= 0 && cx < s.cols && cy >= 0 && cy < s.rows {
			s.screen.SetContent(cx, cy, ' ', nil, style)
		}
	})
}

// DrawText writes msg starting at cell (x, y)
func (s *Surface) DrawText(x, y int, msg string, fg, bg color.Color) {
	style := cellStyle(bg).Foreground(toColor(fg))
	for i, r := range []rune(msg) {
		if x+i >= s.cols {
			return
		}
		s.screen.SetContent(x+i, y, r, nil, style)
	}
}

type cellPoint struct{ x, y int }

func (s *Surface) cell(px, py float32) cellPoint {
	return cellPoint{
		x: int(math.Floor(float64(px) * s.scaleX)),
		y: int(math.Floor(float64(py) * s.scaleY)),
	}
}

// bresenham visits every cell on the line from a to b, both ends included
func bresenham(a, b cellPoint, plot func(x, y int)) {
	dx := abs(b.x - a.x)
	dy := -abs(b.y - a.y)
	sx, sy := 1, 1
	if a.x > b.x {
		sx = -1
	}
	if a.y > b.y {
		sy = -1
	}

	err := dx + dy
	x, y := a.x, a.y
	for {
		plot(x, y)
		if x == b.x && y == b.y {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func toColor(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

func cellStyle(bg color.Color) tcell.Style {
	return tcell.StyleDefault.Background(toColor(bg)).Foreground(tcell.ColorBlack)
}
