package components

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

// CellEmpty is the walkable cell id. It always maps to Background.
const CellEmpty = 0

// Background is the color of empty cells and of rays that hit nothing
var Background = color.RGBA{255, 255, 255, 255}

var (
	ErrOutOfBounds       = errors.New("cell out of bounds")
	ErrUnknownCellID     = errors.New("unknown cell id")
	ErrSealed            = errors.New("map is sealed")
	ErrInvalidDimensions = errors.New("invalid map dimensions")
	errPaletteInvariant  = errors.New("cell id without palette entry")
)

// ColorSource supplies uniform samples in [0, 1) for palette colors
type ColorSource interface {
	Float64() float64
}

// MapComponent stores the grid map: a row-major cell array and the palette
// that colors each cell id.
type MapComponent struct {
	width   int
	height  int
	cells   []int
	palette map[int]color.RGBA
	nextID  int
	sealed  bool
}

// NewMapComponent creates a blank map with every cell empty
func NewMapComponent(width, height int) (*MapComponent, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	m := &MapComponent{
		width:   width,
		height:  height,
		cells:   make([]int, width*height),
		palette: make(map[int]color.RGBA),
	}
	m.palette[CellEmpty] = Background
	m.nextID = 1

	return m, nil
}

// Width returns the map width in cells
func (m *MapComponent) Width() int {
	return m.width
}

// Height returns the map height in cells
func (m *MapComponent) Height() int {
	return m.height
}

// InBounds reports whether (x, y) addresses a cell
func (m *MapComponent) InBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// CellAt returns the id stored at (x, y)
func (m *MapComponent) CellAt(x, y int) (int, error) {
	if !m.InBounds(x, y) {
		return 0, fmt.Errorf("%w: (%d, %d) outside %dx%d", ErrOutOfBounds, x, y, m.width, m.height)
	}
	return m.cells[x+y*m.width], nil
}

// CellAtPoint floors a world position to its cell and returns the id there.
// Flooring keeps small negative positions out of row and column 0.
func (m *MapComponent) CellAtPoint(x, y float64) (int, error) {
	return m.CellAt(int(math.Floor(x)), int(math.Floor(y)))
}

// SetCell stores id at (x, y). The id must already have a palette entry.
func (m *MapComponent) SetCell(x, y, id int) error {
	if m.sealed {
		return ErrSealed
	}
	if !m.InBounds(x, y) {
		return fmt.Errorf("%w: (%d, %d) outside %dx%d", ErrOutOfBounds, x, y, m.width, m.height)
	}
	if _, ok := m.palette[id]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownCellID, id)
	}
	m.cells[x+y*m.width] = id
	return nil
}

// ColorFor returns the palette color for id
func (m *MapComponent) ColorFor(id int) (color.RGBA, error) {
	c, ok := m.palette[id]
	if !ok {
		return color.RGBA{}, fmt.Errorf("%w: %d", ErrUnknownCellID, id)
	}
	return c, nil
}

// MustColorFor is ColorFor for callers that only pass ids read from the map.
// A miss there means the palette invariant is broken.
func (m *MapComponent) MustColorFor(id int) color.RGBA {
	c, err := m.ColorFor(id)
	if err != nil {
		panic(err)
	}
	return c
}

// AssignNewColor samples a random color, stores it under the next free id
// and returns that id. Ids are handed out sequentially and never reused.
func (m *MapComponent) AssignNewColor(src ColorSource) (int, error) {
	if m.sealed {
		return 0, ErrSealed
	}

	id := m.nextID
	m.nextID++
	m.palette[id] = color.RGBA{
		R: channel(src.Float64()),
		G: channel(src.Float64()),
		B: channel(src.Float64()),
		A: 255,
	}
	return id, nil
}

// channel scales a [0, 1] sample to an 8-bit color channel
func channel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(v * 255))
}

// PaletteSize returns the number of assigned ids, including CellEmpty
func (m *MapComponent) PaletteSize() int {
	return len(m.palette)
}

// Cells returns a copy of the row-major cell array
func (m *MapComponent) Cells() []int {
	out := make([]int, len(m.cells))
	copy(out, m.cells)
	return out
}

// Seal freezes the map. Readers may share a sealed map across goroutines.
func (m *MapComponent) Seal() {
	m.sealed = true
}

// Sealed reports whether the map rejects further mutation
func (m *MapComponent) Sealed() bool {
	return m.sealed
}

// CheckPalette verifies that every id placed in the map has a color
func (m *MapComponent) CheckPalette() error {
	for i, id := range m.cells {
		if _, ok := m.palette[id]; !ok {
			return fmt.Errorf("%w: id %d at (%d, %d)", errPaletteInvariant, id, i%m.width, i/m.width)
		}
	}
	return nil
}
