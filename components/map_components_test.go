package components

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// constSource returns the same sample for every channel
type constSource float64

func (c constSource) Float64() float64 { return float64(c) }

func TestNewMapComponentIsBlank(t *testing.T) {
	m, err := NewMapComponent(5, 3)
	require.NoError(t, err)

	assert.Equal(t, 5, m.Width())
	assert.Equal(t, 3, m.Height())
	assert.Equal(t, 1, m.PaletteSize())
	assert.Equal(t, make([]int, 15), m.Cells())

	c, err := m.ColorFor(CellEmpty)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, c)
}

func TestNewMapComponentRejectsBadDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 4}, {4, 0}, {-1, 3}} {
		_, err := NewMapComponent(dims[0], dims[1])
		assert.ErrorIs(t, err, ErrInvalidDimensions, "dims %v", dims)
	}
}

func TestCellAtBounds(t *testing.T) {
	m, err := NewMapComponent(4, 3)
	require.NoError(t, err)

	tests := []struct {
		name string
		x, y int
		ok   bool
	}{
		{"origin", 0, 0, true},
		{"far corner", 3, 2, true},
		{"negative x", -1, 0, false},
		{"negative y", 0, -1, false},
		{"x at width", 4, 0, false},
		{"y at height", 0, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.CellAt(tt.x, tt.y)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrOutOfBounds)
			}
		})
	}
}

func TestCellAtPointFloorsNegativeCoordinates(t *testing.T) {
	m, err := NewMapComponent(4, 4)
	require.NoError(t, err)

	_, err = m.CellAtPoint(-0.5, 0.5)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	_, err = m.CellAtPoint(0.5, -0.01)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	id, err := m.CellAtPoint(3.99, 0.0)
	require.NoError(t, err)
	assert.Equal(t, CellEmpty, id)
}

func TestSetCellRoundTrip(t *testing.T) {
	m, err := NewMapComponent(4, 4)
	require.NoError(t, err)

	id, err := m.AssignNewColor(constSource(0.25))
	require.NoError(t, err)

	require.NoError(t, m.SetCell(2, 1, id))
	got, err := m.CellAt(2, 1)
	require.NoError(t, err)
	assert.Equal(t, id, got)

	require.NoError(t, m.SetCell(2, 1, CellEmpty))
	got, err = m.CellAt(2, 1)
	require.NoError(t, err)
	assert.Equal(t, CellEmpty, got)

	assert.ErrorIs(t, m.SetCell(2, 1, 99), ErrUnknownCellID)
	assert.ErrorIs(t, m.SetCell(4, 1, id), ErrOutOfBounds)
	assert.NoError(t, m.CheckPalette())
}

func TestAssignNewColorIsSequential(t *testing.T) {
	m, err := NewMapComponent(2, 2)
	require.NoError(t, err)

	for want := 1; want <= 5; want++ {
		id, err := m.AssignNewColor(constSource(0.5))
		require.NoError(t, err)
		assert.Equal(t, want, id)
	}
	assert.Equal(t, 6, m.PaletteSize())
}

func TestAssignNewColorScalesChannels(t *testing.T) {
	m, err := NewMapComponent(1, 1)
	require.NoError(t, err)

	tests := []struct {
		sample float64
		want   uint8
	}{
		{0.0, 0},
		{0.5, 128},
		{1.0, 255},
	}

	for _, tt := range tests {
		id, err := m.AssignNewColor(constSource(tt.sample))
		require.NoError(t, err)
		c := m.MustColorFor(id)
		assert.Equal(t, color.RGBA{tt.want, tt.want, tt.want, 255}, c)
	}
}

func TestColorForIsIdempotent(t *testing.T) {
	m, err := NewMapComponent(1, 1)
	require.NoError(t, err)
	id, err := m.AssignNewColor(constSource(0.7))
	require.NoError(t, err)

	first, err := m.ColorFor(id)
	require.NoError(t, err)
	second, err := m.ColorFor(id)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	_, err = m.ColorFor(id + 1)
	assert.ErrorIs(t, err, ErrUnknownCellID)
	assert.Panics(t, func() { m.MustColorFor(id + 1) })
}

func TestSealRejectsMutation(t *testing.T) {
	m, err := NewMapComponent(3, 3)
	require.NoError(t, err)
	m.Seal()

	assert.True(t, m.Sealed())
	assert.ErrorIs(t, m.SetCell(0, 0, CellEmpty), ErrSealed)
	_, err = m.AssignNewColor(constSource(0.1))
	assert.ErrorIs(t, err, ErrSealed)
}

func TestCellsReturnsCopy(t *testing.T) {
	m, err := NewMapComponent(2, 2)
	require.NoError(t, err)

	cells := m.Cells()
	cells[0] = 42

	got, err := m.CellAt(0, 0)
	require.NoError(t, err)
	assert.Equal(t, CellEmpty, got)
}
