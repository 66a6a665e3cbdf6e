package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retro3d/components"
	"retro3d/generation"
	"retro3d/raycast"
)

type rect struct {
	x, y, w, h float32
	c          color.Color
}

type line struct {
	x0, y0, x1, y1, thickness float32
	c                         color.Color
}

// recordingSurface keeps every primitive it is asked to draw
type recordingSurface struct {
	clears []color.Color
	rects  []rect
	lines  []line
}

func (s *recordingSurface) Clear(c color.Color) { s.clears = append(s.clears, c) }

func (s *recordingSurface) FillRect(x, y, w, h float32, c color.Color) {
	s.rects = append(s.rects, rect{x, y, w, h, c})
}

func (s *recordingSurface) DrawLine(x0, y0, x1, y1, thickness float32, c color.Color) {
	s.lines = append(s.lines, line{x0, y0, x1, y1, thickness, c})
}

type halfSource struct{}

func (halfSource) Float64() float64 { return 0.5 }

func TestSplitLayout(t *testing.T) {
	l := SplitLayout(1024, 512)

	assert.Equal(t, Rect{0, 0, 512, 512}, l.Map)
	assert.Equal(t, Rect{512, 0, 512, 512}, l.World)
	assert.Equal(t, 512, l.Columns)
	assert.Equal(t, 512.0, l.ProjectionScale)
}

func TestMapRendererDrawsOnlyWalls(t *testing.T) {
	m, ids, err := generation.NewBorderedMap(4, 4, halfSource{})
	require.NoError(t, err)

	s := &recordingSurface{}
	NewMapRenderer().Draw(s, m, Rect{0, 0, 400, 200})

	// 16 cells, 4 of them empty
	require.Len(t, s.rects, 12)
	first := s.rects[0]
	assert.Equal(t, rect{0, 0, 100, 50, m.MustColorFor(ids.Left)}, first)

	last := s.rects[len(s.rects)-1]
	assert.Equal(t, rect{300, 150, 100, 50, m.MustColorFor(ids.Right)}, last)
}

func TestWorldRendererProjectsSlices(t *testing.T) {
	wall := color.RGBA{10, 20, 30, 255}
	hits := []raycast.Hit{
		{Column: 0, Distance: 8, Color: wall, Hit: true},
		{Column: 1, Distance: 20, Hit: false},
		{Column: 2, Distance: 0, Color: wall, Hit: true},
		{Column: 3, Distance: 2, Color: wall, Hit: true},
	}

	s := &recordingSurface{}
	NewWorldRenderer(512).Draw(s, hits, Rect{512, 0, 8, 512})

	require.Len(t, s.lines, 3, "misses are not drawn")

	// 512/8 = 64 either side of the center row
	assert.Equal(t, line{513, 192, 513, 320, 2, wall}, s.lines[0])
	// distance 0 is clamped, then the slice is capped to the view height
	assert.Equal(t, line{517, 0, 517, 512, 2, wall}, s.lines[1])
	assert.Equal(t, line{519, 0, 519, 512, 2, wall}, s.lines[2])
}

func TestWorldRendererDrawsLeftToRight(t *testing.T) {
	hits := make([]raycast.Hit, 16)
	for i := range hits {
		hits[i] = raycast.Hit{Column: i, Distance: 5, Hit: true}
	}

	s := &recordingSurface{}
	NewWorldRenderer(100).Draw(s, hits, Rect{0, 0, 160, 100})

	require.Len(t, s.lines, 16)
	for i := 1; i < len(s.lines); i++ {
		assert.Greater(t, s.lines[i].x0, s.lines[i-1].x0)
	}
}

func TestRenderFrame(t *testing.T) {
	m, _, err := generation.NewBorderedMap(16, 16, halfSource{})
	require.NoError(t, err)
	m.Seal()

	for _, workers := range []int{1, 4} {
		f := NewFrameRenderer(m, raycast.NewCaster(), SplitLayout(1024, 512), workers)
		s := &recordingSurface{}

		hits := f.RenderFrame(s, components.PoseComponent{X: 8, Y: 8})

		require.Len(t, hits, 512)
		assert.Equal(t, []color.Color{components.Background}, s.clears)
		assert.Len(t, s.rects, 60, "border cells of a 16x16 map")

		// one slice and one view cone line per column, every ray hits the border
		assert.Len(t, s.lines, 1024)
		for _, l := range s.lines[512:] {
			assert.Equal(t, ViewConeColor, l.c)
			assert.Equal(t, float32(256), l.x0)
			assert.Equal(t, float32(256), l.y0)
		}
	}
}

func TestViewConeCanBeDisabled(t *testing.T) {
	m, err := components.NewMapComponent(4, 4)
	require.NoError(t, err)

	r := NewMapRenderer()
	r.ShowViewCone = false
	s := &recordingSurface{}
	r.DrawViewCone(s, m, components.PoseComponent{X: 1, Y: 1}, []raycast.Hit{{X: 2, Y: 2}}, Rect{0, 0, 40, 40})

	assert.Empty(t, s.lines)
}

// sealCounter reports how often the caster checked that the grid was sealed,
// which only the parallel pass does
type sealCounter struct {
	*components.MapComponent
	checks int
}

func (g *sealCounter) Sealed() bool {
	g.checks++
	return g.MapComponent.Sealed()
}

func TestZeroWorkersCastsInParallel(t *testing.T) {
	m, _, err := generation.NewBorderedMap(16, 16, halfSource{})
	require.NoError(t, err)
	m.Seal()
	grid := &sealCounter{MapComponent: m}

	f := NewFrameRenderer(grid, raycast.NewCaster(), SplitLayout(1024, 512), 0)
	hits := f.Cast(components.PoseComponent{X: 8, Y: 8})

	assert.Equal(t, 1, grid.checks, "workers=0 takes the parallel path")
	assert.Equal(t, raycast.NewCaster().Cast(components.PoseComponent{X: 8, Y: 8}, m, 512), hits)
}

func TestOneWorkerCastsSequentially(t *testing.T) {
	m, _, err := generation.NewBorderedMap(16, 16, halfSource{})
	require.NoError(t, err)
	m.Seal()
	grid := &sealCounter{MapComponent: m}

	NewFrameRenderer(grid, raycast.NewCaster(), SplitLayout(1024, 512), 1).Cast(components.PoseComponent{X: 8, Y: 8})

	assert.Zero(t, grid.checks)
}

func TestUnsealedGridIsReportedOnce(t *testing.T) {
	m, _, err := generation.NewBorderedMap(16, 16, halfSource{})
	require.NoError(t, err)

	var logged []string
	f := NewFrameRenderer(m, raycast.NewCaster(), SplitLayout(1024, 512), 4)
	f.SetLogger(func(msg string) { logged = append(logged, msg) })

	pose := components.PoseComponent{X: 8, Y: 8}
	first := f.Cast(pose)
	second := f.Cast(pose)

	require.Len(t, logged, 1)
	assert.Contains(t, logged[0], raycast.ErrGridNotSealed.Error())
	assert.Len(t, first, 512)
	assert.Equal(t, first, second)
}
