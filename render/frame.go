package render

import (
	"context"

	"retro3d/components"
	"retro3d/raycast"
)

// FrameRenderer casts the rays for a pose and draws both views
type FrameRenderer struct {
	grid       raycast.Grid
	caster     *raycast.Caster
	layout     Layout
	workers    int
	logMessage func(string)

	Map   *MapRenderer
	World *WorldRenderer
}

// NewFrameRenderer creates a frame renderer for grid. Any workers value
// other than one casts the columns in parallel, zero meaning one goroutine
// per CPU. Parallel casting needs a sealed grid.
func NewFrameRenderer(grid raycast.Grid, caster *raycast.Caster, layout Layout, workers int) *FrameRenderer {
	return &FrameRenderer{
		grid:       grid,
		caster:     caster,
		layout:     layout,
		workers:    workers,
		logMessage: func(string) {},
		Map:        NewMapRenderer(),
		World:      NewWorldRenderer(layout.ProjectionScale),
	}
}

// SetLogger routes casting problems to logFunc
func (f *FrameRenderer) SetLogger(logFunc func(string)) {
	if logFunc == nil {
		logFunc = func(string) {}
	}
	f.logMessage = logFunc
}

// Layout returns the screen layout the frame is drawn with
func (f *FrameRenderer) Layout() Layout {
	return f.layout
}

// Cast returns the hits for pose without drawing anything. If the parallel
// pass fails the error is logged once and later frames cast sequentially.
func (f *FrameRenderer) Cast(pose components.PoseComponent) []raycast.Hit {
	if f.workers != 1 {
		hits, err := f.caster.CastParallel(context.Background(), pose, f.grid, f.layout.Columns, f.workers)
		if err == nil {
			return hits
		}
		f.logMessage("Parallel cast disabled: " + err.Error())
		f.workers = 1
	}
	return f.caster.Cast(pose, f.grid, f.layout.Columns)
}

// RenderFrame clears s and draws the map, the view cone and the
// first-person view for pose. The hits are returned for overlays.
func (f *FrameRenderer) RenderFrame(s Surface, pose components.PoseComponent) []raycast.Hit {
	s.Clear(components.Background)

	hits := f.Cast(pose)

	f.Map.Draw(s, f.grid, f.layout.Map)
	f.World.Draw(s, hits, f.layout.World)
	f.Map.DrawViewCone(s, f.grid, pose, hits, f.layout.Map)

	return hits
}
