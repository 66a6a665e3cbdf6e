// Package raycast walks rays from a viewer pose through the grid map and
// reports, per screen column, how far each ray traveled and what it hit.
package raycast

import (
	"context"
	"errors"
	"image/color"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"retro3d/components"
)

// Defaults match the classic 16x16 demo: 60 degree fan, 20 cell range,
// 0.01 cell ray step.
const (
	DefaultFOV         = math.Pi / 3
	DefaultMaxDistance = 20.0
	DefaultStep        = 0.01

	// Epsilon is the smallest distance used when projecting wall height
	Epsilon = 1e-3
)

// ErrGridNotSealed is returned when a parallel pass is asked to read a map
// that may still be mutated.
var ErrGridNotSealed = errors.New("raycast: parallel pass needs a sealed grid")

// Grid is the read side of the map the caster needs
type Grid interface {
	Width() int
	Height() int
	CellAt(x, y int) (int, error)
	ColorFor(id int) (color.RGBA, error)
	Sealed() bool
}

// Hit is the result for one screen column
type Hit struct {
	Column   int
	Distance float64    // Traveled distance, MaxDistance on a miss
	Color    color.RGBA // Palette color of the hit cell, background on a miss
	CellID   int        // Id of the hit cell, CellEmpty on a miss
	Hit      bool
	X, Y     float64 // Last in-bounds sample on the ray
}

// Caster casts a fan of rays across the field of view
type Caster struct {
	FOV         float64
	MaxDistance float64
	Step        float64
}

// NewCaster creates a caster with the default fan
func NewCaster() *Caster {
	return &Caster{
		FOV:         DefaultFOV,
		MaxDistance: DefaultMaxDistance,
		Step:        DefaultStep,
	}
}

// RayAngle returns the angle of the ray for column out of screenWidth
func (c *Caster) RayAngle(heading float64, column, screenWidth int) float64 {
	return heading - c.FOV/2 + c.FOV*float64(column)/float64(screenWidth)
}

// Cast returns one Hit per column, in column order
func (c *Caster) Cast(pose components.PoseComponent, grid Grid, screenWidth int) []Hit {
	hits := make([]Hit, max(screenWidth, 0))
	for i := range hits {
		hits[i] = c.castColumn(pose, grid, i, screenWidth)
	}
	return hits
}

// CastParallel is Cast with columns split into contiguous bands cast on
// separate goroutines. The grid must be sealed for the whole pass.
func (c *Caster) CastParallel(ctx context.Context, pose components.PoseComponent, grid Grid, screenWidth, workers int) ([]Hit, error) {
	if !grid.Sealed() {
		return nil, ErrGridNotSealed
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	hits := make([]Hit, max(screenWidth, 0))
	if len(hits) == 0 {
		return hits, nil
	}
	band := (len(hits) + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)
	for start := 0; start < len(hits); start += band {
		end := min(start+band, len(hits))
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				hits[i] = c.castColumn(pose, grid, i, screenWidth)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return hits, nil
}

func (c *Caster) castColumn(pose components.PoseComponent, grid Grid, column, screenWidth int) Hit {
	hit := c.CastRay(pose.X, pose.Y, c.RayAngle(pose.Heading, column, screenWidth), grid)
	hit.Column = column
	return hit
}

// CastRay walks a single ray from (x, y) at angle until it meets a non-empty
// cell, leaves the grid or runs out of range.
func (c *Caster) CastRay(x, y, angle float64, grid Grid) Hit {
	step := c.Step
	if step <= 0 {
		step = DefaultStep
	}
	dx, dy := math.Cos(angle), math.Sin(angle)
	width, height := float64(grid.Width()), float64(grid.Height())

	miss := Hit{
		Distance: c.MaxDistance,
		Color:    components.Background,
		CellID:   components.CellEmpty,
		X:        x,
		Y:        y,
	}

	for k := 0; ; k++ {
		d := float64(k) * step
		if d >= c.MaxDistance {
			return miss
		}

		sx, sy := x+d*dx, y+d*dy
		// Samples are checked before conversion so negative positions never
		// truncate onto row or column 0.
		if sx < 0 || sy < 0 || sx >= width || sy >= height {
			return miss
		}

		id, err := grid.CellAt(int(sx), int(sy))
		if err != nil {
			return miss
		}
		if id != components.CellEmpty {
			col, err := grid.ColorFor(id)
			if err != nil {
				panic(err)
			}
			return Hit{
				Distance: d,
				Color:    col,
				CellID:   id,
				Hit:      true,
				X:        sx,
				Y:        sy,
			}
		}
		miss.X, miss.Y = sx, sy
	}
}

// ProjectedHalfHeight converts a hit distance into half the height of the
// wall slice, k/distance. Distances under Epsilon are clamped and the result
// is never negative.
func ProjectedHalfHeight(distance, k float64) float64 {
	h := k / math.Max(distance, Epsilon)
	if h < 0 || math.IsNaN(h) {
		return 0
	}
	return h
}
