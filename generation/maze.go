package generation

import (
	"fmt"

	"retro3d/components"
)

// DefaultMaxDepth caps how many times a region may be split
const DefaultMaxDepth = 4

// MazeStats summarizes one generation run
type MazeStats struct {
	Regions      int // Regions visited, leaves included
	Splits       int // Wall lines painted
	DeepestLevel int // Largest depth reached
}

// MazeGenerator carves walls into a map by recursive binary space partitioning
type MazeGenerator struct {
	rng        RandomSource
	maxDepth   int
	logMessage func(string) // Function for logging messages
}

// NewMazeGenerator creates a maze generator drawing from rng
func NewMazeGenerator(rng RandomSource) *MazeGenerator {
	return &MazeGenerator{
		rng:        rng,
		maxDepth:   DefaultMaxDepth,
		logMessage: func(string) {},
	}
}

// SetMaxDepth changes the recursion cap. Values below zero are ignored.
func (g *MazeGenerator) SetMaxDepth(depth int) {
	if depth >= 0 {
		g.maxDepth = depth
	}
}

// SetLogger routes per-region debug lines to logFunc
func (g *MazeGenerator) SetLogger(logFunc func(string)) {
	if logFunc == nil {
		logFunc = func(string) {}
	}
	g.logMessage = logFunc
}

// Generate partitions the region (x, y, width, height) of mapComp
func (g *MazeGenerator) Generate(mapComp *components.MapComponent, x, y, width, height int) (MazeStats, error) {
	var stats MazeStats

	if width > 0 && height > 0 {
		if !mapComp.InBounds(x, y) || !mapComp.InBounds(x+width-1, y+height-1) {
			return stats, fmt.Errorf("%w: region (%d, %d) %dx%d", components.ErrOutOfBounds, x, y, width, height)
		}
	}

	err := g.divide(mapComp, &stats, x, y, width, height, 0)
	return stats, err
}

// divide splits one region along its longer side and recurses into both halves
func (g *MazeGenerator) divide(mapComp *components.MapComponent, stats *MazeStats, x, y, width, height, depth int) error {
	stats.Regions++
	if depth > stats.DeepestLevel {
		stats.DeepestLevel = depth
	}
	g.logMessage(fmt.Sprintf("Building maze with x: %d, y: %d, width: %d, height: %d", x, y, width, height))

	if width <= 3 || height <= 3 || depth >= g.maxDepth {
		return nil
	}

	if width > height {
		lo, hi := x+2, x+width-2
		if lo >= hi {
			return nil
		}
		split := clamp(g.rng.IntRange(lo, hi), lo, hi-1)

		id, err := mapComp.AssignNewColor(g.rng)
		if err != nil {
			return err
		}
		for row := y; row < y+height; row++ {
			if err := mapComp.SetCell(split, row, id); err != nil {
				return err
			}
		}
		stats.Splits++
		g.logMessage(fmt.Sprintf("Splitting vertical at x: %d with id %d", split, id))

		if err := g.divide(mapComp, stats, x, y, split-x, height, depth+1); err != nil {
			return err
		}
		return g.divide(mapComp, stats, split+1, y, x+width-split-1, height, depth+1)
	}

	lo, hi := y+2, y+height-2
	if lo >= hi {
		return nil
	}
	split := clamp(g.rng.IntRange(lo, hi), lo, hi-1)

	id, err := mapComp.AssignNewColor(g.rng)
	if err != nil {
		return err
	}
	for col := x; col < x+width; col++ {
		if err := mapComp.SetCell(col, split, id); err != nil {
			return err
		}
	}
	stats.Splits++
	g.logMessage(fmt.Sprintf("Splitting horizontal at y: %d with id %d", split, id))

	if err := g.divide(mapComp, stats, x, y, width, split-y, depth+1); err != nil {
		return err
	}
	return g.divide(mapComp, stats, x, split+1, width, y+height-split-1, depth+1)
}

// NewWalledMaze builds a bordered map, fills its interior with a maze and
// seals it for rendering.
func (g *MazeGenerator) NewWalledMaze(width, height int) (*components.MapComponent, BorderIDs, error) {
	mapComp, ids, err := NewBorderedMap(width, height, g.rng)
	if err != nil {
		return nil, ids, err
	}

	stats, err := g.Generate(mapComp, 1, 1, width-2, height-2)
	if err != nil {
		return nil, ids, err
	}
	g.logMessage(fmt.Sprintf("Maze done: %d regions, %d walls, depth %d", stats.Regions, stats.Splits, stats.DeepestLevel))

	if err := mapComp.CheckPalette(); err != nil {
		panic(err)
	}
	mapComp.Seal()

	return mapComp, ids, nil
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
