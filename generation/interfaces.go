package generation

import (
	"retro3d/components"
)

// MapGenerator builds the grid map the game renders.
// The game depends on this instead of MazeGenerator so tests can hand it fixed layouts.
type MapGenerator interface {
	NewWalledMaze(width, height int) (*components.MapComponent, BorderIDs, error)
}
