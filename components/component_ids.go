package components

import (
	"retro3d/ecs"
)

// Define component IDs for our game
const (
	Pose ecs.ComponentID = iota
	MapComponentID
)

// Entity tags
const (
	TagViewer = "viewer"
	TagMap    = "map"
)
