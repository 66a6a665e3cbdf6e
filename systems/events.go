package systems

import (
	"retro3d/components"
	"retro3d/ecs"
)

// Event types
const (
	EventViewerMoved ecs.EventType = "viewer_moved"
)

// ViewerMovedEvent is emitted after a command changes the viewer pose
type ViewerMovedEvent struct {
	EntityID ecs.EntityID
	Command  components.Command
	Pose     components.PoseComponent
}

// Type implements ecs.Event
func (e ViewerMovedEvent) Type() ecs.EventType {
	return EventViewerMoved
}
