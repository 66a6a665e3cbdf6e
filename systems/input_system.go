package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"retro3d/components"
	"retro3d/ecs"
)

// Held keys repeat their command after repeatDelay ticks, then every
// repeatInterval ticks.
const (
	repeatDelay    = 15
	repeatInterval = 3
)

// InputSystem turns key presses into viewer commands
type InputSystem struct {
	// Map of keys to viewer commands
	commandKeys map[ebiten.Key]components.Command
	// Fixed order so that simultaneous keys apply deterministically
	order []ebiten.Key
}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	system := &InputSystem{
		commandKeys: make(map[ebiten.Key]components.Command),
	}

	system.bind(ebiten.KeyArrowLeft, components.CommandRotateLeft)
	system.bind(ebiten.KeyArrowRight, components.CommandRotateRight)
	system.bind(ebiten.KeyW, components.CommandMoveForward)
	system.bind(ebiten.KeyArrowUp, components.CommandMoveForward)
	system.bind(ebiten.KeyS, components.CommandMoveBackward)
	system.bind(ebiten.KeyArrowDown, components.CommandMoveBackward)

	return system
}

func (s *InputSystem) bind(key ebiten.Key, cmd components.Command) {
	s.commandKeys[key] = cmd
	s.order = append(s.order, key)
}

// Update applies this tick's commands to the viewer pose
func (s *InputSystem) Update(world *ecs.World, dt float64) {
	viewers := world.GetEntitiesWithTag(components.TagViewer)
	if len(viewers) == 0 {
		return
	}
	viewerID := viewers[0].ID

	comp, exists := world.GetComponent(viewerID, components.Pose)
	if !exists {
		return
	}
	pose := comp.(*components.PoseComponent)

	for _, key := range s.order {
		if !fires(inpututil.KeyPressDuration(key)) {
			continue
		}
		cmd := s.commandKeys[key]
		pose.Apply(cmd)
		world.EmitEvent(ViewerMovedEvent{EntityID: viewerID, Command: cmd, Pose: *pose})
	}
}

// fires reports whether a key held for ticks frames triggers its command
func fires(ticks int) bool {
	if ticks == 1 {
		return true
	}
	return ticks > repeatDelay && (ticks-repeatDelay)%repeatInterval == 0
}
