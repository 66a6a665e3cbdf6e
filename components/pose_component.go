package components

import "math"

// Pose tuning, in radians and cells per command
const (
	RotateSpeed   = 0.1
	MovementSpeed = 0.1
)

// Command is a discrete pose update coming from the input layer
type Command int

const (
	CommandNone Command = iota
	CommandRotateLeft
	CommandRotateRight
	CommandMoveForward
	CommandMoveBackward
)

// String returns the command name used in debug messages
func (c Command) String() string {
	switch c {
	case CommandRotateLeft:
		return "rotate_left"
	case CommandRotateRight:
		return "rotate_right"
	case CommandMoveForward:
		return "move_forward"
	case CommandMoveBackward:
		return "move_backward"
	default:
		return "none"
	}
}

// PoseComponent is the viewer position in cell units and heading in radians.
// Movement is not constrained by walls.
type PoseComponent struct {
	X, Y    float64
	Heading float64
}

// NewPoseComponent creates a pose at (x, y) facing heading
func NewPoseComponent(x, y, heading float64) *PoseComponent {
	return &PoseComponent{X: x, Y: y, Heading: heading}
}

// Apply updates the pose for a single command
func (p *PoseComponent) Apply(cmd Command) {
	switch cmd {
	case CommandRotateLeft:
		p.Rotate(-RotateSpeed)
	case CommandRotateRight:
		p.Rotate(RotateSpeed)
	case CommandMoveForward:
		p.Move(MovementSpeed)
	case CommandMoveBackward:
		p.Move(-MovementSpeed)
	}
}

// Rotate turns the viewer and wraps the heading into [0, 2π)
func (p *PoseComponent) Rotate(delta float64) {
	p.Heading = math.Mod(p.Heading+delta, 2*math.Pi)
	if p.Heading < 0 {
		p.Heading += 2 * math.Pi
	}
	// A tiny negative remainder rounds up to 2π
	if p.Heading >= 2*math.Pi {
		p.Heading = 0
	}
}

// Move steps the viewer along the current heading
func (p *PoseComponent) Move(distance float64) {
	p.X += math.Cos(p.Heading) * distance
	p.Y += math.Sin(p.Heading) * distance
}
