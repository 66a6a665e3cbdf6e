package systems

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"retro3d/components"
	"retro3d/ecs"
	"retro3d/raycast"
	"retro3d/render"
)

// RenderSystem draws the map and first-person view for the viewer entity
type RenderSystem struct {
	frame    *render.FrameRenderer
	lastHits []raycast.Hit
	ShowHUD  bool
}

// NewRenderSystem creates a new rendering system
func NewRenderSystem(frame *render.FrameRenderer) *RenderSystem {
	return &RenderSystem{
		frame:   frame,
		ShowHUD: true,
	}
}

// Draw renders one frame from the viewer's pose
func (s *RenderSystem) Draw(world *ecs.World, screen *ebiten.Image) {
	comp, ok := world.FindComponent(components.TagViewer, components.Pose)
	if !ok {
		GetMessageLog().AddTyped("Error: No viewer pose found", MessageTypeAlert)
		return
	}
	pose := comp.(*components.PoseComponent)

	s.lastHits = s.frame.RenderFrame(NewImageSurface(screen), *pose)

	if s.ShowHUD {
		s.drawHUD(screen, pose)
	}
}

// drawHUD prints frame rate and pose in the top-left corner of the view
func (s *RenderSystem) drawHUD(screen *ebiten.Image, pose *components.PoseComponent) {
	area := s.frame.Layout().World
	x, y := int(area.X)+4, int(area.Y)+4

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %0.1f  TPS: %0.1f", ebiten.ActualFPS(), ebiten.ActualTPS()), x, y)
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("x=%.2f y=%.2f heading=%.0f", pose.X, pose.Y, pose.Heading*180/math.Pi), x, y+16)

	if len(s.lastHits) > 0 {
		center := s.lastHits[len(s.lastHits)/2]
		if center.Hit {
			ebitenutil.DebugPrintAt(screen, fmt.Sprintf("center: cell %d at %.2f", center.CellID, center.Distance), x, y+32)
		} else {
			ebitenutil.DebugPrintAt(screen, "center: no hit", x, y+32)
		}
	}

	// Newest log line along the bottom of the view
	if recent := GetMessageLog().RecentMessages(1); len(recent) > 0 {
		ebitenutil.DebugPrintAt(screen, recent[0].Text, x, int(area.Y+area.H)-20)
	}
}
