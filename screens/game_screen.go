package screens

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"retro3d/ecs"
	"retro3d/systems"
)

// GameScreen runs the world and draws the split view
type GameScreen struct {
	world        *ecs.World
	renderSystem *systems.RenderSystem
	audioSystem  *systems.AudioSystem
	screenStack  *ScreenStack
	savedVolume  float64
}

// NewGameScreen creates a new game screen. audioSystem is nil when music is
// disabled.
func NewGameScreen(world *ecs.World, renderSystem *systems.RenderSystem, audioSystem *systems.AudioSystem) *GameScreen {
	return &GameScreen{
		world:        world,
		renderSystem: renderSystem,
		audioSystem:  audioSystem,
		screenStack:  NewScreenStack(),
	}
}

// Update handles game updates
func (s *GameScreen) Update() error {
	// Toggle the message log with F1 when no modal is open
	if s.screenStack.Peek() == nil {
		if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
			s.screenStack.Push(NewDebugScreen(systems.GetMessageLog()))
			return nil
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
			s.renderSystem.ShowHUD = !s.renderSystem.ShowHUD
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyM) {
			s.toggleMute()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			return ErrQuit
		}
	}

	// Modal input first
	if err := s.screenStack.Update(); err != nil {
		if errors.Is(err, ErrCloseScreen) {
			s.screenStack.Pop()
			return nil
		}
		return err
	}

	// Only update the world if no modal is open
	if s.screenStack.Peek() == nil {
		s.world.Update(1.0 / 60.0)
	}
	return nil
}

// Draw renders the frame and any open modal
func (s *GameScreen) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(s.world, screen)
	s.screenStack.Draw(screen)
}

// toggleMute silences the music or restores the volume it had
func (s *GameScreen) toggleMute() {
	if s.audioSystem == nil {
		return
	}
	if volume := s.audioSystem.Volume(); volume > 0 {
		s.savedVolume = volume
		s.audioSystem.SetVolume(0)
		systems.GetMessageLog().AddTyped("Music muted", systems.MessageTypeSystem)
		return
	}
	s.audioSystem.SetVolume(s.savedVolume)
	systems.GetMessageLog().AddTyped("Music unmuted", systems.MessageTypeSystem)
}
