package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"retro3d/systems"
)

// StartScreen shows the title and the controls
type StartScreen struct {
	titleColor  color.Color
	optionColor color.Color
	background  color.Color
	lines       []string
	audioSystem *systems.AudioSystem
	text        textPainter
}

// NewStartScreen creates a new start screen. audioSystem is nil when music
// is disabled.
func NewStartScreen(audioSystem *systems.AudioSystem) *StartScreen {
	return &StartScreen{
		titleColor:  color.RGBA{255, 230, 150, 255}, // Gold
		optionColor: color.RGBA{200, 200, 200, 255}, // Light Gray
		background:  color.RGBA{20, 20, 30, 255},
		lines: []string{
			"Left / Right   rotate",
			"W / Up         move forward",
			"S / Down       move backward",
			"F1             message log",
			"F2             toggle HUD",
			"M              mute music",
			"F11            toggle fullscreen",
			"",
			"ENTER to start, ESC to quit",
		},
		audioSystem: audioSystem,
	}
}

// Update handles input for the start screen
func (s *StartScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return ErrStart
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ErrQuit
	}
	return nil
}

// Draw renders the start screen
func (s *StartScreen) Draw(screen *ebiten.Image) {
	screen.Fill(s.background)

	bounds := screen.Bounds()
	centerX := bounds.Dx() / 2
	centerY := bounds.Dy() / 2

	title := "RETRO 3D"
	s.text.draw(screen, title, centerX-len(title)*glyphWidth/2, centerY-100, s.titleColor)
	vector.StrokeLine(screen, float32(centerX-80), float32(centerY-78), float32(centerX+80), float32(centerY-78), 1, s.titleColor, false)

	startY := centerY - 50
	for i, line := range s.lines {
		s.text.draw(screen, line, centerX-90, startY+i*lineHeight, s.optionColor)
	}

	music := "Music: off"
	if s.audioSystem.IsBGMPlaying() {
		music = "Music: playing"
	}
	s.text.draw(screen, music, centerX-90, startY+(len(s.lines)+1)*lineHeight, s.optionColor)
}
