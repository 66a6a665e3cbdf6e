package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"retro3d/systems"
)

// DebugScreen shows the message log in a modal window
type DebugScreen struct {
	log          *systems.MessageLog
	scrollOffset int
	width        int
	height       int
	background   color.Color
	textColor    color.Color
	text         textPainter
}

// NewDebugScreen creates a new debug screen over log
func NewDebugScreen(log *systems.MessageLog) *DebugScreen {
	return &DebugScreen{
		log:        log,
		width:      600,
		height:     400,
		background: color.RGBA{0, 0, 0, 230},
		textColor:  color.White,
	}
}

// Update handles input for the debug screen
func (s *DebugScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) && s.scrollOffset > 0 {
		s.scrollOffset--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) && s.scrollOffset < len(s.log.Snapshot())-1 {
		s.scrollOffset++
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		s.log.Clear()
		s.scrollOffset = 0
	}

	// ESC or F1 closes the window
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		return ErrCloseScreen
	}
	return nil
}

// Draw renders the debug screen
func (s *DebugScreen) Draw(screen *ebiten.Image) {
	bounds := screen.Bounds()
	x := (bounds.Dx() - s.width) / 2
	y := (bounds.Dy() - s.height) / 2
	fx, fy, fw, fh := float32(x), float32(y), float32(s.width), float32(s.height)

	vector.DrawFilledRect(screen, fx, fy, fw, fh, s.background, false)
	vector.StrokeRect(screen, fx, fy, fw, fh, 2, color.White, false)

	title := "MESSAGE LOG"
	s.text.draw(screen, title, x+(s.width-len(title)*glyphWidth)/2, y+6, s.textColor)

	messages := s.log.Snapshot()
	startY := 30
	maxLines := (s.height - startY - 24) / lineHeight

	// Calculate visible range
	startIdx := s.scrollOffset
	if startIdx > len(messages)-maxLines {
		startIdx = max(len(messages)-maxLines, 0)
	}

	for i := 0; i < maxLines && startIdx+i < len(messages); i++ {
		msg := messages[startIdx+i]
		s.text.draw(screen, msg.Text, x+10, y+startY+i*lineHeight, msg.GetColor())
	}

	// Scroll indicator
	if len(messages) > maxLines {
		track := float32(s.height - startY - 24)
		barHeight := float32(maxLines) / float32(len(messages)) * track
		barY := float32(y+startY) + float32(startIdx)/float32(len(messages))*track
		vector.DrawFilledRect(screen, fx+fw-10, barY, 5, barHeight, color.White, false)
	}

	s.text.draw(screen, "Up/Down: Scroll  C: Clear  ESC: Close", x+10, y+s.height-20, s.textColor)
}
