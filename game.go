package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"retro3d/config"
	"retro3d/ecs"
	"retro3d/scene"
	"retro3d/screens"
	"retro3d/systems"
)

// Game implements ebiten.Game interface.
type Game struct {
	scene        *scene.Scene
	renderSystem *systems.RenderSystem
	audioSystem  *systems.AudioSystem
	screenStack  *screens.ScreenStack
	started      bool
}

// NewGame creates a new game instance
func NewGame(settings *config.Settings) (*Game, error) {
	messageLog := systems.GetMessageLog()

	sc, err := scene.Build(settings, messageLog.Logger(systems.MessageTypeMaze))
	if err != nil {
		return nil, err
	}

	sc.Frame.SetLogger(messageLog.Logger(systems.MessageTypeAlert))

	inputSystem := systems.NewInputSystem()
	renderSystem := systems.NewRenderSystem(sc.Frame)

	// Register systems with the world that need to be updated during the game loop
	sc.World.AddSystem(inputSystem)

	sc.World.Events().Subscribe(systems.EventViewerMoved, func(event ecs.Event) {
		moved := event.(systems.ViewerMovedEvent)
		messageLog.Addf(systems.MessageTypeMovement, "%s -> x=%.2f y=%.2f heading=%.2f",
			moved.Command, moved.Pose.X, moved.Pose.Y, moved.Pose.Heading)
	})

	game := &Game{
		scene:        sc,
		renderSystem: renderSystem,
		screenStack:  screens.NewScreenStack(),
	}

	if settings.MusicPath != "" {
		game.audioSystem = systems.NewAudioSystem()
	}

	game.screenStack.Push(screens.NewStartScreen(game.audioSystem))

	messageLog.Addf(systems.MessageTypeSystem, "Map %dx%d ready, %d palette colors",
		sc.Map.Width(), sc.Map.Height(), sc.Map.PaletteSize())

	return game, nil
}

// Update runs one tick of the top screen
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	err := g.screenStack.Update()
	switch {
	case err == nil:
		return nil
	case errors.Is(err, screens.ErrStart):
		g.start()
		return nil
	case errors.Is(err, screens.ErrQuit):
		g.Close()
		return ebiten.Termination
	default:
		return err
	}
}

// start swaps the start screen for the game screen
func (g *Game) start() {
	if g.started {
		return
	}
	g.started = true

	g.screenStack.Pop()
	g.screenStack.Push(screens.NewGameScreen(g.scene.World, g.renderSystem, g.audioSystem))

	pose := g.scene.Viewer()
	systems.GetMessageLog().Addf(systems.MessageTypeSystem, "Viewer at x=%.2f y=%.2f heading=%.2f", pose.X, pose.Y, pose.Heading)
}

// PlayMusic starts the background track if music is enabled
func (g *Game) PlayMusic(path string) {
	if g.audioSystem == nil {
		return
	}
	if err := g.audioSystem.PlayBGM(path); err != nil {
		systems.GetMessageLog().AddTyped("Music disabled: "+err.Error(), systems.MessageTypeAlert)
	}
}

// Close releases audio resources
func (g *Game) Close() {
	if g.audioSystem != nil {
		g.audioSystem.Close()
	}
}

// Draw draws the screen stack
func (g *Game) Draw(screen *ebiten.Image) {
	g.screenStack.Draw(screen)
}

// Layout keeps the logical screen fixed; ebiten scales it to the window
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GetScreenDimensions()
}
