package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"

	"retro3d/config"
	"retro3d/depthplot"
	"retro3d/scene"
	"retro3d/terminal"
)

func main() {
	settings, err := config.ParseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}

	switch settings.Mode {
	case config.ModeTerminal:
		err = runTerminal(settings)
	case config.ModeDepthPlot:
		err = runDepthPlot(settings)
	default:
		err = runWindow(settings)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func runWindow(settings *config.Settings) error {
	game, err := NewGame(settings)
	if err != nil {
		return err
	}
	defer game.Close()

	game.PlayMusic(settings.MusicPath)

	// Get window size from config
	windowWidth, windowHeight := config.GetWindowSize()
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(settings.Fullscreen)
	ebiten.SetWindowTitle("Retro 3D")

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func runTerminal(settings *config.Settings) error {
	sc, err := scene.Build(settings, nil)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init terminal screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return terminal.NewApp(screen, sc, nil).Run(ctx)
}

func runDepthPlot(settings *config.Settings) error {
	sc, err := scene.Build(settings, func(msg string) { log.Println(msg) })
	if err != nil {
		return err
	}

	sc.Frame.SetLogger(func(msg string) { log.Println(msg) })
	hits := sc.Frame.Cast(*sc.Viewer())
	title := fmt.Sprintf("Depth profile, seed %d, %dx%d", settings.Seed, settings.MapWidth, settings.MapHeight)
	summary, err := depthplot.Save(hits, title, settings.PlotPath)
	if err != nil {
		return err
	}

	log.Printf("Wrote %s: %d/%d columns hit, mean %.2f, nearest %.2f, farthest %.2f",
		settings.PlotPath, summary.Hits, summary.Columns, summary.Mean, summary.Nearest, summary.Farthest)
	return nil
}
