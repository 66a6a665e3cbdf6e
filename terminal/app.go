package terminal

import (
	"context"
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"retro3d/components"
	"retro3d/config"
	"retro3d/scene"
)

// App runs the renderer in a terminal until the user quits
type App struct {
	screen     tcell.Screen
	scene      *scene.Scene
	frame      time.Duration
	logMessage func(string)
	status     string // Latest message, shown on the status line
}

// NewApp creates an app drawing sc on an initialized screen. Messages are
// shown on the status line and also passed to logMessage when it is set.
func NewApp(screen tcell.Screen, sc *scene.Scene, logMessage func(string)) *App {
	if logMessage == nil {
		logMessage = func(string) {}
	}
	a := &App{
		screen:     screen,
		scene:      sc,
		frame:      config.TerminalFrameMillis * time.Millisecond,
		logMessage: logMessage,
	}
	sc.Frame.SetLogger(a.report)
	return a
}

// report records msg for the status line
func (a *App) report(msg string) {
	a.status = msg
	a.logMessage(msg)
}

// Status returns the message currently on the status line
func (a *App) Status() string {
	return a.status
}

// CommandForKey maps a key event to a viewer command
func CommandForKey(ev *tcell.EventKey) components.Command {
	switch ev.Key() {
	case tcell.KeyLeft:
		return components.CommandRotateLeft
	case tcell.KeyRight:
		return components.CommandRotateRight
	case tcell.KeyUp:
		return components.CommandMoveForward
	case tcell.KeyDown:
		return components.CommandMoveBackward
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return components.CommandMoveForward
		case 's', 'S':
			return components.CommandMoveBackward
		}
	}
	return components.CommandNone
}

// isQuit reports whether ev asks to leave
func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// Handle applies one input event. It returns false when the app should stop.
func (a *App) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuit(ev) {
			return false
		}
		if cmd := CommandForKey(ev); cmd != components.CommandNone {
			pose := a.scene.Viewer()
			pose.Apply(cmd)
			a.report(fmt.Sprintf("%s -> x=%.2f y=%.2f heading=%.2f", cmd, pose.X, pose.Y, pose.Heading))
		}
	case *tcell.EventResize:
		a.screen.Sync()
	case nil:
		// Screen finalized
		return false
	}
	return true
}

// Draw renders the current frame and a status line
func (a *App) Draw() {
	width, height := config.GetScreenDimensions()
	surface := NewSurface(a.screen, width, height)

	pose := a.scene.Viewer()
	a.scene.Frame.RenderFrame(surface, *pose)

	_, rows := surface.Size()
	line := fmt.Sprintf(" x=%.2f y=%.2f heading=%.0f  q quits ", pose.X, pose.Y, pose.Heading*180/math.Pi)
	if a.status != "" {
		line += "| " + a.status + " "
	}
	surface.DrawText(0, rows-1, line, color.White, color.Black)

	a.screen.Show()
}

// Run draws a frame every tick and applies input between frames. It returns
// when the user quits or ctx is done.
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := a.screen.PollEvent()
			select {
			case events <- ev:
			case <-done:
				return
			}
			if ev == nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(a.frame)
	defer ticker.Stop()

	a.Draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !a.Handle(ev) {
				return nil
			}
		case <-ticker.C:
			a.Draw()
		}
	}
}
