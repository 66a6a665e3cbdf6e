// Package scene assembles the world every run mode draws: a sealed maze,
// the viewer entity and a frame renderer sized for the screen.
package scene

import (
	"fmt"

	"retro3d/components"
	"retro3d/config"
	"retro3d/ecs"
	"retro3d/generation"
	"retro3d/raycast"
	"retro3d/render"
)

// Scene is everything needed to cast and draw one frame
type Scene struct {
	World    *ecs.World
	Map      *components.MapComponent
	Borders  generation.BorderIDs
	ViewerID ecs.EntityID
	Caster   *raycast.Caster
	Frame    *render.FrameRenderer
}

// Build generates the maze described by settings and places the viewer at
// the map center. logMessage receives generation progress.
func Build(settings *config.Settings, logMessage func(string)) (*Scene, error) {
	rng := generation.NewRandSource()
	if settings.Seed != 0 {
		rng.SetSeed(settings.Seed)
	}

	generator := generation.NewMazeGenerator(rng)
	generator.SetMaxDepth(settings.MaxDepth)
	generator.SetLogger(logMessage)

	return BuildWith(settings, generator)
}

// BuildWith is Build with the map coming from generator
func BuildWith(settings *config.Settings, generator generation.MapGenerator) (*Scene, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	mapComp, borders, err := generator.NewWalledMaze(settings.MapWidth, settings.MapHeight)
	if err != nil {
		return nil, fmt.Errorf("failed to generate maze: %w", err)
	}
	if !mapComp.Sealed() {
		mapComp.Seal()
	}

	world := ecs.NewWorld()

	mapEntity := world.CreateEntity()
	world.AddComponent(mapEntity.ID, components.MapComponentID, mapComp)
	world.TagEntity(mapEntity.ID, components.TagMap)

	viewer := world.CreateEntity()
	world.AddComponent(viewer.ID, components.Pose, StartPose(settings.MapWidth, settings.MapHeight))
	world.TagEntity(viewer.ID, components.TagViewer)

	caster := &raycast.Caster{
		FOV:         settings.FOV(),
		MaxDistance: settings.MaxDistance,
		Step:        settings.Step,
	}

	width, height := config.GetScreenDimensions()
	frame := render.NewFrameRenderer(mapComp, caster, render.SplitLayout(width, height), settings.Workers)

	return &Scene{
		World:    world,
		Map:      mapComp,
		Borders:  borders,
		ViewerID: viewer.ID,
		Caster:   caster,
		Frame:    frame,
	}, nil
}

// StartPose places the viewer at the center of a width by height map,
// facing east. The 16x16 map starts at (8, 8).
func StartPose(width, height int) *components.PoseComponent {
	if width == config.MapWidth && height == config.MapHeight {
		return components.NewPoseComponent(config.StartX, config.StartY, config.StartHeading)
	}
	return components.NewPoseComponent(float64(width)/2, float64(height)/2, config.StartHeading)
}

// Viewer returns the live viewer pose
func (s *Scene) Viewer() *components.PoseComponent {
	comp, ok := s.World.GetComponent(s.ViewerID, components.Pose)
	if !ok {
		panic("scene: viewer entity lost its pose")
	}
	return comp.(*components.PoseComponent)
}
