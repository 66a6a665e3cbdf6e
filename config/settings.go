package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
)

// Run modes
const (
	ModeWindow    = "window"
	ModeTerminal  = "terminal"
	ModeDepthPlot = "depth-plot"
)

// Settings holds the runtime options. Zero Seed means a clock seed.
type Settings struct {
	Mode        string  `json:"mode"`
	Seed        int64   `json:"seed"`
	MapWidth    int     `json:"map_width"`
	MapHeight   int     `json:"map_height"`
	MaxDepth    int     `json:"max_depth"`
	FOVDegrees  float64 `json:"fov_degrees"`
	MaxDistance float64 `json:"max_distance"`
	Step        float64 `json:"step"`
	Workers     int     `json:"workers"`
	MusicPath   string  `json:"music_path,omitempty"`
	PlotPath    string  `json:"plot_path,omitempty"`
	Fullscreen  bool    `json:"fullscreen"`
}

// DefaultSettings returns the classic 16x16 setup
func DefaultSettings() *Settings {
	return &Settings{
		Mode:        ModeWindow,
		MapWidth:    MapWidth,
		MapHeight:   MapHeight,
		MaxDepth:    4,
		FOVDegrees:  60,
		MaxDistance: 20,
		Step:        0.01,
		Workers:     1,
		PlotPath:    "depth.png",
	}
}

// LoadSettings reads a JSON settings file on top of the defaults.
// Fields missing from the file keep their default values.
func LoadSettings(path string) (*Settings, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("settings file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat settings file: %w", err)
	}
	const maxFileSize = 64 * 1024
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("settings file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	s := DefaultSettings()
	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse settings JSON: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return s, nil
}

// ParseFlags builds the settings from the defaults, an optional -config
// file and then the remaining flags, in that order of precedence.
func ParseFlags(args []string) (*Settings, error) {
	var configPath string

	pre := flag.NewFlagSet("retro3d", flag.ContinueOnError)
	pre.SetOutput(io.Discard)
	pre.StringVar(&configPath, "config", "", "")
	bindFlags(pre, DefaultSettings())
	err := pre.Parse(args)
	if err != nil && !errors.Is(err, flag.ErrHelp) {
		return nil, err
	}

	s := DefaultSettings()
	if configPath != "" && err == nil {
		loaded, err := LoadSettings(configPath)
		if err != nil {
			return nil, err
		}
		s = loaded
	}

	fs := flag.NewFlagSet("retro3d", flag.ContinueOnError)
	fs.StringVar(&configPath, "config", configPath, "JSON settings file")
	bindFlags(fs, s)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func bindFlags(fs *flag.FlagSet, s *Settings) {
	fs.StringVar(&s.Mode, "mode", s.Mode, "run mode: window, terminal or depth-plot")
	fs.Int64Var(&s.Seed, "seed", s.Seed, "maze seed, 0 for a random maze")
	fs.IntVar(&s.MapWidth, "map-width", s.MapWidth, "map width in cells")
	fs.IntVar(&s.MapHeight, "map-height", s.MapHeight, "map height in cells")
	fs.IntVar(&s.MaxDepth, "max-depth", s.MaxDepth, "maze recursion depth")
	fs.Float64Var(&s.FOVDegrees, "fov", s.FOVDegrees, "field of view in degrees")
	fs.Float64Var(&s.MaxDistance, "max-distance", s.MaxDistance, "ray range in cells")
	fs.Float64Var(&s.Step, "step", s.Step, "ray march step in cells")
	fs.IntVar(&s.Workers, "workers", s.Workers, "goroutines casting rays, 0 for one per CPU")
	fs.StringVar(&s.MusicPath, "music", s.MusicPath, "background music file (.mp3 or .ogg)")
	fs.StringVar(&s.PlotPath, "out", s.PlotPath, "output path for depth-plot mode")
	fs.BoolVar(&s.Fullscreen, "fullscreen", s.Fullscreen, "start in fullscreen")
}

// Validate rejects settings the renderer cannot run with
func (s *Settings) Validate() error {
	switch s.Mode {
	case ModeWindow, ModeTerminal, ModeDepthPlot:
	default:
		return fmt.Errorf("unknown mode %q", s.Mode)
	}
	if s.MapWidth < 4 || s.MapHeight < 4 {
		return fmt.Errorf("map must be at least 4x4, got %dx%d", s.MapWidth, s.MapHeight)
	}
	if s.MaxDepth < 0 {
		return fmt.Errorf("max_depth must be non-negative, got %d", s.MaxDepth)
	}
	if s.FOVDegrees <= 0 || s.FOVDegrees >= 360 {
		return fmt.Errorf("fov_degrees must be in (0, 360), got %f", s.FOVDegrees)
	}
	if s.MaxDistance <= 0 {
		return fmt.Errorf("max_distance must be positive, got %f", s.MaxDistance)
	}
	if s.Step <= 0 || s.Step > s.MaxDistance {
		return fmt.Errorf("step must be in (0, max_distance], got %f", s.Step)
	}
	if s.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", s.Workers)
	}
	if s.Mode == ModeDepthPlot && s.PlotPath == "" {
		return fmt.Errorf("depth-plot mode needs an output path")
	}
	return nil
}

// FOV returns the field of view in radians
func (s *Settings) FOV() float64 {
	return s.FOVDegrees * math.Pi / 180
}
