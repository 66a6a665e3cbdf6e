package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultSettingsAreValid(t *testing.T) {
	s := DefaultSettings()
	require.NoError(t, s.Validate())

	assert.Equal(t, ModeWindow, s.Mode)
	assert.Equal(t, 16, s.MapWidth)
	assert.Equal(t, 16, s.MapHeight)
	assert.Equal(t, 4, s.MaxDepth)
	assert.InDelta(t, math.Pi/3, s.FOV(), 1e-12)
}

func TestLoadSettingsKeepsDefaultsForMissingFields(t *testing.T) {
	path := writeSettings(t, "retro3d.json", `{"seed": 99, "map_width": 24}`)

	s, err := LoadSettings(path)
	require.NoError(t, err)

	assert.Equal(t, int64(99), s.Seed)
	assert.Equal(t, 24, s.MapWidth)
	assert.Equal(t, 16, s.MapHeight)
	assert.Equal(t, 0.01, s.Step)
}

func TestLoadSettingsErrors(t *testing.T) {
	tests := []struct {
		name string
		file string
		body string
	}{
		{"wrong extension", "retro3d.yaml", `{}`},
		{"bad json", "retro3d.json", `{"seed":`},
		{"invalid value", "retro3d.json", `{"map_width": 2}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSettings(writeSettings(t, tt.file, tt.body))
			assert.Error(t, err)
		})
	}

	_, err := LoadSettings(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseFlagsPrecedence(t *testing.T) {
	path := writeSettings(t, "retro3d.json", `{"seed": 5, "map_width": 20, "mode": "terminal"}`)

	s, err := ParseFlags([]string{"-config", path, "-seed", "11", "-workers", "4"})
	require.NoError(t, err)

	assert.Equal(t, int64(11), s.Seed, "flag beats file")
	assert.Equal(t, 20, s.MapWidth, "file beats default")
	assert.Equal(t, ModeTerminal, s.Mode)
	assert.Equal(t, 4, s.Workers)
	assert.Equal(t, 16, s.MapHeight)
}

func TestParseFlagsWithoutConfig(t *testing.T) {
	s, err := ParseFlags([]string{"-mode", "depth-plot", "-out", "profile.png", "-fov", "90"})
	require.NoError(t, err)

	assert.Equal(t, ModeDepthPlot, s.Mode)
	assert.Equal(t, "profile.png", s.PlotPath)
	assert.InDelta(t, math.Pi/2, s.FOV(), 1e-12)
}

func TestParseFlagsRejectsBadInput(t *testing.T) {
	for _, args := range [][]string{
		{"-mode", "vr"},
		{"-map-width", "3"},
		{"-step", "0"},
		{"-fov", "360"},
		{"-workers", "-1"},
		{"-no-such-flag"},
	} {
		_, err := ParseFlags(args)
		assert.Error(t, err, "args %v", args)
	}
}
