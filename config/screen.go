package config

// Screen layout configuration
const (
	// Window dimensions in pixels. The left half shows the map from above,
	// the right half the first-person view.
	ScreenWidth  = 1024
	ScreenHeight = 512

	// Map dimensions in cells
	MapWidth  = 16
	MapHeight = 16

	// Viewer start pose
	StartX       = 8.0
	StartY       = 8.0
	StartHeading = 0.0

	// Terminal mode draws the same logical screen onto a character grid
	TerminalFrameMillis = 33
)

// GetScreenDimensions returns the screen dimensions in pixels
func GetScreenDimensions() (width, height int) {
	return ScreenWidth, ScreenHeight
}

// GetWindowSize returns the recommended window size (may be different from actual screen dimensions)
func GetWindowSize() (width, height int) {
	return ScreenWidth, ScreenHeight
}
