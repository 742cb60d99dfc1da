package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Layout sizing
const (
	WindowWidth  float32 = 960
	WindowHeight float32 = 820

	// 16:9 video surface
	SurfaceMinWidth  float32 = 640
	SurfaceMinHeight float32 = 360

	CaptionListMinHeight float32 = 300
	CaptionRowMinHeight  float32 = 56

	// Columns of the caption form / caption list grid on wide windows
	EditorColumns = 2
)

// Caption overlay styling
const (
	OverlayAlpha       uint8   = 178 // ~70% black backdrop
	OverlayBottomSpace float32 = 40
)

// Frame pool size for copying decoded frames onto the UI thread
const FramePoolSize = 3

// Numeric field formatting
const (
	TimeFieldStep = "0.1"
)
