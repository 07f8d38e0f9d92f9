package constants

import "time"

// Frame Cadence
const (
	// DefaultFPS is the frame rate used when the host does not override it
	DefaultFPS = 60

	// FrameUpdateInterval is the default frame interval (~60 FPS)
	FrameUpdateInterval = time.Second / DefaultFPS

	// MaxFPS bounds host-provided frame rates
	MaxFPS = 240
)

// Input
const (
	// KeyHoldWindow is how long a key counts as held after its last press on
	// hosts that only report key presses (terminals)
	KeyHoldWindow = 150 * time.Millisecond
)

// Surface
const (
	// MinSurfaceSize is the smallest width/height used for entity placement
	MinSurfaceSize = 1
)
