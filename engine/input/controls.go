package input

// Control is a bitmask of movement controls held during a tick.
type Control uint8

// Movement control bits.
const (
	ControlForward Control = 1 << iota
	ControlBack
	ControlLeft
	ControlRight
	ControlJump
)

// Has reports whether every bit in mask is set.
func (c Control) Has(mask Control) bool {
	return c&mask == mask
}

// State is the merged input snapshot produced by a Sampler once per tick.
// The control bitmask and deltas are rebuilt every sample; toggle fields are
// press-edge events reported exactly once.
type State struct {
	// Controls is the bitmask of movement controls held this tick.
	Controls Control

	// Yaw is the accumulated look yaw in degrees (unbounded).
	Yaw float32

	// Pitch is the accumulated look pitch in degrees, clamped to the
	// sampler's pitch bounds.
	Pitch float32

	// ZoomDelta is the camera zoom change requested this tick, from scroll
	// wheel and pinch gestures. Positive zooms in.
	ZoomDelta float32

	// ViewToggled is true when the first/third-person toggle key was pressed.
	ViewToggled bool

	// GyroToggled is true when the gyroscope-input toggle key was pressed.
	GyroToggled bool

	// SaveRequested is true when the snapshot save key was pressed.
	SaveRequested bool

	// LoadRequested is true when the snapshot load key was pressed.
	LoadRequested bool

	// QualityToggled is the renderer-quality toggle index (1-4) when one of
	// the quality function keys was pressed, or 0.
	QualityToggled int

	// ScreenshotDigit is the number key (0-9) pressed for a debug screenshot
	// marker, or -1.
	ScreenshotDigit int
}
