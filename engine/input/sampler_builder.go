package input

// SamplerBuilderOption is a functional option for configuring a Sampler.
type SamplerBuilderOption func(*sampler)

// WithPitchBounds sets the minimum and maximum look pitch in degrees.
//
// Parameters:
//   - min: minimum pitch (looking up)
//   - max: maximum pitch (looking down)
//
// Returns:
//   - SamplerBuilderOption: functional option to set pitch bounds
func WithPitchBounds(min, max float32) SamplerBuilderOption {
	return func(s *sampler) {
		s.minPitch = min
		s.maxPitch = max
	}
}

// WithMouseSensitivity sets the look sensitivity for mouse deltas in
// degrees per pixel.
//
// Parameters:
//   - sensitivity: degrees of look rotation per pixel of cursor movement
//
// Returns:
//   - SamplerBuilderOption: functional option to set mouse sensitivity
func WithMouseSensitivity(sensitivity float32) SamplerBuilderOption {
	return func(s *sampler) {
		s.mouseSensitivity = sensitivity
	}
}

// WithTouchSensitivity sets the look sensitivity for single-touch drags in
// degrees per pixel.
//
// Parameters:
//   - sensitivity: degrees of look rotation per pixel of touch movement
//
// Returns:
//   - SamplerBuilderOption: functional option to set touch sensitivity
func WithTouchSensitivity(sensitivity float32) SamplerBuilderOption {
	return func(s *sampler) {
		s.touchSensitivity = sensitivity
	}
}

// WithJoystickThreshold sets the axis magnitude above which joystick input
// registers as a held movement control.
//
// Parameters:
//   - threshold: the dead-zone threshold in [0, 1]
//
// Returns:
//   - SamplerBuilderOption: functional option to set the threshold
func WithJoystickThreshold(threshold float32) SamplerBuilderOption {
	return func(s *sampler) {
		s.joystickThreshold = threshold
	}
}

// WithPinchScale sets the zoom units produced per pixel of finger
// separation change during a pinch gesture.
//
// Parameters:
//   - scale: zoom units per pixel of separation change
//
// Returns:
//   - SamplerBuilderOption: functional option to set the pinch scale
func WithPinchScale(scale float32) SamplerBuilderOption {
	return func(s *sampler) {
		s.pinchScale = scale
	}
}
