package input

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-playground/common"
)

// touchPoint tracks one active touch sequence between samples.
type touchPoint struct {
	x, y float32
	// sampledX, sampledY are the coordinates at the previous Sample call,
	// used for per-tick gesture deltas.
	sampledX, sampledY float32
	// overUI marks touches that began on UI controls; those never
	// participate in the pinch-zoom gesture.
	overUI bool
}

// sampler implements the Sampler interface.
// Event methods are called from platform callbacks (GLFW main thread or the
// mobile event loop); Sample runs on the simulation goroutine, so all state
// is mutex-guarded.
type sampler struct {
	mu sync.Mutex

	held    map[uint32]bool
	pressed map[uint32]bool

	yaw, pitch         float32
	minPitch, maxPitch float32
	mouseSensitivity   float32
	touchSensitivity   float32

	lastMouseX, lastMouseY int32
	mouseSeen              bool

	scrollDelta float32

	joyX, joyY        float32
	gyroX, gyroY      float32
	gyroEnabled       bool
	joystickThreshold float32

	touches    map[int64]*touchPoint
	pinchScale float32
}

// Sampler merges keyboard, touch, and joystick (screen joystick or
// gyroscope-emulated) input into a per-tick State. The control bitmask and
// deltas are cleared and rebuilt on every Sample; the only state carried
// across ticks is the held-key set, the look accumulators, and press-edge
// events pending their one-shot report.
type Sampler interface {
	// KeyDown records a key press.
	//
	// Parameters:
	//   - keyCode: the virtual key code (common package constants)
	KeyDown(keyCode uint32)

	// KeyUp records a key release.
	//
	// Parameters:
	//   - keyCode: the virtual key code
	KeyUp(keyCode uint32)

	// MouseMove feeds a cursor position; deltas accumulate into the yaw and
	// pitch look values.
	//
	// Parameters:
	//   - x, y: cursor position in pixels
	MouseMove(x, y int32)

	// Scroll feeds a scroll wheel delta; positive zooms in.
	//
	// Parameters:
	//   - delta: the scroll amount
	Scroll(delta float32)

	// TouchBegin records the start of a touch sequence.
	//
	// Parameters:
	//   - id: the platform touch sequence identifier
	//   - x, y: touch position in pixels
	//   - overUI: true if the touch began on a UI control
	TouchBegin(id int64, x, y float32, overUI bool)

	// TouchMove updates an active touch sequence's position.
	//
	// Parameters:
	//   - id: the platform touch sequence identifier
	//   - x, y: touch position in pixels
	TouchMove(id int64, x, y float32)

	// TouchEnd ends a touch sequence.
	//
	// Parameters:
	//   - id: the platform touch sequence identifier
	TouchEnd(id int64)

	// SetJoystickAxes feeds the screen joystick axes in [-1, 1].
	// X maps to strafe, Y to forward/back.
	//
	// Parameters:
	//   - x, y: the joystick axes
	SetJoystickAxes(x, y float32)

	// SetGyroAxes feeds the gyroscope axes emulated as a joystick in [-1, 1].
	// Only consumed while gyroscope input is enabled.
	//
	// Parameters:
	//   - x, y: the gyroscope axes
	SetGyroAxes(x, y float32)

	// GyroEnabled reports whether gyroscope input currently replaces the
	// screen joystick. Toggled by the G key press edge.
	//
	// Returns:
	//   - bool: true if gyroscope input is enabled
	GyroEnabled() bool

	// Sample produces the merged input snapshot for the current tick and
	// clears all per-tick state (scroll, pinch, press edges).
	//
	// Returns:
	//   - State: the merged snapshot
	Sample() State

	// Reset clears all input state, including held keys and look
	// accumulators. Used when the hosting page disappears.
	Reset()
}

var _ Sampler = &sampler{}

// NewSampler creates a new Sampler configured with the given options.
// Defaults: pitch bounds [-80, 80] degrees, mouse sensitivity 0.1 deg/px,
// joystick threshold 0.5.
//
// Parameters:
//   - options: functional options to configure the sampler
//
// Returns:
//   - Sampler: the newly created sampler
func NewSampler(options ...SamplerBuilderOption) Sampler {
	s := &sampler{
		held:              make(map[uint32]bool),
		pressed:           make(map[uint32]bool),
		touches:           make(map[int64]*touchPoint),
		minPitch:          -80,
		maxPitch:          80,
		mouseSensitivity:  0.1,
		touchSensitivity:  0.2,
		joystickThreshold: 0.5,
		pinchScale:        0.01,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *sampler) KeyDown(keyCode uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.held[keyCode] {
		s.pressed[keyCode] = true
	}
	s.held[keyCode] = true
}

func (s *sampler) KeyUp(keyCode uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.held, keyCode)
}

func (s *sampler) MouseMove(x, y int32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mouseSeen {
		dx := float32(x - s.lastMouseX)
		dy := float32(y - s.lastMouseY)
		s.yaw += dx * s.mouseSensitivity
		s.pitch = clamp(s.pitch+dy*s.mouseSensitivity, s.minPitch, s.maxPitch)
	}
	s.lastMouseX, s.lastMouseY = x, y
	s.mouseSeen = true
}

func (s *sampler) Scroll(delta float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scrollDelta += delta
}

func (s *sampler) TouchBegin(id int64, x, y float32, overUI bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touches[id] = &touchPoint{x: x, y: y, sampledX: x, sampledY: y, overUI: overUI}
}

func (s *sampler) TouchMove(id int64, x, y float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.touches[id]; ok {
		t.x, t.y = x, y
	}
}

func (s *sampler) TouchEnd(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.touches, id)
}

func (s *sampler) SetJoystickAxes(x, y float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.joyX, s.joyY = x, y
}

func (s *sampler) SetGyroAxes(x, y float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gyroX, s.gyroY = x, y
}

func (s *sampler) GyroEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gyroEnabled
}

func (s *sampler) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.held = make(map[uint32]bool)
	s.pressed = make(map[uint32]bool)
	s.touches = make(map[int64]*touchPoint)
	s.yaw, s.pitch = 0, 0
	s.scrollDelta = 0
	s.joyX, s.joyY = 0, 0
	s.gyroX, s.gyroY = 0, 0
	s.mouseSeen = false
}

func (s *sampler) Sample() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := State{ScreenshotDigit: -1}

	// Held movement keys.
	if s.held[common.KeyW] {
		st.Controls |= ControlForward
	}
	if s.held[common.KeyS] {
		st.Controls |= ControlBack
	}
	if s.held[common.KeyA] {
		st.Controls |= ControlLeft
	}
	if s.held[common.KeyD] {
		st.Controls |= ControlRight
	}
	if s.held[common.KeySpace] {
		st.Controls |= ControlJump
	}

	// Joystick axes: gyroscope when enabled, screen joystick otherwise.
	jx, jy := s.joyX, s.joyY
	if s.gyroEnabled {
		jx, jy = s.gyroX, s.gyroY
	}
	if jy > s.joystickThreshold {
		st.Controls |= ControlForward
	}
	if jy < -s.joystickThreshold {
		st.Controls |= ControlBack
	}
	if jx < -s.joystickThreshold {
		st.Controls |= ControlLeft
	}
	if jx > s.joystickThreshold {
		st.Controls |= ControlRight
	}

	// Press-edge toggles, reported exactly once.
	if s.pressed[common.KeyF] {
		st.ViewToggled = true
	}
	if s.pressed[common.KeyG] {
		s.gyroEnabled = !s.gyroEnabled
		st.GyroToggled = true
	}
	if s.pressed[common.KeyF5] {
		st.SaveRequested = true
	}
	if s.pressed[common.KeyF7] {
		st.LoadRequested = true
	}
	for i, key := range []uint32{common.KeyF1, common.KeyF2, common.KeyF3, common.KeyF4} {
		if s.pressed[key] {
			st.QualityToggled = i + 1
		}
	}
	for digit := uint32(0); digit <= 9; digit++ {
		if s.pressed[common.Key0+digit] {
			st.ScreenshotDigit = int(digit)
		}
	}
	s.pressed = make(map[uint32]bool)

	s.sampleTouches(&st)

	st.ZoomDelta = s.scrollDelta
	s.scrollDelta = 0

	st.Yaw = s.yaw
	st.Pitch = s.pitch
	return st
}

// sampleTouches folds per-tick touch deltas into the state: a single free
// touch drags the look accumulators, two free touches with opposite vertical
// deltas form the pinch-zoom gesture. Sampled positions advance afterward so
// the next tick sees fresh deltas.
func (s *sampler) sampleTouches(st *State) {
	var free []*touchPoint
	for _, t := range s.touches {
		if !t.overUI {
			free = append(free, t)
		}
	}

	switch len(free) {
	case 1:
		t := free[0]
		dx := t.x - t.sampledX
		dy := t.y - t.sampledY
		s.yaw += dx * s.touchSensitivity
		s.pitch = clamp(s.pitch+dy*s.touchSensitivity, s.minPitch, s.maxPitch)
	case 2:
		a, b := free[0], free[1]
		dyA := a.y - a.sampledY
		dyB := b.y - b.sampledY
		// Opposite vertical deltas on empty space read as a pinch. The zoom
		// sign comes from whether the finger separation grew or shrank since
		// the previous sample.
		if dyA*dyB < 0 {
			sep := dist(a.x, a.y, b.x, b.y)
			prevSep := dist(a.sampledX, a.sampledY, b.sampledX, b.sampledY)
			st.ZoomDelta += (sep - prevSep) * s.pinchScale
		}
	}

	for _, t := range s.touches {
		t.sampledX, t.sampledY = t.x, t.y
	}
}

func clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func dist(x1, y1, x2, y2 float32) float32 {
	dx := float64(x2 - x1)
	dy := float64(y2 - y1)
	return float32(math.Sqrt(dx*dx + dy*dy))
}
