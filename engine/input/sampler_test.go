package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxy-playground/common"
)

func TestHeldKeysMapToControls(t *testing.T) {
	s := NewSampler()

	s.KeyDown(common.KeyW)
	s.KeyDown(common.KeyD)
	s.KeyDown(common.KeySpace)

	st := s.Sample()
	assert.True(t, st.Controls.Has(ControlForward))
	assert.True(t, st.Controls.Has(ControlRight))
	assert.True(t, st.Controls.Has(ControlJump))
	assert.False(t, st.Controls.Has(ControlBack))

	s.KeyUp(common.KeyW)
	st = s.Sample()
	assert.False(t, st.Controls.Has(ControlForward))
	assert.True(t, st.Controls.Has(ControlRight), "held keys persist across samples")
}

func TestPressEdgesReportOnce(t *testing.T) {
	s := NewSampler()

	s.KeyDown(common.KeyF)
	s.KeyDown(common.KeyF5)

	st := s.Sample()
	assert.True(t, st.ViewToggled)
	assert.True(t, st.SaveRequested)

	// Still held, but the edge was consumed.
	st = s.Sample()
	assert.False(t, st.ViewToggled)
	assert.False(t, st.SaveRequested)

	// Re-press after release reports again.
	s.KeyUp(common.KeyF)
	s.KeyDown(common.KeyF)
	st = s.Sample()
	assert.True(t, st.ViewToggled)
}

func TestQualityAndScreenshotKeys(t *testing.T) {
	s := NewSampler()

	st := s.Sample()
	assert.Zero(t, st.QualityToggled)
	assert.Equal(t, -1, st.ScreenshotDigit)

	s.KeyDown(common.KeyF2)
	s.KeyDown(common.Key0 + 3)
	st = s.Sample()
	assert.Equal(t, 2, st.QualityToggled)
	assert.Equal(t, 3, st.ScreenshotDigit)
}

func TestMouseLookAccumulatesAndClampsPitch(t *testing.T) {
	s := NewSampler()

	// First position only establishes the reference point.
	s.MouseMove(100, 100)
	s.MouseMove(110, 120)

	st := s.Sample()
	assert.InDelta(t, 1.0, float64(st.Yaw), 1e-4)
	assert.InDelta(t, 2.0, float64(st.Pitch), 1e-4)

	// Pitch saturates at the bounds no matter how far the cursor travels.
	for i := 0; i < 50; i++ {
		s.MouseMove(110, 120+int32(i+1)*100)
	}
	st = s.Sample()
	assert.Equal(t, float32(80), st.Pitch)

	for i := 0; i < 100; i++ {
		s.MouseMove(110, 120-int32(i+1)*100)
	}
	st = s.Sample()
	assert.Equal(t, float32(-80), st.Pitch)
}

func TestJoystickThreshold(t *testing.T) {
	s := NewSampler()

	s.SetJoystickAxes(0.3, 0.3)
	st := s.Sample()
	assert.Zero(t, st.Controls, "axes below the threshold are ignored")

	s.SetJoystickAxes(0.8, -0.8)
	st = s.Sample()
	assert.True(t, st.Controls.Has(ControlRight))
	assert.True(t, st.Controls.Has(ControlBack))
}

func TestGyroToggleSwitchesSource(t *testing.T) {
	s := NewSampler()

	s.SetJoystickAxes(0, 1)
	s.SetGyroAxes(1, 0)

	st := s.Sample()
	require.True(t, st.Controls.Has(ControlForward), "joystick drives by default")
	require.False(t, st.Controls.Has(ControlRight))

	s.KeyDown(common.KeyG)
	st = s.Sample()
	assert.True(t, st.GyroToggled)
	assert.True(t, s.GyroEnabled())
	assert.True(t, st.Controls.Has(ControlRight), "gyro axes drive once enabled")
	assert.False(t, st.Controls.Has(ControlForward), "joystick is ignored while gyro is on")
}

func TestTouchDragLooks(t *testing.T) {
	s := NewSampler()

	s.TouchBegin(1, 100, 100, false)
	s.TouchMove(1, 110, 90)

	st := s.Sample()
	assert.InDelta(t, 2.0, float64(st.Yaw), 1e-4)
	assert.InDelta(t, -2.0, float64(st.Pitch), 1e-4)

	// No movement since the last sample: no further delta.
	st = s.Sample()
	assert.InDelta(t, 2.0, float64(st.Yaw), 1e-4)
}

func TestTouchOverUIDoesNotLook(t *testing.T) {
	s := NewSampler()

	s.TouchBegin(1, 100, 100, true)
	s.TouchMove(1, 200, 200)

	st := s.Sample()
	assert.Zero(t, st.Yaw)
	assert.Zero(t, st.Pitch)
}

func TestPinchZoom(t *testing.T) {
	s := NewSampler()

	s.TouchBegin(1, 100, 100, false)
	s.TouchBegin(2, 100, 200, false)

	// Fingers move apart vertically: zoom in by the separation growth.
	s.TouchMove(1, 100, 90)
	s.TouchMove(2, 100, 210)
	st := s.Sample()
	assert.InDelta(t, 0.2, float64(st.ZoomDelta), 1e-4)

	// Fingers move together: zoom out.
	s.TouchMove(1, 100, 120)
	s.TouchMove(2, 100, 180)
	st = s.Sample()
	assert.InDelta(t, -0.6, float64(st.ZoomDelta), 1e-4)
}

func TestPinchRequiresOppositeDeltas(t *testing.T) {
	s := NewSampler()

	s.TouchBegin(1, 100, 100, false)
	s.TouchBegin(2, 100, 200, false)

	// Both fingers swipe the same way: that is a scroll, not a pinch.
	s.TouchMove(1, 100, 150)
	s.TouchMove(2, 100, 250)
	st := s.Sample()
	assert.Zero(t, st.ZoomDelta)
}

func TestScrollAccumulatesUntilSampled(t *testing.T) {
	s := NewSampler()

	s.Scroll(1)
	s.Scroll(0.5)

	st := s.Sample()
	assert.InDelta(t, 1.5, float64(st.ZoomDelta), 1e-4)

	st = s.Sample()
	assert.Zero(t, st.ZoomDelta)
}

func TestResetClearsEverything(t *testing.T) {
	s := NewSampler()

	s.KeyDown(common.KeyW)
	s.MouseMove(0, 0)
	s.MouseMove(100, 100)
	s.Scroll(2)
	s.TouchBegin(1, 0, 0, false)

	s.Reset()

	st := s.Sample()
	assert.Zero(t, st.Controls)
	assert.Zero(t, st.Yaw)
	assert.Zero(t, st.Pitch)
	assert.Zero(t, st.ZoomDelta)
}
