package page

import (
	"path/filepath"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxy-playground/common"
	"github.com/Carmen-Shannon/oxy-playground/config"
	"github.com/Carmen-Shannon/oxy-playground/engine/camera"
	"github.com/Carmen-Shannon/oxy-playground/engine/scene"
	"github.com/Carmen-Shannon/oxy-playground/engine/viewport"
)

// stubViewport is a headless viewport for exercising the page lifecycle
// without a window system.
type stubViewport struct {
	suspended bool

	onKeyDown func(keyCode uint32)
	onKeyUp   func(keyCode uint32)
	onScroll  func(delta float32)
}

var _ viewport.Viewport = &stubViewport{}

func (v *stubViewport) SetUpdateCallback(func())                          {}
func (v *stubViewport) SetResizeCallback(func(width, height int))         {}
func (v *stubViewport) SetVisibilityCallback(func(visible bool))          {}
func (v *stubViewport) SetScrollCallback(cb func(delta float32))          { v.onScroll = cb }
func (v *stubViewport) SetKeyDownCallback(cb func(keyCode uint32))        { v.onKeyDown = cb }
func (v *stubViewport) SetKeyUpCallback(cb func(keyCode uint32))          { v.onKeyUp = cb }
func (v *stubViewport) SetMouseMoveCallback(func(x, y int32))             {}
func (v *stubViewport) SetTouchBeginCallback(func(id int64, x, y float32)) {}
func (v *stubViewport) SetTouchMoveCallback(func(id int64, x, y float32))  {}
func (v *stubViewport) SetTouchEndCallback(func(id int64))                {}
func (v *stubViewport) SurfaceDescriptor() *wgpu.SurfaceDescriptor        { return nil }
func (v *stubViewport) Suspend()                                          { v.suspended = true }
func (v *stubViewport) Resume()                                           { v.suspended = false }
func (v *stubViewport) Suspended() bool                                   { return v.suspended }
func (v *stubViewport) IsRunning() bool                                   { return true }
func (v *stubViewport) Close() error                                      { return nil }
func (v *stubViewport) ProcessMessages()                                  {}
func (v *stubViewport) Width() int                                        { return 1280 }
func (v *stubViewport) Height() int                                       { return 720 }

func newTestPage(t *testing.T) (*page, *stubViewport) {
	t.Helper()

	cfg := config.Default()
	cfg.DataDir = t.TempDir()
	cfg.Scene.Mushrooms = 4
	cfg.Scene.Boxes = 2

	vp := &stubViewport{}
	p := NewPage(
		WithConfig(cfg),
		WithPageViewport(vp),
	).(*page)
	require.NoError(t, p.Appear())
	return p, vp
}

func TestAppearBuildsSceneOnce(t *testing.T) {
	p, vp := newTestPage(t)

	s := p.Scene()
	require.NotNil(t, s)
	assert.True(t, s.Active())
	assert.Equal(t, 4+2+2, s.Count())
	require.NotNil(t, s.GetByName(scene.CharacterName))

	// A second Appear resumes instead of rebuilding.
	vp.suspended = true
	require.NoError(t, p.Appear())
	assert.False(t, vp.Suspended())
	assert.Same(t, s, p.Scene())
}

func TestDisappearSuspendsAndDropsInput(t *testing.T) {
	p, vp := newTestPage(t)

	vp.onKeyDown(common.KeyW)
	p.Disappear()
	assert.True(t, vp.Suspended())

	// No stuck keys after the page returns.
	st := p.sampler.Sample()
	assert.Zero(t, st.Controls)
}

func TestRestartRebuildsScene(t *testing.T) {
	p, _ := newTestPage(t)

	before := p.Scene()
	p.Restart()

	// The rebuild is deferred until the next simulation tick.
	assert.Same(t, before, p.Scene())

	p.sampleTick(1.0 / 60.0)
	after := p.Scene()

	assert.NotSame(t, before, after)
	assert.Equal(t, before.Count(), after.Count())
	require.NotNil(t, after.GetByName(scene.CharacterName))
	assert.Same(t, after.GetByName(scene.CharacterName).Body(), p.controller.Body())
}

func TestRestartDuringActiveTicks(t *testing.T) {
	p, _ := newTestPage(t)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 500; i++ {
			p.sampleTick(1.0 / 60.0)
			p.postUpdate(1.0 / 60.0)
		}
	}()
	for i := 0; i < 50; i++ {
		p.Restart()
	}
	<-done

	// Consume any still-pending rebuild and check the page is coherent.
	p.sampleTick(1.0 / 60.0)
	jack := p.Scene().GetByName(scene.CharacterName)
	require.NotNil(t, jack)
	assert.Same(t, jack.Body(), p.controller.Body())
}

func TestFeedBeforeAppearIgnored(t *testing.T) {
	p := NewPage(WithConfig(config.Default())).(*page)

	assert.NotPanics(t, func() {
		p.FeedJoystick(0.5, -0.5)
		p.FeedGyro(0.1, 0.2)
	})
}

func TestViewToggleSwitchesCameraMode(t *testing.T) {
	p, vp := newTestPage(t)

	require.Equal(t, camera.ThirdPerson, p.rig.Mode())

	vp.onKeyDown(common.KeyF)
	p.sampleTick(1.0 / 60.0)
	assert.Equal(t, camera.FirstPerson, p.rig.Mode())
}

func TestScrollZoomsCamera(t *testing.T) {
	p, vp := newTestPage(t)

	before := p.rig.Distance()
	vp.onScroll(2)
	p.sampleTick(1.0 / 60.0)
	assert.Less(t, p.rig.Distance(), before)
}

func TestSnapshotSaveLoadRebindsCharacter(t *testing.T) {
	p, vp := newTestPage(t)

	// F5 saves a snapshot into the data directory.
	vp.onKeyDown(common.KeyF5)
	p.sampleTick(1.0 / 60.0)
	path := filepath.Join(p.cfg.DataDir, snapshotFile)
	assert.FileExists(t, path)

	oldBody := p.controller.Body()

	// F7 rebuilds the scene from disk and rebinds the controller.
	vp.onKeyUp(common.KeyF5)
	vp.onKeyDown(common.KeyF7)
	p.sampleTick(1.0 / 60.0)

	newBody := p.controller.Body()
	require.NotNil(t, newBody)
	assert.NotSame(t, oldBody, newBody)
	assert.Same(t, p.Scene().GetByName(scene.CharacterName).Body(), newBody)
}

func TestSliderValuesRecorded(t *testing.T) {
	p, _ := newTestPage(t)

	p.SetSlider(0, 0.25)
	p.SetSlider(1, 0.75)
	p.SetSlider(9, 1.0) // out of range, ignored

	assert.Equal(t, float32(0.25), p.SliderValue(0))
	assert.Equal(t, float32(0.75), p.SliderValue(1))
	assert.Zero(t, p.SliderValue(9))
}
