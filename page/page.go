// Package page hosts the playground demo inside a navigable page: it owns
// the viewport, builds the engine and scene on first appearance, and
// suspends the rendering surface while the page is hidden.
package page

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Carmen-Shannon/oxy-playground/config"
	"github.com/Carmen-Shannon/oxy-playground/engine"
	"github.com/Carmen-Shannon/oxy-playground/engine/camera"
	"github.com/Carmen-Shannon/oxy-playground/engine/character"
	"github.com/Carmen-Shannon/oxy-playground/engine/input"
	"github.com/Carmen-Shannon/oxy-playground/engine/physics"
	"github.com/Carmen-Shannon/oxy-playground/engine/scene"
	"github.com/Carmen-Shannon/oxy-playground/engine/viewport"
	"github.com/Carmen-Shannon/oxy-playground/platform"
)

// snapshotFile is the scene snapshot name within the data directory.
const snapshotFile = "scene.xml"

// sliderCount is the number of demo sliders hosted on the page.
const sliderCount = 2

// page implements the Page interface.
type page struct {
	mu sync.Mutex

	cfg    config.Config
	logger *zap.SugaredLogger

	viewport viewport.Viewport
	engine   engine.Engine

	sampler    input.Sampler
	scene      scene.Scene
	rig        camera.Rig
	controller character.Controller

	launched bool

	// restartPending marks a requested scene rebuild. The rebuild is
	// consumed at the start of the next simulation tick so it never
	// interleaves with a physics step.
	restartPending bool

	// lastYaw, lastPitch hold the most recent sampled look angles for the
	// post-update camera pass.
	lastYaw, lastPitch float32

	sliders [sliderCount]float32
}

// Page is the demo's lifecycle owner. Appear launches the engine on first
// call and resumes the surface afterwards; Disappear suspends it; Restart
// rebuilds the scene from a fresh seed. Run blocks until the viewport
// closes.
type Page interface {
	// Run makes the page appear and blocks processing viewport messages
	// until the viewport closes.
	//
	// Returns:
	//   - error: error if the page could not be launched
	Run() error

	// Appear launches the demo on first call; on later calls it resumes
	// the suspended surface.
	//
	// Returns:
	//   - error: error if launching fails
	Appear() error

	// Disappear suspends the rendering surface and drops all held input
	// so no key stays stuck across the hidden period.
	Disappear()

	// Restart schedules a scene rebuild from a fresh seed, rebinding the
	// character controller to the new rig. The rebuild is applied at the
	// start of the next simulation tick.
	Restart()

	// SetSlider records a slider value change.
	//
	// Parameters:
	//   - index: which slider (0-based)
	//   - value: the new value
	SetSlider(index int, value float32)

	// SliderValue returns the last recorded value of a slider.
	//
	// Parameters:
	//   - index: which slider (0-based)
	//
	// Returns:
	//   - float32: the value, 0 for an unknown index
	SliderValue(index int) float32

	// FeedJoystick forwards screen joystick axes to the input sampler.
	//
	// Parameters:
	//   - x, y: the joystick axes in [-1, 1]
	FeedJoystick(x, y float32)

	// FeedGyro forwards gyroscope axes to the input sampler. Consumed
	// only while gyroscope input is toggled on.
	//
	// Parameters:
	//   - x, y: the gyroscope axes in [-1, 1]
	FeedGyro(x, y float32)

	// Scene returns the hosted scene, or nil before the first Appear.
	//
	// Returns:
	//   - scene.Scene: the scene
	Scene() scene.Scene
}

var _ Page = &page{}

// NewPage creates a Page configured with the given options.
//
// Parameters:
//   - options: functional options to configure the page
//
// Returns:
//   - Page: the newly created page
func NewPage(options ...PageBuilderOption) Page {
	p := &page{
		cfg: config.Default(),
	}
	for _, option := range options {
		option(p)
	}
	if p.logger == nil {
		p.logger = zap.NewNop().Sugar()
	}
	return p
}

func (p *page) Run() error {
	if err := p.Appear(); err != nil {
		return err
	}
	p.engine.Run()
	return nil
}

func (p *page) Appear() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.launched {
		if p.viewport != nil {
			p.viewport.Resume()
		}
		return nil
	}
	if err := p.launch(); err != nil {
		return fmt.Errorf("failed to launch playground: %w", err)
	}
	p.launched = true
	return nil
}

func (p *page) Disappear() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.launched {
		return
	}
	if p.viewport != nil {
		p.viewport.Suspend()
	}
	p.sampler.Reset()
}

// launch builds the viewport, scene, controller, rig, and engine, and
// starts nothing; the engine loops start in Run. Caller must hold the
// page mutex.
func (p *page) launch() error {
	if p.viewport == nil {
		p.viewport = viewport.NewViewport(
			viewport.WithTitle(p.cfg.Window.Title),
			viewport.WithWidth(p.cfg.Window.Width),
			viewport.WithHeight(p.cfg.Window.Height),
		)
	}

	p.sampler = input.NewSampler(
		input.WithMouseSensitivity(p.cfg.Input.MouseSensitivity),
		input.WithTouchSensitivity(p.cfg.Input.TouchSensitivity),
		input.WithPinchScale(p.cfg.Input.PinchScale),
		input.WithJoystickThreshold(p.cfg.Input.JoystickThreshold),
	)

	p.buildScene(p.cfg.Scene.Seed)

	p.engine = engine.NewEngine(
		engine.WithViewport(p.viewport),
		engine.WithLogger(p.logger),
		engine.WithTickRate(p.cfg.Engine.TickRate),
		engine.WithRenderFrameLimit(p.cfg.Engine.RenderFrameLimit),
		engine.WithProfiling(p.cfg.Engine.Profiling),
		engine.WithScene(0, p.scene),
	)
	p.engine.SetSampleCallback(p.sampleTick)
	p.engine.SetPostUpdateCallback(p.postUpdate)

	p.wireViewport()

	go func() {
		for err := range p.engine.Errors() {
			p.logger.Errorw("engine error", "error", err)
		}
	}()

	p.logger.Infow("playground launched",
		"tickRate", p.cfg.Engine.TickRate,
		"seed", p.cfg.Scene.Seed,
		"objects", p.scene.Count(),
	)
	return nil
}

// buildScene populates a fresh scene and binds the character controller
// and camera rig to it. Caller must hold the page mutex.
func (p *page) buildScene(seed int64) {
	world := physics.NewWorld()

	scn := scene.NewScene("playground", world, scene.WithActive(true))
	jack := scene.Populate(scn,
		scene.WithSeed(seed),
		scene.WithObstacleCounts(p.cfg.Scene.Mushrooms, p.cfg.Scene.Boxes),
		scene.WithAreaExtent(p.cfg.Scene.AreaExtent),
	)

	p.controller = character.NewController(
		character.WithBody(jack.Body()),
		character.WithMoveForces(p.cfg.Character.MoveForce, p.cfg.Character.AirMoveForce),
		character.WithBrakeForce(p.cfg.Character.BrakeForce),
		character.WithJumpImpulse(p.cfg.Character.JumpImpulse),
	)
	world.SetPreStepCallback(p.controller.PreStep)

	p.rig = camera.NewRig(
		camera.WithRaycaster(world),
		camera.WithDistance(p.cfg.Camera.Distance),
		camera.WithDistanceBounds(p.cfg.Camera.MinDistance, p.cfg.Camera.MaxDistance),
		camera.WithAimHeight(p.cfg.Camera.AimHeight),
	)
	scn.SetRig(p.rig)

	p.scene = scn
}

func (p *page) Restart() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.launched {
		return
	}
	p.restartPending = true
}

// restart tears the old scene down and repopulates it from a fresh seed.
// Runs on the simulation goroutine between steps; caller must hold the
// page mutex.
func (p *page) restart() {
	p.engine.RemoveScene(0)
	p.scene.Clear()

	p.buildScene(time.Now().UnixNano())
	p.engine.AddScene(0, p.scene)
	p.sampler.Reset()

	p.logger.Infow("playground restarted", "objects", p.scene.Count())
}

// wireViewport routes viewport events into the input sampler and the
// page lifecycle. Caller must hold the page mutex.
func (p *page) wireViewport() {
	p.viewport.SetKeyDownCallback(p.sampler.KeyDown)
	p.viewport.SetKeyUpCallback(p.sampler.KeyUp)
	p.viewport.SetMouseMoveCallback(p.sampler.MouseMove)
	p.viewport.SetScrollCallback(p.sampler.Scroll)
	p.viewport.SetTouchBeginCallback(func(id int64, x, y float32) {
		p.sampler.TouchBegin(id, x, y, false)
	})
	p.viewport.SetTouchMoveCallback(p.sampler.TouchMove)
	p.viewport.SetTouchEndCallback(p.sampler.TouchEnd)
	p.viewport.SetVisibilityCallback(func(visible bool) {
		if visible {
			if err := p.Appear(); err != nil {
				p.logger.Errorw("failed to reappear", "error", err)
			}
		} else {
			p.Disappear()
		}
	})
}

// sampleTick is the engine's sample callback. It applies any pending
// restart, folds the accumulated input into a per-tick snapshot, applies
// it to the character controller, and services the one-shot requests
// (view toggle, snapshot save/load).
func (p *page) sampleTick(dt float32) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.restartPending {
		p.restartPending = false
		p.restart()
	}

	st := p.sampler.Sample()

	p.lastYaw = st.Yaw
	p.lastPitch = st.Pitch

	p.controller.SetControls(st.Controls)
	p.controller.SetYaw(st.Yaw)

	if st.ViewToggled {
		p.rig.ToggleMode()
	}
	if st.GyroToggled {
		p.logger.Infow("gyroscope input toggled", "enabled", p.sampler.GyroEnabled())
	}
	if st.ZoomDelta != 0 {
		p.rig.Zoom(st.ZoomDelta)
	}
	if st.SaveRequested {
		if err := p.scene.Save(p.snapshotPath()); err != nil {
			p.logger.Errorw("failed to save scene snapshot", "error", err)
		} else {
			p.logger.Infow("scene snapshot saved", "path", p.snapshotPath())
		}
	}
	if st.LoadRequested {
		p.loadSnapshot()
	}
	if st.QualityToggled != 0 {
		p.logger.Infow("quality toggle requested", "setting", st.QualityToggled)
	}
	if st.ScreenshotDigit >= 0 {
		p.logger.Infow("screenshot requested", "slot", st.ScreenshotDigit)
	}

	// Drive the character's animation from its motion.
	if jack := p.scene.GetByName(scene.CharacterName); jack != nil {
		clip, speed := p.controller.Animation()
		jack.SetAnimation(clip.String(), speed)
	}
}

// loadSnapshot replaces the scene from disk and rebinds the controller
// to the re-resolved character rig. Caller must hold the page mutex.
func (p *page) loadSnapshot() {
	if err := p.scene.Load(p.snapshotPath()); err != nil {
		p.logger.Errorw("failed to load scene snapshot", "error", err)
		return
	}
	jack := p.scene.GetByName(scene.CharacterName)
	if jack == nil || jack.Body() == nil {
		p.logger.Errorw("snapshot has no character rig", "name", scene.CharacterName)
		return
	}
	p.controller.SetBody(jack.Body())
	p.logger.Infow("scene snapshot loaded", "path", p.snapshotPath(), "objects", p.scene.Count())
}

// postUpdate is the engine's post-update callback. Bodies have settled,
// so the camera rig can follow the character.
func (p *page) postUpdate(dt float32) {
	p.mu.Lock()
	defer p.mu.Unlock()

	body := p.controller.Body()
	if body == nil {
		return
	}
	p.rig.Update(body.Position(), p.lastYaw, p.lastPitch)
}

func (p *page) SetSlider(index int, value float32) {
	if index < 0 || index >= sliderCount {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sliders[index] = value
	p.logger.Debugw("slider changed", "index", index, "value", value)
}

func (p *page) SliderValue(index int) float32 {
	if index < 0 || index >= sliderCount {
		return 0
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sliders[index]
}

func (p *page) FeedJoystick(x, y float32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.launched {
		return
	}
	p.sampler.SetJoystickAxes(x, y)
}

func (p *page) FeedGyro(x, y float32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.launched {
		return
	}
	p.sampler.SetGyroAxes(x, y)
}

func (p *page) Scene() scene.Scene {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.scene
}

// snapshotPath resolves the snapshot location inside the configured or
// platform data directory.
func (p *page) snapshotPath() string {
	dir := p.cfg.DataDir
	if dir == "" {
		dir = platform.DataDir()
	}
	return filepath.Join(dir, snapshotFile)
}
