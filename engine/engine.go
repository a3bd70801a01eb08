package engine

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Carmen-Shannon/oxy-playground/engine/profiler"
	"github.com/Carmen-Shannon/oxy-playground/engine/scene"
	"github.com/Carmen-Shannon/oxy-playground/engine/viewport"
)

// engine implements the Engine interface.
// Coordinates the simulation, render, and viewport threads.
type engine struct {
	tickRateChannel chan time.Duration // Channel for dynamic tick rate updates

	running bool
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	errChannel chan error

	viewport viewport.Viewport

	logger *zap.SugaredLogger

	profiler         *profiler.Profiler
	profilingEnabled bool

	engineTickRate time.Duration

	sampleCallback     func(deltaTime float32)
	postUpdateCallback func(deltaTime float32)
	renderCallback     func(deltaTime float32)

	scenes   map[int]scene.Scene
	scenesMu sync.RWMutex

	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped
}

// Engine is the main entry point for the simulation.
// It orchestrates the fixed-rate update loop, the render loop, and the
// viewport. Each simulation tick runs three phases in a fixed order:
// input sampling, physics stepping for every active scene, and the
// post-update phase for camera and presentation state.
type Engine interface {
	// Viewport returns the underlying viewport.
	//
	// Returns:
	//   - viewport.Viewport: the viewport instance
	Viewport() viewport.Viewport

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickRate sets the simulation tick rate in ticks per second.
	// If the engine is running, the change takes effect on the next tick.
	//
	// Parameters:
	//   - tps: target ticks per second (defaults to 60 if <= 0)
	SetTickRate(tps float64)

	// SetSampleCallback registers the function called at the start of
	// each simulation tick, before physics stepping. Use this to fold
	// accumulated input events into a per-tick snapshot and apply it to
	// controllers.
	//
	// Parameters:
	//   - callback: function to call each tick, receiving the delta time in seconds
	SetSampleCallback(callback func(deltaTime float32))

	// SetPostUpdateCallback registers the function called at the end of
	// each simulation tick, after every active scene has stepped. Use
	// this for camera placement and anything that reads settled body
	// positions.
	//
	// Parameters:
	//   - callback: function to call each tick, receiving the delta time in seconds
	SetPostUpdateCallback(callback func(deltaTime float32))

	// SetRenderCallback registers the function called each render frame.
	//
	// Parameters:
	//   - callback: function to call each render frame, receiving the delta time in seconds
	SetRenderCallback(callback func(deltaTime float32))

	// SetRenderFrameLimit sets an optional render frame rate cap in frames per second.
	// Pass 0 to uncap the render loop (default).
	//
	// Parameters:
	//   - fps: maximum render frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// AddScene registers a scene at the given key. Active scenes are
	// stepped in ascending key order during the simulation loop.
	//
	// Parameters:
	//   - key: the ordering key (lower steps first)
	//   - s: the Scene to register
	AddScene(key int, s scene.Scene)

	// RemoveScene removes the scene at the given key.
	//
	// Parameters:
	//   - key: the key of the scene to remove
	RemoveScene(key int)

	// Scene retrieves the scene registered at the given key.
	// Returns nil if no scene exists at that key.
	//
	// Parameters:
	//   - key: the key of the scene to retrieve
	//
	// Returns:
	//   - scene.Scene: the scene at the key, or nil if not found
	Scene(key int) scene.Scene

	// Scenes returns a copy of all registered scenes keyed by order.
	//
	// Returns:
	//   - map[int]scene.Scene: a copy of the scenes map
	Scenes() map[int]scene.Scene

	// Errors returns a channel carrying recovered loop failures. The
	// channel is buffered; when full, further errors are dropped after
	// being logged.
	//
	// Returns:
	//   - <-chan error: the error channel
	Errors() <-chan error

	// Run starts the engine loops and blocks processing viewport
	// messages until the viewport closes.
	Run()

	// Quit signals all engine goroutines to stop and shuts down the engine.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

var _ Engine = &engine{}

// NewEngine creates a new Engine instance with the provided options.
// Initializes control channels and profiler with sensible defaults.
// Options are applied directly to the engine struct via the option-builder pattern.
//
// Parameters:
//   - options: functional options for engine configuration (viewport, tick rate, logging, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		tickRateChannel: make(chan time.Duration, 1),
		quitChannel:     make(chan struct{}),
		errChannel:      make(chan error, 8),
		scenes:          make(map[int]scene.Scene),
		engineTickRate:  time.Second / 60,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.logger == nil {
		e.logger = zap.NewNop().Sugar()
	}
	e.profiler = profiler.NewProfiler(e.logger)

	return e
}

func (e *engine) Viewport() viewport.Viewport {
	return e.viewport
}

func (e *engine) Run() {
	e.running = true
	e.handle()
	if e.viewport != nil {
		e.viewport.ProcessMessages()
	} else {
		// Headless mode: block until quit.
		<-e.quitChannel
	}
	e.signalQuit()
	e.wg.Wait()
}

// Quit signals all engine goroutines to stop and shuts down the engine.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.signalQuit()
}

func (e *engine) Errors() <-chan error {
	return e.errChannel
}

// signalQuit closes the quit channel to signal all goroutines to exit.
// Uses sync.Once to ensure the channel is only closed once.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		e.running = false
		close(e.quitChannel)
	})
}

// emitError logs a recovered failure and places it on the error channel
// if a slot is free.
func (e *engine) emitError(err error) {
	e.logger.Errorw("engine loop failure", "error", err)
	select {
	case e.errChannel <- err:
	default:
	}
}

// handle launches the simulation and render goroutines.
// Each goroutine is tracked by the engine's WaitGroup.
func (e *engine) handle() {
	e.wg.Add(2)
	go e.handleSimulation()
	go e.handleRender()
}

// handleSimulation runs the fixed-rate update loop in its own goroutine.
// Each tick runs input sampling, steps the world of every active scene
// in ascending key order, then runs the post-update phase. Listens for
// dynamic rate changes via tickRateChannel and exits when the quit
// channel is closed. Recovers from panics so a misbehaving tick does
// not crash the process.
func (e *engine) handleSimulation() {
	defer e.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			e.emitError(fmt.Errorf("simulation goroutine recovered from panic: %v", r))
			e.signalQuit()
		}
	}()

	ticker := time.NewTicker(e.engineTickRate)
	defer ticker.Stop()

	lastTick := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		case <-ticker.C:
			now := time.Now()
			dt := float32(now.Sub(lastTick).Seconds())
			lastTick = now

			e.tick(dt)

			if e.profilingEnabled && e.profiler != nil {
				e.profiler.Tick()
			}
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
			e.engineTickRate = newRate
		}
	}
}

// tick runs a single simulation tick: sample, step, post-update.
func (e *engine) tick(dt float32) {
	if e.sampleCallback != nil {
		e.sampleCallback(dt)
	}

	for _, s := range e.activeScenes() {
		if w := s.World(); w != nil {
			w.Step(dt)
		}
	}

	if e.postUpdateCallback != nil {
		e.postUpdateCallback(dt)
	}
}

// activeScenes returns the active scenes in ascending key order.
func (e *engine) activeScenes() []scene.Scene {
	e.scenesMu.RLock()
	defer e.scenesMu.RUnlock()

	keys := make([]int, 0, len(e.scenes))
	for k := range e.scenes {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	active := make([]scene.Scene, 0, len(keys))
	for _, k := range keys {
		if s := e.scenes[k]; s.Active() {
			active = append(active, s)
		}
	}
	return active
}

// handleRender runs the uncapped (or frame-limited) render loop in its
// own goroutine. The loop only drives the registered render callback;
// drawing itself belongs to the surface host. Skips frames while the
// viewport is suspended. Recovers from panics to avoid crashing the
// process and signals quit on recovery.
func (e *engine) handleRender() {
	defer e.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			e.emitError(fmt.Errorf("render goroutine recovered from panic: %v", r))
			e.signalQuit()
		}
	}()

	lastRender := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		default:
			now := time.Now()
			dt := float32(now.Sub(lastRender).Seconds())
			lastRender = now

			if e.viewport != nil && e.viewport.Suspended() {
				// Surface is torn down; idle until resumed.
				time.Sleep(50 * time.Millisecond)
				continue
			}

			if e.renderCallback != nil {
				e.renderCallback(dt)
			}

			// Frame rate limiting
			if e.renderFrameLimit > 0 {
				elapsed := time.Since(lastRender)
				if remaining := e.renderFrameLimit - elapsed; remaining > 0 {
					time.Sleep(remaining)
				}
			}
		}
	}
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

// SetTickRate sets the simulation tick rate in ticks per second.
// If the engine is running, the change takes effect on the next tick.
func (e *engine) SetTickRate(tps float64) {
	if tps <= 0 {
		tps = 60
	}
	newRate := time.Duration(float64(time.Second) / tps)

	if e.running {
		// Non-blocking send; if the channel holds a pending update,
		// drain it and send the new value.
		select {
		case e.tickRateChannel <- newRate:
		default:
			select {
			case <-e.tickRateChannel:
			default:
			}
			e.tickRateChannel <- newRate
		}
	} else {
		e.engineTickRate = newRate
	}
}

// SetSampleCallback registers the function called at the start of each tick.
func (e *engine) SetSampleCallback(callback func(deltaTime float32)) {
	e.sampleCallback = callback
}

// SetPostUpdateCallback registers the function called at the end of each tick.
func (e *engine) SetPostUpdateCallback(callback func(deltaTime float32)) {
	e.postUpdateCallback = callback
}

// SetRenderCallback registers the function called each render frame.
func (e *engine) SetRenderCallback(callback func(deltaTime float32)) {
	e.renderCallback = callback
}

// SetRenderFrameLimit sets an optional render frame rate cap.
// Pass 0 to uncap the render loop.
func (e *engine) SetRenderFrameLimit(fps float64) {
	if fps <= 0 {
		e.renderFrameLimit = 0
		return
	}
	e.renderFrameLimit = time.Duration(float64(time.Second) / fps)
}

func (e *engine) AddScene(key int, s scene.Scene) {
	e.scenesMu.Lock()
	defer e.scenesMu.Unlock()
	e.scenes[key] = s
}

func (e *engine) RemoveScene(key int) {
	e.scenesMu.Lock()
	defer e.scenesMu.Unlock()
	delete(e.scenes, key)
}

func (e *engine) Scene(key int) scene.Scene {
	e.scenesMu.RLock()
	defer e.scenesMu.RUnlock()
	return e.scenes[key]
}

func (e *engine) Scenes() map[int]scene.Scene {
	e.scenesMu.RLock()
	defer e.scenesMu.RUnlock()
	cp := make(map[int]scene.Scene, len(e.scenes))
	for k, v := range e.scenes {
		cp[k] = v
	}
	return cp
}
