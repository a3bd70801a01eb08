package viewport

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// Viewport provides platform windowing, input event delivery, and the
// rendering surface lifecycle. Wraps platform-specific implementations with
// a common interface. The surface is torn down on Suspend (page
// disappearance) and rebuilt on Resume so GPU resources are released while
// the hosting page is not visible.
type Viewport interface {
	// SetUpdateCallback sets the function called each event loop iteration.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called when the surface is resized.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetVisibilityCallback sets the function called when the hosting page
	// appears or disappears (window iconify/restore on desktop, lifecycle
	// visibility crossings on mobile).
	//
	// Parameters:
	//   - callback: function receiving the new visibility
	SetVisibilityCallback(callback func(visible bool))

	// SetScrollCallback sets the callback for mouse scroll wheel events.
	//
	// Parameters:
	//   - callback: function receiving scroll delta (positive = up/zoom in)
	SetScrollCallback(callback func(delta float32))

	// SetKeyDownCallback sets the callback for key press events.
	//
	// Parameters:
	//   - callback: function receiving the virtual key code
	SetKeyDownCallback(callback func(keyCode uint32))

	// SetKeyUpCallback sets the callback for key release events.
	//
	// Parameters:
	//   - callback: function receiving the virtual key code
	SetKeyUpCallback(callback func(keyCode uint32))

	// SetMouseMoveCallback sets the callback for mouse movement.
	//
	// Parameters:
	//   - callback: function receiving mouse x, y position
	SetMouseMoveCallback(callback func(x, y int32))

	// SetTouchBeginCallback sets the callback for touch sequence starts.
	//
	// Parameters:
	//   - callback: function receiving the sequence id and position
	SetTouchBeginCallback(callback func(id int64, x, y float32))

	// SetTouchMoveCallback sets the callback for touch sequence movement.
	//
	// Parameters:
	//   - callback: function receiving the sequence id and position
	SetTouchMoveCallback(callback func(id int64, x, y float32))

	// SetTouchEndCallback sets the callback for touch sequence ends.
	//
	// Parameters:
	//   - callback: function receiving the sequence id
	SetTouchEndCallback(callback func(id int64))

	// SurfaceDescriptor returns a wgpu.SurfaceDescriptor suitable for
	// creating a WebGPU surface, or nil while suspended or on platforms
	// whose surface is engine-managed.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the platform-specific surface descriptor, or nil
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// Suspend releases the rendering surface. Input callbacks stay
	// registered; the event loop keeps running.
	Suspend()

	// Resume rebuilds the rendering surface after a Suspend.
	Resume()

	// Suspended reports whether the surface is currently torn down.
	//
	// Returns:
	//   - bool: true if suspended
	Suspended() bool

	// IsRunning returns true if the viewport is still active.
	//
	// Returns:
	//   - bool: true if running, false if closed
	IsRunning() bool

	// Close closes the viewport and releases platform resources.
	//
	// Returns:
	//   - error: error if close operation fails
	Close() error

	// ProcessMessages runs the platform event loop.
	// Blocks until the viewport is closed. Calls the update callback each
	// iteration.
	ProcessMessages()

	// Width returns the current surface width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the current surface height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int
}

// engineViewport is the implementation of the Viewport interface.
// Holds configuration, platform state, and event callbacks.
type engineViewport struct {
	// title is the window title displayed on desktop platforms.
	title string

	// width is the current surface width in pixels.
	width int

	// height is the current surface height in pixels.
	height int

	// suspended is true while the rendering surface is torn down.
	suspended bool

	// internalViewport holds the platform-specific state.
	internalViewport any

	// onUpdate is called each iteration of the event loop (if set).
	onUpdate func()

	// onResize is called when the surface is resized.
	onResize func(width, height int)

	// onVisibility is called when the hosting page appears or disappears.
	onVisibility func(visible bool)

	// onScroll is called for mouse wheel events.
	onScroll func(delta float32)

	// onKeyDown is called when a key is pressed.
	onKeyDown func(keyCode uint32)

	// onKeyUp is called when a key is released.
	onKeyUp func(keyCode uint32)

	// onMouseMove is called when the mouse moves within the surface.
	onMouseMove func(x, y int32)

	// onTouchBegin is called when a touch sequence starts.
	onTouchBegin func(id int64, x, y float32)

	// onTouchMove is called when a touch sequence moves.
	onTouchMove func(id int64, x, y float32)

	// onTouchEnd is called when a touch sequence ends.
	onTouchEnd func(id int64)
}

var _ Viewport = &engineViewport{}

// NewViewport creates a new Viewport with the specified options.
// Applies default values first, then each option in order.
//
// Parameters:
//   - options: functional options to configure the viewport
//
// Returns:
//   - Viewport: the configured viewport
func NewViewport(options ...ViewportBuilderOption) Viewport {
	v := &engineViewport{
		title:  "Oxy Playground",
		width:  1280,
		height: 720,
	}
	for _, opt := range options {
		opt(v)
	}
	if err := newPlatformViewport(v); err != nil {
		panic(fmt.Sprintf("failed to create platform viewport: %v", err))
	}
	return v
}

func (v *engineViewport) SetUpdateCallback(callback func()) {
	v.onUpdate = callback
}

func (v *engineViewport) SetResizeCallback(callback func(width, height int)) {
	v.onResize = callback
}

func (v *engineViewport) SetVisibilityCallback(callback func(visible bool)) {
	v.onVisibility = callback
}

func (v *engineViewport) SetScrollCallback(callback func(delta float32)) {
	v.onScroll = callback
}

func (v *engineViewport) SetKeyDownCallback(callback func(keyCode uint32)) {
	v.onKeyDown = callback
}

func (v *engineViewport) SetKeyUpCallback(callback func(keyCode uint32)) {
	v.onKeyUp = callback
}

func (v *engineViewport) SetMouseMoveCallback(callback func(x, y int32)) {
	v.onMouseMove = callback
}

func (v *engineViewport) SetTouchBeginCallback(callback func(id int64, x, y float32)) {
	v.onTouchBegin = callback
}

func (v *engineViewport) SetTouchMoveCallback(callback func(id int64, x, y float32)) {
	v.onTouchMove = callback
}

func (v *engineViewport) SetTouchEndCallback(callback func(id int64)) {
	v.onTouchEnd = callback
}

func (v *engineViewport) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	if v.suspended {
		return nil
	}
	return platformGetSurfaceDescriptor(v)
}

func (v *engineViewport) Suspend() {
	if v.suspended {
		return
	}
	v.suspended = true
	platformSuspend(v)
}

func (v *engineViewport) Resume() {
	if !v.suspended {
		return
	}
	v.suspended = false
	platformResume(v)
}

func (v *engineViewport) Suspended() bool {
	return v.suspended
}

func (v *engineViewport) IsRunning() bool {
	return platformIsRunningCheck(v)
}

func (v *engineViewport) Close() error {
	return platformCloseViewport(v)
}

func (v *engineViewport) ProcessMessages() {
	platformRunEventLoop(v)
}

func (v *engineViewport) Width() int {
	return v.width
}

func (v *engineViewport) Height() int {
	return v.height
}
