//go:build !android

package viewport

import (
	"fmt"
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// glfwViewport holds the GLFW-specific viewport state.
type glfwViewport struct {
	parent  *engineViewport
	window  *glfw.Window
	running bool
}

// newPlatformViewport creates the GLFW window with input callbacks and
// stores it as the internal viewport.
//
// GLFW reference: https://www.glfw.org/docs/latest/window_guide.html
// go-gl/glfw: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw
func newPlatformViewport(v *engineViewport) error {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %v", err)
	}

	// WebGPU provides its own graphics API, so disable OpenGL context creation.
	// Reference: https://www.glfw.org/docs/latest/window_guide.html#window_hints_ctx
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	win, err := glfw.CreateWindow(v.width, v.height, v.title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("failed to create GLFW window: %v", err)
	}

	gv := &glfwViewport{
		parent:  v,
		window:  win,
		running: true,
	}
	v.internalViewport = gv

	// Register GLFW callbacks for input and window events.
	// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetKeyCallback
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			gv.running = false
			win.SetShouldClose(true)
			return
		}
		switch action {
		case glfw.Press, glfw.Repeat:
			if v.onKeyDown != nil {
				v.onKeyDown(uint32(key))
			}
		case glfw.Release:
			if v.onKeyUp != nil {
				v.onKeyUp(uint32(key))
			}
		}
	})

	// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetScrollCallback
	win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		if v.onScroll != nil {
			v.onScroll(float32(yoff))
		}
	})

	// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetCursorPosCallback
	win.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		if v.onMouseMove != nil {
			v.onMouseMove(int32(xpos), int32(ypos))
		}
	})

	// Iconify/restore maps to page visibility on desktop.
	// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetIconifyCallback
	win.SetIconifyCallback(func(_ *glfw.Window, iconified bool) {
		if v.onVisibility != nil {
			v.onVisibility(!iconified)
		}
	})

	// Use framebuffer size callback for pixel-accurate resize events.
	// On high-DPI displays (e.g., macOS Retina), framebuffer size differs
	// from window size; the surface needs pixel dimensions.
	// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetFramebufferSizeCallback
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		v.width = width
		v.height = height
		if v.onResize != nil {
			v.onResize(width, height)
		}
	})

	fbWidth, fbHeight := win.GetFramebufferSize()
	v.width = fbWidth
	v.height = fbHeight

	return nil
}

// platformGetSurfaceDescriptor creates a platform-appropriate
// wgpu.SurfaceDescriptor from the GLFW window. Uses the wgpuglfw bridge
// package which has per-platform implementations (Windows, X11, Wayland,
// macOS).
//
// Reference: https://pkg.go.dev/github.com/cogentcore/webgpu/wgpuglfw#GetSurfaceDescriptor
func platformGetSurfaceDescriptor(v *engineViewport) *wgpu.SurfaceDescriptor {
	if v.internalViewport == nil {
		return nil
	}
	gv := v.internalViewport.(*glfwViewport)
	return wgpuglfw.GetSurfaceDescriptor(gv.window)
}

// platformSuspend hides the window while the hosting page is not visible.
// The surface descriptor becomes unavailable until Resume.
func platformSuspend(v *engineViewport) {
	if v.internalViewport == nil {
		return
	}
	gv := v.internalViewport.(*glfwViewport)
	gv.window.Hide()
}

// platformResume shows the window again after a Suspend.
func platformResume(v *engineViewport) {
	if v.internalViewport == nil {
		return
	}
	gv := v.internalViewport.(*glfwViewport)
	gv.window.Show()
}

// platformIsRunningCheck returns whether the GLFW window is still active.
func platformIsRunningCheck(v *engineViewport) bool {
	if v.internalViewport == nil {
		return false
	}
	gv := v.internalViewport.(*glfwViewport)
	return gv.running && !gv.window.ShouldClose()
}

// platformCloseViewport destroys the GLFW window and terminates the GLFW
// library. Returns an error if the internal viewport has not been
// initialized.
func platformCloseViewport(v *engineViewport) error {
	if v.internalViewport == nil {
		return fmt.Errorf("viewport is not initialized")
	}
	gv := v.internalViewport.(*glfwViewport)
	gv.running = false
	gv.window.SetShouldClose(true)
	gv.window.Destroy()
	glfw.Terminate()
	return nil
}

// platformRunEventLoop polls GLFW for pending events until the window
// closes, invoking the update callback each iteration.
//
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#PollEvents
func platformRunEventLoop(v *engineViewport) {
	for platformIsRunningCheck(v) {
		glfw.PollEvents()
		if !platformIsRunningCheck(v) {
			break
		}
		if v.onUpdate != nil {
			v.onUpdate()
		}
		runtime.Gosched()
	}
}
