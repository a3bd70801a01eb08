//go:build android

package viewport

import (
	"github.com/cogentcore/webgpu/wgpu"

	"golang.org/x/mobile/app"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"
)

// mobileViewport holds the x/mobile-specific viewport state.
type mobileViewport struct {
	parent  *engineViewport
	app     app.App
	running bool
}

// newPlatformViewport prepares the mobile viewport state. The actual app
// loop cannot start here; x/mobile requires app.Main to own the main
// goroutine, which happens in platformRunEventLoop.
//
// Reference: https://pkg.go.dev/golang.org/x/mobile/app
func newPlatformViewport(v *engineViewport) error {
	v.internalViewport = &mobileViewport{
		parent:  v,
		running: true,
	}
	return nil
}

// platformGetSurfaceDescriptor returns nil on mobile; the surface is
// created from the native window handle by the host activity, not from
// a descriptor the viewport can hand out.
func platformGetSurfaceDescriptor(v *engineViewport) *wgpu.SurfaceDescriptor {
	return nil
}

// platformSuspend is a no-op on mobile; the OS drives surface teardown
// through lifecycle events instead.
func platformSuspend(v *engineViewport) {}

// platformResume is a no-op on mobile; the OS drives surface restoration
// through lifecycle events instead.
func platformResume(v *engineViewport) {}

// platformIsRunningCheck returns whether the mobile event loop is still
// active.
func platformIsRunningCheck(v *engineViewport) bool {
	if v.internalViewport == nil {
		return false
	}
	mv := v.internalViewport.(*mobileViewport)
	return mv.running
}

// platformCloseViewport marks the loop as stopped; x/mobile tears the
// activity down itself when the loop returns.
func platformCloseViewport(v *engineViewport) error {
	if v.internalViewport == nil {
		return nil
	}
	mv := v.internalViewport.(*mobileViewport)
	mv.running = false
	return nil
}

// platformRunEventLoop runs the x/mobile app loop, translating lifecycle,
// size and touch events into viewport callbacks.
//
// Reference: https://pkg.go.dev/golang.org/x/mobile/event/lifecycle
func platformRunEventLoop(v *engineViewport) {
	mv := v.internalViewport.(*mobileViewport)
	app.Main(func(a app.App) {
		mv.app = a
		for e := range a.Events() {
			if !mv.running {
				return
			}
			switch e := a.Filter(e).(type) {
			case lifecycle.Event:
				switch e.Crosses(lifecycle.StageVisible) {
				case lifecycle.CrossOn:
					if v.onVisibility != nil {
						v.onVisibility(true)
					}
				case lifecycle.CrossOff:
					if v.onVisibility != nil {
						v.onVisibility(false)
					}
				}
				if e.To == lifecycle.StageDead {
					mv.running = false
					return
				}
			case size.Event:
				v.width = e.WidthPx
				v.height = e.HeightPx
				if v.onResize != nil {
					v.onResize(e.WidthPx, e.HeightPx)
				}
			case touch.Event:
				switch e.Type {
				case touch.TypeBegin:
					if v.onTouchBegin != nil {
						v.onTouchBegin(int64(e.Sequence), e.X, e.Y)
					}
				case touch.TypeMove:
					if v.onTouchMove != nil {
						v.onTouchMove(int64(e.Sequence), e.X, e.Y)
					}
				case touch.TypeEnd:
					if v.onTouchEnd != nil {
						v.onTouchEnd(int64(e.Sequence))
					}
				}
			case paint.Event:
				if v.onUpdate != nil {
					v.onUpdate()
				}
				a.Publish()
				// Request the next frame so the loop keeps ticking.
				a.Send(paint.Event{})
			}
		}
	})
}
