package glowwindow

import (
	"runtime"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"

	"github.com/Carmen-Shannon/glow/common"
)

// glfwWindow holds the GLFW-specific window state.
type glfwWindow struct {
	parent *window
	window *glfw.Window

	// windowed geometry restored when leaving full screen mode
	windowedX, windowedY          int
	windowedWidth, windowedHeight int
}

// glfwInitialized tracks glfw.Init; GLFW is terminated again when the last window is destroyed.
var glfwInitialized bool

func initGLFW() error {
	if glfwInitialized {
		return nil
	}
	if err := glfw.Init(); err != nil {
		return errors.Wrap(err, "failed to initialize GLFW")
	}
	glfwInitialized = true
	return nil
}

// newPlatformWindow creates the GLFW window and its context, registers the input callbacks
// and stores it as the internal window.
//
// GLFW reference: https://www.glfw.org/docs/latest/window_guide.html
// go-gl/glfw: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw
func newPlatformWindow(w *window, format ContextFormat) error {
	// GLFW and the context must stay on the thread that created them.
	runtime.LockOSThread()

	if err := initGLFW(); err != nil {
		return err
	}
	applyContextHints(format)

	win, err := glfw.CreateWindow(w.width, w.height, w.title, nil, nil)
	if err != nil {
		if len(registeredWindows()) == 0 {
			glfw.Terminate()
			glfwInitialized = false
		}
		return errors.Wrap(err, "failed to create GLFW window")
	}

	gw := &glfwWindow{parent: w, window: win}
	w.internalWindow = gw

	ctx := &glfwContext{window: win, format: format}
	w.context = ctx
	ctx.MakeCurrent()
	if err := ctx.SetSwapInterval(format.SwapInterval); err != nil {
		_ = ctx.SetSwapInterval(VerticalSyncronization)
	}

	win.SetSizeLimits(
		glfwLimit(w.minWidth), glfwLimit(w.minHeight),
		glfwLimit(w.maxWidth), glfwLimit(w.maxHeight),
	)

	// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetKeyCallback
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		switch action {
		case glfw.Press, glfw.Repeat:
			w.keyPressed(NewKeyEvent(w, KeyPressEventType, common.Key(key), scancode, ModifierKey(mods), action == glfw.Repeat))
		case glfw.Release:
			w.dispatch(NewKeyEvent(w, KeyReleaseEventType, common.Key(key), scancode, ModifierKey(mods), false))
		}
	})

	// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetMouseButtonCallback
	win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		x, y := win.GetCursorPos()
		typ := MousePressEventType
		if action == glfw.Release {
			typ = MouseReleaseEventType
		}
		w.dispatch(NewMouseEvent(w, typ, x, y, MouseButton(button), ModifierKey(mods)))
	})

	// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetCursorPosCallback
	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		w.dispatch(NewMouseEvent(w, MouseMoveEventType, x, y, MouseButtonNone, currentModifiers(win)))
	})

	// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetScrollCallback
	win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		x, y := win.GetCursorPos()
		w.dispatch(NewScrollEvent(w, xoff, yoff, x, y))
	})

	win.SetSizeCallback(func(_ *glfw.Window, width, height int) {
		w.resized(width, height)
	})

	// On high-DPI displays (e.g., macOS Retina), framebuffer size differs from window size.
	// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetFramebufferSizeCallback
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.framebufferResized(width, height)
	})

	win.SetRefreshCallback(func(_ *glfw.Window) {
		w.repaint = true
	})

	// GLFW already set the close flag; clearing it keeps the window open.
	win.SetCloseCallback(func(_ *glfw.Window) {
		if !w.requestClose() {
			win.SetShouldClose(false)
		}
	})

	w.width, w.height = win.GetSize()
	w.fbWidth, w.fbHeight = win.GetFramebufferSize()
	return nil
}

// glfwLimit maps an unset size limit to glfw.DontCare.
func glfwLimit(v int) int {
	if v <= 0 {
		return glfw.DontCare
	}
	return v
}

func currentModifiers(win *glfw.Window) ModifierKey {
	var mods ModifierKey
	pressed := func(keys ...glfw.Key) bool {
		for _, k := range keys {
			if win.GetKey(k) == glfw.Press {
				return true
			}
		}
		return false
	}
	if pressed(glfw.KeyLeftShift, glfw.KeyRightShift) {
		mods |= ModShift
	}
	if pressed(glfw.KeyLeftControl, glfw.KeyRightControl) {
		mods |= ModControl
	}
	if pressed(glfw.KeyLeftAlt, glfw.KeyRightAlt) {
		mods |= ModAlt
	}
	if pressed(glfw.KeyLeftSuper, glfw.KeyRightSuper) {
		mods |= ModSuper
	}
	return mods
}

func internalGLFW(w *window) *glfwWindow {
	if w.internalWindow == nil {
		return nil
	}
	return w.internalWindow.(*glfwWindow)
}

// platformDestroyWindow destroys the GLFW window and terminates GLFW after the last one.
func platformDestroyWindow(w *window) {
	gw := internalGLFW(w)
	if gw == nil {
		return
	}
	gw.window.Destroy()
	if len(registeredWindows()) == 0 && glfwInitialized {
		glfw.Terminate()
		glfwInitialized = false
	}
}

func platformShow(w *window) {
	if gw := internalGLFW(w); gw != nil {
		gw.window.Show()
	}
}

func platformHide(w *window) {
	if gw := internalGLFW(w); gw != nil {
		gw.window.Hide()
	}
}

func platformSetShouldClose(w *window, shouldClose bool) {
	if gw := internalGLFW(w); gw != nil {
		gw.window.SetShouldClose(shouldClose)
	}
}

func platformShouldClose(w *window) bool {
	gw := internalGLFW(w)
	return gw == nil || gw.window.ShouldClose()
}

func platformResize(w *window, width, height int) {
	if gw := internalGLFW(w); gw != nil {
		gw.window.SetSize(width, height)
	}
}

func platformSetTitle(w *window, title string) {
	if gw := internalGLFW(w); gw != nil {
		gw.window.SetTitle(title)
	}
}

// platformSetFullScreen moves the window onto the primary monitor at its current video
// mode, or back to the geometry it had before.
//
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetMonitor
func platformSetFullScreen(w *window, fullScreen bool) {
	gw := internalGLFW(w)
	if gw == nil || w.fullScreen == fullScreen {
		return
	}
	if fullScreen {
		monitor := glfw.GetPrimaryMonitor()
		if monitor == nil {
			return
		}
		gw.windowedX, gw.windowedY = gw.window.GetPos()
		gw.windowedWidth, gw.windowedHeight = gw.window.GetSize()
		mode := monitor.GetVideoMode()
		gw.window.SetMonitor(monitor, 0, 0, mode.Width, mode.Height, mode.RefreshRate)
	} else {
		gw.window.SetMonitor(nil, gw.windowedX, gw.windowedY, gw.windowedWidth, gw.windowedHeight, glfw.DontCare)
	}
	w.fullScreen = fullScreen
	w.repaint = true
}

// glfwPump implements eventPump on the GLFW event queue.
type glfwPump struct{}

func (glfwPump) poll() {
	if glfwInitialized {
		glfw.PollEvents()
	}
}

func (glfwPump) wait(timeout time.Duration) {
	if !glfwInitialized {
		time.Sleep(timeout)
		return
	}
	if timeout < 0 {
		glfw.WaitEvents()
		return
	}
	glfw.WaitEventsTimeout(timeout.Seconds())
}

func (glfwPump) wake() {
	if glfwInitialized {
		glfw.PostEmptyEvent()
	}
}
