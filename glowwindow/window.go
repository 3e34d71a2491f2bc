package glowwindow

import (
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/Carmen-Shannon/glow/common"
	"github.com/Carmen-Shannon/glow/logging"
)

// Window is a top level window with an OpenGL context. Its events are sent to a
// WindowEventHandler while a MainLoop runs.
type Window interface {
	// Create opens the platform window and its context, makes the context current and
	// calls the handler's Initialize. The window stays hidden until Show.
	//
	// Parameters:
	//   - format: the requested context format, validated before use
	//   - title: the window title, the builder's title if empty
	//   - width: the client width in screen coordinates, the builder's width if 0
	//   - height: the client height in screen coordinates, the builder's height if 0
	//
	// Returns:
	//   - error: error if the window was already created or the context cannot be created
	Create(format ContextFormat, title string, width, height int) error

	// Destroy calls the handler's Finalize and releases the platform window. The window
	// can be created again afterwards.
	Destroy()

	// Show makes the window visible.
	Show()

	// Hide makes the window invisible. A hidden window keeps running.
	Hide()

	// Close asks the window to close. The handler receives a CloseEvent and may ignore it
	// to keep the window open.
	Close()

	// IsOpen reports whether the window was created and not yet closed.
	//
	// Returns:
	//   - bool: true while the window is open
	IsOpen() bool

	// Resize sets the client size in screen coordinates.
	//
	// Parameters:
	//   - width: the new width
	//   - height: the new height
	Resize(width, height int)

	// Width returns the client width in screen coordinates.
	//
	// Returns:
	//   - int: the width
	Width() int

	// Height returns the client height in screen coordinates.
	//
	// Returns:
	//   - int: the height
	Height() int

	// FramebufferSize returns the size of the default framebuffer in pixels. It differs
	// from Width and Height on high-DPI displays.
	//
	// Returns:
	//   - int: the width in pixels
	//   - int: the height in pixels
	FramebufferSize() (int, int)

	// ToggleFullScreen switches between windowed and full screen mode on the primary monitor.
	ToggleFullScreen()

	// IsFullScreen reports whether the window covers the primary monitor.
	//
	// Returns:
	//   - bool: true in full screen mode
	IsFullScreen() bool

	// Title returns the window title.
	//
	// Returns:
	//   - string: the title
	Title() string

	// SetTitle changes the window title.
	//
	// Parameters:
	//   - title: the new title
	SetTitle(title string)

	// SetEventHandler replaces the event handler. Set it before Create to receive Initialize.
	//
	// Parameters:
	//   - handler: the new handler, nil to drop events
	SetEventHandler(handler WindowEventHandler)

	// EventHandler returns the current event handler.
	//
	// Returns:
	//   - WindowEventHandler: the handler, nil if none was set
	EventHandler() WindowEventHandler

	// Repaint requests a PaintEvent followed by a buffer swap in the next loop iteration.
	// Several requests in one iteration paint once.
	Repaint()

	// AddTimer starts, or restarts, a timer that sends TimerEvents with the given id.
	//
	// Parameters:
	//   - id: the timer id passed back in TimerEvent.ID
	//   - interval: time between events, at least one millisecond
	//   - singleShot: if true the timer fires once and is removed
	AddTimer(id int, interval time.Duration, singleShot bool)

	// RemoveTimer stops the timer with the given id. Unknown ids are ignored.
	//
	// Parameters:
	//   - id: the timer id
	RemoveTimer(id int)

	// Context returns the OpenGL context, nil before Create.
	//
	// Returns:
	//   - Context: the context
	Context() Context

	// Quit closes every window and stops the running MainLoop with the given exit code.
	//
	// Parameters:
	//   - code: the code returned by MainLoop.Run
	Quit(code int)
}

// window implements Window. The platform specific state lives in internalWindow and is
// only touched by the platform* functions.
type window struct {
	title string

	width  int
	height int

	fbWidth  int
	fbHeight int

	minWidth  int
	minHeight int
	maxWidth  int
	maxHeight int

	fullScreen bool

	handler     WindowEventHandler
	timers      *timerManager
	repaint     bool
	initialized bool
	context     Context

	// internalWindow holds the platform window (glfwWindow).
	internalWindow any
}

var _ Window = &window{}

// NewWindow creates a window that is not yet open. Call Create to open it.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the window
func NewWindow(options ...WindowBuilderOption) Window {
	w := &window{
		title:  "glow",
		width:  1280,
		height: 720,
		timers: newTimerManager(nil),
	}
	for _, opt := range options {
		opt(w)
	}
	return w
}

func (w *window) Create(format ContextFormat, title string, width, height int) error {
	if w.internalWindow != nil {
		return errors.Errorf("window %q is already created", w.title)
	}
	format.Validate()

	w.title = common.Coalesce(title, w.title)
	w.width = common.Coalesce(width, w.width)
	w.height = common.Coalesce(height, w.height)

	if err := newPlatformWindow(w, format); err != nil {
		return errors.Wrapf(err, "create window %q", w.title)
	}
	registerWindow(w)

	log := logging.Component("glowwindow")
	log.Debug().
		Str("title", w.title).
		Int("width", w.width).
		Int("height", w.height).
		Str("format", format.String()).
		Msg("window created")

	w.initialize()
	return nil
}

func (w *window) initialize() {
	if w.initialized {
		return
	}
	w.initialized = true
	if w.handler != nil {
		w.handler.Initialize(w)
	}
	// a first resize lets handlers size their framebuffers without duplicating code
	w.dispatch(NewResizeEvent(w, ResizeEventType, w.width, w.height))
	w.dispatch(NewResizeEvent(w, FramebufferResizeEventType, w.fbWidth, w.fbHeight))
	w.repaint = true
}

func (w *window) finalize() {
	if !w.initialized {
		return
	}
	w.initialized = false
	if w.handler != nil {
		w.handler.Finalize(w)
	}
}

func (w *window) Destroy() {
	if w.internalWindow == nil {
		return
	}
	if w.context != nil {
		w.context.MakeCurrent()
	}
	w.finalize()
	unregisterWindow(w)
	platformDestroyWindow(w)
	w.internalWindow = nil
	w.context = nil
	w.fullScreen = false
}

func (w *window) Show() {
	platformShow(w)
}

func (w *window) Hide() {
	platformHide(w)
}

func (w *window) Close() {
	if !w.IsOpen() {
		return
	}
	if w.requestClose() {
		platformSetShouldClose(w, true)
	}
}

// requestClose sends a CloseEvent and reports whether the handler let the window close.
func (w *window) requestClose() bool {
	e := NewCloseEvent(w)
	w.dispatch(e)
	return e.IsAccepted()
}

func (w *window) IsOpen() bool {
	return w.internalWindow != nil && !platformShouldClose(w)
}

func (w *window) Resize(width, height int) {
	if w.internalWindow == nil {
		w.width, w.height = width, height
		return
	}
	platformResize(w, width, height)
}

func (w *window) Width() int {
	return w.width
}

func (w *window) Height() int {
	return w.height
}

func (w *window) FramebufferSize() (int, int) {
	return w.fbWidth, w.fbHeight
}

func (w *window) ToggleFullScreen() {
	if w.internalWindow == nil {
		return
	}
	platformSetFullScreen(w, !w.fullScreen)
}

func (w *window) IsFullScreen() bool {
	return w.fullScreen
}

func (w *window) Title() string {
	return w.title
}

func (w *window) SetTitle(title string) {
	w.title = title
	platformSetTitle(w, title)
}

func (w *window) SetEventHandler(handler WindowEventHandler) {
	if w.handler == handler {
		return
	}
	if w.initialized && w.handler != nil {
		w.handler.Finalize(w)
	}
	w.handler = handler
	if w.initialized && handler != nil {
		handler.Initialize(w)
	}
}

func (w *window) EventHandler() WindowEventHandler {
	return w.handler
}

func (w *window) Repaint() {
	w.repaint = true
	wakeMainLoop()
}

func (w *window) AddTimer(id int, interval time.Duration, singleShot bool) {
	w.timers.add(id, interval, singleShot)
	wakeMainLoop()
}

func (w *window) RemoveTimer(id int) {
	w.timers.remove(id)
}

func (w *window) Context() Context {
	return w.context
}

func (w *window) Quit(code int) {
	if quitMainLoop(code) {
		return
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	for other := range registry {
		platformSetShouldClose(other, true)
	}
}

// dispatch sends e to the handler with the window's context current.
func (w *window) dispatch(e Event) {
	if w.handler == nil {
		return
	}
	if w.context != nil {
		w.context.MakeCurrent()
	}
	dispatch(w.handler, e)
}

// processTimers sends a TimerEvent for every due timer.
func (w *window) processTimers() {
	for _, id := range w.timers.due() {
		w.dispatch(NewTimerEvent(w, id))
	}
}

func (w *window) untilNextTimer() (time.Duration, bool) {
	return w.timers.untilNext()
}

func (w *window) idle() {
	if w.handler == nil {
		return
	}
	if w.context != nil {
		w.context.MakeCurrent()
	}
	w.handler.Idle(w)
}

func (w *window) repaintRequested() bool {
	return w.repaint
}

// paint sends a PaintEvent and swaps buffers if a repaint was requested.
func (w *window) paint() {
	if !w.repaint {
		return
	}
	w.repaint = false
	w.dispatch(NewPaintEvent(w))
	if w.context != nil {
		w.context.SwapBuffers()
	}
}

// resized stores a new size reported by the platform and forwards it to the handler.
func (w *window) resized(width, height int) {
	w.width, w.height = width, height
	w.dispatch(NewResizeEvent(w, ResizeEventType, width, height))
}

func (w *window) framebufferResized(width, height int) {
	w.fbWidth, w.fbHeight = width, height
	w.dispatch(NewResizeEvent(w, FramebufferResizeEventType, width, height))
	w.repaint = true
}

// keyPressed forwards a key press. An ignored Escape press closes the window.
func (w *window) keyPressed(e *KeyEvent) {
	w.dispatch(e)
	if !e.IsAccepted() && !e.IsRepeat() && e.Key() == common.KeyEscape {
		w.Close()
	}
}

var (
	registryMu sync.Mutex
	registry   = make(map[*window]struct{})
)

func registerWindow(w *window) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[w] = struct{}{}
}

func unregisterWindow(w *window) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(registry, w)
}

// registeredWindows returns every created window that was not destroyed yet.
func registeredWindows() []loopWindow {
	registryMu.Lock()
	defer registryMu.Unlock()
	windows := make([]loopWindow, 0, len(registry))
	for w := range registry {
		windows = append(windows, w)
	}
	return windows
}
