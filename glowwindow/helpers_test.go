package glowwindow

import (
	"fmt"
	"time"
)

type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

// recordingHandler records every call as "Method" or "Method:detail".
type recordingHandler struct {
	BaseEventHandler
	calls       []string
	acceptKeys  bool
	ignoreClose bool
}

func (h *recordingHandler) Initialize(Window) { h.calls = append(h.calls, "Initialize") }
func (h *recordingHandler) Finalize(Window)   { h.calls = append(h.calls, "Finalize") }
func (h *recordingHandler) Idle(Window)       { h.calls = append(h.calls, "Idle") }

func (h *recordingHandler) FramebufferResizeEvent(e *ResizeEvent) {
	h.calls = append(h.calls, fmt.Sprintf("FramebufferResize:%dx%d", e.Width(), e.Height()))
}

func (h *recordingHandler) ResizeEvent(e *ResizeEvent) {
	h.calls = append(h.calls, fmt.Sprintf("Resize:%dx%d", e.Width(), e.Height()))
}

func (h *recordingHandler) PaintEvent(*PaintEvent) { h.calls = append(h.calls, "Paint") }

func (h *recordingHandler) KeyPressEvent(e *KeyEvent) {
	h.calls = append(h.calls, "KeyPress:"+e.Key().String())
	if h.acceptKeys {
		e.Accept()
	}
}

func (h *recordingHandler) KeyReleaseEvent(e *KeyEvent) {
	h.calls = append(h.calls, "KeyRelease:"+e.Key().String())
}

func (h *recordingHandler) MousePressEvent(*MouseEvent)   { h.calls = append(h.calls, "MousePress") }
func (h *recordingHandler) MouseReleaseEvent(*MouseEvent) { h.calls = append(h.calls, "MouseRelease") }
func (h *recordingHandler) MouseMoveEvent(*MouseEvent)    { h.calls = append(h.calls, "MouseMove") }
func (h *recordingHandler) ScrollEvent(*ScrollEvent)      { h.calls = append(h.calls, "Scroll") }

func (h *recordingHandler) TimerEvent(e *TimerEvent) {
	h.calls = append(h.calls, fmt.Sprintf("Timer:%d", e.ID()))
}

func (h *recordingHandler) CloseEvent(e *CloseEvent) {
	h.calls = append(h.calls, "Close")
	if h.ignoreClose {
		e.Ignore()
	}
}

func (h *recordingHandler) reset() {
	h.calls = nil
}

// newTestWindow returns a window that was never created on a platform, driven by clock.
func newTestWindow(h WindowEventHandler, clock *fakeClock) *window {
	w := NewWindow(WithEventHandler(h), WithTitle("test"), WithSize(320, 240)).(*window)
	w.timers = newTimerManager(clock.now)
	return w
}
