package glowwindow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/glow/common"
)

func TestDispatchRoutesEventsByType(t *testing.T) {
	h := &recordingHandler{}
	w := newTestWindow(h, newFakeClock())

	events := []Event{
		NewResizeEvent(w, ResizeEventType, 10, 20),
		NewResizeEvent(w, FramebufferResizeEventType, 20, 40),
		NewPaintEvent(w),
		NewKeyEvent(w, KeyPressEventType, common.KeyA, 38, ModShift, false),
		NewKeyEvent(w, KeyReleaseEventType, common.KeyA, 38, 0, false),
		NewMouseEvent(w, MousePressEventType, 1, 2, MouseButtonLeft, 0),
		NewMouseEvent(w, MouseReleaseEventType, 1, 2, MouseButtonLeft, 0),
		NewMouseEvent(w, MouseMoveEventType, 3, 4, MouseButtonNone, 0),
		NewScrollEvent(w, 0, 1, 3, 4),
		NewTimerEvent(w, 9),
		NewCloseEvent(w),
	}
	for _, e := range events {
		dispatch(h, e)
	}

	assert.Equal(t, []string{
		"Resize:10x20", "FramebufferResize:20x40", "Paint",
		"KeyPress:A", "KeyRelease:A",
		"MousePress", "MouseRelease", "MouseMove",
		"Scroll", "Timer:9", "Close",
	}, h.calls)

	// a nil handler drops events
	dispatch(nil, NewPaintEvent(w))
}

func TestEventAcceptance(t *testing.T) {
	r := require.New(t)
	w := newTestWindow(nil, newFakeClock())

	key := NewKeyEvent(w, KeyPressEventType, common.KeyEscape, 9, ModControl|ModAlt, true)
	r.False(key.IsAccepted())
	r.True(key.IsRepeat())
	r.Equal(ModControl|ModAlt, key.Modifiers())
	r.Equal(9, key.ScanCode())
	r.Same(w, key.Window())
	key.Accept()
	r.True(key.IsAccepted())

	closeEvent := NewCloseEvent(w)
	r.True(closeEvent.IsAccepted())
	closeEvent.Ignore()
	r.False(closeEvent.IsAccepted())

	mouse := NewMouseEvent(w, MouseMoveEventType, 1.5, 2.5, MouseButtonNone, 0)
	x, y := mouse.Pos()
	r.Equal(1.5, x)
	r.Equal(2.5, y)
	r.Equal(MouseMoveEventType, mouse.Type())

	scroll := NewScrollEvent(w, 0.5, -1, 10, 20)
	ox, oy := scroll.Offset()
	r.Equal(0.5, ox)
	r.Equal(-1.0, oy)
}

func TestEventTypeString(t *testing.T) {
	assert.Equal(t, "FramebufferResize", FramebufferResizeEventType.String())
	assert.Equal(t, "Unknown", EventType(99).String())
}
