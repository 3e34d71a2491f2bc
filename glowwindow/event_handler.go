package glowwindow

// WindowEventHandler receives the events of a window. All methods run on the thread that
// runs the main loop, with the window's context current.
type WindowEventHandler interface {
	// Initialize is called once after the window and its context were created.
	//
	// Parameters:
	//   - w: the window
	Initialize(w Window)

	// Finalize is called once before the window and its context are destroyed.
	//
	// Parameters:
	//   - w: the window
	Finalize(w Window)

	// Idle is called once per main loop iteration.
	//
	// Parameters:
	//   - w: the window
	Idle(w Window)

	FramebufferResizeEvent(e *ResizeEvent)
	ResizeEvent(e *ResizeEvent)
	PaintEvent(e *PaintEvent)
	KeyPressEvent(e *KeyEvent)
	KeyReleaseEvent(e *KeyEvent)
	MousePressEvent(e *MouseEvent)
	MouseReleaseEvent(e *MouseEvent)
	MouseMoveEvent(e *MouseEvent)
	ScrollEvent(e *ScrollEvent)
	TimerEvent(e *TimerEvent)
	CloseEvent(e *CloseEvent)
}

// BaseEventHandler implements WindowEventHandler with no-op methods. Embed it to
// implement only the events you need.
type BaseEventHandler struct{}

var _ WindowEventHandler = BaseEventHandler{}

func (BaseEventHandler) Initialize(Window)                   {}
func (BaseEventHandler) Finalize(Window)                     {}
func (BaseEventHandler) Idle(Window)                         {}
func (BaseEventHandler) FramebufferResizeEvent(*ResizeEvent) {}
func (BaseEventHandler) ResizeEvent(*ResizeEvent)            {}
func (BaseEventHandler) PaintEvent(*PaintEvent)              {}
func (BaseEventHandler) KeyPressEvent(*KeyEvent)             {}
func (BaseEventHandler) KeyReleaseEvent(*KeyEvent)           {}
func (BaseEventHandler) MousePressEvent(*MouseEvent)         {}
func (BaseEventHandler) MouseReleaseEvent(*MouseEvent)       {}
func (BaseEventHandler) MouseMoveEvent(*MouseEvent)          {}
func (BaseEventHandler) ScrollEvent(*ScrollEvent)            {}
func (BaseEventHandler) TimerEvent(*TimerEvent)              {}
func (BaseEventHandler) CloseEvent(*CloseEvent)              {}

// dispatch sends e to the handler method for its type.
func dispatch(h WindowEventHandler, e Event) {
	if h == nil {
		return
	}
	switch ev := e.(type) {
	case *ResizeEvent:
		if ev.Type() == FramebufferResizeEventType {
			h.FramebufferResizeEvent(ev)
		} else {
			h.ResizeEvent(ev)
		}
	case *PaintEvent:
		h.PaintEvent(ev)
	case *KeyEvent:
		if ev.Type() == KeyReleaseEventType {
			h.KeyReleaseEvent(ev)
		} else {
			h.KeyPressEvent(ev)
		}
	case *MouseEvent:
		switch ev.Type() {
		case MousePressEventType:
			h.MousePressEvent(ev)
		case MouseReleaseEventType:
			h.MouseReleaseEvent(ev)
		default:
			h.MouseMoveEvent(ev)
		}
	case *ScrollEvent:
		h.ScrollEvent(ev)
	case *TimerEvent:
		h.TimerEvent(ev)
	case *CloseEvent:
		h.CloseEvent(ev)
	}
}
