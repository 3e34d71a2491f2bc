package glowwindow

import (
	"github.com/Carmen-Shannon/glow/common"
)

// EventType identifies the kind of an Event.
type EventType int

const (
	ResizeEventType EventType = iota
	FramebufferResizeEventType
	PaintEventType
	KeyPressEventType
	KeyReleaseEventType
	MousePressEventType
	MouseReleaseEventType
	MouseMoveEventType
	ScrollEventType
	TimerEventType
	CloseEventType
)

var eventTypeNames = map[EventType]string{
	ResizeEventType:            "Resize",
	FramebufferResizeEventType: "FramebufferResize",
	PaintEventType:             "Paint",
	KeyPressEventType:          "KeyPress",
	KeyReleaseEventType:        "KeyRelease",
	MousePressEventType:        "MousePress",
	MouseReleaseEventType:      "MouseRelease",
	MouseMoveEventType:         "MouseMove",
	ScrollEventType:            "Scroll",
	TimerEventType:             "Timer",
	CloseEventType:             "Close",
}

func (t EventType) String() string {
	if s, ok := eventTypeNames[t]; ok {
		return s
	}
	return "Unknown"
}

// ModifierKey is a bit set of held modifier keys. Values match GLFW.
type ModifierKey int

const (
	ModShift   ModifierKey = 0x0001
	ModControl ModifierKey = 0x0002
	ModAlt     ModifierKey = 0x0004
	ModSuper   ModifierKey = 0x0008
)

// MouseButton identifies a mouse button. Values match GLFW.
type MouseButton int

const (
	// MouseButtonNone is the button of a MouseMoveEventType event.
	MouseButtonNone   MouseButton = -1
	MouseButtonLeft   MouseButton = 0
	MouseButtonRight  MouseButton = 1
	MouseButtonMiddle MouseButton = 2
)

// Event is something that happened to a window. Handlers Accept events they consumed;
// for some events the window falls back to a default action when the event is ignored.
type Event interface {
	// Type returns the event kind.
	//
	// Returns:
	//   - EventType: the kind
	Type() EventType

	// Window returns the window the event was sent to.
	//
	// Returns:
	//   - Window: the window
	Window() Window

	// Accept marks the event as handled.
	Accept()

	// Ignore marks the event as not handled.
	Ignore()

	// IsAccepted reports whether the event was accepted.
	//
	// Returns:
	//   - bool: true if accepted
	IsAccepted() bool
}

// baseEvent implements the shared part of Event.
type baseEvent struct {
	typ      EventType
	window   Window
	accepted bool
}

func (e *baseEvent) Type() EventType {
	return e.typ
}

func (e *baseEvent) Window() Window {
	return e.window
}

func (e *baseEvent) Accept() {
	e.accepted = true
}

func (e *baseEvent) Ignore() {
	e.accepted = false
}

func (e *baseEvent) IsAccepted() bool {
	return e.accepted
}

// ResizeEvent reports a new window size in screen coordinates, or with
// FramebufferResizeEventType a new framebuffer size in pixels.
type ResizeEvent struct {
	baseEvent
	width  int
	height int
}

// NewResizeEvent creates a resize event of type ResizeEventType or FramebufferResizeEventType.
func NewResizeEvent(w Window, typ EventType, width, height int) *ResizeEvent {
	return &ResizeEvent{baseEvent: baseEvent{typ: typ, window: w}, width: width, height: height}
}

func (e *ResizeEvent) Width() int {
	return e.width
}

func (e *ResizeEvent) Height() int {
	return e.height
}

// PaintEvent asks the handler to render a frame.
type PaintEvent struct {
	baseEvent
}

// NewPaintEvent creates a paint event.
func NewPaintEvent(w Window) *PaintEvent {
	return &PaintEvent{baseEvent{typ: PaintEventType, window: w}}
}

// KeyEvent reports a key press, repeat or release.
type KeyEvent struct {
	baseEvent
	key       common.Key
	scanCode  int
	modifiers ModifierKey
	repeat    bool
}

// NewKeyEvent creates a key event of type KeyPressEventType or KeyReleaseEventType.
func NewKeyEvent(w Window, typ EventType, key common.Key, scanCode int, modifiers ModifierKey, repeat bool) *KeyEvent {
	return &KeyEvent{
		baseEvent: baseEvent{typ: typ, window: w},
		key:       key,
		scanCode:  scanCode,
		modifiers: modifiers,
		repeat:    repeat,
	}
}

func (e *KeyEvent) Key() common.Key {
	return e.key
}

func (e *KeyEvent) ScanCode() int {
	return e.scanCode
}

func (e *KeyEvent) Modifiers() ModifierKey {
	return e.modifiers
}

// IsRepeat reports whether the press was generated by holding the key.
func (e *KeyEvent) IsRepeat() bool {
	return e.repeat
}

// MouseEvent reports a button press or release, or cursor movement.
type MouseEvent struct {
	baseEvent
	x, y      float64
	button    MouseButton
	modifiers ModifierKey
}

// NewMouseEvent creates a mouse event of type MousePressEventType, MouseReleaseEventType
// or MouseMoveEventType. The position is in screen coordinates from the top left.
func NewMouseEvent(w Window, typ EventType, x, y float64, button MouseButton, modifiers ModifierKey) *MouseEvent {
	return &MouseEvent{
		baseEvent: baseEvent{typ: typ, window: w},
		x:         x,
		y:         y,
		button:    button,
		modifiers: modifiers,
	}
}

func (e *MouseEvent) Pos() (x, y float64) {
	return e.x, e.y
}

func (e *MouseEvent) Button() MouseButton {
	return e.button
}

func (e *MouseEvent) Modifiers() ModifierKey {
	return e.modifiers
}

// ScrollEvent reports wheel or touchpad scrolling at the cursor position.
type ScrollEvent struct {
	baseEvent
	offsetX, offsetY float64
	x, y             float64
}

// NewScrollEvent creates a scroll event.
func NewScrollEvent(w Window, offsetX, offsetY, x, y float64) *ScrollEvent {
	return &ScrollEvent{
		baseEvent: baseEvent{typ: ScrollEventType, window: w},
		offsetX:   offsetX,
		offsetY:   offsetY,
		x:         x,
		y:         y,
	}
}

func (e *ScrollEvent) Offset() (x, y float64) {
	return e.offsetX, e.offsetY
}

func (e *ScrollEvent) Pos() (x, y float64) {
	return e.x, e.y
}

// TimerEvent reports that a timer added with Window.AddTimer elapsed.
type TimerEvent struct {
	baseEvent
	id int
}

// NewTimerEvent creates a timer event.
func NewTimerEvent(w Window, id int) *TimerEvent {
	return &TimerEvent{baseEvent: baseEvent{typ: TimerEventType, window: w}, id: id}
}

func (e *TimerEvent) ID() int {
	return e.id
}

// CloseEvent reports that the user asked to close the window. Ignoring it keeps the
// window open; it starts out accepted.
type CloseEvent struct {
	baseEvent
}

// NewCloseEvent creates an accepted close event.
func NewCloseEvent(w Window) *CloseEvent {
	return &CloseEvent{baseEvent{typ: CloseEventType, window: w, accepted: true}}
}
