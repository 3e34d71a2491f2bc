package glow

import (
	"github.com/Carmen-Shannon/glow/gl"
)

// DebugMessageCallback receives messages from the debug output.
type DebugMessageCallback func(m DebugMessage)

// DebugOutput controls the debug message output of a context. Without user callbacks,
// messages are logged; error messages additionally panic when the context panics on errors.
type DebugOutput interface {
	// Enable turns on debug output and installs the message handler.
	//
	// Parameters:
	//   - synchronous: if true, messages are delivered on the thread issuing the offending call
	Enable(synchronous bool)

	// Disable turns off debug output.
	Disable()

	// IsEnabled reports whether debug output is on.
	//
	// Returns:
	//   - bool: true if enabled
	IsEnabled() bool

	// SetSynchronous toggles synchronous delivery.
	//
	// Parameters:
	//   - synchronous: if true, messages are delivered synchronously
	SetSynchronous(synchronous bool)

	// SetCallback replaces every registered callback (and the default handler) with cb.
	// A nil callback restores the default handler.
	//
	// Parameters:
	//   - cb: the callback
	SetCallback(cb DebugMessageCallback)

	// AddCallback adds cb after the registered callbacks. The default handler is
	// replaced once any callback is registered.
	//
	// Parameters:
	//   - cb: the callback
	AddCallback(cb DebugMessageCallback)

	// InsertMessage injects an application message into the debug output.
	//
	// Parameters:
	//   - m: the message; Source should be DEBUG_SOURCE_APPLICATION or DEBUG_SOURCE_THIRD_PARTY
	InsertMessage(m DebugMessage)

	// EnableMessage enables one message id of the given source and type.
	EnableMessage(source, typ gl.Enum, id uint32)

	// EnableMessages enables a set of message ids of the given source and type.
	EnableMessages(source, typ gl.Enum, ids []uint32)

	// DisableMessage disables one message id of the given source and type.
	DisableMessage(source, typ gl.Enum, id uint32)

	// DisableMessages disables a set of message ids of the given source and type.
	DisableMessages(source, typ gl.Enum, ids []uint32)

	// ControlMessages enables or disables every message matching the filter.
	// DONT_CARE matches anything.
	//
	// Parameters:
	//   - source: the message source, or DONT_CARE
	//   - typ: the message type, or DONT_CARE
	//   - severity: the message severity, or DONT_CARE
	//   - enabled: whether matching messages are delivered
	ControlMessages(source, typ, severity gl.Enum, enabled bool)
}

// debugOutput implements DebugOutput for one context.
type debugOutput struct {
	ctx        *glowContext
	enabled    bool
	registered bool
	callbacks  []DebugMessageCallback
}

var _ DebugOutput = &debugOutput{}

func newDebugOutput(ctx *glowContext) *debugOutput {
	return &debugOutput{ctx: ctx}
}

func (d *debugOutput) Enable(synchronous bool) {
	api := d.ctx.api
	if !d.ctx.version.AtLeast(4, 3) {
		d.ctx.Logger().Warn().Str("version", d.ctx.version.String()).Msg("debug output requires a 4.3 context")
		return
	}
	if !d.registered {
		api.DebugMessageCallback(d.dispatch)
		d.registered = true
	}
	api.Enable(gl.DEBUG_OUTPUT)
	d.SetSynchronous(synchronous)
	d.enabled = true
}

func (d *debugOutput) Disable() {
	d.ctx.api.Disable(gl.DEBUG_OUTPUT)
	d.enabled = false
}

func (d *debugOutput) IsEnabled() bool {
	return d.enabled
}

func (d *debugOutput) SetSynchronous(synchronous bool) {
	if synchronous {
		d.ctx.api.Enable(gl.DEBUG_OUTPUT_SYNCHRONOUS)
	} else {
		d.ctx.api.Disable(gl.DEBUG_OUTPUT_SYNCHRONOUS)
	}
}

func (d *debugOutput) SetCallback(cb DebugMessageCallback) {
	d.callbacks = nil
	if cb != nil {
		d.callbacks = append(d.callbacks, cb)
	}
}

func (d *debugOutput) AddCallback(cb DebugMessageCallback) {
	if cb != nil {
		d.callbacks = append(d.callbacks, cb)
	}
}

func (d *debugOutput) InsertMessage(m DebugMessage) {
	if !d.enabled {
		return
	}
	d.ctx.api.DebugMessageInsert(m.Source, m.Type, m.ID, m.Severity, m.Message)
}

func (d *debugOutput) EnableMessage(source, typ gl.Enum, id uint32) {
	d.EnableMessages(source, typ, []uint32{id})
}

func (d *debugOutput) EnableMessages(source, typ gl.Enum, ids []uint32) {
	d.ctx.api.DebugMessageControl(source, typ, gl.DONT_CARE, ids, true)
}

func (d *debugOutput) DisableMessage(source, typ gl.Enum, id uint32) {
	d.DisableMessages(source, typ, []uint32{id})
}

func (d *debugOutput) DisableMessages(source, typ gl.Enum, ids []uint32) {
	d.ctx.api.DebugMessageControl(source, typ, gl.DONT_CARE, ids, false)
}

func (d *debugOutput) ControlMessages(source, typ, severity gl.Enum, enabled bool) {
	d.ctx.api.DebugMessageControl(source, typ, severity, nil, enabled)
}

// dispatch is registered with the driver and fans a message out to the callbacks.
func (d *debugOutput) dispatch(source, typ gl.Enum, id uint32, severity gl.Enum, message string) {
	m := DebugMessage{Source: source, Type: typ, ID: id, Severity: severity, Message: message}
	if len(d.callbacks) == 0 {
		d.defaultHandler(m)
		return
	}
	for _, cb := range d.callbacks {
		cb(m)
	}
}

func (d *debugOutput) defaultHandler(m DebugMessage) {
	log := d.ctx.Logger()
	switch {
	case m.IsError():
		log.Error().EmbedObject(m).Msg("debug message")
		if d.ctx.panics {
			panic(m.asError())
		}
	case m.Severity == gl.DEBUG_SEVERITY_HIGH || m.Severity == gl.DEBUG_SEVERITY_MEDIUM:
		log.Warn().EmbedObject(m).Msg("debug message")
	case m.Severity == gl.DEBUG_SEVERITY_NOTIFICATION:
		log.Debug().EmbedObject(m).Msg("debug message")
	default:
		log.Info().EmbedObject(m).Msg("debug message")
	}
}
