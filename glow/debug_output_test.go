package glow

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/glow/gl"
	"github.com/Carmen-Shannon/glow/gl/gltest"
)

func collectDebugMessages(out DebugOutput) *[]DebugMessage {
	var got []DebugMessage
	out.SetCallback(func(m DebugMessage) { got = append(got, m) })
	return &got
}

func TestDebugOutputDeliversMessages(t *testing.T) {
	r := require.New(t)
	ctx, api := newTestContext(t)
	out := ctx.DebugOutput()

	got := collectDebugMessages(out)
	out.InsertMessage(DebugMessage{Source: gl.DEBUG_SOURCE_APPLICATION, Type: gl.DEBUG_TYPE_MARKER, ID: 1, Severity: gl.DEBUG_SEVERITY_NOTIFICATION, Message: "ignored"})
	r.Zero(api.CallCount("DebugMessageInsert"))

	out.Enable(true)
	r.True(out.IsEnabled())
	r.True(api.IsEnabled(gl.DEBUG_OUTPUT_SYNCHRONOUS))

	out.InsertMessage(DebugMessage{Source: gl.DEBUG_SOURCE_APPLICATION, Type: gl.DEBUG_TYPE_MARKER, ID: 1, Severity: gl.DEBUG_SEVERITY_NOTIFICATION, Message: "frame"})
	api.PushError(gl.INVALID_VALUE)
	r.Len(*got, 2)
	r.Equal("frame", (*got)[0].Message)
	r.False((*got)[0].IsError())
	r.True((*got)[1].IsError())
	r.Equal(uint32(gl.INVALID_VALUE), (*got)[1].ID)
	r.Equal("API", (*got)[1].SourceString())
	r.Equal("High", (*got)[1].SeverityString())

	var second int
	out.AddCallback(func(DebugMessage) { second++ })
	api.PushError(gl.INVALID_ENUM)
	r.Len(*got, 3)
	r.Equal(1, second)

	out.Disable()
	api.PushError(gl.INVALID_ENUM)
	r.Len(*got, 3)
}

func TestDebugOutputMessageControl(t *testing.T) {
	r := require.New(t)
	ctx, api := newTestContext(t)
	out := ctx.DebugOutput()
	got := collectDebugMessages(out)
	out.Enable(false)

	insert := func(id uint32, severity gl.Enum) {
		out.InsertMessage(DebugMessage{Source: gl.DEBUG_SOURCE_APPLICATION, Type: gl.DEBUG_TYPE_OTHER, ID: id, Severity: severity, Message: "m"})
	}

	out.DisableMessage(gl.DEBUG_SOURCE_APPLICATION, gl.DEBUG_TYPE_OTHER, 7)
	insert(7, gl.DEBUG_SEVERITY_MEDIUM)
	insert(8, gl.DEBUG_SEVERITY_MEDIUM)
	r.Len(*got, 1)
	r.Equal(uint32(8), (*got)[0].ID)

	out.EnableMessages(gl.DEBUG_SOURCE_APPLICATION, gl.DEBUG_TYPE_OTHER, []uint32{7})
	insert(7, gl.DEBUG_SEVERITY_MEDIUM)
	r.Len(*got, 2)

	insert(9, gl.DEBUG_SEVERITY_LOW)
	r.Len(*got, 2)
	out.ControlMessages(gl.DONT_CARE, gl.DONT_CARE, gl.DEBUG_SEVERITY_LOW, true)
	insert(9, gl.DEBUG_SEVERITY_LOW)
	r.Len(*got, 3)
	r.Zero(api.PendingErrors())
}

func TestDebugOutputDefaultHandlerPanicsOnErrors(t *testing.T) {
	r := require.New(t)
	ctx, api := newTestContext(t, WithPanicOnErrors(true))
	out := ctx.DebugOutput()
	out.Enable(true)

	r.NotPanics(func() {
		out.InsertMessage(DebugMessage{Source: gl.DEBUG_SOURCE_THIRD_PARTY, Type: gl.DEBUG_TYPE_PERFORMANCE, Severity: gl.DEBUG_SEVERITY_MEDIUM, Message: "slow path"})
	})
	r.PanicsWithError("glow: GL_INVALID_VALUE in debug output: GL_INVALID_VALUE error generated. injected", func() {
		api.PushError(gl.INVALID_VALUE)
	})

	out.SetCallback(func(DebugMessage) {})
	r.NotPanics(func() { api.PushError(gl.INVALID_VALUE) })
	out.SetCallback(nil)
	r.Panics(func() { api.PushError(gl.INVALID_OPERATION) })
}

func TestDebugOutputRequiresVersion43(t *testing.T) {
	r := require.New(t)
	api := gltest.New(gltest.WithVersion(3, 3))
	ctx := NewContext(api, WithLogger(zerolog.Nop()), WithPanicOnErrors(false))

	ctx.DebugOutput().Enable(true)
	r.False(ctx.DebugOutput().IsEnabled())
	r.Zero(api.CallCount("DebugMessageCallback"))
}

func TestDebugMessageString(t *testing.T) {
	m := DebugMessage{Source: gl.DEBUG_SOURCE_API, Type: gl.DEBUG_TYPE_ERROR, ID: 0x501, Severity: gl.DEBUG_SEVERITY_HIGH, Message: "bad value"}
	require.Equal(t, "[High] Error (API, id 0x501): bad value", m.String())

	err := m.asError()
	require.Equal(t, gl.INVALID_VALUE, err.Code)
	require.Equal(t, "glow: GL_INVALID_VALUE in debug output: bad value", err.Error())
}
