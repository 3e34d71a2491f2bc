package glow

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Carmen-Shannon/glow/gl"
)

// DebugMessage is one message produced by, or inserted into, the debug output.
type DebugMessage struct {
	Source   gl.Enum
	Type     gl.Enum
	ID       uint32
	Severity gl.Enum
	Message  string
}

// SourceString returns a short name for the message source.
func (m DebugMessage) SourceString() string {
	return gl.DebugSourceString(m.Source)
}

// TypeString returns a short name for the message type.
func (m DebugMessage) TypeString() string {
	return gl.DebugTypeString(m.Type)
}

// SeverityString returns a short name for the message severity.
func (m DebugMessage) SeverityString() string {
	return gl.DebugSeverityString(m.Severity)
}

// IsError reports whether the message describes an API error.
func (m DebugMessage) IsError() bool {
	return m.Type == gl.DEBUG_TYPE_ERROR
}

func (m DebugMessage) String() string {
	return fmt.Sprintf("[%s] %s (%s, id 0x%X): %s", m.SeverityString(), m.TypeString(), m.SourceString(), m.ID, m.Message)
}

func (m DebugMessage) MarshalZerologObject(e *zerolog.Event) {
	e.Str("source", m.SourceString()).
		Str("type", m.TypeString()).
		Uint32("id", m.ID).
		Str("severity", m.SeverityString()).
		Str("message", m.Message)
}

// asError converts an error message into an *Error. Drivers commonly use the error code as the id.
func (m DebugMessage) asError() *Error {
	code := gl.INVALID_OPERATION
	if id := gl.Enum(m.ID); id >= gl.INVALID_ENUM && id <= gl.INVALID_FRAMEBUFFER_OPERATION {
		code = id
	}
	return &Error{Code: code, Where: "debug output", Message: m.Message}
}
