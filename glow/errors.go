package glow

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/Carmen-Shannon/glow/gl"
)

var (
	// ErrShaderCompile is returned when a shader fails to compile.
	ErrShaderCompile = errors.New("shader compilation failed")

	// ErrProgramLink is returned when a program fails to link.
	ErrProgramLink = errors.New("program link failed")

	// ErrFramebufferIncomplete is returned when a framebuffer is not complete.
	ErrFramebufferIncomplete = errors.New("framebuffer incomplete")

	// ErrOutOfRange is returned when a data transfer exceeds the bounds of its target.
	ErrOutOfRange = errors.New("range out of bounds")

	// ErrBufferTooSmall is returned when client memory cannot hold the requested pixels.
	ErrBufferTooSmall = errors.New("destination too small")

	// ErrReleased is returned when an object is used after its last reference was dropped.
	ErrReleased = errors.New("object already released")
)

// Error is a native error code raised by the driver, tagged with the call site that observed it.
type Error struct {
	Code    gl.Enum
	Where   string
	Message string
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("glow: %s", e.CodeString())
	if e.Where != "" {
		msg += " in " + e.Where
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// CodeString returns the symbolic name of the error code.
func (e *Error) CodeString() string {
	return gl.ErrorString(e.Code)
}
