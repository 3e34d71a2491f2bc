package glow

import (
	"fmt"

	"github.com/Carmen-Shannon/glow/gl"
)

// Usage describes how a buffer's data store is written and read.
// Full docs: https://registry.khronos.org/OpenGL-Refpages/gl4/html/glBufferData.xhtml
type Usage int

const (
	UsageUnknown Usage = iota

	// Set once, used many times.
	UsageStaticDraw
	// Changed often, used many times.
	UsageDynamicDraw
	// Set once, used at most a few times.
	UsageStreamDraw

	UsageStaticRead
	UsageDynamicRead
	UsageStreamRead

	UsageStaticCopy
	UsageDynamicCopy
	UsageStreamCopy
)

// GL returns the native usage hint. UsageUnknown maps to STATIC_DRAW.
func (u Usage) GL() gl.Enum {
	switch u {
	case UsageDynamicDraw:
		return gl.DYNAMIC_DRAW
	case UsageStreamDraw:
		return gl.STREAM_DRAW
	case UsageStaticRead:
		return gl.STATIC_READ
	case UsageDynamicRead:
		return gl.DYNAMIC_READ
	case UsageStreamRead:
		return gl.STREAM_READ
	case UsageStaticCopy:
		return gl.STATIC_COPY
	case UsageDynamicCopy:
		return gl.DYNAMIC_COPY
	case UsageStreamCopy:
		return gl.STREAM_COPY
	}
	return gl.STATIC_DRAW
}

func (u Usage) String() string {
	switch u {
	case UsageStaticDraw:
		return "StaticDraw"
	case UsageDynamicDraw:
		return "DynamicDraw"
	case UsageStreamDraw:
		return "StreamDraw"
	case UsageStaticRead:
		return "StaticRead"
	case UsageDynamicRead:
		return "DynamicRead"
	case UsageStreamRead:
		return "StreamRead"
	case UsageStaticCopy:
		return "StaticCopy"
	case UsageDynamicCopy:
		return "DynamicCopy"
	case UsageStreamCopy:
		return "StreamCopy"
	}
	return fmt.Sprintf("Usage(%d)", int(u))
}

// UsageFromGL maps a native usage hint back to a Usage.
func UsageFromGL(e gl.Enum) Usage {
	for u := UsageStaticDraw; u <= UsageStreamCopy; u++ {
		if u.GL() == e {
			return u
		}
	}
	return UsageUnknown
}
