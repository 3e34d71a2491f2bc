package gl

import "fmt"

var errorNames = map[Enum]string{
	NO_ERROR:                      "GL_NO_ERROR",
	INVALID_ENUM:                  "GL_INVALID_ENUM",
	INVALID_VALUE:                 "GL_INVALID_VALUE",
	INVALID_OPERATION:             "GL_INVALID_OPERATION",
	STACK_OVERFLOW:                "GL_STACK_OVERFLOW",
	STACK_UNDERFLOW:               "GL_STACK_UNDERFLOW",
	OUT_OF_MEMORY:                 "GL_OUT_OF_MEMORY",
	INVALID_FRAMEBUFFER_OPERATION: "GL_INVALID_FRAMEBUFFER_OPERATION",
}

var framebufferStatusNames = map[Enum]string{
	FRAMEBUFFER_COMPLETE:                      "GL_FRAMEBUFFER_COMPLETE",
	FRAMEBUFFER_INCOMPLETE_ATTACHMENT:         "GL_FRAMEBUFFER_INCOMPLETE_ATTACHMENT",
	FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT: "GL_FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT",
	FRAMEBUFFER_INCOMPLETE_DRAW_BUFFER:        "GL_FRAMEBUFFER_INCOMPLETE_DRAW_BUFFER",
	FRAMEBUFFER_INCOMPLETE_READ_BUFFER:        "GL_FRAMEBUFFER_INCOMPLETE_READ_BUFFER",
	FRAMEBUFFER_UNSUPPORTED:                   "GL_FRAMEBUFFER_UNSUPPORTED",
	FRAMEBUFFER_INCOMPLETE_MULTISAMPLE:        "GL_FRAMEBUFFER_INCOMPLETE_MULTISAMPLE",
	FRAMEBUFFER_INCOMPLETE_LAYER_TARGETS:      "GL_FRAMEBUFFER_INCOMPLETE_LAYER_TARGETS",
	FRAMEBUFFER_UNDEFINED:                     "GL_FRAMEBUFFER_UNDEFINED",
}

var shaderTypeNames = map[Enum]string{
	VERTEX_SHADER:          "GL_VERTEX_SHADER",
	FRAGMENT_SHADER:        "GL_FRAGMENT_SHADER",
	GEOMETRY_SHADER:        "GL_GEOMETRY_SHADER",
	TESS_CONTROL_SHADER:    "GL_TESS_CONTROL_SHADER",
	TESS_EVALUATION_SHADER: "GL_TESS_EVALUATION_SHADER",
	COMPUTE_SHADER:         "GL_COMPUTE_SHADER",
}

var bufferTargetNames = map[Enum]string{
	ARRAY_BUFFER:              "GL_ARRAY_BUFFER",
	ELEMENT_ARRAY_BUFFER:      "GL_ELEMENT_ARRAY_BUFFER",
	PIXEL_PACK_BUFFER:         "GL_PIXEL_PACK_BUFFER",
	PIXEL_UNPACK_BUFFER:       "GL_PIXEL_UNPACK_BUFFER",
	UNIFORM_BUFFER:            "GL_UNIFORM_BUFFER",
	TEXTURE_BUFFER:            "GL_TEXTURE_BUFFER",
	TRANSFORM_FEEDBACK_BUFFER: "GL_TRANSFORM_FEEDBACK_BUFFER",
	COPY_READ_BUFFER:          "GL_COPY_READ_BUFFER",
	COPY_WRITE_BUFFER:         "GL_COPY_WRITE_BUFFER",
	DRAW_INDIRECT_BUFFER:      "GL_DRAW_INDIRECT_BUFFER",
	DISPATCH_INDIRECT_BUFFER:  "GL_DISPATCH_INDIRECT_BUFFER",
	SHADER_STORAGE_BUFFER:     "GL_SHADER_STORAGE_BUFFER",
	ATOMIC_COUNTER_BUFFER:     "GL_ATOMIC_COUNTER_BUFFER",
}

var textureTargetNames = map[Enum]string{
	TEXTURE_1D:             "GL_TEXTURE_1D",
	TEXTURE_2D:             "GL_TEXTURE_2D",
	TEXTURE_3D:             "GL_TEXTURE_3D",
	TEXTURE_1D_ARRAY:       "GL_TEXTURE_1D_ARRAY",
	TEXTURE_2D_ARRAY:       "GL_TEXTURE_2D_ARRAY",
	TEXTURE_RECTANGLE:      "GL_TEXTURE_RECTANGLE",
	TEXTURE_CUBE_MAP:       "GL_TEXTURE_CUBE_MAP",
	TEXTURE_2D_MULTISAMPLE: "GL_TEXTURE_2D_MULTISAMPLE",
}

var debugSourceNames = map[Enum]string{
	DEBUG_SOURCE_API:             "API",
	DEBUG_SOURCE_WINDOW_SYSTEM:   "WindowSystem",
	DEBUG_SOURCE_SHADER_COMPILER: "ShaderCompiler",
	DEBUG_SOURCE_THIRD_PARTY:     "ThirdParty",
	DEBUG_SOURCE_APPLICATION:     "Application",
	DEBUG_SOURCE_OTHER:           "Other",
}

var debugTypeNames = map[Enum]string{
	DEBUG_TYPE_ERROR:               "Error",
	DEBUG_TYPE_DEPRECATED_BEHAVIOR: "DeprecatedBehavior",
	DEBUG_TYPE_UNDEFINED_BEHAVIOR:  "UndefinedBehavior",
	DEBUG_TYPE_PORTABILITY:         "Portability",
	DEBUG_TYPE_PERFORMANCE:         "Performance",
	DEBUG_TYPE_OTHER:               "Other",
	DEBUG_TYPE_MARKER:              "Marker",
	DEBUG_TYPE_PUSH_GROUP:          "PushGroup",
	DEBUG_TYPE_POP_GROUP:           "PopGroup",
}

var debugSeverityNames = map[Enum]string{
	DEBUG_SEVERITY_HIGH:         "High",
	DEBUG_SEVERITY_MEDIUM:       "Medium",
	DEBUG_SEVERITY_LOW:          "Low",
	DEBUG_SEVERITY_NOTIFICATION: "Notification",
}

func lookup(names map[Enum]string, e Enum) string {
	if s, ok := names[e]; ok {
		return s
	}
	return fmt.Sprintf("0x%04X", uint32(e))
}

// ErrorString returns the symbolic name of a GetError code.
func ErrorString(e Enum) string {
	return lookup(errorNames, e)
}

// FramebufferStatusString returns the symbolic name of a framebuffer completeness status.
func FramebufferStatusString(e Enum) string {
	return lookup(framebufferStatusNames, e)
}

// ShaderTypeString returns the symbolic name of a shader stage.
func ShaderTypeString(e Enum) string {
	return lookup(shaderTypeNames, e)
}

// BufferTargetString returns the symbolic name of a buffer binding target.
func BufferTargetString(e Enum) string {
	return lookup(bufferTargetNames, e)
}

// TextureTargetString returns the symbolic name of a texture target.
func TextureTargetString(e Enum) string {
	return lookup(textureTargetNames, e)
}

// AttachmentString returns the symbolic name of a framebuffer attachment point.
func AttachmentString(e Enum) string {
	switch {
	case e >= COLOR_ATTACHMENT0 && e <= COLOR_ATTACHMENT15:
		return fmt.Sprintf("GL_COLOR_ATTACHMENT%d", e-COLOR_ATTACHMENT0)
	case e == DEPTH_ATTACHMENT:
		return "GL_DEPTH_ATTACHMENT"
	case e == STENCIL_ATTACHMENT:
		return "GL_STENCIL_ATTACHMENT"
	case e == DEPTH_STENCIL_ATTACHMENT:
		return "GL_DEPTH_STENCIL_ATTACHMENT"
	}
	return fmt.Sprintf("0x%04X", uint32(e))
}

// DebugSourceString returns a short name for a debug message source.
func DebugSourceString(e Enum) string {
	return lookup(debugSourceNames, e)
}

// DebugTypeString returns a short name for a debug message type.
func DebugTypeString(e Enum) string {
	return lookup(debugTypeNames, e)
}

// DebugSeverityString returns a short name for a debug message severity.
func DebugSeverityString(e Enum) string {
	return lookup(debugSeverityNames, e)
}
