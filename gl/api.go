// Package gl defines the native OpenGL surface that glow forwards to.
//
// The package is pure Go: it holds the enumerant table and the API interface. A
// cgo implementation backed by a real driver lives in gl/native, and an
// in-memory implementation for tests lives in gl/gltest.
package gl

// DebugCallback receives messages produced by the driver's debug output.
type DebugCallback func(source, typ Enum, id uint32, severity Enum, message string)

// API is the table of native functions used by the wrapped objects.
// All methods must be called on the thread that owns the current context.
//
// Data transfers use byte slices; a nil slice means "no client data" where the
// native function accepts a null pointer (e.g. allocating storage only).
// Offsets into bound buffers are passed as plain integers.
type API interface {
	GetError() Enum
	GetString(name Enum) string
	GetInteger(pname Enum) int32
	PixelStorei(pname Enum, param int32)

	Enable(capability Enum)
	Disable(capability Enum)
	IsEnabled(capability Enum) bool
	Viewport(x, y, width, height int32)
	CullFace(mode Enum)
	FrontFace(mode Enum)
	BlendFunc(sfactor, dfactor Enum)
	DepthFunc(fn Enum)
	DepthMask(flag bool)
	PointSize(size float32)
	LineWidth(width float32)

	Clear(mask Enum)
	ClearColor(red, green, blue, alpha float32)
	ClearDepth(depth float64)
	ColorMask(red, green, blue, alpha bool)
	ColorMaski(index uint32, red, green, blue, alpha bool)

	GenBuffer() uint32
	DeleteBuffer(id uint32)
	BindBuffer(target Enum, id uint32)
	BindBufferBase(target Enum, index, id uint32)
	BindBufferRange(target Enum, index, id uint32, offset, size int)
	BufferData(target Enum, size int, data []byte, usage Enum)
	BufferSubData(target Enum, offset int, data []byte)
	GetBufferSubData(target Enum, offset int, data []byte)
	GetBufferParameteri(target, pname Enum) int32
	CopyBufferSubData(readTarget, writeTarget Enum, readOffset, writeOffset, size int)
	ClearBufferData(target, internalFormat, format, typ Enum, data []byte)

	CreateShader(typ Enum) uint32
	DeleteShader(id uint32)
	ShaderSource(id uint32, sources ...string)
	CompileShader(id uint32)
	GetShaderi(id uint32, pname Enum) int32
	GetShaderInfoLog(id uint32) string

	CreateProgram() uint32
	DeleteProgram(id uint32)
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(id uint32)
	ValidateProgram(id uint32)
	GetProgrami(id uint32, pname Enum) int32
	GetProgramInfoLog(id uint32) string
	UseProgram(id uint32)
	GetAttribLocation(program uint32, name string) int32
	BindAttribLocation(program, index uint32, name string)
	BindFragDataLocation(program, color uint32, name string)
	GetUniformLocation(program uint32, name string) int32
	GetUniformBlockIndex(program uint32, name string) uint32
	UniformBlockBinding(program, blockIndex, binding uint32)
	DispatchCompute(x, y, z uint32)

	ProgramUniform1f(program uint32, location int32, v float32)
	ProgramUniform1i(program uint32, location int32, v int32)
	ProgramUniform1ui(program uint32, location int32, v uint32)
	ProgramUniform1fv(program uint32, location int32, v []float32)
	ProgramUniform2fv(program uint32, location int32, v []float32)
	ProgramUniform3fv(program uint32, location int32, v []float32)
	ProgramUniform4fv(program uint32, location int32, v []float32)
	ProgramUniform1iv(program uint32, location int32, v []int32)
	ProgramUniformMatrix3fv(program uint32, location int32, transpose bool, v []float32)
	ProgramUniformMatrix4fv(program uint32, location int32, transpose bool, v []float32)

	GenVertexArray() uint32
	DeleteVertexArray(id uint32)
	BindVertexArray(id uint32)
	EnableVertexAttribArray(index uint32)
	DisableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int32, typ Enum, normalized bool, stride int32, offset int)
	VertexAttribIPointer(index uint32, size int32, typ Enum, stride int32, offset int)
	VertexAttribLPointer(index uint32, size int32, typ Enum, stride int32, offset int)
	VertexAttribDivisor(index, divisor uint32)

	DrawArrays(mode Enum, first, count int32)
	DrawArraysInstanced(mode Enum, first, count, instances int32)
	DrawElements(mode Enum, count int32, typ Enum, offset int)
	DrawElementsInstanced(mode Enum, count int32, typ Enum, offset int, instances int32)

	GenFramebuffer() uint32
	DeleteFramebuffer(id uint32)
	BindFramebuffer(target Enum, id uint32)
	FramebufferParameteri(target, pname Enum, param int32)
	GetFramebufferAttachmentParameteri(target, attachment, pname Enum) int32
	FramebufferTexture(target, attachment Enum, texture uint32, level int32)
	FramebufferTexture1D(target, attachment, texTarget Enum, texture uint32, level int32)
	FramebufferTexture2D(target, attachment, texTarget Enum, texture uint32, level int32)
	FramebufferTexture3D(target, attachment, texTarget Enum, texture uint32, level, layer int32)
	FramebufferTextureLayer(target, attachment Enum, texture uint32, level, layer int32)
	FramebufferRenderbuffer(target, attachment, rbTarget Enum, renderbuffer uint32)
	CheckFramebufferStatus(target Enum) Enum
	ReadBuffer(mode Enum)
	DrawBuffer(mode Enum)
	DrawBuffers(modes []Enum)
	ClearBufferiv(buffer Enum, drawBuffer int32, value []int32)
	ClearBufferuiv(buffer Enum, drawBuffer int32, value []uint32)
	ClearBufferfv(buffer Enum, drawBuffer int32, value []float32)
	ClearBufferfi(buffer Enum, drawBuffer int32, depth float32, stencil int32)
	ReadPixels(x, y, width, height int32, format, typ Enum, dst []byte)
	ReadPixelsOffset(x, y, width, height int32, format, typ Enum, offset int)
	BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int32, mask, filter Enum)

	GenRenderbuffer() uint32
	DeleteRenderbuffer(id uint32)
	BindRenderbuffer(target Enum, id uint32)
	RenderbufferStorage(target, internalFormat Enum, width, height int32)
	RenderbufferStorageMultisample(target Enum, samples int32, internalFormat Enum, width, height int32)
	GetRenderbufferParameteri(target, pname Enum) int32

	GenTexture() uint32
	DeleteTexture(id uint32)
	BindTexture(target Enum, id uint32)
	ActiveTexture(unit Enum)
	TexParameteri(target, pname Enum, param int32)
	TexParameterf(target, pname Enum, param float32)
	GetTexParameteri(target, pname Enum) int32
	GetTexLevelParameteri(target Enum, level int32, pname Enum) int32
	TexImage1D(target Enum, level, internalFormat, width, border int32, format, typ Enum, data []byte)
	TexImage2D(target Enum, level, internalFormat, width, height, border int32, format, typ Enum, data []byte)
	TexImage3D(target Enum, level, internalFormat, width, height, depth, border int32, format, typ Enum, data []byte)
	TexSubImage2D(target Enum, level, xoffset, yoffset, width, height int32, format, typ Enum, data []byte)
	TexStorage2D(target Enum, levels int32, internalFormat Enum, width, height int32)
	GenerateMipmap(target Enum)

	DebugMessageCallback(callback DebugCallback)
	DebugMessageControl(source, typ, severity Enum, ids []uint32, enabled bool)
	DebugMessageInsert(source, typ Enum, id uint32, severity Enum, message string)
}
