// Package native implements gl.API on top of the go-gl OpenGL 4.3 core bindings.
//
// go-gl reference: https://pkg.go.dev/github.com/go-gl/gl/v4.3-core/gl
package native

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.3-core/gl"

	glapi "github.com/Carmen-Shannon/glow/gl"
)

// Functions forwards every gl.API call to the driver through go-gl.
// It carries no state of its own besides the registered debug callback.
type Functions struct {
	debugCallback glapi.DebugCallback
}

var _ glapi.API = &Functions{}

// NewFunctions loads the OpenGL function pointers for the context that is current
// on the calling thread.
//
// Returns:
//   - *Functions: the function table
//   - error: error if the driver entry points could not be resolved
func NewFunctions() (*Functions, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL bindings: %v", err)
	}
	return &Functions{}, nil
}

func bytePtr(data []byte) unsafe.Pointer {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Pointer(&data[0])
}

func cstr(s string) *uint8 {
	if !strings.HasSuffix(s, "\x00") {
		s += "\x00"
	}
	return gl.Str(s)
}

func (f *Functions) GetError() glapi.Enum {
	return glapi.Enum(gl.GetError())
}

func (f *Functions) GetString(name glapi.Enum) string {
	p := gl.GetString(uint32(name))
	if p == nil {
		return ""
	}
	return gl.GoStr(p)
}

func (f *Functions) GetInteger(pname glapi.Enum) int32 {
	var v int32
	gl.GetIntegerv(uint32(pname), &v)
	return v
}

func (f *Functions) PixelStorei(pname glapi.Enum, param int32) {
	gl.PixelStorei(uint32(pname), param)
}

func (f *Functions) Enable(capability glapi.Enum) {
	gl.Enable(uint32(capability))
}

func (f *Functions) Disable(capability glapi.Enum) {
	gl.Disable(uint32(capability))
}

func (f *Functions) IsEnabled(capability glapi.Enum) bool {
	return gl.IsEnabled(uint32(capability))
}

func (f *Functions) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (f *Functions) CullFace(mode glapi.Enum) {
	gl.CullFace(uint32(mode))
}

func (f *Functions) FrontFace(mode glapi.Enum) {
	gl.FrontFace(uint32(mode))
}

func (f *Functions) BlendFunc(sfactor, dfactor glapi.Enum) {
	gl.BlendFunc(uint32(sfactor), uint32(dfactor))
}

func (f *Functions) DepthFunc(fn glapi.Enum) {
	gl.DepthFunc(uint32(fn))
}

func (f *Functions) DepthMask(flag bool) {
	gl.DepthMask(flag)
}

func (f *Functions) PointSize(size float32) {
	gl.PointSize(size)
}

func (f *Functions) LineWidth(width float32) {
	gl.LineWidth(width)
}

func (f *Functions) Clear(mask glapi.Enum) {
	gl.Clear(uint32(mask))
}

func (f *Functions) ClearColor(red, green, blue, alpha float32) {
	gl.ClearColor(red, green, blue, alpha)
}

func (f *Functions) ClearDepth(depth float64) {
	gl.ClearDepth(depth)
}

func (f *Functions) ColorMask(red, green, blue, alpha bool) {
	gl.ColorMask(red, green, blue, alpha)
}

func (f *Functions) ColorMaski(index uint32, red, green, blue, alpha bool) {
	gl.ColorMaski(index, red, green, blue, alpha)
}

func (f *Functions) GenBuffer() uint32 {
	var id uint32
	gl.GenBuffers(1, &id)
	return id
}

func (f *Functions) DeleteBuffer(id uint32) {
	gl.DeleteBuffers(1, &id)
}

func (f *Functions) BindBuffer(target glapi.Enum, id uint32) {
	gl.BindBuffer(uint32(target), id)
}

func (f *Functions) BindBufferBase(target glapi.Enum, index, id uint32) {
	gl.BindBufferBase(uint32(target), index, id)
}

func (f *Functions) BindBufferRange(target glapi.Enum, index, id uint32, offset, size int) {
	gl.BindBufferRange(uint32(target), index, id, offset, size)
}

func (f *Functions) BufferData(target glapi.Enum, size int, data []byte, usage glapi.Enum) {
	gl.BufferData(uint32(target), size, bytePtr(data), uint32(usage))
}

func (f *Functions) BufferSubData(target glapi.Enum, offset int, data []byte) {
	if len(data) == 0 {
		return
	}
	gl.BufferSubData(uint32(target), offset, len(data), bytePtr(data))
}

func (f *Functions) GetBufferSubData(target glapi.Enum, offset int, data []byte) {
	if len(data) == 0 {
		return
	}
	gl.GetBufferSubData(uint32(target), offset, len(data), bytePtr(data))
}

func (f *Functions) GetBufferParameteri(target, pname glapi.Enum) int32 {
	var v int32
	gl.GetBufferParameteriv(uint32(target), uint32(pname), &v)
	return v
}

func (f *Functions) CopyBufferSubData(readTarget, writeTarget glapi.Enum, readOffset, writeOffset, size int) {
	gl.CopyBufferSubData(uint32(readTarget), uint32(writeTarget), readOffset, writeOffset, size)
}

func (f *Functions) ClearBufferData(target, internalFormat, format, typ glapi.Enum, data []byte) {
	gl.ClearBufferData(uint32(target), uint32(internalFormat), uint32(format), uint32(typ), bytePtr(data))
}

func (f *Functions) CreateShader(typ glapi.Enum) uint32 {
	return gl.CreateShader(uint32(typ))
}

func (f *Functions) DeleteShader(id uint32) {
	gl.DeleteShader(id)
}

func (f *Functions) ShaderSource(id uint32, sources ...string) {
	if len(sources) == 0 {
		return
	}
	terminated := make([]string, len(sources))
	for i, s := range sources {
		terminated[i] = s + "\x00"
	}
	csources, free := gl.Strs(terminated...)
	defer free()
	gl.ShaderSource(id, int32(len(terminated)), csources, nil)
}

func (f *Functions) CompileShader(id uint32) {
	gl.CompileShader(id)
}

func (f *Functions) GetShaderi(id uint32, pname glapi.Enum) int32 {
	var v int32
	gl.GetShaderiv(id, uint32(pname), &v)
	return v
}

func (f *Functions) GetShaderInfoLog(id uint32) string {
	var length int32
	gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &length)
	if length <= 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(length+1))
	gl.GetShaderInfoLog(id, length, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (f *Functions) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (f *Functions) DeleteProgram(id uint32) {
	gl.DeleteProgram(id)
}

func (f *Functions) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (f *Functions) DetachShader(program, shader uint32) {
	gl.DetachShader(program, shader)
}

func (f *Functions) LinkProgram(id uint32) {
	gl.LinkProgram(id)
}

func (f *Functions) ValidateProgram(id uint32) {
	gl.ValidateProgram(id)
}

func (f *Functions) GetProgrami(id uint32, pname glapi.Enum) int32 {
	var v int32
	gl.GetProgramiv(id, uint32(pname), &v)
	return v
}

func (f *Functions) GetProgramInfoLog(id uint32) string {
	var length int32
	gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &length)
	if length <= 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(length+1))
	gl.GetProgramInfoLog(id, length, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (f *Functions) UseProgram(id uint32) {
	gl.UseProgram(id)
}

func (f *Functions) GetAttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, cstr(name))
}

func (f *Functions) BindAttribLocation(program, index uint32, name string) {
	gl.BindAttribLocation(program, index, cstr(name))
}

func (f *Functions) BindFragDataLocation(program, color uint32, name string) {
	gl.BindFragDataLocation(program, color, cstr(name))
}

func (f *Functions) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, cstr(name))
}

func (f *Functions) GetUniformBlockIndex(program uint32, name string) uint32 {
	return gl.GetUniformBlockIndex(program, cstr(name))
}

func (f *Functions) UniformBlockBinding(program, blockIndex, binding uint32) {
	gl.UniformBlockBinding(program, blockIndex, binding)
}

func (f *Functions) DispatchCompute(x, y, z uint32) {
	gl.DispatchCompute(x, y, z)
}

func (f *Functions) ProgramUniform1f(program uint32, location int32, v float32) {
	gl.ProgramUniform1f(program, location, v)
}

func (f *Functions) ProgramUniform1i(program uint32, location int32, v int32) {
	gl.ProgramUniform1i(program, location, v)
}

func (f *Functions) ProgramUniform1ui(program uint32, location int32, v uint32) {
	gl.ProgramUniform1ui(program, location, v)
}

func (f *Functions) ProgramUniform1fv(program uint32, location int32, v []float32) {
	if len(v) == 0 {
		return
	}
	gl.ProgramUniform1fv(program, location, int32(len(v)), &v[0])
}

func (f *Functions) ProgramUniform2fv(program uint32, location int32, v []float32) {
	if len(v) < 2 {
		return
	}
	gl.ProgramUniform2fv(program, location, int32(len(v)/2), &v[0])
}

func (f *Functions) ProgramUniform3fv(program uint32, location int32, v []float32) {
	if len(v) < 3 {
		return
	}
	gl.ProgramUniform3fv(program, location, int32(len(v)/3), &v[0])
}

func (f *Functions) ProgramUniform4fv(program uint32, location int32, v []float32) {
	if len(v) < 4 {
		return
	}
	gl.ProgramUniform4fv(program, location, int32(len(v)/4), &v[0])
}

func (f *Functions) ProgramUniform1iv(program uint32, location int32, v []int32) {
	if len(v) == 0 {
		return
	}
	gl.ProgramUniform1iv(program, location, int32(len(v)), &v[0])
}

func (f *Functions) ProgramUniformMatrix3fv(program uint32, location int32, transpose bool, v []float32) {
	if len(v) < 9 {
		return
	}
	gl.ProgramUniformMatrix3fv(program, location, int32(len(v)/9), transpose, &v[0])
}

func (f *Functions) ProgramUniformMatrix4fv(program uint32, location int32, transpose bool, v []float32) {
	if len(v) < 16 {
		return
	}
	gl.ProgramUniformMatrix4fv(program, location, int32(len(v)/16), transpose, &v[0])
}

func (f *Functions) GenVertexArray() uint32 {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return id
}

func (f *Functions) DeleteVertexArray(id uint32) {
	gl.DeleteVertexArrays(1, &id)
}

func (f *Functions) BindVertexArray(id uint32) {
	gl.BindVertexArray(id)
}

func (f *Functions) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (f *Functions) DisableVertexAttribArray(index uint32) {
	gl.DisableVertexAttribArray(index)
}

func (f *Functions) VertexAttribPointer(index uint32, size int32, typ glapi.Enum, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointer(index, size, uint32(typ), normalized, stride, gl.PtrOffset(offset))
}

func (f *Functions) VertexAttribIPointer(index uint32, size int32, typ glapi.Enum, stride int32, offset int) {
	gl.VertexAttribIPointer(index, size, uint32(typ), stride, gl.PtrOffset(offset))
}

func (f *Functions) VertexAttribLPointer(index uint32, size int32, typ glapi.Enum, stride int32, offset int) {
	gl.VertexAttribLPointer(index, size, uint32(typ), stride, gl.PtrOffset(offset))
}

func (f *Functions) VertexAttribDivisor(index, divisor uint32) {
	gl.VertexAttribDivisor(index, divisor)
}

func (f *Functions) DrawArrays(mode glapi.Enum, first, count int32) {
	gl.DrawArrays(uint32(mode), first, count)
}

func (f *Functions) DrawArraysInstanced(mode glapi.Enum, first, count, instances int32) {
	gl.DrawArraysInstanced(uint32(mode), first, count, instances)
}

func (f *Functions) DrawElements(mode glapi.Enum, count int32, typ glapi.Enum, offset int) {
	gl.DrawElements(uint32(mode), count, uint32(typ), gl.PtrOffset(offset))
}

func (f *Functions) DrawElementsInstanced(mode glapi.Enum, count int32, typ glapi.Enum, offset int, instances int32) {
	gl.DrawElementsInstanced(uint32(mode), count, uint32(typ), gl.PtrOffset(offset), instances)
}

func (f *Functions) GenFramebuffer() uint32 {
	var id uint32
	gl.GenFramebuffers(1, &id)
	return id
}

func (f *Functions) DeleteFramebuffer(id uint32) {
	gl.DeleteFramebuffers(1, &id)
}

func (f *Functions) BindFramebuffer(target glapi.Enum, id uint32) {
	gl.BindFramebuffer(uint32(target), id)
}

func (f *Functions) FramebufferParameteri(target, pname glapi.Enum, param int32) {
	gl.FramebufferParameteri(uint32(target), uint32(pname), param)
}

func (f *Functions) GetFramebufferAttachmentParameteri(target, attachment, pname glapi.Enum) int32 {
	var v int32
	gl.GetFramebufferAttachmentParameteriv(uint32(target), uint32(attachment), uint32(pname), &v)
	return v
}

func (f *Functions) FramebufferTexture(target, attachment glapi.Enum, texture uint32, level int32) {
	gl.FramebufferTexture(uint32(target), uint32(attachment), texture, level)
}

func (f *Functions) FramebufferTexture1D(target, attachment, texTarget glapi.Enum, texture uint32, level int32) {
	gl.FramebufferTexture1D(uint32(target), uint32(attachment), uint32(texTarget), texture, level)
}

func (f *Functions) FramebufferTexture2D(target, attachment, texTarget glapi.Enum, texture uint32, level int32) {
	gl.FramebufferTexture2D(uint32(target), uint32(attachment), uint32(texTarget), texture, level)
}

func (f *Functions) FramebufferTexture3D(target, attachment, texTarget glapi.Enum, texture uint32, level, layer int32) {
	gl.FramebufferTexture3D(uint32(target), uint32(attachment), uint32(texTarget), texture, level, layer)
}

func (f *Functions) FramebufferTextureLayer(target, attachment glapi.Enum, texture uint32, level, layer int32) {
	gl.FramebufferTextureLayer(uint32(target), uint32(attachment), texture, level, layer)
}

func (f *Functions) FramebufferRenderbuffer(target, attachment, rbTarget glapi.Enum, renderbuffer uint32) {
	gl.FramebufferRenderbuffer(uint32(target), uint32(attachment), uint32(rbTarget), renderbuffer)
}

func (f *Functions) CheckFramebufferStatus(target glapi.Enum) glapi.Enum {
	return glapi.Enum(gl.CheckFramebufferStatus(uint32(target)))
}

func (f *Functions) ReadBuffer(mode glapi.Enum) {
	gl.ReadBuffer(uint32(mode))
}

func (f *Functions) DrawBuffer(mode glapi.Enum) {
	gl.DrawBuffer(uint32(mode))
}

func (f *Functions) DrawBuffers(modes []glapi.Enum) {
	if len(modes) == 0 {
		return
	}
	bufs := make([]uint32, len(modes))
	for i, m := range modes {
		bufs[i] = uint32(m)
	}
	gl.DrawBuffers(int32(len(bufs)), &bufs[0])
}

func (f *Functions) ClearBufferiv(buffer glapi.Enum, drawBuffer int32, value []int32) {
	if len(value) == 0 {
		return
	}
	gl.ClearBufferiv(uint32(buffer), drawBuffer, &value[0])
}

func (f *Functions) ClearBufferuiv(buffer glapi.Enum, drawBuffer int32, value []uint32) {
	if len(value) == 0 {
		return
	}
	gl.ClearBufferuiv(uint32(buffer), drawBuffer, &value[0])
}

func (f *Functions) ClearBufferfv(buffer glapi.Enum, drawBuffer int32, value []float32) {
	if len(value) == 0 {
		return
	}
	gl.ClearBufferfv(uint32(buffer), drawBuffer, &value[0])
}

func (f *Functions) ClearBufferfi(buffer glapi.Enum, drawBuffer int32, depth float32, stencil int32) {
	gl.ClearBufferfi(uint32(buffer), drawBuffer, depth, stencil)
}

func (f *Functions) ReadPixels(x, y, width, height int32, format, typ glapi.Enum, dst []byte) {
	gl.ReadPixels(x, y, width, height, uint32(format), uint32(typ), bytePtr(dst))
}

func (f *Functions) ReadPixelsOffset(x, y, width, height int32, format, typ glapi.Enum, offset int) {
	gl.ReadPixels(x, y, width, height, uint32(format), uint32(typ), gl.PtrOffset(offset))
}

func (f *Functions) BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int32, mask, filter glapi.Enum) {
	gl.BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1, uint32(mask), uint32(filter))
}

func (f *Functions) GenRenderbuffer() uint32 {
	var id uint32
	gl.GenRenderbuffers(1, &id)
	return id
}

func (f *Functions) DeleteRenderbuffer(id uint32) {
	gl.DeleteRenderbuffers(1, &id)
}

func (f *Functions) BindRenderbuffer(target glapi.Enum, id uint32) {
	gl.BindRenderbuffer(uint32(target), id)
}

func (f *Functions) RenderbufferStorage(target, internalFormat glapi.Enum, width, height int32) {
	gl.RenderbufferStorage(uint32(target), uint32(internalFormat), width, height)
}

func (f *Functions) RenderbufferStorageMultisample(target glapi.Enum, samples int32, internalFormat glapi.Enum, width, height int32) {
	gl.RenderbufferStorageMultisample(uint32(target), samples, uint32(internalFormat), width, height)
}

func (f *Functions) GetRenderbufferParameteri(target, pname glapi.Enum) int32 {
	var v int32
	gl.GetRenderbufferParameteriv(uint32(target), uint32(pname), &v)
	return v
}

func (f *Functions) GenTexture() uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	return id
}

func (f *Functions) DeleteTexture(id uint32) {
	gl.DeleteTextures(1, &id)
}

func (f *Functions) BindTexture(target glapi.Enum, id uint32) {
	gl.BindTexture(uint32(target), id)
}

func (f *Functions) ActiveTexture(unit glapi.Enum) {
	gl.ActiveTexture(uint32(unit))
}

func (f *Functions) TexParameteri(target, pname glapi.Enum, param int32) {
	gl.TexParameteri(uint32(target), uint32(pname), param)
}

func (f *Functions) TexParameterf(target, pname glapi.Enum, param float32) {
	gl.TexParameterf(uint32(target), uint32(pname), param)
}

func (f *Functions) GetTexParameteri(target, pname glapi.Enum) int32 {
	var v int32
	gl.GetTexParameteriv(uint32(target), uint32(pname), &v)
	return v
}

func (f *Functions) GetTexLevelParameteri(target glapi.Enum, level int32, pname glapi.Enum) int32 {
	var v int32
	gl.GetTexLevelParameteriv(uint32(target), level, uint32(pname), &v)
	return v
}

func (f *Functions) TexImage1D(target glapi.Enum, level, internalFormat, width, border int32, format, typ glapi.Enum, data []byte) {
	gl.TexImage1D(uint32(target), level, internalFormat, width, border, uint32(format), uint32(typ), bytePtr(data))
}

func (f *Functions) TexImage2D(target glapi.Enum, level, internalFormat, width, height, border int32, format, typ glapi.Enum, data []byte) {
	gl.TexImage2D(uint32(target), level, internalFormat, width, height, border, uint32(format), uint32(typ), bytePtr(data))
}

func (f *Functions) TexImage3D(target glapi.Enum, level, internalFormat, width, height, depth, border int32, format, typ glapi.Enum, data []byte) {
	gl.TexImage3D(uint32(target), level, internalFormat, width, height, depth, border, uint32(format), uint32(typ), bytePtr(data))
}

func (f *Functions) TexSubImage2D(target glapi.Enum, level, xoffset, yoffset, width, height int32, format, typ glapi.Enum, data []byte) {
	gl.TexSubImage2D(uint32(target), level, xoffset, yoffset, width, height, uint32(format), uint32(typ), bytePtr(data))
}

func (f *Functions) TexStorage2D(target glapi.Enum, levels int32, internalFormat glapi.Enum, width, height int32) {
	gl.TexStorage2D(uint32(target), levels, uint32(internalFormat), width, height)
}

func (f *Functions) GenerateMipmap(target glapi.Enum) {
	gl.GenerateMipmap(uint32(target))
}

// DebugMessageCallback registers callback with the driver. The go-gl trampoline keeps
// a reference to the Go closure, so only one callback is active per context.
func (f *Functions) DebugMessageCallback(callback glapi.DebugCallback) {
	f.debugCallback = callback
	if callback == nil {
		gl.DebugMessageCallback(nil, nil)
		return
	}
	gl.DebugMessageCallback(func(source, gltype, id, severity uint32, length int32, message string, userParam unsafe.Pointer) {
		if f.debugCallback != nil {
			f.debugCallback(glapi.Enum(source), glapi.Enum(gltype), id, glapi.Enum(severity), message)
		}
	}, nil)
}

func (f *Functions) DebugMessageControl(source, typ, severity glapi.Enum, ids []uint32, enabled bool) {
	var idPtr *uint32
	if len(ids) > 0 {
		idPtr = &ids[0]
	}
	gl.DebugMessageControl(uint32(source), uint32(typ), uint32(severity), int32(len(ids)), idPtr, enabled)
}

func (f *Functions) DebugMessageInsert(source, typ glapi.Enum, id uint32, severity glapi.Enum, message string) {
	gl.DebugMessageInsert(uint32(source), uint32(typ), id, uint32(severity), int32(len(message)), cstr(message))
}
