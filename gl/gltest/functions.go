package gltest

import (
	"encoding/binary"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/Carmen-Shannon/glow/gl"
)

var (
	uniformPattern = regexp.MustCompile(`(?m)^\s*(?:layout\s*\([^)]*\)\s*)?uniform\s+\w+\s+(\w+)\s*(?:\[\s*(\d+)\s*\])?\s*;`)
	blockPattern   = regexp.MustCompile(`(?m)^\s*(?:layout\s*\([^)]*\)\s*)?uniform\s+(\w+)\s*\{`)
	attribPattern  = regexp.MustCompile(`(?m)^\s*(?:layout\s*\(\s*location\s*=\s*(\d+)\s*\)\s*)?in\s+\w+\s+(\w+)\s*;`)
	errorPattern   = regexp.MustCompile(`(?m)^\s*#error\s*(.*)$`)
)

func (f *Functions) GetError() gl.Enum {
	f.record("GetError")
	if len(f.errors) == 0 {
		return gl.NO_ERROR
	}
	e := f.errors[0]
	f.errors = f.errors[1:]
	return e
}

func (f *Functions) GetString(name gl.Enum) string {
	f.record("GetString", name)
	switch name {
	case gl.VENDOR:
		return "glow"
	case gl.RENDERER:
		return "gltest"
	case gl.VERSION:
		return fmt.Sprintf("%d.%d.0 gltest", f.major, f.minor)
	case gl.SHADING_LANGUAGE_VERSION:
		return fmt.Sprintf("%d.%d0", f.major, f.minor)
	}
	f.fail(gl.INVALID_ENUM, "GetString(0x%04X)", uint32(name))
	return ""
}

func (f *Functions) GetInteger(pname gl.Enum) int32 {
	f.record("GetInteger", pname)
	switch pname {
	case gl.MAJOR_VERSION:
		return f.major
	case gl.MINOR_VERSION:
		return f.minor
	case gl.NUM_EXTENSIONS:
		return 0
	case gl.CONTEXT_FLAGS:
		if f.debugContext {
			return gl.CONTEXT_FLAG_DEBUG_BIT
		}
		return 0
	case gl.CONTEXT_PROFILE_MASK:
		if f.core {
			return gl.CONTEXT_CORE_PROFILE_BIT
		}
		return gl.CONTEXT_COMPATIBILITY_PROFILE_BIT
	case gl.MAX_COLOR_ATTACHMENTS, gl.MAX_DRAW_BUFFERS:
		return 8
	case gl.MAX_TEXTURE_SIZE:
		return 16384
	case gl.MAX_VERTEX_ATTRIBS:
		return 16
	case gl.MAX_COMBINED_TEXTURE_IMAGE_UNITS:
		return 32
	case gl.ARRAY_BUFFER_BINDING:
		return int32(f.bindings[gl.ARRAY_BUFFER])
	case gl.ELEMENT_ARRAY_BUFFER_BINDING:
		return int32(f.vertexArrays[f.currentVAO].element)
	case gl.CURRENT_PROGRAM:
		return int32(f.currentProgram)
	case gl.VERTEX_ARRAY_BINDING:
		return int32(f.currentVAO)
	case gl.DRAW_FRAMEBUFFER_BINDING:
		return int32(f.bindings[gl.DRAW_FRAMEBUFFER])
	case gl.READ_FRAMEBUFFER_BINDING:
		return int32(f.bindings[gl.READ_FRAMEBUFFER])
	case gl.RENDERBUFFER_BINDING:
		return int32(f.bindings[gl.RENDERBUFFER])
	case gl.TEXTURE_BINDING_2D:
		return int32(f.textureUnits[f.activeUnit][gl.TEXTURE_2D])
	case gl.TEXTURE_BINDING_CUBE_MAP:
		return int32(f.textureUnits[f.activeUnit][gl.TEXTURE_CUBE_MAP])
	case gl.ACTIVE_TEXTURE:
		return int32(f.activeUnit)
	case gl.PACK_ALIGNMENT, gl.UNPACK_ALIGNMENT:
		return f.pixelStore[pname]
	}
	f.fail(gl.INVALID_ENUM, "GetInteger(0x%04X)", uint32(pname))
	return 0
}

func (f *Functions) PixelStorei(pname gl.Enum, param int32) {
	f.record("PixelStorei", pname, param)
	switch param {
	case 1, 2, 4, 8:
		f.pixelStore[pname] = param
	default:
		f.fail(gl.INVALID_VALUE, "alignment %d", param)
	}
}

func (f *Functions) Enable(capability gl.Enum) {
	f.record("Enable", capability)
	f.capabilities[capability] = true
}

func (f *Functions) Disable(capability gl.Enum) {
	f.record("Disable", capability)
	f.capabilities[capability] = false
}

func (f *Functions) IsEnabled(capability gl.Enum) bool {
	f.record("IsEnabled", capability)
	return f.capabilities[capability]
}

func (f *Functions) Viewport(x, y, width, height int32) {
	f.record("Viewport", x, y, width, height)
	if width < 0 || height < 0 {
		f.fail(gl.INVALID_VALUE, "negative viewport size")
		return
	}
	f.viewport = [4]int32{x, y, width, height}
}

func (f *Functions) CullFace(mode gl.Enum) {
	f.record("CullFace", mode)
	f.cullFace = mode
}

func (f *Functions) FrontFace(mode gl.Enum) {
	f.record("FrontFace", mode)
	f.frontFace = mode
}

func (f *Functions) BlendFunc(sfactor, dfactor gl.Enum) {
	f.record("BlendFunc", sfactor, dfactor)
	f.blendFunc = [2]gl.Enum{sfactor, dfactor}
}

func (f *Functions) DepthFunc(fn gl.Enum) {
	f.record("DepthFunc", fn)
	f.depthFunc = fn
}

func (f *Functions) DepthMask(flag bool) {
	f.record("DepthMask", flag)
	f.depthMask = flag
}

func (f *Functions) PointSize(size float32) {
	f.record("PointSize", size)
	if size <= 0 {
		f.fail(gl.INVALID_VALUE, "point size %v", size)
		return
	}
	f.pointSize = size
}

func (f *Functions) LineWidth(width float32) {
	f.record("LineWidth", width)
	if width <= 0 {
		f.fail(gl.INVALID_VALUE, "line width %v", width)
		return
	}
	f.lineWidth = width
}

func (f *Functions) Clear(mask gl.Enum) {
	f.record("Clear", mask)
	if mask&gl.COLOR_BUFFER_BIT != 0 {
		fb := f.framebuffers[f.bindings[gl.DRAW_FRAMEBUFFER]]
		for _, b := range fb.drawBuffers {
			if b != gl.NONE {
				fb.colors[b] = f.clearColor
			}
		}
	}
}

func (f *Functions) ClearColor(red, green, blue, alpha float32) {
	f.record("ClearColor", red, green, blue, alpha)
	f.clearColor = [4]float32{red, green, blue, alpha}
}

func (f *Functions) ClearDepth(depth float64) {
	f.record("ClearDepth", depth)
	f.clearDepth = depth
}

func (f *Functions) ColorMask(red, green, blue, alpha bool) {
	f.record("ColorMask", red, green, blue, alpha)
	f.colorMask = [4]bool{red, green, blue, alpha}
}

func (f *Functions) ColorMaski(index uint32, red, green, blue, alpha bool) {
	f.record("ColorMaski", index, red, green, blue, alpha)
	if index >= 8 {
		f.fail(gl.INVALID_VALUE, "draw buffer index %d", index)
	}
}

func (f *Functions) GenBuffer() uint32 {
	id := f.alloc(KindBuffer)
	f.record("GenBuffer", id)
	f.buffers[id] = &buffer{usage: gl.STATIC_DRAW}
	return id
}

func (f *Functions) DeleteBuffer(id uint32) {
	f.record("DeleteBuffer", id)
	if id == 0 {
		return
	}
	delete(f.buffers, id)
	for target, bound := range f.bindings {
		if bound == id && target != gl.DRAW_FRAMEBUFFER && target != gl.READ_FRAMEBUFFER && target != gl.RENDERBUFFER {
			f.bindings[target] = 0
		}
	}
	for _, v := range f.vertexArrays {
		if v.element == id {
			v.element = 0
		}
	}
}

func (f *Functions) BindBuffer(target gl.Enum, id uint32) {
	f.record("BindBuffer", target, id)
	if _, ok := f.buffers[id]; id != 0 && !ok {
		f.fail(gl.INVALID_OPERATION, "buffer %d does not exist", id)
		return
	}
	if target == gl.ELEMENT_ARRAY_BUFFER {
		f.vertexArrays[f.currentVAO].element = id
		return
	}
	f.bindings[target] = id
}

func (f *Functions) bindIndexed(target gl.Enum, index, id uint32) bool {
	if _, ok := f.buffers[id]; id != 0 && !ok {
		f.fail(gl.INVALID_OPERATION, "buffer %d does not exist", id)
		return false
	}
	if f.indexedBindings[target] == nil {
		f.indexedBindings[target] = make(map[uint32]uint32)
	}
	f.indexedBindings[target][index] = id
	f.bindings[target] = id
	return true
}

func (f *Functions) BindBufferBase(target gl.Enum, index, id uint32) {
	f.record("BindBufferBase", target, index, id)
	f.bindIndexed(target, index, id)
}

func (f *Functions) BindBufferRange(target gl.Enum, index, id uint32, offset, size int) {
	f.record("BindBufferRange", target, index, id, offset, size)
	if size <= 0 || offset < 0 {
		f.fail(gl.INVALID_VALUE, "range %d+%d", offset, size)
		return
	}
	f.bindIndexed(target, index, id)
}

func (f *Functions) boundBuffer(target gl.Enum) *buffer {
	id := f.Binding(target)
	if id == 0 {
		f.fail(gl.INVALID_OPERATION, "no buffer bound to 0x%04X", uint32(target))
		return nil
	}
	return f.buffers[id]
}

func (f *Functions) BufferData(target gl.Enum, size int, data []byte, usage gl.Enum) {
	f.record("BufferData", target, size, usage)
	if size < 0 {
		f.fail(gl.INVALID_VALUE, "negative buffer size")
		return
	}
	b := f.boundBuffer(target)
	if b == nil {
		return
	}
	b.data = make([]byte, size)
	copy(b.data, data)
	b.usage = usage
}

func (f *Functions) BufferSubData(target gl.Enum, offset int, data []byte) {
	f.record("BufferSubData", target, offset, len(data))
	b := f.boundBuffer(target)
	if b == nil {
		return
	}
	if offset < 0 || offset+len(data) > len(b.data) {
		f.fail(gl.INVALID_VALUE, "range %d+%d exceeds buffer size %d", offset, len(data), len(b.data))
		return
	}
	copy(b.data[offset:], data)
}

func (f *Functions) GetBufferSubData(target gl.Enum, offset int, data []byte) {
	f.record("GetBufferSubData", target, offset, len(data))
	b := f.boundBuffer(target)
	if b == nil {
		return
	}
	if offset < 0 || offset+len(data) > len(b.data) {
		f.fail(gl.INVALID_VALUE, "range %d+%d exceeds buffer size %d", offset, len(data), len(b.data))
		return
	}
	copy(data, b.data[offset:])
}

func (f *Functions) GetBufferParameteri(target, pname gl.Enum) int32 {
	f.record("GetBufferParameteri", target, pname)
	b := f.boundBuffer(target)
	if b == nil {
		return 0
	}
	switch pname {
	case gl.BUFFER_SIZE:
		return int32(len(b.data))
	case gl.BUFFER_USAGE:
		return int32(b.usage)
	case gl.BUFFER_MAPPED:
		return gl.FALSE
	}
	f.fail(gl.INVALID_ENUM, "buffer parameter 0x%04X", uint32(pname))
	return 0
}

func (f *Functions) CopyBufferSubData(readTarget, writeTarget gl.Enum, readOffset, writeOffset, size int) {
	f.record("CopyBufferSubData", readTarget, writeTarget, readOffset, writeOffset, size)
	src := f.boundBuffer(readTarget)
	dst := f.boundBuffer(writeTarget)
	if src == nil || dst == nil {
		return
	}
	if readOffset < 0 || writeOffset < 0 || size < 0 || readOffset+size > len(src.data) || writeOffset+size > len(dst.data) {
		f.fail(gl.INVALID_VALUE, "copy range out of bounds")
		return
	}
	copy(dst.data[writeOffset:writeOffset+size], src.data[readOffset:readOffset+size])
}

func (f *Functions) ClearBufferData(target, internalFormat, format, typ gl.Enum, data []byte) {
	f.record("ClearBufferData", target, internalFormat, format, typ)
	b := f.boundBuffer(target)
	if b == nil {
		return
	}
	if len(data) == 0 {
		for i := range b.data {
			b.data[i] = 0
		}
		return
	}
	for i := range b.data {
		b.data[i] = data[i%len(data)]
	}
}

func (f *Functions) CreateShader(typ gl.Enum) uint32 {
	switch typ {
	case gl.VERTEX_SHADER, gl.FRAGMENT_SHADER, gl.GEOMETRY_SHADER, gl.TESS_CONTROL_SHADER, gl.TESS_EVALUATION_SHADER, gl.COMPUTE_SHADER:
	default:
		f.record("CreateShader", typ)
		f.fail(gl.INVALID_ENUM, "shader type 0x%04X", uint32(typ))
		return 0
	}
	id := f.alloc(KindShader)
	f.record("CreateShader", typ, id)
	f.shaders[id] = &shader{typ: typ}
	return id
}

func (f *Functions) DeleteShader(id uint32) {
	f.record("DeleteShader", id)
	delete(f.shaders, id)
}

func (f *Functions) shader(id uint32) *shader {
	s, ok := f.shaders[id]
	if !ok {
		f.fail(gl.INVALID_VALUE, "shader %d does not exist", id)
		return nil
	}
	return s
}

func (f *Functions) ShaderSource(id uint32, sources ...string) {
	f.record("ShaderSource", id, len(sources))
	if s := f.shader(id); s != nil {
		s.sources = append([]string(nil), sources...)
	}
}

func (f *Functions) CompileShader(id uint32) {
	f.record("CompileShader", id)
	s := f.shader(id)
	if s == nil {
		return
	}
	source := strings.Join(s.sources, "")
	switch {
	case strings.TrimSpace(source) == "":
		s.compiled = false
		s.log = "0:0(0): error: empty shader source\n"
	case errorPattern.MatchString(source):
		m := errorPattern.FindStringSubmatch(source)
		s.compiled = false
		s.log = fmt.Sprintf("0:1(1): error: %s\n", strings.TrimSpace(m[1]))
	default:
		s.compiled = true
		s.log = ""
	}
}

func (f *Functions) GetShaderi(id uint32, pname gl.Enum) int32 {
	f.record("GetShaderi", id, pname)
	s := f.shader(id)
	if s == nil {
		return 0
	}
	switch pname {
	case gl.SHADER_TYPE:
		return int32(s.typ)
	case gl.COMPILE_STATUS:
		return boolInt(s.compiled)
	case gl.DELETE_STATUS:
		return gl.FALSE
	case gl.INFO_LOG_LENGTH:
		if s.log == "" {
			return 0
		}
		return int32(len(s.log) + 1)
	case gl.SHADER_SOURCE_LENGTH:
		n := 0
		for _, src := range s.sources {
			n += len(src)
		}
		if n == 0 {
			return 0
		}
		return int32(n + 1)
	}
	f.fail(gl.INVALID_ENUM, "shader parameter 0x%04X", uint32(pname))
	return 0
}

func (f *Functions) GetShaderInfoLog(id uint32) string {
	f.record("GetShaderInfoLog", id)
	if s := f.shader(id); s != nil {
		return s.log
	}
	return ""
}

func (f *Functions) CreateProgram() uint32 {
	id := f.alloc(KindProgram)
	f.record("CreateProgram", id)
	f.programs[id] = &program{
		uniforms:      make(map[string]int32),
		blocks:        make(map[string]uint32),
		blockBindings: make(map[uint32]uint32),
		attribs:       make(map[string]int32),
		boundAttribs:  make(map[string]uint32),
		fragData:      make(map[string]uint32),
		values:        make(map[int32]any),
	}
	return id
}

func (f *Functions) DeleteProgram(id uint32) {
	f.record("DeleteProgram", id)
	delete(f.programs, id)
	if f.currentProgram == id {
		f.currentProgram = 0
	}
}

func (f *Functions) program(id uint32) *program {
	p, ok := f.programs[id]
	if !ok {
		f.fail(gl.INVALID_VALUE, "program %d does not exist", id)
		return nil
	}
	return p
}

func (f *Functions) AttachShader(programID, shaderID uint32) {
	f.record("AttachShader", programID, shaderID)
	p := f.program(programID)
	if p == nil || f.shader(shaderID) == nil {
		return
	}
	for _, s := range p.shaders {
		if s == shaderID {
			f.fail(gl.INVALID_OPERATION, "shader %d already attached to program %d", shaderID, programID)
			return
		}
	}
	p.shaders = append(p.shaders, shaderID)
}

func (f *Functions) DetachShader(programID, shaderID uint32) {
	f.record("DetachShader", programID, shaderID)
	p := f.program(programID)
	if p == nil {
		return
	}
	for i, s := range p.shaders {
		if s == shaderID {
			p.shaders = append(p.shaders[:i], p.shaders[i+1:]...)
			return
		}
	}
	f.fail(gl.INVALID_OPERATION, "shader %d not attached to program %d", shaderID, programID)
}

func (f *Functions) LinkProgram(id uint32) {
	f.record("LinkProgram", id)
	p := f.program(id)
	if p == nil {
		return
	}
	p.linked = false
	p.uniforms = make(map[string]int32)
	p.blocks = make(map[string]uint32)
	p.attribs = make(map[string]int32)
	p.values = make(map[int32]any)
	if len(p.shaders) == 0 {
		p.log = "error: no shaders attached\n"
		return
	}
	var uniformLoc int32
	var blockIndex uint32
	used := make(map[int32]bool)
	var pending []string
	for _, sid := range p.shaders {
		s, ok := f.shaders[sid]
		if !ok || !s.compiled {
			p.log = fmt.Sprintf("error: shader %d is not compiled\n", sid)
			return
		}
		source := strings.Join(s.sources, "")
		for _, m := range uniformPattern.FindAllStringSubmatch(source, -1) {
			if _, ok := p.uniforms[m[1]]; ok {
				continue
			}
			count := int32(1)
			if m[2] != "" {
				n, _ := strconv.Atoi(m[2])
				count = int32(n)
			}
			p.uniforms[m[1]] = uniformLoc
			for i := int32(0); i < count && m[2] != ""; i++ {
				p.uniforms[fmt.Sprintf("%s[%d]", m[1], i)] = uniformLoc + i
			}
			uniformLoc += count
		}
		for _, m := range blockPattern.FindAllStringSubmatch(source, -1) {
			if _, ok := p.blocks[m[1]]; !ok {
				p.blocks[m[1]] = blockIndex
				blockIndex++
			}
		}
		if s.typ != gl.VERTEX_SHADER {
			continue
		}
		for _, m := range attribPattern.FindAllStringSubmatch(source, -1) {
			switch {
			case m[1] != "":
				n, _ := strconv.Atoi(m[1])
				p.attribs[m[2]] = int32(n)
				used[int32(n)] = true
			default:
				if loc, ok := p.boundAttribs[m[2]]; ok {
					p.attribs[m[2]] = int32(loc)
					used[int32(loc)] = true
				} else {
					pending = append(pending, m[2])
				}
			}
		}
	}
	var next int32
	for _, name := range pending {
		for used[next] {
			next++
		}
		p.attribs[name] = next
		used[next] = true
	}
	p.linked = true
	p.log = ""
}

func (f *Functions) ValidateProgram(id uint32) {
	f.record("ValidateProgram", id)
	if p := f.program(id); p != nil {
		p.validated = p.linked
	}
}

func (f *Functions) GetProgrami(id uint32, pname gl.Enum) int32 {
	f.record("GetProgrami", id, pname)
	p := f.program(id)
	if p == nil {
		return 0
	}
	switch pname {
	case gl.LINK_STATUS:
		return boolInt(p.linked)
	case gl.VALIDATE_STATUS:
		return boolInt(p.validated)
	case gl.DELETE_STATUS:
		return gl.FALSE
	case gl.INFO_LOG_LENGTH:
		if p.log == "" {
			return 0
		}
		return int32(len(p.log) + 1)
	case gl.ATTACHED_SHADERS:
		return int32(len(p.shaders))
	case gl.ACTIVE_UNIFORMS:
		n := 0
		for name := range p.uniforms {
			if !strings.Contains(name, "[") {
				n++
			}
		}
		return int32(n)
	case gl.ACTIVE_ATTRIBUTES:
		return int32(len(p.attribs))
	}
	f.fail(gl.INVALID_ENUM, "program parameter 0x%04X", uint32(pname))
	return 0
}

func (f *Functions) GetProgramInfoLog(id uint32) string {
	f.record("GetProgramInfoLog", id)
	if p := f.program(id); p != nil {
		return p.log
	}
	return ""
}

func (f *Functions) UseProgram(id uint32) {
	f.record("UseProgram", id)
	if id != 0 {
		p := f.program(id)
		if p == nil {
			return
		}
		if !p.linked {
			f.fail(gl.INVALID_OPERATION, "program %d is not linked", id)
			return
		}
	}
	f.currentProgram = id
}

func (f *Functions) linkedProgram(id uint32) *program {
	p := f.program(id)
	if p == nil {
		return nil
	}
	if !p.linked {
		f.fail(gl.INVALID_OPERATION, "program %d is not linked", id)
		return nil
	}
	return p
}

func (f *Functions) GetAttribLocation(programID uint32, name string) int32 {
	f.record("GetAttribLocation", programID, name)
	p := f.linkedProgram(programID)
	if p == nil {
		return -1
	}
	if loc, ok := p.attribs[name]; ok {
		return loc
	}
	return -1
}

func (f *Functions) BindAttribLocation(programID, index uint32, name string) {
	f.record("BindAttribLocation", programID, index, name)
	if p := f.program(programID); p != nil {
		p.boundAttribs[name] = index
	}
}

func (f *Functions) BindFragDataLocation(programID, color uint32, name string) {
	f.record("BindFragDataLocation", programID, color, name)
	if p := f.program(programID); p != nil {
		p.fragData[name] = color
	}
}

func (f *Functions) GetUniformLocation(programID uint32, name string) int32 {
	f.record("GetUniformLocation", programID, name)
	p := f.linkedProgram(programID)
	if p == nil {
		return -1
	}
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	return -1
}

func (f *Functions) GetUniformBlockIndex(programID uint32, name string) uint32 {
	f.record("GetUniformBlockIndex", programID, name)
	p := f.linkedProgram(programID)
	if p == nil {
		return gl.INVALID_INDEX
	}
	if idx, ok := p.blocks[name]; ok {
		return idx
	}
	return gl.INVALID_INDEX
}

func (f *Functions) UniformBlockBinding(programID, blockIndex, binding uint32) {
	f.record("UniformBlockBinding", programID, blockIndex, binding)
	p := f.program(programID)
	if p == nil {
		return
	}
	if blockIndex >= uint32(len(p.blocks)) {
		f.fail(gl.INVALID_VALUE, "uniform block index %d", blockIndex)
		return
	}
	p.blockBindings[blockIndex] = binding
}

func (f *Functions) DispatchCompute(x, y, z uint32) {
	f.record("DispatchCompute", x, y, z)
	if f.currentProgram == 0 {
		f.fail(gl.INVALID_OPERATION, "no program installed")
	}
}

func (f *Functions) setUniform(name string, programID uint32, location int32, value any, args ...any) {
	f.record(name, append([]any{programID, location}, args...)...)
	p := f.linkedProgram(programID)
	if p == nil || location == -1 {
		return
	}
	p.values[location] = value
}

func (f *Functions) ProgramUniform1f(programID uint32, location int32, v float32) {
	f.setUniform("ProgramUniform1f", programID, location, v, v)
}

func (f *Functions) ProgramUniform1i(programID uint32, location int32, v int32) {
	f.setUniform("ProgramUniform1i", programID, location, v, v)
}

func (f *Functions) ProgramUniform1ui(programID uint32, location int32, v uint32) {
	f.setUniform("ProgramUniform1ui", programID, location, v, v)
}

func (f *Functions) ProgramUniform1fv(programID uint32, location int32, v []float32) {
	f.setUniform("ProgramUniform1fv", programID, location, append([]float32(nil), v...), len(v))
}

func (f *Functions) ProgramUniform2fv(programID uint32, location int32, v []float32) {
	f.setUniform("ProgramUniform2fv", programID, location, append([]float32(nil), v...), len(v))
}

func (f *Functions) ProgramUniform3fv(programID uint32, location int32, v []float32) {
	f.setUniform("ProgramUniform3fv", programID, location, append([]float32(nil), v...), len(v))
}

func (f *Functions) ProgramUniform4fv(programID uint32, location int32, v []float32) {
	f.setUniform("ProgramUniform4fv", programID, location, append([]float32(nil), v...), len(v))
}

func (f *Functions) ProgramUniform1iv(programID uint32, location int32, v []int32) {
	f.setUniform("ProgramUniform1iv", programID, location, append([]int32(nil), v...), len(v))
}

func (f *Functions) ProgramUniformMatrix3fv(programID uint32, location int32, transpose bool, v []float32) {
	f.setUniform("ProgramUniformMatrix3fv", programID, location, append([]float32(nil), v...), transpose, len(v))
}

func (f *Functions) ProgramUniformMatrix4fv(programID uint32, location int32, transpose bool, v []float32) {
	f.setUniform("ProgramUniformMatrix4fv", programID, location, append([]float32(nil), v...), transpose, len(v))
}

func (f *Functions) GenVertexArray() uint32 {
	id := f.alloc(KindVertexArray)
	f.record("GenVertexArray", id)
	f.vertexArrays[id] = &vertexArray{attribs: make(map[uint32]*AttribPointer)}
	return id
}

func (f *Functions) DeleteVertexArray(id uint32) {
	f.record("DeleteVertexArray", id)
	if id == 0 {
		return
	}
	delete(f.vertexArrays, id)
	if f.currentVAO == id {
		f.currentVAO = 0
	}
}

func (f *Functions) BindVertexArray(id uint32) {
	f.record("BindVertexArray", id)
	if _, ok := f.vertexArrays[id]; !ok {
		f.fail(gl.INVALID_OPERATION, "vertex array %d does not exist", id)
		return
	}
	f.currentVAO = id
}

func (f *Functions) attrib(index uint32) *AttribPointer {
	if index >= 16 {
		f.fail(gl.INVALID_VALUE, "attribute index %d", index)
		return nil
	}
	v := f.vertexArrays[f.currentVAO]
	a, ok := v.attribs[index]
	if !ok {
		a = &AttribPointer{Index: index}
		v.attribs[index] = a
	}
	return a
}

func (f *Functions) EnableVertexAttribArray(index uint32) {
	f.record("EnableVertexAttribArray", index)
	if a := f.attrib(index); a != nil {
		a.Enabled = true
	}
}

func (f *Functions) DisableVertexAttribArray(index uint32) {
	f.record("DisableVertexAttribArray", index)
	if a := f.attrib(index); a != nil {
		a.Enabled = false
	}
}

func (f *Functions) attribPointer(index uint32, size int32, typ gl.Enum, normalized, integer, long bool, stride int32, offset int) {
	if f.bindings[gl.ARRAY_BUFFER] == 0 {
		f.fail(gl.INVALID_OPERATION, "no buffer bound to GL_ARRAY_BUFFER")
		return
	}
	if size < 1 || size > 4 || stride < 0 {
		f.fail(gl.INVALID_VALUE, "attribute size %d stride %d", size, stride)
		return
	}
	a := f.attrib(index)
	if a == nil {
		return
	}
	a.Size = size
	a.Type = typ
	a.Normalized = normalized
	a.Integer = integer
	a.Long = long
	a.Stride = stride
	a.Offset = offset
	a.Buffer = f.bindings[gl.ARRAY_BUFFER]
}

func (f *Functions) VertexAttribPointer(index uint32, size int32, typ gl.Enum, normalized bool, stride int32, offset int) {
	f.record("VertexAttribPointer", index, size, typ, normalized, stride, offset)
	f.attribPointer(index, size, typ, normalized, false, false, stride, offset)
}

func (f *Functions) VertexAttribIPointer(index uint32, size int32, typ gl.Enum, stride int32, offset int) {
	f.record("VertexAttribIPointer", index, size, typ, stride, offset)
	f.attribPointer(index, size, typ, false, true, false, stride, offset)
}

func (f *Functions) VertexAttribLPointer(index uint32, size int32, typ gl.Enum, stride int32, offset int) {
	f.record("VertexAttribLPointer", index, size, typ, stride, offset)
	f.attribPointer(index, size, typ, false, false, true, stride, offset)
}

func (f *Functions) VertexAttribDivisor(index, divisor uint32) {
	f.record("VertexAttribDivisor", index, divisor)
	if a := f.attrib(index); a != nil {
		a.Divisor = divisor
	}
}

func (f *Functions) draw(d DrawCall) {
	if d.Count < 0 || d.Instances < 0 {
		f.fail(gl.INVALID_VALUE, "negative count")
		return
	}
	d.Program = f.currentProgram
	d.VertexArray = f.currentVAO
	d.Framebuffer = f.bindings[gl.DRAW_FRAMEBUFFER]
	f.draws = append(f.draws, d)
}

func (f *Functions) DrawArrays(mode gl.Enum, first, count int32) {
	f.record("DrawArrays", mode, first, count)
	f.draw(DrawCall{Mode: mode, First: first, Count: count, Instances: 1})
}

func (f *Functions) DrawArraysInstanced(mode gl.Enum, first, count, instances int32) {
	f.record("DrawArraysInstanced", mode, first, count, instances)
	f.draw(DrawCall{Mode: mode, First: first, Count: count, Instances: instances})
}

func (f *Functions) DrawElements(mode gl.Enum, count int32, typ gl.Enum, offset int) {
	f.record("DrawElements", mode, count, typ, offset)
	if f.vertexArrays[f.currentVAO].element == 0 {
		f.fail(gl.INVALID_OPERATION, "no element buffer bound")
		return
	}
	f.draw(DrawCall{Mode: mode, Count: count, Instances: 1, Indexed: true, IndexType: typ, Offset: offset})
}

func (f *Functions) DrawElementsInstanced(mode gl.Enum, count int32, typ gl.Enum, offset int, instances int32) {
	f.record("DrawElementsInstanced", mode, count, typ, offset, instances)
	if f.vertexArrays[f.currentVAO].element == 0 {
		f.fail(gl.INVALID_OPERATION, "no element buffer bound")
		return
	}
	f.draw(DrawCall{Mode: mode, Count: count, Instances: instances, Indexed: true, IndexType: typ, Offset: offset})
}

func (f *Functions) GenFramebuffer() uint32 {
	id := f.alloc(KindFramebuffer)
	f.record("GenFramebuffer", id)
	f.framebuffers[id] = &framebuffer{
		attachments: make(map[gl.Enum]Attachment),
		drawBuffers: []gl.Enum{gl.COLOR_ATTACHMENT0},
		readBuffer:  gl.COLOR_ATTACHMENT0,
		colors:      make(map[gl.Enum][4]float32),
		params:      make(map[gl.Enum]int32),
	}
	return id
}

func (f *Functions) DeleteFramebuffer(id uint32) {
	f.record("DeleteFramebuffer", id)
	if id == 0 {
		return
	}
	delete(f.framebuffers, id)
	for _, target := range []gl.Enum{gl.DRAW_FRAMEBUFFER, gl.READ_FRAMEBUFFER} {
		if f.bindings[target] == id {
			f.bindings[target] = 0
		}
	}
}

func (f *Functions) BindFramebuffer(target gl.Enum, id uint32) {
	f.record("BindFramebuffer", target, id)
	if _, ok := f.framebuffers[id]; !ok {
		f.fail(gl.INVALID_OPERATION, "framebuffer %d does not exist", id)
		return
	}
	switch target {
	case gl.FRAMEBUFFER:
		f.bindings[gl.DRAW_FRAMEBUFFER] = id
		f.bindings[gl.READ_FRAMEBUFFER] = id
	case gl.DRAW_FRAMEBUFFER, gl.READ_FRAMEBUFFER:
		f.bindings[target] = id
	default:
		f.fail(gl.INVALID_ENUM, "framebuffer target 0x%04X", uint32(target))
	}
}

// boundFramebuffer returns the framebuffer bound to target; the default framebuffer is rejected.
func (f *Functions) boundFramebuffer(target gl.Enum) *framebuffer {
	if target == gl.FRAMEBUFFER {
		target = gl.DRAW_FRAMEBUFFER
	}
	id := f.bindings[target]
	if id == 0 {
		f.fail(gl.INVALID_OPERATION, "default framebuffer is bound")
		return nil
	}
	return f.framebuffers[id]
}

func (f *Functions) FramebufferParameteri(target, pname gl.Enum, param int32) {
	f.record("FramebufferParameteri", target, pname, param)
	if fb := f.boundFramebuffer(target); fb != nil {
		fb.params[pname] = param
	}
}

func (f *Functions) GetFramebufferAttachmentParameteri(target, attachment, pname gl.Enum) int32 {
	f.record("GetFramebufferAttachmentParameteri", target, attachment, pname)
	fb := f.boundFramebuffer(target)
	if fb == nil {
		return 0
	}
	a, ok := fb.attachments[attachment]
	switch pname {
	case gl.FRAMEBUFFER_ATTACHMENT_OBJECT_TYPE:
		switch {
		case !ok:
			return int32(gl.NONE)
		case a.Kind == KindRenderbuffer:
			return int32(gl.RENDERBUFFER)
		default:
			return int32(gl.TEXTURE)
		}
	case gl.FRAMEBUFFER_ATTACHMENT_OBJECT_NAME:
		return int32(a.Name)
	case gl.FRAMEBUFFER_ATTACHMENT_TEXTURE_LEVEL:
		return a.Level
	case gl.FRAMEBUFFER_ATTACHMENT_TEXTURE_LAYER:
		return a.Layer
	}
	f.fail(gl.INVALID_ENUM, "attachment parameter 0x%04X", uint32(pname))
	return 0
}

func (f *Functions) attachTexture(target, attachment, texTarget gl.Enum, texture uint32, level, layer int32) {
	fb := f.boundFramebuffer(target)
	if fb == nil {
		return
	}
	if texture == 0 {
		delete(fb.attachments, attachment)
		return
	}
	if _, ok := f.textures[texture]; !ok {
		f.fail(gl.INVALID_OPERATION, "texture %d does not exist", texture)
		return
	}
	fb.attachments[attachment] = Attachment{Kind: KindTexture, Name: texture, TexTarget: texTarget, Level: level, Layer: layer}
}

func (f *Functions) FramebufferTexture(target, attachment gl.Enum, texture uint32, level int32) {
	f.record("FramebufferTexture", target, attachment, texture, level)
	f.attachTexture(target, attachment, gl.NONE, texture, level, 0)
}

func (f *Functions) FramebufferTexture1D(target, attachment, texTarget gl.Enum, texture uint32, level int32) {
	f.record("FramebufferTexture1D", target, attachment, texTarget, texture, level)
	f.attachTexture(target, attachment, texTarget, texture, level, 0)
}

func (f *Functions) FramebufferTexture2D(target, attachment, texTarget gl.Enum, texture uint32, level int32) {
	f.record("FramebufferTexture2D", target, attachment, texTarget, texture, level)
	f.attachTexture(target, attachment, texTarget, texture, level, 0)
}

func (f *Functions) FramebufferTexture3D(target, attachment, texTarget gl.Enum, texture uint32, level, layer int32) {
	f.record("FramebufferTexture3D", target, attachment, texTarget, texture, level, layer)
	f.attachTexture(target, attachment, texTarget, texture, level, layer)
}

func (f *Functions) FramebufferTextureLayer(target, attachment gl.Enum, texture uint32, level, layer int32) {
	f.record("FramebufferTextureLayer", target, attachment, texture, level, layer)
	f.attachTexture(target, attachment, gl.NONE, texture, level, layer)
}

func (f *Functions) FramebufferRenderbuffer(target, attachment, rbTarget gl.Enum, renderbuffer uint32) {
	f.record("FramebufferRenderbuffer", target, attachment, rbTarget, renderbuffer)
	fb := f.boundFramebuffer(target)
	if fb == nil {
		return
	}
	if renderbuffer == 0 {
		delete(fb.attachments, attachment)
		return
	}
	if _, ok := f.renderbuffers[renderbuffer]; !ok {
		f.fail(gl.INVALID_OPERATION, "renderbuffer %d does not exist", renderbuffer)
		return
	}
	fb.attachments[attachment] = Attachment{Kind: KindRenderbuffer, Name: renderbuffer}
}

func (f *Functions) CheckFramebufferStatus(target gl.Enum) gl.Enum {
	f.record("CheckFramebufferStatus", target)
	if target == gl.FRAMEBUFFER {
		target = gl.DRAW_FRAMEBUFFER
	}
	id := f.bindings[target]
	if id == 0 {
		return gl.FRAMEBUFFER_COMPLETE
	}
	fb := f.framebuffers[id]
	if len(fb.attachments) == 0 {
		return gl.FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT
	}
	for _, a := range fb.attachments {
		switch a.Kind {
		case KindRenderbuffer:
			rb, ok := f.renderbuffers[a.Name]
			if !ok || rb.width == 0 || rb.height == 0 {
				return gl.FRAMEBUFFER_INCOMPLETE_ATTACHMENT
			}
		case KindTexture:
			t, ok := f.textures[a.Name]
			if !ok || !t.hasLevel(a.Level) {
				return gl.FRAMEBUFFER_INCOMPLETE_ATTACHMENT
			}
		}
	}
	return gl.FRAMEBUFFER_COMPLETE
}

func (t *texture) hasLevel(level int32) bool {
	for k, l := range t.levels {
		if k.level == level && l.width > 0 && l.height > 0 {
			return true
		}
	}
	return false
}

func (f *Functions) ReadBuffer(mode gl.Enum) {
	f.record("ReadBuffer", mode)
	f.framebuffers[f.bindings[gl.READ_FRAMEBUFFER]].readBuffer = mode
}

func (f *Functions) DrawBuffer(mode gl.Enum) {
	f.record("DrawBuffer", mode)
	f.framebuffers[f.bindings[gl.DRAW_FRAMEBUFFER]].drawBuffers = []gl.Enum{mode}
}

func (f *Functions) DrawBuffers(modes []gl.Enum) {
	f.record("DrawBuffers", modes)
	if len(modes) > 8 {
		f.fail(gl.INVALID_VALUE, "%d draw buffers", len(modes))
		return
	}
	f.framebuffers[f.bindings[gl.DRAW_FRAMEBUFFER]].drawBuffers = append([]gl.Enum(nil), modes...)
}

func (f *Functions) clearDrawBuffer(drawBuffer int32, color [4]float32) {
	fb := f.framebuffers[f.bindings[gl.DRAW_FRAMEBUFFER]]
	if drawBuffer < 0 || int(drawBuffer) >= len(fb.drawBuffers) {
		f.fail(gl.INVALID_VALUE, "draw buffer %d", drawBuffer)
		return
	}
	if b := fb.drawBuffers[drawBuffer]; b != gl.NONE {
		fb.colors[b] = color
	}
}

func (f *Functions) ClearBufferiv(buffer gl.Enum, drawBuffer int32, value []int32) {
	f.record("ClearBufferiv", buffer, drawBuffer, value)
	if buffer == gl.COLOR && len(value) >= 4 {
		f.clearDrawBuffer(drawBuffer, [4]float32{float32(value[0]), float32(value[1]), float32(value[2]), float32(value[3])})
	}
}

func (f *Functions) ClearBufferuiv(buffer gl.Enum, drawBuffer int32, value []uint32) {
	f.record("ClearBufferuiv", buffer, drawBuffer, value)
	if buffer == gl.COLOR && len(value) >= 4 {
		f.clearDrawBuffer(drawBuffer, [4]float32{float32(value[0]), float32(value[1]), float32(value[2]), float32(value[3])})
	}
}

func (f *Functions) ClearBufferfv(buffer gl.Enum, drawBuffer int32, value []float32) {
	f.record("ClearBufferfv", buffer, drawBuffer, value)
	if buffer == gl.COLOR && len(value) >= 4 {
		f.clearDrawBuffer(drawBuffer, [4]float32{value[0], value[1], value[2], value[3]})
	}
}

func (f *Functions) ClearBufferfi(buffer gl.Enum, drawBuffer int32, depth float32, stencil int32) {
	f.record("ClearBufferfi", buffer, drawBuffer, depth, stencil)
	if buffer != gl.DEPTH_STENCIL {
		f.fail(gl.INVALID_ENUM, "ClearBufferfi requires GL_DEPTH_STENCIL")
	}
}

func components(format gl.Enum) int {
	switch format {
	case gl.RG:
		return 2
	case gl.RGB, gl.BGR:
		return 3
	case gl.RGBA, gl.BGRA:
		return 4
	}
	return 1
}

func typeSize(typ gl.Enum) int {
	switch typ {
	case gl.BYTE, gl.UNSIGNED_BYTE:
		return 1
	case gl.SHORT, gl.UNSIGNED_SHORT, gl.HALF_FLOAT:
		return 2
	case gl.DOUBLE:
		return 8
	}
	return 4
}

// pixels renders the read buffer's cleared color as width*height pixels of format/typ.
func (f *Functions) pixels(width, height int32, format, typ gl.Enum) []byte {
	fb := f.framebuffers[f.bindings[gl.READ_FRAMEBUFFER]]
	c := fb.colors[fb.readBuffer]
	if format == gl.BGR || format == gl.BGRA {
		c[0], c[2] = c[2], c[0]
	}
	comps := components(format)
	size := typeSize(typ)
	px := make([]byte, comps*size)
	for i := 0; i < comps && i < 4; i++ {
		switch typ {
		case gl.UNSIGNED_BYTE:
			px[i] = byte(math.Round(float64(clamp01(c[i]) * 255)))
		case gl.FLOAT:
			binary.LittleEndian.PutUint32(px[i*4:], math.Float32bits(c[i]))
		}
	}
	out := make([]byte, 0, int(width*height)*len(px))
	for i := int32(0); i < width*height; i++ {
		out = append(out, px...)
	}
	return out
}

func clamp01(v float32) float32 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

func (f *Functions) ReadPixels(x, y, width, height int32, format, typ gl.Enum, dst []byte) {
	f.record("ReadPixels", x, y, width, height, format, typ)
	data := f.pixels(width, height, format, typ)
	if len(dst) < len(data) {
		f.fail(gl.INVALID_OPERATION, "destination holds %d bytes, %d required", len(dst), len(data))
		return
	}
	copy(dst, data)
}

func (f *Functions) ReadPixelsOffset(x, y, width, height int32, format, typ gl.Enum, offset int) {
	f.record("ReadPixelsOffset", x, y, width, height, format, typ, offset)
	b := f.boundBuffer(gl.PIXEL_PACK_BUFFER)
	if b == nil {
		return
	}
	data := f.pixels(width, height, format, typ)
	if offset < 0 || offset+len(data) > len(b.data) {
		f.fail(gl.INVALID_OPERATION, "pixel pack buffer too small")
		return
	}
	copy(b.data[offset:], data)
}

func (f *Functions) BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int32, mask, filter gl.Enum) {
	f.record("BlitFramebuffer", srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1, mask, filter)
	if mask&(gl.DEPTH_BUFFER_BIT|gl.STENCIL_BUFFER_BIT) != 0 && filter != gl.NEAREST {
		f.fail(gl.INVALID_OPERATION, "depth/stencil blits require GL_NEAREST")
		return
	}
	f.blits = append(f.blits, Blit{
		ReadFramebuffer: f.bindings[gl.READ_FRAMEBUFFER],
		DrawFramebuffer: f.bindings[gl.DRAW_FRAMEBUFFER],
		Src:             [4]int32{srcX0, srcY0, srcX1, srcY1},
		Dst:             [4]int32{dstX0, dstY0, dstX1, dstY1},
		Mask:            mask,
		Filter:          filter,
	})
}

func (f *Functions) GenRenderbuffer() uint32 {
	id := f.alloc(KindRenderbuffer)
	f.record("GenRenderbuffer", id)
	f.renderbuffers[id] = &renderbuffer{}
	return id
}

func (f *Functions) DeleteRenderbuffer(id uint32) {
	f.record("DeleteRenderbuffer", id)
	delete(f.renderbuffers, id)
	if f.bindings[gl.RENDERBUFFER] == id {
		f.bindings[gl.RENDERBUFFER] = 0
	}
}

func (f *Functions) BindRenderbuffer(target gl.Enum, id uint32) {
	f.record("BindRenderbuffer", target, id)
	if _, ok := f.renderbuffers[id]; id != 0 && !ok {
		f.fail(gl.INVALID_OPERATION, "renderbuffer %d does not exist", id)
		return
	}
	f.bindings[target] = id
}

func (f *Functions) boundRenderbuffer(target gl.Enum) *renderbuffer {
	id := f.bindings[target]
	if id == 0 {
		f.fail(gl.INVALID_OPERATION, "no renderbuffer bound")
		return nil
	}
	return f.renderbuffers[id]
}

func (f *Functions) RenderbufferStorage(target, internalFormat gl.Enum, width, height int32) {
	f.record("RenderbufferStorage", target, internalFormat, width, height)
	f.renderbufferStorage(target, 0, internalFormat, width, height)
}

func (f *Functions) RenderbufferStorageMultisample(target gl.Enum, samples int32, internalFormat gl.Enum, width, height int32) {
	f.record("RenderbufferStorageMultisample", target, samples, internalFormat, width, height)
	f.renderbufferStorage(target, samples, internalFormat, width, height)
}

func (f *Functions) renderbufferStorage(target gl.Enum, samples int32, internalFormat gl.Enum, width, height int32) {
	rb := f.boundRenderbuffer(target)
	if rb == nil {
		return
	}
	if width < 0 || height < 0 || samples < 0 {
		f.fail(gl.INVALID_VALUE, "renderbuffer size %dx%d samples %d", width, height, samples)
		return
	}
	rb.internalFormat = internalFormat
	rb.width = width
	rb.height = height
	rb.samples = samples
}

func (f *Functions) GetRenderbufferParameteri(target, pname gl.Enum) int32 {
	f.record("GetRenderbufferParameteri", target, pname)
	rb := f.boundRenderbuffer(target)
	if rb == nil {
		return 0
	}
	switch pname {
	case gl.RENDERBUFFER_WIDTH:
		return rb.width
	case gl.RENDERBUFFER_HEIGHT:
		return rb.height
	case gl.RENDERBUFFER_INTERNAL_FORMAT:
		return int32(rb.internalFormat)
	case gl.RENDERBUFFER_SAMPLES:
		return rb.samples
	}
	f.fail(gl.INVALID_ENUM, "renderbuffer parameter 0x%04X", uint32(pname))
	return 0
}

func (f *Functions) GenTexture() uint32 {
	id := f.alloc(KindTexture)
	f.record("GenTexture", id)
	f.textures[id] = &texture{
		params:  make(map[gl.Enum]int32),
		paramsf: make(map[gl.Enum]float32),
		levels:  make(map[levelKey]textureLevel),
	}
	return id
}

func (f *Functions) DeleteTexture(id uint32) {
	f.record("DeleteTexture", id)
	delete(f.textures, id)
	for _, unit := range f.textureUnits {
		for target, bound := range unit {
			if bound == id {
				unit[target] = 0
			}
		}
	}
}

func bindingTarget(target gl.Enum) gl.Enum {
	if target >= gl.TEXTURE_CUBE_MAP_POSITIVE_X && target <= gl.TEXTURE_CUBE_MAP_NEGATIVE_Z {
		return gl.TEXTURE_CUBE_MAP
	}
	return target
}

func (f *Functions) BindTexture(target gl.Enum, id uint32) {
	f.record("BindTexture", target, id)
	if id != 0 {
		t, ok := f.textures[id]
		if !ok {
			f.fail(gl.INVALID_OPERATION, "texture %d does not exist", id)
			return
		}
		if t.target != gl.NONE && t.target != target {
			f.fail(gl.INVALID_OPERATION, "texture %d was created with a different target", id)
			return
		}
		t.target = target
	}
	if f.textureUnits[f.activeUnit] == nil {
		f.textureUnits[f.activeUnit] = make(map[gl.Enum]uint32)
	}
	f.textureUnits[f.activeUnit][target] = id
}

func (f *Functions) ActiveTexture(unit gl.Enum) {
	f.record("ActiveTexture", unit)
	if unit < gl.TEXTURE0 || unit >= gl.TEXTURE0+32 {
		f.fail(gl.INVALID_ENUM, "texture unit 0x%04X", uint32(unit))
		return
	}
	f.activeUnit = unit
}

func (f *Functions) boundTexture(target gl.Enum) *texture {
	id := f.textureUnits[f.activeUnit][bindingTarget(target)]
	if id == 0 {
		f.fail(gl.INVALID_OPERATION, "no texture bound to 0x%04X", uint32(target))
		return nil
	}
	return f.textures[id]
}

func (f *Functions) TexParameteri(target, pname gl.Enum, param int32) {
	f.record("TexParameteri", target, pname, param)
	if t := f.boundTexture(target); t != nil {
		t.params[pname] = param
	}
}

func (f *Functions) TexParameterf(target, pname gl.Enum, param float32) {
	f.record("TexParameterf", target, pname, param)
	if t := f.boundTexture(target); t != nil {
		t.paramsf[pname] = param
	}
}

func (f *Functions) GetTexParameteri(target, pname gl.Enum) int32 {
	f.record("GetTexParameteri", target, pname)
	t := f.boundTexture(target)
	if t == nil {
		return 0
	}
	if v, ok := t.params[pname]; ok {
		return v
	}
	switch pname {
	case gl.TEXTURE_MIN_FILTER:
		return int32(gl.NEAREST_MIPMAP_LINEAR)
	case gl.TEXTURE_MAG_FILTER:
		return int32(gl.LINEAR)
	case gl.TEXTURE_WRAP_S, gl.TEXTURE_WRAP_T, gl.TEXTURE_WRAP_R:
		return int32(gl.REPEAT)
	case gl.TEXTURE_MAX_LEVEL:
		return 1000
	}
	return 0
}

func (f *Functions) GetTexLevelParameteri(target gl.Enum, level int32, pname gl.Enum) int32 {
	f.record("GetTexLevelParameteri", target, level, pname)
	t := f.boundTexture(target)
	if t == nil {
		return 0
	}
	face := target
	if target == gl.TEXTURE_CUBE_MAP {
		face = gl.TEXTURE_CUBE_MAP_POSITIVE_X
	}
	l := t.levels[levelKey{face: face, level: level}]
	switch pname {
	case gl.TEXTURE_WIDTH:
		return l.width
	case gl.TEXTURE_HEIGHT:
		return l.height
	case gl.TEXTURE_DEPTH:
		return l.depth
	case gl.TEXTURE_INTERNAL_FORMAT:
		return l.internalFormat
	}
	f.fail(gl.INVALID_ENUM, "texture level parameter 0x%04X", uint32(pname))
	return 0
}

func (f *Functions) texImage(target gl.Enum, level, internalFormat, width, height, depth int32) {
	t := f.boundTexture(target)
	if t == nil {
		return
	}
	if t.immutable {
		f.fail(gl.INVALID_OPERATION, "texture storage is immutable")
		return
	}
	if level < 0 || width < 0 || height < 0 || depth < 0 {
		f.fail(gl.INVALID_VALUE, "invalid texture image dimensions")
		return
	}
	t.levels[levelKey{face: target, level: level}] = textureLevel{width: width, height: height, depth: depth, internalFormat: internalFormat}
}

func (f *Functions) TexImage1D(target gl.Enum, level, internalFormat, width, border int32, format, typ gl.Enum, data []byte) {
	f.record("TexImage1D", target, level, internalFormat, width, border, format, typ, len(data))
	f.texImage(target, level, internalFormat, width, 1, 1)
}

func (f *Functions) TexImage2D(target gl.Enum, level, internalFormat, width, height, border int32, format, typ gl.Enum, data []byte) {
	f.record("TexImage2D", target, level, internalFormat, width, height, border, format, typ, len(data))
	f.texImage(target, level, internalFormat, width, height, 1)
}

func (f *Functions) TexImage3D(target gl.Enum, level, internalFormat, width, height, depth, border int32, format, typ gl.Enum, data []byte) {
	f.record("TexImage3D", target, level, internalFormat, width, height, depth, border, format, typ, len(data))
	f.texImage(target, level, internalFormat, width, height, depth)
}

func (f *Functions) TexSubImage2D(target gl.Enum, level, xoffset, yoffset, width, height int32, format, typ gl.Enum, data []byte) {
	f.record("TexSubImage2D", target, level, xoffset, yoffset, width, height, format, typ, len(data))
	t := f.boundTexture(target)
	if t == nil {
		return
	}
	l, ok := t.levels[levelKey{face: target, level: level}]
	if !ok {
		f.fail(gl.INVALID_OPERATION, "texture level %d is undefined", level)
		return
	}
	if xoffset < 0 || yoffset < 0 || xoffset+width > l.width || yoffset+height > l.height {
		f.fail(gl.INVALID_VALUE, "sub image out of bounds")
	}
}

func (f *Functions) TexStorage2D(target gl.Enum, levels int32, internalFormat gl.Enum, width, height int32) {
	f.record("TexStorage2D", target, levels, internalFormat, width, height)
	t := f.boundTexture(target)
	if t == nil {
		return
	}
	if t.immutable {
		f.fail(gl.INVALID_OPERATION, "texture storage is immutable")
		return
	}
	if levels < 1 || width < 1 || height < 1 {
		f.fail(gl.INVALID_VALUE, "invalid texture storage")
		return
	}
	faces := []gl.Enum{target}
	if target == gl.TEXTURE_CUBE_MAP {
		faces = []gl.Enum{
			gl.TEXTURE_CUBE_MAP_POSITIVE_X, gl.TEXTURE_CUBE_MAP_NEGATIVE_X,
			gl.TEXTURE_CUBE_MAP_POSITIVE_Y, gl.TEXTURE_CUBE_MAP_NEGATIVE_Y,
			gl.TEXTURE_CUBE_MAP_POSITIVE_Z, gl.TEXTURE_CUBE_MAP_NEGATIVE_Z,
		}
	}
	for _, face := range faces {
		w, h := width, height
		for level := int32(0); level < levels; level++ {
			t.levels[levelKey{face: face, level: level}] = textureLevel{width: w, height: h, depth: 1, internalFormat: int32(internalFormat)}
			w, h = max(w/2, 1), max(h/2, 1)
		}
	}
	t.immutable = true
}

func (f *Functions) GenerateMipmap(target gl.Enum) {
	f.record("GenerateMipmap", target)
	t := f.boundTexture(target)
	if t == nil {
		return
	}
	faces := []gl.Enum{target}
	if target == gl.TEXTURE_CUBE_MAP {
		faces = []gl.Enum{
			gl.TEXTURE_CUBE_MAP_POSITIVE_X, gl.TEXTURE_CUBE_MAP_NEGATIVE_X,
			gl.TEXTURE_CUBE_MAP_POSITIVE_Y, gl.TEXTURE_CUBE_MAP_NEGATIVE_Y,
			gl.TEXTURE_CUBE_MAP_POSITIVE_Z, gl.TEXTURE_CUBE_MAP_NEGATIVE_Z,
		}
	}
	for _, face := range faces {
		base, ok := t.levels[levelKey{face: face, level: 0}]
		if !ok || base.width == 0 || base.height == 0 {
			f.fail(gl.INVALID_OPERATION, "base level is undefined")
			return
		}
		w, h := base.width, base.height
		for level := int32(1); w > 1 || h > 1; level++ {
			w, h = max(w/2, 1), max(h/2, 1)
			t.levels[levelKey{face: face, level: level}] = textureLevel{width: w, height: h, depth: 1, internalFormat: base.internalFormat}
		}
	}
}

func (f *Functions) DebugMessageCallback(callback gl.DebugCallback) {
	f.record("DebugMessageCallback", callback != nil)
	f.debugCallback = callback
}

func (f *Functions) DebugMessageControl(source, typ, severity gl.Enum, ids []uint32, enabled bool) {
	f.record("DebugMessageControl", source, typ, severity, len(ids), enabled)
	if len(ids) > 0 && (source == gl.DONT_CARE || typ == gl.DONT_CARE || severity != gl.DONT_CARE) {
		f.fail(gl.INVALID_OPERATION, "message ids require a source and type and no severity")
		return
	}
	f.debugRules = append(f.debugRules, debugRule{source: source, typ: typ, severity: severity, ids: append([]uint32(nil), ids...), enabled: enabled})
}

func (f *Functions) DebugMessageInsert(source, typ gl.Enum, id uint32, severity gl.Enum, message string) {
	f.record("DebugMessageInsert", source, typ, id, severity, message)
	if source != gl.DEBUG_SOURCE_APPLICATION && source != gl.DEBUG_SOURCE_THIRD_PARTY {
		f.fail(gl.INVALID_ENUM, "inserted messages must come from the application or a third party")
		return
	}
	f.deliver(source, typ, id, severity, message)
}

func boolInt(b bool) int32 {
	if b {
		return gl.TRUE
	}
	return gl.FALSE
}
