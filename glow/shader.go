package glow

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/Carmen-Shannon/glow/gl"
)

// Shader wraps a native shader object. A shader listens to its StringSource: when the
// source changes the new text is uploaded and compiled, and programs using the shader
// are notified so they relink on next use.
type Shader interface {
	Object
	Changeable
	ChangeListener

	// Type returns the shader stage.
	//
	// Returns:
	//   - gl.Enum: VERTEX_SHADER, FRAGMENT_SHADER, ...
	Type() gl.Enum

	// TypeString returns the symbolic name of the shader stage.
	//
	// Returns:
	//   - string: e.g. "GL_VERTEX_SHADER"
	TypeString() string

	// SetSource replaces the source, uploads it and compiles.
	//
	// Parameters:
	//   - source: the new source; nil detaches the current one
	SetSource(source StringSource)

	// SetSourceString replaces the source with a static string.
	//
	// Parameters:
	//   - source: the source text
	SetSourceString(source string)

	// Source returns the current source, or nil.
	//
	// Returns:
	//   - StringSource: the source
	Source() StringSource

	// UpdateSource re-uploads the current source, compiles and notifies listeners.
	UpdateSource()

	// Compile compiles the uploaded source. A source that failed to compile is not
	// recompiled until it changes or Invalidate is called.
	//
	// Returns:
	//   - bool: true if the shader is compiled
	Compile() bool

	// IsCompiled reports whether the last compilation succeeded.
	//
	// Returns:
	//   - bool: true if compiled
	IsCompiled() bool

	// Invalidate forgets the compile state so the next Compile runs again.
	Invalidate()

	// Parameter queries a shader parameter.
	//
	// Parameters:
	//   - pname: COMPILE_STATUS, SHADER_TYPE, ...
	//
	// Returns:
	//   - int32: the parameter value
	Parameter(pname gl.Enum) int32

	// CheckCompileStatus queries the native compile status and logs the info log on failure.
	//
	// Returns:
	//   - bool: true if the native shader is compiled
	CheckCompileStatus() bool

	// InfoLog returns the native compile log.
	//
	// Returns:
	//   - string: the info log
	InfoLog() string

	// CompileError returns the error of the last failed compilation, or nil.
	//
	// Returns:
	//   - error: an error wrapping ErrShaderCompile
	CompileError() error
}

// shader implements Shader.
type shader struct {
	object
	changeNotifier

	typ        gl.Enum
	source     StringSource
	compiled   bool
	failed     bool
	compileErr error
}

var _ Shader = &shader{}

// NewShader creates an empty shader of the given stage.
//
// Parameters:
//   - ctx: the owning context
//   - typ: the shader stage
//
// Returns:
//   - Shader: the new shader, holding one reference
func NewShader(ctx Context, typ gl.Enum) Shader {
	s := &shader{typ: typ}
	s.changeNotifier.owner = s
	s.init(ctx, s, KindShader, ctx.API().CreateShader(typ), true, s.detachSource, ctx.API().DeleteShader)
	return s
}

// NewShaderWithSource creates a shader, uploads source and compiles it.
//
// Parameters:
//   - ctx: the owning context
//   - typ: the shader stage
//   - source: the source
//
// Returns:
//   - Shader: the new shader, holding one reference
func NewShaderWithSource(ctx Context, typ gl.Enum, source StringSource) Shader {
	s := NewShader(ctx, typ)
	s.SetSource(source)
	return s
}

// ShaderFromString creates a shader from source text and compiles it.
//
// Parameters:
//   - ctx: the owning context
//   - typ: the shader stage
//   - source: the source text
//
// Returns:
//   - Shader: the new shader, holding one reference
func ShaderFromString(ctx Context, typ gl.Enum, source string) Shader {
	return NewShaderWithSource(ctx, typ, NewStaticStringSource(source))
}

func (s *shader) Accept(v ObjectVisitor) {
	v.VisitShader(s)
}

func (s *shader) MarshalZerologObject(e *zerolog.Event) {
	s.object.MarshalZerologObject(e)
	e.Str("type", s.TypeString()).Bool("compiled", s.compiled)
}

func (s *shader) Type() gl.Enum {
	return s.typ
}

func (s *shader) TypeString() string {
	return gl.ShaderTypeString(s.typ)
}

func (s *shader) detachSource() {
	if s.source != nil {
		s.source.DeregisterListener(s)
		s.source = nil
	}
}

func (s *shader) SetSource(source StringSource) {
	if source == s.source {
		return
	}
	s.detachSource()
	s.source = source
	if source == nil {
		return
	}
	source.RegisterListener(s)
	s.UpdateSource()
}

func (s *shader) SetSourceString(source string) {
	s.SetSource(NewStaticStringSource(source))
}

func (s *shader) Source() StringSource {
	return s.source
}

func (s *shader) UpdateSource() {
	if s.source == nil {
		return
	}
	s.api().ShaderSource(s.id, s.source.Strings()...)
	s.Invalidate()
	s.Compile()
	s.Changed()
}

func (s *shader) Notify(Changeable) {
	s.UpdateSource()
}

func (s *shader) Compile() bool {
	if s.compiled {
		return true
	}
	if s.failed {
		return false
	}
	s.api().CompileShader(s.id)
	s.compiled = s.CheckCompileStatus()
	s.failed = !s.compiled
	s.ctx.afterCall("Shader.Compile")
	return s.compiled
}

func (s *shader) IsCompiled() bool {
	return s.compiled
}

func (s *shader) Invalidate() {
	s.compiled = false
	s.failed = false
	s.compileErr = nil
}

func (s *shader) Parameter(pname gl.Enum) int32 {
	return s.api().GetShaderi(s.id, pname)
}

func (s *shader) CheckCompileStatus() bool {
	if s.Parameter(gl.COMPILE_STATUS) == gl.TRUE {
		s.compileErr = nil
		return true
	}
	info := s.InfoLog()
	s.compileErr = errors.Wrapf(ErrShaderCompile, "%s %d: %s", s.TypeString(), s.id, info)
	s.ctx.Logger().Error().EmbedObject(s).Str("log", info).Msg("shader compilation failed")
	return false
}

func (s *shader) InfoLog() string {
	return s.api().GetShaderInfoLog(s.id)
}

func (s *shader) CompileError() error {
	return s.compileErr
}
