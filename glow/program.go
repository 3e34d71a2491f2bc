package glow

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/Carmen-Shannon/glow/gl"
)

// Program wraps a native program object. A program holds a reference on each attached
// shader and on each registered uniform. It relinks lazily on Use after any attached
// shader changed.
type Program interface {
	Object
	Changeable
	ChangeListener

	// Attach attaches shaders. Attaching an already attached shader has no effect.
	//
	// Parameters:
	//   - shaders: the shaders to attach
	Attach(shaders ...Shader)

	// Detach detaches a shader and drops the program's reference on it.
	//
	// Parameters:
	//   - s: the shader to detach
	Detach(s Shader)

	// Shaders returns the attached shaders in attach order.
	//
	// Returns:
	//   - []Shader: the attached shaders
	Shaders() []Shader

	// Link compiles the attached shaders, links the program and re-applies every
	// registered uniform.
	//
	// Returns:
	//   - bool: true if the program linked
	Link() bool

	// IsLinked reports whether the last link succeeded and no shader changed since.
	//
	// Returns:
	//   - bool: true if linked
	IsLinked() bool

	// CheckLinkStatus queries the native link status and logs the info log on failure.
	//
	// Returns:
	//   - bool: true if the native program is linked
	CheckLinkStatus() bool

	// InfoLog returns the native link log.
	//
	// Returns:
	//   - string: the info log
	InfoLog() string

	// LinkError returns the error of the last failed link, or nil.
	//
	// Returns:
	//   - error: an error wrapping ErrProgramLink or ErrShaderCompile
	LinkError() error

	// Parameter queries a program parameter.
	//
	// Parameters:
	//   - pname: LINK_STATUS, ACTIVE_UNIFORMS, ...
	//
	// Returns:
	//   - int32: the parameter value
	Parameter(pname gl.Enum) int32

	// Use installs the program, linking it first if needed.
	//
	// Returns:
	//   - error: the link error if the program could not be linked
	Use() error

	// Release installs program 0.
	Release()

	// IsUsed reports whether the program is the currently installed program.
	//
	// Returns:
	//   - bool: true if installed
	IsUsed() bool

	// AttributeLocation returns the location of a vertex attribute, linking first if needed.
	//
	// Parameters:
	//   - name: the attribute name
	//
	// Returns:
	//   - int32: the location, or -1
	AttributeLocation(name string) int32

	// BindAttributeLocation binds a vertex attribute to a location. Takes effect at the next link.
	//
	// Parameters:
	//   - index: the location
	//   - name: the attribute name
	BindAttributeLocation(index uint32, name string)

	// BindFragDataLocation binds a fragment output to a color number. Takes effect at the next link.
	//
	// Parameters:
	//   - color: the color number
	//   - name: the output name
	BindFragDataLocation(color uint32, name string)

	// UniformLocation returns the cached location of a uniform, linking first if needed.
	//
	// Parameters:
	//   - name: the uniform name
	//
	// Returns:
	//   - int32: the location, or -1
	UniformLocation(name string) int32

	// UniformBlockIndex returns the index of a uniform block, linking first if needed.
	//
	// Parameters:
	//   - name: the block name
	//
	// Returns:
	//   - uint32: the index, or gl.INVALID_INDEX
	UniformBlockIndex(name string) uint32

	// SetUniformBlockBinding assigns a binding point to a uniform block.
	//
	// Parameters:
	//   - name: the block name
	//   - binding: the binding point
	//
	// Returns:
	//   - error: ErrOutOfRange if the block does not exist
	SetUniformBlockBinding(name string, binding uint32) error

	// DispatchCompute installs the program and launches compute work groups.
	//
	// Parameters:
	//   - x, y, z: the number of work groups in each dimension
	DispatchCompute(x, y, z uint32)

	// AddUniform registers a uniform. The program takes a reference on it and writes its
	// value now (if linked) and after every link. A uniform with the same name replaces the
	// previous one.
	//
	// Parameters:
	//   - u: the uniform
	AddUniform(u AbstractUniform)

	// Uniform returns the registered uniform with the given name, or nil.
	//
	// Parameters:
	//   - name: the uniform name
	//
	// Returns:
	//   - AbstractUniform: the uniform
	Uniform(name string) AbstractUniform

	// Uniforms returns the registered uniforms.
	//
	// Returns:
	//   - []AbstractUniform: the uniforms in registration order
	Uniforms() []AbstractUniform
}

// program implements Program.
type program struct {
	object
	changeNotifier

	shaders   []Shader
	uniforms  []AbstractUniform
	locations map[string]int32
	linked    bool
	dirty     bool
	linkErr   error
}

var _ Program = &program{}

// NewProgram creates an empty program.
//
// Parameters:
//   - ctx: the owning context
//
// Returns:
//   - Program: the new program, holding one reference
func NewProgram(ctx Context) Program {
	p := &program{locations: make(map[string]int32), dirty: true}
	p.changeNotifier.owner = p
	p.init(ctx, p, KindProgram, ctx.API().CreateProgram(), true, p.detachAll, ctx.API().DeleteProgram)
	return p
}

// ProgramUniform returns the registered uniform called name, creating and registering it
// with the zero value if absent. It panics if a uniform with that name exists with a
// different value type.
//
// Parameters:
//   - p: the program
//   - name: the uniform name
//
// Returns:
//   - Uniform[T]: the typed uniform
func ProgramUniform[T UniformValue](p Program, name string) Uniform[T] {
	if existing := p.Uniform(name); existing != nil {
		u, ok := existing.(Uniform[T])
		if !ok {
			var zero T
			panic(fmt.Sprintf("glow: uniform %q is registered with a different type than %T", name, zero))
		}
		return u
	}
	var zero T
	u := NewUniform(name, zero)
	p.AddUniform(u)
	u.Unref()
	return u
}

// SetUniform sets the value of the uniform called name, registering it if absent.
//
// Parameters:
//   - p: the program
//   - name: the uniform name
//   - value: the new value
func SetUniform[T UniformValue](p Program, name string, value T) {
	ProgramUniform[T](p, name).Set(value)
}

func (p *program) Accept(v ObjectVisitor) {
	v.VisitProgram(p)
}

func (p *program) MarshalZerologObject(e *zerolog.Event) {
	p.object.MarshalZerologObject(e)
	e.Int("shaders", len(p.shaders)).Bool("linked", p.linked)
}

func (p *program) detachAll() {
	for _, s := range p.shaders {
		s.DeregisterListener(p)
		s.Unref()
	}
	p.shaders = nil
	for _, u := range p.uniforms {
		u.deregisterProgram(p)
		u.Unref()
	}
	p.uniforms = nil
}

func (p *program) Attach(shaders ...Shader) {
	for _, s := range shaders {
		if s == nil || p.hasShader(s) {
			continue
		}
		s.Ref()
		s.RegisterListener(p)
		p.api().AttachShader(p.id, s.ID())
		p.shaders = append(p.shaders, s)
	}
	p.invalidate()
}

func (p *program) hasShader(s Shader) bool {
	for _, v := range p.shaders {
		if v == s {
			return true
		}
	}
	return false
}

func (p *program) Detach(s Shader) {
	for i, v := range p.shaders {
		if v != s {
			continue
		}
		p.shaders = append(p.shaders[:i], p.shaders[i+1:]...)
		p.api().DetachShader(p.id, s.ID())
		s.DeregisterListener(p)
		p.invalidate()
		s.Unref()
		return
	}
}

func (p *program) Shaders() []Shader {
	return append([]Shader(nil), p.shaders...)
}

func (p *program) Notify(Changeable) {
	p.invalidate()
}

// invalidate marks the program for relinking and forwards the change to listeners.
func (p *program) invalidate() {
	p.dirty = true
	p.linked = false
	p.Changed()
}

func (p *program) Link() bool {
	p.dirty = false
	p.linked = false
	p.locations = make(map[string]int32)
	for _, s := range p.shaders {
		if !s.Compile() {
			p.linkErr = s.CompileError()
			if p.linkErr == nil {
				p.linkErr = errors.Wrapf(ErrShaderCompile, "%s %d", s.TypeString(), s.ID())
			}
			p.ctx.Logger().Error().EmbedObject(p).Err(p.linkErr).Msg("program not linked")
			return false
		}
	}
	p.api().LinkProgram(p.id)
	p.linked = p.CheckLinkStatus()
	p.ctx.afterCall("Program.Link")
	if !p.linked {
		return false
	}
	p.linkErr = nil
	for _, u := range p.uniforms {
		u.apply(p)
	}
	return true
}

func (p *program) IsLinked() bool {
	return p.linked && !p.dirty
}

func (p *program) CheckLinkStatus() bool {
	if p.Parameter(gl.LINK_STATUS) == gl.TRUE {
		return true
	}
	info := p.InfoLog()
	p.linkErr = errors.Wrapf(ErrProgramLink, "program %d: %s", p.id, info)
	p.ctx.Logger().Error().EmbedObject(p).Str("log", info).Msg("program linking failed")
	return false
}

func (p *program) InfoLog() string {
	return p.api().GetProgramInfoLog(p.id)
}

func (p *program) LinkError() error {
	return p.linkErr
}

func (p *program) Parameter(pname gl.Enum) int32 {
	return p.api().GetProgrami(p.id, pname)
}

// ensureLinked links if the program is dirty.
func (p *program) ensureLinked() bool {
	if p.dirty {
		return p.Link()
	}
	return p.linked
}

func (p *program) Use() error {
	if !p.ensureLinked() {
		return p.linkErr
	}
	p.api().UseProgram(p.id)
	return p.ctx.afterCall("Program.Use")
}

func (p *program) Release() {
	p.api().UseProgram(0)
}

func (p *program) IsUsed() bool {
	return uint32(p.api().GetInteger(gl.CURRENT_PROGRAM)) == p.id
}

func (p *program) AttributeLocation(name string) int32 {
	if !p.ensureLinked() {
		return -1
	}
	return p.api().GetAttribLocation(p.id, name)
}

func (p *program) BindAttributeLocation(index uint32, name string) {
	p.api().BindAttribLocation(p.id, index, name)
	p.dirty = true
}

func (p *program) BindFragDataLocation(color uint32, name string) {
	p.api().BindFragDataLocation(p.id, color, name)
	p.dirty = true
}

func (p *program) UniformLocation(name string) int32 {
	if !p.ensureLinked() {
		return -1
	}
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := p.api().GetUniformLocation(p.id, name)
	p.locations[name] = loc
	return loc
}

func (p *program) UniformBlockIndex(name string) uint32 {
	if !p.ensureLinked() {
		return gl.INVALID_INDEX
	}
	return p.api().GetUniformBlockIndex(p.id, name)
}

func (p *program) SetUniformBlockBinding(name string, binding uint32) error {
	index := p.UniformBlockIndex(name)
	if index == gl.INVALID_INDEX {
		return p.ctx.report(errors.Wrapf(ErrOutOfRange, "program %d: no uniform block %q", p.id, name))
	}
	p.api().UniformBlockBinding(p.id, index, binding)
	return p.ctx.afterCall("Program.SetUniformBlockBinding")
}

func (p *program) DispatchCompute(x, y, z uint32) {
	if p.Use() != nil {
		return
	}
	p.api().DispatchCompute(x, y, z)
	p.ctx.afterCall("Program.DispatchCompute")
}

func (p *program) AddUniform(u AbstractUniform) {
	for i, v := range p.uniforms {
		if v == u {
			return
		}
		if v.Name() == u.Name() {
			v.deregisterProgram(p)
			p.uniforms = append(p.uniforms[:i], p.uniforms[i+1:]...)
			v.Unref()
			break
		}
	}
	u.Ref()
	p.uniforms = append(p.uniforms, u)
	u.registerProgram(p)
}

// removeUniform drops u without touching its reference count; used when u itself is destroyed.
func (p *program) removeUniform(u AbstractUniform) {
	for i, v := range p.uniforms {
		if v == u {
			p.uniforms = append(p.uniforms[:i], p.uniforms[i+1:]...)
			return
		}
	}
}

func (p *program) Uniform(name string) AbstractUniform {
	for _, u := range p.uniforms {
		if u.Name() == name {
			return u
		}
	}
	return nil
}

func (p *program) Uniforms() []AbstractUniform {
	return append([]AbstractUniform(nil), p.uniforms...)
}
