package glow

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"

	"github.com/Carmen-Shannon/glow/gl"
)

// UniformValue lists the Go types a Uniform can carry.
type UniformValue interface {
	float32 | int32 | uint32 | bool |
		mgl32.Vec2 | mgl32.Vec3 | mgl32.Vec4 | mgl32.Mat3 | mgl32.Mat4 |
		[]float32 | []int32 | []mgl32.Vec2 | []mgl32.Vec3 | []mgl32.Vec4 | []mgl32.Mat4
}

// AbstractUniform is the type-erased view of a Uniform held by programs.
type AbstractUniform interface {
	Referenced
	zerolog.LogObjectMarshaler

	// Name returns the uniform name as declared in the shader.
	//
	// Returns:
	//   - string: the name
	Name() string

	// Programs returns the programs the uniform is registered with.
	//
	// Returns:
	//   - []Program: the programs
	Programs() []Program

	registerProgram(p *program)
	deregisterProgram(p *program)
	apply(p *program)
}

// Uniform is a named, typed value that is written to every program it is registered with.
// Values are written immediately to linked programs and re-applied after every relink.
type Uniform[T UniformValue] interface {
	AbstractUniform

	// Value returns the current value.
	//
	// Returns:
	//   - T: the value
	Value() T

	// Set stores v and writes it to every linked program the uniform is registered with.
	//
	// Parameters:
	//   - v: the new value
	Set(v T)
}

// uniform implements Uniform.
type uniform[T UniformValue] struct {
	refCounter
	name     string
	value    T
	programs []*program
}

// NewUniform creates a uniform. Register it with Program.AddUniform.
//
// Parameters:
//   - name: the uniform name as declared in the shader
//   - value: the initial value
//
// Returns:
//   - Uniform[T]: the new uniform, holding one reference
func NewUniform[T UniformValue](name string, value T) Uniform[T] {
	u := &uniform[T]{name: name, value: value}
	u.refCounter = newRefCounter(u.detachAll)
	return u
}

func (u *uniform[T]) Name() string {
	return u.name
}

func (u *uniform[T]) Value() T {
	return u.value
}

func (u *uniform[T]) Set(v T) {
	u.value = v
	for _, p := range u.programs {
		if p.IsLinked() {
			u.apply(p)
		}
	}
}

func (u *uniform[T]) Programs() []Program {
	out := make([]Program, len(u.programs))
	for i, p := range u.programs {
		out[i] = p
	}
	return out
}

func (u *uniform[T]) registerProgram(p *program) {
	for _, v := range u.programs {
		if v == p {
			return
		}
	}
	u.programs = append(u.programs, p)
	if p.IsLinked() {
		u.apply(p)
	}
}

func (u *uniform[T]) deregisterProgram(p *program) {
	for i, v := range u.programs {
		if v == p {
			u.programs = append(u.programs[:i], u.programs[i+1:]...)
			return
		}
	}
}

func (u *uniform[T]) detachAll() {
	for _, p := range append([]*program(nil), u.programs...) {
		p.removeUniform(u)
	}
	u.programs = nil
}

func (u *uniform[T]) apply(p *program) {
	loc := p.UniformLocation(u.name)
	if loc < 0 {
		return
	}
	setUniformValue(p.api(), p.id, loc, u.value)
}

func (u *uniform[T]) MarshalZerologObject(e *zerolog.Event) {
	e.Str("uniform", u.name).Str("value", fmt.Sprint(u.value))
}

// setUniformValue issues the ProgramUniform call matching the dynamic type of value.
func setUniformValue(api gl.API, id uint32, loc int32, value any) {
	switch v := value.(type) {
	case float32:
		api.ProgramUniform1f(id, loc, v)
	case int32:
		api.ProgramUniform1i(id, loc, v)
	case uint32:
		api.ProgramUniform1ui(id, loc, v)
	case bool:
		var i int32
		if v {
			i = 1
		}
		api.ProgramUniform1i(id, loc, i)
	case mgl32.Vec2:
		api.ProgramUniform2fv(id, loc, v[:])
	case mgl32.Vec3:
		api.ProgramUniform3fv(id, loc, v[:])
	case mgl32.Vec4:
		api.ProgramUniform4fv(id, loc, v[:])
	case mgl32.Mat3:
		api.ProgramUniformMatrix3fv(id, loc, false, v[:])
	case mgl32.Mat4:
		api.ProgramUniformMatrix4fv(id, loc, false, v[:])
	case []float32:
		api.ProgramUniform1fv(id, loc, v)
	case []int32:
		api.ProgramUniform1iv(id, loc, v)
	case []mgl32.Vec2:
		out := make([]float32, 0, 2*len(v))
		for _, e := range v {
			out = append(out, e[:]...)
		}
		api.ProgramUniform2fv(id, loc, out)
	case []mgl32.Vec3:
		out := make([]float32, 0, 3*len(v))
		for _, e := range v {
			out = append(out, e[:]...)
		}
		api.ProgramUniform3fv(id, loc, out)
	case []mgl32.Vec4:
		out := make([]float32, 0, 4*len(v))
		for _, e := range v {
			out = append(out, e[:]...)
		}
		api.ProgramUniform4fv(id, loc, out)
	case []mgl32.Mat4:
		out := make([]float32, 0, 16*len(v))
		for _, e := range v {
			out = append(out, e[:]...)
		}
		api.ProgramUniformMatrix4fv(id, loc, false, out)
	}
}
