// Package glowutils holds helpers built on top of glow: file-backed and templated shader
// sources, image loading into textures, a screen-aligned quad, a camera and object dumps.
package glowutils

import (
	"github.com/Carmen-Shannon/glow/gl"
	"github.com/Carmen-Shannon/glow/glow"
)

const quadVertexSource = `#version 330 core
layout(location = 0) in vec2 a_vertex;
out vec2 v_uv;

void main()
{
    v_uv = a_vertex * 0.5 + 0.5;
    gl_Position = vec4(a_vertex, 0.0, 1.0);
}
`

const quadFragmentSource = `#version 330 core
uniform sampler2D source;
in vec2 v_uv;
layout(location = 0) out vec4 fragColor;

void main()
{
    fragColor = texture(source, v_uv);
}
`

// quadVertices is a triangle strip covering normalized device coordinates.
var quadVertices = []float32{
	-1, 1,
	-1, -1,
	1, 1,
	1, -1,
}

// ScreenAlignedQuad draws a full-viewport quad, by default sampling a texture.
type ScreenAlignedQuad interface {
	glow.Referenced

	// Draw renders the quad with the current framebuffer and viewport.
	Draw()

	// Program returns the program used for drawing.
	//
	// Returns:
	//   - glow.Program: the program
	Program() glow.Program

	// VertexShader returns the built-in vertex shader.
	//
	// Returns:
	//   - glow.Shader: the vertex shader
	VertexShader() glow.Shader

	// FragmentShader returns the fragment shader.
	//
	// Returns:
	//   - glow.Shader: the fragment shader
	FragmentShader() glow.Shader

	// Texture returns the sampled texture, or nil.
	//
	// Returns:
	//   - glow.Texture: the texture
	Texture() glow.Texture

	// SetTexture replaces the sampled texture. The quad holds a reference on it.
	//
	// Parameters:
	//   - t: the texture, or nil
	SetTexture(t glow.Texture)

	// SamplerUnit returns the texture unit index the texture is bound to while drawing.
	//
	// Returns:
	//   - int32: the unit index
	SamplerUnit() int32

	// SetSamplerUnit selects the texture unit and updates the "source" sampler uniform.
	//
	// Parameters:
	//   - unit: the unit index
	SetSamplerUnit(unit int32)
}

// screenAlignedQuad implements ScreenAlignedQuad.
type screenAlignedQuad struct {
	glow.Referenced
	ctx            glow.Context
	vao            glow.VertexArrayObject
	buffer         glow.Buffer
	program        glow.Program
	vertexShader   glow.Shader
	fragmentShader glow.Shader
	texture        glow.Texture
	samplerUnit    int32
}

var _ ScreenAlignedQuad = &screenAlignedQuad{}

// NewScreenAlignedQuad creates a quad that draws texture unchanged.
//
// Parameters:
//   - ctx: the owning context
//   - texture: the texture to draw, or nil to set it later
//
// Returns:
//   - ScreenAlignedQuad: the quad, holding one reference
func NewScreenAlignedQuad(ctx glow.Context, texture glow.Texture) ScreenAlignedQuad {
	fs := glow.ShaderFromString(ctx, gl.FRAGMENT_SHADER, quadFragmentSource)
	defer fs.Unref()
	return NewScreenAlignedQuadWithShader(ctx, fs, texture)
}

// NewScreenAlignedQuadWithShader creates a quad drawn with a custom fragment shader. The
// fragment shader receives the interpolated texture coordinate as "in vec2 v_uv" and the
// texture, if any, through "uniform sampler2D source".
//
// Parameters:
//   - ctx: the owning context
//   - fragmentShader: the fragment shader; the quad holds a reference on it
//   - texture: the texture to sample, or nil
//
// Returns:
//   - ScreenAlignedQuad: the quad, holding one reference
func NewScreenAlignedQuadWithShader(ctx glow.Context, fragmentShader glow.Shader, texture glow.Texture) ScreenAlignedQuad {
	q := &screenAlignedQuad{ctx: ctx}
	q.Referenced = glow.NewReferenced(q.release)

	q.buffer = glow.NewBuffer(ctx, gl.ARRAY_BUFFER)
	if err := glow.SetBufferData(q.buffer, quadVertices, gl.STATIC_DRAW); err != nil {
		ctx.Logger().Error().Err(err).Msg("screen aligned quad: vertex upload failed")
	}

	q.vao = glow.NewVertexArrayObject(ctx)
	binding := q.vao.Binding(0)
	binding.SetAttribute(0)
	binding.SetBuffer(q.buffer, 0, 2*4)
	binding.SetFormat(2, gl.FLOAT, false, 0)
	q.vao.Enable(0)

	q.vertexShader = glow.ShaderFromString(ctx, gl.VERTEX_SHADER, quadVertexSource)
	fragmentShader.Ref()
	q.fragmentShader = fragmentShader

	q.program = glow.NewProgram(ctx)
	q.program.Attach(q.vertexShader, q.fragmentShader)

	q.SetTexture(texture)
	q.SetSamplerUnit(0)
	return q
}

func (q *screenAlignedQuad) release() {
	q.SetTexture(nil)
	q.program.Unref()
	q.vertexShader.Unref()
	q.fragmentShader.Unref()
	q.vao.Unref()
	q.buffer.Unref()
}

func (q *screenAlignedQuad) Draw() {
	if q.texture != nil {
		q.texture.BindActive(gl.TEXTURE0 + gl.Enum(q.samplerUnit))
	}
	if err := q.program.Use(); err != nil {
		q.ctx.Logger().Error().Err(err).Msg("screen aligned quad: program not usable")
		return
	}
	q.vao.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
	q.program.Release()
	if q.texture != nil {
		q.texture.Unbind()
	}
}

func (q *screenAlignedQuad) Program() glow.Program {
	return q.program
}

func (q *screenAlignedQuad) VertexShader() glow.Shader {
	return q.vertexShader
}

func (q *screenAlignedQuad) FragmentShader() glow.Shader {
	return q.fragmentShader
}

func (q *screenAlignedQuad) Texture() glow.Texture {
	return q.texture
}

func (q *screenAlignedQuad) SetTexture(t glow.Texture) {
	if t != nil {
		t.Ref()
	}
	if q.texture != nil {
		q.texture.Unref()
	}
	q.texture = t
}

func (q *screenAlignedQuad) SamplerUnit() int32 {
	return q.samplerUnit
}

func (q *screenAlignedQuad) SetSamplerUnit(unit int32) {
	q.samplerUnit = unit
	glow.SetUniform(q.program, "source", unit)
}
