package glow

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/Carmen-Shannon/glow/gl"
	"github.com/Carmen-Shannon/glow/gl/gltest"
)

const (
	testVertexSource = `#version 430 core
layout(location = 0) in vec3 a_vertex;
in vec2 a_uv;
uniform mat4 transform;
uniform float scale;
uniform vec4 colors[3];
out vec2 v_uv;
void main() { v_uv = a_uv; gl_Position = transform * vec4(a_vertex * scale, 1.0); }
`
	testFragmentSource = `#version 430 core
uniform vec4 color;
uniform int mode;
uniform Lights {
    vec4 positions[4];
};
in vec2 v_uv;
out vec4 fragColor;
void main() { fragColor = color; }
`
	brokenSource = `#version 430 core
#error missing semicolon
`
)

// newTestContext returns a context over a fresh in-memory driver with logging discarded.
func newTestContext(t *testing.T, options ...ContextBuilderOption) (Context, *gltest.Functions) {
	t.Helper()
	api := gltest.New(gltest.WithDebugContext())
	opts := append([]ContextBuilderOption{WithLogger(zerolog.Nop()), WithPanicOnErrors(false)}, options...)
	return NewContext(api, opts...), api
}

// newTestProgram returns a program with a vertex and a fragment shader attached.
func newTestProgram(t *testing.T, ctx Context) (Program, Shader, Shader) {
	t.Helper()
	vs := ShaderFromString(ctx, gl.VERTEX_SHADER, testVertexSource)
	fs := ShaderFromString(ctx, gl.FRAGMENT_SHADER, testFragmentSource)
	p := NewProgram(ctx)
	p.Attach(vs, fs)
	return p, vs, fs
}
