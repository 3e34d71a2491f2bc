package glow

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/glow/gl"
	"github.com/Carmen-Shannon/glow/gl/gltest"
)

func TestProgramLinksLazilyOnUse(t *testing.T) {
	r := require.New(t)
	ctx, api := newTestContext(t)
	p, _, _ := newTestProgram(t, ctx)

	r.False(p.IsLinked())
	r.Zero(api.CallCount("LinkProgram"))

	r.NoError(p.Use())
	r.True(p.IsLinked())
	r.True(p.IsUsed())
	r.Equal(p.ID(), api.CurrentProgram())
	r.Equal(1, api.CallCount("LinkProgram"))

	r.NoError(p.Use())
	r.Equal(1, api.CallCount("LinkProgram"))

	p.Release()
	r.False(p.IsUsed())
}

func TestProgramAttributeLocations(t *testing.T) {
	r := require.New(t)
	ctx, _ := newTestContext(t)
	p, _, _ := newTestProgram(t, ctx)

	r.Equal(int32(0), p.AttributeLocation("a_vertex"))
	r.Equal(int32(1), p.AttributeLocation("a_uv"))
	r.Equal(int32(-1), p.AttributeLocation("missing"))

	p.BindAttributeLocation(5, "a_uv")
	r.False(p.IsLinked())
	r.Equal(int32(5), p.AttributeLocation("a_uv"))
}

func TestProgramUniformsAppliedAfterLink(t *testing.T) {
	r := require.New(t)
	ctx, api := newTestContext(t)
	p, _, _ := newTestProgram(t, ctx)

	SetUniform(p, "scale", float32(2))
	SetUniform(p, "transform", mgl32.Translate3D(1, 2, 3))
	SetUniform(p, "mode", true)
	SetUniform(p, "colors", []mgl32.Vec4{{1, 0, 0, 1}, {0, 1, 0, 1}})
	_, ok := api.UniformValue(p.ID(), "scale")
	r.False(ok)

	r.NoError(p.Use())
	v, ok := api.UniformValue(p.ID(), "scale")
	r.True(ok)
	r.Equal(float32(2), v)

	m := mgl32.Translate3D(1, 2, 3)
	v, _ = api.UniformValue(p.ID(), "transform")
	r.Equal(m[:], v)

	v, _ = api.UniformValue(p.ID(), "mode")
	r.Equal(int32(1), v)

	v, _ = api.UniformValue(p.ID(), "colors")
	r.Equal([]float32{1, 0, 0, 1, 0, 1, 0, 1}, v)

	SetUniform(p, "scale", float32(3))
	v, _ = api.UniformValue(p.ID(), "scale")
	r.Equal(float32(3), v)
	r.Equal(float32(3), ProgramUniform[float32](p, "scale").Value())
}

func TestProgramUniformTypeMismatchPanics(t *testing.T) {
	ctx, _ := newTestContext(t)
	p, _, _ := newTestProgram(t, ctx)

	SetUniform(p, "scale", float32(1))
	require.Panics(t, func() { SetUniform(p, "scale", int32(1)) })
}

func TestUniformSharedBetweenPrograms(t *testing.T) {
	r := require.New(t)
	ctx, api := newTestContext(t)
	p1, _, _ := newTestProgram(t, ctx)
	p2, _, _ := newTestProgram(t, ctx)
	r.True(p1.Link())
	r.True(p2.Link())

	u := NewUniform("color", mgl32.Vec4{1, 0, 0, 1})
	p1.AddUniform(u)
	p2.AddUniform(u)
	r.Equal(3, u.RefCount())
	r.Len(u.Programs(), 2)

	u.Set(mgl32.Vec4{0, 0, 1, 1})
	for _, p := range []Program{p1, p2} {
		v, ok := api.UniformValue(p.ID(), "color")
		r.True(ok)
		r.Equal([]float32{0, 0, 1, 1}, v)
	}

	u.Unref()
	p1.Unref()
	r.Equal(1, u.RefCount())
	r.Len(u.Programs(), 1)

	replacement := NewUniform("color", mgl32.Vec4{1, 1, 1, 1})
	p2.AddUniform(replacement)
	r.Zero(u.RefCount())
	r.Same(replacement, p2.Uniform("color"))
}

func TestProgramRelinksWhenShaderChanges(t *testing.T) {
	r := require.New(t)
	ctx, api := newTestContext(t)
	p, vs, _ := newTestProgram(t, ctx)
	SetUniform(p, "scale", float32(4))
	r.NoError(p.Use())

	vs.SetSourceString(testVertexSource + "\n// touched\n")
	r.False(p.IsLinked())

	r.NoError(p.Use())
	r.Equal(2, api.CallCount("LinkProgram"))
	v, _ := api.UniformValue(p.ID(), "scale")
	r.Equal(float32(4), v)
}

func TestProgramLinkFailures(t *testing.T) {
	r := require.New(t)
	ctx, api := newTestContext(t)

	empty := NewProgram(ctx)
	r.False(empty.Link())
	r.True(errors.Is(empty.LinkError(), ErrProgramLink))
	r.Contains(empty.InfoLog(), "no shaders")

	broken := NewProgram(ctx)
	broken.Attach(ShaderFromString(ctx, gl.FRAGMENT_SHADER, brokenSource))
	err := broken.Use()
	r.True(errors.Is(err, ErrShaderCompile))
	r.Zero(api.CurrentProgram())
	r.Equal(int32(-1), broken.UniformLocation("color"))
}

func TestProgramHoldsShaderReferences(t *testing.T) {
	r := require.New(t)
	ctx, api := newTestContext(t)
	p, vs, fs := newTestProgram(t, ctx)

	r.Equal(2, vs.RefCount())
	r.Equal([]Shader{vs, fs}, p.Shaders())

	p.Attach(vs)
	r.Equal(2, vs.RefCount())

	p.Detach(fs)
	r.Equal(1, fs.RefCount())
	r.Equal([]uint32{vs.ID()}, api.AttachedShaders(p.ID()))

	vs.Unref()
	r.True(api.IsLive(gltest.KindShader, vs.ID()))
	p.Unref()
	r.False(api.IsLive(gltest.KindShader, vs.ID()))
	r.False(api.IsLive(gltest.KindProgram, p.ID()))
}

func TestProgramUniformBlockBinding(t *testing.T) {
	r := require.New(t)
	ctx, api := newTestContext(t)
	p, _, _ := newTestProgram(t, ctx)

	r.NoError(p.SetUniformBlockBinding("Lights", 3))
	binding, ok := api.UniformBlockBindingOf(p.ID(), "Lights")
	r.True(ok)
	r.Equal(uint32(3), binding)

	r.True(errors.Is(p.SetUniformBlockBinding("Missing", 1), ErrOutOfRange))
}

func TestProgramDispatchCompute(t *testing.T) {
	r := require.New(t)
	ctx, api := newTestContext(t)

	p := NewProgram(ctx)
	p.Attach(ShaderFromString(ctx, gl.COMPUTE_SHADER, "#version 430 core\nlayout(local_size_x = 8) in;\nvoid main() {}\n"))
	p.DispatchCompute(4, 2, 1)
	r.Equal(1, api.CallCount("DispatchCompute"))
	r.Zero(api.PendingErrors())
}
