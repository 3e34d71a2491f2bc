package glowutils

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/glow/gl"
	"github.com/Carmen-Shannon/glow/gl/gltest"
	"github.com/Carmen-Shannon/glow/glow"
)

func TestScreenAlignedQuadDraws(t *testing.T) {
	r := require.New(t)
	ctx, api := newTestContext(t)
	tex := glow.NewTexture(ctx, gl.TEXTURE_2D)
	r.NoError(tex.Image2D(0, gl.RGBA8, 4, 4, gl.RGBA, gl.UNSIGNED_BYTE, nil))

	q := NewScreenAlignedQuad(ctx, tex)
	r.Equal(2, tex.RefCount())
	r.Equal(1, q.RefCount())

	q.Draw()
	draws := api.Draws()
	r.Len(draws, 1)
	r.Equal(gl.TRIANGLE_STRIP, draws[0].Mode)
	r.Equal(int32(4), draws[0].Count)
	r.Equal(q.Program().ID(), draws[0].Program)
	r.True(q.Program().IsLinked())

	v, ok := api.UniformValue(q.Program().ID(), "source")
	r.True(ok)
	r.Equal(int32(0), v)

	q.SetSamplerUnit(3)
	r.Equal(int32(3), q.SamplerUnit())
	v, _ = api.UniformValue(q.Program().ID(), "source")
	r.Equal(int32(3), v)

	ptr, ok := api.AttribPointerOf(draws[0].VertexArray, 0)
	r.True(ok)
	r.Equal(int32(2), ptr.Size)
}

func TestScreenAlignedQuadReleasesResources(t *testing.T) {
	r := require.New(t)
	ctx, api := newTestContext(t)
	tex := glow.NewTexture(ctx, gl.TEXTURE_2D)

	q := NewScreenAlignedQuad(ctx, tex)
	other := glow.NewTexture(ctx, gl.TEXTURE_2D)
	q.SetTexture(other)
	r.Equal(1, tex.RefCount())
	r.Equal(2, other.RefCount())

	q.Unref()
	r.Equal(1, other.RefCount())
	r.Zero(api.Live(gltest.KindProgram))
	r.Zero(api.Live(gltest.KindShader))
	r.Zero(api.Live(gltest.KindVertexArray))
	r.Zero(api.Live(gltest.KindBuffer))
	r.Equal(2, api.Live(gltest.KindTexture))
}

func TestScreenAlignedQuadWithCustomShader(t *testing.T) {
	r := require.New(t)
	ctx, api := newTestContext(t)
	fs := glow.ShaderFromString(ctx, gl.FRAGMENT_SHADER, `#version 330 core
uniform vec4 color;
in vec2 v_uv;
out vec4 fragColor;
void main() { fragColor = color; }
`)
	q := NewScreenAlignedQuadWithShader(ctx, fs, nil)
	// Held by the test, the quad and the quad's program.
	r.Equal(3, fs.RefCount())
	r.Nil(q.Texture())

	glow.SetUniform(q.Program(), "color", mgl32.Vec4{1, 0, 0, 1})
	q.Draw()
	r.Len(api.Draws(), 1)

	fs.Unref()
	q.Unref()
	r.Zero(fs.RefCount())
}
