package glow

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/glow/gl"
	"github.com/Carmen-Shannon/glow/gl/gltest"
)

type recordingListener struct {
	notified []Changeable
}

func (l *recordingListener) Notify(sender Changeable) {
	l.notified = append(l.notified, sender)
}

func TestShaderCompilesSource(t *testing.T) {
	r := require.New(t)
	ctx, api := newTestContext(t)

	s := ShaderFromString(ctx, gl.VERTEX_SHADER, testVertexSource)
	r.True(s.IsCompiled())
	r.NoError(s.CompileError())
	r.Equal(gl.VERTEX_SHADER, s.Type())
	r.Equal("GL_VERTEX_SHADER", s.TypeString())
	r.Equal([]string{testVertexSource}, api.ShaderSources(s.ID()))
	r.Equal(int32(gl.VERTEX_SHADER), s.Parameter(gl.SHADER_TYPE))
}

func TestShaderCompileFailureIsRemembered(t *testing.T) {
	r := require.New(t)
	ctx, api := newTestContext(t)

	s := ShaderFromString(ctx, gl.FRAGMENT_SHADER, brokenSource)
	r.False(s.IsCompiled())
	r.True(errors.Is(s.CompileError(), ErrShaderCompile))
	r.Contains(s.InfoLog(), "missing semicolon")

	compiles := api.CallCount("CompileShader")
	r.False(s.Compile())
	r.Equal(compiles, api.CallCount("CompileShader"))

	s.Invalidate()
	r.False(s.Compile())
	r.Equal(compiles+1, api.CallCount("CompileShader"))
}

func TestShaderRecompilesWhenSourceChanges(t *testing.T) {
	r := require.New(t)
	ctx, _ := newTestContext(t)

	src := NewStaticStringSource(brokenSource)
	s := NewShaderWithSource(ctx, gl.FRAGMENT_SHADER, src)
	r.False(s.IsCompiled())

	l := &recordingListener{}
	s.RegisterListener(l)

	src.SetString(testFragmentSource)
	r.True(s.IsCompiled())
	r.Len(l.notified, 1)
	r.Equal(Changeable(s), l.notified[0])
}

func TestShaderWithCompositeSource(t *testing.T) {
	r := require.New(t)
	ctx, api := newTestContext(t)

	header := NewStaticStringSource("#version 430 core\n")
	body := NewStaticStringSource("void main() {}\n")
	composite := NewCompositeStringSource(header, body)
	s := NewShaderWithSource(ctx, gl.VERTEX_SHADER, composite)
	r.Equal([]string{"#version 430 core\n", "void main() {}\n"}, api.ShaderSources(s.ID()))

	body.SetString("#error nope\n")
	r.False(s.IsCompiled())
	r.Equal("#version 430 core\n#error nope\n", composite.String())
}

func TestShaderReleaseDetachesSource(t *testing.T) {
	r := require.New(t)
	ctx, api := newTestContext(t)

	src := NewStaticStringSource(testVertexSource)
	s := NewShaderWithSource(ctx, gl.VERTEX_SHADER, src)
	id := s.ID()
	s.Unref()
	r.False(api.IsLive(gltest.KindShader, id))
	r.Nil(s.Source())

	// Changing the source of a destroyed shader must not touch the driver.
	calls := len(api.Calls())
	src.SetString("void main() {}\n")
	r.Len(api.Calls(), calls)
}
