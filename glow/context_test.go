package glow

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/glow/gl"
	"github.com/Carmen-Shannon/glow/gl/gltest"
)

func TestNewContextQueriesDriver(t *testing.T) {
	r := require.New(t)
	ctx, _ := newTestContext(t)

	r.Equal(Version{Major: 4, Minor: 3}, ctx.Version())
	r.Equal("4.3", ctx.Version().String())
	r.True(ctx.Version().AtLeast(3, 3))
	r.False(ctx.Version().AtLeast(4, 5))
	r.Equal("glow", ctx.Vendor())
	r.Equal("gltest", ctx.Renderer())
	r.True(ctx.IsCoreProfile())
	r.True(ctx.IsDebugContext())
	r.Zero(ctx.Count())
}

func TestNewContextCompatibilityProfile(t *testing.T) {
	r := require.New(t)
	ctx := NewContext(gltest.New(gltest.WithVersion(3, 3), gltest.WithCompatibilityProfile()), WithLogger(zerolog.Nop()))

	r.Equal(Version{Major: 3, Minor: 3}, ctx.Version())
	r.False(ctx.IsCoreProfile())
	r.False(ctx.IsDebugContext())
}

func TestNewContextPanicsWithoutAPI(t *testing.T) {
	require.Panics(t, func() { NewContext(nil) })
}

func TestRegistryTracksLiveObjects(t *testing.T) {
	r := require.New(t)
	ctx, _ := newTestContext(t)

	b := NewBuffer(ctx, gl.ARRAY_BUFFER)
	tex := NewTexture(ctx, gl.TEXTURE_2D)
	vao := NewVertexArrayObject(ctx)
	r.Equal(3, ctx.Count())
	r.Equal([]Object{b, tex, vao}, ctx.Objects())

	tex.Unref()
	r.Equal([]Object{b, vao}, ctx.Objects())

	b.Unref()
	vao.Unref()
	r.Zero(ctx.Count())
}

type countingVisitor struct {
	BaseObjectVisitor
	buffers  int
	textures int
	shaders  int
}

func (v *countingVisitor) VisitBuffer(Buffer)   { v.buffers++ }
func (v *countingVisitor) VisitTexture(Texture) { v.textures++ }
func (v *countingVisitor) VisitShader(Shader)   { v.shaders++ }

func TestVisitDispatchesByKind(t *testing.T) {
	r := require.New(t)
	ctx, _ := newTestContext(t)

	NewBuffer(ctx, gl.ARRAY_BUFFER)
	NewBuffer(ctx, gl.ELEMENT_ARRAY_BUFFER)
	NewTexture(ctx, gl.TEXTURE_2D)
	NewProgram(ctx)

	v := &countingVisitor{}
	ctx.Visit(v)
	r.Equal(2, v.buffers)
	r.Equal(1, v.textures)
	r.Zero(v.shaders)
}

func TestCheckErrorReturnsFirstQueuedCode(t *testing.T) {
	r := require.New(t)
	ctx, api := newTestContext(t)

	r.NoError(ctx.CheckError("idle"))

	api.PushError(gl.INVALID_VALUE)
	api.PushError(gl.OUT_OF_MEMORY)
	err := ctx.CheckError("upload")
	r.Error(err)

	var glErr *Error
	r.True(errors.As(err, &glErr))
	r.Equal(gl.INVALID_VALUE, glErr.Code)
	r.Equal("upload", glErr.Where)
	r.Equal("GL_INVALID_VALUE", glErr.CodeString())
	r.Equal("glow: GL_INVALID_VALUE in upload", err.Error())
	r.Zero(api.PendingErrors())
}

func TestCheckErrorPanicsWhenConfigured(t *testing.T) {
	r := require.New(t)
	ctx, api := newTestContext(t, WithPanicOnErrors(true))
	r.True(ctx.PanicsOnErrors())

	api.PushError(gl.INVALID_OPERATION)
	r.PanicsWithError("glow: GL_INVALID_OPERATION in draw", func() {
		_ = ctx.CheckError("draw")
	})
}

func TestErrorCheckingAfterCalls(t *testing.T) {
	r := require.New(t)

	ctx, api := newTestContext(t, WithErrorChecking(true))
	b := NewBuffer(ctx, gl.ARRAY_BUFFER)
	b.SetData([]byte{1, 2, 3, 4}, gl.STATIC_DRAW)
	api.PushError(gl.INVALID_VALUE)
	err := b.SetSubData(0, []byte{9})
	var glErr *Error
	r.True(errors.As(err, &glErr))
	r.Equal("Buffer.SetSubData", glErr.Where)

	ctx, api = newTestContext(t)
	b = NewBuffer(ctx, gl.ARRAY_BUFFER)
	b.SetData([]byte{1, 2, 3, 4}, gl.STATIC_DRAW)
	api.PushError(gl.INVALID_VALUE)
	r.NoError(b.SetSubData(0, []byte{9}))
	r.Equal(1, api.PendingErrors())
}
