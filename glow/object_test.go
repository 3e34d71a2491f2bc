package glow

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/glow/gl"
	"github.com/Carmen-Shannon/glow/gl/gltest"
)

func TestRefCounterReleasesOnce(t *testing.T) {
	r := require.New(t)
	released := 0
	rc := newRefCounter(func() { released++ })

	r.Equal(1, rc.RefCount())
	rc.Ref()
	r.Equal(2, rc.RefCount())
	rc.Unref()
	r.Zero(released)
	rc.Unref()
	r.Equal(1, released)
	r.True(rc.isReleased())

	rc.Unref()
	rc.Ref()
	r.Equal(1, released)
	r.Zero(rc.RefCount())
}

func TestObjectDeletesOwnedNameOnRelease(t *testing.T) {
	r := require.New(t)
	ctx, api := newTestContext(t)

	b := NewBuffer(ctx, gl.ARRAY_BUFFER)
	id := b.ID()
	r.True(api.IsLive(gltest.KindBuffer, id))
	r.True(b.OwnsGLObject())

	b.Ref()
	b.Unref()
	r.True(api.IsLive(gltest.KindBuffer, id))

	b.Unref()
	r.False(api.IsLive(gltest.KindBuffer, id))
	r.Zero(ctx.Count())
}

func TestForeignObjectKeepsNativeName(t *testing.T) {
	r := require.New(t)
	ctx, api := newTestContext(t)

	id := api.GenBuffer()
	api.BindBuffer(gl.ARRAY_BUFFER, id)
	api.BufferData(gl.ARRAY_BUFFER, 16, nil, gl.DYNAMIC_DRAW)

	b := BufferFromID(ctx, id, gl.ARRAY_BUFFER, false)
	r.False(b.OwnsGLObject())
	r.Equal(16, b.Size())
	r.Equal(gl.DYNAMIC_DRAW, b.Usage())

	b.Unref()
	r.True(api.IsLive(gltest.KindBuffer, id))

	owned := BufferFromID(ctx, id, gl.ARRAY_BUFFER, false)
	owned.TakeOwnership()
	owned.Unref()
	r.False(api.IsLive(gltest.KindBuffer, id))
}

func TestReleaseOwnershipLeavesNameAlive(t *testing.T) {
	r := require.New(t)
	ctx, api := newTestContext(t)

	tex := NewTexture(ctx, gl.TEXTURE_2D)
	tex.ReleaseOwnership()
	tex.Unref()
	r.True(api.IsLive(gltest.KindTexture, tex.ID()))
}

func TestObjectNames(t *testing.T) {
	r := require.New(t)
	ctx, _ := newTestContext(t)

	p := NewProgram(ctx)
	r.False(p.HasName())
	p.SetName("blur")
	r.True(p.HasName())
	r.Equal("blur", p.Name())
	r.Equal(KindProgram, p.Kind())
	r.Equal(ctx, p.Context())
}

func TestDefaultFBOIgnoresRefCounting(t *testing.T) {
	r := require.New(t)
	ctx, _ := newTestContext(t)

	fbo := DefaultFBO(ctx)
	r.True(fbo.IsDefault())
	r.Zero(fbo.ID())
	r.Same(fbo, FrameBufferFromID(ctx, 0, true))

	fbo.Unref()
	fbo.Unref()
	r.Equal(1, fbo.RefCount())
	r.Zero(ctx.Count())
}
