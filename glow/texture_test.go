package glow

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/glow/gl"
	"github.com/Carmen-Shannon/glow/gl/gltest"
)

func TestTextureImage2DRespectsUnpackAlignment(t *testing.T) {
	r := require.New(t)
	ctx, api := newTestContext(t)
	tex := NewTexture(ctx, gl.TEXTURE_2D)

	// 3 RGB pixels are 9 bytes, padded to 12 under the default alignment of 4.
	pixels := make([]byte, 18)
	r.True(errors.Is(tex.Image2D(0, gl.RGB8, 3, 2, gl.RGB, gl.UNSIGNED_BYTE, pixels), ErrBufferTooSmall))
	r.Zero(api.CallCount("TexImage2D"))

	api.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	r.NoError(tex.Image2D(0, gl.RGB8, 3, 2, gl.RGB, gl.UNSIGNED_BYTE, pixels))

	w, h, d := tex.Size()
	r.Equal([3]int32{3, 2, 1}, [3]int32{w, h, d})
	r.Equal(gl.RGB8, tex.InternalFormat())
	lw, lh, _, ok := api.TextureLevelOf(tex.ID(), gl.TEXTURE_2D, 0)
	r.True(ok)
	r.Equal(int32(3), lw)
	r.Equal(int32(2), lh)
	r.Equal(int32(3), tex.LevelParameter(0, gl.TEXTURE_WIDTH))

	r.NoError(tex.SubImage2D(0, 1, 0, 2, 2, gl.RGB, gl.UNSIGNED_BYTE, make([]byte, 12)))
	r.True(errors.Is(tex.SubImage2D(0, 0, 0, 1, 1, gl.RGB, gl.UNSIGNED_BYTE, nil), ErrBufferTooSmall))
	r.Zero(api.PendingErrors())
}

func TestTextureCubeMapFaces(t *testing.T) {
	r := require.New(t)
	ctx, api := newTestContext(t)
	cube := NewTexture(ctx, gl.TEXTURE_CUBE_MAP)

	face := make([]byte, 4*4*4)
	for _, f := range CubeMapFaces {
		r.NoError(cube.CubeMapImage(f, 0, gl.RGBA8, 4, 4, gl.RGBA, gl.UNSIGNED_BYTE, face))
	}
	for _, f := range CubeMapFaces {
		w, _, _, ok := api.TextureLevelOf(cube.ID(), f, 0)
		r.True(ok, gl.TextureTargetString(f))
		r.Equal(int32(4), w)
	}
	r.Equal(cube.ID(), api.BoundTexture(gl.TEXTURE0, gl.TEXTURE_CUBE_MAP))

	cube.GenerateMipmap()
	w, h, _, ok := api.TextureLevelOf(cube.ID(), gl.TEXTURE_CUBE_MAP_NEGATIVE_Z, 2)
	r.True(ok)
	r.Equal([2]int32{1, 1}, [2]int32{w, h})
	r.Zero(api.PendingErrors())
}

func TestTextureStorageAndMipmaps(t *testing.T) {
	r := require.New(t)
	ctx, api := newTestContext(t)

	immutable := NewTexture(ctx, gl.TEXTURE_2D)
	immutable.Storage2D(3, gl.RGBA8, 8, 8)
	w, _, _, ok := api.TextureLevelOf(immutable.ID(), gl.TEXTURE_2D, 2)
	r.True(ok)
	r.Equal(int32(2), w)
	sw, sh, _ := immutable.Size()
	r.Equal([2]int32{8, 8}, [2]int32{sw, sh})

	mipped := NewTexture(ctx, gl.TEXTURE_2D)
	r.NoError(mipped.Image2D(0, gl.RGBA8, 8, 4, gl.RGBA, gl.UNSIGNED_BYTE, nil))
	mipped.GenerateMipmap()
	w, h, _, ok := api.TextureLevelOf(mipped.ID(), gl.TEXTURE_2D, 3)
	r.True(ok)
	r.Equal([2]int32{1, 1}, [2]int32{w, h})
	r.Zero(api.PendingErrors())
}

func TestTextureParametersAndUnits(t *testing.T) {
	r := require.New(t)
	ctx, api := newTestContext(t)
	tex := NewTexture(ctx, gl.TEXTURE_2D)

	r.Equal(int32(gl.REPEAT), tex.Parameter(gl.TEXTURE_WRAP_S))
	tex.SetParameter(gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	tex.SetParameter(gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	r.Equal(int32(gl.CLAMP_TO_EDGE), tex.Parameter(gl.TEXTURE_WRAP_S))
	r.Equal(int32(gl.LINEAR_MIPMAP_LINEAR), tex.Parameter(gl.TEXTURE_MIN_FILTER))

	tex.SetParameterf(gl.TEXTURE_MAX_ANISOTROPY, 4)
	call, ok := api.LastCall("TexParameterf")
	r.True(ok)
	r.Equal([]any{gl.TEXTURE_2D, gl.TEXTURE_MAX_ANISOTROPY, float32(4)}, call.Args)

	tex.BindActive(gl.TEXTURE0 + 3)
	r.Equal(tex.ID(), api.BoundTexture(gl.TEXTURE0+3, gl.TEXTURE_2D))
	ActiveTexture(ctx, gl.TEXTURE0)
	tex.Unbind()
	r.Zero(api.BoundTexture(gl.TEXTURE0, gl.TEXTURE_2D))
	r.Equal(tex.ID(), api.BoundTexture(gl.TEXTURE0+3, gl.TEXTURE_2D))
	r.Zero(api.PendingErrors())
}

func TestTextureFromIDReadsLevelZero(t *testing.T) {
	r := require.New(t)
	ctx, api := newTestContext(t)

	id := api.GenTexture()
	api.BindTexture(gl.TEXTURE_2D, id)
	api.TexImage2D(gl.TEXTURE_2D, 0, int32(gl.RGBA8), 16, 8, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)

	tex := TextureFromID(ctx, id, gl.TEXTURE_2D, false)
	w, h, _ := tex.Size()
	r.Equal([2]int32{16, 8}, [2]int32{w, h})
	r.Equal(gl.RGBA8, tex.InternalFormat())

	tex.Unref()
	r.True(api.IsLive(gltest.KindTexture, id))
}

func TestRenderBufferStorage(t *testing.T) {
	r := require.New(t)
	ctx, api := newTestContext(t)

	rbo := NewRenderBufferObject(ctx)
	rbo.StorageMultisample(4, gl.RGBA8, 16, 8)
	format, w, h, samples, ok := api.RenderbufferStorageOf(rbo.ID())
	r.True(ok)
	r.Equal(gl.RGBA8, format)
	r.Equal([3]int32{16, 8, 4}, [3]int32{w, h, samples})
	r.Equal(int32(4), rbo.Parameter(gl.RENDERBUFFER_SAMPLES))
	r.Equal(int32(16), rbo.Parameter(gl.RENDERBUFFER_WIDTH))

	rbo.Storage(gl.DEPTH24_STENCIL8, 32, 32)
	r.Equal(int32(gl.DEPTH24_STENCIL8), rbo.Parameter(gl.RENDERBUFFER_INTERNAL_FORMAT))

	rbo.Unref()
	r.False(api.IsLive(gltest.KindRenderbuffer, rbo.ID()))
}
