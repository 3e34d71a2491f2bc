package glowutils

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/glow/gl"
	"github.com/Carmen-Shannon/glow/gl/gltest"
	"github.com/Carmen-Shannon/glow/glow"
)

func TestCollectObjectInfo(t *testing.T) {
	r := require.New(t)
	ctx, _ := newTestContext(t)

	b := glow.NewBuffer(ctx, gl.ARRAY_BUFFER)
	b.Allocate(64, gl.STATIC_DRAW)
	b.SetName("vertices")

	tex := glow.NewTexture(ctx, gl.TEXTURE_2D)
	r.NoError(tex.Image2D(0, gl.RGBA8, 4, 4, gl.RGBA, gl.UNSIGNED_BYTE, nil))

	cube := glow.NewTexture(ctx, gl.TEXTURE_CUBE_MAP)
	for _, face := range glow.CubeMapFaces {
		r.NoError(cube.CubeMapImage(face, 0, gl.R8, 2, 2, gl.RED, gl.UNSIGNED_BYTE, nil))
	}

	rbo := glow.NewRenderBufferObject(ctx)
	rbo.StorageMultisample(4, gl.DEPTH24_STENCIL8, 2, 2)

	info := CollectObjectInfo(ctx)
	r.Equal(4, info.Total())
	r.Equal(1, info.Counts[glow.KindBuffer])
	r.Equal(2, info.Counts[glow.KindTexture])
	r.Equal(1, info.Counts[glow.KindRenderBufferObject])
	r.Equal(int64(64), info.BufferBytes)
	r.Equal(int64(4*4*4+6*2*2), info.TextureBytes)
	r.Equal(int64(2*2*4*4), info.RenderBufferBytes)
	r.Equal([]string{"vertices"}, info.Named)
}

func TestLogObjectInfo(t *testing.T) {
	r := require.New(t)
	var out bytes.Buffer
	ctx := glow.NewContext(gltest.New(), glow.WithLogger(zerolog.New(&out)), glow.WithPanicOnErrors(false))
	glow.NewBuffer(ctx, gl.ARRAY_BUFFER).Allocate(16, gl.STATIC_DRAW)

	LogObjectInfo(ctx)
	r.Contains(out.String(), `"message":"object info"`)
	r.Contains(out.String(), `"buffer_bytes":16`)
	r.Contains(out.String(), `"Buffer":1`)
}
