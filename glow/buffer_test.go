package glow

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/glow/common"
	"github.com/Carmen-Shannon/glow/gl"
)

func TestBufferSetDataAndReadBack(t *testing.T) {
	r := require.New(t)
	ctx, api := newTestContext(t)

	b := NewBuffer(ctx, gl.ARRAY_BUFFER)
	r.NoError(SetBufferData(b, []float32{1, 2, 3, 4}, gl.STATIC_DRAW))
	r.Equal(16, b.Size())
	r.Equal(gl.STATIC_DRAW, b.Usage())
	r.Equal(int32(16), b.Parameter(gl.BUFFER_SIZE))
	r.Equal(common.SliceToBytes([]float32{1, 2, 3, 4}), api.BufferContents(b.ID()))

	r.NoError(SetBufferSubData(b, 4, []float32{9}))
	got, err := b.SubData(0, 8)
	r.NoError(err)
	r.Equal(common.SliceToBytes([]float32{1, 9}), got)
}

func TestBufferStructAndTypedReadBack(t *testing.T) {
	r := require.New(t)
	ctx, _ := newTestContext(t)

	type block struct {
		Color  [4]float32
		Scale  float32
		Flags  uint32
		Offset [2]float32
	}
	b := NewBuffer(ctx, gl.UNIFORM_BUFFER)
	in := block{Color: [4]float32{1, 0.5, 0.25, 1}, Scale: 2, Flags: 7, Offset: [2]float32{-1, 1}}
	r.NoError(SetBufferStruct(b, &in, gl.DYNAMIC_DRAW))
	r.Equal(32, b.Size())

	out, err := BufferSubDataAs[block](b, 0, 1)
	r.NoError(err)
	r.Equal([]block{in}, out)

	floats, err := BufferSubDataAs[float32](b, 4, 3)
	r.NoError(err)
	r.Equal([]float32{0.5, 0.25, 1}, floats)

	_, err = BufferSubDataAs[float32](b, 24, 4)
	r.True(errors.Is(err, ErrOutOfRange))
}

func TestBufferRangeChecks(t *testing.T) {
	r := require.New(t)
	ctx, api := newTestContext(t)

	b := NewBuffer(ctx, gl.UNIFORM_BUFFER)
	r.NoError(b.Allocate(64, gl.DYNAMIC_DRAW))

	r.True(errors.Is(b.SetSubData(60, make([]byte, 8)), ErrOutOfRange))
	_, err := b.SubData(-1, 4)
	r.True(errors.Is(err, ErrOutOfRange))
	r.True(errors.Is(b.BindRange(gl.UNIFORM_BUFFER, 0, 32, 64), ErrOutOfRange))

	r.NoError(b.BindRange(gl.UNIFORM_BUFFER, 2, 0, 32))
	r.Equal(b.ID(), api.IndexedBinding(gl.UNIFORM_BUFFER, 2))

	b.BindBase(gl.UNIFORM_BUFFER, 3)
	r.Equal(b.ID(), api.IndexedBinding(gl.UNIFORM_BUFFER, 3))
	r.Zero(api.PendingErrors())
}

func TestBufferRangeErrorPanicsWhenConfigured(t *testing.T) {
	ctx, _ := newTestContext(t, WithPanicOnErrors(true))
	b := NewBuffer(ctx, gl.ARRAY_BUFFER)
	require.Panics(t, func() { _ = b.SetSubData(0, []byte{1}) })
}

func TestBufferStoreCallsReturnGLErrors(t *testing.T) {
	r := require.New(t)
	ctx, api := newTestContext(t, WithErrorChecking(true))
	b := NewBuffer(ctx, gl.ARRAY_BUFFER)
	r.NoError(b.Allocate(16, gl.STATIC_DRAW))

	var glErr *Error
	api.PushError(gl.OUT_OF_MEMORY)
	err := b.SetData(make([]byte, 64), gl.DYNAMIC_DRAW)
	r.True(errors.As(err, &glErr))
	r.Equal("Buffer.SetData", glErr.Where)
	r.Equal(gl.OUT_OF_MEMORY, glErr.Code)
	// a failed store keeps the previous size and usage
	r.Equal(16, b.Size())
	r.Equal(gl.STATIC_DRAW, b.Usage())

	api.PushError(gl.OUT_OF_MEMORY)
	err = b.Allocate(1024, gl.DYNAMIC_DRAW)
	r.True(errors.As(err, &glErr))
	r.Equal("Buffer.Allocate", glErr.Where)
	r.Equal(16, b.Size())

	api.PushError(gl.INVALID_ENUM)
	err = b.ClearData(gl.R32F, gl.RED, gl.FLOAT, nil)
	r.True(errors.As(err, &glErr))
	r.Equal("Buffer.ClearData", glErr.Where)

	api.PushError(gl.OUT_OF_MEMORY)
	err = SetBufferData(b, []float32{1, 2}, gl.STATIC_DRAW)
	r.True(errors.As(err, &glErr))
	r.Zero(api.PendingErrors())

	r.NoError(SetBufferData(b, []float32{1, 2}, gl.STATIC_DRAW))
	r.Equal(8, b.Size())
}

func TestBufferCopySubData(t *testing.T) {
	r := require.New(t)
	ctx, api := newTestContext(t)

	src := NewBuffer(ctx, gl.ARRAY_BUFFER)
	src.SetData([]byte{1, 2, 3, 4, 5, 6}, gl.STATIC_DRAW)
	dst := NewBuffer(ctx, gl.ARRAY_BUFFER)
	dst.Allocate(4, gl.STATIC_DRAW)

	r.NoError(src.CopySubData(dst, 2, 1, 3))
	r.Equal([]byte{0, 3, 4, 5}, api.BufferContents(dst.ID()))
	r.True(errors.Is(src.CopySubData(dst, 0, 2, 4), ErrOutOfRange))
}

func TestBufferBinding(t *testing.T) {
	r := require.New(t)
	ctx, api := newTestContext(t)

	b := NewBuffer(ctx, gl.ARRAY_BUFFER)
	b.Bind()
	r.Equal(b.ID(), api.Binding(gl.ARRAY_BUFFER))

	b.SetTarget(gl.COPY_WRITE_BUFFER)
	r.Equal(gl.COPY_WRITE_BUFFER, b.Target())
	b.Bind()
	r.Equal(b.ID(), api.Binding(gl.COPY_WRITE_BUFFER))

	b.Unbind()
	r.Zero(api.Binding(gl.COPY_WRITE_BUFFER))
	UnbindBuffer(ctx, gl.ARRAY_BUFFER)
	r.Zero(api.Binding(gl.ARRAY_BUFFER))
}

func TestUsageMapping(t *testing.T) {
	r := require.New(t)
	r.Equal(gl.STATIC_DRAW, UsageUnknown.GL())
	r.Equal(gl.DYNAMIC_READ, UsageDynamicRead.GL())
	r.Equal(UsageStreamCopy, UsageFromGL(gl.STREAM_COPY))
	r.Equal(UsageUnknown, UsageFromGL(gl.TEXTURE_2D))
}
