package glow

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/glow/gl"
)

func TestImageSize(t *testing.T) {
	tests := []struct {
		name      string
		width     int32
		height    int32
		format    gl.Enum
		typ       gl.Enum
		alignment int32
		want      int
	}{
		{"rgba bytes", 2, 2, gl.RGBA, gl.UNSIGNED_BYTE, 4, 16},
		{"rgb bytes padded", 3, 2, gl.RGB, gl.UNSIGNED_BYTE, 4, 24},
		{"rgb bytes unpadded", 3, 2, gl.RGB, gl.UNSIGNED_BYTE, 1, 18},
		{"rg half floats", 3, 1, gl.RG, gl.HALF_FLOAT, 1, 12},
		{"red floats", 5, 1, gl.RED, gl.FLOAT, 8, 24},
		{"rgba integer", 2, 1, gl.RGBA_INTEGER, gl.UNSIGNED_INT, 4, 32},
		{"rgb integer", 1, 1, gl.RGB_INTEGER, gl.INT, 1, 12},
		{"bgra integer", 1, 1, gl.BGRA_INTEGER, gl.UNSIGNED_BYTE, 1, 4},
		{"rg integer", 1, 1, gl.RG_INTEGER, gl.SHORT, 1, 4},
		{"red integer", 3, 1, gl.RED_INTEGER, gl.UNSIGNED_SHORT, 1, 6},
		{"depth floats", 2, 2, gl.DEPTH_COMPONENT, gl.FLOAT, 4, 16},
		{"depth stencil 24_8", 3, 1, gl.DEPTH_STENCIL, gl.UNSIGNED_INT_24_8, 4, 12},
		{"depth stencil float 32 24_8", 3, 1, gl.DEPTH_STENCIL, gl.FLOAT_32_UNSIGNED_INT_24_8_REV, 4, 24},
		{"rgb 5_6_5", 3, 1, gl.RGB, gl.UNSIGNED_SHORT_5_6_5, 1, 6},
		{"rgb 5_6_5 padded", 3, 2, gl.RGB, gl.UNSIGNED_SHORT_5_6_5, 4, 16},
		{"rgba 4_4_4_4", 2, 1, gl.RGBA, gl.UNSIGNED_SHORT_4_4_4_4, 1, 4},
		{"rgba 5_5_5_1", 2, 1, gl.RGBA, gl.UNSIGNED_SHORT_5_5_5_1, 1, 4},
		{"rgb 3_3_2", 3, 1, gl.RGB, gl.UNSIGNED_BYTE_3_3_2, 1, 3},
		{"bgra 8_8_8_8 rev", 2, 2, gl.BGRA, gl.UNSIGNED_INT_8_8_8_8_REV, 4, 16},
		{"rgba 2_10_10_10 rev", 1, 1, gl.RGBA, gl.UNSIGNED_INT_2_10_10_10_REV, 1, 4},
		{"rgb 10f_11f_11f rev", 2, 1, gl.RGB, gl.UNSIGNED_INT_10F_11F_11F_REV, 1, 8},
		{"rgb 5_9_9_9 rev", 2, 1, gl.RGB, gl.UNSIGNED_INT_5_9_9_9_REV, 1, 8},
		{"empty", 0, 4, gl.RGBA, gl.UNSIGNED_BYTE, 4, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, imageSize(tt.width, tt.height, 1, tt.format, tt.typ, tt.alignment))
		})
	}
}

func TestImageSizeCountsDepth(t *testing.T) {
	require.Equal(t, 3*2*4*4, imageSize(3, 2, 4, gl.RGBA, gl.UNSIGNED_BYTE, 4))
}

func TestReadPixelsSizesPackedDepthStencil(t *testing.T) {
	r := require.New(t)
	ctx, _ := newTestContext(t)
	fbo, _ := newColorTarget(t, ctx, 4, 4)

	rect := Rect{Width: 2, Height: 2}
	// 2x2 pixels of 8 bytes each; a 4 byte per pixel buffer must be rejected
	short := make([]byte, 16)
	r.True(errors.Is(fbo.ReadPixels(rect, gl.DEPTH_STENCIL, gl.FLOAT_32_UNSIGNED_INT_24_8_REV, short), ErrBufferTooSmall))

	out, err := fbo.ReadPixelsToByteArray(rect, gl.DEPTH_STENCIL, gl.FLOAT_32_UNSIGNED_INT_24_8_REV)
	r.NoError(err)
	r.Len(out, 32)
}
