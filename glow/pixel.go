package glow

import (
	"github.com/Carmen-Shannon/glow/gl"
)

// pixelComponents returns the number of components of a client pixel format.
func pixelComponents(format gl.Enum) int {
	switch format {
	case gl.RG, gl.RG_INTEGER, gl.DEPTH_STENCIL:
		return 2
	case gl.RGB, gl.BGR, gl.RGB_INTEGER, gl.BGR_INTEGER:
		return 3
	case gl.RGBA, gl.BGRA, gl.RGBA_INTEGER, gl.BGRA_INTEGER:
		return 4
	}
	return 1
}

// packedPixelSizes holds the bytes per pixel of types that pack all components into one value.
var packedPixelSizes = map[gl.Enum]int{
	gl.UNSIGNED_BYTE_3_3_2:            1,
	gl.UNSIGNED_BYTE_2_3_3_REV:        1,
	gl.UNSIGNED_SHORT_5_6_5:           2,
	gl.UNSIGNED_SHORT_5_6_5_REV:       2,
	gl.UNSIGNED_SHORT_4_4_4_4:         2,
	gl.UNSIGNED_SHORT_4_4_4_4_REV:     2,
	gl.UNSIGNED_SHORT_5_5_5_1:         2,
	gl.UNSIGNED_SHORT_1_5_5_5_REV:     2,
	gl.UNSIGNED_INT_8_8_8_8:           4,
	gl.UNSIGNED_INT_8_8_8_8_REV:       4,
	gl.UNSIGNED_INT_10_10_10_2:        4,
	gl.UNSIGNED_INT_2_10_10_10_REV:    4,
	gl.UNSIGNED_INT_10F_11F_11F_REV:   4,
	gl.UNSIGNED_INT_5_9_9_9_REV:       4,
	gl.UNSIGNED_INT_24_8:              4,
	gl.FLOAT_32_UNSIGNED_INT_24_8_REV: 8,
}

// pixelTypeSize returns the byte size of one component of a client pixel type.
func pixelTypeSize(typ gl.Enum) int {
	switch typ {
	case gl.BYTE, gl.UNSIGNED_BYTE:
		return 1
	case gl.SHORT, gl.UNSIGNED_SHORT, gl.HALF_FLOAT:
		return 2
	case gl.DOUBLE:
		return 8
	}
	return 4
}

// pixelSize returns the bytes one pixel of format and typ occupies in client memory.
func pixelSize(format, typ gl.Enum) int {
	if size, ok := packedPixelSizes[typ]; ok {
		return size
	}
	return pixelComponents(format) * pixelTypeSize(typ)
}

// imageSize returns the client memory size of a width x height x depth image with rows
// padded to alignment bytes.
func imageSize(width, height, depth int32, format, typ gl.Enum, alignment int32) int {
	if width <= 0 || height <= 0 || depth <= 0 {
		return 0
	}
	row := int(width) * pixelSize(format, typ)
	if alignment > 1 {
		a := int(alignment)
		row = (row + a - 1) / a * a
	}
	return row * int(height) * int(depth)
}
