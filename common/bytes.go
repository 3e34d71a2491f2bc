package common

import "unsafe"

// SliceToBytes views the backing array of data as bytes, for buffer and texture uploads.
// The result aliases data and must not outlive or be written through by the caller.
//
// Parameters:
//   - data: source slice of any fixed-size element type
//
// Returns:
//   - []byte: a view of len(data)*sizeof(T) bytes, or nil for an empty slice
func SliceToBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	n := len(data) * int(unsafe.Sizeof(data[0]))
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(data))), n)
}

// StructToBytes views the memory of *v as bytes, e.g. for a uniform block upload.
// The result aliases *v.
func StructToBytes[T any](v *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), int(unsafe.Sizeof(*v)))
}

// BytesToSlice copies data read back from a buffer or framebuffer into a typed slice.
// Trailing bytes that do not fill a whole element are dropped.
//
// Parameters:
//   - data: the raw bytes
//
// Returns:
//   - []T: a new slice holding len(data)/sizeof(T) elements
func BytesToSlice[T any](data []byte) []T {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 || len(data) < size {
		return nil
	}
	out := make([]T, len(data)/size)
	copy(unsafe.Slice((*byte)(unsafe.Pointer(&out[0])), len(out)*size), data)
	return out
}
