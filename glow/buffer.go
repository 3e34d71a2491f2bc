package glow

import (
	"unsafe"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/Carmen-Shannon/glow/common"
	"github.com/Carmen-Shannon/glow/gl"
)

// Buffer wraps a native buffer object.
type Buffer interface {
	Object

	// Target returns the target Bind uses.
	//
	// Returns:
	//   - gl.Enum: the default binding target
	Target() gl.Enum

	// SetTarget changes the target Bind uses.
	//
	// Parameters:
	//   - target: the new default binding target
	SetTarget(target gl.Enum)

	// Bind binds the buffer to its target.
	Bind()

	// BindTo binds the buffer to the given target without changing its default target.
	//
	// Parameters:
	//   - target: the binding target
	BindTo(target gl.Enum)

	// Unbind binds name 0 to the buffer's target.
	Unbind()

	// BindBase binds the buffer to an indexed binding point.
	//
	// Parameters:
	//   - target: an indexed target (UNIFORM_BUFFER, SHADER_STORAGE_BUFFER, ...)
	//   - index: the binding point
	BindBase(target gl.Enum, index uint32)

	// BindRange binds a range of the buffer to an indexed binding point.
	//
	// Parameters:
	//   - target: an indexed target
	//   - index: the binding point
	//   - offset: the byte offset of the range
	//   - size: the byte size of the range
	//
	// Returns:
	//   - error: ErrOutOfRange if the range exceeds the data store
	BindRange(target gl.Enum, index uint32, offset, size int) error

	// SetData (re)allocates the data store and uploads data. A nil slice with a non-zero
	// size allocates uninitialized storage; use Allocate for that.
	//
	// Parameters:
	//   - data: the bytes to upload
	//   - usage: the usage hint (STATIC_DRAW, DYNAMIC_DRAW, ...)
	//
	// Returns:
	//   - error: the GL error raised by the upload when error checking is enabled
	SetData(data []byte, usage gl.Enum) error

	// Allocate (re)allocates size bytes of uninitialized storage.
	//
	// Parameters:
	//   - size: the store size in bytes
	//   - usage: the usage hint
	//
	// Returns:
	//   - error: the GL error raised by the allocation when error checking is enabled
	Allocate(size int, usage gl.Enum) error

	// SetSubData overwrites part of the data store.
	//
	// Parameters:
	//   - offset: the byte offset
	//   - data: the replacement bytes
	//
	// Returns:
	//   - error: ErrOutOfRange if the write exceeds the data store
	SetSubData(offset int, data []byte) error

	// SubData reads part of the data store.
	//
	// Parameters:
	//   - offset: the byte offset
	//   - size: the number of bytes
	//
	// Returns:
	//   - []byte: the bytes read
	//   - error: ErrOutOfRange if the read exceeds the data store
	SubData(offset, size int) ([]byte, error)

	// CopySubData copies bytes from this buffer into dst on the server.
	//
	// Parameters:
	//   - dst: the destination buffer
	//   - readOffset: the source byte offset
	//   - writeOffset: the destination byte offset
	//   - size: the number of bytes
	//
	// Returns:
	//   - error: ErrOutOfRange if either range is out of bounds
	CopySubData(dst Buffer, readOffset, writeOffset, size int) error

	// ClearData fills the data store with a repeated value.
	//
	// Parameters:
	//   - internalFormat: the format the store is interpreted as
	//   - format: the format of data
	//   - typ: the component type of data
	//   - data: one element, or nil to zero the store
	//
	// Returns:
	//   - error: the GL error raised by the clear when error checking is enabled
	ClearData(internalFormat, format, typ gl.Enum, data []byte) error

	// Parameter queries a buffer parameter.
	//
	// Parameters:
	//   - pname: BUFFER_SIZE, BUFFER_USAGE, ...
	//
	// Returns:
	//   - int32: the parameter value
	Parameter(pname gl.Enum) int32

	// Size returns the size of the data store in bytes as last allocated through this wrapper.
	//
	// Returns:
	//   - int: the size in bytes
	Size() int

	// Usage returns the usage hint of the last allocation.
	//
	// Returns:
	//   - gl.Enum: the usage hint
	Usage() gl.Enum
}

// buffer implements Buffer.
type buffer struct {
	object
	target gl.Enum
	size   int
	usage  gl.Enum
}

var _ Buffer = &buffer{}

// NewBuffer creates a buffer whose Bind uses target.
//
// Parameters:
//   - ctx: the owning context
//   - target: the default binding target (ARRAY_BUFFER, ELEMENT_ARRAY_BUFFER, ...)
//
// Returns:
//   - Buffer: the new buffer, holding one reference
func NewBuffer(ctx Context, target gl.Enum) Buffer {
	b := &buffer{target: target, usage: gl.STATIC_DRAW}
	id := ctx.API().GenBuffer()
	b.init(ctx, b, KindBuffer, id, true, nil, ctx.API().DeleteBuffer)
	return b
}

// BufferFromID wraps an existing native buffer. The wrapper does not delete it unless
// takeOwnership is set.
//
// Parameters:
//   - ctx: the owning context
//   - id: the native buffer name
//   - target: the default binding target
//   - takeOwnership: whether destroying the wrapper deletes the native buffer
//
// Returns:
//   - Buffer: the wrapper, holding one reference
func BufferFromID(ctx Context, id uint32, target gl.Enum, takeOwnership bool) Buffer {
	b := &buffer{target: target, usage: gl.STATIC_DRAW}
	b.init(ctx, b, KindBuffer, id, takeOwnership, nil, ctx.API().DeleteBuffer)
	b.BindTo(target)
	b.size = int(b.api().GetBufferParameteri(target, gl.BUFFER_SIZE))
	b.usage = gl.Enum(b.api().GetBufferParameteri(target, gl.BUFFER_USAGE))
	return b
}

// UnbindBuffer binds name 0 to target.
func UnbindBuffer(ctx Context, target gl.Enum) {
	ctx.API().BindBuffer(target, 0)
}

// SetBufferData uploads a slice of plain values (vertices, indices, structs without pointers).
//
// Parameters:
//   - b: the destination buffer
//   - data: the values to upload
//   - usage: the usage hint
//
// Returns:
//   - error: the GL error raised by the upload when error checking is enabled
func SetBufferData[T any](b Buffer, data []T, usage gl.Enum) error {
	if len(data) == 0 {
		return b.Allocate(0, usage)
	}
	return b.SetData(common.SliceToBytes(data), usage)
}

// SetBufferSubData overwrites part of a buffer with a slice of plain values.
//
// Parameters:
//   - b: the destination buffer
//   - offset: the byte offset
//   - data: the values to write
//
// Returns:
//   - error: ErrOutOfRange if the write exceeds the data store
func SetBufferSubData[T any](b Buffer, offset int, data []T) error {
	return b.SetSubData(offset, common.SliceToBytes(data))
}

// SetBufferStruct uploads one plain struct, e.g. the contents of a uniform block.
//
// Parameters:
//   - b: the destination buffer
//   - v: the value to upload
//   - usage: the usage hint
//
// Returns:
//   - error: the GL error raised by the upload when error checking is enabled
func SetBufferStruct[T any](b Buffer, v *T, usage gl.Enum) error {
	return b.SetData(common.StructToBytes(v), usage)
}

// BufferSubDataAs reads count values of type T starting at a byte offset.
//
// Parameters:
//   - b: the source buffer
//   - offset: the byte offset
//   - count: the number of values
//
// Returns:
//   - []T: the values
//   - error: ErrOutOfRange if the read exceeds the data store
func BufferSubDataAs[T any](b Buffer, offset, count int) ([]T, error) {
	var zero T
	data, err := b.SubData(offset, count*int(unsafe.Sizeof(zero)))
	if err != nil {
		return nil, err
	}
	return common.BytesToSlice[T](data), nil
}

func (b *buffer) Accept(v ObjectVisitor) {
	v.VisitBuffer(b)
}

func (b *buffer) MarshalZerologObject(e *zerolog.Event) {
	b.object.MarshalZerologObject(e)
	e.Str("target", gl.BufferTargetString(b.target)).Int("size", b.size)
}

func (b *buffer) Target() gl.Enum {
	return b.target
}

func (b *buffer) SetTarget(target gl.Enum) {
	b.target = target
}

func (b *buffer) Bind() {
	b.api().BindBuffer(b.target, b.id)
}

func (b *buffer) BindTo(target gl.Enum) {
	b.api().BindBuffer(target, b.id)
}

func (b *buffer) Unbind() {
	b.api().BindBuffer(b.target, 0)
}

func (b *buffer) BindBase(target gl.Enum, index uint32) {
	b.api().BindBufferBase(target, index, b.id)
}

func (b *buffer) BindRange(target gl.Enum, index uint32, offset, size int) error {
	if offset < 0 || size <= 0 || offset+size > b.size {
		return b.ctx.report(errors.Wrapf(ErrOutOfRange, "buffer %d: bind range %d+%d of %d bytes", b.id, offset, size, b.size))
	}
	b.api().BindBufferRange(target, index, b.id, offset, size)
	return nil
}

func (b *buffer) SetData(data []byte, usage gl.Enum) error {
	b.Bind()
	b.api().BufferData(b.target, len(data), data, usage)
	return b.stored("Buffer.SetData", len(data), usage)
}

func (b *buffer) Allocate(size int, usage gl.Enum) error {
	b.Bind()
	b.api().BufferData(b.target, size, nil, usage)
	return b.stored("Buffer.Allocate", size, usage)
}

// stored records the new data store once BufferData went through. A failed call leaves
// the previous size and usage in place.
func (b *buffer) stored(where string, size int, usage gl.Enum) error {
	if err := b.ctx.afterCall(where); err != nil {
		return err
	}
	b.size = size
	b.usage = usage
	return nil
}

func (b *buffer) SetSubData(offset int, data []byte) error {
	if offset < 0 || offset+len(data) > b.size {
		return b.ctx.report(errors.Wrapf(ErrOutOfRange, "buffer %d: write %d+%d of %d bytes", b.id, offset, len(data), b.size))
	}
	b.Bind()
	b.api().BufferSubData(b.target, offset, data)
	return b.ctx.afterCall("Buffer.SetSubData")
}

func (b *buffer) SubData(offset, size int) ([]byte, error) {
	if offset < 0 || size < 0 || offset+size > b.size {
		return nil, b.ctx.report(errors.Wrapf(ErrOutOfRange, "buffer %d: read %d+%d of %d bytes", b.id, offset, size, b.size))
	}
	out := make([]byte, size)
	b.Bind()
	b.api().GetBufferSubData(b.target, offset, out)
	return out, b.ctx.afterCall("Buffer.SubData")
}

func (b *buffer) CopySubData(dst Buffer, readOffset, writeOffset, size int) error {
	if readOffset < 0 || writeOffset < 0 || size < 0 || readOffset+size > b.size || writeOffset+size > dst.Size() {
		return b.ctx.report(errors.Wrapf(ErrOutOfRange, "buffer %d -> %d: copy %d bytes", b.id, dst.ID(), size))
	}
	b.BindTo(gl.COPY_READ_BUFFER)
	dst.BindTo(gl.COPY_WRITE_BUFFER)
	b.api().CopyBufferSubData(gl.COPY_READ_BUFFER, gl.COPY_WRITE_BUFFER, readOffset, writeOffset, size)
	return b.ctx.afterCall("Buffer.CopySubData")
}

func (b *buffer) ClearData(internalFormat, format, typ gl.Enum, data []byte) error {
	b.Bind()
	b.api().ClearBufferData(b.target, internalFormat, format, typ, data)
	return b.ctx.afterCall("Buffer.ClearData")
}

func (b *buffer) Parameter(pname gl.Enum) int32 {
	b.Bind()
	return b.api().GetBufferParameteri(b.target, pname)
}

func (b *buffer) Size() int {
	return b.size
}

func (b *buffer) Usage() gl.Enum {
	return b.usage
}
