package glow

import (
	"github.com/Carmen-Shannon/glow/gl"
)

// attributeFormatKind selects the native attribute pointer variant.
type attributeFormatKind int

const (
	formatFloat attributeFormatKind = iota
	formatInteger
	formatLong
)

// VertexAttributeBinding connects a buffer range to a vertex attribute of its vertex array.
// The native attribute pointer is issued once attribute, buffer and format are all set,
// and reissued whenever one of them changes.
type VertexAttributeBinding interface {
	// VertexArray returns the vertex array the binding belongs to.
	//
	// Returns:
	//   - VertexArrayObject: the owning vertex array
	VertexArray() VertexArrayObject

	// Index returns the binding index.
	//
	// Returns:
	//   - uint32: the index
	Index() uint32

	// SetAttribute selects the vertex attribute location fed by this binding.
	//
	// Parameters:
	//   - attribute: the attribute location
	SetAttribute(attribute uint32)

	// Attribute returns the attribute location, or -1 if none was set.
	//
	// Returns:
	//   - int32: the attribute location
	Attribute() int32

	// SetBuffer sets the source buffer. The binding holds a reference on it.
	//
	// Parameters:
	//   - buffer: the vertex buffer, or nil
	//   - baseOffset: the byte offset of the first element
	//   - stride: the byte distance between elements
	SetBuffer(buffer Buffer, baseOffset int, stride int32)

	// Buffer returns the source buffer, or nil.
	//
	// Returns:
	//   - Buffer: the vertex buffer
	Buffer() Buffer

	// SetFormat sets a floating point attribute format.
	//
	// Parameters:
	//   - size: the number of components (1-4)
	//   - typ: the component type
	//   - normalized: whether integer data is normalized
	//   - relativeOffset: the byte offset within an element
	SetFormat(size int32, typ gl.Enum, normalized bool, relativeOffset int)

	// SetIFormat sets an integer attribute format.
	//
	// Parameters:
	//   - size: the number of components (1-4)
	//   - typ: the component type
	//   - relativeOffset: the byte offset within an element
	SetIFormat(size int32, typ gl.Enum, relativeOffset int)

	// SetLFormat sets a double precision attribute format.
	//
	// Parameters:
	//   - size: the number of components (1-4)
	//   - typ: the component type
	//   - relativeOffset: the byte offset within an element
	SetLFormat(size int32, typ gl.Enum, relativeOffset int)

	// SetDivisor sets the instancing divisor of the attribute. A divisor set before
	// SetAttribute is applied when the attribute is set.
	//
	// Parameters:
	//   - divisor: the number of instances per attribute advance, 0 for per-vertex
	SetDivisor(divisor uint32)
}

// vertexAttributeBinding implements VertexAttributeBinding.
type vertexAttributeBinding struct {
	vao       *vertexArrayObject
	index     uint32
	attribute int32

	buffer     Buffer
	baseOffset int
	stride     int32

	hasFormat      bool
	kind           attributeFormatKind
	size           int32
	typ            gl.Enum
	normalized     bool
	relativeOffset int

	divisor uint32
}

var _ VertexAttributeBinding = &vertexAttributeBinding{}

func (b *vertexAttributeBinding) VertexArray() VertexArrayObject {
	return b.vao
}

func (b *vertexAttributeBinding) Index() uint32 {
	return b.index
}

func (b *vertexAttributeBinding) SetAttribute(attribute uint32) {
	b.attribute = int32(attribute)
	if b.divisor != 0 {
		b.applyDivisor()
	}
	b.update()
}

func (b *vertexAttributeBinding) Attribute() int32 {
	return b.attribute
}

func (b *vertexAttributeBinding) setBuffer(buffer Buffer) {
	if buffer != nil {
		buffer.Ref()
	}
	if b.buffer != nil {
		b.buffer.Unref()
	}
	b.buffer = buffer
}

func (b *vertexAttributeBinding) SetBuffer(buffer Buffer, baseOffset int, stride int32) {
	b.setBuffer(buffer)
	b.baseOffset = baseOffset
	b.stride = stride
	b.update()
}

func (b *vertexAttributeBinding) Buffer() Buffer {
	return b.buffer
}

func (b *vertexAttributeBinding) setFormat(kind attributeFormatKind, size int32, typ gl.Enum, normalized bool, relativeOffset int) {
	b.hasFormat = true
	b.kind = kind
	b.size = size
	b.typ = typ
	b.normalized = normalized
	b.relativeOffset = relativeOffset
	b.update()
}

func (b *vertexAttributeBinding) SetFormat(size int32, typ gl.Enum, normalized bool, relativeOffset int) {
	b.setFormat(formatFloat, size, typ, normalized, relativeOffset)
}

func (b *vertexAttributeBinding) SetIFormat(size int32, typ gl.Enum, relativeOffset int) {
	b.setFormat(formatInteger, size, typ, false, relativeOffset)
}

func (b *vertexAttributeBinding) SetLFormat(size int32, typ gl.Enum, relativeOffset int) {
	b.setFormat(formatLong, size, typ, false, relativeOffset)
}

func (b *vertexAttributeBinding) SetDivisor(divisor uint32) {
	b.divisor = divisor
	b.applyDivisor()
}

func (b *vertexAttributeBinding) applyDivisor() {
	if b.attribute < 0 {
		return
	}
	b.vao.Bind()
	b.vao.api().VertexAttribDivisor(uint32(b.attribute), b.divisor)
}

// update issues the native attribute pointer when the binding is complete.
func (b *vertexAttributeBinding) update() {
	if b.attribute < 0 || b.buffer == nil || !b.hasFormat {
		return
	}
	api := b.vao.api()
	b.vao.Bind()
	b.buffer.BindTo(gl.ARRAY_BUFFER)
	offset := b.baseOffset + b.relativeOffset
	switch b.kind {
	case formatInteger:
		api.VertexAttribIPointer(uint32(b.attribute), b.size, b.typ, b.stride, offset)
	case formatLong:
		api.VertexAttribLPointer(uint32(b.attribute), b.size, b.typ, b.stride, offset)
	default:
		api.VertexAttribPointer(uint32(b.attribute), b.size, b.typ, b.normalized, b.stride, offset)
	}
	b.vao.ctx.afterCall("VertexAttributeBinding")
}
