package glow

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/Carmen-Shannon/glow/gl"
)

// VertexArrayObject wraps a native vertex array object. Vertex attribute bindings are
// created on demand and hold a reference on their buffers; so does the element buffer.
type VertexArrayObject interface {
	Object

	// Bind binds the vertex array.
	Bind()

	// Unbind binds vertex array 0.
	Unbind()

	// Binding returns the attribute binding slot with the given index, creating it if needed.
	//
	// Parameters:
	//   - index: the binding index
	//
	// Returns:
	//   - VertexAttributeBinding: the binding
	Binding(index uint32) VertexAttributeBinding

	// Bindings returns the created bindings ordered by index.
	//
	// Returns:
	//   - []VertexAttributeBinding: the bindings
	Bindings() []VertexAttributeBinding

	// Enable enables a vertex attribute array.
	//
	// Parameters:
	//   - attribute: the attribute location
	Enable(attribute uint32)

	// Disable disables a vertex attribute array.
	//
	// Parameters:
	//   - attribute: the attribute location
	Disable(attribute uint32)

	// BindElementBuffer makes buffer the element array buffer of this vertex array.
	//
	// Parameters:
	//   - buffer: the index buffer, or nil to unbind
	BindElementBuffer(buffer Buffer)

	// ElementBuffer returns the element array buffer, or nil.
	//
	// Returns:
	//   - Buffer: the index buffer
	ElementBuffer() Buffer

	// DrawArrays binds the vertex array and draws count vertices starting at first.
	//
	// Parameters:
	//   - mode: the primitive mode
	//   - first: the first vertex
	//   - count: the number of vertices
	DrawArrays(mode gl.Enum, first, count int32)

	// DrawArraysInstanced is DrawArrays with instancing.
	//
	// Parameters:
	//   - mode: the primitive mode
	//   - first: the first vertex
	//   - count: the number of vertices
	//   - instances: the number of instances
	DrawArraysInstanced(mode gl.Enum, first, count, instances int32)

	// DrawElements binds the vertex array and draws count indices from the element buffer.
	//
	// Parameters:
	//   - mode: the primitive mode
	//   - count: the number of indices
	//   - typ: the index type
	//   - offset: the byte offset into the element buffer
	DrawElements(mode gl.Enum, count int32, typ gl.Enum, offset int)

	// DrawElementsInstanced is DrawElements with instancing.
	//
	// Parameters:
	//   - mode: the primitive mode
	//   - count: the number of indices
	//   - typ: the index type
	//   - offset: the byte offset into the element buffer
	//   - instances: the number of instances
	DrawElementsInstanced(mode gl.Enum, count int32, typ gl.Enum, offset int, instances int32)
}

// vertexArrayObject implements VertexArrayObject.
type vertexArrayObject struct {
	object
	bindings map[uint32]*vertexAttributeBinding
	elements Buffer
}

var _ VertexArrayObject = &vertexArrayObject{}

// NewVertexArrayObject creates a vertex array.
//
// Parameters:
//   - ctx: the owning context
//
// Returns:
//   - VertexArrayObject: the new vertex array, holding one reference
func NewVertexArrayObject(ctx Context) VertexArrayObject {
	v := &vertexArrayObject{bindings: make(map[uint32]*vertexAttributeBinding)}
	v.init(ctx, v, KindVertexArrayObject, ctx.API().GenVertexArray(), true, v.releaseBindings, ctx.API().DeleteVertexArray)
	return v
}

func (v *vertexArrayObject) Accept(visitor ObjectVisitor) {
	visitor.VisitVertexArrayObject(v)
}

func (v *vertexArrayObject) MarshalZerologObject(e *zerolog.Event) {
	v.object.MarshalZerologObject(e)
	e.Int("bindings", len(v.bindings))
}

func (v *vertexArrayObject) releaseBindings() {
	for _, b := range v.bindings {
		b.setBuffer(nil)
	}
	v.bindings = nil
	if v.elements != nil {
		v.elements.Unref()
		v.elements = nil
	}
}

func (v *vertexArrayObject) Bind() {
	v.api().BindVertexArray(v.id)
}

func (v *vertexArrayObject) Unbind() {
	v.api().BindVertexArray(0)
}

func (v *vertexArrayObject) Binding(index uint32) VertexAttributeBinding {
	b, ok := v.bindings[index]
	if !ok {
		b = &vertexAttributeBinding{vao: v, index: index, attribute: -1}
		v.bindings[index] = b
	}
	return b
}

func (v *vertexArrayObject) Bindings() []VertexAttributeBinding {
	indices := make([]uint32, 0, len(v.bindings))
	for i := range v.bindings {
		indices = append(indices, i)
	}
	sort.Slice(indices, func(a, b int) bool { return indices[a] < indices[b] })
	out := make([]VertexAttributeBinding, len(indices))
	for i, index := range indices {
		out[i] = v.bindings[index]
	}
	return out
}

func (v *vertexArrayObject) Enable(attribute uint32) {
	v.Bind()
	v.api().EnableVertexAttribArray(attribute)
}

func (v *vertexArrayObject) Disable(attribute uint32) {
	v.Bind()
	v.api().DisableVertexAttribArray(attribute)
}

func (v *vertexArrayObject) BindElementBuffer(buffer Buffer) {
	if buffer != nil {
		buffer.Ref()
	}
	if v.elements != nil {
		v.elements.Unref()
	}
	v.elements = buffer
	v.Bind()
	if buffer == nil {
		v.api().BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
		return
	}
	buffer.BindTo(gl.ELEMENT_ARRAY_BUFFER)
}

func (v *vertexArrayObject) ElementBuffer() Buffer {
	return v.elements
}

func (v *vertexArrayObject) DrawArrays(mode gl.Enum, first, count int32) {
	v.Bind()
	v.api().DrawArrays(mode, first, count)
	v.ctx.afterCall("VertexArrayObject.DrawArrays")
}

func (v *vertexArrayObject) DrawArraysInstanced(mode gl.Enum, first, count, instances int32) {
	v.Bind()
	v.api().DrawArraysInstanced(mode, first, count, instances)
	v.ctx.afterCall("VertexArrayObject.DrawArraysInstanced")
}

func (v *vertexArrayObject) DrawElements(mode gl.Enum, count int32, typ gl.Enum, offset int) {
	v.Bind()
	v.api().DrawElements(mode, count, typ, offset)
	v.ctx.afterCall("VertexArrayObject.DrawElements")
}

func (v *vertexArrayObject) DrawElementsInstanced(mode gl.Enum, count int32, typ gl.Enum, offset int, instances int32) {
	v.Bind()
	v.api().DrawElementsInstanced(mode, count, typ, offset, instances)
	v.ctx.afterCall("VertexArrayObject.DrawElementsInstanced")
}
