package glow

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/glow/gl"
	"github.com/Carmen-Shannon/glow/gl/gltest"
)

func TestVertexAttributeBindingIssuesPointerWhenComplete(t *testing.T) {
	r := require.New(t)
	ctx, api := newTestContext(t)

	vbo := NewBuffer(ctx, gl.ARRAY_BUFFER)
	SetBufferData(vbo, []float32{0, 0, 0, 1, 1, 0, 0, 1, 1}, gl.STATIC_DRAW)
	vao := NewVertexArrayObject(ctx)

	b := vao.Binding(0)
	b.SetAttribute(2)
	b.SetBuffer(vbo, 0, 12)
	r.Zero(api.CallCount("VertexAttribPointer"))

	b.SetFormat(3, gl.FLOAT, false, 0)
	r.Equal(1, api.CallCount("VertexAttribPointer"))
	vao.Enable(2)

	ptr, ok := api.AttribPointerOf(vao.ID(), 2)
	r.True(ok)
	r.Equal(gltest.AttribPointer{Index: 2, Size: 3, Type: gl.FLOAT, Stride: 12, Buffer: vbo.ID(), Enabled: true}, ptr)
	r.Zero(api.PendingErrors())
}

func TestVertexAttributeBindingFormats(t *testing.T) {
	r := require.New(t)
	ctx, api := newTestContext(t)

	vbo := NewBuffer(ctx, gl.ARRAY_BUFFER)
	vbo.Allocate(256, gl.STATIC_DRAW)
	vao := NewVertexArrayObject(ctx)

	ints := vao.Binding(1)
	ints.SetAttribute(1)
	ints.SetBuffer(vbo, 16, 8)
	ints.SetIFormat(2, gl.INT, 4)
	ints.SetDivisor(1)

	doubles := vao.Binding(2)
	doubles.SetAttribute(3)
	doubles.SetBuffer(vbo, 0, 32)
	doubles.SetLFormat(4, gl.DOUBLE, 0)

	ptr, _ := api.AttribPointerOf(vao.ID(), 1)
	r.True(ptr.Integer)
	r.Equal(20, ptr.Offset)
	r.Equal(uint32(1), ptr.Divisor)

	ptr, _ = api.AttribPointerOf(vao.ID(), 3)
	r.True(ptr.Long)
	r.Equal(int32(4), ptr.Size)

	r.Len(vao.Bindings(), 2)
	r.Equal(uint32(1), vao.Bindings()[0].Index())
	r.Equal(int32(3), doubles.Attribute())
	r.Same(vao.Binding(2), doubles)
}

func TestVertexAttributeBindingKeepsDivisorSetBeforeAttribute(t *testing.T) {
	r := require.New(t)
	ctx, api := newTestContext(t)

	vbo := NewBuffer(ctx, gl.ARRAY_BUFFER)
	vbo.Allocate(64, gl.STATIC_DRAW)
	vao := NewVertexArrayObject(ctx)

	b := vao.Binding(0)
	b.SetDivisor(3)
	r.Zero(api.CallCount("VertexAttribDivisor"))

	b.SetBuffer(vbo, 0, 16)
	b.SetFormat(4, gl.FLOAT, false, 0)
	b.SetAttribute(5)
	r.Equal(1, api.CallCount("VertexAttribDivisor"))

	ptr, ok := api.AttribPointerOf(vao.ID(), 5)
	r.True(ok)
	r.Equal(uint32(3), ptr.Divisor)
	r.Equal(int32(4), ptr.Size)
	r.Zero(api.PendingErrors())
}

func TestVertexArrayHoldsBufferReferences(t *testing.T) {
	r := require.New(t)
	ctx, api := newTestContext(t)

	vbo := NewBuffer(ctx, gl.ARRAY_BUFFER)
	ibo := NewBuffer(ctx, gl.ELEMENT_ARRAY_BUFFER)
	SetBufferData(ibo, []uint32{0, 1, 2}, gl.STATIC_DRAW)
	vao := NewVertexArrayObject(ctx)

	vao.Binding(0).SetBuffer(vbo, 0, 0)
	vao.BindElementBuffer(ibo)
	r.Equal(2, vbo.RefCount())
	r.Equal(2, ibo.RefCount())
	r.Equal(ibo.ID(), api.ElementBufferOf(vao.ID()))
	r.Same(ibo, vao.ElementBuffer())

	vbo.Unref()
	ibo.Unref()
	r.True(api.IsLive(gltest.KindBuffer, vbo.ID()))

	vao.Unref()
	r.False(api.IsLive(gltest.KindBuffer, vbo.ID()))
	r.False(api.IsLive(gltest.KindBuffer, ibo.ID()))
	r.False(api.IsLive(gltest.KindVertexArray, vao.ID()))
	r.Zero(ctx.Count())
}

func TestVertexArrayDraws(t *testing.T) {
	r := require.New(t)
	ctx, api := newTestContext(t)

	ibo := NewBuffer(ctx, gl.ELEMENT_ARRAY_BUFFER)
	SetBufferData(ibo, []uint16{0, 1, 2, 2, 3, 0}, gl.STATIC_DRAW)
	vao := NewVertexArrayObject(ctx)
	vao.BindElementBuffer(ibo)

	vao.DrawArrays(gl.TRIANGLES, 0, 3)
	vao.DrawArraysInstanced(gl.POINTS, 0, 1, 10)
	vao.DrawElements(gl.TRIANGLES, 6, gl.UNSIGNED_SHORT, 0)
	vao.DrawElementsInstanced(gl.TRIANGLES, 6, gl.UNSIGNED_SHORT, 0, 4)

	draws := api.Draws()
	r.Len(draws, 4)
	for _, d := range draws {
		r.Equal(vao.ID(), d.VertexArray)
	}
	r.Equal(int32(10), draws[1].Instances)
	r.True(draws[2].Indexed)
	r.Equal(gl.UNSIGNED_SHORT, draws[3].IndexType)
	r.Equal(int32(4), draws[3].Instances)
	r.Zero(api.PendingErrors())

	vao.Unbind()
	r.Zero(api.CurrentVertexArray())
}
