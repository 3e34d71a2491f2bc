package glow

import (
	"github.com/rs/zerolog"

	"github.com/Carmen-Shannon/glow/gl"
)

// RenderBufferObject wraps a native renderbuffer object.
type RenderBufferObject interface {
	Object

	// Bind binds the renderbuffer.
	Bind()

	// Unbind binds renderbuffer 0.
	Unbind()

	// Storage allocates storage.
	//
	// Parameters:
	//   - internalFormat: the storage format (RGBA8, DEPTH24_STENCIL8, ...)
	//   - width, height: the size in pixels
	Storage(internalFormat gl.Enum, width, height int32)

	// StorageMultisample allocates multisampled storage.
	//
	// Parameters:
	//   - samples: the number of samples
	//   - internalFormat: the storage format
	//   - width, height: the size in pixels
	StorageMultisample(samples int32, internalFormat gl.Enum, width, height int32)

	// Parameter queries a renderbuffer parameter.
	//
	// Parameters:
	//   - pname: RENDERBUFFER_WIDTH, RENDERBUFFER_SAMPLES, ...
	//
	// Returns:
	//   - int32: the value
	Parameter(pname gl.Enum) int32
}

// renderBufferObject implements RenderBufferObject.
type renderBufferObject struct {
	object
	internalFormat gl.Enum
	width          int32
	height         int32
	samples        int32
}

var _ RenderBufferObject = &renderBufferObject{}

// NewRenderBufferObject creates a renderbuffer.
//
// Parameters:
//   - ctx: the owning context
//
// Returns:
//   - RenderBufferObject: the new renderbuffer, holding one reference
func NewRenderBufferObject(ctx Context) RenderBufferObject {
	r := &renderBufferObject{}
	r.init(ctx, r, KindRenderBufferObject, ctx.API().GenRenderbuffer(), true, nil, ctx.API().DeleteRenderbuffer)
	return r
}

func (r *renderBufferObject) Accept(v ObjectVisitor) {
	v.VisitRenderBufferObject(r)
}

func (r *renderBufferObject) MarshalZerologObject(e *zerolog.Event) {
	r.object.MarshalZerologObject(e)
	e.Int32("width", r.width).Int32("height", r.height)
	if r.samples > 0 {
		e.Int32("samples", r.samples)
	}
}

func (r *renderBufferObject) Bind() {
	r.api().BindRenderbuffer(gl.RENDERBUFFER, r.id)
}

func (r *renderBufferObject) Unbind() {
	r.api().BindRenderbuffer(gl.RENDERBUFFER, 0)
}

func (r *renderBufferObject) Storage(internalFormat gl.Enum, width, height int32) {
	r.Bind()
	r.api().RenderbufferStorage(gl.RENDERBUFFER, internalFormat, width, height)
	r.internalFormat, r.width, r.height, r.samples = internalFormat, width, height, 0
	r.ctx.afterCall("RenderBufferObject.Storage")
}

func (r *renderBufferObject) StorageMultisample(samples int32, internalFormat gl.Enum, width, height int32) {
	r.Bind()
	r.api().RenderbufferStorageMultisample(gl.RENDERBUFFER, samples, internalFormat, width, height)
	r.internalFormat, r.width, r.height, r.samples = internalFormat, width, height, samples
	r.ctx.afterCall("RenderBufferObject.StorageMultisample")
}

func (r *renderBufferObject) Parameter(pname gl.Enum) int32 {
	r.Bind()
	return r.api().GetRenderbufferParameteri(gl.RENDERBUFFER, pname)
}
