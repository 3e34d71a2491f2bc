package glow

import (
	"github.com/rs/zerolog"

	"github.com/Carmen-Shannon/glow/gl"
)

// ObjectKind names the native object family an Object wraps.
type ObjectKind string

const (
	KindBuffer             ObjectKind = "Buffer"
	KindShader             ObjectKind = "Shader"
	KindProgram            ObjectKind = "Program"
	KindVertexArrayObject  ObjectKind = "VertexArrayObject"
	KindFrameBufferObject  ObjectKind = "FrameBufferObject"
	KindRenderBufferObject ObjectKind = "RenderBufferObject"
	KindTexture            ObjectKind = "Texture"
)

// Object is a wrapper around exactly one native object name.
// Objects register with their Context on construction and deregister when destroyed.
type Object interface {
	Referenced
	zerolog.LogObjectMarshaler

	// Context returns the context the object was created in.
	//
	// Returns:
	//   - Context: the owning context
	Context() Context

	// Kind returns the native object family.
	//
	// Returns:
	//   - ObjectKind: the object family
	Kind() ObjectKind

	// ID returns the native object name.
	//
	// Returns:
	//   - uint32: the native name
	ID() uint32

	// OwnsGLObject reports whether the native name is deleted when the object is destroyed.
	//
	// Returns:
	//   - bool: true if the wrapper owns the native object
	OwnsGLObject() bool

	// TakeOwnership makes the wrapper responsible for deleting the native object.
	TakeOwnership()

	// ReleaseOwnership leaves the native object alive when the wrapper is destroyed.
	ReleaseOwnership()

	// Name returns the user-assigned name, or an empty string.
	//
	// Returns:
	//   - string: the object name
	Name() string

	// SetName assigns a user-visible name used in logs and object dumps.
	//
	// Parameters:
	//   - name: the new name
	SetName(name string)

	// HasName reports whether a non-empty name was assigned.
	//
	// Returns:
	//   - bool: true if the object has a name
	HasName() bool

	// Accept dispatches the object to the matching visitor method.
	//
	// Parameters:
	//   - v: the visitor
	Accept(v ObjectVisitor)
}

// object carries the state shared by every wrapper: native name, ownership, name and refcount.
type object struct {
	refCounter

	ctx     *glowContext
	self    Object
	kind    ObjectKind
	id      uint32
	owns    bool
	name    string
	destroy func()
	delete  func(id uint32)
}

// init wires the refcount and registers self. destroy releases held references and runs
// before the native name is deleted.
func (o *object) init(ctx Context, self Object, kind ObjectKind, id uint32, owns bool, destroy func(), del func(id uint32)) {
	o.ctx = ctx.(*glowContext)
	o.self = self
	o.kind = kind
	o.id = id
	o.owns = owns
	o.destroy = destroy
	o.delete = del
	o.refCounter = newRefCounter(o.release)
	o.ctx.register(self)
}

func (o *object) release() {
	if o.destroy != nil {
		o.destroy()
	}
	o.ctx.deregister(o.self)
	if o.owns && o.id != 0 && o.delete != nil {
		o.delete(o.id)
	}
}

func (o *object) Context() Context {
	return o.ctx
}

func (o *object) Kind() ObjectKind {
	return o.kind
}

func (o *object) ID() uint32 {
	return o.id
}

func (o *object) OwnsGLObject() bool {
	return o.owns
}

func (o *object) TakeOwnership() {
	o.owns = true
}

func (o *object) ReleaseOwnership() {
	o.owns = false
}

func (o *object) Name() string {
	return o.name
}

func (o *object) SetName(name string) {
	o.name = name
}

func (o *object) HasName() bool {
	return o.name != ""
}

func (o *object) api() gl.API {
	return o.ctx.api
}

func (o *object) MarshalZerologObject(e *zerolog.Event) {
	e.Str("kind", string(o.kind)).Uint32("id", o.id)
	if o.name != "" {
		e.Str("name", o.name)
	}
	if !o.owns {
		e.Bool("foreign", true)
	}
}
