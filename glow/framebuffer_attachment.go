package glow

import (
	"github.com/Carmen-Shannon/glow/gl"
)

// FrameBufferAttachment is an image attached to an attachment point of a framebuffer.
// The framebuffer holds a reference on the attached object for as long as it is attached.
type FrameBufferAttachment interface {
	// Attachment returns the attachment point.
	//
	// Returns:
	//   - gl.Enum: COLOR_ATTACHMENTi, DEPTH_ATTACHMENT, ...
	Attachment() gl.Enum

	// AttachmentString returns the symbolic name of the attachment point.
	//
	// Returns:
	//   - string: e.g. "GL_COLOR_ATTACHMENT0"
	AttachmentString() string

	// IsTextureAttachment reports whether a texture is attached.
	//
	// Returns:
	//   - bool: true for texture attachments
	IsTextureAttachment() bool

	// IsRenderBufferAttachment reports whether a renderbuffer is attached.
	//
	// Returns:
	//   - bool: true for renderbuffer attachments
	IsRenderBufferAttachment() bool

	// Object returns the attached object.
	//
	// Returns:
	//   - Object: the texture or renderbuffer
	Object() Object

	release()
}

// TextureAttachment is a texture level (and optionally a layer) attached to a framebuffer.
type TextureAttachment struct {
	attachment gl.Enum
	texture    Texture
	level      int32
	layer      int32
}

var _ FrameBufferAttachment = &TextureAttachment{}

func newTextureAttachment(attachment gl.Enum, t Texture, level, layer int32) *TextureAttachment {
	t.Ref()
	return &TextureAttachment{attachment: attachment, texture: t, level: level, layer: layer}
}

func (a *TextureAttachment) Attachment() gl.Enum {
	return a.attachment
}

func (a *TextureAttachment) AttachmentString() string {
	return gl.AttachmentString(a.attachment)
}

func (a *TextureAttachment) IsTextureAttachment() bool {
	return true
}

func (a *TextureAttachment) IsRenderBufferAttachment() bool {
	return false
}

func (a *TextureAttachment) Object() Object {
	return a.texture
}

// Texture returns the attached texture.
func (a *TextureAttachment) Texture() Texture {
	return a.texture
}

// Level returns the attached mipmap level.
func (a *TextureAttachment) Level() int32 {
	return a.level
}

// Layer returns the attached layer, or -1 when the whole level is attached.
func (a *TextureAttachment) Layer() int32 {
	return a.layer
}

// HasLayer reports whether a single layer is attached.
func (a *TextureAttachment) HasLayer() bool {
	return a.layer >= 0
}

func (a *TextureAttachment) release() {
	a.texture.Unref()
}

// RenderBufferAttachment is a renderbuffer attached to a framebuffer.
type RenderBufferAttachment struct {
	attachment   gl.Enum
	renderBuffer RenderBufferObject
}

var _ FrameBufferAttachment = &RenderBufferAttachment{}

func newRenderBufferAttachment(attachment gl.Enum, r RenderBufferObject) *RenderBufferAttachment {
	r.Ref()
	return &RenderBufferAttachment{attachment: attachment, renderBuffer: r}
}

func (a *RenderBufferAttachment) Attachment() gl.Enum {
	return a.attachment
}

func (a *RenderBufferAttachment) AttachmentString() string {
	return gl.AttachmentString(a.attachment)
}

func (a *RenderBufferAttachment) IsTextureAttachment() bool {
	return false
}

func (a *RenderBufferAttachment) IsRenderBufferAttachment() bool {
	return true
}

func (a *RenderBufferAttachment) Object() Object {
	return a.renderBuffer
}

// RenderBuffer returns the attached renderbuffer.
func (a *RenderBufferAttachment) RenderBuffer() RenderBufferObject {
	return a.renderBuffer
}

func (a *RenderBufferAttachment) release() {
	a.renderBuffer.Unref()
}
