package glow

import (
	"sort"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/Carmen-Shannon/glow/gl"
)

// Rect is a pixel rectangle in window coordinates.
type Rect struct {
	X      int32
	Y      int32
	Width  int32
	Height int32
}

// FrameBufferObject wraps a native framebuffer object. Attached textures and renderbuffers
// are kept alive by the framebuffer until they are detached, replaced, or the framebuffer
// is destroyed.
type FrameBufferObject interface {
	Object

	// IsDefault reports whether this is the window-system framebuffer.
	//
	// Returns:
	//   - bool: true for the default framebuffer
	IsDefault() bool

	// Bind binds the framebuffer.
	//
	// Parameters:
	//   - target: FRAMEBUFFER, READ_FRAMEBUFFER or DRAW_FRAMEBUFFER
	Bind(target gl.Enum)

	// Unbind binds framebuffer 0 to target.
	//
	// Parameters:
	//   - target: FRAMEBUFFER, READ_FRAMEBUFFER or DRAW_FRAMEBUFFER
	Unbind(target gl.Enum)

	// SetParameter sets a framebuffer parameter.
	//
	// Parameters:
	//   - pname: FRAMEBUFFER_DEFAULT_WIDTH, ...
	//   - param: the value
	SetParameter(pname gl.Enum, param int32)

	// AttachmentParameter queries a parameter of an attachment point.
	//
	// Parameters:
	//   - attachment: the attachment point
	//   - pname: FRAMEBUFFER_ATTACHMENT_OBJECT_TYPE, ...
	//
	// Returns:
	//   - int32: the value
	AttachmentParameter(attachment, pname gl.Enum) int32

	// AttachTexture attaches a whole texture level (all layers of layered textures).
	//
	// Parameters:
	//   - attachment: the attachment point
	//   - t: the texture
	//   - level: the mipmap level
	//
	// Returns:
	//   - error: an error if the framebuffer or texture cannot take attachments
	AttachTexture(attachment gl.Enum, t Texture, level int32) error

	// AttachTexture1D attaches a level of a one-dimensional texture.
	//
	// Parameters:
	//   - attachment: the attachment point
	//   - t: the texture
	//   - level: the mipmap level
	//
	// Returns:
	//   - error: an error if the framebuffer or texture cannot take attachments
	AttachTexture1D(attachment gl.Enum, t Texture, level int32) error

	// AttachTexture2D attaches a level of a two-dimensional texture.
	//
	// Parameters:
	//   - attachment: the attachment point
	//   - t: the texture
	//   - level: the mipmap level
	//
	// Returns:
	//   - error: an error if the framebuffer or texture cannot take attachments
	AttachTexture2D(attachment gl.Enum, t Texture, level int32) error

	// AttachTexture3D attaches one layer of a three-dimensional texture.
	//
	// Parameters:
	//   - attachment: the attachment point
	//   - t: the texture
	//   - level: the mipmap level
	//   - layer: the layer
	//
	// Returns:
	//   - error: an error if the framebuffer or texture cannot take attachments
	AttachTexture3D(attachment gl.Enum, t Texture, level, layer int32) error

	// AttachTextureLayer attaches one layer of an array, cube map or 3D texture.
	//
	// Parameters:
	//   - attachment: the attachment point
	//   - t: the texture
	//   - level: the mipmap level
	//   - layer: the layer
	//
	// Returns:
	//   - error: an error if the framebuffer or texture cannot take attachments
	AttachTextureLayer(attachment gl.Enum, t Texture, level, layer int32) error

	// AttachRenderBuffer attaches a renderbuffer.
	//
	// Parameters:
	//   - attachment: the attachment point
	//   - r: the renderbuffer
	//
	// Returns:
	//   - error: an error if the framebuffer or renderbuffer cannot take attachments
	AttachRenderBuffer(attachment gl.Enum, r RenderBufferObject) error

	// Detach removes whatever is attached to an attachment point.
	//
	// Parameters:
	//   - attachment: the attachment point
	//
	// Returns:
	//   - bool: true if something was attached
	Detach(attachment gl.Enum) bool

	// Attachment returns the attachment at an attachment point, or nil.
	//
	// Parameters:
	//   - attachment: the attachment point
	//
	// Returns:
	//   - FrameBufferAttachment: the attachment
	Attachment(attachment gl.Enum) FrameBufferAttachment

	// Attachments returns every attachment ordered by attachment point.
	//
	// Returns:
	//   - []FrameBufferAttachment: the attachments
	Attachments() []FrameBufferAttachment

	// SetReadBuffer selects the color buffer used for reads and blits.
	//
	// Parameters:
	//   - mode: COLOR_ATTACHMENTi, BACK_LEFT, NONE, ...
	SetReadBuffer(mode gl.Enum)

	// SetDrawBuffer selects a single color buffer for drawing.
	//
	// Parameters:
	//   - mode: COLOR_ATTACHMENTi, BACK_LEFT, NONE, ...
	SetDrawBuffer(mode gl.Enum)

	// SetDrawBuffers selects the color buffers for drawing.
	//
	// Parameters:
	//   - modes: one entry per fragment output
	SetDrawBuffers(modes ...gl.Enum)

	// Clear binds the framebuffer for drawing and clears the buffers in mask.
	//
	// Parameters:
	//   - mask: COLOR_BUFFER_BIT | DEPTH_BUFFER_BIT | STENCIL_BUFFER_BIT
	Clear(mask gl.Enum)

	// ClearBufferiv clears one buffer with integer values.
	ClearBufferiv(buffer gl.Enum, drawBuffer int32, value []int32)

	// ClearBufferuiv clears one buffer with unsigned integer values.
	ClearBufferuiv(buffer gl.Enum, drawBuffer int32, value []uint32)

	// ClearBufferfv clears one buffer with float values.
	ClearBufferfv(buffer gl.Enum, drawBuffer int32, value []float32)

	// ClearBufferfi clears the combined depth/stencil buffer.
	ClearBufferfi(buffer gl.Enum, drawBuffer int32, depth float32, stencil int32)

	// ClearBufferColor clears one draw buffer to a color.
	//
	// Parameters:
	//   - drawBuffer: the index into the draw buffer list
	//   - color: the RGBA color
	ClearBufferColor(drawBuffer int32, color mgl32.Vec4)

	// ReadPixels reads a rectangle from the current read buffer into dst.
	//
	// Parameters:
	//   - rect: the rectangle
	//   - format, typ: the client pixel layout
	//   - dst: the destination
	//
	// Returns:
	//   - error: ErrBufferTooSmall if dst cannot hold the rectangle
	ReadPixels(rect Rect, format, typ gl.Enum, dst []byte) error

	// ReadPixelsFrom selects readBuffer and reads a rectangle into dst.
	//
	// Parameters:
	//   - readBuffer: the color buffer to read from
	//   - rect: the rectangle
	//   - format, typ: the client pixel layout
	//   - dst: the destination
	//
	// Returns:
	//   - error: ErrBufferTooSmall if dst cannot hold the rectangle
	ReadPixelsFrom(readBuffer gl.Enum, rect Rect, format, typ gl.Enum, dst []byte) error

	// ReadPixelsToByteArray reads a rectangle into a new slice.
	//
	// Parameters:
	//   - rect: the rectangle
	//   - format, typ: the client pixel layout
	//
	// Returns:
	//   - []byte: the pixels, rows padded to PACK_ALIGNMENT
	//   - error: a native error if per-call error checking is on
	ReadPixelsToByteArray(rect Rect, format, typ gl.Enum) ([]byte, error)

	// ReadPixelsToBuffer reads a rectangle into a pixel pack buffer.
	//
	// Parameters:
	//   - rect: the rectangle
	//   - format, typ: the pixel layout in the buffer
	//   - pbo: the destination buffer
	//
	// Returns:
	//   - error: ErrBufferTooSmall if the buffer cannot hold the rectangle
	ReadPixelsToBuffer(rect Rect, format, typ gl.Enum, pbo Buffer) error

	// CheckStatus returns the completeness status.
	//
	// Returns:
	//   - gl.Enum: FRAMEBUFFER_COMPLETE or an incompleteness reason
	CheckStatus() gl.Enum

	// StatusString returns the symbolic name of the completeness status.
	//
	// Returns:
	//   - string: e.g. "GL_FRAMEBUFFER_COMPLETE"
	StatusString() string

	// PrintStatus logs the completeness status.
	//
	// Parameters:
	//   - onlyErrors: if true, complete framebuffers are not logged
	PrintStatus(onlyErrors bool)

	// Validate returns an error wrapping ErrFramebufferIncomplete unless the framebuffer is complete.
	//
	// Returns:
	//   - error: nil for complete framebuffers
	Validate() error

	// Blit copies a rectangle of readBuffer into drawBuffer of dst.
	//
	// Parameters:
	//   - readBuffer: the source color buffer
	//   - src: the source rectangle
	//   - dst: the destination framebuffer
	//   - drawBuffer: the destination color buffer
	//   - dstRect: the destination rectangle
	//   - mask: the buffers to copy
	//   - filter: NEAREST or LINEAR
	Blit(readBuffer gl.Enum, src Rect, dst FrameBufferObject, drawBuffer gl.Enum, dstRect Rect, mask, filter gl.Enum)

	// BlitToDrawBuffers copies a rectangle of readBuffer into several draw buffers of dst.
	//
	// Parameters:
	//   - readBuffer: the source color buffer
	//   - src: the source rectangle
	//   - dst: the destination framebuffer
	//   - drawBuffers: the destination color buffers
	//   - dstRect: the destination rectangle
	//   - mask: the buffers to copy
	//   - filter: NEAREST or LINEAR
	BlitToDrawBuffers(readBuffer gl.Enum, src Rect, dst FrameBufferObject, drawBuffers []gl.Enum, dstRect Rect, mask, filter gl.Enum)
}

// frameBufferObject implements FrameBufferObject.
type frameBufferObject struct {
	object
	attachments map[gl.Enum]FrameBufferAttachment
}

var _ FrameBufferObject = &frameBufferObject{}

// NewFrameBufferObject creates a framebuffer.
//
// Parameters:
//   - ctx: the owning context
//
// Returns:
//   - FrameBufferObject: the new framebuffer, holding one reference
func NewFrameBufferObject(ctx Context) FrameBufferObject {
	f := &frameBufferObject{attachments: make(map[gl.Enum]FrameBufferAttachment)}
	f.init(ctx, f, KindFrameBufferObject, ctx.API().GenFramebuffer(), true, f.releaseAttachments, ctx.API().DeleteFramebuffer)
	return f
}

// FrameBufferFromID wraps an existing native framebuffer. Attachments made before
// wrapping are not tracked.
//
// Parameters:
//   - ctx: the owning context
//   - id: the native framebuffer name
//   - takeOwnership: whether destroying the wrapper deletes the native framebuffer
//
// Returns:
//   - FrameBufferObject: the wrapper, holding one reference
func FrameBufferFromID(ctx Context, id uint32, takeOwnership bool) FrameBufferObject {
	if id == 0 {
		return ctx.DefaultFBO()
	}
	f := &frameBufferObject{attachments: make(map[gl.Enum]FrameBufferAttachment)}
	f.init(ctx, f, KindFrameBufferObject, id, takeOwnership, f.releaseAttachments, ctx.API().DeleteFramebuffer)
	return f
}

// DefaultFBO returns the window-system framebuffer of ctx.
func DefaultFBO(ctx Context) FrameBufferObject {
	return ctx.DefaultFBO()
}

// newDefaultFBO wraps framebuffer 0. It is pinned and never registered, so it survives
// any number of Unref calls and does not show up in object dumps.
func newDefaultFBO(c *glowContext) *frameBufferObject {
	f := &frameBufferObject{attachments: make(map[gl.Enum]FrameBufferAttachment)}
	f.ctx = c
	f.self = f
	f.kind = KindFrameBufferObject
	f.refCounter = refCounter{count: 1, pinned: true}
	f.name = "default"
	return f
}

// UnbindFrameBuffer binds framebuffer 0 to target.
func UnbindFrameBuffer(ctx Context, target gl.Enum) {
	ctx.API().BindFramebuffer(target, 0)
}

// ColorMask enables or disables writing of color components for all draw buffers.
func ColorMask(ctx Context, red, green, blue, alpha bool) {
	ctx.API().ColorMask(red, green, blue, alpha)
}

// ColorMaski enables or disables writing of color components for one draw buffer.
func ColorMaski(ctx Context, index uint32, red, green, blue, alpha bool) {
	ctx.API().ColorMaski(index, red, green, blue, alpha)
}

// ClearColor sets the color used by Clear.
func ClearColor(ctx Context, color mgl32.Vec4) {
	ctx.API().ClearColor(color[0], color[1], color[2], color[3])
}

// ClearDepth sets the depth used by Clear.
func ClearDepth(ctx Context, depth float64) {
	ctx.API().ClearDepth(depth)
}

func (f *frameBufferObject) Accept(v ObjectVisitor) {
	v.VisitFrameBufferObject(f)
}

func (f *frameBufferObject) MarshalZerologObject(e *zerolog.Event) {
	f.object.MarshalZerologObject(e)
	e.Int("attachments", len(f.attachments))
}

func (f *frameBufferObject) IsDefault() bool {
	return f.id == 0
}

func (f *frameBufferObject) releaseAttachments() {
	for _, a := range f.attachments {
		a.release()
	}
	clear(f.attachments)
}

func (f *frameBufferObject) Bind(target gl.Enum) {
	f.api().BindFramebuffer(target, f.id)
}

func (f *frameBufferObject) Unbind(target gl.Enum) {
	f.api().BindFramebuffer(target, 0)
}

func (f *frameBufferObject) SetParameter(pname gl.Enum, param int32) {
	f.Bind(gl.FRAMEBUFFER)
	f.api().FramebufferParameteri(gl.FRAMEBUFFER, pname, param)
	f.ctx.afterCall("FrameBufferObject.SetParameter")
}

func (f *frameBufferObject) AttachmentParameter(attachment, pname gl.Enum) int32 {
	f.Bind(gl.FRAMEBUFFER)
	return f.api().GetFramebufferAttachmentParameteri(gl.FRAMEBUFFER, attachment, pname)
}

// checkAttachable rejects attachments to the default framebuffer, to a destroyed
// framebuffer and of destroyed objects.
func (f *frameBufferObject) checkAttachable(where string, attachment gl.Enum, o Object) error {
	if f.isReleased() {
		return f.ctx.report(errors.Wrapf(ErrReleased, "%s: framebuffer is destroyed", where))
	}
	if f.IsDefault() {
		return f.ctx.report(&Error{Code: gl.INVALID_OPERATION, Where: where, Message: "the default framebuffer has no attachment points"})
	}
	if o == nil || o.RefCount() == 0 {
		return f.ctx.report(errors.Wrapf(ErrReleased, "%s: cannot attach to %s", where, gl.AttachmentString(attachment)))
	}
	return nil
}

// setAttachment stores a, releasing the attachment it replaces.
func (f *frameBufferObject) setAttachment(a FrameBufferAttachment) {
	if old, ok := f.attachments[a.Attachment()]; ok {
		old.release()
	}
	f.attachments[a.Attachment()] = a
}

func (f *frameBufferObject) AttachTexture(attachment gl.Enum, t Texture, level int32) error {
	if err := f.checkAttachable("FrameBufferObject.AttachTexture", attachment, t); err != nil {
		return err
	}
	f.Bind(gl.FRAMEBUFFER)
	f.api().FramebufferTexture(gl.FRAMEBUFFER, attachment, t.ID(), level)
	f.setAttachment(newTextureAttachment(attachment, t, level, -1))
	return f.ctx.afterCall("FrameBufferObject.AttachTexture")
}

func (f *frameBufferObject) AttachTexture1D(attachment gl.Enum, t Texture, level int32) error {
	if err := f.checkAttachable("FrameBufferObject.AttachTexture1D", attachment, t); err != nil {
		return err
	}
	f.Bind(gl.FRAMEBUFFER)
	f.api().FramebufferTexture1D(gl.FRAMEBUFFER, attachment, t.Target(), t.ID(), level)
	f.setAttachment(newTextureAttachment(attachment, t, level, -1))
	return f.ctx.afterCall("FrameBufferObject.AttachTexture1D")
}

func (f *frameBufferObject) AttachTexture2D(attachment gl.Enum, t Texture, level int32) error {
	if err := f.checkAttachable("FrameBufferObject.AttachTexture2D", attachment, t); err != nil {
		return err
	}
	f.Bind(gl.FRAMEBUFFER)
	f.api().FramebufferTexture2D(gl.FRAMEBUFFER, attachment, t.Target(), t.ID(), level)
	f.setAttachment(newTextureAttachment(attachment, t, level, -1))
	return f.ctx.afterCall("FrameBufferObject.AttachTexture2D")
}

func (f *frameBufferObject) AttachTexture3D(attachment gl.Enum, t Texture, level, layer int32) error {
	if err := f.checkAttachable("FrameBufferObject.AttachTexture3D", attachment, t); err != nil {
		return err
	}
	f.Bind(gl.FRAMEBUFFER)
	f.api().FramebufferTexture3D(gl.FRAMEBUFFER, attachment, t.Target(), t.ID(), level, layer)
	f.setAttachment(newTextureAttachment(attachment, t, level, layer))
	return f.ctx.afterCall("FrameBufferObject.AttachTexture3D")
}

func (f *frameBufferObject) AttachTextureLayer(attachment gl.Enum, t Texture, level, layer int32) error {
	if err := f.checkAttachable("FrameBufferObject.AttachTextureLayer", attachment, t); err != nil {
		return err
	}
	f.Bind(gl.FRAMEBUFFER)
	f.api().FramebufferTextureLayer(gl.FRAMEBUFFER, attachment, t.ID(), level, layer)
	f.setAttachment(newTextureAttachment(attachment, t, level, layer))
	return f.ctx.afterCall("FrameBufferObject.AttachTextureLayer")
}

func (f *frameBufferObject) AttachRenderBuffer(attachment gl.Enum, r RenderBufferObject) error {
	if err := f.checkAttachable("FrameBufferObject.AttachRenderBuffer", attachment, r); err != nil {
		return err
	}
	f.Bind(gl.FRAMEBUFFER)
	f.api().FramebufferRenderbuffer(gl.FRAMEBUFFER, attachment, gl.RENDERBUFFER, r.ID())
	f.setAttachment(newRenderBufferAttachment(attachment, r))
	return f.ctx.afterCall("FrameBufferObject.AttachRenderBuffer")
}

func (f *frameBufferObject) Detach(attachment gl.Enum) bool {
	a, ok := f.attachments[attachment]
	if !ok {
		return false
	}
	f.Bind(gl.FRAMEBUFFER)
	if a.IsRenderBufferAttachment() {
		f.api().FramebufferRenderbuffer(gl.FRAMEBUFFER, attachment, gl.RENDERBUFFER, 0)
	} else {
		f.api().FramebufferTexture(gl.FRAMEBUFFER, attachment, 0, 0)
	}
	delete(f.attachments, attachment)
	a.release()
	return true
}

func (f *frameBufferObject) Attachment(attachment gl.Enum) FrameBufferAttachment {
	return f.attachments[attachment]
}

func (f *frameBufferObject) Attachments() []FrameBufferAttachment {
	out := make([]FrameBufferAttachment, 0, len(f.attachments))
	for _, a := range f.attachments {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Attachment() < out[j].Attachment() })
	return out
}

func (f *frameBufferObject) SetReadBuffer(mode gl.Enum) {
	f.Bind(gl.READ_FRAMEBUFFER)
	f.api().ReadBuffer(mode)
	f.ctx.afterCall("FrameBufferObject.SetReadBuffer")
}

func (f *frameBufferObject) SetDrawBuffer(mode gl.Enum) {
	f.Bind(gl.DRAW_FRAMEBUFFER)
	f.api().DrawBuffer(mode)
	f.ctx.afterCall("FrameBufferObject.SetDrawBuffer")
}

func (f *frameBufferObject) SetDrawBuffers(modes ...gl.Enum) {
	f.Bind(gl.DRAW_FRAMEBUFFER)
	f.api().DrawBuffers(modes)
	f.ctx.afterCall("FrameBufferObject.SetDrawBuffers")
}

func (f *frameBufferObject) Clear(mask gl.Enum) {
	f.Bind(gl.DRAW_FRAMEBUFFER)
	f.api().Clear(mask)
}

func (f *frameBufferObject) ClearBufferiv(buffer gl.Enum, drawBuffer int32, value []int32) {
	f.Bind(gl.DRAW_FRAMEBUFFER)
	f.api().ClearBufferiv(buffer, drawBuffer, value)
}

func (f *frameBufferObject) ClearBufferuiv(buffer gl.Enum, drawBuffer int32, value []uint32) {
	f.Bind(gl.DRAW_FRAMEBUFFER)
	f.api().ClearBufferuiv(buffer, drawBuffer, value)
}

func (f *frameBufferObject) ClearBufferfv(buffer gl.Enum, drawBuffer int32, value []float32) {
	f.Bind(gl.DRAW_FRAMEBUFFER)
	f.api().ClearBufferfv(buffer, drawBuffer, value)
}

func (f *frameBufferObject) ClearBufferfi(buffer gl.Enum, drawBuffer int32, depth float32, stencil int32) {
	f.Bind(gl.DRAW_FRAMEBUFFER)
	f.api().ClearBufferfi(buffer, drawBuffer, depth, stencil)
}

func (f *frameBufferObject) ClearBufferColor(drawBuffer int32, color mgl32.Vec4) {
	f.ClearBufferfv(gl.COLOR, drawBuffer, color[:])
}

// packedSize returns the client memory size of rect under the current PACK_ALIGNMENT.
func (f *frameBufferObject) packedSize(rect Rect, format, typ gl.Enum) int {
	return imageSize(rect.Width, rect.Height, 1, format, typ, f.api().GetInteger(gl.PACK_ALIGNMENT))
}

func (f *frameBufferObject) ReadPixels(rect Rect, format, typ gl.Enum, dst []byte) error {
	if need := f.packedSize(rect, format, typ); len(dst) < need {
		return f.ctx.report(errors.Wrapf(ErrBufferTooSmall, "framebuffer %d: %d bytes given, %d required", f.id, len(dst), need))
	}
	f.Bind(gl.READ_FRAMEBUFFER)
	f.api().ReadPixels(rect.X, rect.Y, rect.Width, rect.Height, format, typ, dst)
	return f.ctx.afterCall("FrameBufferObject.ReadPixels")
}

func (f *frameBufferObject) ReadPixelsFrom(readBuffer gl.Enum, rect Rect, format, typ gl.Enum, dst []byte) error {
	f.SetReadBuffer(readBuffer)
	return f.ReadPixels(rect, format, typ, dst)
}

func (f *frameBufferObject) ReadPixelsToByteArray(rect Rect, format, typ gl.Enum) ([]byte, error) {
	out := make([]byte, f.packedSize(rect, format, typ))
	if err := f.ReadPixels(rect, format, typ, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (f *frameBufferObject) ReadPixelsToBuffer(rect Rect, format, typ gl.Enum, pbo Buffer) error {
	if need := f.packedSize(rect, format, typ); pbo.Size() < need {
		return f.ctx.report(errors.Wrapf(ErrBufferTooSmall, "buffer %d: %d bytes, %d required", pbo.ID(), pbo.Size(), need))
	}
	f.Bind(gl.READ_FRAMEBUFFER)
	pbo.BindTo(gl.PIXEL_PACK_BUFFER)
	f.api().ReadPixelsOffset(rect.X, rect.Y, rect.Width, rect.Height, format, typ, 0)
	f.api().BindBuffer(gl.PIXEL_PACK_BUFFER, 0)
	return f.ctx.afterCall("FrameBufferObject.ReadPixelsToBuffer")
}

func (f *frameBufferObject) CheckStatus() gl.Enum {
	f.Bind(gl.FRAMEBUFFER)
	return f.api().CheckFramebufferStatus(gl.FRAMEBUFFER)
}

func (f *frameBufferObject) StatusString() string {
	return gl.FramebufferStatusString(f.CheckStatus())
}

func (f *frameBufferObject) PrintStatus(onlyErrors bool) {
	status := f.CheckStatus()
	if status == gl.FRAMEBUFFER_COMPLETE {
		if !onlyErrors {
			f.ctx.Logger().Info().EmbedObject(f).Str("status", gl.FramebufferStatusString(status)).Msg("framebuffer status")
		}
		return
	}
	ev := f.ctx.Logger().Warn().EmbedObject(f).Str("status", gl.FramebufferStatusString(status))
	for _, a := range f.Attachments() {
		ev = ev.Uint32(a.AttachmentString(), a.Object().ID())
	}
	ev.Msg("framebuffer incomplete")
}

func (f *frameBufferObject) Validate() error {
	status := f.CheckStatus()
	if status == gl.FRAMEBUFFER_COMPLETE {
		return nil
	}
	return errors.Wrapf(ErrFramebufferIncomplete, "framebuffer %d: %s", f.id, gl.FramebufferStatusString(status))
}

func (f *frameBufferObject) Blit(readBuffer gl.Enum, src Rect, dst FrameBufferObject, drawBuffer gl.Enum, dstRect Rect, mask, filter gl.Enum) {
	f.BlitToDrawBuffers(readBuffer, src, dst, []gl.Enum{drawBuffer}, dstRect, mask, filter)
}

func (f *frameBufferObject) BlitToDrawBuffers(readBuffer gl.Enum, src Rect, dst FrameBufferObject, drawBuffers []gl.Enum, dstRect Rect, mask, filter gl.Enum) {
	f.SetReadBuffer(readBuffer)
	dst.SetDrawBuffers(drawBuffers...)
	f.api().BlitFramebuffer(
		src.X, src.Y, src.X+src.Width, src.Y+src.Height,
		dstRect.X, dstRect.Y, dstRect.X+dstRect.Width, dstRect.Y+dstRect.Height,
		mask, filter,
	)
	f.ctx.afterCall("FrameBufferObject.Blit")
}
