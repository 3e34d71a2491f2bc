package glow

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/Carmen-Shannon/glow/gl"
)

// CubeMapFaces lists the cube map face targets in layer order.
var CubeMapFaces = [6]gl.Enum{
	gl.TEXTURE_CUBE_MAP_POSITIVE_X, gl.TEXTURE_CUBE_MAP_NEGATIVE_X,
	gl.TEXTURE_CUBE_MAP_POSITIVE_Y, gl.TEXTURE_CUBE_MAP_NEGATIVE_Y,
	gl.TEXTURE_CUBE_MAP_POSITIVE_Z, gl.TEXTURE_CUBE_MAP_NEGATIVE_Z,
}

// Texture wraps a native texture object.
type Texture interface {
	Object

	// Target returns the texture target.
	//
	// Returns:
	//   - gl.Enum: TEXTURE_2D, TEXTURE_CUBE_MAP, ...
	Target() gl.Enum

	// Bind binds the texture to its target on the active texture unit.
	Bind()

	// Unbind binds texture 0 to the texture's target on the active texture unit.
	Unbind()

	// BindActive makes unit the active texture unit and binds the texture to it.
	//
	// Parameters:
	//   - unit: the texture unit (TEXTURE0 + n)
	BindActive(unit gl.Enum)

	// SetParameter sets an integer texture parameter.
	//
	// Parameters:
	//   - pname: TEXTURE_MIN_FILTER, TEXTURE_WRAP_S, ...
	//   - value: the value, usually an enumerant
	SetParameter(pname gl.Enum, value gl.Enum)

	// SetParameteri sets an integer texture parameter.
	//
	// Parameters:
	//   - pname: the parameter
	//   - value: the value
	SetParameteri(pname gl.Enum, value int32)

	// SetParameterf sets a float texture parameter.
	//
	// Parameters:
	//   - pname: the parameter
	//   - value: the value
	SetParameterf(pname gl.Enum, value float32)

	// Parameter queries an integer texture parameter.
	//
	// Parameters:
	//   - pname: the parameter
	//
	// Returns:
	//   - int32: the value
	Parameter(pname gl.Enum) int32

	// LevelParameter queries a parameter of one mipmap level.
	//
	// Parameters:
	//   - level: the mipmap level
	//   - pname: TEXTURE_WIDTH, TEXTURE_HEIGHT, ...
	//
	// Returns:
	//   - int32: the value
	LevelParameter(level int32, pname gl.Enum) int32

	// Image1D specifies a one-dimensional image.
	//
	// Parameters:
	//   - level: the mipmap level
	//   - internalFormat: the storage format
	//   - width: the image width
	//   - format, typ: the layout of data
	//   - data: the pixels, or nil to allocate only
	//
	// Returns:
	//   - error: ErrBufferTooSmall if data is shorter than the image
	Image1D(level int32, internalFormat gl.Enum, width int32, format, typ gl.Enum, data []byte) error

	// Image2D specifies a two-dimensional image.
	//
	// Parameters:
	//   - level: the mipmap level
	//   - internalFormat: the storage format
	//   - width, height: the image size
	//   - format, typ: the layout of data
	//   - data: the pixels, or nil to allocate only
	//
	// Returns:
	//   - error: ErrBufferTooSmall if data is shorter than the image
	Image2D(level int32, internalFormat gl.Enum, width, height int32, format, typ gl.Enum, data []byte) error

	// CubeMapImage specifies one face of a cube map texture.
	//
	// Parameters:
	//   - face: one of CubeMapFaces
	//   - level: the mipmap level
	//   - internalFormat: the storage format
	//   - width, height: the face size
	//   - format, typ: the layout of data
	//   - data: the pixels, or nil to allocate only
	//
	// Returns:
	//   - error: ErrBufferTooSmall if data is shorter than the image
	CubeMapImage(face gl.Enum, level int32, internalFormat gl.Enum, width, height int32, format, typ gl.Enum, data []byte) error

	// Image3D specifies a three-dimensional or array image.
	//
	// Parameters:
	//   - level: the mipmap level
	//   - internalFormat: the storage format
	//   - width, height, depth: the image size
	//   - format, typ: the layout of data
	//   - data: the pixels, or nil to allocate only
	//
	// Returns:
	//   - error: ErrBufferTooSmall if data is shorter than the image
	Image3D(level int32, internalFormat gl.Enum, width, height, depth int32, format, typ gl.Enum, data []byte) error

	// SubImage2D replaces a rectangle of a two-dimensional image.
	//
	// Parameters:
	//   - level: the mipmap level
	//   - x, y: the offset of the rectangle
	//   - width, height: the rectangle size
	//   - format, typ: the layout of data
	//   - data: the pixels
	//
	// Returns:
	//   - error: ErrBufferTooSmall if data is shorter than the rectangle
	SubImage2D(level, x, y, width, height int32, format, typ gl.Enum, data []byte) error

	// Storage2D allocates immutable storage for all levels.
	//
	// Parameters:
	//   - levels: the number of mipmap levels
	//   - internalFormat: the storage format
	//   - width, height: the base level size
	Storage2D(levels int32, internalFormat gl.Enum, width, height int32)

	// GenerateMipmap generates all mipmap levels from the base level.
	GenerateMipmap()

	// Size returns the base level size as last specified through this wrapper.
	//
	// Returns:
	//   - width, height, depth: the size
	Size() (width, height, depth int32)

	// InternalFormat returns the storage format as last specified through this wrapper.
	//
	// Returns:
	//   - gl.Enum: the internal format
	InternalFormat() gl.Enum
}

// texture implements Texture.
type texture struct {
	object
	target         gl.Enum
	width          int32
	height         int32
	depth          int32
	internalFormat gl.Enum
}

var _ Texture = &texture{}

// NewTexture creates a texture for target. The target is fixed at the first bind.
//
// Parameters:
//   - ctx: the owning context
//   - target: TEXTURE_2D, TEXTURE_CUBE_MAP, ...
//
// Returns:
//   - Texture: the new texture, holding one reference
func NewTexture(ctx Context, target gl.Enum) Texture {
	t := &texture{target: target}
	t.init(ctx, t, KindTexture, ctx.API().GenTexture(), true, nil, ctx.API().DeleteTexture)
	return t
}

// TextureFromID wraps an existing native texture.
//
// Parameters:
//   - ctx: the owning context
//   - id: the native texture name
//   - target: the texture target
//   - takeOwnership: whether destroying the wrapper deletes the native texture
//
// Returns:
//   - Texture: the wrapper, holding one reference
func TextureFromID(ctx Context, id uint32, target gl.Enum, takeOwnership bool) Texture {
	t := &texture{target: target}
	t.init(ctx, t, KindTexture, id, takeOwnership, nil, ctx.API().DeleteTexture)
	t.width = t.LevelParameter(0, gl.TEXTURE_WIDTH)
	t.height = t.LevelParameter(0, gl.TEXTURE_HEIGHT)
	t.depth = t.LevelParameter(0, gl.TEXTURE_DEPTH)
	t.internalFormat = gl.Enum(t.LevelParameter(0, gl.TEXTURE_INTERNAL_FORMAT))
	return t
}

// ActiveTexture makes unit the active texture unit.
func ActiveTexture(ctx Context, unit gl.Enum) {
	ctx.API().ActiveTexture(unit)
}

func (t *texture) Accept(v ObjectVisitor) {
	v.VisitTexture(t)
}

func (t *texture) MarshalZerologObject(e *zerolog.Event) {
	t.object.MarshalZerologObject(e)
	e.Str("target", gl.TextureTargetString(t.target)).
		Int32("width", t.width).
		Int32("height", t.height)
}

func (t *texture) Target() gl.Enum {
	return t.target
}

func (t *texture) Bind() {
	t.api().BindTexture(t.target, t.id)
}

func (t *texture) Unbind() {
	t.api().BindTexture(t.target, 0)
}

func (t *texture) BindActive(unit gl.Enum) {
	t.api().ActiveTexture(unit)
	t.Bind()
}

func (t *texture) SetParameter(pname gl.Enum, value gl.Enum) {
	t.SetParameteri(pname, int32(value))
}

func (t *texture) SetParameteri(pname gl.Enum, value int32) {
	t.Bind()
	t.api().TexParameteri(t.target, pname, value)
	t.ctx.afterCall("Texture.SetParameter")
}

func (t *texture) SetParameterf(pname gl.Enum, value float32) {
	t.Bind()
	t.api().TexParameterf(t.target, pname, value)
	t.ctx.afterCall("Texture.SetParameterf")
}

func (t *texture) Parameter(pname gl.Enum) int32 {
	t.Bind()
	return t.api().GetTexParameteri(t.target, pname)
}

func (t *texture) LevelParameter(level int32, pname gl.Enum) int32 {
	t.Bind()
	return t.api().GetTexLevelParameteri(t.target, level, pname)
}

// checkData reports ErrBufferTooSmall when data cannot hold the described image.
func (t *texture) checkData(width, height, depth int32, format, typ gl.Enum, data []byte) error {
	if data == nil {
		return nil
	}
	need := imageSize(width, height, depth, format, typ, t.api().GetInteger(gl.UNPACK_ALIGNMENT))
	if len(data) < need {
		return t.ctx.report(errors.Wrapf(ErrBufferTooSmall, "texture %d: %d bytes given, %d required", t.id, len(data), need))
	}
	return nil
}

func (t *texture) setSize(level int32, internalFormat gl.Enum, width, height, depth int32) {
	if level != 0 {
		return
	}
	t.width, t.height, t.depth = width, height, depth
	t.internalFormat = internalFormat
}

func (t *texture) Image1D(level int32, internalFormat gl.Enum, width int32, format, typ gl.Enum, data []byte) error {
	if err := t.checkData(width, 1, 1, format, typ, data); err != nil {
		return err
	}
	t.Bind()
	t.api().TexImage1D(t.target, level, int32(internalFormat), width, 0, format, typ, data)
	t.setSize(level, internalFormat, width, 1, 1)
	return t.ctx.afterCall("Texture.Image1D")
}

func (t *texture) Image2D(level int32, internalFormat gl.Enum, width, height int32, format, typ gl.Enum, data []byte) error {
	if err := t.checkData(width, height, 1, format, typ, data); err != nil {
		return err
	}
	t.Bind()
	t.api().TexImage2D(t.target, level, int32(internalFormat), width, height, 0, format, typ, data)
	t.setSize(level, internalFormat, width, height, 1)
	return t.ctx.afterCall("Texture.Image2D")
}

func (t *texture) CubeMapImage(face gl.Enum, level int32, internalFormat gl.Enum, width, height int32, format, typ gl.Enum, data []byte) error {
	if err := t.checkData(width, height, 1, format, typ, data); err != nil {
		return err
	}
	t.Bind()
	t.api().TexImage2D(face, level, int32(internalFormat), width, height, 0, format, typ, data)
	t.setSize(level, internalFormat, width, height, 1)
	return t.ctx.afterCall("Texture.CubeMapImage")
}

func (t *texture) Image3D(level int32, internalFormat gl.Enum, width, height, depth int32, format, typ gl.Enum, data []byte) error {
	if err := t.checkData(width, height, depth, format, typ, data); err != nil {
		return err
	}
	t.Bind()
	t.api().TexImage3D(t.target, level, int32(internalFormat), width, height, depth, 0, format, typ, data)
	t.setSize(level, internalFormat, width, height, depth)
	return t.ctx.afterCall("Texture.Image3D")
}

func (t *texture) SubImage2D(level, x, y, width, height int32, format, typ gl.Enum, data []byte) error {
	if data == nil {
		return t.ctx.report(errors.Wrapf(ErrBufferTooSmall, "texture %d: no sub image data", t.id))
	}
	if err := t.checkData(width, height, 1, format, typ, data); err != nil {
		return err
	}
	t.Bind()
	t.api().TexSubImage2D(t.target, level, x, y, width, height, format, typ, data)
	return t.ctx.afterCall("Texture.SubImage2D")
}

func (t *texture) Storage2D(levels int32, internalFormat gl.Enum, width, height int32) {
	t.Bind()
	t.api().TexStorage2D(t.target, levels, internalFormat, width, height)
	t.setSize(0, internalFormat, width, height, 1)
	t.ctx.afterCall("Texture.Storage2D")
}

func (t *texture) GenerateMipmap() {
	t.Bind()
	t.api().GenerateMipmap(t.target)
	t.ctx.afterCall("Texture.GenerateMipmap")
}

func (t *texture) Size() (int32, int32, int32) {
	return t.width, t.height, t.depth
}

func (t *texture) InternalFormat() gl.Enum {
	return t.internalFormat
}
