package glowutils

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/Carmen-Shannon/glow/gl"
	"github.com/Carmen-Shannon/glow/glow"
)

// bytesPerTexel estimates the storage size of common internal formats.
var bytesPerTexel = map[gl.Enum]int64{
	gl.R8:                 1,
	gl.RG8:                2,
	gl.RGB8:               3,
	gl.RGBA8:              4,
	gl.SRGB8:              3,
	gl.SRGB8_ALPHA8:       4,
	gl.R32F:               4,
	gl.R32I:               4,
	gl.R32UI:              4,
	gl.RGB16F:             6,
	gl.RGBA16F:            8,
	gl.RGB32F:             12,
	gl.RGBA32F:            16,
	gl.DEPTH_COMPONENT16:  2,
	gl.DEPTH_COMPONENT24:  3,
	gl.DEPTH_COMPONENT32:  4,
	gl.DEPTH_COMPONENT32F: 4,
	gl.DEPTH24_STENCIL8:   4,
	gl.DEPTH32F_STENCIL8:  8,
	gl.RGBA:               4,
	gl.RGB:                3,
}

// ObjectInfo summarizes the live objects of a context: a count per kind and an estimate
// of the memory held by buffers, textures and renderbuffers. Mipmap chains are not counted.
type ObjectInfo struct {
	glow.BaseObjectVisitor

	Counts            map[glow.ObjectKind]int
	BufferBytes       int64
	TextureBytes      int64
	RenderBufferBytes int64
	Named             []string
}

var _ zerolog.LogObjectMarshaler = &ObjectInfo{}

// CollectObjectInfo visits every object registered with ctx.
//
// Parameters:
//   - ctx: the context to inspect
//
// Returns:
//   - *ObjectInfo: the summary
func CollectObjectInfo(ctx glow.Context) *ObjectInfo {
	info := &ObjectInfo{Counts: make(map[glow.ObjectKind]int)}
	for _, o := range ctx.Objects() {
		info.Counts[o.Kind()]++
		if o.HasName() {
			info.Named = append(info.Named, o.Name())
		}
	}
	ctx.Visit(info)
	sort.Strings(info.Named)
	return info
}

func (info *ObjectInfo) VisitBuffer(b glow.Buffer) {
	info.BufferBytes += int64(b.Size())
}

func (info *ObjectInfo) VisitTexture(t glow.Texture) {
	w, h, d := t.Size()
	bpp, ok := bytesPerTexel[t.InternalFormat()]
	if !ok {
		bpp = 4
	}
	texels := int64(w) * int64(max(h, 1)) * int64(max(d, 1))
	if t.Target() == gl.TEXTURE_CUBE_MAP {
		texels *= 6
	}
	info.TextureBytes += texels * bpp
}

func (info *ObjectInfo) VisitRenderBufferObject(rbo glow.RenderBufferObject) {
	w := int64(rbo.Parameter(gl.RENDERBUFFER_WIDTH))
	h := int64(rbo.Parameter(gl.RENDERBUFFER_HEIGHT))
	samples := int64(max(rbo.Parameter(gl.RENDERBUFFER_SAMPLES), 1))
	bpp, ok := bytesPerTexel[gl.Enum(rbo.Parameter(gl.RENDERBUFFER_INTERNAL_FORMAT))]
	if !ok {
		bpp = 4
	}
	info.RenderBufferBytes += w * h * samples * bpp
}

// Total returns the number of objects.
func (info *ObjectInfo) Total() int {
	n := 0
	for _, c := range info.Counts {
		n += c
	}
	return n
}

func (info *ObjectInfo) MarshalZerologObject(e *zerolog.Event) {
	kinds := zerolog.Dict()
	for kind, n := range info.Counts {
		kinds.Int(string(kind), n)
	}
	e.Int("objects", info.Total()).
		Dict("kinds", kinds).
		Int64("buffer_bytes", info.BufferBytes).
		Int64("texture_bytes", info.TextureBytes).
		Int64("renderbuffer_bytes", info.RenderBufferBytes).
		Strs("named", info.Named)
}

// LogObjectInfo collects the object summary of ctx and writes it to the context logger at
// info level, followed by one debug line per object.
//
// Parameters:
//   - ctx: the context to inspect
func LogObjectInfo(ctx glow.Context) {
	info := CollectObjectInfo(ctx)
	log := ctx.Logger()
	log.Info().EmbedObject(info).Msg("object info")
	for _, o := range ctx.Objects() {
		log.Debug().EmbedObject(o).Msg("object")
	}
}
