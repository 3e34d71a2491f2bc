// Package gltest provides an in-memory implementation of gl.API.
//
// It allocates names, keeps per-object state (buffer contents, shader sources,
// link results, attachments, texture levels) and records every call so that
// code built on top of gl.API can be tested without a display or a driver.
//
// Shader compilation fails when a source contains an "#error" directive. Uniform,
// uniform block and vertex attribute locations are resolved at link time by
// scanning the attached shader sources.
package gltest

import (
	"fmt"
	"sort"

	"github.com/Carmen-Shannon/glow/gl"
)

// Kind identifies a family of native object names.
type Kind string

const (
	KindBuffer       Kind = "buffer"
	KindShader       Kind = "shader"
	KindProgram      Kind = "program"
	KindVertexArray  Kind = "vertexArray"
	KindFramebuffer  Kind = "framebuffer"
	KindRenderbuffer Kind = "renderbuffer"
	KindTexture      Kind = "texture"
)

// Call is one recorded invocation of an API method.
type Call struct {
	Name string
	Args []any
}

// DrawCall is a recorded draw with the state it was issued against.
type DrawCall struct {
	Mode        gl.Enum
	First       int32
	Count       int32
	Instances   int32
	Indexed     bool
	IndexType   gl.Enum
	Offset      int
	Program     uint32
	VertexArray uint32
	Framebuffer uint32
}

// Blit is a recorded framebuffer blit.
type Blit struct {
	ReadFramebuffer uint32
	DrawFramebuffer uint32
	Src             [4]int32
	Dst             [4]int32
	Mask            gl.Enum
	Filter          gl.Enum
}

// AttribPointer is the recorded state of one vertex attribute of a vertex array.
type AttribPointer struct {
	Index      uint32
	Size       int32
	Type       gl.Enum
	Normalized bool
	Integer    bool
	Long       bool
	Stride     int32
	Offset     int
	Buffer     uint32
	Enabled    bool
	Divisor    uint32
}

// Attachment is the recorded state of one framebuffer attachment point.
type Attachment struct {
	Kind      Kind
	Name      uint32
	TexTarget gl.Enum
	Level     int32
	Layer     int32
}

// DebugMessage is a message delivered through the debug output.
type DebugMessage struct {
	Source   gl.Enum
	Type     gl.Enum
	ID       uint32
	Severity gl.Enum
	Message  string
}

type buffer struct {
	data  []byte
	usage gl.Enum
}

type shader struct {
	typ      gl.Enum
	sources  []string
	compiled bool
	log      string
}

type program struct {
	shaders       []uint32
	linked        bool
	validated     bool
	log           string
	uniforms      map[string]int32
	blocks        map[string]uint32
	blockBindings map[uint32]uint32
	attribs       map[string]int32
	boundAttribs  map[string]uint32
	fragData      map[string]uint32
	values        map[int32]any
}

type vertexArray struct {
	attribs map[uint32]*AttribPointer
	element uint32
}

type framebuffer struct {
	attachments map[gl.Enum]Attachment
	drawBuffers []gl.Enum
	readBuffer  gl.Enum
	colors      map[gl.Enum][4]float32
	params      map[gl.Enum]int32
}

type renderbuffer struct {
	internalFormat gl.Enum
	width, height  int32
	samples        int32
}

type levelKey struct {
	face  gl.Enum
	level int32
}

type textureLevel struct {
	width, height, depth int32
	internalFormat       int32
}

type texture struct {
	target    gl.Enum
	immutable bool
	params    map[gl.Enum]int32
	paramsf   map[gl.Enum]float32
	levels    map[levelKey]textureLevel
}

type debugRule struct {
	source, typ, severity gl.Enum
	ids                   []uint32
	enabled               bool
}

// Functions is an in-memory gl.API.
type Functions struct {
	major, minor int32
	core         bool
	debugContext bool

	next map[Kind]uint32

	buffers       map[uint32]*buffer
	shaders       map[uint32]*shader
	programs      map[uint32]*program
	vertexArrays  map[uint32]*vertexArray
	framebuffers  map[uint32]*framebuffer
	renderbuffers map[uint32]*renderbuffer
	textures      map[uint32]*texture

	bindings        map[gl.Enum]uint32
	indexedBindings map[gl.Enum]map[uint32]uint32
	textureUnits    map[gl.Enum]map[gl.Enum]uint32
	activeUnit      gl.Enum
	currentProgram  uint32
	currentVAO      uint32

	capabilities map[gl.Enum]bool
	pixelStore   map[gl.Enum]int32
	viewport     [4]int32
	clearColor   [4]float32
	clearDepth   float64
	colorMask    [4]bool
	depthMask    bool
	depthFunc    gl.Enum
	cullFace     gl.Enum
	frontFace    gl.Enum
	blendFunc    [2]gl.Enum
	pointSize    float32
	lineWidth    float32

	errors []gl.Enum
	calls  []Call
	draws  []DrawCall
	blits  []Blit

	debugCallback gl.DebugCallback
	debugRules    []debugRule
	debugLog      []DebugMessage
}

var _ gl.API = &Functions{}

// FunctionsBuilderOption is a functional option for configuring a Functions instance.
type FunctionsBuilderOption func(f *Functions)

// WithVersion sets the context version reported through GetString and GetInteger.
//
// Parameters:
//   - major: the major version
//   - minor: the minor version
//
// Returns:
//   - FunctionsBuilderOption: option function to apply
func WithVersion(major, minor int32) FunctionsBuilderOption {
	return func(f *Functions) {
		f.major = major
		f.minor = minor
	}
}

// WithCompatibilityProfile makes the context report a compatibility profile.
//
// Returns:
//   - FunctionsBuilderOption: option function to apply
func WithCompatibilityProfile() FunctionsBuilderOption {
	return func(f *Functions) {
		f.core = false
	}
}

// WithDebugContext makes the context report the debug flag. Debug output starts enabled.
//
// Returns:
//   - FunctionsBuilderOption: option function to apply
func WithDebugContext() FunctionsBuilderOption {
	return func(f *Functions) {
		f.debugContext = true
	}
}

// New creates an empty context: a 4.3 core profile with the default framebuffer
// and default vertex array bound.
//
// Parameters:
//   - options: functional options to configure the context
//
// Returns:
//   - *Functions: the in-memory context
func New(options ...FunctionsBuilderOption) *Functions {
	f := &Functions{
		major:           4,
		minor:           3,
		core:            true,
		next:            make(map[Kind]uint32),
		buffers:         make(map[uint32]*buffer),
		shaders:         make(map[uint32]*shader),
		programs:        make(map[uint32]*program),
		vertexArrays:    make(map[uint32]*vertexArray),
		framebuffers:    make(map[uint32]*framebuffer),
		renderbuffers:   make(map[uint32]*renderbuffer),
		textures:        make(map[uint32]*texture),
		bindings:        make(map[gl.Enum]uint32),
		indexedBindings: make(map[gl.Enum]map[uint32]uint32),
		textureUnits:    make(map[gl.Enum]map[gl.Enum]uint32),
		activeUnit:      gl.TEXTURE0,
		capabilities:    map[gl.Enum]bool{gl.MULTISAMPLE: true},
		pixelStore:      map[gl.Enum]int32{gl.PACK_ALIGNMENT: 4, gl.UNPACK_ALIGNMENT: 4},
		clearDepth:      1,
		colorMask:       [4]bool{true, true, true, true},
		depthMask:       true,
		depthFunc:       gl.LESS,
		cullFace:        gl.BACK,
		frontFace:       gl.CCW,
		blendFunc:       [2]gl.Enum{gl.ONE, gl.ZERO},
		pointSize:       1,
		lineWidth:       1,
	}
	for _, opt := range options {
		opt(f)
	}
	if f.debugContext {
		f.capabilities[gl.DEBUG_OUTPUT] = true
	}
	f.vertexArrays[0] = &vertexArray{attribs: make(map[uint32]*AttribPointer)}
	f.framebuffers[0] = &framebuffer{
		attachments: make(map[gl.Enum]Attachment),
		drawBuffers: []gl.Enum{gl.BACK_LEFT},
		readBuffer:  gl.BACK_LEFT,
		colors:      make(map[gl.Enum][4]float32),
		params:      make(map[gl.Enum]int32),
	}
	return f
}

func (f *Functions) record(name string, args ...any) {
	f.calls = append(f.calls, Call{Name: name, Args: args})
}

func (f *Functions) alloc(kind Kind) uint32 {
	f.next[kind]++
	return f.next[kind]
}

// fail queues an error code and reports it through the debug output like a driver would.
func (f *Functions) fail(code gl.Enum, format string, args ...any) {
	f.errors = append(f.errors, code)
	msg := fmt.Sprintf("%s error generated. ", gl.ErrorString(code)) + fmt.Sprintf(format, args...)
	f.deliver(gl.DEBUG_SOURCE_API, gl.DEBUG_TYPE_ERROR, uint32(code), gl.DEBUG_SEVERITY_HIGH, msg)
}

func (f *Functions) debugEnabled(source, typ gl.Enum, id uint32, severity gl.Enum) bool {
	enabled := severity != gl.DEBUG_SEVERITY_LOW
	for _, r := range f.debugRules {
		if r.source != gl.DONT_CARE && r.source != source {
			continue
		}
		if r.typ != gl.DONT_CARE && r.typ != typ {
			continue
		}
		if r.severity != gl.DONT_CARE && r.severity != severity {
			continue
		}
		if len(r.ids) > 0 && !containsID(r.ids, id) {
			continue
		}
		enabled = r.enabled
	}
	return enabled
}

func containsID(ids []uint32, id uint32) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func (f *Functions) deliver(source, typ gl.Enum, id uint32, severity gl.Enum, message string) {
	if !f.capabilities[gl.DEBUG_OUTPUT] || !f.debugEnabled(source, typ, id, severity) {
		return
	}
	f.debugLog = append(f.debugLog, DebugMessage{Source: source, Type: typ, ID: id, Severity: severity, Message: message})
	if f.debugCallback != nil {
		f.debugCallback(source, typ, id, severity, message)
	}
}

// PushError queues an error code as if the driver had raised it.
//
// Parameters:
//   - code: the error code returned by the next GetError call
func (f *Functions) PushError(code gl.Enum) {
	f.fail(code, "injected")
}

// PendingErrors returns the number of error codes not yet drained by GetError.
func (f *Functions) PendingErrors() int {
	return len(f.errors)
}

// Calls returns a copy of the recorded call log.
func (f *Functions) Calls() []Call {
	out := make([]Call, len(f.calls))
	copy(out, f.calls)
	return out
}

// CallCount returns how many times the named method was invoked.
//
// Parameters:
//   - name: the API method name, e.g. "BindBuffer"
//
// Returns:
//   - int: the number of recorded invocations
func (f *Functions) CallCount(name string) int {
	n := 0
	for _, c := range f.calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// LastCall returns the most recent invocation of the named method.
func (f *Functions) LastCall(name string) (Call, bool) {
	for i := len(f.calls) - 1; i >= 0; i-- {
		if f.calls[i].Name == name {
			return f.calls[i], true
		}
	}
	return Call{}, false
}

// ResetCalls clears the call, draw and blit logs.
func (f *Functions) ResetCalls() {
	f.calls = nil
	f.draws = nil
	f.blits = nil
}

// Draws returns the recorded draw calls.
func (f *Functions) Draws() []DrawCall {
	out := make([]DrawCall, len(f.draws))
	copy(out, f.draws)
	return out
}

// Blits returns the recorded framebuffer blits.
func (f *Functions) Blits() []Blit {
	out := make([]Blit, len(f.blits))
	copy(out, f.blits)
	return out
}

// DebugMessages returns every message delivered through the debug output.
func (f *Functions) DebugMessages() []DebugMessage {
	out := make([]DebugMessage, len(f.debugLog))
	copy(out, f.debugLog)
	return out
}

// Live returns the number of names of the given kind that have not been deleted.
// The default framebuffer and vertex array are not counted.
func (f *Functions) Live(kind Kind) int {
	switch kind {
	case KindBuffer:
		return len(f.buffers)
	case KindShader:
		return len(f.shaders)
	case KindProgram:
		return len(f.programs)
	case KindVertexArray:
		return len(f.vertexArrays) - 1
	case KindFramebuffer:
		return len(f.framebuffers) - 1
	case KindRenderbuffer:
		return len(f.renderbuffers)
	case KindTexture:
		return len(f.textures)
	}
	return 0
}

// IsLive reports whether name is an existing object of the given kind.
func (f *Functions) IsLive(kind Kind, name uint32) bool {
	var ok bool
	switch kind {
	case KindBuffer:
		_, ok = f.buffers[name]
	case KindShader:
		_, ok = f.shaders[name]
	case KindProgram:
		_, ok = f.programs[name]
	case KindVertexArray:
		_, ok = f.vertexArrays[name]
	case KindFramebuffer:
		_, ok = f.framebuffers[name]
	case KindRenderbuffer:
		_, ok = f.renderbuffers[name]
	case KindTexture:
		_, ok = f.textures[name]
	}
	return ok
}

// Binding returns the name bound to a buffer, framebuffer or renderbuffer target.
func (f *Functions) Binding(target gl.Enum) uint32 {
	if target == gl.ELEMENT_ARRAY_BUFFER {
		return f.vertexArrays[f.currentVAO].element
	}
	if target == gl.FRAMEBUFFER {
		target = gl.DRAW_FRAMEBUFFER
	}
	return f.bindings[target]
}

// IndexedBinding returns the name bound to an indexed buffer target.
func (f *Functions) IndexedBinding(target gl.Enum, index uint32) uint32 {
	return f.indexedBindings[target][index]
}

// BoundTexture returns the texture bound to target on the given texture unit.
func (f *Functions) BoundTexture(unit, target gl.Enum) uint32 {
	return f.textureUnits[unit][target]
}

// CurrentProgram returns the program installed by UseProgram.
func (f *Functions) CurrentProgram() uint32 {
	return f.currentProgram
}

// CurrentVertexArray returns the bound vertex array.
func (f *Functions) CurrentVertexArray() uint32 {
	return f.currentVAO
}

// BufferContents returns a copy of a buffer's data store.
func (f *Functions) BufferContents(name uint32) []byte {
	b, ok := f.buffers[name]
	if !ok {
		return nil
	}
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out
}

// ShaderSources returns the source strings last uploaded to a shader.
func (f *Functions) ShaderSources(name uint32) []string {
	s, ok := f.shaders[name]
	if !ok {
		return nil
	}
	return append([]string(nil), s.sources...)
}

// AttachedShaders returns the shaders attached to a program in attach order.
func (f *Functions) AttachedShaders(name uint32) []uint32 {
	p, ok := f.programs[name]
	if !ok {
		return nil
	}
	return append([]uint32(nil), p.shaders...)
}

// UniformValue returns the last value written to a uniform of a linked program.
// Scalars are stored as float32, int32 or uint32, vectors and matrices as slices.
func (f *Functions) UniformValue(name uint32, uniform string) (any, bool) {
	p, ok := f.programs[name]
	if !ok || !p.linked {
		return nil, false
	}
	loc, ok := p.uniforms[uniform]
	if !ok {
		return nil, false
	}
	v, ok := p.values[loc]
	return v, ok
}

// UniformBlockBindingOf returns the binding point assigned to a uniform block.
func (f *Functions) UniformBlockBindingOf(name uint32, block string) (uint32, bool) {
	p, ok := f.programs[name]
	if !ok {
		return 0, false
	}
	idx, ok := p.blocks[block]
	if !ok {
		return 0, false
	}
	binding, ok := p.blockBindings[idx]
	return binding, ok
}

// AttribPointerOf returns the recorded attribute state of a vertex array.
func (f *Functions) AttribPointerOf(vao, index uint32) (AttribPointer, bool) {
	v, ok := f.vertexArrays[vao]
	if !ok {
		return AttribPointer{}, false
	}
	a, ok := v.attribs[index]
	if !ok {
		return AttribPointer{}, false
	}
	return *a, true
}

// ElementBufferOf returns the element buffer captured by a vertex array.
func (f *Functions) ElementBufferOf(vao uint32) uint32 {
	if v, ok := f.vertexArrays[vao]; ok {
		return v.element
	}
	return 0
}

// AttachmentOf returns the recorded attachment of a framebuffer.
func (f *Functions) AttachmentOf(fb uint32, attachment gl.Enum) (Attachment, bool) {
	b, ok := f.framebuffers[fb]
	if !ok {
		return Attachment{}, false
	}
	a, ok := b.attachments[attachment]
	return a, ok
}

// AttachmentPoints returns the attachment points of a framebuffer in ascending order.
func (f *Functions) AttachmentPoints(fb uint32) []gl.Enum {
	b, ok := f.framebuffers[fb]
	if !ok {
		return nil
	}
	out := make([]gl.Enum, 0, len(b.attachments))
	for k := range b.attachments {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// DrawBuffersOf returns the draw buffer list of a framebuffer.
func (f *Functions) DrawBuffersOf(fb uint32) []gl.Enum {
	if b, ok := f.framebuffers[fb]; ok {
		return append([]gl.Enum(nil), b.drawBuffers...)
	}
	return nil
}

// ReadBufferOf returns the read buffer of a framebuffer.
func (f *Functions) ReadBufferOf(fb uint32) gl.Enum {
	if b, ok := f.framebuffers[fb]; ok {
		return b.readBuffer
	}
	return gl.NONE
}

// ClearedColor returns the last color cleared into an attachment point of a framebuffer.
func (f *Functions) ClearedColor(fb uint32, buffer gl.Enum) ([4]float32, bool) {
	b, ok := f.framebuffers[fb]
	if !ok {
		return [4]float32{}, false
	}
	c, ok := b.colors[buffer]
	return c, ok
}

// RenderbufferStorageOf returns the storage allocated for a renderbuffer.
func (f *Functions) RenderbufferStorageOf(name uint32) (internalFormat gl.Enum, width, height, samples int32, ok bool) {
	r, found := f.renderbuffers[name]
	if !found {
		return gl.NONE, 0, 0, 0, false
	}
	return r.internalFormat, r.width, r.height, r.samples, true
}

// TextureLevelOf returns the size of a texture image. For cube maps, face selects the face target.
func (f *Functions) TextureLevelOf(name uint32, face gl.Enum, level int32) (width, height, depth int32, ok bool) {
	t, found := f.textures[name]
	if !found {
		return 0, 0, 0, false
	}
	l, found := t.levels[levelKey{face: face, level: level}]
	if !found {
		return 0, 0, 0, false
	}
	return l.width, l.height, l.depth, true
}

// ViewportRect returns the current viewport.
func (f *Functions) ViewportRect() [4]int32 {
	return f.viewport
}

// PixelStore returns a pixel storage parameter.
func (f *Functions) PixelStore(pname gl.Enum) int32 {
	return f.pixelStore[pname]
}
