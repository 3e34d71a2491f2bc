package glow

import (
	"sort"

	"github.com/Carmen-Shannon/glow/gl"
)

// StateMode selects whether a State issues native calls as settings are made.
type StateMode int

const (
	// StateImmediate issues every setting at once and records it for later Apply calls.
	StateImmediate StateMode = iota
	// StateDeferred only records settings; Apply issues them.
	StateDeferred
)

// trackedCapabilities are the capabilities captured by CurrentState.
var trackedCapabilities = []gl.Enum{
	gl.BLEND,
	gl.CULL_FACE,
	gl.DEPTH_TEST,
	gl.STENCIL_TEST,
	gl.SCISSOR_TEST,
	gl.MULTISAMPLE,
	gl.POLYGON_OFFSET_FILL,
	gl.PROGRAM_POINT_SIZE,
	gl.PRIMITIVE_RESTART,
	gl.FRAMEBUFFER_SRGB,
	gl.RASTERIZER_DISCARD,
	gl.TEXTURE_CUBE_MAP_SEAMLESS,
}

// State is a recorded set of capabilities and fixed-function settings that can be
// applied in one call, e.g. to restore the state around a render pass.
type State interface {
	// Mode returns the current mode.
	//
	// Returns:
	//   - StateMode: StateImmediate or StateDeferred
	Mode() StateMode

	// SetMode switches between immediate and deferred mode.
	//
	// Parameters:
	//   - mode: the new mode
	SetMode(mode StateMode)

	// Enable records (and in immediate mode issues) enabling capability.
	//
	// Parameters:
	//   - capability: BLEND, DEPTH_TEST, ...
	Enable(capability gl.Enum)

	// Disable records (and in immediate mode issues) disabling capability.
	//
	// Parameters:
	//   - capability: BLEND, DEPTH_TEST, ...
	Disable(capability gl.Enum)

	// SetEnabled enables or disables capability.
	//
	// Parameters:
	//   - capability: the capability
	//   - enabled: the requested state
	SetEnabled(capability gl.Enum, enabled bool)

	// IsEnabled reports the recorded setting of capability.
	//
	// Parameters:
	//   - capability: the capability
	//
	// Returns:
	//   - bool: true if recorded as enabled
	IsEnabled(capability gl.Enum) bool

	// Contains reports whether capability has a recorded setting.
	//
	// Parameters:
	//   - capability: the capability
	//
	// Returns:
	//   - bool: true if recorded
	Contains(capability gl.Enum) bool

	// Capabilities returns the recorded capabilities in ascending enum order.
	//
	// Returns:
	//   - []gl.Enum: the capabilities
	Capabilities() []gl.Enum

	// CullFace records the culled face.
	CullFace(mode gl.Enum)

	// FrontFace records the front face winding.
	FrontFace(mode gl.Enum)

	// BlendFunc records the blend factors.
	BlendFunc(sfactor, dfactor gl.Enum)

	// DepthFunc records the depth comparison.
	DepthFunc(fn gl.Enum)

	// DepthMask records whether depth writes are enabled.
	DepthMask(flag bool)

	// Viewport records the viewport rectangle.
	Viewport(rect Rect)

	// PointSize records the rasterized point size.
	PointSize(size float32)

	// LineWidth records the rasterized line width.
	LineWidth(width float32)

	// Apply issues every recorded capability and setting.
	Apply()
}

// stateSetting is one recorded fixed-function call.
type stateSetting struct {
	key   string
	apply func(api gl.API)
}

// state implements State.
type state struct {
	ctx          Context
	mode         StateMode
	capabilities map[gl.Enum]bool
	settings     []stateSetting
}

var _ State = &state{}

// NewState creates an empty state.
//
// Parameters:
//   - ctx: the context the state applies to
//   - options: functional options for the state
//
// Returns:
//   - State: the new state
func NewState(ctx Context, options ...StateBuilderOption) State {
	s := &state{
		ctx:          ctx,
		mode:         StateImmediate,
		capabilities: make(map[gl.Enum]bool),
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// CurrentState captures the enable state of the commonly toggled capabilities, or of the
// given ones. The result is deferred: Apply restores the captured state.
//
// Parameters:
//   - ctx: the context to query
//   - capabilities: the capabilities to capture; empty captures the default set
//
// Returns:
//   - State: the snapshot
func CurrentState(ctx Context, capabilities ...gl.Enum) State {
	if len(capabilities) == 0 {
		capabilities = trackedCapabilities
	}
	s := NewState(ctx, WithStateMode(StateDeferred)).(*state)
	for _, c := range capabilities {
		s.capabilities[c] = ctx.API().IsEnabled(c)
	}
	return s
}

func (s *state) Mode() StateMode {
	return s.mode
}

func (s *state) SetMode(mode StateMode) {
	s.mode = mode
}

func (s *state) Enable(capability gl.Enum) {
	s.SetEnabled(capability, true)
}

func (s *state) Disable(capability gl.Enum) {
	s.SetEnabled(capability, false)
}

func (s *state) SetEnabled(capability gl.Enum, enabled bool) {
	s.capabilities[capability] = enabled
	if s.mode == StateImmediate {
		applyCapability(s.ctx.API(), capability, enabled)
	}
}

func applyCapability(api gl.API, capability gl.Enum, enabled bool) {
	if enabled {
		api.Enable(capability)
	} else {
		api.Disable(capability)
	}
}

func (s *state) IsEnabled(capability gl.Enum) bool {
	return s.capabilities[capability]
}

func (s *state) Contains(capability gl.Enum) bool {
	_, ok := s.capabilities[capability]
	return ok
}

func (s *state) Capabilities() []gl.Enum {
	out := make([]gl.Enum, 0, len(s.capabilities))
	for c := range s.capabilities {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// set records a setting, replacing an earlier one with the same key.
func (s *state) set(key string, apply func(api gl.API)) {
	replaced := false
	for i := range s.settings {
		if s.settings[i].key == key {
			s.settings[i].apply = apply
			replaced = true
			break
		}
	}
	if !replaced {
		s.settings = append(s.settings, stateSetting{key: key, apply: apply})
	}
	if s.mode == StateImmediate {
		apply(s.ctx.API())
	}
}

func (s *state) CullFace(mode gl.Enum) {
	s.set("CullFace", func(api gl.API) { api.CullFace(mode) })
}

func (s *state) FrontFace(mode gl.Enum) {
	s.set("FrontFace", func(api gl.API) { api.FrontFace(mode) })
}

func (s *state) BlendFunc(sfactor, dfactor gl.Enum) {
	s.set("BlendFunc", func(api gl.API) { api.BlendFunc(sfactor, dfactor) })
}

func (s *state) DepthFunc(fn gl.Enum) {
	s.set("DepthFunc", func(api gl.API) { api.DepthFunc(fn) })
}

func (s *state) DepthMask(flag bool) {
	s.set("DepthMask", func(api gl.API) { api.DepthMask(flag) })
}

func (s *state) Viewport(rect Rect) {
	s.set("Viewport", func(api gl.API) { api.Viewport(rect.X, rect.Y, rect.Width, rect.Height) })
}

func (s *state) PointSize(size float32) {
	s.set("PointSize", func(api gl.API) { api.PointSize(size) })
}

func (s *state) LineWidth(width float32) {
	s.set("LineWidth", func(api gl.API) { api.LineWidth(width) })
}

func (s *state) Apply() {
	api := s.ctx.API()
	for _, c := range s.Capabilities() {
		applyCapability(api, c, s.capabilities[c])
	}
	for _, setting := range s.settings {
		setting.apply(api)
	}
}
