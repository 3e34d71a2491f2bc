package glow

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Carmen-Shannon/glow/gl"
	"github.com/Carmen-Shannon/glow/logging"
)

// maxQueuedErrors bounds how many codes CheckError drains in one call.
const maxQueuedErrors = 16

// Version is a context version number.
type Version struct {
	Major int32
	Minor int32
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// AtLeast reports whether v is greater than or equal to major.minor.
func (v Version) AtLeast(major, minor int32) bool {
	return v.Major > major || (v.Major == major && v.Minor >= minor)
}

// Context binds the wrappers to one native function table and tracks every object
// created through it. A Context must only be used on the thread that owns the
// native context.
type Context interface {
	// API returns the native function table.
	//
	// Returns:
	//   - gl.API: the function table all wrappers call into
	API() gl.API

	// Logger returns the logger used for diagnostics of this context.
	//
	// Returns:
	//   - *zerolog.Logger: the logger
	Logger() *zerolog.Logger

	// Version returns the version of the native context.
	//
	// Returns:
	//   - Version: the major and minor version
	Version() Version

	// Vendor returns the driver vendor string.
	//
	// Returns:
	//   - string: the vendor
	Vendor() string

	// Renderer returns the driver renderer string.
	//
	// Returns:
	//   - string: the renderer
	Renderer() string

	// IsCoreProfile reports whether the native context is a core profile context.
	//
	// Returns:
	//   - bool: true for core profile contexts
	IsCoreProfile() bool

	// IsDebugContext reports whether the native context was created with the debug flag.
	//
	// Returns:
	//   - bool: true for debug contexts
	IsDebugContext() bool

	// Objects returns a snapshot of the live objects in creation order.
	//
	// Returns:
	//   - []Object: the registered objects
	Objects() []Object

	// Count returns the number of live objects.
	//
	// Returns:
	//   - int: the registry size
	Count() int

	// Visit dispatches every live object to the visitor in creation order.
	//
	// Parameters:
	//   - v: the visitor
	Visit(v ObjectVisitor)

	// CheckError drains the native error queue. The first queued code is returned as an
	// *Error tagged with where; further codes are logged. Returns nil if no error was queued.
	// When the context panics on errors, a non-nil result panics instead of returning.
	//
	// Parameters:
	//   - where: the call site, used in the error message
	//
	// Returns:
	//   - error: the first queued error, or nil
	CheckError(where string) error

	// PanicsOnErrors reports whether reported errors panic.
	//
	// Returns:
	//   - bool: true if errors panic
	PanicsOnErrors() bool

	// DebugOutput returns the debug message output of this context.
	//
	// Returns:
	//   - DebugOutput: the debug output controller
	DebugOutput() DebugOutput

	// DefaultFBO returns the wrapper for the window-system framebuffer (name 0).
	// It is never deleted and ignores reference counting.
	//
	// Returns:
	//   - FrameBufferObject: the default framebuffer
	DefaultFBO() FrameBufferObject

	register(o Object)
	deregister(o Object)
}

// glowContext implements Context.
type glowContext struct {
	api    gl.API
	logger *zerolog.Logger

	panics      bool
	checkErrors bool

	version  Version
	vendor   string
	renderer string
	core     bool
	debug    bool

	mu      sync.Mutex
	objects []Object

	debugOutput *debugOutput
	defaultFBO  *frameBufferObject
}

var _ Context = &glowContext{}

// NewContext creates a Context over the given function table. The native context must be
// current on the calling thread; its version and profile are queried once here.
//
// Parameters:
//   - api: the native function table (gl/native for a real driver, gl/gltest in tests)
//   - options: functional options for the context
//
// Returns:
//   - Context: the new context
func NewContext(api gl.API, options ...ContextBuilderOption) Context {
	if api == nil {
		panic("glow: NewContext requires a non-nil gl.API")
	}
	c := &glowContext{
		api:    api,
		panics: panicOnErrors,
	}
	for _, opt := range options {
		opt(c)
	}

	c.version = Version{Major: api.GetInteger(gl.MAJOR_VERSION), Minor: api.GetInteger(gl.MINOR_VERSION)}
	c.vendor = api.GetString(gl.VENDOR)
	c.renderer = api.GetString(gl.RENDERER)
	if c.version.AtLeast(3, 2) {
		c.core = api.GetInteger(gl.CONTEXT_PROFILE_MASK)&gl.CONTEXT_CORE_PROFILE_BIT != 0
	}
	if c.version.AtLeast(3, 0) {
		c.debug = api.GetInteger(gl.CONTEXT_FLAGS)&gl.CONTEXT_FLAG_DEBUG_BIT != 0
	}
	// Queries against old contexts may have queued INVALID_ENUM; start clean.
	for i := 0; i < maxQueuedErrors && api.GetError() != gl.NO_ERROR; i++ {
	}

	c.debugOutput = newDebugOutput(c)
	c.defaultFBO = newDefaultFBO(c)

	c.Logger().Debug().
		Str("version", c.version.String()).
		Str("vendor", c.vendor).
		Str("renderer", c.renderer).
		Bool("core", c.core).
		Bool("debug", c.debug).
		Msg("context created")
	return c
}

func (c *glowContext) API() gl.API {
	return c.api
}

func (c *glowContext) Logger() *zerolog.Logger {
	if c.logger != nil {
		return c.logger
	}
	l := logging.Component("glow")
	return &l
}

func (c *glowContext) Version() Version {
	return c.version
}

func (c *glowContext) Vendor() string {
	return c.vendor
}

func (c *glowContext) Renderer() string {
	return c.renderer
}

func (c *glowContext) IsCoreProfile() bool {
	return c.core
}

func (c *glowContext) IsDebugContext() bool {
	return c.debug
}

func (c *glowContext) Objects() []Object {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Object, len(c.objects))
	copy(out, c.objects)
	return out
}

func (c *glowContext) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.objects)
}

func (c *glowContext) Visit(v ObjectVisitor) {
	for _, o := range c.Objects() {
		o.Accept(v)
	}
}

func (c *glowContext) CheckError(where string) error {
	var first gl.Enum
	for i := 0; i < maxQueuedErrors; i++ {
		code := c.api.GetError()
		if code == gl.NO_ERROR {
			break
		}
		if first == gl.NO_ERROR {
			first = code
			continue
		}
		c.Logger().Warn().Str("where", where).Str("code", gl.ErrorString(code)).Msg("additional queued error")
	}
	if first == gl.NO_ERROR {
		return nil
	}
	return c.report(&Error{Code: first, Where: where})
}

func (c *glowContext) PanicsOnErrors() bool {
	return c.panics
}

func (c *glowContext) DebugOutput() DebugOutput {
	return c.debugOutput
}

func (c *glowContext) DefaultFBO() FrameBufferObject {
	return c.defaultFBO
}

func (c *glowContext) register(o Object) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.objects = append(c.objects, o)
}

func (c *glowContext) deregister(o Object) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, v := range c.objects {
		if v == o {
			c.objects = append(c.objects[:i], c.objects[i+1:]...)
			return
		}
	}
}

// report logs err at critical level and panics if the context is configured to.
func (c *glowContext) report(err error) error {
	c.Logger().Error().Err(err).Msg("glow error")
	if c.panics {
		panic(err)
	}
	return err
}

// afterCall checks the native error queue when per-call error checking is enabled.
func (c *glowContext) afterCall(where string) error {
	if !c.checkErrors {
		return nil
	}
	return c.CheckError(where)
}
