package glowwindow

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"

	"github.com/Carmen-Shannon/glow/gl"
	"github.com/Carmen-Shannon/glow/gl/native"
)

// glfwContext implements Context for a GLFW window.
type glfwContext struct {
	window   *glfw.Window
	format   ContextFormat
	interval SwapInterval
	api      gl.API
}

var _ Context = &glfwContext{}

// applyContextHints translates f into GLFW window hints.
//
// GLFW reference: https://www.glfw.org/docs/latest/window_guide.html#window_hints_ctx
func applyContextHints(f ContextFormat) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, f.Version.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, f.Version.Minor)

	switch f.Profile {
	case CoreProfile:
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	case CompatibilityProfile:
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCompatProfile)
	default:
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLAnyProfile)
	}
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfwBool(f.ForwardCompatible))
	glfw.WindowHint(glfw.OpenGLDebugContext, glfwBool(f.Debug))

	glfw.WindowHint(glfw.RedBits, f.RedBits)
	glfw.WindowHint(glfw.GreenBits, f.GreenBits)
	glfw.WindowHint(glfw.BlueBits, f.BlueBits)
	glfw.WindowHint(glfw.AlphaBits, f.AlphaBits)
	glfw.WindowHint(glfw.DepthBits, f.DepthBits)
	glfw.WindowHint(glfw.StencilBits, f.StencilBits)
	glfw.WindowHint(glfw.Samples, f.Samples)
	glfw.WindowHint(glfw.DoubleBuffer, glfwBool(f.SwapBehavior == DoubleBuffering))
	glfw.WindowHint(glfw.Visible, glfw.False)
}

func glfwBool(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

func (c *glfwContext) MakeCurrent() {
	c.window.MakeContextCurrent()
}

func (c *glfwContext) DoneCurrent() {
	glfw.DetachCurrentContext()
}

func (c *glfwContext) SwapBuffers() {
	c.window.SwapBuffers()
}

func (c *glfwContext) SetSwapInterval(interval SwapInterval) error {
	c.MakeCurrent()
	if interval == AdaptiveVerticalSyncronization &&
		!glfw.ExtensionSupported("WGL_EXT_swap_control_tear") &&
		!glfw.ExtensionSupported("GLX_EXT_swap_control_tear") {
		return errors.New("adaptive vertical synchronization is not supported")
	}
	glfw.SwapInterval(int(interval))
	c.interval = interval
	return nil
}

func (c *glfwContext) SwapInterval() SwapInterval {
	return c.interval
}

func (c *glfwContext) Format() ContextFormat {
	return c.format
}

func (c *glfwContext) API() (gl.API, error) {
	if c.api != nil {
		return c.api, nil
	}
	api, err := native.NewFunctions()
	if err != nil {
		return nil, err
	}
	c.api = api
	return api, nil
}
