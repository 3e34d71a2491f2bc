package glowwindow

import (
	"github.com/Carmen-Shannon/glow/gl"
)

// SwapInterval is the number of vertical blanks SwapBuffers waits for.
type SwapInterval int

const (
	// AdaptiveVerticalSyncronization waits for the blank unless the frame is late.
	AdaptiveVerticalSyncronization SwapInterval = -1
	// NoVerticalSyncronization swaps immediately.
	NoVerticalSyncronization SwapInterval = 0
	// VerticalSyncronization waits for the next vertical blank.
	VerticalSyncronization SwapInterval = 1
)

func (s SwapInterval) String() string {
	switch s {
	case AdaptiveVerticalSyncronization:
		return "adaptive"
	case NoVerticalSyncronization:
		return "none"
	case VerticalSyncronization:
		return "vsync"
	}
	return "unknown"
}

// Context is the OpenGL context of a window.
type Context interface {
	// MakeCurrent makes the context current on the calling thread.
	MakeCurrent()

	// DoneCurrent detaches the context from the calling thread.
	DoneCurrent()

	// SwapBuffers presents the back buffer.
	SwapBuffers()

	// SetSwapInterval sets the swap interval of the context. The context is made current.
	//
	// Parameters:
	//   - interval: the swap interval
	//
	// Returns:
	//   - error: error if adaptive synchronization is not supported
	SetSwapInterval(interval SwapInterval) error

	// SwapInterval returns the last swap interval set.
	//
	// Returns:
	//   - SwapInterval: the interval
	SwapInterval() SwapInterval

	// Format returns the format the context was created with, as adjusted by Validate.
	//
	// Returns:
	//   - ContextFormat: the format
	Format() ContextFormat

	// API returns the native function table of the context, loading it on first use.
	// The context must be current.
	//
	// Returns:
	//   - gl.API: the function table
	//   - error: error if the driver entry points cannot be resolved
	API() (gl.API, error)
}
