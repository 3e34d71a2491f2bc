package glowwindow

import "time"

// MainLoopBuilderOption is a functional option for configuring a MainLoop.
type MainLoopBuilderOption func(l *mainLoop)

// WithWaitEvents makes the loop sleep until an event, a timer or a repaint request
// instead of polling continuously. Idle is then only called when the loop wakes up.
//
// Parameters:
//   - enabled: if true, the loop blocks while nothing happens
//
// Returns:
//   - MainLoopBuilderOption: option function to apply
func WithWaitEvents(enabled bool) MainLoopBuilderOption {
	return func(l *mainLoop) {
		l.waitForEvents = enabled
	}
}

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - MainLoopBuilderOption: option function to apply
func WithProfiling(enabled bool) MainLoopBuilderOption {
	return func(l *mainLoop) {
		l.profilingEnabled = enabled
	}
}

// WithProfilerInterval sets how often the profiler logs. Values <= 0 keep the default of
// one second.
//
// Parameters:
//   - interval: time between two profiler reports
//
// Returns:
//   - MainLoopBuilderOption: option function to apply
func WithProfilerInterval(interval time.Duration) MainLoopBuilderOption {
	return func(l *mainLoop) {
		if interval > 0 {
			l.profiler.updateInterval = interval
		}
	}
}
