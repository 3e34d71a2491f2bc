package glowwindow

import (
	"sync"
	"time"

	"github.com/Carmen-Shannon/glow/logging"
)

// MainLoop drives every created window: it pumps platform events, fires timers, calls
// Idle and paints windows that requested it. It must run on the thread that created
// the windows.
type MainLoop interface {
	// Run blocks until every window is closed or Quit is called. Windows that are still
	// open when the loop ends are destroyed.
	//
	// Returns:
	//   - int: the code passed to Quit, 0 if the last window was closed
	Run() int

	// Quit stops Run with the given exit code. Safe to call multiple times and from any
	// goroutine; the first code wins. Called while Run is not executing, the next Run
	// returns the code right away.
	//
	// Parameters:
	//   - code: the code Run returns
	Quit(code int)

	// IsRunning reports whether Run is executing.
	//
	// Returns:
	//   - bool: true while the loop runs
	IsRunning() bool

	// EnableProfiler logs frame rate and memory statistics once per profiler interval.
	EnableProfiler()

	// DisableProfiler stops profiler output.
	DisableProfiler()
}

// loopWindow is the part of a window the main loop drives.
type loopWindow interface {
	IsOpen() bool
	Destroy()
	processTimers()
	untilNextTimer() (time.Duration, bool)
	repaintRequested() bool
	idle()
	paint()
}

// eventPump abstracts the platform event queue.
type eventPump interface {
	// poll processes pending events and returns immediately.
	poll()
	// wait blocks until an event arrives or the timeout passes; a negative timeout waits forever.
	wait(timeout time.Duration)
	// wake makes a blocked wait return.
	wake()
}

// mainLoop implements MainLoop.
type mainLoop struct {
	mu      sync.Mutex
	running bool

	quitChannel chan struct{}
	quitOnce    sync.Once
	exitCode    int

	pump    eventPump
	windows func() []loopWindow

	waitForEvents bool

	profiler         *Profiler
	profilingEnabled bool
}

var _ MainLoop = &mainLoop{}

var (
	loopMu     sync.Mutex
	activeLoop *mainLoop
)

// NewMainLoop creates a main loop over all windows created with Create.
//
// Parameters:
//   - options: functional options for loop configuration
//
// Returns:
//   - MainLoop: the loop
func NewMainLoop(options ...MainLoopBuilderOption) MainLoop {
	l := &mainLoop{
		quitChannel: make(chan struct{}),
		pump:        glfwPump{},
		windows:     registeredWindows,
		profiler:    NewProfiler(),
	}
	for _, opt := range options {
		opt(l)
	}
	return l
}

func (l *mainLoop) Run() int {
	if !l.start() {
		log := logging.Component("glowwindow")
		log.Warn().Msg("main loop is already running")
		return -1
	}
	defer l.stop()

	for !l.quitRequested() {
		open := l.collect()
		if len(open) == 0 {
			break
		}

		if l.waitForEvents && !anyRepaint(open) {
			l.pump.wait(nextTimeout(open))
		} else {
			l.pump.poll()
		}

		for _, w := range open {
			if !w.IsOpen() {
				continue
			}
			w.processTimers()
			w.idle()
			w.paint()
		}

		if l.profilingEnabled {
			l.profiler.Tick()
		}
	}

	for _, w := range l.windows() {
		w.Destroy()
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	code := l.exitCode
	l.resetQuit()
	return code
}

// collect destroys closed windows and returns the open ones.
func (l *mainLoop) collect() []loopWindow {
	var open []loopWindow
	for _, w := range l.windows() {
		if w.IsOpen() {
			open = append(open, w)
		} else {
			w.Destroy()
		}
	}
	return open
}

func anyRepaint(windows []loopWindow) bool {
	for _, w := range windows {
		if w.repaintRequested() {
			return true
		}
	}
	return false
}

// nextTimeout returns the time until the earliest timer of any window, or -1 if no
// window runs a timer.
func nextTimeout(windows []loopWindow) time.Duration {
	timeout := time.Duration(-1)
	for _, w := range windows {
		if d, ok := w.untilNextTimer(); ok && (timeout < 0 || d < timeout) {
			timeout = d
		}
	}
	return timeout
}

func (l *mainLoop) start() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.running {
		return false
	}
	l.running = true

	loopMu.Lock()
	activeLoop = l
	loopMu.Unlock()
	return true
}

// resetQuit rearms Quit for the next Run. Callers hold l.mu.
func (l *mainLoop) resetQuit() {
	l.exitCode = 0
	l.quitChannel = make(chan struct{})
	l.quitOnce = sync.Once{}
}

func (l *mainLoop) stop() {
	l.mu.Lock()
	l.running = false
	l.mu.Unlock()

	loopMu.Lock()
	if activeLoop == l {
		activeLoop = nil
	}
	loopMu.Unlock()
}

func (l *mainLoop) quitRequested() bool {
	l.mu.Lock()
	ch := l.quitChannel
	l.mu.Unlock()
	select {
	case <-ch:
		return true
	default:
		return false
	}
}

// Quit signals Run to return. Uses sync.Once so the channel is closed once per run; a
// Quit before Run stays pending until the next Run consumes it.
func (l *mainLoop) Quit(code int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.quitOnce.Do(func() {
		l.exitCode = code
		close(l.quitChannel)
	})
	l.pump.wake()
}

func (l *mainLoop) IsRunning() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.running
}

func (l *mainLoop) EnableProfiler() {
	l.profilingEnabled = true
}

func (l *mainLoop) DisableProfiler() {
	l.profilingEnabled = false
}

// quitMainLoop stops the running main loop and reports whether one was running.
func quitMainLoop(code int) bool {
	loopMu.Lock()
	l := activeLoop
	loopMu.Unlock()
	if l == nil {
		return false
	}
	l.Quit(code)
	return true
}

// wakeMainLoop interrupts a main loop blocked waiting for events.
func wakeMainLoop() {
	loopMu.Lock()
	l := activeLoop
	loopMu.Unlock()
	if l != nil {
		l.pump.wake()
	}
}
