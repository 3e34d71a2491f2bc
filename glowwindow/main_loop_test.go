package glowwindow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePump struct {
	polls int
	waits []time.Duration
	wakes int
}

func (p *fakePump) poll() {
	p.polls++
}

func (p *fakePump) wait(timeout time.Duration) {
	p.waits = append(p.waits, timeout)
}

func (p *fakePump) wake() {
	p.wakes++
}

type fakeWindow struct {
	open       bool
	closeAfter int
	onIdle     func(idles int)

	idles     int
	timers    int
	paints    int
	destroyed int

	repaint  bool
	timeout  time.Duration
	hasTimer bool
}

func (w *fakeWindow) IsOpen() bool {
	return w.open
}

func (w *fakeWindow) Destroy() {
	w.destroyed++
	w.open = false
}

func (w *fakeWindow) processTimers() {
	w.timers++
}

func (w *fakeWindow) untilNextTimer() (time.Duration, bool) {
	return w.timeout, w.hasTimer
}

func (w *fakeWindow) repaintRequested() bool {
	return w.repaint
}

func (w *fakeWindow) idle() {
	w.idles++
	if w.onIdle != nil {
		w.onIdle(w.idles)
	}
	if w.closeAfter > 0 && w.idles >= w.closeAfter {
		w.open = false
	}
}

func (w *fakeWindow) paint() {
	if w.repaint {
		w.paints++
		w.repaint = false
	}
}

// newTestLoop returns a loop over windows; destroyed windows leave the list the way
// Destroy unregisters real windows.
func newTestLoop(pump *fakePump, windows []*fakeWindow, options ...MainLoopBuilderOption) *mainLoop {
	l := NewMainLoop(options...).(*mainLoop)
	l.pump = pump
	l.windows = func() []loopWindow {
		var live []loopWindow
		for _, w := range windows {
			if w.destroyed == 0 {
				live = append(live, w)
			}
		}
		return live
	}
	return l
}

func TestMainLoopRunsUntilEveryWindowCloses(t *testing.T) {
	r := require.New(t)
	pump := &fakePump{}
	a := &fakeWindow{open: true, closeAfter: 3, repaint: true}
	b := &fakeWindow{open: true, closeAfter: 5}
	l := newTestLoop(pump, []*fakeWindow{a, b})

	r.Equal(0, l.Run())
	r.False(l.IsRunning())

	r.Equal(3, a.idles)
	r.Equal(5, b.idles)
	r.Equal(3, a.timers)
	r.Equal(1, a.paints)
	r.Equal(1, a.destroyed)
	r.Equal(1, b.destroyed)
	r.Equal(5, pump.polls)
	r.Empty(pump.waits)
}

func TestMainLoopWithoutWindowsReturnsImmediately(t *testing.T) {
	pump := &fakePump{}
	l := newTestLoop(pump, nil)
	assert.Equal(t, 0, l.Run())
	assert.Zero(t, pump.polls)
}

func TestMainLoopQuitKeepsFirstCodeAndDestroysWindows(t *testing.T) {
	r := require.New(t)
	pump := &fakePump{}
	w := &fakeWindow{open: true}
	l := newTestLoop(pump, []*fakeWindow{w})

	w.onIdle = func(idles int) {
		r.True(l.IsRunning())
		if idles == 2 {
			r.True(quitMainLoop(3))
			l.Quit(5)
		}
	}

	r.Equal(3, l.Run())
	r.Equal(2, w.idles)
	r.Equal(1, w.destroyed)
	r.Equal(2, pump.wakes)

	r.False(quitMainLoop(1))
}

func TestMainLoopRejectsNestedRun(t *testing.T) {
	pump := &fakePump{}
	w := &fakeWindow{open: true, closeAfter: 1}
	l := newTestLoop(pump, []*fakeWindow{w})

	nested := 0
	w.onIdle = func(int) {
		nested = l.Run()
	}

	assert.Equal(t, 0, l.Run())
	assert.Equal(t, -1, nested)
}

func TestMainLoopCanRunAgainAfterQuit(t *testing.T) {
	r := require.New(t)
	pump := &fakePump{}
	w := &fakeWindow{open: true}
	l := newTestLoop(pump, []*fakeWindow{w})
	w.onIdle = func(int) { l.Quit(7) }
	r.Equal(7, l.Run())

	again := &fakeWindow{open: true, closeAfter: 2}
	l.windows = newTestLoop(pump, []*fakeWindow{again}).windows
	r.Equal(0, l.Run())
	r.Equal(2, again.idles)
}

func TestMainLoopQuitBeforeRunIsKept(t *testing.T) {
	r := require.New(t)
	pump := &fakePump{}
	w := &fakeWindow{open: true, closeAfter: 3}
	l := newTestLoop(pump, []*fakeWindow{w})

	l.Quit(4)
	l.Quit(9)
	r.False(l.IsRunning())
	r.Equal(4, l.Run())
	r.Zero(w.idles)
	r.Equal(1, w.destroyed)

	// the pending code was consumed by that run
	again := &fakeWindow{open: true, closeAfter: 2}
	l.windows = newTestLoop(pump, []*fakeWindow{again}).windows
	r.Equal(0, l.Run())
	r.Equal(2, again.idles)
}

func TestMainLoopWaitsForTimersInWaitMode(t *testing.T) {
	r := require.New(t)
	pump := &fakePump{}
	timed := &fakeWindow{open: true, closeAfter: 2, hasTimer: true, timeout: 20 * time.Millisecond}
	other := &fakeWindow{open: true, closeAfter: 2, hasTimer: true, timeout: 50 * time.Millisecond}
	l := newTestLoop(pump, []*fakeWindow{timed, other}, WithWaitEvents(true))

	r.Equal(0, l.Run())
	r.Equal([]time.Duration{20 * time.Millisecond, 20 * time.Millisecond}, pump.waits)
	r.Zero(pump.polls)
}

func TestMainLoopPollsWhenRepaintIsPending(t *testing.T) {
	r := require.New(t)
	pump := &fakePump{}
	w := &fakeWindow{open: true, closeAfter: 2, repaint: true}
	l := newTestLoop(pump, []*fakeWindow{w}, WithWaitEvents(true))

	r.Equal(0, l.Run())
	r.Equal(1, pump.polls)
	// no timer and nothing to paint waits without a timeout
	r.Equal([]time.Duration{-1}, pump.waits)
}

func TestMainLoopProfilerOptions(t *testing.T) {
	l := NewMainLoop(WithProfiling(true), WithProfilerInterval(250*time.Millisecond)).(*mainLoop)
	assert.True(t, l.profilingEnabled)
	assert.Equal(t, 250*time.Millisecond, l.profiler.updateInterval)

	l.DisableProfiler()
	assert.False(t, l.profilingEnabled)
	l.EnableProfiler()
	assert.True(t, l.profilingEnabled)
}
