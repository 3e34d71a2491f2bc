package glowwindow

import (
	"bytes"
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/glow/logging"
)

func newTestProfiler(clock *fakeClock) *Profiler {
	p := NewProfiler()
	p.now = clock.now
	p.lastTime = clock.now()
	return p
}

func TestProfilerReportsOncePerInterval(t *testing.T) {
	r := require.New(t)
	clock := newFakeClock()
	p := newTestProfiler(clock)

	for range 9 {
		clock.advance(100 * time.Millisecond)
		_, ok := p.tick()
		r.False(ok)
	}
	clock.advance(100 * time.Millisecond)
	stats, ok := p.tick()
	r.True(ok)
	r.InDelta(10, stats.FPS, 1e-9)
	r.Positive(stats.SysMB)

	clock.advance(100 * time.Millisecond)
	_, ok = p.tick()
	r.False(ok)
}

func TestProfilerTickLogsStats(t *testing.T) {
	var buf bytes.Buffer
	logging.SetOutput(&buf)
	t.Cleanup(func() { logging.SetOutput(zerolog.ConsoleWriter{Out: os.Stderr}) })

	clock := newFakeClock()
	p := newTestProfiler(clock)
	p.updateInterval = time.Millisecond

	clock.advance(2 * time.Millisecond)
	assert.True(t, p.Tick())
	assert.Contains(t, buf.String(), `"component":"profiler"`)
	assert.Contains(t, buf.String(), `"fps":`)
}
