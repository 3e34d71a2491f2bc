package glowwindow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimerManagerFiresRepeatingAndSingleShot(t *testing.T) {
	r := require.New(t)
	clock := newFakeClock()
	m := newTimerManager(clock.now)

	m.add(1, 10*time.Millisecond, false)
	m.add(2, 5*time.Millisecond, true)

	clock.advance(4 * time.Millisecond)
	r.Empty(m.due())
	d, ok := m.untilNext()
	r.True(ok)
	r.Equal(time.Millisecond, d)

	clock.advance(time.Millisecond)
	r.Equal([]int{2}, m.due())
	r.False(m.has(2))

	clock.advance(5 * time.Millisecond)
	r.Equal([]int{1}, m.due())
	r.True(m.has(1))
}

func TestTimerManagerSkipsMissedIntervals(t *testing.T) {
	r := require.New(t)
	clock := newFakeClock()
	m := newTimerManager(clock.now)
	m.add(1, 10*time.Millisecond, false)

	clock.advance(45 * time.Millisecond)
	r.Equal([]int{1}, m.due())
	r.Empty(m.due())

	d, ok := m.untilNext()
	r.True(ok)
	r.Equal(10*time.Millisecond, d)
}

func TestTimerManagerOrdersByDeadlineThenID(t *testing.T) {
	clock := newFakeClock()
	m := newTimerManager(clock.now)
	m.add(3, 2*time.Millisecond, false)
	m.add(1, 2*time.Millisecond, false)
	m.add(2, time.Millisecond, false)

	clock.advance(5 * time.Millisecond)
	assert.Equal(t, []int{2, 1, 3}, m.due())
}

func TestTimerManagerAddAndRemove(t *testing.T) {
	r := require.New(t)
	clock := newFakeClock()
	m := newTimerManager(clock.now)

	_, ok := m.untilNext()
	r.False(ok)

	m.add(1, 0, false)
	d, ok := m.untilNext()
	r.True(ok)
	r.Equal(time.Millisecond, d)

	// re-adding restarts the timer
	clock.advance(time.Millisecond / 2)
	m.add(1, 4*time.Millisecond, true)
	r.Equal(1, m.count())
	d, _ = m.untilNext()
	r.Equal(4*time.Millisecond, d)

	m.remove(1)
	m.remove(42)
	r.Zero(m.count())
	clock.advance(time.Second)
	r.Empty(m.due())
}
