package glowwindow

import (
	"sort"
	"sync"
	"time"
)

// timer is one entry of a timerManager.
type timer struct {
	id         int
	interval   time.Duration
	singleShot bool
	next       time.Time
}

// timerManager schedules the timers of one window. It holds no platform state, the main
// loop asks it which timers are due and how long it may sleep.
type timerManager struct {
	mu     sync.Mutex
	timers map[int]*timer
	now    func() time.Time
}

func newTimerManager(now func() time.Time) *timerManager {
	if now == nil {
		now = time.Now
	}
	return &timerManager{timers: make(map[int]*timer), now: now}
}

// add starts or restarts the timer id. Intervals below one millisecond are raised to one.
func (m *timerManager) add(id int, interval time.Duration, singleShot bool) {
	if interval < time.Millisecond {
		interval = time.Millisecond
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.timers[id] = &timer{id: id, interval: interval, singleShot: singleShot, next: m.now().Add(interval)}
}

func (m *timerManager) remove(id int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.timers, id)
}

func (m *timerManager) has(id int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.timers[id]
	return ok
}

func (m *timerManager) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.timers)
}

// due returns the ids of timers whose deadline passed, earliest deadline first, and
// reschedules them. A timer fires at most once per call even if several intervals
// elapsed; it then resumes one interval after now.
func (m *timerManager) due() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	var fired []*timer
	for _, t := range m.timers {
		if !t.next.After(now) {
			fired = append(fired, t)
		}
	}
	sort.Slice(fired, func(i, j int) bool {
		if fired[i].next.Equal(fired[j].next) {
			return fired[i].id < fired[j].id
		}
		return fired[i].next.Before(fired[j].next)
	})

	ids := make([]int, len(fired))
	for i, t := range fired {
		ids[i] = t.id
		if t.singleShot {
			delete(m.timers, t.id)
			continue
		}
		t.next = t.next.Add(t.interval)
		if !t.next.After(now) {
			t.next = now.Add(t.interval)
		}
	}
	return ids
}

// untilNext returns the time until the earliest deadline, or false if no timer runs.
func (m *timerManager) untilNext() (time.Duration, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.timers) == 0 {
		return 0, false
	}
	now := m.now()
	var earliest time.Time
	for _, t := range m.timers {
		if earliest.IsZero() || t.next.Before(earliest) {
			earliest = t.next
		}
	}
	return max(earliest.Sub(now), 0), true
}
