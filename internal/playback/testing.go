package playback

import (
	"sync"
	"time"
)

// ManualScheduler is a deterministic Scheduler for tests and the
// conformance harness. Scheduled callbacks queue up in FIFO order and
// only run when the test fires them, so playback advances exactly as far
// as the test dictates - no wall-clock waits, no flakes.
type ManualScheduler struct {
	mu      sync.Mutex
	pending []*manualTask
	last    time.Duration
}

type manualTask struct {
	fn       func()
	delay    time.Duration
	canceled bool
	fired    bool
}

// NewManualScheduler creates an empty manual scheduler.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// Schedule queues fn. The delay is recorded for inspection but never
// waited on.
func (m *ManualScheduler) Schedule(d time.Duration, fn func()) CancelFunc {
	m.mu.Lock()
	defer m.mu.Unlock()
	task := &manualTask{fn: fn, delay: d}
	m.pending = append(m.pending, task)
	m.last = d
	return func() bool {
		m.mu.Lock()
		defer m.mu.Unlock()
		if task.fired || task.canceled {
			return false
		}
		task.canceled = true
		return true
	}
}

// Fire runs the oldest pending callback, skipping cancelled ones.
// Reports whether a callback ran. The callback executes outside the
// scheduler lock so it may schedule follow-up ticks.
func (m *ManualScheduler) Fire() bool {
	for {
		m.mu.Lock()
		if len(m.pending) == 0 {
			m.mu.Unlock()
			return false
		}
		task := m.pending[0]
		m.pending = m.pending[1:]
		if task.canceled {
			m.mu.Unlock()
			continue
		}
		task.fired = true
		m.mu.Unlock()
		task.fn()
		return true
	}
}

// Drain fires callbacks until none remain, returning how many ran. A
// playing controller reschedules on every tick, so Drain runs playback
// to completion.
func (m *ManualScheduler) Drain() int {
	count := 0
	for m.Fire() {
		count++
	}
	return count
}

// Pending returns the number of queued, uncancelled callbacks.
func (m *ManualScheduler) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, task := range m.pending {
		if !task.canceled {
			n++
		}
	}
	return n
}

// LastDelay returns the delay of the most recently scheduled callback,
// cancelled or not. Zero when nothing was ever scheduled. Tests use this
// to observe the effective tick interval.
func (m *ManualScheduler) LastDelay() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}
