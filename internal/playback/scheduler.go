package playback

import "time"

// CancelFunc cancels a scheduled callback. It reports whether the
// cancellation landed before the callback fired; a false return means the
// callback already ran or is running.
type CancelFunc func() bool

// Scheduler schedules a single callback to run after a delay.
//
// The controller drives all auto-advance ticks through this interface so
// that pause and reset can deterministically invalidate a pending tick
// instead of racing a state check. Production uses TimerScheduler; tests
// and the conformance harness use ManualScheduler.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) CancelFunc
}

// TimerScheduler schedules callbacks on the runtime timer heap.
// Callbacks run on their own goroutine; the controller re-checks its
// state and tick generation under lock, so a stale fire is a no-op.
type TimerScheduler struct{}

// Schedule runs fn after d.
func (TimerScheduler) Schedule(d time.Duration, fn func()) CancelFunc {
	t := time.AfterFunc(d, fn)
	return t.Stop
}
