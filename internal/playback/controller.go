// Package playback owns the step sequence produced by one sort engine and
// drives forward, backward and continuous traversal of it.
//
// The controller is the single owner of the working array, the step
// sequence and the cursor for the lifetime of one algorithm instance.
// Every operation degrades invalid requests to a no-op: navigation on an
// empty sequence generates it lazily, out-of-bounds cursor movement is
// clamped silently, and a redundant Start while playing does nothing. No
// operation returns an error.
package playback

import (
	"math/rand"
	"sync"
	"time"

	"github.com/roach88/sortscope/internal/algo"
	"github.com/roach88/sortscope/internal/step"
)

// Input boundary constants. The controller itself performs no validation -
// input collection surfaces (CLI flags, TUI prompts, scenario schema)
// enforce these before the core ever sees an array.
const (
	ValueMin      = 1
	ValueMax      = 100
	RandomSizeMin = 5
	RandomSizeMax = 30
	ManualSizeMin = 3
	ManualSizeMax = 30
)

// State is the playback lifecycle state.
type State int

const (
	// StateIdle means no sequence is being played; a sequence may or may
	// not exist yet.
	StateIdle State = iota
	// StatePlaying means auto-advance is active.
	StatePlaying
	// StatePaused means the cursor is frozen but resumable.
	StatePaused
	// StateFinished means the cursor reached the last step and
	// auto-advance stopped. For restart purposes Finished behaves like
	// Idle: Start rewinds to step 0 and plays again.
	StateFinished
)

// String returns the state name used in traces and scenario assertions.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateFinished:
		return "finished"
	default:
		return "idle"
	}
}

// RenderFunc receives the step at the cursor on every auto-advance tick.
// It is invoked outside the controller lock, so it may call back into the
// controller.
type RenderFunc func(st step.Step, cursor, total int)

// Controller drives playback of one engine's step sequence.
//
// Thread-safety: all exported methods are safe for concurrent use. In
// practice everything runs on one event loop; the lock exists because
// TimerScheduler fires ticks on their own goroutine.
type Controller struct {
	mu     sync.Mutex
	engine algo.Engine

	original []int
	working  []int
	seq      step.Sequence
	cursor   int
	state    State

	speed       Speed
	fastForward bool

	sched   Scheduler
	pending CancelFunc
	tickGen uint64

	render RenderFunc
	rng    *rand.Rand
}

// Option configures a Controller.
type Option func(*Controller)

// WithScheduler replaces the tick scheduler. Tests and the conformance
// harness install a ManualScheduler here.
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) { c.sched = s }
}

// WithSpeed sets the initial speed preset.
func WithSpeed(s Speed) Option {
	return func(c *Controller) { c.speed = s }
}

// WithRenderFunc sets the render callback invoked on auto-advance ticks.
func WithRenderFunc(fn RenderFunc) Option {
	return func(c *Controller) { c.render = fn }
}

// WithSeed makes Randomize reproducible. Randomness never reaches the
// engines themselves; it only picks the input array.
func WithSeed(seed int64) Option {
	return func(c *Controller) { c.rng = rand.New(rand.NewSource(seed)) }
}

// NewController creates a controller for one engine instance.
func NewController(engine algo.Engine, opts ...Option) *Controller {
	c := &Controller{
		engine: engine,
		state:  StateIdle,
		speed:  SpeedMedium,
		sched:  TimerScheduler{},
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetArray installs a user-supplied array as both the original and the
// working copy, discarding any existing sequence.
func (c *Controller) SetArray(values []int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelPendingLocked()
	c.original = append([]int(nil), values...)
	c.working = append([]int(nil), values...)
	c.seq = nil
	c.cursor = 0
	c.state = StateIdle
	c.fastForward = false
}

// Randomize installs a fresh random array of the given size with values
// in [ValueMin, ValueMax] and returns a copy of it.
func (c *Controller) Randomize(size int) []int {
	c.mu.Lock()
	values := make([]int, size)
	for i := range values {
		values[i] = ValueMin + c.rng.Intn(ValueMax-ValueMin+1)
	}
	c.mu.Unlock()
	c.SetArray(values)
	return values
}

// Start begins continuous playback at the configured speed. Starting
// while already playing is a no-op; starting from Finished rewinds to
// step 0. The sequence is generated on first use.
func (c *Controller) Start() {
	c.start(false)
}

// FastStart begins continuous playback with the tick interval forced to
// FastForwardInterval. The configured speed is restored once the sequence
// is exhausted or the user pauses.
func (c *Controller) FastStart() {
	c.start(true)
}

func (c *Controller) start(fast bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StatePlaying {
		return
	}
	c.ensureSequenceLocked()
	if c.state == StateFinished {
		c.cursor = 0
	}
	c.state = StatePlaying
	c.fastForward = fast
	c.scheduleTickLocked()
}

// Pause freezes the cursor. A pending tick is cancelled; a tick already
// in flight sees the state change and becomes a no-op.
func (c *Controller) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StatePlaying {
		return
	}
	c.cancelPendingLocked()
	c.state = StatePaused
	c.fastForward = false
}

// Reset returns to Idle from any state: the sequence is discarded, the
// cursor rewinds to 0 and the working array is restored from the
// original capture.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelPendingLocked()
	c.seq = nil
	c.cursor = 0
	c.working = append([]int(nil), c.original...)
	c.state = StateIdle
	c.fastForward = false
}

// StepForward moves the cursor one step ahead, clamped at the last step.
// The sequence is generated first if it does not exist yet - the engine
// always runs eagerly to completion before any display occurs.
func (c *Controller) StepForward() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureSequenceLocked()
	if c.cursor < len(c.seq)-1 {
		c.cursor++
	}
}

// StepBackward moves the cursor one step back, clamped at step 0.
func (c *Controller) StepBackward() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureSequenceLocked()
	if c.cursor > 0 {
		c.cursor--
	}
}

// SetSpeed changes the speed preset. While playing, the new interval
// takes effect when the next tick is scheduled.
func (c *Controller) SetSpeed(s Speed) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.speed = s
}

// SetRenderFunc installs the render callback after construction. The TUI
// uses this because its message pump does not exist yet when the
// controller is built.
func (c *Controller) SetRenderFunc(fn RenderFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.render = fn
}

// Current returns the step at the cursor. ok is false when no sequence
// has been generated yet.
func (c *Controller) Current() (st step.Step, cursor int, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.seq) == 0 {
		return step.Step{}, 0, false
	}
	return c.seq[c.cursor], c.cursor, true
}

// Sequence generates the step sequence if needed and returns it.
func (c *Controller) Sequence() step.Sequence {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureSequenceLocked()
	return c.seq
}

// State returns the playback state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Cursor returns the cursor position.
func (c *Controller) Cursor() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cursor
}

// Len returns the sequence length, 0 when not yet generated.
func (c *Controller) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.seq)
}

// Speed returns the configured speed preset.
func (c *Controller) Speed() Speed {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.speed
}

// Array returns a copy of the working array.
func (c *Controller) Array() []int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]int(nil), c.working...)
}

// Original returns a copy of the captured original array.
func (c *Controller) Original() []int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]int(nil), c.original...)
}

// Engine returns the engine this controller drives.
func (c *Controller) Engine() algo.Engine {
	return c.engine
}

// ensureSequenceLocked generates the sequence from the original array if
// it does not exist. Generation is synchronous and runs to completion;
// afterwards the working array holds the final (sorted) snapshot.
func (c *Controller) ensureSequenceLocked() {
	if c.seq != nil {
		return
	}
	c.seq = c.engine.Generate(c.original)
	if final, ok := c.seq.Final(); ok {
		c.working = append([]int(nil), final.Snapshot...)
	}
}

// cancelPendingLocked invalidates any scheduled tick. Bumping the
// generation makes a tick that already fired but has not yet taken the
// lock a no-op.
func (c *Controller) cancelPendingLocked() {
	c.tickGen++
	if c.pending != nil {
		c.pending()
		c.pending = nil
	}
}

// scheduleTickLocked arms the next auto-advance tick at the effective
// interval.
func (c *Controller) scheduleTickLocked() {
	gen := c.tickGen
	c.pending = c.sched.Schedule(c.intervalLocked(), func() { c.tick(gen) })
}

func (c *Controller) intervalLocked() time.Duration {
	if c.fastForward {
		return FastForwardInterval
	}
	return c.speed.Interval()
}

// tick renders the step at the cursor and advances. Reaching the last
// index transitions to Finished; otherwise the next tick is scheduled.
func (c *Controller) tick(gen uint64) {
	c.mu.Lock()
	if c.state != StatePlaying || gen != c.tickGen {
		c.mu.Unlock()
		return
	}
	if len(c.seq) == 0 {
		c.state = StateFinished
		c.fastForward = false
		c.pending = nil
		c.mu.Unlock()
		return
	}

	st := c.seq[c.cursor]
	cursor := c.cursor
	total := len(c.seq)
	render := c.render

	if c.cursor >= len(c.seq)-1 {
		c.state = StateFinished
		c.fastForward = false
		c.pending = nil
	} else {
		c.cursor++
		c.scheduleTickLocked()
	}
	c.mu.Unlock()

	if render != nil {
		render(st, cursor, total)
	}
}
