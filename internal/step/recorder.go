package step

// Recorder accumulates Steps while a sort engine mutates its working copy
// of the array. One Recorder serves exactly one sort run.
//
// Record takes a defensive copy of the array. This is a correctness
// invariant, not an optimization: the working array keeps mutating after
// the call, and an aliased snapshot would retroactively corrupt every
// previously recorded step.
//
// Thread-safety: none needed. Step generation is synchronous and runs to
// completion on one goroutine before any step is shown.
type Recorder struct {
	steps Sequence
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{steps: make(Sequence, 0, 64)}
}

// Record appends a new Step holding a copy of arr's current state.
// highlight may be nil. Record always succeeds.
func (r *Recorder) Record(arr []int, highlight Highlight, description string) {
	snapshot := make([]int, len(arr))
	copy(snapshot, arr)
	r.steps = append(r.steps, Step{
		Snapshot:    snapshot,
		Description: description,
		Highlight:   highlight,
	})
}

// Sequence returns the recorded steps. The recorder retains no obligation
// to the caller after handoff; engines call this exactly once, when
// generation has run to completion.
func (r *Recorder) Sequence() Sequence {
	return r.steps
}

// Len returns the number of steps recorded so far.
func (r *Recorder) Len() int {
	return len(r.steps)
}
