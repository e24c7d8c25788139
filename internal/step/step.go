// Package step defines the step-record model shared by every sort engine.
//
// A sort run is decomposed into an ordered sequence of immutable Steps.
// Each Step carries a full snapshot of the array at record time, a
// human-readable description, and engine-specific highlight metadata that
// tells a renderer which positions deserve visual emphasis.
//
// INVARIANTS:
//   - Steps are append-only within one run and never mutated after creation.
//   - A Step's snapshot never aliases the working array: the Recorder takes
//     a defensive copy, so later mutation cannot corrupt earlier snapshots.
//   - A Sequence is a deterministic function of the input array and the
//     algorithm: no randomness, no wall-clock state.
package step

// Role tags one array position with the semantic emphasis it deserves in
// the current step. Rendering collaborators map roles to colors; the core
// has no opinion on visual representation.
type Role uint8

const (
	// RoleDefault marks a position with no special emphasis.
	RoleDefault Role = iota
	// RoleComparing marks a position under comparison.
	RoleComparing
	// RolePivot marks the current quicksort pivot.
	RolePivot
	// RoleSorted marks a position in its final sorted place.
	RoleSorted
	// RoleCurrent marks the selection-sort round position.
	RoleCurrent
	// RoleLeft marks a position inside a left subarray or partition.
	RoleLeft
	// RoleRight marks a position inside a right subarray or partition.
	RoleRight
	// RoleMinimum marks the tentative minimum of a selection-sort scan.
	RoleMinimum
	// RoleMerged marks a position inside the range currently being merged.
	RoleMerged
)

// String returns the role name used in canonical traces.
func (r Role) String() string {
	switch r {
	case RoleComparing:
		return "comparing"
	case RolePivot:
		return "pivot"
	case RoleSorted:
		return "sorted"
	case RoleCurrent:
		return "current"
	case RoleLeft:
		return "left"
	case RoleRight:
		return "right"
	case RoleMinimum:
		return "minimum"
	case RoleMerged:
		return "merged"
	default:
		return "default"
	}
}

// Range is an inclusive index range [Lo, Hi] into the array.
type Range struct {
	Lo int
	Hi int
}

// Len returns the number of positions covered by the range.
func (r Range) Len() int {
	if r.Hi < r.Lo {
		return 0
	}
	return r.Hi - r.Lo + 1
}

// Step is one immutable snapshot of algorithm state.
//
// Snapshot is owned by the Step: callers must not mutate it. Highlight may
// be nil for purely descriptive steps.
type Step struct {
	Snapshot    []int
	Description string
	Highlight   Highlight
}

// Roles resolves the step's highlight into one Role per array position.
// A nil highlight yields all RoleDefault.
func (s Step) Roles() []Role {
	roles := make([]Role, len(s.Snapshot))
	if s.Highlight != nil {
		s.Highlight.paint(roles)
	}
	return roles
}

// Sequence is the complete ordered list of Steps produced by one sort run.
// Length and content are fixed once generation completes.
type Sequence []Step

// Final returns the last step of the sequence, or false when empty.
func (seq Sequence) Final() (Step, bool) {
	if len(seq) == 0 {
		return Step{}, false
	}
	return seq[len(seq)-1], true
}
