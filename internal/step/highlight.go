package step

// Highlight is the engine-specific emphasis metadata attached to a Step.
//
// The variant set is closed: one highlight type per engine family. This
// keeps the metadata shape honest at compile time - a quicksort step can
// never carry merge-range fields and vice versa.
type Highlight interface {
	// paint writes one Role per position into roles, which arrives
	// zeroed to RoleDefault and has the snapshot's length.
	paint(roles []Role)
}

// QuickHighlight is the quicksort metadata variant.
//
// Pivot is -1 when no pivot is tagged. Left and Right are the partition
// result ranges; a nil range means the corresponding side is empty (the
// side is omitted, not zero-length).
type QuickHighlight struct {
	Pivot     int
	Comparing []int
	Left      *Range
	Right     *Range
}

func (h QuickHighlight) paint(roles []Role) {
	n := len(roles)
	if h.Pivot >= 0 && h.Pivot < n {
		roles[h.Pivot] = RolePivot
	}
	for _, idx := range h.Comparing {
		if idx != h.Pivot && idx >= 0 && idx < n {
			roles[idx] = RoleComparing
		}
	}
	// Partition ranges only claim positions that carry no stronger role.
	if h.Left != nil {
		for i := h.Left.Lo; i <= h.Left.Hi && i < n; i++ {
			if i >= 0 && roles[i] == RoleDefault {
				roles[i] = RoleLeft
			}
		}
	}
	if h.Right != nil {
		for i := h.Right.Lo; i <= h.Right.Hi && i < n; i++ {
			if i >= 0 && roles[i] == RoleDefault {
				roles[i] = RoleRight
			}
		}
	}
}

// MergeHighlight is the merge-sort metadata variant.
//
// Left and Right tag the half-ranges being divided or merged; Merged tags
// the full range a merge is writing into. Comparing holds the two source
// positions under comparison during a merge.
type MergeHighlight struct {
	Left      *Range
	Right     *Range
	Merged    *Range
	Comparing []int
}

func (h MergeHighlight) paint(roles []Role) {
	n := len(roles)
	if h.Left != nil {
		for i := h.Left.Lo; i <= h.Left.Hi && i < n; i++ {
			if i >= 0 {
				roles[i] = RoleLeft
			}
		}
	}
	if h.Right != nil {
		for i := h.Right.Lo; i <= h.Right.Hi && i < n; i++ {
			if i >= 0 {
				roles[i] = RoleRight
			}
		}
	}
	if h.Merged != nil {
		for i := h.Merged.Lo; i <= h.Merged.Hi && i < n; i++ {
			if i >= 0 {
				roles[i] = RoleMerged
			}
		}
	}
	for _, idx := range h.Comparing {
		if idx >= 0 && idx < n {
			roles[idx] = RoleComparing
		}
	}
}

// SelectionHighlight is the selection-sort metadata variant.
//
// Current, Minimum and Comparing are -1 when absent. Sorted carries the
// running set of finalized positions; it is present on every step after
// the first round completes so renders keep finalized positions distinct.
type SelectionHighlight struct {
	Current   int
	Minimum   int
	Comparing int
	Sorted    []int
}

func (h SelectionHighlight) paint(roles []Role) {
	n := len(roles)
	for _, idx := range h.Sorted {
		if idx >= 0 && idx < n {
			roles[idx] = RoleSorted
		}
	}
	// Sorted positions are final: no later role may override them.
	if h.Current >= 0 && h.Current < n && roles[h.Current] != RoleSorted {
		roles[h.Current] = RoleCurrent
	}
	if h.Minimum >= 0 && h.Minimum < n && roles[h.Minimum] != RoleSorted {
		roles[h.Minimum] = RoleMinimum
	}
	if h.Comparing >= 0 && h.Comparing < n && roles[h.Comparing] != RoleSorted {
		roles[h.Comparing] = RoleComparing
	}
}
