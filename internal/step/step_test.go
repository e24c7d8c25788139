package step

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRange_Len(t *testing.T) {
	assert.Equal(t, 1, Range{Lo: 3, Hi: 3}.Len())
	assert.Equal(t, 5, Range{Lo: 0, Hi: 4}.Len())
	assert.Equal(t, 0, Range{Lo: 4, Hi: 2}.Len())
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "default", RoleDefault.String())
	assert.Equal(t, "pivot", RolePivot.String())
	assert.Equal(t, "comparing", RoleComparing.String())
	assert.Equal(t, "sorted", RoleSorted.String())
	assert.Equal(t, "merged", RoleMerged.String())
}

func TestStep_Roles_NilHighlight(t *testing.T) {
	st := Step{Snapshot: []int{5, 2, 8}}
	roles := st.Roles()
	require.Len(t, roles, 3)
	for _, r := range roles {
		assert.Equal(t, RoleDefault, r)
	}
}

func TestStep_Roles_QuickHighlight(t *testing.T) {
	st := Step{
		Snapshot: []int{5, 2, 8, 1, 9},
		Highlight: QuickHighlight{
			Pivot:     4,
			Comparing: []int{1},
			Left:      &Range{Lo: 0, Hi: 0},
			Right:     &Range{Lo: 2, Hi: 3},
		},
	}
	roles := st.Roles()
	assert.Equal(t, []Role{RoleLeft, RoleComparing, RoleRight, RoleRight, RolePivot}, roles)
}

func TestStep_Roles_QuickHighlight_PivotBeatsComparing(t *testing.T) {
	st := Step{
		Snapshot:  []int{3, 1, 2},
		Highlight: QuickHighlight{Pivot: 2, Comparing: []int{2, 0}},
	}
	roles := st.Roles()
	assert.Equal(t, RolePivot, roles[2])
	assert.Equal(t, RoleComparing, roles[0])
}

func TestStep_Roles_QuickHighlight_RangesYieldToStrongerRoles(t *testing.T) {
	st := Step{
		Snapshot: []int{3, 1, 2, 4},
		Highlight: QuickHighlight{
			Pivot: 1,
			Left:  &Range{Lo: 0, Hi: 3},
		},
	}
	roles := st.Roles()
	assert.Equal(t, []Role{RoleLeft, RolePivot, RoleLeft, RoleLeft}, roles)
}

func TestStep_Roles_MergeHighlight(t *testing.T) {
	st := Step{
		Snapshot: []int{5, 2, 8, 1, 9},
		Highlight: MergeHighlight{
			Left:  &Range{Lo: 0, Hi: 1},
			Right: &Range{Lo: 2, Hi: 4},
		},
	}
	roles := st.Roles()
	assert.Equal(t, []Role{RoleLeft, RoleLeft, RoleRight, RoleRight, RoleRight}, roles)
}

func TestStep_Roles_MergeHighlight_ComparingOverridesMerged(t *testing.T) {
	st := Step{
		Snapshot: []int{2, 5, 1, 9},
		Highlight: MergeHighlight{
			Merged:    &Range{Lo: 0, Hi: 3},
			Comparing: []int{0, 2},
		},
	}
	roles := st.Roles()
	assert.Equal(t, []Role{RoleComparing, RoleMerged, RoleComparing, RoleMerged}, roles)
}

func TestStep_Roles_SelectionHighlight(t *testing.T) {
	st := Step{
		Snapshot: []int{1, 5, 3, 2},
		Highlight: SelectionHighlight{
			Current:   1,
			Minimum:   3,
			Comparing: 2,
			Sorted:    []int{0},
		},
	}
	roles := st.Roles()
	assert.Equal(t, []Role{RoleSorted, RoleCurrent, RoleComparing, RoleMinimum}, roles)
}

func TestStep_Roles_SelectionHighlight_SortedIsFinal(t *testing.T) {
	st := Step{
		Snapshot: []int{1, 2, 3},
		Highlight: SelectionHighlight{
			Current:   0,
			Minimum:   1,
			Comparing: 2,
			Sorted:    []int{0, 1, 2},
		},
	}
	roles := st.Roles()
	assert.Equal(t, []Role{RoleSorted, RoleSorted, RoleSorted}, roles)
}

func TestStep_Roles_SelectionHighlight_AbsentMarkers(t *testing.T) {
	st := Step{
		Snapshot:  []int{1, 2, 3},
		Highlight: SelectionHighlight{Current: -1, Minimum: -1, Comparing: -1},
	}
	roles := st.Roles()
	assert.Equal(t, []Role{RoleDefault, RoleDefault, RoleDefault}, roles)
}

func TestSequence_Final(t *testing.T) {
	seq := Sequence{
		{Description: "first"},
		{Description: "last"},
	}
	final, ok := seq.Final()
	require.True(t, ok)
	assert.Equal(t, "last", final.Description)

	_, ok = Sequence(nil).Final()
	assert.False(t, ok)
}
