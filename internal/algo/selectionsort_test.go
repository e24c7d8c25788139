package algo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/sortscope/internal/step"
)

func TestSelectionsort_Generate_DuplicatesTrace(t *testing.T) {
	seq := NewSelectionsort().Generate([]int{3, 3, 1})

	want := []string{
		"Round 1: Looking for minimum in unsorted part [position 0 to 2]",
		"Assume element at position 0 (3) is minimum",
		"Comparing: 3 (position 1) with current minimum 3",
		"Comparing: 1 (position 2) with current minimum 3",
		"New minimum found! 1 at position 2",
		"Swapping: 3 (position 0) with 1 (position 2)",
		"Swap completed: 1 is now in position 0",
		"Position 0 is now sorted. Element 1 is in correct place",
		"Round 2: Looking for minimum in unsorted part [position 1 to 2]",
		"Assume element at position 1 (3) is minimum",
		"Comparing: 3 (position 2) with current minimum 3",
		"No swap needed: 3 is already the minimum",
		"Position 1 is now sorted. Element 3 is in correct place",
		"Round 3: Looking for minimum in unsorted part [position 2 to 2]",
		"Assume element at position 2 (3) is minimum",
		"No swap needed: 3 is already the minimum",
		"Position 2 is now sorted. Element 3 is in correct place",
		"Selection Sort completed! All elements are now sorted",
	}

	require.Len(t, seq, len(want))
	for i, description := range want {
		assert.Equal(t, description, seq[i].Description, "step %d", i)
	}

	final, _ := seq.Final()
	assert.Equal(t, []int{1, 3, 3}, final.Snapshot)
}

func TestSelectionsort_Generate_SwapCarriesEqualElementPast(t *testing.T) {
	// Instability counterexample: the swap that places 1 carries the
	// leftmost 3 past the equal 3 at position 1, reversing their
	// relative order. Expected behavior for a swap-based placement.
	seq := NewSelectionsort().Generate([]int{3, 3, 1})

	swap, ok := findStep(seq, "Swapping: 3 (position 0) with 1 (position 2)")
	require.True(t, ok)
	assert.Equal(t, []int{3, 3, 1}, swap.Snapshot)

	completed, ok := findStep(seq, "Swap completed: 1 is now in position 0")
	require.True(t, ok)
	assert.Equal(t, []int{1, 3, 3}, completed.Snapshot)
}

func TestSelectionsort_Generate_SortedSetGrows(t *testing.T) {
	seq := NewSelectionsort().Generate([]int{3, 3, 1})

	roundTwo, ok := findStep(seq, "Round 2: Looking for minimum in unsorted part [position 1 to 2]")
	require.True(t, ok)
	h, ok := roundTwo.Highlight.(step.SelectionHighlight)
	require.True(t, ok)
	assert.Equal(t, []int{0}, h.Sorted)
	assert.Equal(t, 1, h.Current)

	final, _ := seq.Final()
	fh := final.Highlight.(step.SelectionHighlight)
	assert.Equal(t, []int{0, 1, 2}, fh.Sorted)
	assert.Equal(t, -1, fh.Current)
}

func TestSelectionsort_Generate_SortedSetImmutableAcrossSteps(t *testing.T) {
	seq := NewSelectionsort().Generate([]int{5, 4, 3, 2, 1})

	// Earlier steps must not see positions finalized later.
	first := seq[0].Highlight.(step.SelectionHighlight)
	assert.Empty(t, first.Sorted)
}

func TestSelectionsort_Metadata(t *testing.T) {
	md := NewSelectionsort().Metadata()
	assert.Equal(t, "Selection Sort", md.Name)
	assert.False(t, md.Stable)
	assert.Equal(t, "O(1)", md.SpaceComplexity)
	assert.Equal(t, md.BestCase, md.WorstCase)
}
