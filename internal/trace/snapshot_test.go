package trace

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/sortscope/internal/step"
)

func TestSnapshot_MarshalCanonical_MinimalStep(t *testing.T) {
	snap := NewSnapshot("test-token", "quicksort", []int{2, 1}, step.Sequence{
		{Snapshot: []int{1, 2}, Description: "Sorting completed!"},
	})

	data, err := snap.MarshalCanonical()
	require.NoError(t, err)
	assert.Equal(t,
		`{"algorithm":"quicksort","input":[2,1],"run_token":"test-token",`+
			`"steps":[{"description":"Sorting completed!","snapshot":[1,2]}]}`,
		string(data))
}

func TestSnapshot_MarshalCanonical_QuickHighlight(t *testing.T) {
	snap := NewSnapshot("tok", "quicksort", []int{2, 1}, step.Sequence{
		{
			Snapshot:    []int{2, 1},
			Description: "Pivot selected: 1 (index: 1)",
			Highlight:   step.QuickHighlight{Pivot: 1},
		},
	})

	data, err := snap.MarshalCanonical()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"highlight":{"kind":"quicksort","pivot":1}`)
}

func TestSnapshot_MarshalCanonical_OmitsAbsentMetadata(t *testing.T) {
	snap := NewSnapshot("tok", "quicksort", []int{2, 1}, step.Sequence{
		{
			Snapshot:  []int{2, 1},
			Highlight: step.QuickHighlight{Pivot: -1},
		},
	})

	data, err := snap.MarshalCanonical()
	require.NoError(t, err)
	s := string(data)
	assert.Contains(t, s, `"highlight":{"kind":"quicksort"}`)
	assert.NotContains(t, s, "pivot")
	assert.NotContains(t, s, "description")
}

func TestSnapshot_MarshalCanonical_RangeKeyOrder(t *testing.T) {
	snap := NewSnapshot("tok", "mergesort", []int{2, 1}, step.Sequence{
		{
			Snapshot: []int{2, 1},
			Highlight: step.MergeHighlight{
				Left:  &step.Range{Lo: 0, Hi: 0},
				Right: &step.Range{Lo: 1, Hi: 1},
			},
		},
	})

	data, err := snap.MarshalCanonical()
	require.NoError(t, err)
	assert.Contains(t, string(data),
		`"highlight":{"kind":"mergesort","left":{"hi":0,"lo":0},"right":{"hi":1,"lo":1}}`)
}

func TestSnapshot_MarshalCanonical_SelectionHighlight(t *testing.T) {
	snap := NewSnapshot("tok", "selectionsort", []int{3, 3, 1}, step.Sequence{
		{
			Snapshot: []int{1, 3, 3},
			Highlight: step.SelectionHighlight{
				Current: -1, Minimum: -1, Comparing: -1, Sorted: []int{0},
			},
		},
	})

	data, err := snap.MarshalCanonical()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"highlight":{"kind":"selectionsort","sorted":[0]}`)
}

func TestSnapshot_MarshalCanonical_Deterministic(t *testing.T) {
	seq := step.Sequence{
		{Snapshot: []int{2, 1}, Description: "a", Highlight: step.QuickHighlight{Pivot: 1}},
		{Snapshot: []int{1, 2}, Description: "b"},
	}

	first, err := NewSnapshot("tok", "quicksort", []int{2, 1}, seq).MarshalCanonical()
	require.NoError(t, err)
	second, err := NewSnapshot("tok", "quicksort", []int{2, 1}, seq).MarshalCanonical()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSnapshot_MarshalCanonical_IsValidJSON(t *testing.T) {
	snap := NewSnapshot("tok", "quicksort", []int{2, 1}, step.Sequence{
		{Snapshot: []int{2, 1}, Description: "Comparing: 2 <= 1?"},
	})

	data, err := snap.MarshalCanonical()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "quicksort", decoded["algorithm"])
}

func TestNewSnapshot_CopiesInput(t *testing.T) {
	input := []int{2, 1}
	snap := NewSnapshot("tok", "quicksort", input, nil)
	input[0] = 99
	assert.Equal(t, []int{2, 1}, snap.Input)
}
