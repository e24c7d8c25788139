package trace

import (
	"fmt"

	"github.com/roach88/sortscope/internal/step"
)

// Snapshot captures one complete sort run for serialization: the run
// token, the algorithm identifier, the input array and every recorded
// step. Two runs of the same engine on the same input marshal to
// identical bytes when given the same token.
type Snapshot struct {
	RunToken  string
	Algorithm string
	Input     []int
	Steps     step.Sequence
}

// NewSnapshot builds a Snapshot; the input slice is copied.
func NewSnapshot(token, algorithm string, input []int, steps step.Sequence) *Snapshot {
	return &Snapshot{
		RunToken:  token,
		Algorithm: algorithm,
		Input:     append([]int(nil), input...),
		Steps:     steps,
	}
}

// MarshalCanonical serializes the snapshot as canonical JSON.
func (s *Snapshot) MarshalCanonical() ([]byte, error) {
	steps := make([]any, len(s.Steps))
	for i, st := range s.Steps {
		m, err := stepMap(st)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		steps[i] = m
	}
	return MarshalCanonical(map[string]any{
		"run_token": s.RunToken,
		"algorithm": s.Algorithm,
		"input":     s.Input,
		"steps":     steps,
	})
}

// stepMap flattens one step into canonical-JSON-ready shape. Absent
// metadata is omitted entirely, never emitted as a zero value, so traces
// stay stable when optional fields are introduced.
func stepMap(st step.Step) (map[string]any, error) {
	m := map[string]any{
		"snapshot": st.Snapshot,
	}
	if st.Description != "" {
		m["description"] = st.Description
	}
	if st.Highlight != nil {
		h, err := highlightMap(st.Highlight)
		if err != nil {
			return nil, err
		}
		m["highlight"] = h
	}
	return m, nil
}

func highlightMap(h step.Highlight) (map[string]any, error) {
	switch v := h.(type) {
	case step.QuickHighlight:
		m := map[string]any{"kind": "quicksort"}
		if v.Pivot >= 0 {
			m["pivot"] = v.Pivot
		}
		if len(v.Comparing) > 0 {
			m["comparing"] = v.Comparing
		}
		if v.Left != nil {
			m["left"] = rangeMap(*v.Left)
		}
		if v.Right != nil {
			m["right"] = rangeMap(*v.Right)
		}
		return m, nil
	case step.MergeHighlight:
		m := map[string]any{"kind": "mergesort"}
		if v.Left != nil {
			m["left"] = rangeMap(*v.Left)
		}
		if v.Right != nil {
			m["right"] = rangeMap(*v.Right)
		}
		if v.Merged != nil {
			m["merged"] = rangeMap(*v.Merged)
		}
		if len(v.Comparing) > 0 {
			m["comparing"] = v.Comparing
		}
		return m, nil
	case step.SelectionHighlight:
		m := map[string]any{"kind": "selectionsort"}
		if v.Current >= 0 {
			m["current"] = v.Current
		}
		if v.Minimum >= 0 {
			m["minimum"] = v.Minimum
		}
		if v.Comparing >= 0 {
			m["comparing"] = v.Comparing
		}
		if len(v.Sorted) > 0 {
			m["sorted"] = v.Sorted
		}
		return m, nil
	default:
		return nil, fmt.Errorf("unknown highlight variant %T", h)
	}
}

func rangeMap(r step.Range) map[string]any {
	return map[string]any{"lo": r.Lo, "hi": r.Hi}
}
