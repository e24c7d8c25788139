package harness

import (
	"fmt"
	"strings"
)

// AssertionError reports one failed scenario assertion with enough
// context to debug it without re-running.
type AssertionError struct {
	Type     string
	Expected string
	Actual   string
}

func (e *AssertionError) Error() string {
	return fmt.Sprintf("assertion failed: %s\n  Expected: %s\n  Actual: %s",
		e.Type, e.Expected, e.Actual)
}

// evaluate checks one assertion against the executed scenario.
func evaluate(result *Result, assertion Assertion) error {
	switch assertion.Type {
	case AssertFinalSorted:
		return assertFinalSorted(result)
	case AssertPermutation:
		return assertPermutation(result)
	case AssertFinalState:
		return assertFinalState(result, assertion)
	case AssertTraceContains:
		return assertTraceContains(result, assertion)
	case AssertStepCount:
		return assertStepCount(result, assertion)
	case AssertCursorAt:
		return assertCursorAt(result, assertion)
	case AssertStateIs:
		return assertStateIs(result, assertion)
	default:
		return fmt.Errorf("unknown assertion type %q", assertion.Type)
	}
}

func assertFinalSorted(result *Result) error {
	final, ok := result.Sequence.Final()
	if !ok {
		return &AssertionError{Type: AssertFinalSorted, Expected: "non-empty sequence", Actual: "no steps"}
	}
	for i := 1; i < len(final.Snapshot); i++ {
		if final.Snapshot[i-1] > final.Snapshot[i] {
			return &AssertionError{
				Type:     AssertFinalSorted,
				Expected: "non-decreasing final snapshot",
				Actual:   fmt.Sprintf("%v (descending pair at index %d)", final.Snapshot, i-1),
			}
		}
	}
	return nil
}

func assertPermutation(result *Result) error {
	final, ok := result.Sequence.Final()
	if !ok {
		return &AssertionError{Type: AssertPermutation, Expected: "non-empty sequence", Actual: "no steps"}
	}
	counts := make(map[int]int)
	for _, v := range result.Scenario.Array {
		counts[v]++
	}
	for _, v := range final.Snapshot {
		counts[v]--
	}
	for v, n := range counts {
		if n != 0 {
			return &AssertionError{
				Type:     AssertPermutation,
				Expected: fmt.Sprintf("same multiset as input %v", result.Scenario.Array),
				Actual:   fmt.Sprintf("%v (value %d off by %d)", final.Snapshot, v, n),
			}
		}
	}
	return nil
}

func assertFinalState(result *Result, assertion Assertion) error {
	if !intsEqual(result.Final, assertion.Values) {
		return &AssertionError{
			Type:     AssertFinalState,
			Expected: fmt.Sprintf("%v", assertion.Values),
			Actual:   fmt.Sprintf("%v", result.Final),
		}
	}
	return nil
}

func assertTraceContains(result *Result, assertion Assertion) error {
	for _, st := range result.Sequence {
		if strings.Contains(st.Description, assertion.Description) {
			return nil
		}
	}
	return &AssertionError{
		Type:     AssertTraceContains,
		Expected: fmt.Sprintf("a step describing %q", assertion.Description),
		Actual:   fmt.Sprintf("not found in %d steps", len(result.Sequence)),
	}
}

func assertStepCount(result *Result, assertion Assertion) error {
	if len(result.Sequence) != assertion.Count {
		return &AssertionError{
			Type:     AssertStepCount,
			Expected: fmt.Sprintf("%d steps", assertion.Count),
			Actual:   fmt.Sprintf("%d steps", len(result.Sequence)),
		}
	}
	return nil
}

func assertCursorAt(result *Result, assertion Assertion) error {
	if result.Cursor != assertion.Cursor {
		return &AssertionError{
			Type:     AssertCursorAt,
			Expected: fmt.Sprintf("cursor %d", assertion.Cursor),
			Actual:   fmt.Sprintf("cursor %d", result.Cursor),
		}
	}
	return nil
}

func assertStateIs(result *Result, assertion Assertion) error {
	if result.State.String() != assertion.State {
		return &AssertionError{
			Type:     AssertStateIs,
			Expected: assertion.State,
			Actual:   result.State.String(),
		}
	}
	return nil
}

func intsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
