package algo

import (
	"fmt"

	"github.com/roach88/sortscope/internal/step"
)

// Selectionsort is the selection sort engine.
//
// Swap-based placement can carry an element past an equal one, so the
// engine is not stable.
type Selectionsort struct{}

// NewSelectionsort creates the selection sort engine.
func NewSelectionsort() *Selectionsort {
	return &Selectionsort{}
}

// Metadata returns the selection sort descriptive constants.
func (s *Selectionsort) Metadata() Metadata {
	return Metadata{
		Name: "Selection Sort",
		Description: "Selection Sort is a simple comparison-based sorting algorithm. " +
			"It divides the input list into two parts: a sorted sublist of items " +
			"which is built up from left to right, and a sublist of the remaining " +
			"unsorted items. The algorithm finds the smallest element in the " +
			"unsorted sublist, swaps it with the leftmost unsorted element, and " +
			"moves the sublist boundaries one element to the right.",
		TimeComplexity:  "O(n²)",
		SpaceComplexity: "O(1)",
		BestCase:        "O(n²)",
		WorstCase:       "O(n²)",
		Stable:          false,
	}
}

// Generate records the full selection sort of arr. Every step after round
// i carries the running sorted-index set so renders keep finalized
// positions visually distinct.
func (s *Selectionsort) Generate(arr []int) step.Sequence {
	rec := step.NewRecorder()
	work := workingCopy(arr)
	n := len(work)

	var sorted []int

	for i := 0; i < n; i++ {
		minIdx := i

		rec.Record(work, step.SelectionHighlight{
			Current: i, Minimum: minIdx, Comparing: -1, Sorted: sortedCopy(sorted),
		}, fmt.Sprintf("Round %d: Looking for minimum in unsorted part [position %d to %d]", i+1, i, n-1))

		rec.Record(work, step.SelectionHighlight{
			Current: i, Minimum: minIdx, Comparing: -1, Sorted: sortedCopy(sorted),
		}, fmt.Sprintf("Assume element at position %d (%d) is minimum", i, work[i]))

		for j := i + 1; j < n; j++ {
			rec.Record(work, step.SelectionHighlight{
				Current: i, Minimum: minIdx, Comparing: j, Sorted: sortedCopy(sorted),
			}, fmt.Sprintf("Comparing: %d (position %d) with current minimum %d", work[j], j, work[minIdx]))

			if work[j] < work[minIdx] {
				minIdx = j
				rec.Record(work, step.SelectionHighlight{
					Current: i, Minimum: minIdx, Comparing: j, Sorted: sortedCopy(sorted),
				}, fmt.Sprintf("New minimum found! %d at position %d", work[j], j))
			}
		}

		if minIdx != i {
			rec.Record(work, step.SelectionHighlight{
				Current: i, Minimum: minIdx, Comparing: -1, Sorted: sortedCopy(sorted),
			}, fmt.Sprintf("Swapping: %d (position %d) with %d (position %d)", work[i], i, work[minIdx], minIdx))

			work[i], work[minIdx] = work[minIdx], work[i]

			rec.Record(work, step.SelectionHighlight{
				Current: i, Minimum: -1, Comparing: -1, Sorted: sortedCopy(sorted),
			}, fmt.Sprintf("Swap completed: %d is now in position %d", work[i], i))
		} else {
			rec.Record(work, step.SelectionHighlight{
				Current: i, Minimum: -1, Comparing: -1, Sorted: sortedCopy(sorted),
			}, fmt.Sprintf("No swap needed: %d is already the minimum", work[i]))
		}

		sorted = append(sorted, i)

		rec.Record(work, step.SelectionHighlight{
			Current: -1, Minimum: -1, Comparing: -1, Sorted: sortedCopy(sorted),
		}, fmt.Sprintf("Position %d is now sorted. Element %d is in correct place", i, work[i]))
	}

	final := make([]int, n)
	for i := range final {
		final[i] = i
	}
	rec.Record(work, step.SelectionHighlight{
		Current: -1, Minimum: -1, Comparing: -1, Sorted: final,
	}, "Selection Sort completed! All elements are now sorted")

	return rec.Sequence()
}

// sortedCopy snapshots the running sorted-index set so later appends
// cannot leak into already recorded steps.
func sortedCopy(sorted []int) []int {
	if len(sorted) == 0 {
		return nil
	}
	return append([]int(nil), sorted...)
}
