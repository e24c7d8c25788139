package algo

import (
	"fmt"
	"strings"

	"github.com/roach88/sortscope/internal/step"
)

// Mergesort is the top-down recursive merge sort engine.
//
// Merging always prefers the left element on ties, so equal elements keep
// their relative input order: the engine is stable.
type Mergesort struct{}

// NewMergesort creates the merge sort engine.
func NewMergesort() *Mergesort {
	return &Mergesort{}
}

// Metadata returns the merge sort descriptive constants.
func (m *Mergesort) Metadata() Metadata {
	return Metadata{
		Name: "Merge Sort",
		Description: "Merge Sort is a divide-and-conquer algorithm that divides the " +
			"input array into two halves, recursively sorts both halves, and then " +
			"merges the sorted halves back together. It is one of the most efficient " +
			"sorting algorithms with guaranteed O(n log n) time complexity in all " +
			"cases. The algorithm is stable and works by repeatedly splitting the " +
			"array until each subarray has only one element, then merging them back " +
			"in sorted order.",
		TimeComplexity:  "O(n log n)",
		SpaceComplexity: "O(n)",
		BestCase:        "O(n log n)",
		WorstCase:       "O(n log n)",
		Stable:          true,
	}
}

// Generate records the full merge sort of arr.
func (m *Mergesort) Generate(arr []int) step.Sequence {
	rec := step.NewRecorder()
	work := workingCopy(arr)
	if len(work) > 1 {
		m.sort(work, 0, len(work)-1, rec)
	}
	rec.Record(work, nil, "Merge Sort completed! Array is now fully sorted")
	return rec.Sequence()
}

func (m *Mergesort) sort(arr []int, left, right int, rec *step.Recorder) {
	if left >= right {
		return
	}
	mid := (left + right) / 2

	leftHalf := step.Range{Lo: left, Hi: mid}
	rightHalf := step.Range{Lo: mid + 1, Hi: right}

	rec.Record(arr, step.MergeHighlight{Left: &leftHalf, Right: &rightHalf},
		fmt.Sprintf("Dividing array: Left[%d:%d], Right[%d:%d]", left, mid, mid+1, right))

	rec.Record(arr, step.MergeHighlight{Left: &leftHalf},
		fmt.Sprintf("Sorting left subarray: [%d:%d]", left, mid))
	m.sort(arr, left, mid, rec)

	rec.Record(arr, step.MergeHighlight{Right: &rightHalf},
		fmt.Sprintf("Sorting right subarray: [%d:%d]", mid+1, right))
	m.sort(arr, mid+1, right, rec)

	rec.Record(arr, step.MergeHighlight{Left: &leftHalf, Right: &rightHalf},
		fmt.Sprintf("Merging sorted subarrays: [%d:%d] and [%d:%d]", left, mid, mid+1, right))
	m.merge(arr, left, mid, right, rec)
}

// merge combines the sorted halves [left,mid] and [mid+1,right] in place.
func (m *Mergesort) merge(arr []int, left, mid, right int, rec *step.Recorder) {
	leftBuf := append([]int(nil), arr[left:mid+1]...)
	rightBuf := append([]int(nil), arr[mid+1:right+1]...)

	leftHalf := step.Range{Lo: left, Hi: mid}
	rightHalf := step.Range{Lo: mid + 1, Hi: right}
	merged := step.Range{Lo: left, Hi: right}

	rec.Record(arr, step.MergeHighlight{Left: &leftHalf, Right: &rightHalf},
		fmt.Sprintf("Created temp arrays: Left%s, Right%s", formatInts(leftBuf), formatInts(rightBuf)))

	i, j, k := 0, 0, left
	for i < len(leftBuf) && j < len(rightBuf) {
		rec.Record(arr, step.MergeHighlight{
			Merged:    &merged,
			Comparing: []int{left + i, mid + 1 + j},
		}, fmt.Sprintf("Comparing: %d vs %d at positions %d and %d",
			leftBuf[i], rightBuf[j], left+i, mid+1+j))

		// Left wins ties: this is what makes the sort stable.
		if leftBuf[i] <= rightBuf[j] {
			arr[k] = leftBuf[i]
			rec.Record(arr, step.MergeHighlight{Merged: &merged},
				fmt.Sprintf("Placed %d at position %d", leftBuf[i], k))
			i++
		} else {
			arr[k] = rightBuf[j]
			rec.Record(arr, step.MergeHighlight{Merged: &merged},
				fmt.Sprintf("Placed %d at position %d", rightBuf[j], k))
			j++
		}
		k++
	}

	for i < len(leftBuf) {
		arr[k] = leftBuf[i]
		rec.Record(arr, step.MergeHighlight{Merged: &merged},
			fmt.Sprintf("Copying remaining left element: %d to position %d", leftBuf[i], k))
		i++
		k++
	}

	for j < len(rightBuf) {
		arr[k] = rightBuf[j]
		rec.Record(arr, step.MergeHighlight{Merged: &merged},
			fmt.Sprintf("Copying remaining right element: %d to position %d", rightBuf[j], k))
		j++
		k++
	}

	rec.Record(arr, step.MergeHighlight{Merged: &merged},
		fmt.Sprintf("Merge completed for range [%d:%d]", left, right))
}

// formatInts renders values as "[5, 2, 8]" for step descriptions.
func formatInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
