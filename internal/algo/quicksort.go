package algo

import (
	"fmt"

	"github.com/roach88/sortscope/internal/step"
)

// Quicksort is the quicksort engine (Lomuto partition scheme).
//
// The pivot is always the last element of the current subrange. Elements
// equal to the pivot compare as <= pivot and end up left of it, which
// makes the engine not stable. That is the documented behavior of the
// scheme, not a defect.
type Quicksort struct{}

// NewQuicksort creates the quicksort engine.
func NewQuicksort() *Quicksort {
	return &Quicksort{}
}

// Metadata returns the quicksort descriptive constants.
func (q *Quicksort) Metadata() Metadata {
	return Metadata{
		Name: "Quick Sort",
		Description: "Quick Sort is a divide-and-conquer algorithm that works by " +
			"selecting a 'pivot' element and partitioning the array around it. " +
			"Elements smaller than the pivot go to the left, and elements greater " +
			"than the pivot go to the right. The process is recursively applied " +
			"to the left and right subarrays.",
		TimeComplexity:  "Average: O(n log n), Worst: O(n²)",
		SpaceComplexity: "O(log n)",
		BestCase:        "O(n log n)",
		WorstCase:       "O(n²)",
		Stable:          false,
	}
}

// Generate records the full quicksort of arr. The first recorded step is
// the pivot selection for the whole array.
func (q *Quicksort) Generate(arr []int) step.Sequence {
	rec := step.NewRecorder()
	work := workingCopy(arr)
	if len(work) > 1 {
		q.sort(work, 0, len(work)-1, rec)
	}
	rec.Record(work, nil, "Sorting completed!")
	return rec.Sequence()
}

func (q *Quicksort) sort(arr []int, low, high int, rec *step.Recorder) {
	if low >= high {
		return
	}

	pi := q.partition(arr, low, high, rec)

	if low < pi-1 {
		rec.Record(arr, step.QuickHighlight{
			Pivot: -1,
			Left:  &step.Range{Lo: low, Hi: pi - 1},
		}, fmt.Sprintf("Sort left side: [%d, %d]", low, pi-1))
		q.sort(arr, low, pi-1, rec)
	}

	if pi+1 < high {
		rec.Record(arr, step.QuickHighlight{
			Pivot: -1,
			Right: &step.Range{Lo: pi + 1, Hi: high},
		}, fmt.Sprintf("Sort right side: [%d, %d]", pi+1, high))
		q.sort(arr, pi+1, high, rec)
	}
}

// partition places arr[high] into its final position within [low, high]
// and returns that position.
func (q *Quicksort) partition(arr []int, low, high int, rec *step.Recorder) int {
	pivot := arr[high]

	rec.Record(arr, step.QuickHighlight{Pivot: high},
		fmt.Sprintf("Pivot selected: %d (index: %d)", pivot, high))

	i := low - 1
	for j := low; j < high; j++ {
		rec.Record(arr, step.QuickHighlight{Pivot: high, Comparing: []int{j}},
			fmt.Sprintf("Comparing: %d <= %d?", arr[j], pivot))

		if arr[j] <= pivot {
			i++
			if i != j {
				rec.Record(arr, step.QuickHighlight{Pivot: high, Comparing: []int{i, j}},
					fmt.Sprintf("Swapping: %d <-> %d", arr[i], arr[j]))
				arr[i], arr[j] = arr[j], arr[i]
				rec.Record(arr, step.QuickHighlight{Pivot: high}, "Swap completed")
			}
		}
	}

	if i+1 != high {
		rec.Record(arr, step.QuickHighlight{Pivot: high, Comparing: []int{i + 1}},
			"Place pivot in correct position")
		arr[i+1], arr[high] = arr[high], arr[i+1]
	}

	// A side is omitted entirely when its index span is empty.
	h := step.QuickHighlight{Pivot: i + 1}
	if i >= low {
		h.Left = &step.Range{Lo: low, Hi: i}
	}
	if i+2 <= high {
		h.Right = &step.Range{Lo: i + 2, Hi: high}
	}
	rec.Record(arr, h, fmt.Sprintf("Partition completed. Pivot position: %d", i+1))

	return i + 1
}
