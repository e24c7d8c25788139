// Package algo implements the instrumented sort engines.
//
// Each engine is a pure array-transforming algorithm that emits a step
// record at every semantically meaningful transition: comparisons, swaps,
// partition boundaries, merge placements, subarray divides.
//
// DETERMINISM:
// Generate is a total function of the input array. Engines contain no
// randomness, no clocks and no I/O, so running the same engine twice on
// the same input produces an identical sequence - same length, same
// snapshots, same descriptions. Replay and golden-file comparison depend
// on this.
//
// Engines run eagerly: Generate mutates a private copy of the input and
// runs to completion in one synchronous call before any step is shown.
package algo

import "github.com/roach88/sortscope/internal/step"

// Engine is the closed capability set shared by all algorithm variants:
// produce a step sequence, expose descriptive metadata.
type Engine interface {
	// Generate records the full sort of arr and returns the finished
	// sequence. The input slice is never mutated.
	Generate(arr []int) step.Sequence

	// Metadata returns the engine's descriptive constants.
	Metadata() Metadata
}

// Metadata holds the static descriptive constants of one engine,
// consumed by the "about this algorithm" surface.
type Metadata struct {
	Name            string
	Description     string
	TimeComplexity  string
	SpaceComplexity string
	BestCase        string
	WorstCase       string
	Stable          bool
}

// workingCopy returns a private mutable copy of arr for one sort run.
func workingCopy(arr []int) []int {
	work := make([]int, len(arr))
	copy(work, arr)
	return work
}
