package algo

import (
	"fmt"
	"sort"
)

// Engine identifiers for the static registry.
const (
	IDQuicksort     = "quicksort"
	IDMergesort     = "mergesort"
	IDSelectionsort = "selectionsort"
)

// builders maps algorithm identifiers to engine constructors. The variant
// set is fixed and small, so an explicit compile-time registry replaces
// any runtime discovery: no filesystem scanning, no reflection.
var builders = map[string]func() Engine{
	IDQuicksort:     func() Engine { return NewQuicksort() },
	IDMergesort:     func() Engine { return NewMergesort() },
	IDSelectionsort: func() Engine { return NewSelectionsort() },
}

// New constructs the engine registered under id.
func New(id string) (Engine, error) {
	build, ok := builders[id]
	if !ok {
		return nil, fmt.Errorf("unknown algorithm %q: must be one of %v", id, IDs())
	}
	return build(), nil
}

// IDs returns all registered algorithm identifiers in sorted order.
// Iteration order is deterministic so listings and error text are stable.
func IDs() []string {
	ids := make([]string, 0, len(builders))
	for id := range builders {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
