package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/sortscope/internal/playback"
)

// DefaultArraySize is the random array size used when neither --array
// nor --size is given.
const DefaultArraySize = 15

// ParseArray parses a comma-separated integer list ("5,2,8,1,9") and
// enforces the manual-input boundary: 3..30 integers. This is the only
// place manual input is validated; the core trusts what it receives.
func ParseArray(spec string) ([]int, error) {
	parts := strings.Split(spec, ",")
	values := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid array element %q: not an integer", part)
		}
		values = append(values, v)
	}
	if len(values) < playback.ManualSizeMin || len(values) > playback.ManualSizeMax {
		return nil, fmt.Errorf("array must have between %d and %d elements, got %d",
			playback.ManualSizeMin, playback.ManualSizeMax, len(values))
	}
	return values, nil
}

// ValidateRandomSize enforces the random-generation boundary: 5..30.
func ValidateRandomSize(size int) error {
	if size < playback.RandomSizeMin || size > playback.RandomSizeMax {
		return fmt.Errorf("size must be between %d and %d, got %d",
			playback.RandomSizeMin, playback.RandomSizeMax, size)
	}
	return nil
}

// arrayFlags is the shared input surface of run, trace and play.
type arrayFlags struct {
	Array string
	Size  int
	Seed  int64
}

// installArray resolves the flags into the controller's array: a parsed
// manual array, or a (optionally seeded) random one. Returns the values
// actually installed.
func installArray(ctrl *playback.Controller, flags arrayFlags) ([]int, error) {
	if flags.Array != "" {
		values, err := ParseArray(flags.Array)
		if err != nil {
			return nil, err
		}
		ctrl.SetArray(values)
		return values, nil
	}
	size := flags.Size
	if size == 0 {
		size = DefaultArraySize
	}
	if err := ValidateRandomSize(size); err != nil {
		return nil, err
	}
	return ctrl.Randomize(size), nil
}
