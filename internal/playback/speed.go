package playback

import (
	"fmt"
	"time"
)

// Speed is one of the five playback interval presets, selectable between
// runs and while playing (a change takes effect on the next tick).
type Speed int

const (
	SpeedVerySlow Speed = iota
	SpeedSlow
	SpeedMedium
	SpeedFast
	SpeedVeryFast
)

// FastForwardInterval is the tick interval forced by FastStart regardless
// of the configured speed preset.
const FastForwardInterval = 50 * time.Millisecond

// Interval returns the auto-advance tick interval for the preset.
func (s Speed) Interval() time.Duration {
	switch s {
	case SpeedVerySlow:
		return 2000 * time.Millisecond
	case SpeedSlow:
		return 1500 * time.Millisecond
	case SpeedFast:
		return 500 * time.Millisecond
	case SpeedVeryFast:
		return 200 * time.Millisecond
	default:
		return 1000 * time.Millisecond
	}
}

// String returns the preset identifier used by the CLI and scenarios.
func (s Speed) String() string {
	switch s {
	case SpeedVerySlow:
		return "very-slow"
	case SpeedSlow:
		return "slow"
	case SpeedFast:
		return "fast"
	case SpeedVeryFast:
		return "very-fast"
	default:
		return "medium"
	}
}

// Speeds returns all presets from slowest to fastest.
func Speeds() []Speed {
	return []Speed{SpeedVerySlow, SpeedSlow, SpeedMedium, SpeedFast, SpeedVeryFast}
}

// ParseSpeed resolves a preset identifier.
func ParseSpeed(name string) (Speed, error) {
	for _, s := range Speeds() {
		if s.String() == name {
			return s, nil
		}
	}
	return SpeedMedium, fmt.Errorf("unknown speed %q: must be one of %v", name, Speeds())
}
