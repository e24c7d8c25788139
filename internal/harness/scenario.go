// Package harness provides a conformance testing framework for the
// playback core.
//
// Scenarios are yaml files describing one sort run: the algorithm, the
// input array, a list of navigation commands, and assertions on the
// resulting step trace and playback state. Scenario execution is fully
// deterministic: ticks run on a ManualScheduler and run tokens come from
// a fixed generator, so the canonical trace of a scenario never changes
// between runs and can be pinned with a golden file.
package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario defines one conformance scenario.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description,omitempty"`

	// Algorithm is the registry identifier of the engine under test.
	Algorithm string `yaml:"algorithm"`

	// Array is the input array (3..30 values in 1..100, enforced by the
	// CUE schema before the core ever sees it).
	Array []int `yaml:"array"`

	// Speed optionally sets the initial speed preset.
	Speed string `yaml:"speed,omitempty"`

	// Commands is the navigation command list applied in order.
	// Supported: start, fast_start, pause, reset, step_forward,
	// step_backward, tick (fire one scheduled tick), play_all (start and
	// drain all ticks), set_speed:<preset>.
	Commands []string `yaml:"commands,omitempty"`

	// Assertions validate the final trace and playback state.
	Assertions []Assertion `yaml:"assertions,omitempty"`

	// RunToken is an optional fixed run token. Defaults to
	// "test-run-default" for deterministic golden comparison.
	RunToken string `yaml:"run_token,omitempty"`
}

// Assertion validates one property of the executed scenario.
type Assertion struct {
	// Type is one of the Assert* constants.
	Type string `yaml:"type"`

	// Values holds the expected array (final_state).
	Values []int `yaml:"values,omitempty"`

	// Description is a substring expected in some step (trace_contains).
	Description string `yaml:"description,omitempty"`

	// Count is the expected sequence length (step_count).
	Count int `yaml:"count,omitempty"`

	// Cursor is the expected cursor position (cursor_at).
	Cursor int `yaml:"cursor,omitempty"`

	// State is the expected playback state name (state_is).
	State string `yaml:"state,omitempty"`
}

// Assertion type constants.
const (
	AssertFinalSorted   = "final_sorted"
	AssertPermutation   = "permutation"
	AssertFinalState    = "final_state"
	AssertTraceContains = "trace_contains"
	AssertStepCount     = "step_count"
	AssertCursorAt      = "cursor_at"
	AssertStateIs       = "state_is"
)

// DefaultRunToken keeps golden files deterministic when a scenario does
// not pin its own token.
const DefaultRunToken = "test-run-default"

// LoadScenario reads, schema-validates and parses a scenario yaml file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	scenario, err := ParseScenario(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return scenario, nil
}

// ParseScenario validates and decodes scenario yaml bytes. The CUE
// schema rejects out-of-range arrays and malformed commands, and the
// strict decoder rejects unknown fields to catch typos.
func ParseScenario(data []byte) (*Scenario, error) {
	if err := ValidateScenarioYAML(data); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if scenario.RunToken == "" {
		scenario.RunToken = DefaultRunToken
	}
	return &scenario, nil
}
