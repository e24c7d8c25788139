package harness

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"
)

// scenarioSchema is the CUE contract every scenario file must satisfy.
// It enforces the input boundary the core itself never checks: arrays of
// 3..30 integers with values in 1..100, a registered algorithm, and a
// well-formed command list.
const scenarioSchema = `
import "list"

#Speed: "very-slow" | "slow" | "medium" | "fast" | "very-fast"

#Command: "start" | "fast_start" | "pause" | "reset" | "step_forward" |
	"step_backward" | "tick" | "play_all" |
	=~"^set_speed:(very-slow|slow|medium|fast|very-fast)$"

#Assertion: {
	type: "final_sorted" | "permutation" | "final_state" |
		"trace_contains" | "step_count" | "cursor_at" | "state_is"
	values?: [...int]
	description?: string
	count?: int & >=0
	cursor?: int & >=0
	state?: "idle" | "playing" | "paused" | "finished"
}

#Scenario: {
	name:         string & !=""
	description?: string
	algorithm:    "quicksort" | "mergesort" | "selectionsort"
	array:        [...int & >=1 & <=100] & list.MinItems(3) & list.MaxItems(30)
	speed?:       #Speed
	commands?:    [...#Command]
	assertions?:  [...#Assertion]
	run_token?:   string & !=""
}

#Scenario
`

// ValidateScenarioYAML checks scenario yaml bytes against the CUE
// schema. A nil return means the scenario is structurally valid; the
// semantic checks (does the golden file exist, do assertions hold) come
// later, at execution time.
func ValidateScenarioYAML(data []byte) error {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("not valid yaml: %w", err)
	}
	if raw == nil {
		return fmt.Errorf("scenario is empty")
	}

	ctx := cuecontext.New()
	schema := ctx.CompileString(scenarioSchema)
	if err := schema.Err(); err != nil {
		return fmt.Errorf("internal schema error: %w", err)
	}

	value := ctx.Encode(raw)
	if err := value.Err(); err != nil {
		return fmt.Errorf("scenario not encodable: %w", err)
	}

	unified := schema.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("schema violation: %w", err)
	}
	return nil
}
