package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScenario_Valid(t *testing.T) {
	content := `
name: quicksort_basic
description: "Quicksort on the canonical five-element input"
algorithm: quicksort
array: [5, 2, 8, 1, 9]
commands:
  - play_all
assertions:
  - type: final_sorted
  - type: trace_contains
    description: "Pivot selected: 9 (index: 4)"
`
	scenario, err := ParseScenario([]byte(content))
	require.NoError(t, err)

	assert.Equal(t, "quicksort_basic", scenario.Name)
	assert.Equal(t, "quicksort", scenario.Algorithm)
	assert.Equal(t, []int{5, 2, 8, 1, 9}, scenario.Array)
	assert.Equal(t, []string{"play_all"}, scenario.Commands)
	require.Len(t, scenario.Assertions, 2)
	assert.Equal(t, AssertFinalSorted, scenario.Assertions[0].Type)
	assert.Equal(t, DefaultRunToken, scenario.RunToken)
}

func TestParseScenario_ExplicitRunToken(t *testing.T) {
	content := `
name: pinned
algorithm: mergesort
array: [3, 2, 1]
run_token: my-token
`
	scenario, err := ParseScenario([]byte(content))
	require.NoError(t, err)
	assert.Equal(t, "my-token", scenario.RunToken)
}

func TestParseScenario_SetSpeedCommand(t *testing.T) {
	content := `
name: speed_change
algorithm: quicksort
array: [3, 1, 2]
commands:
  - "set_speed:very-fast"
  - start
  - tick
`
	scenario, err := ParseScenario([]byte(content))
	require.NoError(t, err)
	assert.Equal(t, "set_speed:very-fast", scenario.Commands[0])
}

func TestParseScenario_ArrayTooSmall(t *testing.T) {
	content := `
name: tiny
algorithm: quicksort
array: [2, 1]
`
	_, err := ParseScenario([]byte(content))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid scenario")
}

func TestParseScenario_ValueOutOfRange(t *testing.T) {
	content := `
name: out_of_range
algorithm: quicksort
array: [5, 101, 3]
`
	_, err := ParseScenario([]byte(content))
	require.Error(t, err)

	content = `
name: below_range
algorithm: quicksort
array: [5, 0, 3]
`
	_, err = ParseScenario([]byte(content))
	require.Error(t, err)
}

func TestParseScenario_UnknownAlgorithm(t *testing.T) {
	content := `
name: bogus
algorithm: bogosort
array: [3, 1, 2]
`
	_, err := ParseScenario([]byte(content))
	require.Error(t, err)
}

func TestParseScenario_MalformedCommand(t *testing.T) {
	content := `
name: bad_command
algorithm: quicksort
array: [3, 1, 2]
commands:
  - rewind
`
	_, err := ParseScenario([]byte(content))
	require.Error(t, err)

	content = `
name: bad_speed
algorithm: quicksort
array: [3, 1, 2]
commands:
  - "set_speed:ludicrous"
`
	_, err = ParseScenario([]byte(content))
	require.Error(t, err)
}

func TestParseScenario_UnknownField(t *testing.T) {
	content := `
name: typo
algorithm: quicksort
array: [3, 1, 2]
comands:
  - start
`
	_, err := ParseScenario([]byte(content))
	require.Error(t, err)
}

func TestValidateScenarioYAML_NotYAML(t *testing.T) {
	err := ValidateScenarioYAML([]byte("{{nope"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid yaml")
}

func TestValidateScenarioYAML_Empty(t *testing.T) {
	err := ValidateScenarioYAML([]byte(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario("/nonexistent/scenario.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}
