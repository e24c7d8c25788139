package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/roach88/sortscope/internal/harness"
)

// TestOptions holds flags for the test command.
type TestOptions struct {
	*RootOptions
	Filter string
}

// ScenarioResult holds the result of a single scenario execution.
type ScenarioResult struct {
	Name   string `json:"name"`
	File   string `json:"file"`
	Pass   bool   `json:"pass"`
	Error  string `json:"error,omitempty"`
	Steps  int    `json:"steps"`
	Cursor int    `json:"cursor"`
	State  string `json:"state"`
}

// TestResult holds the overall test result.
type TestResult struct {
	Scenarios []ScenarioResult `json:"scenarios"`
	Passed    int              `json:"passed"`
	Failed    int              `json:"failed"`
	Total     int              `json:"total"`
}

// NewTestCommand creates the test command.
func NewTestCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TestOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "test <scenario-file|dir>",
		Short: "Run playback conformance scenarios",
		Long: `Run playback conformance scenarios.

Each scenario drives one engine through its command list on a manual
tick scheduler and checks its assertions against the resulting step
trace and playback state.

Exit codes:
  0 - all scenarios passed
  1 - one or more scenarios failed
  2 - command error (invalid paths, malformed scenario)`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTests(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Filter, "filter", "", "filter scenarios by name glob")

	return cmd
}

func runTests(opts *TestOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	files, err := collectScenarioFiles(path)
	if err != nil {
		formatter.Error(ErrCodeNotFound, err.Error(), nil)
		return WrapExitError(ExitCommandError, "cannot load scenarios", err)
	}

	result := TestResult{Scenarios: make([]ScenarioResult, 0, len(files))}
	for _, file := range files {
		scenario, err := harness.LoadScenario(file)
		if err != nil {
			formatter.Error(ErrCodeScenario, err.Error(), nil)
			return WrapExitError(ExitCommandError, "malformed scenario", err)
		}
		if opts.Filter != "" {
			if ok, _ := filepath.Match(opts.Filter, scenario.Name); !ok {
				continue
			}
		}
		result.Scenarios = append(result.Scenarios, runOneScenario(file, scenario))
	}
	result.Total = len(result.Scenarios)
	for _, sr := range result.Scenarios {
		if sr.Pass {
			result.Passed++
		} else {
			result.Failed++
		}
	}

	if opts.Format == "json" {
		if err := formatter.Success(result); err != nil {
			return err
		}
	} else {
		for _, sr := range result.Scenarios {
			if sr.Pass {
				fmt.Fprintf(cmd.OutOrStdout(), "PASS %s (%d steps)\n", sr.Name, sr.Steps)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "FAIL %s\n     %s\n", sr.Name, sr.Error)
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d passed, %d failed, %d total\n",
			result.Passed, result.Failed, result.Total)
	}

	if result.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d scenarios failed", result.Failed, result.Total))
	}
	return nil
}

func runOneScenario(file string, scenario *harness.Scenario) ScenarioResult {
	sr := ScenarioResult{Name: scenario.Name, File: file}
	result, err := harness.Run(scenario)
	if result != nil {
		sr.Steps = len(result.Sequence)
		sr.Cursor = result.Cursor
		sr.State = result.State.String()
	}
	if err != nil {
		sr.Error = err.Error()
		return sr
	}
	sr.Pass = true
	return sr
}
