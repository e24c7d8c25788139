package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/sortscope/internal/algo"
	"github.com/roach88/sortscope/internal/playback"
	"github.com/roach88/sortscope/internal/step"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	arrayFlags
}

// runStep is the JSON shape of one step in run output.
type runStep struct {
	Index       int    `json:"index"`
	Description string `json:"description,omitempty"`
	Snapshot    []int  `json:"snapshot"`
}

// runResult is the JSON payload of the run command.
type runResult struct {
	Algorithm string    `json:"algorithm"`
	Name      string    `json:"name"`
	Input     []int     `json:"input"`
	StepCount int       `json:"step_count"`
	Steps     []runStep `json:"steps"`
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run <algorithm>",
		Short: "Record a full sort run and print every step",
		Long: `Record a full sort run and print every step.

The engine runs eagerly to completion; the printed steps are the exact
sequence the playback surfaces traverse. Use --array for a manual input
or --size/--seed for a reproducible random one.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Array, "array", "", "comma-separated input array (3..30 integers)")
	cmd.Flags().IntVar(&opts.Size, "size", 0, "random array size (5..30, default 15)")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 0, "seed for random array generation")

	return cmd
}

func runRun(opts *RunOptions, algorithm string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	engine, err := algo.New(algorithm)
	if err != nil {
		formatter.Error(ErrCodeBadInput, err.Error(), nil)
		return WrapExitError(ExitCommandError, "unknown algorithm", err)
	}

	ctrl := newController(engine, opts.arrayFlags)
	input, err := installArray(ctrl, opts.arrayFlags)
	if err != nil {
		formatter.Error(ErrCodeBadInput, err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid input", err)
	}

	formatter.VerboseLog("input array: %v", input)
	seq := ctrl.Sequence()

	if opts.Format == "json" {
		return formatter.Success(buildRunResult(algorithm, engine.Metadata().Name, input, seq))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s on %v (%d steps)\n\n", engine.Metadata().Name, input, len(seq))
	for i, st := range seq {
		fmt.Fprintf(cmd.OutOrStdout(), "[%4d] %-60s %v\n", i, st.Description, st.Snapshot)
	}
	return nil
}

func newController(engine algo.Engine, flags arrayFlags) *playback.Controller {
	if flags.Seed != 0 {
		return playback.NewController(engine, playback.WithSeed(flags.Seed))
	}
	return playback.NewController(engine)
}

func buildRunResult(algorithm, name string, input []int, seq step.Sequence) runResult {
	steps := make([]runStep, len(seq))
	for i, st := range seq {
		steps[i] = runStep{Index: i, Description: st.Description, Snapshot: st.Snapshot}
	}
	return runResult{
		Algorithm: algorithm,
		Name:      name,
		Input:     input,
		StepCount: len(seq),
		Steps:     steps,
	}
}
