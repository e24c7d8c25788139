package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/sortscope/internal/algo"
	"github.com/roach88/sortscope/internal/playback"
	"github.com/roach88/sortscope/internal/tui"
)

// PlayOptions holds flags for the play command.
type PlayOptions struct {
	*RootOptions
	arrayFlags
	Speed string
}

// NewPlayCommand creates the play command.
func NewPlayCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PlayOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "play <algorithm>",
		Short: "Watch a sort run in the interactive terminal visualizer",
		Long: `Watch a sort run in the interactive terminal visualizer.

Keys: space starts and pauses, f fast-forwards, r resets, the arrow
keys step through the sequence one snapshot at a time, [ and ] change
the speed preset, n draws a new random array and q quits.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Array, "array", "", "comma-separated input array (3..30 integers)")
	cmd.Flags().IntVar(&opts.Size, "size", 0, "random array size (5..30, default 15)")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 0, "seed for random array generation")
	cmd.Flags().StringVar(&opts.Speed, "speed", "medium", "initial speed preset (very-slow|slow|medium|fast|very-fast)")

	return cmd
}

func runPlay(opts *PlayOptions, algorithm string, cmd *cobra.Command) error {
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

	speed, err := playback.ParseSpeed(opts.Speed)
	if err != nil {
		formatter.Error(ErrCodeBadInput, err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid speed", err)
	}

	ctrlOpts := []playback.Option{playback.WithSpeed(speed)}
	if opts.Seed != 0 {
		ctrlOpts = append(ctrlOpts, playback.WithSeed(opts.Seed))
	}
	ctrl := playback.NewController(engine, ctrlOpts...)

	if _, err := installArray(ctrl, opts.arrayFlags); err != nil {
		formatter.Error(ErrCodeBadInput, err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid input", err)
	}

	if err := tui.Run(ctrl); err != nil {
		return WrapExitError(ExitFailure, "visualizer failed", err)
	}
	return nil
}
