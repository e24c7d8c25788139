package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/sortscope/internal/algo"
	"github.com/roach88/sortscope/internal/trace"
)

// TraceOptions holds flags for the trace command.
type TraceOptions struct {
	*RootOptions
	arrayFlags
	Token string
}

// NewTraceCommand creates the trace command.
func NewTraceCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TraceOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "trace <algorithm>",
		Short: "Emit the canonical JSON trace of one sort run",
		Long: `Emit the canonical JSON trace of one sort run.

Canonical traces are byte-deterministic: the same algorithm, input and
run token always produce identical output. Pass --token to pin the run
token; otherwise a fresh UUIDv7 is generated.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrace(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Array, "array", "", "comma-separated input array (3..30 integers)")
	cmd.Flags().IntVar(&opts.Size, "size", 0, "random array size (5..30, default 15)")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 0, "seed for random array generation")
	cmd.Flags().StringVar(&opts.Token, "token", "", "fixed run token (default: fresh UUIDv7)")

	return cmd
}

func runTrace(opts *TraceOptions, algorithm string, cmd *cobra.Command) error {
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

	token := opts.Token
	if token == "" {
		token = trace.UUIDv7Generator{}.Generate()
	}

	snapshot := trace.NewSnapshot(token, algorithm, input, ctrl.Sequence())
	data, err := snapshot.MarshalCanonical()
	if err != nil {
		formatter.Error(ErrCodeInternal, err.Error(), nil)
		return WrapExitError(ExitFailure, "trace serialization failed", err)
	}

	// Canonical bytes go out verbatim regardless of --format; wrapping
	// them in the response envelope would destroy canonical form.
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", data)
	return nil
}
