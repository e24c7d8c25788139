package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/sortscope/internal/harness"
)

// ValidationResult holds validation results for one scenario file.
type ValidationResult struct {
	File  string `json:"file"`
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <scenario-file|dir>",
		Short: "Validate playback scenario files against the schema",
		Long: `Validate playback scenario yaml files against the CUE schema.

Checks structure only: algorithm identifiers, array bounds (3..30
values in 1..100), command and assertion shapes. Scenarios are not
executed.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
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

	results := make([]ValidationResult, 0, len(files))
	failures := 0
	for _, file := range files {
		formatter.VerboseLog("validating %s", file)
		result := ValidationResult{File: file, Valid: true}
		if _, err := harness.LoadScenario(file); err != nil {
			result.Valid = false
			result.Error = err.Error()
			failures++
		}
		results = append(results, result)
	}

	if opts.Format == "json" {
		if err := formatter.Success(results); err != nil {
			return err
		}
	} else {
		for _, result := range results {
			if result.Valid {
				fmt.Fprintf(cmd.OutOrStdout(), "ok   %s\n", result.File)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "FAIL %s\n     %s\n", result.File, result.Error)
			}
		}
	}

	if failures > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d scenario files invalid", failures, len(files)))
	}
	return nil
}

// collectScenarioFiles expands a path into the yaml files beneath it.
func collectScenarioFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("scenario path not found: %s", path)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(p, ".yaml") || strings.HasSuffix(p, ".yml") {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error scanning directory: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no scenario files found in %s", path)
	}
	return files, nil
}
