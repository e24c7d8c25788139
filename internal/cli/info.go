package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/sortscope/internal/algo"
)

// algorithmInfo is the JSON shape of one engine's metadata.
type algorithmInfo struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	TimeComplexity  string `json:"time_complexity"`
	SpaceComplexity string `json:"space_complexity"`
	BestCase        string `json:"best_case"`
	WorstCase       string `json:"worst_case"`
	Stable          bool   `json:"stable"`
}

// NewInfoCommand creates the info command.
func NewInfoCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info [algorithm]",
		Short: "Show algorithm metadata",
		Long: `Show the descriptive constants of one algorithm, or list all
registered algorithms when no argument is given.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return runInfoOne(rootOpts, args[0], cmd)
			}
			return runInfoAll(rootOpts, cmd)
		},
	}
	return cmd
}

func runInfoAll(opts *RootOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}

	infos := make([]algorithmInfo, 0, len(algo.IDs()))
	for _, id := range algo.IDs() {
		engine, err := algo.New(id)
		if err != nil {
			return WrapExitError(ExitFailure, "registry inconsistency", err)
		}
		infos = append(infos, buildInfo(id, engine))
	}

	if opts.Format == "json" {
		return formatter.Success(infos)
	}

	for _, info := range infos {
		fmt.Fprintf(cmd.OutOrStdout(), "%-15s %s (stable: %s)\n", info.ID, info.Name, yesNo(info.Stable))
	}
	return nil
}

func runInfoOne(opts *RootOptions, id string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}

	engine, err := algo.New(id)
	if err != nil {
		formatter.Error(ErrCodeBadInput, err.Error(), nil)
		return WrapExitError(ExitCommandError, "unknown algorithm", err)
	}

	info := buildInfo(id, engine)
	if opts.Format == "json" {
		return formatter.Success(info)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s)\n", info.Name, info.ID)
	fmt.Fprintf(out, "  Stable:            %s\n", yesNo(info.Stable))
	fmt.Fprintf(out, "  Time complexity:   %s\n", info.TimeComplexity)
	fmt.Fprintf(out, "  Space complexity:  %s\n", info.SpaceComplexity)
	fmt.Fprintf(out, "  Best case:         %s\n", info.BestCase)
	fmt.Fprintf(out, "  Worst case:        %s\n", info.WorstCase)
	fmt.Fprintf(out, "\n%s\n", wrapText(info.Description, 72))
	return nil
}

func buildInfo(id string, engine algo.Engine) algorithmInfo {
	md := engine.Metadata()
	return algorithmInfo{
		ID:              id,
		Name:            md.Name,
		Description:     md.Description,
		TimeComplexity:  md.TimeComplexity,
		SpaceComplexity: md.SpaceComplexity,
		BestCase:        md.BestCase,
		WorstCase:       md.WorstCase,
		Stable:          md.Stable,
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// wrapText folds a description paragraph at the given width.
func wrapText(text string, width int) string {
	words := strings.Fields(text)
	var lines []string
	var line strings.Builder
	for _, word := range words {
		if line.Len() > 0 && line.Len()+1+len(word) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}
