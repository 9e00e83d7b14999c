package cli

import (
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/mcoot/teamalloc/internal/factory"
	"github.com/mcoot/teamalloc/internal/roster"
)

// ErrNoAssignment is returned when a file to check has no Team column
var ErrNoAssignment = errors.New("input has no Team column")

// check validates an assigned roster file against the configured layout
func check(cmd *cobra.Command, input string) (*CheckResult, error) {
	allocCfg, err := cfg.Allocation()
	if err != nil {
		return nil, err
	}

	in, err := readInput(input)
	if err != nil {
		return nil, err
	}
	if in.Assignment == nil {
		return nil, ErrNoAssignment
	}

	app, err := factory.New(factory.Config{Logger: logger})
	if err != nil {
		return nil, err
	}

	report, stats, err := app.RunController.Check(cmd.Context(), in.Roster, allocCfg.Teams, in.Assignment)
	if err != nil {
		return nil, err
	}
	return &CheckResult{Report: report, Stats: stats}, nil
}

func newValidateCmd() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate an assigned roster",
		Long: `Validate checks an assigned roster CSV: everyone has a team, team sizes
match the layout and every pair shares a team.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := check(cmd, input)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(CheckResult{Report: result.Report})

			if !result.Report.Valid {
				return ErrValidationFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "teams_output.csv", "Assigned roster CSV")

	return cmd
}

func newStatsCmd() *cobra.Command {
	var (
		input     string
		statsPath string
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize the teams of an assigned roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := check(cmd, input)
			if err != nil {
				return err
			}

			if statsPath != "" {
				if err := writeFile(statsPath, func(w io.Writer) error {
					return roster.WriteStats(w, result.Stats)
				}); err != nil {
					return err
				}
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result.Stats)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "teams_output.csv", "Assigned roster CSV")
	cmd.Flags().StringVar(&statsPath, "stats", "", "Team stats CSV to write (optional)")

	return cmd
}
