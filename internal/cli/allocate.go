package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/teamalloc/internal/factory"
	"github.com/mcoot/teamalloc/internal/roster"
)

// ErrValidationFailed is returned when an allocation breaks an invariant.
// The command still writes its outputs first.
var ErrValidationFailed = errors.New("allocation failed validation")

func newAllocateCmd() *cobra.Command {
	var (
		input     string
		outPath   string
		statsPath string
		seed      uint64
	)

	cmd := &cobra.Command{
		Use:   "allocate",
		Short: "Allocate a roster into teams",
		Long: `Allocate reads a roster CSV, places everyone into teams and writes the
assigned roster and the per-team stats table.

The command exits non-zero when the result fails validation, for example
when a pair could not be seated together.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			allocCfg, err := cfg.Allocation()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				allocCfg.Seed = seed
			}

			in, err := readInput(input)
			if err != nil {
				return err
			}

			app, err := factory.New(factory.Config{Logger: logger})
			if err != nil {
				return err
			}

			run, err := app.RunController.Run(cmd.Context(), in.Roster, allocCfg)
			if err != nil {
				return err
			}

			if err := writeFile(outPath, func(w io.Writer) error {
				return roster.WriteAssignment(w, in.Roster, run.Assignment)
			}); err != nil {
				return err
			}
			if err := writeFile(statsPath, func(w io.Writer) error {
				return roster.WriteStats(w, run.Stats)
			}); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(run)
			out.PrintMessage(fmt.Sprintf("Wrote %s and %s", outPath, statsPath))

			if !run.Report.Valid {
				return ErrValidationFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "compagnons.csv", "Roster CSV")
	cmd.Flags().StringVar(&outPath, "out", "teams_output.csv", "Assigned roster CSV to write")
	cmd.Flags().StringVar(&statsPath, "stats", "teams_stats.csv", "Team stats CSV to write")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Shuffle seed (default: from config)")

	return cmd
}

func readInput(path string) (*roster.Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	in, err := roster.Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return in, nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
