package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/teamalloc/internal/api/request"
	"github.com/mcoot/teamalloc/internal/api/response"
)

func newRunsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Manage allocation runs on a teamalloc server",
	}

	cmd.AddCommand(newRunsCreateCmd())
	cmd.AddCommand(newRunsListCmd())
	cmd.AddCommand(newRunsGetCmd())
	cmd.AddCommand(newRunsDeleteCmd())

	return cmd
}

func newRunsCreateCmd() *cobra.Command {
	var (
		input string
		seed  uint64
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Allocate a roster CSV on the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readInput(input)
			if err != nil {
				return err
			}

			var req request.CreateAllocationRequest
			for _, p := range in.Roster.People() {
				req.People = append(req.People, request.Person{
					ID:        string(p.ID),
					GuestID:   string(p.GuestID),
					Division:  p.Division,
					Compagnon: p.IsCompagnon,
				})
			}
			if cmd.Flags().Changed("seed") {
				req.Seed = &seed
			}
			if cfg.ConfigPath != "" {
				allocCfg, err := cfg.Allocation()
				if err != nil {
					return err
				}
				req.Layout = &allocCfg.Teams
				if req.Seed == nil {
					req.Seed = &allocCfg.Seed
				}
			}

			var result response.Run
			if err := client.Post(cmd.Context(), "/api/v1/allocations", req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "compagnons.csv", "Roster CSV")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Shuffle seed (default: server config)")

	return cmd
}

func newRunsListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.RunList
			path := fmt.Sprintf("/api/v1/allocations?limit=%d", limit)
			if err := client.Get(cmd.Context(), path, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs")

	return cmd
}

func newRunsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Run
			if err := client.Get(cmd.Context(), "/api/v1/allocations/"+args[0], &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newRunsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(cmd.Context(), "/api/v1/allocations/"+args[0]); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).PrintMessage("Deleted run " + args[0])
			return nil
		},
	}
}
