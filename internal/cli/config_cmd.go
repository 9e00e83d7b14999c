package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/teamalloc/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Allocation config commands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective allocation config",
		RunE: func(cmd *cobra.Command, args []string) error {
			allocCfg, err := cfg.Allocation()
			if err != nil {
				return err
			}

			if cfg.Output == OutputJSON {
				NewOutput(cfg.Output, cmd.OutOrStdout()).Print(allocCfg)
				return nil
			}

			data, err := allocCfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "Write a commented example config",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_, err := cmd.OutOrStdout().Write([]byte(config.Example()))
				return err
			}
			return os.WriteFile(args[0], []byte(config.Example()), 0o644)
		},
	})

	return cmd
}
