package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/teamalloc/pkg/logging"
)

var (
	cfg    *Config
	client *Client
	logger *slog.Logger
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "teamalloc",
		Short: "Balanced team allocation for event rosters",
		Long: `teamalloc splits a roster of people into fixed-size teams.

Pairs (an inviter and their guest) are kept together and spread evenly
across teams; everyone else is placed to balance divisions and compagnon
membership. Input and output are CSV files with the columns
Id, GuestId, Division, IsCompagnons and Team.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch cfg.Output {
			case OutputText, OutputJSON:
			default:
				return fmt.Errorf("invalid output format %q: must be text or json", cfg.Output)
			}

			logger = logging.New(cmd.ErrOrStderr(), cfg.LogLevel())
			client = NewClient(cfg.ServerURL)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ConfigPath, "config", cfg.ConfigPath, "Allocation config YAML (env: TEAMALLOC_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL for remote commands (env: TEAMALLOC_SERVER)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newAllocateCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newRunsCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
