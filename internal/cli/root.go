package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "ngamble",
		Short: "CLI tool for the number gamble API",
		Long: `ngamble is a CLI tool for interacting with the number gamble JSON API.

It supports all API operations including creating and joining games,
continue/fold decisions, resolution, and real-time SSE event streaming.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load account from file if not provided via flag/env
			if err := cfg.LoadAccount(); err != nil {
				return err
			}

			// Create HTTP client
			client = NewClient(cfg.ServerURL, cfg.Account)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: NGAMBLE_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.Account, "account", cfg.Account, "Account address (env: NGAMBLE_ACCOUNT)")
	rootCmd.PersistentFlags().StringVar(&cfg.AccountFile, "account-file", cfg.AccountFile, "Account file path (env: NGAMBLE_ACCOUNT_FILE)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newAccountCmd())
	rootCmd.AddCommand(newGameCmd())
	rootCmd.AddCommand(newEventsCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
