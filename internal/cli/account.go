package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/numbergamble-go/internal/model"
)

func newAccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Account commands",
	}

	cmd.AddCommand(newAccountSetCmd())
	cmd.AddCommand(newAccountShowCmd())

	return cmd
}

func newAccountSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <address>",
		Short: "Set the default account address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := model.ParseAccountID(args[0])
			if err != nil {
				return err
			}

			if err := cfg.SaveAccount(string(account)); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Account set to %s", account))
			return nil
		},
	}
}

func newAccountShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current account address",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output)
			if cfg.Account == "" {
				out.PrintMessage("No account configured")
				return nil
			}
			out.PrintMessage(cfg.Account)
			return nil
		},
	}
}
