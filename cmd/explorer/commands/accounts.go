package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newAccountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Manage watched accounts",
		Args:  cobra.NoArgs,
		RunE:  c.listAccounts,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List watched accounts",
		Args:  cobra.NoArgs,
		RunE:  c.listAccounts,
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <address> [label]",
		Short: "Watch an account, or relabel a watched one",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(_ *cobra.Command, args []string) error {
			label := ""
			if len(args) > 1 {
				label = args[1]
			}
			return c.app.AddAccount(args[0], label)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove <address>",
		Short: "Stop watching an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return c.app.RemoveAccount(args[0])
		},
	})

	return cmd
}

func (c *CLI) listAccounts(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()
	accounts := c.app.Accounts()
	if len(accounts) == 0 {
		_, _ = fmt.Fprintln(w, "no watched accounts")
		return nil
	}
	for _, acc := range accounts {
		if acc.Label == "" {
			_, _ = fmt.Fprintln(w, acc.Address)
			continue
		}
		_, _ = fmt.Fprintf(w, "%s  %s\n", acc.Address, acc.Label)
	}
	return nil
}
