package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func (c *CLI) newRecentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recent",
		Short: "List recently viewed transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			forget, err := cmd.Flags().GetBool("clear")
			if err != nil {
				return err
			}
			if forget {
				return c.app.ClearRecent()
			}

			w := cmd.OutOrStdout()
			recent := c.app.Recent()
			if len(recent) == 0 {
				_, _ = fmt.Fprintln(w, "no recently viewed transactions")
				return nil
			}
			for _, tx := range recent {
				_, _ = fmt.Fprintf(w, "%s  %-16s %-10s %s\n",
					tx.TxID, tx.TxType, tx.TxStatus, tx.ViewedAt.Format(time.RFC3339))
			}
			return nil
		},
	}
	cmd.Flags().Bool("clear", false, "Forget every recently viewed transaction")
	return cmd
}
