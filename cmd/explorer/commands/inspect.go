package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/explorer/internal/adapters/detector"
)

func (c *CLI) newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <kind> [payload]",
		Short: "Browse the derived nodes of a view interactively",
		Long: "Open an interactive inspector listing every derived node of a view.\n" +
			"Nodes update as fetches settle. Keys: j/k move, r refresh, n next page, q quit.\n" +
			"Without a terminal, or in CI, the settled report is printed instead.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := parseView(args)
			if err != nil {
				return err
			}
			opts, err := viewOptions(cmd)
			if err != nil {
				return err
			}
			flag, err := cmd.Flags().GetString("mode")
			if err != nil {
				return err
			}

			if detector.ResolveMode(c.detect(), flag) == detector.ModeText {
				report, err := c.app.View(cmd.Context(), view, opts)
				if err != nil {
					return err
				}
				printReport(cmd.OutOrStdout(), report)
				return nil
			}
			return c.app.Inspect(cmd.Context(), view, opts)
		},
	}
	cmd.Flags().StringP("mode", "m", "auto", "Presentation mode (auto, tui, text)")
	return cmd
}
