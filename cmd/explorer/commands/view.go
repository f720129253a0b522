package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/explorer/internal/app"
	"go.trai.ch/explorer/internal/core/domain"
	"go.trai.ch/explorer/internal/tui"
	"go.trai.ch/explorer/internal/ui/output"
	"go.trai.ch/explorer/internal/ui/style"
	"go.trai.ch/zerr"
)

func (c *CLI) newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <kind> [payload]",
		Short: "Load a view and print every derived node",
		Long: "Load a view and print every derived node once all fetches settled.\n" +
			"Kinds: home, tx, contract, address, transactions, blocks, block.",
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
			asJSON, err := cmd.Flags().GetBool("json")
			if err != nil {
				return err
			}

			report, err := c.app.View(cmd.Context(), view, opts)
			if err != nil {
				return err
			}

			if asJSON {
				data, err := report.JSON()
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			printReport(cmd.OutOrStdout(), report)
			return nil
		},
	}
	cmd.Flags().Bool("json", false, "Print the report as JSON")
	return cmd
}

func parseView(args []string) (domain.View, error) {
	payload := ""
	if len(args) > 1 {
		payload = args[1]
	}
	return domain.ParseView(args[0], payload)
}

func viewOptions(cmd *cobra.Command) (app.ViewOptions, error) {
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return app.ViewOptions{}, err
	}
	if limit < 0 {
		return app.ViewOptions{}, zerr.With(domain.ErrInvalidPageSize, "limit", limit)
	}
	return app.ViewOptions{PageSize: limit}, nil
}

func printReport(w io.Writer, report *app.Report) {
	out := output.New(w)
	header := string(report.Kind)
	if report.Payload != "" {
		header += " " + report.Payload
	}
	_, _ = fmt.Fprintln(w, out.String(header).Bold())

	for _, n := range report.Nodes {
		mark := statusMark(n.Status)
		line := fmt.Sprintf("  %s %s", out.String(mark.Icon).Foreground(out.Color(string(mark.Color))), n.Label)
		if summary := n.Summary(); summary != "" {
			line += "  " + out.String(summary).Faint().String()
		}
		_, _ = fmt.Fprintln(w, line)
	}
}

func statusMark(s tui.Status) style.Mark {
	switch s {
	case tui.StatusResolved:
		return style.Resolved
	case tui.StatusFailed:
		return style.Failed
	case tui.StatusAbsent:
		return style.Absent
	default:
		return style.Absent
	}
}
