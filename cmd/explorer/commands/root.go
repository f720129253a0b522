// Package commands implements the CLI commands for the explorer.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/explorer/internal/adapters/detector"
	"go.trai.ch/explorer/internal/app"
	"go.trai.ch/explorer/internal/build"
)

// CLI represents the command line interface for explorer.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
	detect  func() detector.Mode
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "explorer",
		Short:         "Inspect what a Stacks explorer page has in view",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().IntP("limit", "l", 0, "Account transaction page size (defaults to view.pageSize)")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
		detect:  detector.DetectEnvironment,
	}

	rootCmd.AddCommand(c.newViewCmd())
	rootCmd.AddCommand(c.newInspectCmd())
	rootCmd.AddCommand(c.newRecentCmd())
	rootCmd.AddCommand(c.newAccountsCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}
