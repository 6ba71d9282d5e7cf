// Package commands implements the CLI commands for the checker tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/checker/internal/build"
	"go.trai.ch/checker/internal/core/domain"
)

// CLI represents the command line interface for checker.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Validate(root, schedulePath string) error
	DetectChanges(root, schedulePath string, strategy domain.DetectionStrategy) ([]*domain.Task, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "checker",
		Short:         "Reconcile a course repository against its grading schedule",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.PersistentFlags().StringP("root", "r", ".", "Path to the course repository root")
	rootCmd.PersistentFlags().StringP("schedule", "s", ".deadlines.yml", "Path to the schedule file")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newValidateCmd())
	rootCmd.AddCommand(c.newDetectCmd())
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

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// courseFlags reads the persistent repository flags off a command.
func courseFlags(cmd *cobra.Command) (root, schedule string) {
	root, _ = cmd.Flags().GetString("root")
	schedule, _ = cmd.Flags().GetString("schedule")
	return root, schedule
}
