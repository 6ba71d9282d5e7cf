package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/checker/internal/ui/style"
)

func (c *CLI) newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the repository layout against the schedule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, schedule := courseFlags(cmd)
			if err := c.app.Validate(root, schedule); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), style.Success.Render(style.Check+" course layout matches the schedule"))
			return nil
		},
	}
}
