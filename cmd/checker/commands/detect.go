package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/checker/internal/core/domain"
	"go.trai.ch/checker/internal/ui/style"
)

func (c *CLI) newDetectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect",
		Short: "List enabled tasks impacted by the latest change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			name, _ := cmd.Flags().GetString("strategy")
			strategy, err := domain.ParseDetectionStrategy(name)
			if err != nil {
				return err
			}

			root, schedule := courseFlags(cmd)
			tasks, err := c.app.DetectChanges(root, schedule, strategy)
			if err != nil {
				return err
			}

			if len(tasks) == 0 {
				// Keep stdout clean for pipeline consumers.
				fmt.Fprintln(cmd.ErrOrStderr(), style.Muted.Render("no impacted tasks"))
				return nil
			}
			for _, task := range tasks {
				fmt.Fprintln(cmd.OutOrStdout(), task.Name)
			}
			return nil
		},
	}
	cmd.Flags().String("strategy", string(domain.DetectByLastCommitChanges),
		"Detection strategy: branch-name, commit-message or last-commit-changes")
	return cmd
}
