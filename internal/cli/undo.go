package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"gitgud.dev/gitgud/internal/actions"
	"gitgud.dev/gitgud/internal/cli/helpers"
	"gitgud.dev/gitgud/internal/runtime"
)

// newUndoCmd creates the undo command
func newUndoCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "undo [restore-parent-id]",
		Short: "Remove the most recent commit",
		Long: `Remove the most recent commit and move the head to its parent.

Undoing a merge commit discards one of its lineages from the head's point of
view, so it asks which parent to restore and confirms before proceeding. Pass
the parent's commit ID to skip the selection.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				opts := actions.UndoOptions{Force: force}
				if len(args) == 1 {
					parentID, err := strconv.Atoi(args[0])
					if err != nil {
						return err
					}
					opts.ParentID = &parentID
				}
				return actions.UndoAction(ctx, opts)
			})
		},
	}

	cmd.Flags().BoolVarP(&force, "yes", "y", false, "Skip confirmation prompt")

	return cmd
}
