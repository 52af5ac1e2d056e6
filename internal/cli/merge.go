package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"gitgud.dev/gitgud/internal/actions"
	"gitgud.dev/gitgud/internal/cli/helpers"
	"gitgud.dev/gitgud/internal/runtime"
)

// newMergeCmd creates the merge command
func newMergeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "merge <branch-id> | merge <parent-id> <other-id>",
		Short: "Merge a branch into the head, or two explicit commits",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				first, err := strconv.Atoi(args[0])
				if err != nil {
					return err
				}

				if len(args) == 2 {
					other, err := strconv.Atoi(args[1])
					if err != nil {
						return err
					}
					return actions.MergeAction(ctx, actions.MergeOptions{ParentID: &first, OtherID: &other})
				}

				return actions.MergeAction(ctx, actions.MergeOptions{BranchID: first})
			})
		},
	}
}
