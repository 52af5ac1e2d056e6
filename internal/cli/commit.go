package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"gitgud.dev/gitgud/internal/actions"
	"gitgud.dev/gitgud/internal/cli/helpers"
	"gitgud.dev/gitgud/internal/runtime"
)

// newCommitCmd creates the commit command
func newCommitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "commit [parent-id]",
		Short: "Create a commit on top of the head, or of an explicit parent",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				opts := actions.CommitOptions{}
				if len(args) == 1 {
					parentID, err := strconv.Atoi(args[0])
					if err != nil {
						return err
					}
					opts.ParentID = &parentID
				}
				return actions.CommitAction(ctx, opts)
			})
		},
	}
}
