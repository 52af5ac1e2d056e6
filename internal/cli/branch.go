package cli

import (
	"github.com/spf13/cobra"

	"gitgud.dev/gitgud/internal/actions"
	"gitgud.dev/gitgud/internal/cli/helpers"
	"gitgud.dev/gitgud/internal/runtime"
)

// newBranchCmd creates the branch command
func newBranchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "branch",
		Short: "Create a new branch and switch to it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.BranchAction(ctx, actions.BranchOptions{})
			})
		},
	}
}
