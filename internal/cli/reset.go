package cli

import (
	"github.com/spf13/cobra"

	"gitgud.dev/gitgud/internal/actions"
	"gitgud.dev/gitgud/internal/cli/helpers"
	"gitgud.dev/gitgud/internal/runtime"
)

// newResetCmd creates the reset command
func newResetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Discard every commit and branch and start over",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.ResetAction(ctx, actions.ResetOptions{Force: force})
			})
		},
	}

	cmd.Flags().BoolVarP(&force, "yes", "y", false, "Skip confirmation prompt")

	return cmd
}
