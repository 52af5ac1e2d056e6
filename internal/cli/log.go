package cli

import (
	"github.com/spf13/cobra"

	"gitgud.dev/gitgud/internal/actions"
	"gitgud.dev/gitgud/internal/cli/helpers"
	"gitgud.dev/gitgud/internal/runtime"
)

// newLogCmd creates the log command
func newLogCmd() *cobra.Command {
	var (
		reverse bool
		list    bool
		plain   bool
	)

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Draw the commit graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.LogAction(ctx, actions.LogOptions{
					Reverse: reverse,
					List:    list,
					Plain:   plain,
				})
			})
		},
	}

	cmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "Oldest commit first")
	cmd.Flags().BoolVarP(&list, "list", "l", false, "Flat list instead of a graph")
	cmd.Flags().BoolVar(&plain, "plain", false, "Disable colored output")

	return cmd
}
