package cli

import (
	"github.com/spf13/cobra"

	"gitgud.dev/gitgud/internal/cli/helpers"
	"gitgud.dev/gitgud/internal/runtime"
	"gitgud.dev/gitgud/internal/tui"
)

// newPlayCmd creates the play command
func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Open the interactive commit graph sandbox",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				ctx.Splog.SetQuiet(true)
				defer ctx.Splog.SetQuiet(false)
				return tui.RunPlay(ctx.Engine)
			})
		},
	}
}
