package cli

import (
	"github.com/spf13/cobra"

	"gitgud.dev/gitgud/internal/actions"
	"gitgud.dev/gitgud/internal/demo"
	"gitgud.dev/gitgud/internal/runtime"
)

// newDemoCmd creates the demo command
func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Show the commit graph of a pre-built example history",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx := runtime.NewContext(demo.NewDemoEngine())
			defer func() { _ = ctx.Close() }()
			return actions.LogAction(ctx, actions.LogOptions{})
		},
	}
}
