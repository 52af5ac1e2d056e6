// Package helpers provides shared plumbing for CLI commands.
package helpers

import (
	"github.com/spf13/cobra"

	"gitgud.dev/gitgud/internal/runtime"
)

// Run is a helper that provides a runtime context to a command's execution function
func Run(_ *cobra.Command, fn func(ctx *runtime.Context) error) error {
	ctx, err := runtime.GetContext()
	if err != nil {
		return err
	}
	defer func() { _ = ctx.Close() }()
	return fn(ctx)
}
