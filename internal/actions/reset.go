package actions

import (
	"gitgud.dev/gitgud/internal/runtime"
	"gitgud.dev/gitgud/internal/tui"
)

// ResetOptions contains options for the reset command
type ResetOptions struct {
	Force bool // Skip the confirmation prompt
}

// ResetAction discards every commit and branch and starts over
func ResetAction(ctx *runtime.Context, opts ResetOptions) error {
	eng := ctx.Engine
	splog := ctx.Splog

	if eng.NumCommits() == 0 {
		splog.Info("Tree is already empty.")
		eng.Reset()
		return nil
	}

	if !opts.Force {
		confirmed, err := tui.PromptConfirm("This discards all commits and branches. Continue?", false)
		if err != nil {
			return err
		}
		if !confirmed {
			splog.Info("Reset canceled.")
			return nil
		}
	}

	eng.Reset()
	splog.Info("Tree reset. Next commit starts a fresh history on branch %d.", eng.CurrentBranch())
	return nil
}
