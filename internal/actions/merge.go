package actions

import (
	"fmt"

	"gitgud.dev/gitgud/internal/runtime"
)

// MergeOptions contains options for the merge command
type MergeOptions struct {
	// BranchID is the branch to merge into the head.
	BranchID int
	// ParentID and OtherID name explicit commits to merge instead of the
	// head and a branch tip.
	ParentID *int
	OtherID  *int
}

// MergeAction creates a merge commit. With explicit parent and other commit
// IDs it merges those; otherwise it merges the given branch into the head.
func MergeAction(ctx *runtime.Context, opts MergeOptions) error {
	eng := ctx.Engine
	splog := ctx.Splog

	if opts.ParentID != nil && opts.OtherID != nil {
		c, err := eng.MergeCommits(*opts.ParentID, *opts.OtherID)
		if err != nil {
			return fmt.Errorf("failed to merge commits %d and %d: %w", *opts.ParentID, *opts.OtherID, err)
		}
		splog.Info("Created merge commit %d on branch %d", c.ID(), c.BranchID())
		return nil
	}

	c, err := eng.Merge(opts.BranchID)
	if err != nil {
		return fmt.Errorf("failed to merge branch %d: %w", opts.BranchID, err)
	}

	splog.Info("Merged branch %d into branch %d as commit %d", opts.BranchID, c.BranchID(), c.ID())
	return nil
}
