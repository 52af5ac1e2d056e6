package actions

import (
	"gitgud.dev/gitgud/internal/runtime"
)

// BranchOptions contains options for the branch command
type BranchOptions struct{}

// BranchAction allocates a new branch and makes it current. The branch has no
// commits until the next commit lands on it.
func BranchAction(ctx *runtime.Context, _ BranchOptions) error {
	branchID := ctx.Engine.Branch()
	ctx.Splog.Info("Created branch %d and switched to it", branchID)
	if head := ctx.Engine.Head(); head != nil {
		ctx.Splog.Tip("The next commit forks from commit %d.", head.ID())
	}
	return nil
}
