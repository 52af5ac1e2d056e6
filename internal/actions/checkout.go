package actions

import (
	"fmt"

	"gitgud.dev/gitgud/internal/runtime"
)

// CheckoutOptions contains options for the checkout command
type CheckoutOptions struct {
	BranchID int
}

// CheckoutAction moves the head to the latest commit on a branch
func CheckoutAction(ctx *runtime.Context, opts CheckoutOptions) error {
	if err := ctx.Engine.Checkout(opts.BranchID); err != nil {
		return fmt.Errorf("failed to checkout branch %d: %w", opts.BranchID, err)
	}

	head := ctx.Engine.Head()
	ctx.Splog.Info("Switched to branch %d, head is commit %d", opts.BranchID, head.ID())
	return nil
}

// CheckoutCommitOptions contains options for the checkout-commit command
type CheckoutCommitOptions struct {
	CommitID int
}

// CheckoutCommitAction moves the head to a specific commit
func CheckoutCommitAction(ctx *runtime.Context, opts CheckoutCommitOptions) error {
	if err := ctx.Engine.CheckoutCommit(opts.CommitID); err != nil {
		return fmt.Errorf("failed to checkout commit %d: %w", opts.CommitID, err)
	}

	ctx.Splog.Info("Head is now commit %d on branch %d", opts.CommitID, ctx.Engine.CurrentBranch())
	return nil
}
