package actions

import (
	stderrors "errors"
	"fmt"

	"gitgud.dev/gitgud/internal/engine"
	"gitgud.dev/gitgud/internal/errors"
	"gitgud.dev/gitgud/internal/runtime"
)

// CommitOptions contains options for the commit command
type CommitOptions struct {
	// ParentID is the explicit parent to commit onto. When nil, the new
	// commit extends the head.
	ParentID *int
}

// CommitAction creates a new commit
func CommitAction(ctx *runtime.Context, opts CommitOptions) error {
	eng := ctx.Engine
	splog := ctx.Splog

	var (
		c   *engine.Commit
		err error
	)
	if opts.ParentID != nil {
		c, err = eng.AddCommitTo(*opts.ParentID)
	} else {
		c, err = eng.AddCommit()
	}
	if err != nil {
		if stderrors.Is(err, errors.ErrHeadNotLeaf) {
			splog.Tip("Use 'branch' to fork a new branch before committing here.")
		}
		return fmt.Errorf("failed to create commit: %w", err)
	}

	splog.Info("Created commit %d on branch %d", c.ID(), c.BranchID())
	return nil
}
