package actions

import (
	stderrors "errors"
	"fmt"

	"gitgud.dev/gitgud/internal/errors"
	"gitgud.dev/gitgud/internal/runtime"
	"gitgud.dev/gitgud/internal/tui"
)

// UndoOptions contains options for the undo command
type UndoOptions struct {
	// ParentID picks which parent survives when undoing a merge commit
	// (skips the interactive selection).
	ParentID *int
	// Force skips the confirmation prompt when undoing a merge commit.
	Force bool
}

// UndoAction removes the most recent commit. Undoing a merge commit discards
// one of its lineages from the head's perspective, so it asks which parent to
// restore and confirms before proceeding.
func UndoAction(ctx *runtime.Context, opts UndoOptions) error {
	eng := ctx.Engine
	splog := ctx.Splog

	before := eng.NumCommits()

	err := eng.Undo()
	if err == nil {
		if eng.NumCommits() == before {
			splog.Info("Nothing to undo.")
			return nil
		}
		splog.Info("Removed the last commit, head is now commit %d", eng.Head().ID())
		return nil
	}

	if !stderrors.Is(err, errors.ErrMergeUndo) {
		return fmt.Errorf("failed to undo: %w", err)
	}

	// Undo only rejects the newest commit, so that is the merge in question.
	commits := eng.AllCommits()
	merge := commits[len(commits)-1]

	parentID, err := pickRestoreParent(ctx, merge.ID(), opts)
	if err != nil {
		return err
	}

	if !opts.Force {
		confirmed, err := tui.PromptConfirm(
			fmt.Sprintf("Undo merge commit %d and restore the head to commit %d?", merge.ID(), parentID),
			false,
		)
		if err != nil {
			return err
		}
		if !confirmed {
			splog.Info("Undo canceled.")
			return nil
		}
	}

	if err := eng.UndoMerge(parentID); err != nil {
		return fmt.Errorf("failed to undo merge commit %d: %w", merge.ID(), err)
	}

	splog.Info("Removed merge commit %d, head is now commit %d", merge.ID(), eng.Head().ID())
	return nil
}

func pickRestoreParent(ctx *runtime.Context, mergeID int, opts UndoOptions) (int, error) {
	if opts.ParentID != nil {
		return *opts.ParentID, nil
	}

	merge, err := ctx.Engine.Commit(mergeID)
	if err != nil {
		return 0, err
	}

	parents := merge.Parents()
	options := make([]tui.SelectOption, len(parents))
	for i, p := range parents {
		options[i] = tui.SelectOption{
			Label: fmt.Sprintf("commit %d (branch %d)", p.ID(), p.BranchID()),
			Value: p.ID(),
		}
	}

	return tui.PromptSelect("Select the commit to restore as head:", options)
}
