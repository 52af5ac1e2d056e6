package actions

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gitgud.dev/gitgud/internal/engine"
	"gitgud.dev/gitgud/internal/errors"
	"gitgud.dev/gitgud/internal/runtime"
)

func newTestContext(t *testing.T) *runtime.Context {
	t.Helper()
	t.Setenv("GITGUD_TEST_NO_INTERACTIVE", "1")

	ctx := runtime.NewContext(engine.NewTreeWithCounter(engine.NewBranchCounter()))
	ctx.Splog.SetQuiet(true)
	return ctx
}

func TestCommitAction(t *testing.T) {
	ctx := newTestContext(t)

	require.NoError(t, CommitAction(ctx, CommitOptions{}))
	require.NoError(t, CommitAction(ctx, CommitOptions{}))
	require.Equal(t, 2, ctx.Engine.NumCommits())
	require.Equal(t, 1, ctx.Engine.Head().ID())

	t.Run("explicit parent", func(t *testing.T) {
		parent := 0
		err := CommitAction(ctx, CommitOptions{ParentID: &parent})
		require.ErrorIs(t, err, errors.ErrHeadNotLeaf, "commit 0 already has a child")
	})

	t.Run("unknown parent", func(t *testing.T) {
		parent := 99
		err := CommitAction(ctx, CommitOptions{ParentID: &parent})
		require.ErrorIs(t, err, errors.ErrCommitNotFound)
	})
}

func TestBranchAndCheckoutActions(t *testing.T) {
	ctx := newTestContext(t)

	require.NoError(t, CommitAction(ctx, CommitOptions{}))
	require.NoError(t, CommitAction(ctx, CommitOptions{}))

	require.NoError(t, BranchAction(ctx, BranchOptions{}))
	require.Equal(t, 1, ctx.Engine.CurrentBranch())

	// The fresh branch has no commits yet
	err := CheckoutAction(ctx, CheckoutOptions{BranchID: 1})
	require.ErrorIs(t, err, errors.ErrBranchNotFound)

	require.NoError(t, CheckoutCommitAction(ctx, CheckoutCommitOptions{CommitID: 0}))
	require.NoError(t, CommitAction(ctx, CommitOptions{}))
	require.Equal(t, 1, ctx.Engine.Head().BranchID())

	require.NoError(t, CheckoutAction(ctx, CheckoutOptions{BranchID: 0}))
	require.Equal(t, 1, ctx.Engine.Head().ID())
}

func TestMergeAction(t *testing.T) {
	ctx := newTestContext(t)

	require.NoError(t, CommitAction(ctx, CommitOptions{}))
	require.NoError(t, CommitAction(ctx, CommitOptions{}))
	require.NoError(t, BranchAction(ctx, BranchOptions{}))
	require.NoError(t, CheckoutCommitAction(ctx, CheckoutCommitOptions{CommitID: 0}))
	require.NoError(t, CommitAction(ctx, CommitOptions{}))
	require.NoError(t, CheckoutAction(ctx, CheckoutOptions{BranchID: 0}))

	require.NoError(t, MergeAction(ctx, MergeOptions{BranchID: 1}))

	merge := ctx.Engine.Head()
	require.True(t, merge.IsMergeCommit())
	require.Equal(t, 3, merge.ID())
	require.Equal(t, 0, merge.BranchID())

	t.Run("explicit commits", func(t *testing.T) {
		parent, other := 3, 2
		require.NoError(t, MergeAction(ctx, MergeOptions{ParentID: &parent, OtherID: &other}))
		require.Equal(t, 4, ctx.Engine.Head().ID())
	})

	t.Run("unknown branch", func(t *testing.T) {
		err := MergeAction(ctx, MergeOptions{BranchID: 42})
		require.ErrorIs(t, err, errors.ErrBranchNotFound)
	})
}

func TestUndoAction(t *testing.T) {
	ctx := newTestContext(t)

	require.NoError(t, CommitAction(ctx, CommitOptions{}))
	require.NoError(t, CommitAction(ctx, CommitOptions{}))

	require.NoError(t, UndoAction(ctx, UndoOptions{}))
	require.Equal(t, 1, ctx.Engine.NumCommits())
	require.Equal(t, 0, ctx.Engine.Head().ID())

	t.Run("empty history is a no-op", func(t *testing.T) {
		require.NoError(t, UndoAction(ctx, UndoOptions{}))
		require.Equal(t, 1, ctx.Engine.NumCommits())
	})
}

func TestUndoActionMerge(t *testing.T) {
	ctx := newTestContext(t)

	require.NoError(t, CommitAction(ctx, CommitOptions{}))
	require.NoError(t, CommitAction(ctx, CommitOptions{}))
	require.NoError(t, BranchAction(ctx, BranchOptions{}))
	require.NoError(t, CheckoutCommitAction(ctx, CheckoutCommitOptions{CommitID: 0}))
	require.NoError(t, CommitAction(ctx, CommitOptions{}))
	require.NoError(t, CheckoutAction(ctx, CheckoutOptions{BranchID: 0}))
	require.NoError(t, MergeAction(ctx, MergeOptions{BranchID: 1}))

	t.Run("prompts are disabled in tests", func(t *testing.T) {
		parent := 1
		err := UndoAction(ctx, UndoOptions{ParentID: &parent})
		require.Error(t, err, "confirmation prompt cannot run non-interactively")
		require.Equal(t, 4, ctx.Engine.NumCommits(), "tree is unchanged on canceled undo")
	})

	t.Run("forced with explicit parent", func(t *testing.T) {
		parent := 1
		require.NoError(t, UndoAction(ctx, UndoOptions{ParentID: &parent, Force: true}))
		require.Equal(t, 3, ctx.Engine.NumCommits())
		require.Equal(t, 1, ctx.Engine.Head().ID())
	})
}

func TestResetAction(t *testing.T) {
	ctx := newTestContext(t)

	require.NoError(t, CommitAction(ctx, CommitOptions{}))
	require.NoError(t, CommitAction(ctx, CommitOptions{}))

	require.NoError(t, ResetAction(ctx, ResetOptions{Force: true}))
	require.Equal(t, 0, ctx.Engine.NumCommits())
	require.Nil(t, ctx.Engine.Head())

	t.Run("empty tree skips the prompt", func(t *testing.T) {
		require.NoError(t, ResetAction(ctx, ResetOptions{}))
	})
}

func TestLogAction(t *testing.T) {
	ctx := newTestContext(t)

	require.NoError(t, LogAction(ctx, LogOptions{Plain: true}))

	require.NoError(t, CommitAction(ctx, CommitOptions{}))
	require.NoError(t, CommitAction(ctx, CommitOptions{}))
	require.NoError(t, LogAction(ctx, LogOptions{Plain: true}))
	require.NoError(t, LogAction(ctx, LogOptions{Plain: true, List: true, Reverse: true}))
}
