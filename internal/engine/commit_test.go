package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gitgud.dev/gitgud/internal/errors"
)

func TestCommitSelfReference(t *testing.T) {
	c := newCommit(0, 7)

	err := c.AddParent(c)
	require.ErrorIs(t, err, errors.ErrSelfReference)

	err = c.AddChild(c)
	require.ErrorIs(t, err, errors.ErrSelfReference)

	var selfErr *errors.SelfReferenceError
	require.ErrorAs(t, err, &selfErr)
	require.Equal(t, 7, selfErr.CommitID)
}

func TestCommitLinksAreOneSided(t *testing.T) {
	parent := newCommit(0, 0)
	child := newCommit(0, 1)

	require.NoError(t, child.AddParent(parent))

	// The reverse edge is the caller's job.
	require.Equal(t, 1, child.NumParents())
	require.Equal(t, 0, parent.NumChildren())
}

func TestCommitRemoveParent(t *testing.T) {
	t.Run("removes first match", func(t *testing.T) {
		parent := newCommit(0, 0)
		child := newCommit(0, 1)
		require.NoError(t, child.AddParent(parent))

		require.NoError(t, child.RemoveParent(0))
		require.Equal(t, 0, child.NumParents())
	})

	t.Run("fails when no such parent", func(t *testing.T) {
		child := newCommit(0, 1)
		err := child.RemoveParent(42)
		require.ErrorIs(t, err, errors.ErrCommitNotFound)
	})
}

func TestCommitRemoveChild(t *testing.T) {
	t.Run("removes first match", func(t *testing.T) {
		parent := newCommit(0, 0)
		child := newCommit(0, 1)
		require.NoError(t, parent.AddChild(child))

		require.NoError(t, parent.RemoveChild(1))
		require.Equal(t, 0, parent.NumChildren())
	})

	t.Run("fails when no such child", func(t *testing.T) {
		parent := newCommit(0, 0)
		err := parent.RemoveChild(42)
		require.ErrorIs(t, err, errors.ErrCommitNotFound)
	})
}

func TestCommitIsMergeCommit(t *testing.T) {
	c := newCommit(0, 2)
	require.False(t, c.IsMergeCommit())

	require.NoError(t, c.AddParent(newCommit(0, 0)))
	require.False(t, c.IsMergeCommit())

	require.NoError(t, c.AddParent(newCommit(1, 1)))
	require.True(t, c.IsMergeCommit())
}

func TestCommitIsNewBranch(t *testing.T) {
	t.Run("root commit starts its branch", func(t *testing.T) {
		c := newCommit(0, 0)
		require.True(t, c.IsNewBranch())
	})

	t.Run("first commit on another branch", func(t *testing.T) {
		c := newCommit(1, 1)
		require.NoError(t, c.AddParent(newCommit(0, 0)))
		require.True(t, c.IsNewBranch())
	})

	t.Run("commit continuing its branch", func(t *testing.T) {
		c := newCommit(0, 1)
		require.NoError(t, c.AddParent(newCommit(0, 0)))
		require.False(t, c.IsNewBranch())
	})
}
