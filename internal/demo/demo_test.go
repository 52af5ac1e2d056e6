package demo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDemoEngine(t *testing.T) {
	eng := NewDemoEngine()

	// 8 IDs issued, one undone
	require.Equal(t, 7, eng.NumCommits())
	require.Equal(t, 2, eng.NumBranches())

	head := eng.Head()
	require.NotNil(t, head)
	require.Equal(t, 7, head.ID(), "undone commit's ID is never reused")
	require.Equal(t, 0, head.BranchID())

	merge, err := eng.Commit(5)
	require.NoError(t, err)
	require.True(t, merge.IsMergeCommit())
}

func TestDemoEngineIsDeterministic(t *testing.T) {
	a := NewDemoEngine()
	b := NewDemoEngine()

	require.Equal(t, a.AllCommitIDs(), b.AllCommitIDs())
	require.Equal(t, a.AllBranchIDs(), b.AllBranchIDs())
	require.Equal(t, a.Head().ID(), b.Head().ID())
}
