package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"gitgud.dev/gitgud/internal/engine"
)

func pressKey(t *testing.T, m PlayModel, r rune) PlayModel {
	t.Helper()
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	model, ok := updated.(PlayModel)
	require.True(t, ok)
	return model
}

func TestPlayModelCommitAndUndo(t *testing.T) {
	eng := engine.NewTreeWithCounter(engine.NewBranchCounter())
	m := NewPlayModel(eng)

	m = pressKey(t, m, 'c')
	m = pressKey(t, m, 'c')
	require.Equal(t, 2, eng.NumCommits())
	require.Equal(t, 1, eng.Head().ID())

	m = pressKey(t, m, 'u')
	require.Equal(t, 1, eng.NumCommits())
	require.Contains(t, m.status, "head is commit 0")
}

func TestPlayModelBranchAndMerge(t *testing.T) {
	eng := engine.NewTreeWithCounter(engine.NewBranchCounter())
	m := NewPlayModel(eng)

	m = pressKey(t, m, 'c')
	m = pressKey(t, m, 'c')

	// Fork at the root and land a commit on the new branch
	m = pressKey(t, m, 'b')
	m = pressKey(t, m, 'h')
	m = pressKey(t, m, 'c')
	require.Equal(t, 1, eng.Head().BranchID())

	// Merge the trunk into the fork
	m = pressKey(t, m, 'm')

	head := eng.Head()
	require.True(t, head.IsMergeCommit())
	require.Contains(t, m.status, "Merged branch")

	// Undoing a merge in the sandbox restores the first parent
	m = pressKey(t, m, 'u')
	require.False(t, eng.Head().IsMergeCommit())
	require.Contains(t, m.status, "Undid merge")
}

func TestPlayModelQuit(t *testing.T) {
	eng := engine.NewTreeWithCounter(engine.NewBranchCounter())
	m := NewPlayModel(eng)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	require.Empty(t, updated.(PlayModel).View())
}
