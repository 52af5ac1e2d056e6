package tui

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitgud.dev/gitgud/internal/engine"
	"gitgud.dev/gitgud/internal/errors"
	"gitgud.dev/gitgud/internal/tui/components/graph"
	"gitgud.dev/gitgud/internal/tui/style"
)

// playKeyMap defines the key bindings for the play TUI
type playKeyMap struct {
	Commit   key.Binding
	Branch   key.Binding
	Merge    key.Binding
	Undo     key.Binding
	Reset    key.Binding
	PrevHead key.Binding
	NextHead key.Binding
	Reverse  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func (k playKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Commit, k.Branch, k.Merge, k.Undo, k.Help, k.Quit}
}

func (k playKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Commit, k.Branch, k.Merge, k.Undo, k.Reset},
		{k.PrevHead, k.NextHead, k.Reverse, k.Help, k.Quit},
	}
}

var playKeys = playKeyMap{
	Commit: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "commit"),
	),
	Branch: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "branch"),
	),
	Merge: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "merge next branch"),
	),
	Undo: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "undo"),
	),
	Reset: key.NewBinding(
		key.WithKeys("R"),
		key.WithHelp("R", "reset"),
	),
	PrevHead: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "head to parent"),
	),
	NextHead: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "head to child"),
	),
	Reverse: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "flip graph order"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c", "esc"),
		key.WithHelp("q", "quit"),
	),
}

// PlayModel is the bubbletea model for the interactive sandbox
type PlayModel struct {
	eng      engine.Engine
	keys     playKeyMap
	help     help.Model
	status   string
	reverse  bool
	quitting bool
}

// NewPlayModel creates a play model around an engine
func NewPlayModel(eng engine.Engine) PlayModel {
	return PlayModel{
		eng:    eng,
		keys:   playKeys,
		help:   help.New(),
		status: "Press c to create your first commit, ? for help.",
	}
}

func (m PlayModel) Init() tea.Cmd {
	return nil
}

func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Commit):
			m.status = m.doCommit()
		case key.Matches(msg, m.keys.Branch):
			branchID := m.eng.Branch()
			m.status = fmt.Sprintf("Created branch %d and switched to it.", branchID)
		case key.Matches(msg, m.keys.Merge):
			m.status = m.doMerge()
		case key.Matches(msg, m.keys.Undo):
			m.status = m.doUndo()
		case key.Matches(msg, m.keys.Reset):
			m.eng.Reset()
			m.status = "Tree reset."
		case key.Matches(msg, m.keys.Reverse):
			m.reverse = !m.reverse
		case key.Matches(msg, m.keys.PrevHead):
			m.status = m.moveHead(headToParent)
		case key.Matches(msg, m.keys.NextHead):
			m.status = m.moveHead(headToChild)
		}
		return m, nil
	}

	return m, nil
}

func (m *PlayModel) doCommit() string {
	c, err := m.eng.AddCommit()
	if err != nil {
		if stderrors.Is(err, errors.ErrHeadNotLeaf) {
			return "Head already has a commit on this branch. Press b to fork a branch first."
		}
		return err.Error()
	}
	return fmt.Sprintf("Created commit %d on branch %d.", c.ID(), c.BranchID())
}

// doMerge merges the next other branch's head into the current head
func (m *PlayModel) doMerge() string {
	current := m.eng.CurrentBranch()
	for _, branchID := range m.eng.AllBranchIDs() {
		if branchID == current {
			continue
		}
		c, err := m.eng.Merge(branchID)
		if err != nil {
			return err.Error()
		}
		return fmt.Sprintf("Merged branch %d as commit %d.", branchID, c.ID())
	}
	return "No other branch to merge. Press b to create one."
}

func (m *PlayModel) doUndo() string {
	err := m.eng.Undo()
	if err == nil {
		if head := m.eng.Head(); head != nil {
			return fmt.Sprintf("Undone, head is commit %d.", head.ID())
		}
		return "Nothing to undo."
	}

	if !stderrors.Is(err, errors.ErrMergeUndo) {
		return err.Error()
	}

	// In the sandbox, undoing a merge restores the first parent. Undo only
	// rejects the newest commit, so that is the merge in question.
	commits := m.eng.AllCommits()
	merge := commits[len(commits)-1]
	parents := merge.Parents()
	if undoErr := m.eng.UndoMerge(parents[0].ID()); undoErr != nil {
		return undoErr.Error()
	}
	return fmt.Sprintf("Undid merge %d, head is commit %d.", merge.ID(), m.eng.Head().ID())
}

type headDirection int

const (
	headToParent headDirection = iota
	headToChild
)

func (m *PlayModel) moveHead(dir headDirection) string {
	head := m.eng.Head()
	if head == nil {
		return "Tree is empty."
	}

	var candidates []*engine.Commit
	if dir == headToParent {
		candidates = head.Parents()
	} else {
		candidates = head.Children()
	}
	if len(candidates) == 0 {
		if dir == headToParent {
			return fmt.Sprintf("Commit %d has no parent.", head.ID())
		}
		return fmt.Sprintf("Commit %d has no child.", head.ID())
	}

	target := candidates[0]
	if err := m.eng.CheckoutCommit(target.ID()); err != nil {
		return err.Error()
	}
	return fmt.Sprintf("Head is now commit %d on branch %d.", target.ID(), m.eng.CurrentBranch())
}

func (m PlayModel) View() string {
	if m.quitting {
		return ""
	}

	title := lipgloss.NewStyle().Bold(true).Render("gitgud sandbox")

	renderer := graph.NewRenderer(m.eng.Snapshot())
	lines := renderer.RenderGraph(graph.RenderOptions{Reverse: m.reverse})

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n\n")
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n\n")
	b.WriteString(style.ColorDim(m.status))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

// RunPlay starts the interactive sandbox TUI
func RunPlay(eng engine.Engine) error {
	program := tea.NewProgram(NewPlayModel(eng), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
