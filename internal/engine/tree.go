package engine

import (
	"sort"

	"gitgud.dev/gitgud/internal/errors"
)

// Tree owns the authoritative collection of commits and all bookkeeping
// around it: the checked-out head, per-branch heads, and ID issuance.
// Nodes never call back into the tree; the tree validates every request,
// then wires node edges in both directions itself.
//
// Commit IDs are per-instance. Branch IDs come from the BranchCounter the
// tree was built with; NewTree uses the process-wide counter, so branch IDs
// are unique across every tree in the process (and trees are coupled through
// that counter, see GlobalBranchCounter).
//
// Single-threaded by design. If mutations ever happen concurrently they must
// be serialized per tree; the branch counter is already safe to share.
type Tree struct {
	head          *Commit
	currentBranch int
	commits       []*Commit
	branchHeads   map[int]*Commit
	nextCommitID  int
	branchCounter BranchCounter
}

// NewTree creates an empty tree drawing branch IDs from the shared
// process-wide counter. Its base branch is ready but holds no commits.
func NewTree() *Tree {
	return NewTreeWithCounter(globalBranchCounter)
}

// NewTreeWithCounter creates an empty tree with an injected branch counter,
// isolating it from other tree instances.
func NewTreeWithCounter(counter BranchCounter) *Tree {
	return &Tree{
		currentBranch: counter.Next(),
		branchHeads:   make(map[int]*Commit),
		branchCounter: counter,
	}
}

// issueCommitID hands out the next per-instance commit ID. IDs are never
// reused while the instance is alive, even across Undo.
func (t *Tree) issueCommitID() int {
	id := t.nextCommitID
	t.nextCommitID++
	return id
}

// Head returns the checked-out commit, or nil for an empty tree.
func (t *Tree) Head() *Commit {
	return t.head
}

// CurrentBranch returns the branch ID of the checked-out commit, or of the
// branch the next commit will start.
func (t *Tree) CurrentBranch() int {
	return t.currentBranch
}

// IsHead returns true if the given commit is checked out.
func (t *Tree) IsHead(commitID int) bool {
	return t.head != nil && t.head.id == commitID
}

// Commit looks up a commit by ID.
func (t *Tree) Commit(commitID int) (*Commit, error) {
	for _, c := range t.commits {
		if c.id == commitID {
			return c, nil
		}
	}
	return nil, errors.NewCommitNotFoundError(commitID)
}

// Latest returns the latest commit on the current branch.
func (t *Tree) Latest() (*Commit, error) {
	return t.LatestOn(t.currentBranch)
}

// LatestOn returns the latest commit on the given branch.
func (t *Tree) LatestOn(branchID int) (*Commit, error) {
	c, ok := t.branchHeads[branchID]
	if !ok {
		return nil, errors.NewBranchNotFoundError(branchID)
	}
	return c, nil
}

// AllCommits returns every commit in creation order.
func (t *Tree) AllCommits() []*Commit {
	return t.commits
}

// AllCommitIDs returns every commit ID in creation order.
func (t *Tree) AllCommitIDs() []int {
	ids := make([]int, 0, len(t.commits))
	for _, c := range t.commits {
		ids = append(ids, c.id)
	}
	return ids
}

// AllBranchIDs returns the IDs of every branch that has at least one commit,
// in ascending order.
func (t *Tree) AllBranchIDs() []int {
	ids := make([]int, 0, len(t.branchHeads))
	for id := range t.branchHeads {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// IsValidCommitID returns true if a commit with the given ID exists.
func (t *Tree) IsValidCommitID(commitID int) bool {
	_, err := t.Commit(commitID)
	return err == nil
}

// IsValidBranchID returns true if the given branch has at least one commit.
func (t *Tree) IsValidBranchID(branchID int) bool {
	_, ok := t.branchHeads[branchID]
	return ok
}

// NumCommits returns the number of commits in the tree.
func (t *Tree) NumCommits() int {
	return len(t.commits)
}

// NumBranches returns the number of branches holding at least one commit.
func (t *Tree) NumBranches() int {
	return len(t.branchHeads)
}

// AddCommit creates a commit on the current branch as a child of the head
// and checks it out. On an empty tree it creates the root commit.
//
// It fails with ErrHeadNotLeaf when the head already has a child on the
// current branch: implicit forking within a branch is rejected. Children the
// head has on OTHER branches do not block the commit; that is what lets a
// fresh Branch plus CheckoutCommit start its first commit at an interior
// commit.
func (t *Tree) AddCommit() (*Commit, error) {
	if t.head == nil {
		c := newCommit(t.currentBranch, t.issueCommitID())
		t.register(c)
		return c, nil
	}
	for _, child := range t.head.children {
		if child.branchID == t.currentBranch {
			return nil, errors.NewHeadNotLeafError(t.head.id, t.head.NumChildren())
		}
	}
	return t.appendTo(t.head, t.currentBranch)
}

// AddCommitTo creates a commit as a child of the given parent, on the
// parent's branch, and checks it out. The current branch is not changed.
// It fails when the parent does not exist or already has a child.
func (t *Tree) AddCommitTo(parentID int) (*Commit, error) {
	parent, err := t.Commit(parentID)
	if err != nil {
		return nil, err
	}
	if parent.NumChildren() > 0 {
		return nil, errors.NewHeadNotLeafError(parent.id, parent.NumChildren())
	}
	c := newCommit(parent.branchID, t.issueCommitID())
	t.link(parent, c)
	t.commits = append(t.commits, c)
	t.branchHeads[c.branchID] = c
	t.head = c
	return c, nil
}

// appendTo creates and registers a commit on branchID as a child of parent.
func (t *Tree) appendTo(parent *Commit, branchID int) (*Commit, error) {
	c := newCommit(branchID, t.issueCommitID())
	t.link(parent, c)
	t.register(c)
	return c, nil
}

// link wires a parent/child edge in both directions. The node primitives are
// one-sided; edge symmetry is the tree's job.
func (t *Tree) link(parent, child *Commit) {
	// Self-references are impossible here: child is always freshly created.
	_ = child.AddParent(parent)
	_ = parent.AddChild(child)
}

// register adds a commit to the collection and checks it out.
func (t *Tree) register(c *Commit) {
	t.commits = append(t.commits, c)
	t.branchHeads[c.branchID] = c
	t.currentBranch = c.branchID
	t.head = c
}

// Branch allocates a new branch ID and makes it the current branch without
// creating a commit or moving the head. The next AddCommit starts the branch
// as a child of wherever the head is then.
func (t *Tree) Branch() int {
	t.currentBranch = t.branchCounter.Next()
	return t.currentBranch
}

// Checkout moves the head to the latest commit on the given branch.
// It fails with ErrBranchNotFound when the branch has no commits.
func (t *Tree) Checkout(branchID int) error {
	c, ok := t.branchHeads[branchID]
	if !ok {
		return errors.NewBranchNotFoundError(branchID)
	}
	t.head = c
	t.currentBranch = branchID
	return nil
}

// CheckoutCommit moves the head to a specific commit, adopting its branch as
// current. When the current branch has no commits yet (a fresh Branch), the
// current branch is kept so the next AddCommit starts it at this commit.
func (t *Tree) CheckoutCommit(commitID int) error {
	c, err := t.Commit(commitID)
	if err != nil {
		return err
	}
	t.head = c
	if _, exists := t.branchHeads[t.currentBranch]; exists {
		t.currentBranch = c.branchID
	}
	return nil
}

// Merge creates a commit joining the head and the given branch's latest
// commit, with the head as first parent, and checks it out as the new head
// of the current branch.
func (t *Tree) Merge(branchID int) (*Commit, error) {
	other, ok := t.branchHeads[branchID]
	if !ok {
		return nil, errors.NewBranchNotFoundError(branchID)
	}
	if t.head == nil {
		return nil, errors.NewBranchNotFoundError(t.currentBranch)
	}
	return t.mergeNodes(t.head, other, t.currentBranch)
}

// MergeCommits creates a commit with two explicit parents, not necessarily
// the head. The result lives on the first parent's branch and is checked out.
func (t *Tree) MergeCommits(parentID, otherID int) (*Commit, error) {
	parent, err := t.Commit(parentID)
	if err != nil {
		return nil, err
	}
	other, err := t.Commit(otherID)
	if err != nil {
		return nil, err
	}
	return t.mergeNodes(parent, other, parent.branchID)
}

func (t *Tree) mergeNodes(parent, other *Commit, branchID int) (*Commit, error) {
	c := newCommit(branchID, t.issueCommitID())
	t.link(parent, c)
	if other != parent {
		_ = c.AddParent(other)
		_ = other.AddChild(c)
	}
	t.commits = append(t.commits, c)
	t.branchHeads[branchID] = c
	t.currentBranch = branchID
	t.head = c
	return c, nil
}

// Undo removes the most recently created commit from the tree and moves the
// head to its parent. The newest commit is always a leaf, so no child edges
// need pruning. A single-commit tree is left untouched: undo below the root
// is a no-op, not an error.
//
// Undoing a merge commit needs an explicit parent choice; Undo rejects it
// with ErrMergeUndo and the caller confirms through UndoMerge.
func (t *Tree) Undo() error {
	if len(t.commits) <= 1 {
		return nil
	}
	last := t.commits[len(t.commits)-1]
	if last.IsMergeCommit() {
		return errors.NewMergeUndoError(last.id, last.parentIDs())
	}
	t.removeLast(last, last.parents[0])
	return nil
}

// UndoMerge removes the most recently created commit when it is a merge
// commit, restoring the head to the given parent. The parent must be one of
// the merge's parents.
func (t *Tree) UndoMerge(parentID int) error {
	if len(t.commits) <= 1 {
		return nil
	}
	last := t.commits[len(t.commits)-1]
	if !last.IsMergeCommit() {
		return t.Undo()
	}
	for _, p := range last.parents {
		if p.id == parentID {
			t.removeLast(last, p)
			return nil
		}
	}
	return errors.NewCommitNotFoundError(parentID)
}

// removeLast detaches the newest commit from the graph and restores head and
// branch-head bookkeeping to restoreTo. Commit IDs are not reused.
func (t *Tree) removeLast(last *Commit, restoreTo *Commit) {
	for _, p := range last.parents {
		_ = p.RemoveChild(last.id)
	}
	last.parents = nil
	t.commits = t.commits[:len(t.commits)-1]

	// The branch head must stay the branch's latest surviving commit. The
	// removed commit's parent is not necessarily it: a merge created from an
	// interior parent sits on a branch whose latest commit is elsewhere.
	if prev := t.newestOnBranch(last.branchID); prev != nil {
		t.branchHeads[last.branchID] = prev
	} else {
		delete(t.branchHeads, last.branchID)
	}

	if t.head == last || t.head == nil {
		t.head = restoreTo
		t.currentBranch = restoreTo.branchID
	}
}

// newestOnBranch returns the most recently created commit on the given
// branch, or nil when the branch holds no commits.
func (t *Tree) newestOnBranch(branchID int) *Commit {
	for i := len(t.commits) - 1; i >= 0; i-- {
		if t.commits[i].branchID == branchID {
			return t.commits[i]
		}
	}
	return nil
}

// Reset returns the tree to its freshly constructed state: no commits, both
// ID counters back to their initial values. All previously issued commit and
// branch IDs are conceptually invalidated.
func (t *Tree) Reset() {
	t.commits = nil
	t.branchHeads = make(map[int]*Commit)
	t.head = nil
	t.nextCommitID = 0
	t.branchCounter.Reset()
	t.currentBranch = t.branchCounter.Next()
}

// Ensure Tree implements Engine
var _ Engine = (*Tree)(nil)
