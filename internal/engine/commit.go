package engine

import (
	"gitgud.dev/gitgud/internal/errors"
)

// Commit is a node in the commit graph. Each commit knows its own ID, the
// branch it was created on, and its direct parent and child commits, nothing
// about the rest of the tree.
//
// Parent and child links are one-sided primitives: AddParent does not update
// the parent's child list and vice versa. The Tree wires both directions so
// it can control parent ordering during merges.
type Commit struct {
	id       int
	branchID int
	parents  []*Commit
	children []*Commit
}

// newCommit creates a commit on the given branch with an ID decided by the
// tree. Uniqueness of the ID is the tree's responsibility.
func newCommit(branchID, commitID int) *Commit {
	return &Commit{
		id:       commitID,
		branchID: branchID,
	}
}

// ID returns the commit's unique ID.
func (c *Commit) ID() int {
	return c.id
}

// BranchID returns the ID of the branch this commit was created on.
func (c *Commit) BranchID() int {
	return c.branchID
}

// NumParents returns the number of parent commits.
func (c *Commit) NumParents() int {
	return len(c.parents)
}

// NumChildren returns the number of child commits.
func (c *Commit) NumChildren() int {
	return len(c.children)
}

// IsMergeCommit returns true if the commit has more than one parent.
func (c *Commit) IsMergeCommit() bool {
	return len(c.parents) > 1
}

// IsNewBranch returns true if this commit is the first commit on its branch,
// i.e. it has no parent on the same branch.
func (c *Commit) IsNewBranch() bool {
	for _, p := range c.parents {
		if p.branchID == c.branchID {
			return false
		}
	}
	return true
}

// Parents returns the parent commits in insertion order. The first parent of
// a merge commit is the commit it was created on.
func (c *Commit) Parents() []*Commit {
	return c.parents
}

// Children returns the child commits in insertion order.
func (c *Commit) Children() []*Commit {
	return c.children
}

// AddParent appends a parent link. It does not update the parent's child
// list; the caller must add the reverse edge itself.
func (c *Commit) AddParent(parent *Commit) error {
	if parent == c {
		return errors.NewSelfReferenceError(c.id)
	}
	c.parents = append(c.parents, parent)
	return nil
}

// AddChild appends a child link. It does not update the child's parent list;
// the caller must add the reverse edge itself.
func (c *Commit) AddChild(child *Commit) error {
	if child == c {
		return errors.NewSelfReferenceError(c.id)
	}
	c.children = append(c.children, child)
	return nil
}

// RemoveParent removes the first parent with the given ID.
func (c *Commit) RemoveParent(id int) error {
	for i, p := range c.parents {
		if p.id == id {
			c.parents = append(c.parents[:i], c.parents[i+1:]...)
			return nil
		}
	}
	return errors.NewCommitNotFoundError(id)
}

// RemoveChild removes the first child with the given ID.
func (c *Commit) RemoveChild(id int) error {
	for i, ch := range c.children {
		if ch.id == id {
			c.children = append(c.children[:i], c.children[i+1:]...)
			return nil
		}
	}
	return errors.NewCommitNotFoundError(id)
}

// parentIDs returns the IDs of the commit's parents in order.
func (c *Commit) parentIDs() []int {
	ids := make([]int, 0, len(c.parents))
	for _, p := range c.parents {
		ids = append(ids, p.id)
	}
	return ids
}
