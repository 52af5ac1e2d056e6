package engine

// CommitInfo is a read-only view of a single commit.
type CommitInfo struct {
	ID          int   `json:"id"`
	BranchID    int   `json:"branchId"`
	ParentIDs   []int `json:"parentIds"`
	ChildIDs    []int `json:"childIds"`
	IsMerge     bool  `json:"isMerge"`
	IsNewBranch bool  `json:"isNewBranch"`
}

// GraphSnapshot is a read-only view of the whole graph, sufficient for a
// renderer or serializer without exposing the tree's mutable structures.
type GraphSnapshot struct {
	Commits       []CommitInfo `json:"commits"`
	BranchHeads   map[int]int  `json:"branchHeads"`
	HeadID        *int         `json:"headId,omitempty"`
	CurrentBranch int          `json:"currentBranch"`
}

// Snapshot captures the current graph state. Commits appear in creation
// order; parent and child IDs preserve node ordering, so the first parent of
// a merge is the commit it was created on.
func (t *Tree) Snapshot() GraphSnapshot {
	snap := GraphSnapshot{
		Commits:       make([]CommitInfo, 0, len(t.commits)),
		BranchHeads:   make(map[int]int, len(t.branchHeads)),
		CurrentBranch: t.currentBranch,
	}
	for _, c := range t.commits {
		childIDs := make([]int, 0, len(c.children))
		for _, ch := range c.children {
			childIDs = append(childIDs, ch.id)
		}
		snap.Commits = append(snap.Commits, CommitInfo{
			ID:          c.id,
			BranchID:    c.branchID,
			ParentIDs:   c.parentIDs(),
			ChildIDs:    childIDs,
			IsMerge:     c.IsMergeCommit(),
			IsNewBranch: c.IsNewBranch(),
		})
	}
	for branchID, c := range t.branchHeads {
		snap.BranchHeads[branchID] = c.id
	}
	if t.head != nil {
		headID := t.head.id
		snap.HeadID = &headID
	}
	return snap
}
