package engine

// TreeReader provides read-only access to the commit graph.
// Drivers and renderers should depend on this rather than on *Tree.
type TreeReader interface {
	// Head queries
	Head() *Commit
	CurrentBranch() int
	IsHead(commitID int) bool

	// Lookups
	Commit(commitID int) (*Commit, error)
	Latest() (*Commit, error)
	LatestOn(branchID int) (*Commit, error)

	// Listings. Returned ID slices never contain duplicates.
	AllCommits() []*Commit
	AllCommitIDs() []int
	AllBranchIDs() []int

	// Validity and counts
	IsValidCommitID(commitID int) bool
	IsValidBranchID(branchID int) bool
	NumCommits() int
	NumBranches() int

	// Snapshot returns a read-only view of the graph for rendering.
	Snapshot() GraphSnapshot
}

// TreeWriter provides the graph-mutating operations. Every operation either
// fully applies its edits or leaves the tree unchanged.
type TreeWriter interface {
	AddCommit() (*Commit, error)
	AddCommitTo(parentID int) (*Commit, error)
	Branch() int
	Checkout(branchID int) error
	CheckoutCommit(commitID int) error
	Merge(branchID int) (*Commit, error)
	MergeCommits(parentID, otherID int) (*Commit, error)
	Undo() error
	UndoMerge(parentID int) error
	Reset()
}

// Engine is the full commit-graph interface, composing TreeReader and
// TreeWriter. New code should prefer the smaller interfaces.
type Engine interface {
	TreeReader
	TreeWriter
}
