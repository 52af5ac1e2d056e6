package engine

import "sync/atomic"

// BranchCounter issues branch IDs. Trees take the counter as a dependency so
// tests can isolate instances with a private counter instead of sharing the
// process-wide one.
type BranchCounter interface {
	// Next returns the next branch ID and advances the counter.
	Next() int
	// Rewind gives back the most recently issued ID. Used when a tree resets
	// and its branch IDs are conceptually invalidated.
	Rewind() int
	// Reset returns the counter to its initial value.
	Reset()
}

// atomicCounter is a BranchCounter backed by an atomic integer. Single-tree
// usage is single-threaded, but the process-wide counter is shared across
// tree instances, so increments stay atomic.
type atomicCounter struct {
	next atomic.Int64
}

// NewBranchCounter creates an isolated branch counter starting at zero.
func NewBranchCounter() BranchCounter {
	return &atomicCounter{}
}

func (c *atomicCounter) Next() int {
	return int(c.next.Add(1)) - 1
}

func (c *atomicCounter) Rewind() int {
	return int(c.next.Add(-1))
}

func (c *atomicCounter) Reset() {
	c.next.Store(0)
}

// globalBranchCounter is the process-wide branch ID space. Every tree built
// with NewTree draws from it, so branch IDs are unique across all trees in
// the process, and trees are therefore NOT independent with respect to
// branch numbering. Use NewTreeWithCounter to opt out.
var globalBranchCounter = NewBranchCounter()

// GlobalBranchCounter returns the shared process-wide branch counter.
func GlobalBranchCounter() BranchCounter {
	return globalBranchCounter
}
