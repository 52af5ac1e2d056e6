// Package demo builds a pre-populated commit tree for demos and screenshots.
package demo

import (
	"gitgud.dev/gitgud/internal/engine"
	"gitgud.dev/gitgud/internal/runtime"
)

func init() {
	// Register the demo engine factory with runtime package
	runtime.DemoEngineFactory = func() engine.Engine {
		return NewDemoEngine()
	}
}

// NewDemoEngine creates a tree with a small history showing off branching,
// merging, and an undone experiment. It uses its own branch counter so
// repeated demos always produce the same IDs.
func NewDemoEngine() engine.Engine {
	t := engine.NewTreeWithCounter(engine.NewBranchCounter())

	// Trunk: commits 0, 1, 2 on branch 0
	c0 := mustCommit(t)
	mustCommit(t)
	c2 := mustCommit(t)

	// Feature branch 1 forks at the root: commits 3, 4
	t.Branch()
	must(t.CheckoutCommit(c0.ID()))
	mustCommit(t)
	c4 := mustCommit(t)

	// Merge the feature back into trunk: commit 5
	must(t.Checkout(c2.BranchID()))
	if _, err := t.Merge(c4.BranchID()); err != nil {
		panic(err)
	}

	// A short-lived experiment that gets undone, so commit ID 7 comes next
	mustCommit(t)
	must(t.Undo())
	mustCommit(t)

	return t
}

func mustCommit(t *engine.Tree) *engine.Commit {
	c, err := t.AddCommit()
	if err != nil {
		panic(err)
	}
	return c
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
