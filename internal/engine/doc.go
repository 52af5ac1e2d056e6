// Package engine manages an in-memory commit graph.
//
// It is the core of gitgud, responsible for:
//   - Modeling commits as nodes with parent and child links
//   - Tracking per-branch heads and the checked-out head commit
//   - Issuing unique commit and branch IDs
//   - Applying graph mutations: commit, branch, checkout, merge, undo, reset
//
// The engine holds no file contents and touches no storage; it is pure
// in-memory state that drivers (CLI, TUI, tests) act on and render.
package engine
