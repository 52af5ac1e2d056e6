// Package graph provides a renderer for commit graph visualizations.
package graph

import (
	"fmt"
	"sort"
	"strings"

	"gitgud.dev/gitgud/internal/engine"
	"gitgud.dev/gitgud/internal/tui/style"
)

const (
	// HeadSymbol is the symbol used for the checked-out commit in graph views
	HeadSymbol = "◉"
	// CommitSymbol is the symbol used for regular commits in graph views
	CommitSymbol = "◯"
)

// CommitAnnotation holds per-commit display metadata
type CommitAnnotation struct {
	CustomLabel string // Additional text to display after the commit label
}

// RenderOptions configures rendering behavior
type RenderOptions struct {
	Reverse bool // Oldest commit first instead of newest
	Plain   bool // No styling; used when stdout is not a terminal
}

// Renderer renders commit graphs with branch-colored lanes. It works off a
// GraphSnapshot, never the live tree.
type Renderer struct {
	snap        engine.GraphSnapshot
	byID        map[int]engine.CommitInfo
	annotations map[int]CommitAnnotation
}

// NewRenderer creates a new graph renderer for a snapshot
func NewRenderer(snap engine.GraphSnapshot) *Renderer {
	byID := make(map[int]engine.CommitInfo, len(snap.Commits))
	for _, c := range snap.Commits {
		byID[c.ID] = c
	}
	return &Renderer{
		snap:        snap,
		byID:        byID,
		annotations: make(map[int]CommitAnnotation),
	}
}

// SetAnnotation sets the annotation for a commit
func (r *Renderer) SetAnnotation(commitID int, annotation CommitAnnotation) {
	r.annotations[commitID] = annotation
}

// RenderGraph renders the whole graph, newest commits at the top. Each root
// commit starts its own block.
func (r *Renderer) RenderGraph(opts RenderOptions) []string {
	if len(r.snap.Commits) == 0 {
		return []string{"(empty tree)"}
	}

	var result []string
	for _, c := range r.snap.Commits {
		if len(c.ParentIDs) == 0 {
			result = append(result, r.subgraphLines(c.ID, 0, opts)...)
		}
	}

	if opts.Reverse {
		for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
			result[i], result[j] = result[j], result[i]
		}
	}

	return result
}

// subgraphLines renders a commit and everything above it: children first
// (newest at the top), then the commit's own lines.
func (r *Renderer) subgraphLines(commitID, indentLevel int, opts RenderOptions) []string {
	var result []string
	result = append(result, r.childLines(commitID, indentLevel, opts)...)
	result = append(result, r.commitLines(commitID, indentLevel, opts)...)
	return result
}

// childLines renders the subtrees of the commit's own children. A merge
// commit belongs to its first parent's chain, so it renders exactly once.
func (r *Renderer) childLines(commitID, indentLevel int, opts RenderOptions) []string {
	children := r.ownChildren(commitID)

	var result []string
	for i, child := range children {
		result = append(result, r.subgraphLines(child, indentLevel+i, opts)...)
	}
	return result
}

// ownChildren returns the children rendered under this commit: those that
// have it as their first parent, in creation order.
func (r *Renderer) ownChildren(commitID int) []int {
	c := r.byID[commitID]
	children := make([]int, 0, len(c.ChildIDs))
	for _, childID := range c.ChildIDs {
		child := r.byID[childID]
		if len(child.ParentIDs) > 0 && child.ParentIDs[0] == commitID {
			children = append(children, childID)
		}
	}
	sort.Ints(children)
	return children
}

func (r *Renderer) commitLines(commitID, indentLevel int, opts RenderOptions) []string {
	numChildren := len(r.ownChildren(commitID))

	var result []string

	// Branching line joining forked child lanes back to this commit
	if numChildren >= 2 {
		line := strings.Repeat("│  ", indentLevel) + "├"
		if numChildren > 2 {
			line += strings.Repeat("──┴", numChildren-2)
		}
		line += "──┘"
		result = append(result, line)
	}

	result = append(result, r.infoLine(commitID, indentLevel, opts))
	result = append(result, strings.Repeat("│  ", indentLevel)+"│")
	return result
}

func (r *Renderer) infoLine(commitID, indentLevel int, opts RenderOptions) string {
	c := r.byID[commitID]
	isHead := r.snap.HeadID != nil && *r.snap.HeadID == commitID

	symbol := CommitSymbol
	if isHead {
		symbol = HeadSymbol
	}

	label := fmt.Sprintf("%d", commitID)
	details := []string{fmt.Sprintf("branch %d", c.BranchID)}
	if c.IsMerge {
		merged := make([]string, 0, len(c.ParentIDs))
		for _, p := range c.ParentIDs {
			merged = append(merged, fmt.Sprintf("%d", p))
		}
		details = append(details, "merge of "+strings.Join(merged, "+"))
	}
	if isHead {
		details = append(details, "HEAD")
	}
	if annotation, ok := r.annotations[commitID]; ok && annotation.CustomLabel != "" {
		details = append(details, annotation.CustomLabel)
	}
	detail := "(" + strings.Join(details, ", ") + ")"

	prefix := strings.Repeat("│  ", indentLevel)
	if opts.Plain {
		return prefix + symbol + " " + label + " " + detail
	}

	if isHead {
		return prefix + style.ColorHead(symbol+" "+label, c.BranchID) + " " + style.ColorDim(detail)
	}
	return prefix + style.ColorBranch(symbol+" "+label, c.BranchID) + " " + style.ColorDim(detail)
}

// RenderCommitList renders commits one per line in creation order, without
// graph structure.
func (r *Renderer) RenderCommitList(opts RenderOptions) []string {
	result := make([]string, 0, len(r.snap.Commits))
	for _, c := range r.snap.Commits {
		result = append(result, "  "+r.infoLine(c.ID, 0, opts))
	}
	return result
}
