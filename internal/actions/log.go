package actions

import (
	"strings"

	"gitgud.dev/gitgud/internal/runtime"
	"gitgud.dev/gitgud/internal/tui/components/graph"
	"gitgud.dev/gitgud/internal/tui/style"
)

// LogOptions contains options for the log command
type LogOptions struct {
	Reverse bool // Oldest commit first
	List    bool // Flat list instead of graph
	Plain   bool // Force unstyled output
}

// LogAction displays the commit graph
func LogAction(ctx *runtime.Context, opts LogOptions) error {
	renderer := graph.NewRenderer(ctx.Engine.Snapshot())

	renderOpts := graph.RenderOptions{
		Reverse: opts.Reverse || ctx.Config.IsReverse(),
		Plain:   opts.Plain || ctx.Config.IsPlain() || !style.IsTerminal(),
	}

	var lines []string
	if opts.List {
		lines = renderer.RenderCommitList(renderOpts)
	} else {
		lines = renderer.RenderGraph(renderOpts)
	}

	ctx.Splog.Page(strings.Join(lines, "\n"))
	ctx.Splog.Newline()
	return nil
}
