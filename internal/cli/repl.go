package cli

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gitgud.dev/gitgud/internal/cli/helpers"
	"gitgud.dev/gitgud/internal/runtime"
)

// newReplCmd creates the repl command
func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactively run commands against a single tree",
		Long: `Interactively run commands against a single tree.

Accepts the same commands as 'run', plus 'help' and 'exit'. Failed commands
leave the tree untouched, so it is safe to poke around.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				scanner := bufio.NewScanner(os.Stdin)
				for {
					fmt.Fprintf(os.Stdout, "gitgud(branch %d)> ", ctx.Engine.CurrentBranch())
					if !scanner.Scan() {
						ctx.Splog.Newline()
						return scanner.Err()
					}

					line := scanner.Text()
					switch line {
					case "exit", "quit":
						return nil
					case "help":
						printReplHelp(ctx)
						continue
					}

					if err := ExecuteLine(ctx, line); err != nil {
						ctx.Splog.Error("%v", err)
					}
				}
			})
		},
	}
}

func printReplHelp(ctx *runtime.Context) {
	ctx.Splog.Info("Commands:")
	for _, line := range []string{
		"commit [parent-id]            create a commit",
		"branch                        create a branch and switch to it",
		"checkout <branch-id>          switch to a branch's latest commit",
		"checkout-commit <commit-id>   move the head to a commit",
		"merge <branch-id>             merge a branch into the head",
		"merge <parent-id> <other-id>  merge two explicit commits",
		"undo [restore-parent-id]      remove the most recent commit",
		"reset                         start over",
		"log [reverse] [list] [plain]  draw the commit graph",
		"exit                          leave the repl",
	} {
		ctx.Splog.Info("  %s", line)
	}
}
