package cli

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gitgud.dev/gitgud/internal/actions"
	"gitgud.dev/gitgud/internal/cli/helpers"
	"gitgud.dev/gitgud/internal/runtime"
)

// newRunCmd creates the run command
func newRunCmd() *cobra.Command {
	var keepGoing bool

	cmd := &cobra.Command{
		Use:   "run [script-file]",
		Short: "Run a script of commands against a fresh tree",
		Long: `Run a script of commands against a fresh tree, one command per line.

Reads from the given file, or from stdin when no file is given. Blank lines
and lines starting with # are skipped. The final graph is printed when the
script ends.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				input := os.Stdin
				if len(args) == 1 {
					file, err := os.Open(args[0])
					if err != nil {
						return fmt.Errorf("failed to open script: %w", err)
					}
					defer func() { _ = file.Close() }()
					input = file
				}

				scanner := bufio.NewScanner(input)
				lineNum := 0
				for scanner.Scan() {
					lineNum++
					if err := ExecuteLine(ctx, scanner.Text()); err != nil {
						if keepGoing {
							ctx.Splog.Warn("line %d: %v", lineNum, err)
							continue
						}
						return fmt.Errorf("line %d: %w", lineNum, err)
					}
				}
				if err := scanner.Err(); err != nil {
					return fmt.Errorf("failed to read script: %w", err)
				}

				ctx.Splog.Newline()
				return actions.LogAction(ctx, actions.LogOptions{})
			})
		},
	}

	cmd.Flags().BoolVarP(&keepGoing, "keep-going", "k", false, "Report failing lines and continue")

	return cmd
}
