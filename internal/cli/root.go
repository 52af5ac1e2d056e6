// Package cli wires the cobra command tree for the gitgud binary.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gitgud",
		Short: "Gitgud is a sandbox for learning git's commit graph without a repository",
		Long: `Gitgud is a sandbox for learning git's commit graph without a repository.

Commits, branches, and merges live in memory. Experiment freely: undo removes
the last commit, reset starts over, and log draws the graph.`,
		Version:      fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage: true,
	}

	// Add subcommands
	rootCmd.AddCommand(newCommitCmd())
	rootCmd.AddCommand(newBranchCmd())
	rootCmd.AddCommand(newCheckoutCmd())
	rootCmd.AddCommand(newCheckoutCommitCmd())
	rootCmd.AddCommand(newMergeCmd())
	rootCmd.AddCommand(newUndoCmd())
	rootCmd.AddCommand(newResetCmd())
	rootCmd.AddCommand(newLogCmd())
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newReplCmd())
	rootCmd.AddCommand(newDemoCmd())
	rootCmd.AddCommand(newPlayCmd())

	return rootCmd
}
