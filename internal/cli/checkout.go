package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"gitgud.dev/gitgud/internal/actions"
	"gitgud.dev/gitgud/internal/cli/helpers"
	"gitgud.dev/gitgud/internal/runtime"
)

// newCheckoutCmd creates the checkout command
func newCheckoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checkout <branch-id>",
		Short: "Switch to the latest commit on a branch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				branchID, err := strconv.Atoi(args[0])
				if err != nil {
					return err
				}
				return actions.CheckoutAction(ctx, actions.CheckoutOptions{BranchID: branchID})
			})
		},
	}
}

// newCheckoutCommitCmd creates the checkout-commit command
func newCheckoutCommitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checkout-commit <commit-id>",
		Short: "Move the head to a specific commit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				commitID, err := strconv.Atoi(args[0])
				if err != nil {
					return err
				}
				return actions.CheckoutCommitAction(ctx, actions.CheckoutCommitOptions{CommitID: commitID})
			})
		},
	}
}
