package cli

import (
	"fmt"
	"strconv"
	"strings"

	"gitgud.dev/gitgud/internal/actions"
	"gitgud.dev/gitgud/internal/runtime"
)

// ExecuteLine parses one script line and applies it to the context. Blank
// lines and # comments are skipped. Prompts never fire from scripts; undo and
// reset behave as if confirmed.
func ExecuteLine(ctx *runtime.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}

	command, args := fields[0], fields[1:]

	switch command {
	case "commit":
		opts := actions.CommitOptions{}
		if len(args) > 1 {
			return usageError("commit [parent-id]")
		}
		if len(args) == 1 {
			parentID, err := parseID(args[0])
			if err != nil {
				return err
			}
			opts.ParentID = &parentID
		}
		return actions.CommitAction(ctx, opts)

	case "branch":
		if len(args) != 0 {
			return usageError("branch")
		}
		return actions.BranchAction(ctx, actions.BranchOptions{})

	case "checkout":
		if len(args) != 1 {
			return usageError("checkout <branch-id>")
		}
		branchID, err := parseID(args[0])
		if err != nil {
			return err
		}
		return actions.CheckoutAction(ctx, actions.CheckoutOptions{BranchID: branchID})

	case "checkout-commit":
		if len(args) != 1 {
			return usageError("checkout-commit <commit-id>")
		}
		commitID, err := parseID(args[0])
		if err != nil {
			return err
		}
		return actions.CheckoutCommitAction(ctx, actions.CheckoutCommitOptions{CommitID: commitID})

	case "merge":
		switch len(args) {
		case 1:
			branchID, err := parseID(args[0])
			if err != nil {
				return err
			}
			return actions.MergeAction(ctx, actions.MergeOptions{BranchID: branchID})
		case 2:
			parentID, err := parseID(args[0])
			if err != nil {
				return err
			}
			otherID, err := parseID(args[1])
			if err != nil {
				return err
			}
			return actions.MergeAction(ctx, actions.MergeOptions{ParentID: &parentID, OtherID: &otherID})
		default:
			return usageError("merge <branch-id> | merge <parent-id> <other-id>")
		}

	case "undo":
		opts := actions.UndoOptions{Force: true}
		if len(args) > 1 {
			return usageError("undo [restore-parent-id]")
		}
		if len(args) == 1 {
			parentID, err := parseID(args[0])
			if err != nil {
				return err
			}
			opts.ParentID = &parentID
		}
		return actions.UndoAction(ctx, opts)

	case "reset":
		if len(args) != 0 {
			return usageError("reset")
		}
		return actions.ResetAction(ctx, actions.ResetOptions{Force: true})

	case "log":
		opts := actions.LogOptions{}
		for _, arg := range args {
			switch arg {
			case "reverse":
				opts.Reverse = true
			case "list":
				opts.List = true
			case "plain":
				opts.Plain = true
			default:
				return usageError("log [reverse] [list] [plain]")
			}
		}
		return actions.LogAction(ctx, opts)

	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("expected a numeric ID, got %q", s)
	}
	return id, nil
}

func usageError(usage string) error {
	return fmt.Errorf("usage: %s", usage)
}
