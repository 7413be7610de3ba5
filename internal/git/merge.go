package git

import (
	"context"
	"fmt"
	"strings"

	dugiteerrors "github.com/jbicker/dugite-extra/internal/errors"
)

// MergeResult represents the result of a merge operation
type MergeResult int

const (
	// MergeDone indicates the merge was successful
	MergeDone MergeResult = iota
	// MergeUnneeded indicates the branch was already up to date
	MergeUnneeded
	// MergeConflict indicates a conflict occurred during merge
	MergeConflict
)

// MergeBranch merges the given branch into the current branch
func MergeBranch(ctx context.Context, branchName string) (MergeResult, error) {
	output, err := RunGitCommandWithContext(ctx, "merge", branchName)
	if err != nil {
		if conflicted, checkErr := hasUnmergedFiles(ctx); checkErr == nil && conflicted {
			return MergeConflict, dugiteerrors.NewMergeConflictError(branchName, "")
		}
		return MergeConflict, fmt.Errorf("failed to merge %s: %w", branchName, err)
	}
	if strings.Contains(output, "Already up to date") {
		return MergeUnneeded, nil
	}
	return MergeDone, nil
}

// FastForwardMerge merges the given branch into the current branch,
// fast-forward only
func FastForwardMerge(ctx context.Context, branchName string) error {
	_, err := RunGitCommandWithContext(ctx, "merge", "--ff-only", branchName)
	if err != nil {
		return fmt.Errorf("failed to fast-forward to %s: %w", branchName, err)
	}
	return nil
}

// MergeAbort aborts an in-progress merge
func MergeAbort(ctx context.Context) error {
	_, err := RunGitCommandWithContext(ctx, "merge", "--abort")
	if err != nil {
		return fmt.Errorf("merge abort failed: %w", err)
	}
	return nil
}

// hasUnmergedFiles reports whether the index contains unmerged entries
func hasUnmergedFiles(ctx context.Context) (bool, error) {
	output, err := RunGitCommandWithContext(ctx, "ls-files", "-u")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(output) != "", nil
}
