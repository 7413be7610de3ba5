package git

import (
	"context"
	"errors"
	"fmt"
	"strings"

	dugiteerrors "github.com/jbicker/dugite-extra/internal/errors"
)

// GetCurrentBranch returns the name of the currently checked out branch
func GetCurrentBranch() (string, error) {
	output, err := RunGitCommand("branch", "--show-current")
	if err != nil {
		return "", fmt.Errorf("failed to get current branch: %w", err)
	}
	if output == "" {
		return "", dugiteerrors.ErrNotOnBranch
	}
	return output, nil
}

// GetAllBranchNames returns all local branch names
func GetAllBranchNames() ([]string, error) {
	lines, err := RunGitCommandLines("for-each-ref", "--format=%(refname:short)", "refs/heads/")
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	return lines, nil
}

// BranchExists checks whether a local branch exists
func BranchExists(branchName string) (bool, error) {
	_, err := RunGitCommand("show-ref", "--verify", "--quiet", "refs/heads/"+branchName)
	if err != nil {
		// show-ref exits non-zero without output when the ref is absent
		var cmdErr *dugiteerrors.GitCommandError
		if errors.As(err, &cmdErr) && strings.TrimSpace(cmdErr.Stderr) == "" {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// CreateBranch creates a new branch without checking it out
func CreateBranch(ctx context.Context, branchName string) error {
	_, err := RunGitCommandWithContext(ctx, "branch", branchName)
	if err != nil {
		return fmt.Errorf("failed to create branch %s: %w", branchName, err)
	}
	return nil
}

// DeleteBranch deletes a branch
func DeleteBranch(ctx context.Context, branchName string) error {
	_, err := RunGitCommandWithContext(ctx, "branch", "-D", branchName)
	if err != nil {
		return fmt.Errorf("failed to delete branch %s: %w", branchName, err)
	}
	return nil
}

// RenameBranch renames a branch
func RenameBranch(ctx context.Context, oldName, newName string) error {
	_, err := RunGitCommandWithContext(ctx, "branch", "-m", oldName, newName)
	if err != nil {
		return fmt.Errorf("failed to rename branch %s to %s: %w", oldName, newName, err)
	}
	return nil
}
