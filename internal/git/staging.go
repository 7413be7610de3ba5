package git

import (
	"context"
	"fmt"
	"strings"
)

// StageFile stages a single file
func StageFile(ctx context.Context, path string) error {
	_, err := RunGitCommandWithContext(ctx, "add", "--", path)
	if err != nil {
		return fmt.Errorf("failed to stage %s: %w", path, err)
	}
	return nil
}

// StageAll stages all changes including untracked files
func StageAll(ctx context.Context) error {
	_, err := RunGitCommandWithContext(ctx, "add", "-A")
	if err != nil {
		return fmt.Errorf("failed to stage all changes: %w", err)
	}
	return nil
}

// UnstageFile removes a file from the index, keeping the working tree copy
func UnstageFile(ctx context.Context, path string) error {
	_, err := RunGitCommandWithContext(ctx, "reset", "HEAD", "--", path)
	if err != nil {
		return fmt.Errorf("failed to unstage %s: %w", path, err)
	}
	return nil
}

// RemoveFile removes a file from the index and the working tree
func RemoveFile(ctx context.Context, path string) error {
	_, err := RunGitCommandWithContext(ctx, "rm", "--", path)
	if err != nil {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	return nil
}

// MoveFile renames a file, staging the rename
func MoveFile(ctx context.Context, oldPath, newPath string) error {
	_, err := RunGitCommandWithContext(ctx, "mv", "--", oldPath, newPath)
	if err != nil {
		return fmt.Errorf("failed to move %s to %s: %w", oldPath, newPath, err)
	}
	return nil
}

// Commit creates a commit with the given message
func Commit(ctx context.Context, message string) error {
	_, err := RunGitCommandWithContext(ctx, "commit", "-m", message)
	if err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// HasStagedChanges checks if there are staged changes
func HasStagedChanges(ctx context.Context) (bool, error) {
	output, err := RunGitCommandWithContext(ctx, "diff", "--cached", "--shortstat")
	if err != nil {
		return false, fmt.Errorf("failed to check staged changes: %w", err)
	}
	return strings.TrimSpace(output) != "", nil
}

// HasUnstagedChanges checks if there are unstaged changes to tracked files
func HasUnstagedChanges(ctx context.Context) (bool, error) {
	output, err := RunGitCommandWithContext(ctx, "diff", "--name-only")
	if err != nil {
		return false, fmt.Errorf("failed to check unstaged changes: %w", err)
	}
	return strings.TrimSpace(output) != "", nil
}

// HasUntrackedFiles checks if there are untracked files
func HasUntrackedFiles(ctx context.Context) (bool, error) {
	output, err := RunGitCommandWithContext(ctx, "ls-files", "--others", "--exclude-standard")
	if err != nil {
		return false, fmt.Errorf("failed to check untracked files: %w", err)
	}
	return strings.TrimSpace(output) != "", nil
}
