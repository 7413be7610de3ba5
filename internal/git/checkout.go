package git

import (
	"context"
	"fmt"
)

// CheckoutBranch checks out an existing branch
func CheckoutBranch(ctx context.Context, branchName string) error {
	_, err := RunGitCommandWithContext(ctx, "checkout", branchName, "--")
	if err != nil {
		return fmt.Errorf("failed to checkout branch %s: %w", branchName, err)
	}
	return nil
}

// CheckoutBranchWithProgress checks out an existing branch, reporting
// progress to onProgress as git emits it.
//
// Two-step protocol: the callback first receives a synthetic zero-progress
// event before the command is spawned, so consumers can show the operation
// has started even before git produces its first line. After that, one
// event is delivered per progress line git writes. With a nil callback this
// behaves exactly like CheckoutBranch.
func CheckoutBranchWithProgress(ctx context.Context, branchName string, onProgress ProgressCallback) error {
	if onProgress == nil {
		return CheckoutBranch(ctx, branchName)
	}

	onProgress(CheckoutStartEvent(branchName))

	adapter := NewCheckoutProgressAdapter(branchName, onProgress)
	_, err := defaultRunner.RunStreaming(ctx, adapter, "checkout", "--progress", branchName, "--")
	// Final flush happens on stream close whether or not git failed.
	_ = adapter.Close()
	if err != nil {
		return fmt.Errorf("failed to checkout branch %s: %w", branchName, err)
	}
	return nil
}

// CreateAndCheckoutBranch creates and checks out a new branch
func CreateAndCheckoutBranch(ctx context.Context, branchName string) error {
	_, err := RunGitCommandWithContext(ctx, "checkout", "-b", branchName)
	if err != nil {
		return fmt.Errorf("failed to create and checkout branch %s: %w", branchName, err)
	}
	return nil
}

// CheckoutDetached checks out a revision in detached HEAD state
func CheckoutDetached(ctx context.Context, rev string) error {
	_, err := RunGitCommandWithContext(ctx, "checkout", "--detach", rev)
	if err != nil {
		return fmt.Errorf("failed to checkout %s in detached state: %w", rev, err)
	}
	return nil
}

// CheckoutPaths restores the given paths from HEAD, discarding local changes
func CheckoutPaths(ctx context.Context, paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	args := append([]string{"checkout", "HEAD", "--"}, paths...)
	_, err := RunGitCommandWithContext(ctx, args...)
	if err != nil {
		return fmt.Errorf("failed to checkout paths: %w", err)
	}
	return nil
}
