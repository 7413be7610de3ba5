package git

import (
	"context"
	"fmt"
)

// Clone clones the repository at url into dir
func Clone(ctx context.Context, url, dir string) error {
	_, err := RunGitCommandWithContext(ctx, "clone", url, dir)
	if err != nil {
		return fmt.Errorf("failed to clone %s: %w", url, err)
	}
	return nil
}

// CloneWithProgress clones the repository at url into dir, reporting
// progress to onProgress as git emits it. The --progress flag forces git to
// report progress even though stderr is not a terminal. Phases arrive as
// git produces them ("Receiving objects", "Resolving deltas", "Checking out
// files", ...); the callback sees a synthetic zero-progress event first.
func CloneWithProgress(ctx context.Context, url, dir string, onProgress ProgressCallback) error {
	if onProgress == nil {
		return Clone(ctx, url, dir)
	}

	onProgress(CloneStartEvent())

	adapter := NewCloneProgressAdapter(onProgress)
	_, err := defaultRunner.RunStreaming(ctx, adapter, "clone", "--progress", url, dir)
	_ = adapter.Close()
	if err != nil {
		return fmt.Errorf("failed to clone %s: %w", url, err)
	}
	return nil
}

// Fetch fetches the given remote
func Fetch(ctx context.Context, remote string) error {
	_, err := RunGitCommandWithContext(ctx, "fetch", remote)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", remote, err)
	}
	return nil
}
