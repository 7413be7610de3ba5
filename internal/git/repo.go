package git

import (
	"context"
	"fmt"
	"os"

	gogit "github.com/go-git/go-git/v5"

	dugiteerrors "github.com/jbicker/dugite-extra/internal/errors"
)

// GetRepoRoot returns the root directory of the Git repository
func GetRepoRoot() (string, error) {
	wd := defaultRunner.workingDir
	if wd == "" {
		var err error
		wd, err = os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
	}

	// Use go-git to find the repository
	repo, err := gogit.PlainOpenWithOptions(wd, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %s", dugiteerrors.ErrNotARepository, wd)
	}

	// Get the worktree to find the root
	worktree, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("failed to get worktree: %w", err)
	}

	return worktree.Filesystem.Root(), nil
}

// IsInRepository checks whether path is inside a git repository
func IsInRepository(path string) bool {
	_, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	return err == nil
}

// InitRepo initializes a new repository in dir with main as the default branch
func InitRepo(ctx context.Context, dir string) error {
	_, err := RunGitCommandWithContext(ctx, "init", "-b", "main", dir)
	if err != nil {
		return fmt.Errorf("failed to init repo in %s: %w", dir, err)
	}
	return nil
}
