// Package testhelpers provides fixtures for tests that exercise real git
// repositories.
package testhelpers

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

const textFileName = "test.txt"

// GitRepo represents a Git repository created for testing purposes.
type GitRepo struct {
	Dir string
}

// NewGitRepo initializes a new Git repository in the specified directory using 'git init'.
func NewGitRepo(dir string) (*GitRepo, error) {
	return newGitRepoInternal(dir, &gitRepoOptions{})
}

// NewGitRepoFromTemplate clones a repository from a local template using 'git clone --local'.
func NewGitRepoFromTemplate(dir string, templatePath string) (*GitRepo, error) {
	return newGitRepoInternal(dir, &gitRepoOptions{templatePath: templatePath})
}

// gitRepoOptions holds options for creating a GitRepo.
type gitRepoOptions struct {
	templatePath string
}

// newGitRepoInternal is the internal implementation for creating a GitRepo.
func newGitRepoInternal(dir string, options *gitRepoOptions) (*GitRepo, error) {
	repo := &GitRepo{Dir: dir}

	if options.templatePath != "" {
		// Clone from template using --local for speed
		cmd := exec.Command("git", "clone", "--local", options.templatePath, dir)
		cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
		if err := cmd.Run(); err != nil {
			return nil, fmt.Errorf("failed to clone from template: %w", err)
		}

		// Remove the 'origin' remote that git clone automatically creates
		// as it points to the template directory and will interfere with
		// tests that want to set up their own remotes.
		_ = repo.runGitCommand("remote", "remove", "origin")
	} else {
		// Initialize new repository with optimized config
		cmd := exec.Command("git", "-c", "init.defaultBranch=main", "-c", "core.autocrlf=false", "-c", "core.fileMode=false", "init", dir, "-b", "main")
		cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
		if err := cmd.Run(); err != nil {
			return nil, fmt.Errorf("failed to init repo: %w", err)
		}
	}

	// Configure Git user (required for commits)
	if err := repo.runGitCommand("config", "user.name", "Test User"); err != nil {
		return nil, err
	}
	if err := repo.runGitCommand("config", "user.email", "test@example.com"); err != nil {
		return nil, err
	}

	return repo, nil
}

// runGitCommand executes a git command in the repository directory.
// Uses GIT_CONFIG_GLOBAL=/dev/null to avoid reading global config for faster operations.
func (r *GitRepo) runGitCommand(args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if os.Getenv("DEBUG") == "" {
		cmd.Stdout = nil
		cmd.Stderr = nil
	}
	return cmd.Run()
}

// RunGitCommand executes a git command and returns an error if it fails.
func (r *GitRepo) RunGitCommand(args ...string) error {
	return r.runGitCommand(args...)
}

// RunGitCommandAndGetOutput executes a git command and returns its output.
func (r *GitRepo) RunGitCommandAndGetOutput(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git command failed: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}

// CreateChange creates a file change in the repository.
func (r *GitRepo) CreateChange(textValue string, prefix string, unstaged bool) error {
	fileName := textFileName
	if prefix != "" {
		fileName = prefix + "_" + fileName
	}
	return r.WriteFile(fileName, textValue, unstaged)
}

// WriteFile writes a file with the given content, staging it unless unstaged is set.
func (r *GitRepo) WriteFile(fileName string, content string, unstaged bool) error {
	filePath := filepath.Join(r.Dir, fileName)

	if err := os.MkdirAll(filepath.Dir(filePath), 0750); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(filePath, []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	if !unstaged {
		return r.runGitCommand("add", filePath)
	}

	return nil
}

// CreateChangeAndCommit creates a file change and commits it.
func (r *GitRepo) CreateChangeAndCommit(textValue string, prefix string) error {
	if err := r.CreateChange(textValue, prefix, false); err != nil {
		return err
	}
	if err := r.runGitCommand("add", "."); err != nil {
		return err
	}
	return r.runGitCommand("commit", "-m", textValue)
}

// CreateManyFilesAndCommit creates count files and commits them in one commit.
// Useful for exercising checkout progress output on non-trivial trees.
func (r *GitRepo) CreateManyFilesAndCommit(count int, message string) error {
	for i := 0; i < count; i++ {
		if err := r.WriteFile(fmt.Sprintf("bulk/file_%04d.txt", i), fmt.Sprintf("content %d\n", i), true); err != nil {
			return err
		}
	}
	if err := r.runGitCommand("add", "."); err != nil {
		return err
	}
	return r.runGitCommand("commit", "-m", message)
}

// CreateBranch creates a new branch without checking it out.
func (r *GitRepo) CreateBranch(name string) error {
	return r.runGitCommand("branch", name)
}

// CreateAndCheckoutBranch creates and checks out a new branch.
func (r *GitRepo) CreateAndCheckoutBranch(name string) error {
	return r.runGitCommand("checkout", "-b", name)
}

// CheckoutBranch checks out a branch.
func (r *GitRepo) CheckoutBranch(name string) error {
	return r.runGitCommand("checkout", name)
}

// DeleteBranch deletes a branch.
func (r *GitRepo) DeleteBranch(name string) error {
	return r.runGitCommand("branch", "-D", name)
}

// CurrentBranch returns the currently checked out branch name.
func (r *GitRepo) CurrentBranch() (string, error) {
	return r.RunGitCommandAndGetOutput("branch", "--show-current")
}

// GetRef returns the SHA the given ref points at.
func (r *GitRepo) GetRef(name string) (string, error) {
	return r.RunGitCommandAndGetOutput("rev-parse", name)
}

// ListCurrentBranchCommitMessages returns the commit messages reachable from HEAD.
func (r *GitRepo) ListCurrentBranchCommitMessages() ([]string, error) {
	output, err := r.RunGitCommandAndGetOutput("log", "--format=%s")
	if err != nil {
		return nil, err
	}
	if output == "" {
		return []string{}, nil
	}
	return strings.Split(output, "\n"), nil
}
