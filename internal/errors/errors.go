// Package errors provides sentinel errors and custom error types for dugite.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrBranchNotFound indicates that a branch does not exist
	ErrBranchNotFound = errors.New("branch not found")

	// ErrMergeConflict indicates that a merge operation encountered a conflict
	ErrMergeConflict = errors.New("merge conflict")

	// ErrNotARepository indicates that the path is not inside a git repository
	ErrNotARepository = errors.New("not a git repository")

	// ErrNotOnBranch indicates that HEAD is detached
	ErrNotOnBranch = errors.New("not on a branch")
)

// BranchNotFoundError represents an error when a branch is not found
type BranchNotFoundError struct {
	BranchName string
}

func (e *BranchNotFoundError) Error() string {
	return fmt.Sprintf("branch %s does not exist", e.BranchName)
}

// Is returns true if the target error is ErrBranchNotFound
func (e *BranchNotFoundError) Is(target error) bool {
	return target == ErrBranchNotFound
}

// NewBranchNotFoundError creates a new BranchNotFoundError
func NewBranchNotFoundError(branchName string) *BranchNotFoundError {
	return &BranchNotFoundError{BranchName: branchName}
}

// MergeConflictError represents an error when a merge encounters a conflict
type MergeConflictError struct {
	BranchName string
	Message    string
}

func (e *MergeConflictError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("merge conflict while merging %s: %s", e.BranchName, e.Message)
	}
	return fmt.Sprintf("merge conflict while merging %s", e.BranchName)
}

// Is returns true if the target error is ErrMergeConflict
func (e *MergeConflictError) Is(target error) bool {
	return target == ErrMergeConflict
}

// NewMergeConflictError creates a new MergeConflictError
func NewMergeConflictError(branchName string, message string) *MergeConflictError {
	return &MergeConflictError{
		BranchName: branchName,
		Message:    message,
	}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}
