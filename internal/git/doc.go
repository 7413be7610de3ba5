// Package git provides low-level Git operations.
//
// It wraps git command execution and provides a Go-friendly interface for:
//   - Branch management (create, delete, checkout, rename)
//   - Working tree operations (stage, unstage, remove, move files)
//   - Long-running operations with streamed progress (checkout, clone)
//   - Repo state queries (current branch, branch list, repo root)
//
// This package should be the only place where direct git commands are executed.
package git
