package git

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	dugiteerrors "github.com/jbicker/dugite-extra/internal/errors"
)

// DefaultCommandTimeout is the default timeout for git commands
const DefaultCommandTimeout = 5 * time.Minute

// CommandRunner handles execution of git commands
type CommandRunner struct {
	workingDir string
}

// NewCommandRunner creates a new CommandRunner
func NewCommandRunner(workingDir string) *CommandRunner {
	return &CommandRunner{workingDir: workingDir}
}

// defaultRunner is the global runner used by the package-level functions
var defaultRunner = &CommandRunner{}

// SetWorkingDir sets the working directory for the default git runner.
func SetWorkingDir(dir string) {
	defaultRunner.workingDir = dir
}

// GetWorkingDir returns the current working directory setting for the default runner.
func GetWorkingDir() string {
	return defaultRunner.workingDir
}

// RunGitCommand executes a git command using the default runner and returns the output.
// It uses context.Background() with a default timeout.
func RunGitCommand(args ...string) (string, error) {
	return defaultRunner.Run(context.Background(), args...)
}

// RunGitCommandInDir executes a git command in a specific directory and returns the output.
func RunGitCommandInDir(dir string, args ...string) (string, error) {
	runner := &CommandRunner{workingDir: dir}
	return runner.Run(context.Background(), args...)
}

// RunGitCommandWithContext executes a git command with the given context using the default runner.
func RunGitCommandWithContext(ctx context.Context, args ...string) (string, error) {
	return defaultRunner.Run(ctx, args...)
}

// RunGitCommandLines executes a git command using the default runner and returns output as lines
func RunGitCommandLines(args ...string) ([]string, error) {
	output, err := RunGitCommand(args...)
	if err != nil {
		return nil, err
	}
	if output == "" {
		return []string{}, nil
	}
	return strings.Split(output, "\n"), nil
}

// RunGitCommandWithEnv executes a git command with environment variables
func RunGitCommandWithEnv(ctx context.Context, env []string, args ...string) (string, error) {
	return defaultRunner.runInternal(ctx, nil, env, true, args...)
}

// Run executes a git command with the given context and returns the output
func (r *CommandRunner) Run(ctx context.Context, args ...string) (string, error) {
	return r.runInternal(ctx, nil, nil, true, args...)
}

// RunStreaming executes a git command and tees its stderr into the given
// writer while the command runs. Git writes progress output to stderr, so
// this is the attachment point for progress adapters. The writer sees output
// as it arrives, chunk by chunk, not line-aligned. Stderr is still captured
// in full for error reporting; a writer that swallows output cannot stall
// the command because the pipe is drained by the exec machinery either way.
func (r *CommandRunner) RunStreaming(ctx context.Context, progress io.Writer, args ...string) (string, error) {
	return r.runInternal(ctx, progress, nil, true, args...)
}

// RunGitCommandStreaming executes a git command using the default runner,
// streaming stderr into the given writer.
func RunGitCommandStreaming(ctx context.Context, progress io.Writer, args ...string) (string, error) {
	return defaultRunner.RunStreaming(ctx, progress, args...)
}

// runInternal is the internal implementation that handles directory, env and streaming
func (r *CommandRunner) runInternal(ctx context.Context, progress io.Writer, env []string, trim bool, args ...string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	// If no timeout/deadline is set in the context, add the default one
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultCommandTimeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, "git", args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	if len(env) > 0 {
		cmd.Env = append(os.Environ(), env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	if progress != nil {
		cmd.Stderr = io.MultiWriter(&stderr, progress)
	} else {
		cmd.Stderr = &stderr
	}

	err := cmd.Run()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", dugiteerrors.NewGitCommandError("git", args, stdout.String(), stderr.String(), ctx.Err())
		}
		return "", dugiteerrors.NewGitCommandError("git", args, stdout.String(), stderr.String(), err)
	}
	if trim {
		return strings.TrimSpace(stdout.String()), nil
	}
	return stdout.String(), nil
}
