package git_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	dugiteerrors "github.com/jbicker/dugite-extra/internal/errors"
	"github.com/jbicker/dugite-extra/internal/git"
	"github.com/jbicker/dugite-extra/testhelpers"
)

func TestCommandRunner(t *testing.T) {
	t.Run("returns trimmed stdout", func(t *testing.T) {
		testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		output, err := git.RunGitCommand("rev-parse", "--is-inside-work-tree")
		require.NoError(t, err)
		require.Equal(t, "true", output)
	})

	t.Run("wraps failures in a GitCommandError", func(t *testing.T) {
		testhelpers.NewScene(t, nil)

		_, err := git.RunGitCommand("rev-parse", "--verify", "no-such-rev")
		require.Error(t, err)

		var cmdErr *dugiteerrors.GitCommandError
		require.True(t, errors.As(err, &cmdErr))
		require.Equal(t, "git", cmdErr.Command)
		require.Equal(t, []string{"rev-parse", "--verify", "no-such-rev"}, cmdErr.Args)
	})

	t.Run("runs in an explicit directory", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		output, err := git.RunGitCommandInDir(scene.Dir, "branch", "--show-current")
		require.NoError(t, err)
		require.Equal(t, "main", output)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := git.RunGitCommandWithContext(ctx, "status")
		require.Error(t, err)
	})

	t.Run("injects environment variables into the command", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		require.NoError(t, scene.Repo.CreateChange("pinned", "pinned", false))

		_, err := git.RunGitCommandWithEnv(context.Background(), []string{
			"GIT_AUTHOR_DATE=2005-04-07T22:13:13",
			"GIT_COMMITTER_DATE=2005-04-07T22:13:13",
		}, "commit", "-m", "pinned dates")
		require.NoError(t, err)

		authorDate, err := git.RunGitCommand("log", "-1", "--format=%aI")
		require.NoError(t, err)
		require.Contains(t, authorDate, "2005-04-07")
	})

	t.Run("splits output into lines", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		require.NoError(t, scene.Repo.CreateBranch("feature"))

		lines, err := git.RunGitCommandLines("for-each-ref", "--format=%(refname:short)", "refs/heads/")
		require.NoError(t, err)
		require.Len(t, lines, 2)
	})
}

func TestRunStreaming(t *testing.T) {
	t.Run("tees live stderr into the writer", func(t *testing.T) {
		testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		// git reports branch switches on stderr
		var streamed bytes.Buffer
		_, err := git.NewCommandRunner("").RunStreaming(context.Background(), &streamed, "checkout", "-b", "feature")
		require.NoError(t, err)
		require.Contains(t, streamed.String(), "Switched to a new branch")
	})

	t.Run("stderr still reaches the error on failure", func(t *testing.T) {
		testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("initial", "init")
		})

		var streamed bytes.Buffer
		_, err := git.RunGitCommandStreaming(context.Background(), &streamed, "checkout", "no-such-branch", "--")
		require.Error(t, err)

		var cmdErr *dugiteerrors.GitCommandError
		require.True(t, errors.As(err, &cmdErr))
		require.NotEmpty(t, cmdErr.Stderr)
		require.Equal(t, cmdErr.Stderr, streamed.String())
	})
}
