package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jbicker/dugite-extra/internal/git"
	"github.com/jbicker/dugite-extra/internal/output"
	"github.com/jbicker/dugite-extra/internal/tui"
)

// newCloneCmd creates the clone command
func newCloneCmd() *cobra.Command {
	var noProgress bool

	cmd := &cobra.Command{
		Use:   "clone <url> [directory]",
		Short: "Clone a repository, reporting transfer and checkout progress",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			url := args[0]

			dir := ""
			if len(args) > 1 {
				dir = args[1]
			} else {
				dir = defaultCloneDir(url)
			}

			splog := output.NewSplog()

			if noProgress {
				if err := git.Clone(ctx, url, dir); err != nil {
					return err
				}
				splog.Info("Cloned into %s", dir)
				return nil
			}

			ui := tui.NewProgressUI(splog)
			ui.Start(fmt.Sprintf("Cloning %s", url))
			err := git.CloneWithProgress(ctx, url, dir, ui.Update)
			ui.Complete()
			if err != nil {
				return err
			}

			splog.Info("Cloned into %s", dir)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "Disable progress reporting")

	return cmd
}

// defaultCloneDir derives the target directory from the repository URL the
// way git does: the last path segment, stripped of a trailing .git.
func defaultCloneDir(url string) string {
	base := filepath.Base(strings.TrimSuffix(strings.TrimRight(url, "/"), ".git"))
	if base == "." || base == "/" || base == "" {
		return "repository"
	}
	return base
}
