package cli

import (
	"github.com/spf13/cobra"

	"github.com/jbicker/dugite-extra/internal/git"
	"github.com/jbicker/dugite-extra/internal/output"
)

// newMergeCmd creates the merge command
func newMergeCmd() *cobra.Command {
	var (
		ffOnly bool
		abort  bool
	)

	cmd := &cobra.Command{
		Use:   "merge [branch]",
		Short: "Merge a branch into the current branch",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			splog := output.NewSplog()

			if abort {
				return git.MergeAbort(ctx)
			}

			if len(args) == 0 {
				return cmd.Usage()
			}
			branchName := args[0]

			if ffOnly {
				if err := git.FastForwardMerge(ctx, branchName); err != nil {
					return err
				}
				splog.Info("Fast-forwarded to %s", branchName)
				return nil
			}

			result, err := git.MergeBranch(ctx, branchName)
			if err != nil {
				return err
			}

			switch result {
			case git.MergeUnneeded:
				splog.Info("Already up to date")
			default:
				splog.Info("Merged %s", branchName)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&ffOnly, "ff-only", false, "Refuse to merge unless a fast-forward is possible")
	cmd.Flags().BoolVar(&abort, "abort", false, "Abort an in-progress merge")

	return cmd
}
