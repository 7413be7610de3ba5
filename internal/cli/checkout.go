package cli

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/jbicker/dugite-extra/internal/config"
	dugiteerrors "github.com/jbicker/dugite-extra/internal/errors"
	"github.com/jbicker/dugite-extra/internal/git"
	"github.com/jbicker/dugite-extra/internal/output"
	"github.com/jbicker/dugite-extra/internal/tui"
)

// newCheckoutCmd creates the checkout command
func newCheckoutCmd() *cobra.Command {
	var (
		create     bool
		detach     bool
		force      bool
		noProgress bool
	)

	cmd := &cobra.Command{
		Use:     "checkout <branch>",
		Aliases: []string{"co"},
		Short:   "Switch to a branch, reporting checkout progress",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			branchName := args[0]
			splog := output.NewSplog()

			if create {
				return git.CreateAndCheckoutBranch(ctx, branchName)
			}
			if detach {
				return git.CheckoutDetached(ctx, branchName)
			}

			exists, err := git.BranchExists(branchName)
			if err != nil {
				return err
			}
			if !exists {
				return dugiteerrors.NewBranchNotFoundError(branchName)
			}

			if !force {
				dirty, err := git.HasUnstagedChanges(ctx)
				if err != nil {
					return err
				}
				if dirty {
					proceed := false
					prompt := &survey.Confirm{
						Message: "You have uncommitted changes. Switch branches anyway?",
					}
					if err := survey.AskOne(prompt, &proceed); err != nil {
						return err
					}
					if !proceed {
						splog.Warn("Checkout aborted")
						return nil
					}
				}
			}

			if noProgress || !progressEnabled(splog) {
				return git.CheckoutBranch(ctx, branchName)
			}

			ui := tui.NewProgressUI(splog)
			ui.Start(fmt.Sprintf("Checking out %s", branchName))
			err = git.CheckoutBranchWithProgress(ctx, branchName, ui.Update)
			ui.Complete()
			if err != nil {
				return err
			}

			splog.Info("Switched to branch %s", branchName)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&create, "create", "b", false, "Create the branch before checking it out")
	cmd.Flags().BoolVar(&detach, "detach", false, "Check out in detached HEAD state")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip the uncommitted changes confirmation")
	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "Disable progress reporting")

	return cmd
}

// progressEnabled checks the repository opt-out; outside a repository
// progress stays on.
func progressEnabled(splog *output.Splog) bool {
	repoRoot, err := git.GetRepoRoot()
	if err != nil {
		return true
	}
	enabled, err := config.IsProgressEnabled(repoRoot)
	if err != nil {
		splog.Debug("failed to read repo config: %v", err)
		return true
	}
	return enabled
}
