package cli

import (
	"github.com/spf13/cobra"

	"github.com/jbicker/dugite-extra/internal/git"
	"github.com/jbicker/dugite-extra/internal/output"
)

// newBranchCmd creates the branch command and its subcommands
func newBranchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "branch [name]",
		Short: "List branches, or create a branch without checking it out",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			splog := output.NewSplog()

			if len(args) == 0 {
				names, err := git.GetAllBranchNames()
				if err != nil {
					return err
				}
				current, err := git.GetCurrentBranch()
				if err != nil {
					current = ""
				}
				for _, name := range names {
					if name == current {
						splog.Info("* %s", name)
					} else {
						splog.Info("  %s", name)
					}
				}
				return nil
			}

			return git.CreateBranch(cmd.Context(), args[0])
		},
	}

	cmd.AddCommand(newBranchDeleteCmd())
	cmd.AddCommand(newBranchRenameCmd())

	return cmd
}

func newBranchDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <name>",
		Aliases: []string{"rm"},
		Short:   "Delete a branch",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return git.DeleteBranch(cmd.Context(), args[0])
		},
	}
}

func newBranchRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rename <old> <new>",
		Aliases: []string{"mv"},
		Short:   "Rename a branch",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return git.RenameBranch(cmd.Context(), args[0], args[1])
		},
	}
}
