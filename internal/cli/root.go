// Package cli wires the dugite commands to the underlying git operations.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dugite",
		Short: "dugite is a thin command line wrapper around git with streamed progress reporting",
		Long: `dugite is a thin command line wrapper around git.

Long-running operations (checkout, clone) report live progress parsed from
git's own output, rendered as a progress bar on a terminal or as plain log
lines otherwise.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
	}

	rootCmd.AddCommand(newCheckoutCmd())
	rootCmd.AddCommand(newCloneCmd())
	rootCmd.AddCommand(newMergeCmd())
	rootCmd.AddCommand(newBranchCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}
