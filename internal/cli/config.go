package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jbicker/dugite-extra/internal/config"
	"github.com/jbicker/dugite-extra/internal/git"
	"github.com/jbicker/dugite-extra/internal/output"
)

// newConfigCmd creates the config command and its subcommands
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or change dugite settings for this repository",
		RunE: func(cmd *cobra.Command, _ []string) error {
			splog := output.NewSplog()

			repoRoot, err := git.GetRepoRoot()
			if err != nil {
				return err
			}

			remote, err := config.GetDefaultRemote(repoRoot)
			if err != nil {
				return err
			}
			progress, err := config.IsProgressEnabled(repoRoot)
			if err != nil {
				return err
			}

			splog.Info("remote:   %s", remote)
			splog.Info("progress: %t", progress)
			return nil
		},
	}

	cmd.AddCommand(newConfigProgressCmd())
	cmd.AddCommand(newConfigRemoteCmd())

	return cmd
}

func newConfigProgressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "progress <on|off>",
		Short: "Enable or disable progress reporting for this repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			var enabled bool
			switch args[0] {
			case "on":
				enabled = true
			case "off":
				enabled = false
			default:
				return fmt.Errorf("expected on or off, got %q", args[0])
			}

			repoRoot, err := git.GetRepoRoot()
			if err != nil {
				return err
			}

			cfg, err := config.GetRepoConfig(repoRoot)
			if err != nil {
				return err
			}
			cfg.Progress = &enabled
			return config.SetRepoConfig(repoRoot, cfg)
		},
	}
}

func newConfigRemoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remote <name>",
		Short: "Set the default remote for this repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			repoRoot, err := git.GetRepoRoot()
			if err != nil {
				return err
			}

			cfg, err := config.GetRepoConfig(repoRoot)
			if err != nil {
				return err
			}
			cfg.DefaultRemote = &args[0]
			return config.SetRepoConfig(repoRoot, cfg)
		},
	}
}
