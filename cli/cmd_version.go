package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faisalkhan91/bonsai-cli/cli/internal/config"
	"github.com/faisalkhan91/bonsai-cli/cli/internal/render"
	"github.com/faisalkhan91/bonsai-cli/cli/internal/update"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the bonsai CLI version and check for updates.",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "bonsai-cli version %s\n", Version)

		updateURL := config.DefaultUpdateURL
		if profile, err := config.Load(); err == nil && profile.UpdateURL != "" {
			updateURL = profile.UpdateURL
		}

		checker := update.NewChecker(updateURL, Version)
		checker.Start(cmd.Context())
		if notice := checker.Notice(); notice != "" {
			fmt.Fprintln(cmd.OutOrStdout(), render.Notice(notice))
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "bonsai-cli is up to date.")
		}
		return nil
	},
}
