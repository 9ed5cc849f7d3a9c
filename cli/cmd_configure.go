package main

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/faisalkhan91/bonsai-cli/cli/internal/config"
)

func init() {
	rootCmd.AddCommand(newConfigureCommand())
}

func newConfigureCommand() *cobra.Command {
	var accessKey, workspaceID string

	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Configure credentials and the default workspace.",
		Long: `Configure the access key and default workspace the bonsai CLI uses.
Without flags an interactive form is shown; with flags the given values are
written directly, which suits headless environments.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := config.Load()
			if err != nil {
				return err
			}

			if accessKey != "" {
				profile.AccessKey = accessKey
			}
			if workspaceID != "" {
				profile.WorkspaceID = workspaceID
			}

			if accessKey == "" && workspaceID == "" {
				form := huh.NewForm(huh.NewGroup(
					huh.NewInput().
						Title("Access key").
						Description("Personal access key for the Bonsai service.").
						EchoMode(huh.EchoModePassword).
						Value(&profile.AccessKey),
					huh.NewInput().
						Title("Workspace ID").
						Description("Default workspace for commands without an explicit override.").
						Value(&profile.WorkspaceID),
				))
				if err := form.Run(); err != nil {
					return err
				}
			}

			if err := config.Save(profile); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", config.Path())
			return nil
		},
	}

	cmd.Flags().StringVar(&accessKey, "access-key", "", "Access key to store without prompting.")
	cmd.Flags().StringVar(&workspaceID, "workspace-id", "", "Default workspace id to store without prompting.")

	return cmd
}
