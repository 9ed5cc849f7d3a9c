// Package main provides the assessment command group for the bonsai CLI.
//
// Each subcommand wires its flags into the assessment coordinator, runs the
// operation, renders the result, and finishes with the advisory client
// version check.
package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/faisalkhan91/bonsai-cli/cli/internal/assessment"
	"github.com/faisalkhan91/bonsai-cli/cli/internal/config"
	"github.com/faisalkhan91/bonsai-cli/cli/internal/render"
	"github.com/faisalkhan91/bonsai-cli/cli/internal/ui"
	"github.com/faisalkhan91/bonsai-cli/cli/internal/update"
	bonsai "github.com/faisalkhan91/bonsai-cli/sdk"
	"github.com/faisalkhan91/bonsai-cli/sdk/services"
)

var assessmentCmd = &cobra.Command{
	Use:   "assessment",
	Short: "Brain version assessment operations.",
}

func init() {
	rootCmd.AddCommand(assessmentCmd)
	assessmentCmd.AddCommand(
		newStartCommand(),
		newListCommand(),
		newShowCommand(),
		newGetConfigurationCommand(),
		newUpdateCommand(),
		newStopCommand(),
		newDeleteCommand(),
	)
}

// commonFlags are shared by every assessment subcommand.
type commonFlags struct {
	workspaceID string
	debug       bool
	output      string
	test        bool
}

func (f *commonFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.workspaceID, "workspace-id", "", "Please provide the workspace id if you would like to override the default target workspace.")
	flags.BoolVar(&f.debug, "debug", false, "Verbose logging for request.")
	flags.StringVarP(&f.output, "output", "o", "", "Set output, only json supported.")
	flags.BoolVar(&f.test, "test", false, "Enhanced response for testing.")
	_ = flags.MarkHidden("workspace-id")
	_ = flags.MarkHidden("test")
}

// commandContext bundles the collaborators a single command invocation needs.
type commandContext struct {
	coord    *assessment.Coordinator
	checker  *update.Checker
	opts     assessment.Options
	renderer *render.Renderer
}

func newCommandContext(cmd *cobra.Command, flags commonFlags) (*commandContext, error) {
	profile, err := config.Load()
	if err != nil {
		return nil, err
	}
	if profile.AccessKey == "" {
		return nil, fmt.Errorf("no access key configured; run 'bonsai configure' or set BONSAI_ACCESS_KEY")
	}

	client := bonsai.NewClient(profile.AccessKey,
		bonsai.WithBaseURL(profile.GatewayURL),
		bonsai.WithWorkspace(profile.WorkspaceID),
		bonsai.WithUserAgent("bonsai-cli/"+Version),
		bonsai.WithDebug(flags.debug),
		bonsai.WithLogger(debugLogger),
	)

	opts := assessment.Options{
		Workspace: flags.workspaceID,
		Debug:     flags.debug,
		Output:    flags.output,
		Test:      flags.test,
	}

	coord := assessment.New(
		services.NewAssessmentService(client),
		services.NewBrainService(client),
		services.NewSimulatorService(client),
		&assessment.StdinConfirmer{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()},
		opts,
	)

	return &commandContext{
		coord:    coord,
		checker:  update.NewChecker(profile.UpdateURL, Version),
		opts:     opts,
		renderer: render.New(cmd.OutOrStdout(), opts.JSON(), opts.Test),
	}, nil
}

// finish collects the advisory version check started before the primary
// action. The notice prints only in interactive mode and never affects the
// command outcome.
func (cc *commandContext) finish(errOut io.Writer) {
	notice := cc.checker.Notice()
	if cc.opts.JSON() {
		return
	}
	if notice != "" {
		fmt.Fprintln(errOut, render.Notice(notice))
	}
}

func newStartCommand() *cobra.Command {
	var common commonFlags
	var params assessment.StartParams

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start running an assessment.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := newCommandContext(cmd, common)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			cc.checker.Start(ctx)

			var res *assessment.StartResult
			call := func() error {
				var callErr error
				res, callErr = cc.coord.Start(ctx, params)
				return callErr
			}
			if cc.opts.JSON() {
				err = call()
			} else {
				err = ui.RunWithProgress("Starting assessment...", call)
			}
			if err != nil {
				if res != nil && res.Provisioning == assessment.ProvisioningFailed {
					return fmt.Errorf("assessment %s of brain %s version %d started, but simulator provisioning failed: %w",
						res.Name, res.BrainName, res.BrainVersion, err)
				}
				return err
			}

			cc.renderer.Start(res)
			cc.finish(cmd.ErrOrStderr())
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&params.BrainName, "brain-name", "b", "", "[Required] Name of the brain.")
	flags.StringVarP(&params.ConceptName, "concept-name", "c", "", "[Required] Concept to assess.")
	flags.StringVarP(&params.ConfigFile, "file", "f", "", "[Required] Path to JSON assessment configuration file containing episode configurations.")
	flags.IntVar(&params.BrainVersion, "brain-version", 0, "The version of the brain to start assessing, defaults to latest.")
	flags.StringVarP(&params.Name, "name", "n", "", "Name of the assessment, defaults to an autogenerated name.")
	flags.StringVar(&params.DisplayName, "display-name", "", "Display name of the assessment.")
	flags.StringVar(&params.Description, "description", "", "Description for the assessment.")
	flags.StringVar(&params.MaximumDuration, "maximum-duration", "", "Maximum time duration the assessment should run for. Defaults to 24 hours, maximum allowed duration is 7 days. Format should be <duration><unit>. Units can be days (d), hours (h), or minutes (m), defaults to hours.")
	flags.IntVar(&params.EpisodeIterationLimit, "episode-iteration-limit", 0, "Maximum number of iterations per assessment episode, defaults to 1000.")
	flags.StringVar(&params.SimulatorPackageName, "simulator-package-name", "", "Simulator package to use for assessment in the case of managed simulators.")
	flags.IntVarP(&params.InstanceCount, "instance-count", "i", 0, "Number of simulator instances to perform assessment with, in the case of managed simulators.")
	common.register(cmd)

	return cmd
}

func newListCommand() *cobra.Command {
	var common commonFlags
	var brainName string
	var brainVersion int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all assessments for this brain version.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := newCommandContext(cmd, common)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			cc.checker.Start(ctx)

			res, err := cc.coord.List(ctx, brainName, brainVersion)
			if err != nil {
				return err
			}

			cc.renderer.List(res)
			cc.finish(cmd.ErrOrStderr())
			return nil
		},
	}

	cmd.Flags().StringVarP(&brainName, "brain-name", "b", "", "[Required] Name of the brain.")
	cmd.Flags().IntVar(&brainVersion, "brain-version", 0, "The version of the brain to list, defaults to latest.")
	common.register(cmd)

	return cmd
}

func newShowCommand() *cobra.Command {
	var common commonFlags
	var name, brainName string
	var brainVersion int

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show information about an assessment.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := newCommandContext(cmd, common)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			cc.checker.Start(ctx)

			res, err := cc.coord.Show(ctx, name, brainName, brainVersion)
			if err != nil {
				return err
			}

			cc.renderer.Show(res)
			cc.finish(cmd.ErrOrStderr())
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "[Required] Name of the assessment.")
	cmd.Flags().StringVarP(&brainName, "brain-name", "b", "", "[Required] Name of the brain.")
	cmd.Flags().IntVar(&brainVersion, "brain-version", 0, "The version of the brain to show, defaults to latest.")
	common.register(cmd)

	return cmd
}

func newGetConfigurationCommand() *cobra.Command {
	var common commonFlags
	var name, brainName, file string
	var brainVersion int

	cmd := &cobra.Command{
		Use:   "get-configuration",
		Short: "Get assessment configuration file.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := newCommandContext(cmd, common)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			cc.checker.Start(ctx)

			res, err := cc.coord.GetConfiguration(ctx, name, brainName, brainVersion, file)
			if err != nil {
				return err
			}

			cc.renderer.Configuration(res)
			cc.finish(cmd.ErrOrStderr())
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "[Required] Name of the assessment.")
	cmd.Flags().StringVarP(&brainName, "brain-name", "b", "", "[Required] Name of the brain.")
	cmd.Flags().IntVar(&brainVersion, "brain-version", 0, "The version of the brain to get configurations from, defaults to latest.")
	cmd.Flags().StringVarP(&file, "file", "f", "", "File to write assessment configuration to, defaults to console output.")
	common.register(cmd)

	return cmd
}

func newUpdateCommand() *cobra.Command {
	var common commonFlags
	var name, brainName, displayName, description string
	var brainVersion int

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update information about an assessment.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := newCommandContext(cmd, common)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			cc.checker.Start(ctx)

			res, err := cc.coord.Update(ctx, name, brainName, brainVersion, displayName, description)
			if err != nil {
				return err
			}

			cc.renderer.Update(res)
			cc.finish(cmd.ErrOrStderr())
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "[Required] Name of the assessment.")
	cmd.Flags().StringVarP(&brainName, "brain-name", "b", "", "[Required] Name of the brain.")
	cmd.Flags().IntVar(&brainVersion, "brain-version", 0, "The version of the brain to update, defaults to latest.")
	cmd.Flags().StringVar(&displayName, "display-name", "", "Display name of the assessment.")
	cmd.Flags().StringVar(&description, "description", "", "Description for the assessment.")
	common.register(cmd)

	return cmd
}

func newStopCommand() *cobra.Command {
	var common commonFlags
	var name, brainName string
	var brainVersion int

	cmd := &cobra.Command{
		Use:   "stop",
		Short: "Stop running an assessment.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := newCommandContext(cmd, common)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			cc.checker.Start(ctx)

			res, err := cc.coord.Stop(ctx, name, brainName, brainVersion)
			if err != nil {
				return err
			}

			cc.renderer.Stop(res)
			cc.finish(cmd.ErrOrStderr())
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "[Required] Name of the assessment.")
	cmd.Flags().StringVarP(&brainName, "brain-name", "b", "", "[Required] Name of the brain.")
	cmd.Flags().IntVar(&brainVersion, "brain-version", 0, "The version of the brain to stop, defaults to latest.")
	common.register(cmd)

	return cmd
}

func newDeleteCommand() *cobra.Command {
	var common commonFlags
	var name, brainName string
	var brainVersion int
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete an assessment.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := newCommandContext(cmd, common)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			cc.checker.Start(ctx)

			res, err := cc.coord.Delete(ctx, name, brainName, brainVersion, yes)
			if err != nil {
				return err
			}

			cc.renderer.Delete(res)
			cc.finish(cmd.ErrOrStderr())
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "[Required] Name of the assessment.")
	cmd.Flags().StringVarP(&brainName, "brain-name", "b", "", "[Required] Name of the brain.")
	cmd.Flags().IntVar(&brainVersion, "brain-version", 0, "The version of the brain to delete, defaults to latest.")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not prompt for confirmation.")
	common.register(cmd)

	return cmd
}
