// Package assessment orchestrates the lifecycle of assessment runs against a
// brain version: it resolves implicit parameters, validates user input,
// drives the remote API, and produces normalized result records for
// presentation.
package assessment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	bonsai "github.com/faisalkhan91/bonsai-cli/sdk"
	"github.com/faisalkhan91/bonsai-cli/sdk/models"
)

// AssessmentAPI is the slice of the SDK surface the coordinator drives for
// assessment lifecycle requests.
type AssessmentAPI interface {
	Start(ctx context.Context, brainName string, version int, request *models.StartAssessmentRequest, workspace string) (*models.Assessment, error)
	List(ctx context.Context, brainName string, version int, workspace string) (*models.AssessmentList, error)
	Get(ctx context.Context, name, brainName string, version int, workspace string) (*models.Assessment, error)
	Update(ctx context.Context, name, brainName string, version int, request *models.UpdateAssessmentRequest, workspace string) (*models.Assessment, error)
	Stop(ctx context.Context, name, brainName string, version int, workspace string) (*models.Assessment, error)
	Delete(ctx context.Context, name, brainName string, version int, workspace string) (*models.APIStatus, error)
}

// BrainAPI resolves brain versions.
type BrainAPI interface {
	GetLatestVersion(ctx context.Context, brainName, note, workspace string) (*models.BrainVersion, error)
}

// SimulatorAPI looks up simulator packages and provisions collections.
type SimulatorAPI interface {
	GetPackage(ctx context.Context, name, workspace string) (*models.SimPackage, error)
	CreateCollection(ctx context.Context, request *models.SimCollectionRequest, workspace string) (*models.SimCollection, error)
}

// Options carries the per-invocation flags shared by every assessment
// command. It is resolved once by the CLI layer and passed in at
// construction.
type Options struct {
	Workspace string
	Debug     bool
	Output    string // "json" or empty for human-readable
	Test      bool
}

// JSON reports whether output should be machine-readable.
func (o Options) JSON() bool {
	return o.Output == "json"
}

// Coordinator is the per-command orchestrator for assessment operations.
type Coordinator struct {
	assessments AssessmentAPI
	brains      BrainAPI
	simulators  SimulatorAPI
	confirm     Confirmer
	opts        Options
}

func New(assessments AssessmentAPI, brains BrainAPI, simulators SimulatorAPI, confirm Confirmer, opts Options) *Coordinator {
	return &Coordinator{
		assessments: assessments,
		brains:      brains,
		simulators:  simulators,
		confirm:     confirm,
		opts:        opts,
	}
}

// StartParams are the validated-but-unresolved inputs of a start command.
type StartParams struct {
	Name                  string
	DisplayName           string
	Description           string
	BrainName             string
	ConceptName           string
	ConfigFile            string
	BrainVersion          int
	MaximumDuration       string
	EpisodeIterationLimit int
	SimulatorPackageName  string
	InstanceCount         int
}

const (
	defaultMaximumDuration       = "24" // hours
	defaultEpisodeIterationLimit = 1000
)

// Start validates the request, resolves the brain version, loads the episode
// configuration, starts the assessment, and optionally provisions managed
// simulators. The assessment is created before simulators are provisioned;
// when provisioning fails the returned StartResult still describes the
// created assessment, with Provisioning set to ProvisioningFailed.
func (c *Coordinator) Start(ctx context.Context, p StartParams) (*StartResult, error) {
	var problems []string
	if p.BrainName == "" {
		problems = append(problems, "Name of the brain is required")
	}
	if p.ConceptName == "" {
		problems = append(problems, "Concept name is required")
	}
	if p.ConfigFile == "" {
		problems = append(problems, "Path to JSON assessment configuration file is required")
	}

	duration := p.MaximumDuration
	if duration == "" {
		duration = defaultMaximumDuration
	}
	maximumDurationInMinutes, err := ParseDuration(duration)
	if err != nil {
		problems = append(problems, "Invalid format for maximum duration. Please use suffix 'm' if specifying in minutes OR suffix 'h' if specifying in hours OR suffix 'd' if specifying in days.")
	}

	if len(problems) > 0 {
		return nil, &bonsai.ValidationError{Field: "assessment start", Message: strings.Join(problems, "\n")}
	}

	version, err := c.resolveVersion(ctx, p.BrainName, p.BrainVersion,
		fmt.Sprintf("Start assessment %s of brain %s", p.Name, p.BrainName))
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(p.ConfigFile)
	if err != nil {
		return nil, &bonsai.ValidationError{Field: "file", Message: err.Error()}
	}
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, &bonsai.ValidationError{
			Field:   "file",
			Message: fmt.Sprintf("Error reading JSON in %s: %v", p.ConfigFile, err),
		}
	}

	limit := p.EpisodeIterationLimit
	if limit <= 0 {
		limit = defaultEpisodeIterationLimit
	}

	resp, err := c.assessments.Start(ctx, p.BrainName, version, &models.StartAssessmentRequest{
		Name:                     p.Name,
		DisplayName:              p.DisplayName,
		Description:              p.Description,
		ConceptName:              p.ConceptName,
		Scenarios:                json.RawMessage(raw),
		EpisodeIterationLimit:    limit,
		MaximumDurationInMinutes: maximumDurationInMinutes,
	}, c.opts.Workspace)
	if err != nil {
		if isAuthentication(err) {
			return nil, err
		}
		if bonsai.IsConflictMessage(err) {
			return nil, &bonsai.ConflictError{Kind: "Assessment", Name: p.Name, Err: err}
		}
		return nil, err
	}

	result := &StartResult{
		Name:         resp.Name,
		BrainName:    p.BrainName,
		BrainVersion: version,
		Provisioning: ProvisioningSkipped,
		APIStatus:    resp.APIStatus,
	}

	if p.SimulatorPackageName != "" {
		if err := c.provisionSimulators(ctx, p.SimulatorPackageName, p.InstanceCount, p.BrainName, version, p.ConceptName); err != nil {
			result.Provisioning = ProvisioningFailed
			return result, err
		}
		result.Provisioning = Provisioned
	}

	return result, nil
}

// List fetches the assessments of a brain version. Items missing any of the
// name, state, or description fields are dropped from the rows.
func (c *Coordinator) List(ctx context.Context, brainName string, brainVersion int) (*ListResult, error) {
	if brainName == "" {
		return nil, &bonsai.ValidationError{
			Field:   "brain-name",
			Message: "Name of the brain for which assessments are to be listed is required",
		}
	}

	version, err := c.resolveVersion(ctx, brainName, brainVersion,
		fmt.Sprintf("List assessments of brain %s", brainName))
	if err != nil {
		return nil, err
	}

	resp, err := c.assessments.List(ctx, brainName, version, c.opts.Workspace)
	if err != nil {
		return nil, err
	}

	result := &ListResult{
		BrainName:    brainName,
		BrainVersion: version,
		APIStatus:    resp.APIStatus,
	}

	if len(resp.Value) == 0 {
		result.Empty = true
		return result, nil
	}

	for _, item := range resp.Value {
		// If an item is missing a field, ignore it.
		if item.Name == nil || item.State == nil || item.Description == nil {
			continue
		}
		result.Rows = append(result.Rows, ListRow{
			AssessmentName: *item.Name,
			Status:         MapStatus(*item.State),
			Description:    *item.Description,
		})
	}

	return result, nil
}

// Show fetches a single assessment.
func (c *Coordinator) Show(ctx context.Context, name, brainName string, brainVersion int) (*ShowResult, error) {
	if err := validateIdentity(name, brainName); err != nil {
		return nil, err
	}

	version, err := c.resolveVersion(ctx, brainName, brainVersion,
		fmt.Sprintf("Show assessment %s of brain %s", name, brainName))
	if err != nil {
		return nil, err
	}

	resp, err := c.assessments.Get(ctx, name, brainName, version, c.opts.Workspace)
	if err != nil {
		return nil, classifyAssessmentError(name, err)
	}

	return &ShowResult{
		AssessmentName: resp.Name,
		DisplayName:    resp.DisplayName,
		Description:    resp.Description,
		Status:         MapStatus(resp.State),
		RunTime:        resp.RunTime,
		Concept:        resp.Concept,
		ConceptLesson:  resp.LessonIndex,
		CreatedOn:      resp.CreatedTimeStamp,
		ModifiedOn:     resp.ModifiedTimeStamp,
		APIStatus:      resp.APIStatus,
	}, nil
}

// GetConfiguration fetches an assessment's episode configuration and either
// writes it to outputFile or returns it for direct emission.
func (c *Coordinator) GetConfiguration(ctx context.Context, name, brainName string, brainVersion int, outputFile string) (*ConfigurationResult, error) {
	if err := validateIdentity(name, brainName); err != nil {
		return nil, err
	}

	version, err := c.resolveVersion(ctx, brainName, brainVersion,
		fmt.Sprintf("Get-configuration assessment %s of brain %s", name, brainName))
	if err != nil {
		return nil, err
	}

	resp, err := c.assessments.Get(ctx, name, brainName, version, c.opts.Workspace)
	if err != nil {
		return nil, classifyAssessmentError(name, err)
	}

	result := &ConfigurationResult{
		Name:          name,
		BrainName:     brainName,
		BrainVersion:  version,
		Configuration: resp.Scenarios,
		APIStatus:     resp.APIStatus,
	}

	if outputFile != "" {
		if err := os.WriteFile(outputFile, resp.Scenarios, 0o644); err != nil {
			return nil, &bonsai.ValidationError{Field: "file", Message: err.Error()}
		}
		result.SavedTo = outputFile
	}

	return result, nil
}

// Update changes an assessment's display name and description.
func (c *Coordinator) Update(ctx context.Context, name, brainName string, brainVersion int, displayName, description string) (*UpdateResult, error) {
	if err := validateIdentity(name, brainName); err != nil {
		return nil, err
	}

	version, err := c.resolveVersion(ctx, brainName, brainVersion,
		fmt.Sprintf("Update assessment %s of brain %s", name, brainName))
	if err != nil {
		return nil, err
	}

	resp, err := c.assessments.Update(ctx, name, brainName, version, &models.UpdateAssessmentRequest{
		DisplayName: displayName,
		Description: description,
	}, c.opts.Workspace)
	if err != nil {
		return nil, classifyAssessmentError(name, err)
	}

	return &UpdateResult{
		Name:         name,
		BrainName:    brainName,
		BrainVersion: version,
		APIStatus:    resp.APIStatus,
	}, nil
}

// Stop transitions a running assessment to the cancelled state.
func (c *Coordinator) Stop(ctx context.Context, name, brainName string, brainVersion int) (*StopResult, error) {
	if err := validateIdentity(name, brainName); err != nil {
		return nil, err
	}

	version, err := c.resolveVersion(ctx, brainName, brainVersion,
		fmt.Sprintf("Stop assessment %s of brain %s", name, brainName))
	if err != nil {
		return nil, err
	}

	resp, err := c.assessments.Stop(ctx, name, brainName, version, c.opts.Workspace)
	if err != nil {
		return nil, classifyAssessmentError(name, err)
	}

	return &StopResult{
		Name:         name,
		BrainName:    brainName,
		BrainVersion: version,
		APIStatus:    resp.APIStatus,
	}, nil
}

// Delete removes an assessment. Unless skipConfirmation is set, the
// configured Confirmer is asked first; a declined confirmation makes the
// command a successful no-op.
func (c *Coordinator) Delete(ctx context.Context, name, brainName string, brainVersion int, skipConfirmation bool) (*DeleteResult, error) {
	if err := validateIdentity(name, brainName); err != nil {
		return nil, err
	}

	version, err := c.resolveVersion(ctx, brainName, brainVersion,
		fmt.Sprintf("Delete assessment %s of brain %s", name, brainName))
	if err != nil {
		return nil, err
	}

	if !skipConfirmation {
		confirmed, err := c.confirm.Confirm(
			fmt.Sprintf("Are you sure you want to delete assessment %s of brain %s version %d (y/n?).", name, brainName, version))
		if err != nil {
			return nil, err
		}
		if !confirmed {
			return &DeleteResult{Name: name, BrainName: brainName, BrainVersion: version, Deleted: false}, nil
		}
	}

	resp, err := c.assessments.Delete(ctx, name, brainName, version, c.opts.Workspace)
	if err != nil {
		return nil, err
	}

	return &DeleteResult{
		Name:         name,
		BrainName:    brainName,
		BrainVersion: version,
		Deleted:      true,
		APIStatus:    *resp,
	}, nil
}

func validateIdentity(name, brainName string) error {
	var problems []string
	if name == "" {
		problems = append(problems, "Name of the assessment is required")
	}
	if brainName == "" {
		problems = append(problems, "Name of the brain is required")
	}
	if len(problems) > 0 {
		return &bonsai.ValidationError{Field: "assessment", Message: strings.Join(problems, "\n")}
	}
	return nil
}

// classifyAssessmentError maps a "not found" server message onto a typed
// NotFoundError. Authentication errors pass through unchanged, as does
// everything else.
func classifyAssessmentError(name string, err error) error {
	if isAuthentication(err) {
		return err
	}
	if bonsai.IsNotFoundMessage(err) {
		return &bonsai.NotFoundError{Kind: "Assessment", Name: name, Err: err}
	}
	return err
}

func isAuthentication(err error) bool {
	var authErr *bonsai.AuthenticationError
	return errors.As(err, &authErr)
}
