package assessment

import (
	"encoding/json"
	"fmt"

	"github.com/faisalkhan91/bonsai-cli/sdk/models"
)

// ProvisioningState reports how the optional managed-simulator step of a
// start command ended. Start-then-provision has no rollback: a failed
// provisioning leaves a started assessment with no simulators attached, and
// callers need to be able to see that.
type ProvisioningState int

const (
	// ProvisioningSkipped means no simulator package was requested.
	ProvisioningSkipped ProvisioningState = iota
	// Provisioned means the simulator collection was created.
	Provisioned
	// ProvisioningFailed means the assessment started but its simulator
	// collection could not be created.
	ProvisioningFailed
)

// StartResult is the outcome of a start command.
type StartResult struct {
	Name         string
	BrainName    string
	BrainVersion int
	Provisioning ProvisioningState

	models.APIStatus
}

func (r *StartResult) Message() string {
	return fmt.Sprintf("Started assessment %s of brain %s version %d.", r.Name, r.BrainName, r.BrainVersion)
}

// ListRow is one renderable entry of a listing.
type ListRow struct {
	AssessmentName string `json:"assessmentName"`
	Status         Status `json:"status"`
	Description    string `json:"description"`
}

// ListResult is the outcome of a list command. Empty is set when the remote
// collection held no assessments at all, which is informational rather than
// an error. Rows holds only items that carried all three renderable fields.
type ListResult struct {
	BrainName    string
	BrainVersion int
	Empty        bool
	Rows         []ListRow

	models.APIStatus
}

func (r *ListResult) Message() string {
	return fmt.Sprintf("No assessments exist for brain %s version %d", r.BrainName, r.BrainVersion)
}

// ShowResult is the outcome of a show command.
type ShowResult struct {
	AssessmentName string
	DisplayName    string
	Description    string
	Status         Status
	RunTime        string
	Concept        string
	ConceptLesson  int
	CreatedOn      string
	ModifiedOn     string

	models.APIStatus
}

// ConfigurationResult is the outcome of a get-configuration command. SavedTo
// is the destination file when one was requested, empty when the
// configuration is emitted directly.
type ConfigurationResult struct {
	Name          string
	BrainName     string
	BrainVersion  int
	SavedTo       string
	Configuration json.RawMessage

	models.APIStatus
}

func (r *ConfigurationResult) Message() string {
	return fmt.Sprintf("Assessment configuration saved from assessment %s brain %s version %d to %s.",
		r.Name, r.BrainName, r.BrainVersion, r.SavedTo)
}

// UpdateResult is the outcome of an update command.
type UpdateResult struct {
	Name         string
	BrainName    string
	BrainVersion int

	models.APIStatus
}

func (r *UpdateResult) Message() string {
	return fmt.Sprintf("Updated assessment %s of brain %s version %d.", r.Name, r.BrainName, r.BrainVersion)
}

// StopResult is the outcome of a stop command.
type StopResult struct {
	Name         string
	BrainName    string
	BrainVersion int

	models.APIStatus
}

func (r *StopResult) Message() string {
	return fmt.Sprintf("Stopped assessment %s of brain %s version %d.", r.Name, r.BrainName, r.BrainVersion)
}

// DeleteResult is the outcome of a delete command. Deleted is false when the
// user declined the confirmation prompt, in which case the command is a
// silent no-op.
type DeleteResult struct {
	Name         string
	BrainName    string
	BrainVersion int
	Deleted      bool

	models.APIStatus
}

func (r *DeleteResult) Message() string {
	return fmt.Sprintf("Deleted assessment %s of brain %s version %d.", r.Name, r.BrainName, r.BrainVersion)
}
