package models

import "encoding/json"

// Assessment is the remote view of an assessment run. It is fetched per
// command invocation and never persisted locally.
type Assessment struct {
	Name                     string          `json:"name"`
	DisplayName              string          `json:"displayName"`
	Description              string          `json:"description"`
	Concept                  string          `json:"concept"`
	LessonIndex              int             `json:"lessonIndex"`
	State                    string          `json:"state"`
	RunTime                  string          `json:"runTime"`
	Scenarios                json.RawMessage `json:"scenarios"`
	EpisodeIterationLimit    int             `json:"episodeIterationLimit"`
	MaximumDurationInMinutes int             `json:"maximumDurationInMinutes"`
	CreatedTimeStamp         string          `json:"createdTimeStamp"`
	ModifiedTimeStamp        string          `json:"modifiedTimeStamp"`

	APIStatus
}

// AssessmentSummary is a single entry of a list response. Fields are pointers
// so that entries missing one of them can be told apart from empty values and
// dropped from listings.
type AssessmentSummary struct {
	Name        *string `json:"name"`
	State       *string `json:"state"`
	Description *string `json:"description"`
}

// AssessmentList is the collection response for a brain version.
type AssessmentList struct {
	Value []AssessmentSummary `json:"value"`

	APIStatus
}

// StartAssessmentRequest is the payload for starting an assessment. Brain
// name, version and workspace travel in the request path.
type StartAssessmentRequest struct {
	Name                     string          `json:"name,omitempty"`
	DisplayName              string          `json:"displayName,omitempty"`
	Description              string          `json:"description,omitempty"`
	ConceptName              string          `json:"conceptName"`
	Scenarios                json.RawMessage `json:"scenarios"`
	EpisodeIterationLimit    int             `json:"episodeIterationLimit"`
	MaximumDurationInMinutes int             `json:"maximumDurationInMinutes"`
}

// UpdateAssessmentRequest carries the mutable presentation fields.
type UpdateAssessmentRequest struct {
	DisplayName string `json:"displayName,omitempty"`
	Description string `json:"description,omitempty"`
}

// StopAssessmentRequest transitions an assessment's remote state.
type StopAssessmentRequest struct {
	State string `json:"state"`
}
