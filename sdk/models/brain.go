package models

// BrainVersion is the response of the latest-version lookup for a brain.
type BrainVersion struct {
	Version int `json:"version"`

	APIStatus
}
