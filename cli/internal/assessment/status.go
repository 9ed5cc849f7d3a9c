package assessment

import "strings"

// Status is the user-facing assessment status vocabulary.
type Status string

const (
	StatusInProgress Status = "In progress"
	StatusComplete   Status = "Complete"
	StatusError      Status = "Error"
	StatusUnknown    Status = ""
)

// MapStatus folds a raw remote lifecycle state into the user-facing status
// vocabulary. Case-insensitive and total: unrecognized states map to
// StatusUnknown, never an error.
func MapStatus(state string) Status {
	switch strings.ToLower(state) {
	case "active":
		return StatusInProgress
	case "cancelled", "complete", "deadlineexceeded":
		return StatusComplete
	case "error":
		return StatusError
	}
	return StatusUnknown
}
