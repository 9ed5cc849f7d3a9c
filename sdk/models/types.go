// Package models provides the data structures exchanged with the Bonsai API.
package models

import "time"

// APIStatus carries the round-trip fields every service response reports:
// the HTTP status line, status code, and the timings surfaced in test-mode
// output. It is populated by the service layer, not decoded from the body.
type APIStatus struct {
	Status     string        `json:"-"`
	StatusCode int           `json:"-"`
	Elapsed    time.Duration `json:"-"`
	TimeTaken  time.Duration `json:"-"`
}
