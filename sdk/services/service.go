// Package services provides the per-resource services for Bonsai API
// operations. Each service issues requests through a ClientInterface and
// decodes structured errors from the response body.
package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	bonsai "github.com/faisalkhan91/bonsai-cli/sdk"
	"github.com/faisalkhan91/bonsai-cli/sdk/models"
)

// ClientInterface defines the methods services need from BonsaiClient
type ClientInterface interface {
	NewRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error)
	Do(req *http.Request) (*http.Response, error)
	Workspace(override string) string
}

// decodeError turns a non-2xx response into a typed error. 401/403 become
// AuthenticationError; everything else becomes APIError with whatever detail
// the server provided.
func decodeError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	message := strings.TrimSpace(string(body))
	var errResp struct {
		Error   string `json:"error"`
		Message string `json:"message"`
		Detail  string `json:"detail"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil {
		switch {
		case errResp.Error != "":
			message = errResp.Error
		case errResp.Message != "":
			message = errResp.Message
		case errResp.Detail != "":
			message = errResp.Detail
		}
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return &bonsai.AuthenticationError{
			StatusCode: resp.StatusCode,
			Message:    message,
		}
	}

	return &bonsai.APIError{
		StatusCode: resp.StatusCode,
		Message:    message,
		RequestID:  resp.Header.Get("X-Request-Id"),
	}
}

// apiStatus builds the round-trip record surfaced in test-mode output.
func apiStatus(resp *http.Response, started time.Time, elapsed time.Duration) models.APIStatus {
	return models.APIStatus{
		Status:     resp.Status,
		StatusCode: resp.StatusCode,
		Elapsed:    elapsed,
		TimeTaken:  time.Since(started),
	}
}
