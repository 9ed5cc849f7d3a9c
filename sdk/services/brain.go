package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/faisalkhan91/bonsai-cli/sdk/models"
)

type BrainService struct {
	client ClientInterface
}

func NewBrainService(client ClientInterface) *BrainService {
	return &BrainService{
		client: client,
	}
}

// GetLatestVersion looks up the most recent version of a brain. The note is a
// human-readable description of the calling operation, forwarded to the
// server for its audit log.
func (s *BrainService) GetLatestVersion(ctx context.Context, brainName, note, workspace string) (*models.BrainVersion, error) {
	path := fmt.Sprintf("/v2/workspaces/%s/brains/%s/versions/latest",
		url.PathEscape(s.client.Workspace(workspace)), url.PathEscape(brainName))

	req, err := s.client.NewRequest(ctx, "GET", path, nil)
	if err != nil {
		return nil, err
	}
	if note != "" {
		req.Header.Set("X-Operation-Note", note)
	}

	started := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	elapsed := time.Since(started)

	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp)
	}

	var version models.BrainVersion
	if err := json.NewDecoder(resp.Body).Decode(&version); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	version.APIStatus = apiStatus(resp, started, elapsed)

	return &version, nil
}
