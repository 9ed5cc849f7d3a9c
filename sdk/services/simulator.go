// Package services provides the simulator service for Bonsai API operations.
//
// This file implements the SimulatorService which looks up managed simulator
// package descriptors and provisions simulator collections sized from them.
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/faisalkhan91/bonsai-cli/sdk/models"
)

type SimulatorService struct {
	client ClientInterface
}

func NewSimulatorService(client ClientInterface) *SimulatorService {
	return &SimulatorService{
		client: client,
	}
}

// GetPackage retrieves a managed simulator package descriptor by name.
func (s *SimulatorService) GetPackage(ctx context.Context, name, workspace string) (*models.SimPackage, error) {
	path := fmt.Sprintf("/v2/workspaces/%s/simulatorpackages/%s",
		url.PathEscape(s.client.Workspace(workspace)), url.PathEscape(name))

	req, err := s.client.NewRequest(ctx, "GET", path, nil)
	if err != nil {
		return nil, err
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

	var pkg models.SimPackage
	if err := json.NewDecoder(resp.Body).Decode(&pkg); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	pkg.APIStatus = apiStatus(resp, started, elapsed)

	return &pkg, nil
}

// CreateCollection provisions a simulator collection.
func (s *SimulatorService) CreateCollection(ctx context.Context, request *models.SimCollectionRequest, workspace string) (*models.SimCollection, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	path := fmt.Sprintf("/v2/workspaces/%s/simulatorcollections",
		url.PathEscape(s.client.Workspace(workspace)))

	req, err := s.client.NewRequest(ctx, "POST", path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	started := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	elapsed := time.Since(started)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, decodeError(resp)
	}

	var collection models.SimCollection
	if err := json.NewDecoder(resp.Body).Decode(&collection); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	collection.APIStatus = apiStatus(resp, started, elapsed)

	return &collection, nil
}
