// Package services provides the assessment service for Bonsai API operations.
//
// This file implements the AssessmentService which manages the lifecycle of
// assessment runs against a brain version: starting, listing, showing,
// updating, stopping, and deleting assessments.
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

type AssessmentService struct {
	client ClientInterface
}

func NewAssessmentService(client ClientInterface) *AssessmentService {
	return &AssessmentService{
		client: client,
	}
}

func (s *AssessmentService) collectionPath(brainName string, version int, workspace string) string {
	return fmt.Sprintf("/v2/workspaces/%s/brains/%s/versions/%d/assessments",
		url.PathEscape(s.client.Workspace(workspace)), url.PathEscape(brainName), version)
}

func (s *AssessmentService) itemPath(name, brainName string, version int, workspace string) string {
	return s.collectionPath(brainName, version, workspace) + "/" + url.PathEscape(name)
}

// Start creates and starts a new assessment for the given brain version.
func (s *AssessmentService) Start(ctx context.Context, brainName string, version int, request *models.StartAssessmentRequest, workspace string) (*models.Assessment, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := s.client.NewRequest(ctx, "POST", s.collectionPath(brainName, version, workspace), bytes.NewReader(body))
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

	var assessment models.Assessment
	if err := json.NewDecoder(resp.Body).Decode(&assessment); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	assessment.APIStatus = apiStatus(resp, started, elapsed)

	return &assessment, nil
}

// List retrieves all assessments for a brain version.
func (s *AssessmentService) List(ctx context.Context, brainName string, version int, workspace string) (*models.AssessmentList, error) {
	req, err := s.client.NewRequest(ctx, "GET", s.collectionPath(brainName, version, workspace), nil)
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

	var list models.AssessmentList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	list.APIStatus = apiStatus(resp, started, elapsed)

	return &list, nil
}

// Get retrieves a single assessment by name.
func (s *AssessmentService) Get(ctx context.Context, name, brainName string, version int, workspace string) (*models.Assessment, error) {
	req, err := s.client.NewRequest(ctx, "GET", s.itemPath(name, brainName, version, workspace), nil)
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

	var assessment models.Assessment
	if err := json.NewDecoder(resp.Body).Decode(&assessment); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	assessment.APIStatus = apiStatus(resp, started, elapsed)

	return &assessment, nil
}

// Update changes an assessment's display name and description.
func (s *AssessmentService) Update(ctx context.Context, name, brainName string, version int, request *models.UpdateAssessmentRequest, workspace string) (*models.Assessment, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := s.client.NewRequest(ctx, "PUT", s.itemPath(name, brainName, version, workspace), bytes.NewReader(body))
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

	var assessment models.Assessment
	if err := json.NewDecoder(resp.Body).Decode(&assessment); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	assessment.APIStatus = apiStatus(resp, started, elapsed)

	return &assessment, nil
}

// Stop transitions a running assessment to the cancelled state.
func (s *AssessmentService) Stop(ctx context.Context, name, brainName string, version int, workspace string) (*models.Assessment, error) {
	body, err := json.Marshal(&models.StopAssessmentRequest{State: "cancelled"})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := s.client.NewRequest(ctx, "PATCH", s.itemPath(name, brainName, version, workspace), bytes.NewReader(body))
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

	var assessment models.Assessment
	if err := json.NewDecoder(resp.Body).Decode(&assessment); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	assessment.APIStatus = apiStatus(resp, started, elapsed)

	return &assessment, nil
}

// Delete removes an assessment.
func (s *AssessmentService) Delete(ctx context.Context, name, brainName string, version int, workspace string) (*models.APIStatus, error) {
	req, err := s.client.NewRequest(ctx, "DELETE", s.itemPath(name, brainName, version, workspace), nil)
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

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return nil, decodeError(resp)
	}

	status := apiStatus(resp, started, elapsed)
	return &status, nil
}
