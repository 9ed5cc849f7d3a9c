// Package update performs the advisory newer-client-version lookup. The
// check runs in the background while a command does its real work and never
// affects the command's outcome.
package update

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Checker fetches release metadata and compares it to the installed version.
type Checker struct {
	url     string
	current string
	client  *http.Client

	results chan string
}

// NewChecker creates a checker for the given release-metadata URL.
func NewChecker(url, current string) *Checker {
	return &Checker{
		url:     url,
		current: current,
		client:  &http.Client{Timeout: 3 * time.Second},
	}
}

// Start launches the lookup in the background. Call Notice afterwards to
// collect the result.
func (c *Checker) Start(ctx context.Context) {
	results := make(chan string, 1)
	c.results = results

	go func() {
		defer close(results)
		latest, err := c.fetchLatest(ctx)
		if err == nil {
			results <- latest
		}
	}()
}

// Notice waits for the background lookup and returns an advisory message
// when a newer version is available, or an empty string otherwise. Lookup
// failures are swallowed: the check must never fail a command.
func (c *Checker) Notice() string {
	if c.results == nil {
		return ""
	}
	latest, ok := <-c.results
	if !ok || latest == "" || latest == c.current {
		return ""
	}
	return fmt.Sprintf("A newer version of bonsai-cli is available: %s (installed: %s)", latest, c.current)
}

func (c *Checker) fetchLatest(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.url, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var release struct {
		Version string `json:"version"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", err
	}

	return release.Version, nil
}
