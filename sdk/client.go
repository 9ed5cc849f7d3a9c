// Package bonsai provides the Go client for the Bonsai brain training API.
package bonsai

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// ClientOption is a function that configures a BonsaiClient
type ClientOption func(*BonsaiClient)

// BonsaiClient is the main client for interacting with the Bonsai API
// After creation, the client is immutable and safe for concurrent use
type BonsaiClient struct {
	baseURL     string
	accessToken string
	workspace   string
	userAgent   string
	httpClient  *http.Client

	// Custom headers to include in all requests
	headers map[string]string

	// Verbose request logging
	debug  bool
	logger *log.Logger

	timeout     time.Duration
	retryConfig *RetryConfig
}

// RetryConfig configures retry behavior for failed requests
type RetryConfig struct {
	MaxRetries int
	RetryDelay time.Duration
}

// NewClient creates a new BonsaiClient with the given options
func NewClient(accessToken string, opts ...ClientOption) *BonsaiClient {
	if accessToken == "" {
		panic("BONSAI_ACCESS_KEY is not set. Run 'bonsai configure' or set your access key in .env file or environment variables")
	}

	client := &BonsaiClient{
		baseURL:     "https://cp-api.bons.ai",
		accessToken: accessToken,
		userAgent:   "bonsai-cli-go",
		headers:     make(map[string]string),
		timeout:     30 * time.Second,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		retryConfig: &RetryConfig{
			MaxRetries: 3,
			RetryDelay: time.Second,
		},
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// WithBaseURL sets a custom base URL for the client
func WithBaseURL(url string) ClientOption {
	return func(c *BonsaiClient) {
		c.baseURL = url
	}
}

// WithWorkspace sets the default workspace for requests that do not carry an
// explicit override
func WithWorkspace(workspace string) ClientOption {
	return func(c *BonsaiClient) {
		c.workspace = workspace
	}
}

// WithTimeout sets the HTTP client timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *BonsaiClient) {
		c.timeout = timeout
		c.httpClient.Timeout = timeout
	}
}

// WithRetryConfig sets the retry configuration
func WithRetryConfig(config *RetryConfig) ClientOption {
	return func(c *BonsaiClient) {
		c.retryConfig = config
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *BonsaiClient) {
		c.httpClient = httpClient
	}
}

// WithHeader adds a custom header that will be included in all requests
func WithHeader(key, value string) ClientOption {
	return func(c *BonsaiClient) {
		c.headers[key] = value
	}
}

// WithUserAgent sets the User-Agent header sent with every request
func WithUserAgent(userAgent string) ClientOption {
	return func(c *BonsaiClient) {
		c.userAgent = userAgent
	}
}

// WithDebug enables verbose request logging through the configured logger
func WithDebug(debug bool) ClientOption {
	return func(c *BonsaiClient) {
		c.debug = debug
	}
}

// WithLogger sets the logger used for debug request logging
func WithLogger(logger *log.Logger) ClientOption {
	return func(c *BonsaiClient) {
		c.logger = logger
	}
}

// GetBaseURL returns the configured base URL
func (c *BonsaiClient) GetBaseURL() string {
	return c.baseURL
}

// Workspace returns the effective workspace for a request: the override when
// supplied, otherwise the client's default workspace
func (c *BonsaiClient) Workspace(override string) string {
	if override != "" {
		return override
	}
	return c.workspace
}

// NewRequest creates a new HTTP request with auth headers and custom headers
func (c *BonsaiClient) NewRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	url := fmt.Sprintf("%s%s", c.baseURL, path)

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	for key, value := range c.headers {
		req.Header.Set(key, value)
	}

	if c.debug && c.logger != nil {
		c.logger.Printf("request: %s %s", method, url)
	}

	return req, nil
}

// Do executes an HTTP request with retry logic. Requests with a rewindable
// body (anything created through NewRequest with a bytes or strings reader)
// are re-sent with a fresh body on each attempt.
func (c *BonsaiClient) Do(req *http.Request) (*http.Response, error) {
	var resp *http.Response
	var err error

	for attempt := 0; attempt <= c.retryConfig.MaxRetries; attempt++ {
		if attempt > 0 {
			if resp != nil {
				// Drain the discarded attempt so its connection can be reused.
				_, _ = io.Copy(io.Discard, resp.Body)
				resp.Body.Close()
			}
			if req.GetBody != nil {
				body, bodyErr := req.GetBody()
				if bodyErr != nil {
					return nil, fmt.Errorf("failed to rewind request body: %w", bodyErr)
				}
				req.Body = body
			}
			time.Sleep(c.retryConfig.RetryDelay * time.Duration(attempt))
		}

		resp, err = c.httpClient.Do(req)

		// Success or non-retryable error
		if err == nil && resp.StatusCode < 500 {
			if c.debug && c.logger != nil {
				c.logger.Printf("response: %s %s -> %d", req.Method, req.URL.Path, resp.StatusCode)
			}
			return resp, nil
		}
	}

	return resp, err
}
