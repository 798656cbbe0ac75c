// ABOUTME: HTTP client for the facial recognition authentication service
// ABOUTME: Wraps the simulate_auth call with proper error handling for CLI usage

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// SimulateAuthPath is the fixed endpoint for simulated authentication
const SimulateAuthPath = "/simulate_auth"

// RequestIDHeader carries a per-request correlation ID
const RequestIDHeader = "X-Request-ID"

const defaultTimeout = 30 * time.Second

// Client is the API client for the authentication service
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the overall request timeout. The HTTP client is copied
// first so a shared client passed to WithHTTPClient is never modified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		hc := *c.httpClient
		hc.Timeout = d
		c.httpClient = &hc
	}
}

// New creates a new API client with the given base URL
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the backend URL the client talks to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// AuthRequest is the body of a simulate_auth call
type AuthRequest struct {
	EmployeeID string `json:"employee_id"`
}

// Authenticate calls POST /simulate_auth for a single employee.
// The employee ID is sent as-is. Any JSON reply is returned as a verdict,
// whatever its status code; only unreachable services and non-JSON bodies
// are errors.
func (c *Client) Authenticate(ctx context.Context, employeeID string) (*AuthResult, error) {
	body, err := json.Marshal(AuthRequest{EmployeeID: employeeID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal input: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+SimulateAuthPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(RequestIDHeader, uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.handleRequestError(ctx, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.handleRequestError(ctx, err)
	}

	result, err := Parse(raw)
	if err != nil {
		return nil, c.handleErrorResponse(resp, err)
	}
	result.StatusCode = resp.StatusCode
	return result, nil
}

// handleRequestError converts context errors to user-friendly messages
func (c *Client) handleRequestError(ctx context.Context, err error) error {
	if ctx.Err() == context.Canceled {
		return fmt.Errorf("request canceled")
	}
	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("request timed out")
	}
	return fmt.Errorf("cannot connect to backend at %s: %w", c.baseURL, err)
}

// handleErrorResponse names the status of a reply whose body was unusable
func (c *Client) handleErrorResponse(resp *http.Response, err error) error {
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("backend returned status %d: %w", resp.StatusCode, err)
	}
	return err
}
