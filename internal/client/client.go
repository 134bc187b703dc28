// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package client

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/jeranaias/chatbar/internal/config"
)

// Configuration constants for the widget backend API.
const (
	// DefaultTimeout bounds every request so a hung backend cannot leave
	// the widget stuck in its sending state.
	DefaultTimeout = 30 * time.Second

	// MaxResponseSize is the maximum allowed response body size.
	// SECURITY: Response size limit prevents memory exhaustion.
	MaxResponseSize = 1 * 1024 * 1024 // 1MB limit

	// requestsPerSecond is the courtesy limit on backend calls. The widget
	// only ever has one chat request in flight, so this mainly guards
	// pathological hosts that re-init rapidly.
	requestsPerSecond = 2
)

// Error variables for common backend errors.
var (
	// ErrNotConfigured indicates the base URL or widget key is not set.
	ErrNotConfigured = errors.New("widget backend not configured")
)

// BackendError represents a failure reported by the backend: the transport
// succeeded but the response status indicates an error.
type BackendError struct {
	Status  int
	Message string
}

// Error implements the error interface.
func (e *BackendError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend error (HTTP %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend error (HTTP %d)", e.Status)
}

// =============================================================================
// WIRE TYPES
// =============================================================================

// ChatRequest is the JSON body of a chat exchange.
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

// ChatResponse is the JSON body of a successful chat exchange. SessionID is
// optional; when present it replaces the widget's current session identifier.
type ChatResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id,omitempty"`
}

// apiErrorResponse is the error envelope some backends return on failure.
type apiErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// =============================================================================
// CLIENT
// =============================================================================

// Client talks to the widget backend for one widget instance.
type Client struct {
	baseURL    string
	widgetKey  string
	httpClient *http.Client
	limiter    *rate.Limiter
	timeout    time.Duration
}

// New creates a client for the given backend base URL and widget key.
func New(baseURL, widgetKey string) *Client {
	return &Client{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		widgetKey: strings.TrimSpace(widgetKey),
		httpClient: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 2,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 10 * time.Second,
				TLSClientConfig: &tls.Config{
					MinVersion: tls.VersionTLS12,
				},
			},
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond),
		timeout: DefaultTimeout,
	}
}

// WithTimeout sets the per-request timeout.
func (c *Client) WithTimeout(timeout time.Duration) *Client {
	c.timeout = timeout
	c.httpClient.Timeout = timeout
	return c
}

// Timeout returns the per-request timeout.
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// IsConfigured returns true if the client has a base URL and widget key.
func (c *Client) IsConfigured() bool {
	return c.baseURL != "" && c.widgetKey != ""
}

// Close releases idle connections held by the client.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// configURL and chatURL build the two backend endpoints.
func (c *Client) configURL() string {
	return c.baseURL + "/widget/" + c.widgetKey + "/config"
}

func (c *Client) chatURL() string {
	return c.baseURL + "/widget/" + c.widgetKey + "/chat"
}

// setHeaders sets the required headers for backend requests.
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "chatbar/0.1.0")
}

// logRequest logs an API request without exposing message content.
func (c *Client) logRequest(req *http.Request) {
	log.Printf("widget API request: %s %s", req.Method, req.URL.Path)
}

// logResponse logs an API response with duration, never the body.
func (c *Client) logResponse(resp *http.Response, duration time.Duration) {
	log.Printf("widget API response: %d (%v)", resp.StatusCode, duration)
}

// =============================================================================
// CONFIGURATION FETCH
// =============================================================================

// FetchConfig retrieves the remote configuration overlay for this widget.
// Callers treat any error as non-fatal and fall back to caller-supplied
// configuration.
func (c *Client) FetchConfig(ctx context.Context) (*config.Remote, error) {
	if !c.IsConfigured() {
		return nil, ErrNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.configURL(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req)
	c.logRequest(req)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("config fetch failed: %w", err)
	}
	defer resp.Body.Close()
	c.logResponse(resp, time.Since(start))

	body, err := readResponse(resp)
	if err != nil {
		return nil, err
	}

	if !isSuccess(resp.StatusCode) {
		return nil, backendError(resp.StatusCode, body)
	}

	var remote config.Remote
	if err := json.Unmarshal(body, &remote); err != nil {
		return nil, fmt.Errorf("failed to parse config response: %w", err)
	}
	return &remote, nil
}

// =============================================================================
// CHAT EXCHANGE
// =============================================================================

// Send posts one message to the backend and returns its reply.
//
// The error is a *BackendError when a response was received with a
// non-success status; any other error is a transport failure.
func (c *Client) Send(ctx context.Context, message, sessionID string) (*ChatResponse, error) {
	if !c.IsConfigured() {
		return nil, ErrNotConfigured
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("request canceled: %w", err)
	}

	bodyBytes, err := json.Marshal(ChatRequest{Message: message, SessionID: sessionID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.chatURL(), bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req)
	c.logRequest(req)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	c.logResponse(resp, time.Since(start))

	body, err := readResponse(resp)
	if err != nil {
		return nil, err
	}

	if !isSuccess(resp.StatusCode) {
		return nil, backendError(resp.StatusCode, body)
	}

	var chatResp ChatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return &chatResp, nil
}

// =============================================================================
// HELPERS
// =============================================================================

// isSuccess reports whether the status code counts as an HTTP success.
func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

// readResponse reads the response body with a size limit.
//
// SECURITY: Response size limit prevents memory exhaustion.
func readResponse(resp *http.Response) ([]byte, error) {
	limitedReader := io.LimitReader(resp.Body, MaxResponseSize)
	body, err := io.ReadAll(limitedReader)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if int64(len(body)) == MaxResponseSize {
		return nil, fmt.Errorf("response exceeded maximum size of %d bytes", MaxResponseSize)
	}
	return body, nil
}

// backendError builds a *BackendError from a non-success response,
// extracting the error envelope message when one is present.
func backendError(status int, body []byte) error {
	var apiErr apiErrorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
		return &BackendError{Status: status, Message: apiErr.Error.Message}
	}
	return &BackendError{Status: status}
}
