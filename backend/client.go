// Package backend holds the typed HTTP clients for the remote coworking
// backend. Every response is decoded against a strict schema at this
// boundary; malformed payloads are rejected here instead of leaking
// upwards. Calls are single request-response: no retries, no backoff.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"vayuhu/config"
)

// Client talks JSON-over-HTTP to the coworking backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient builds a backend client from the loaded configuration.
func NewClient(logger *zap.Logger) *Client {
	timeout := time.Duration(config.AppConfig.BackendTimeoutMS) * time.Millisecond
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(config.AppConfig.BackendBaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// RemoteError describes a failed collaborator call.
type RemoteError struct {
	Endpoint string
	Status   int
	Message  string
	Err      error
}

func (e *RemoteError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("backend %s: %v", e.Endpoint, e.Err)
	}
	return fmt.Sprintf("backend %s: status %d: %s", e.Endpoint, e.Status, e.Message)
}

func (e *RemoteError) Unwrap() error { return e.Err }

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return &RemoteError{Endpoint: endpoint, Err: err}
	}
	return c.do(req, endpoint, out)
}

func (c *Client) postJSON(ctx context.Context, endpoint string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return &RemoteError{Endpoint: endpoint, Err: err}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(body))
	if err != nil {
		return &RemoteError{Endpoint: endpoint, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, endpoint, out)
}

func (c *Client) do(req *http.Request, endpoint string, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("backend call failed", zap.String("endpoint", endpoint), zap.Error(err))
		return &RemoteError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &RemoteError{Endpoint: endpoint, Status: resp.StatusCode, Message: string(body)}
	}

	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(out); err != nil {
		return &RemoteError{Endpoint: endpoint, Status: resp.StatusCode,
			Err: fmt.Errorf("malformed response: %w", err)}
	}
	return nil
}
