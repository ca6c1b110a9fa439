package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"salon-scheduler/config"
	"salon-scheduler/pkg/session"

	"github.com/sirupsen/logrus"
)

// UpstreamError is a non-2xx or rejected response from the salon backend.
// Handlers surface its message inline on the affected panel.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("upstream: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("upstream: status %d", e.StatusCode)
}

// envelope is the backend's JSON response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// APIClient is the shared HTTP client for the salon REST backend. The bearer
// token is taken from the request session, never from ambient state.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
	log        *logrus.Logger
}

func NewAPIClient(cfg config.UpstreamConfig, log *logrus.Logger) *APIClient {
	return &APIClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        log,
	}
}

func (c *APIClient) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("upstream: create request: %w", err)
	}
	return c.do(req, out)
}

func (c *APIClient) post(ctx context.Context, path string, body interface{}, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("upstream: marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("upstream: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

// do executes the request, unwraps the response envelope and decodes the data
// payload into out. The message of a rejected response is preserved so the
// caller can show it inline.
func (c *APIClient) do(req *http.Request, out interface{}) error {
	if s, ok := session.FromContext(req.Context()); ok && s.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("upstream: http request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("upstream: read response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return &UpstreamError{StatusCode: resp.StatusCode}
		}
		return fmt.Errorf("upstream: unmarshal response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &UpstreamError{StatusCode: resp.StatusCode, Message: env.Message}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("upstream: unmarshal data: %w", err)
		}
	}
	return nil
}
