package livetiming

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/f1tipp/F1Tipp_Go/internal/metrics"
)

// LatestSessionKey is the provider's alias for the most recent session.
const LatestSessionKey = "latest"

// providerName is the label value reported on provider metrics.
const providerName = "openf1"

// Client talks to an OpenF1-compatible live-timing REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// ClientOption customizes a Client.
type ClientOption func(c *Client)

// WithBaseURL overrides the provider base URL (used by tests).
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient swaps the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a live-timing client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    "https://api.openf1.org",
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	url := fmt.Sprintf("%s%s", c.baseURL, path)
	metrics.ProviderRequests.WithLabelValues(providerName).Inc()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ProviderErrors.WithLabelValues(providerName).Inc()
		return fmt.Errorf("request to live-timing provider failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.ProviderErrors.WithLabelValues(providerName).Inc()
		return fmt.Errorf("live-timing provider returned status %d for %s", resp.StatusCode, path)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return fmt.Errorf("failed to read provider response: %w", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode provider response: %w", err)
	}
	return nil
}

// Positions fetches the position feed for a session. Pass LatestSessionKey
// for the session currently running.
func (c *Client) Positions(ctx context.Context, sessionKey string) ([]PositionPayload, error) {
	var positions []PositionPayload
	if err := c.get(ctx, fmt.Sprintf("/v1/position?session_key=%s", sessionKey), &positions); err != nil {
		return nil, err
	}
	return positions, nil
}

// LatestSession fetches the metadata of the most recent session.
func (c *Client) LatestSession(ctx context.Context) (*SessionPayload, error) {
	var sessions []SessionPayload
	if err := c.get(ctx, fmt.Sprintf("/v1/sessions?session_key=%s", LatestSessionKey), &sessions); err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		return nil, nil
	}
	return &sessions[0], nil
}
