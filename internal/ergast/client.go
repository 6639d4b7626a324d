package ergast

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/f1tipp/F1Tipp_Go/internal/metrics"
)

// providerName is the label value reported on provider metrics.
const providerName = "ergast"

// Client talks to an Ergast-compatible race-data REST API. The provider is
// treated as untrusted and occasionally incomplete: a payload without the
// expected nested tables decodes to empty slices, never an error.
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

// NewClient creates a race-data client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    "https://api.jolpi.ca/ergast",
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) get(ctx context.Context, path string) (*mrData, error) {
	url := fmt.Sprintf("%s%s", c.baseURL, path)
	metrics.ProviderRequests.WithLabelValues(providerName).Inc()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ProviderErrors.WithLabelValues(providerName).Inc()
		return nil, fmt.Errorf("request to race-data provider failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.ProviderErrors.WithLabelValues(providerName).Inc()
		return nil, fmt.Errorf("race-data provider returned status %d for %s", resp.StatusCode, path)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read provider response: %w", err)
	}

	var envelope responseEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode provider response: %w", err)
	}
	return &envelope.MRData, nil
}

func (c *Client) raceTable(ctx context.Context, path string) ([]RacePayload, error) {
	data, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}
	if data.RaceTable == nil {
		return nil, nil
	}
	return data.RaceTable.Races, nil
}

// firstRace returns the first race of a payload, or nil when the table is
// empty (session not yet run, or round out of range).
func firstRace(races []RacePayload) *RacePayload {
	if len(races) == 0 {
		return nil
	}
	return &races[0]
}

// RaceResults fetches the race classification for one round. A nil payload
// means the provider has no result yet.
func (c *Client) RaceResults(ctx context.Context, season, round int) (*RacePayload, error) {
	races, err := c.raceTable(ctx, fmt.Sprintf("/f1/%d/%d/results.json", season, round))
	if err != nil {
		return nil, err
	}
	return firstRace(races), nil
}

// QualifyingResults fetches the qualifying classification for one round.
func (c *Client) QualifyingResults(ctx context.Context, season, round int) (*RacePayload, error) {
	races, err := c.raceTable(ctx, fmt.Sprintf("/f1/%d/%d/qualifying.json", season, round))
	if err != nil {
		return nil, err
	}
	return firstRace(races), nil
}

// SprintResults fetches the sprint classification for one round.
func (c *Client) SprintResults(ctx context.Context, season, round int) (*RacePayload, error) {
	races, err := c.raceTable(ctx, fmt.Sprintf("/f1/%d/%d/sprint.json", season, round))
	if err != nil {
		return nil, err
	}
	return firstRace(races), nil
}

// Schedule fetches the season calendar.
func (c *Client) Schedule(ctx context.Context, season int) ([]RacePayload, error) {
	return c.raceTable(ctx, fmt.Sprintf("/f1/%d.json", season))
}

// DriverStandings fetches the current drivers' championship table.
func (c *Client) DriverStandings(ctx context.Context, season int) ([]DriverStanding, error) {
	data, err := c.get(ctx, fmt.Sprintf("/f1/%d/driverstandings.json", season))
	if err != nil {
		return nil, err
	}
	if data.StandingsTable == nil || len(data.StandingsTable.StandingsLists) == 0 {
		return nil, nil
	}
	return data.StandingsTable.StandingsLists[0].DriverStandings, nil
}

// ConstructorStandings fetches the current constructors' championship table.
func (c *Client) ConstructorStandings(ctx context.Context, season int) ([]ConstructorStanding, error) {
	data, err := c.get(ctx, fmt.Sprintf("/f1/%d/constructorstandings.json", season))
	if err != nil {
		return nil, err
	}
	if data.StandingsTable == nil || len(data.StandingsTable.StandingsLists) == 0 {
		return nil, nil
	}
	return data.StandingsTable.StandingsLists[0].ConstructorStandings, nil
}
