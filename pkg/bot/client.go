// Package bot is a client for the directory automation bot's status API.
// The bot runs as a separate service that creates listings from
// completed business records; this client surfaces its phase, per-business
// progress, and activity log to the dashboard.
package bot

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rotisserie/eris"
)

const defaultBaseURL = "http://localhost:3001"

// Phase values reported by the bot.
const (
	PhaseIdle         = "IDLE"
	PhaseInitializing = "INITIALIZING"
	PhaseProcessing   = "PROCESSING_SUBMISSIONS"
	PhaseCompleted    = "COMPLETED"
	PhaseError        = "ERROR"
)

// Status is the bot's top-level run state.
type Status struct {
	Phase            string `json:"phase"`
	IsRunning        bool   `json:"isRunning"`
	ConnectedClients int    `json:"connectedClients"`
	ServerUptime     int64  `json:"serverUptime"`
	Timestamp        string `json:"timestamp"`
}

// BusinessProgress tracks one business through the submission flow.
type BusinessProgress struct {
	BusinessName string   `json:"businessName"`
	Site         string   `json:"site"`
	CurrentStep  string   `json:"currentStep"`
	StepMessage  string   `json:"stepMessage"`
	Progress     int      `json:"progress"`
	StartTime    string   `json:"startTime"`
	LastUpdate   string   `json:"lastUpdate"`
	ImagesCount  int      `json:"imagesCount"`
	GmailStatus  string   `json:"gmailStatus"`
	Errors       []string `json:"errors,omitempty"`
}

// Summary aggregates progress across all businesses in the current run.
type Summary struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	Failed     int `json:"failed"`
	InProgress int `json:"inProgress"`
	Pending    int `json:"pending"`
}

// LogEntry is one line of bot activity.
type LogEntry struct {
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
	Message   string `json:"message"`
	Type      string `json:"type"`
	Business  string `json:"business,omitempty"`
}

// Client talks to the bot's HTTP API.
type Client interface {
	// Status returns the bot's current phase and run state.
	Status(ctx context.Context) (*Status, error)
	// Progress returns per-business progress for the current run.
	Progress(ctx context.Context) ([]BusinessProgress, error)
	// Summary returns aggregate counts for the current run.
	Summary(ctx context.Context) (*Summary, error)
	// Logs returns activity entries newer than sinceID. Empty sinceID
	// returns the full buffer.
	Logs(ctx context.Context, sinceID string) ([]LogEntry, error)
}

type client struct {
	baseURL    string
	httpClient *http.Client
}

// Options configures the client.
type Options func(*client)

// WithBaseURL overrides the bot server address.
func WithBaseURL(baseURL string) Options {
	return func(c *client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Options {
	return func(c *client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a bot API client.
func NewClient(opts ...Options) Client {
	c := &client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *client) Status(ctx context.Context) (*Status, error) {
	var status Status
	if err := c.get(ctx, "/api/bot/status", nil, &status); err != nil {
		return nil, eris.Wrap(err, "bot: get status")
	}
	return &status, nil
}

func (c *client) Progress(ctx context.Context) ([]BusinessProgress, error) {
	var out struct {
		Businesses []BusinessProgress `json:"businesses"`
	}
	if err := c.get(ctx, "/api/bot/progress", nil, &out); err != nil {
		return nil, eris.Wrap(err, "bot: get progress")
	}
	return out.Businesses, nil
}

func (c *client) Summary(ctx context.Context) (*Summary, error) {
	var summary Summary
	if err := c.get(ctx, "/api/bot/summary", nil, &summary); err != nil {
		return nil, eris.Wrap(err, "bot: get summary")
	}
	return &summary, nil
}

func (c *client) Logs(ctx context.Context, sinceID string) ([]LogEntry, error) {
	var query url.Values
	if sinceID != "" {
		query = url.Values{"since": []string{sinceID}}
	}

	var out struct {
		Logs []LogEntry `json:"logs"`
	}
	if err := c.get(ctx, "/api/bot/logs", query, &out); err != nil {
		return nil, eris.Wrap(err, "bot: get logs")
	}
	return out.Logs, nil
}

func (c *client) get(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return eris.Wrap(err, "create request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return eris.Wrap(err, "execute request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return eris.New(fmt.Sprintf("unexpected status %d", resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return eris.Wrap(err, "decode response")
	}
	return nil
}
