// Package drive provides service-account access to the Google Drive v3 API.
package drive

import (
	"context"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/oauth2/google"
	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://www.googleapis.com/drive/v3"

// Scope grants read access plus permission management, which the image
// publisher needs to make files world-readable.
const Scope = "https://www.googleapis.com/auth/drive"

// FolderMimeType is the Drive mime type for folders.
const FolderMimeType = "application/vnd.google-apps.folder"

// SpreadsheetMimeType is the Drive mime type for native Google Sheets.
const SpreadsheetMimeType = "application/vnd.google-apps.spreadsheet"

// File is a Drive file descriptor.
type File struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	MimeType string   `json:"mimeType"`
	Size     string   `json:"size,omitempty"`
	Parents  []string `json:"parents,omitempty"`
}

// Permission is one entry in a file's access control list.
type Permission struct {
	ID           string `json:"id"`
	Type         string `json:"type"`
	Role         string `json:"role"`
	EmailAddress string `json:"emailAddress,omitempty"`
}

// SearchOptions narrow a file search. Zero-valued fields are omitted from
// the query.
type SearchOptions struct {
	Query      string // name contains
	MimeType   string
	FolderID   string // parent folder
	MaxResults int    // default 10
}

// Client defines the Drive operations used by the directory service.
type Client interface {
	TestConnection(ctx context.Context) error
	SearchFiles(ctx context.Context, opts SearchOptions) ([]File, error)
	GetFileMetadata(ctx context.Context, fileID string) (*File, error)
	Download(ctx context.Context, fileID string) ([]byte, error)
	ExportCSV(ctx context.Context, fileID string) (string, error)
	ListPermissions(ctx context.Context, fileID string) ([]Permission, error)
	IsPublic(ctx context.Context, fileID string) (bool, error)
	MakePublic(ctx context.Context, fileID string) error
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(url string) Option {
	return func(c *httpClient) {
		c.baseURL = url
	}
}

// WithHTTPClient overrides the default http.Client, bypassing
// service-account auth. Intended for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

// WithRateLimit sets a per-second rate limit on Drive API calls.
func WithRateLimit(rps float64) Option {
	return func(c *httpClient) {
		if rps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), max(int(rps), 1))
		}
	}
}

type httpClient struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient creates a Drive client authenticated with the given
// service-account credentials JSON. Credentials may be nil when
// WithHTTPClient supplies a pre-authenticated client.
func NewClient(ctx context.Context, credentialsJSON []byte, opts ...Option) (Client, error) {
	c := &httpClient{
		baseURL: defaultBaseURL,
	}
	for _, o := range opts {
		o(c)
	}

	if c.http == nil {
		conf, err := google.JWTConfigFromJSON(credentialsJSON, Scope)
		if err != nil {
			return nil, eris.Wrap(err, "drive: parse service account credentials")
		}
		c.http = conf.Client(ctx)
		c.http.Timeout = 30 * time.Second
	}

	return c, nil
}

func (c *httpClient) wait(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return eris.Wrap(err, "drive: rate limiter wait")
	}
	return nil
}

// TestConnection issues a minimal file listing to verify credentials.
func (c *httpClient) TestConnection(ctx context.Context) error {
	_, err := c.SearchFiles(ctx, SearchOptions{MaxResults: 1})
	if err != nil {
		return eris.Wrap(err, "drive: test connection")
	}
	return nil
}
