package drive

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rotisserie/eris"
)

type fileListResponse struct {
	Files []File `json:"files"`
}

// SearchFiles lists files matching the given criteria.
func (c *httpClient) SearchFiles(ctx context.Context, opts SearchOptions) ([]File, error) {
	var conditions []string
	if opts.Query != "" {
		conditions = append(conditions, fmt.Sprintf("name contains '%s'", escapeQuery(opts.Query)))
	}
	if opts.MimeType != "" {
		conditions = append(conditions, fmt.Sprintf("mimeType='%s'", opts.MimeType))
	}
	if opts.FolderID != "" {
		conditions = append(conditions, fmt.Sprintf("'%s' in parents", escapeQuery(opts.FolderID)))
	}

	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = 10
	}

	params := url.Values{}
	if len(conditions) > 0 {
		params.Set("q", strings.Join(conditions, " and "))
	}
	params.Set("pageSize", fmt.Sprintf("%d", maxResults))
	params.Set("fields", "files(id,name,mimeType,parents)")

	body, err := c.get(ctx, "/files?"+params.Encode())
	if err != nil {
		return nil, eris.Wrap(err, "drive: search files")
	}

	var result fileListResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, eris.Wrap(err, "drive: unmarshal file list")
	}
	return result.Files, nil
}

// GetFileMetadata fetches id, name, mime type and size for a file.
func (c *httpClient) GetFileMetadata(ctx context.Context, fileID string) (*File, error) {
	params := url.Values{}
	params.Set("fields", "id,name,mimeType,size")

	body, err := c.get(ctx, "/files/"+url.PathEscape(fileID)+"?"+params.Encode())
	if err != nil {
		return nil, eris.Wrapf(err, "drive: get metadata for %s", fileID)
	}

	var f File
	if err := json.Unmarshal(body, &f); err != nil {
		return nil, eris.Wrap(err, "drive: unmarshal metadata")
	}
	return &f, nil
}

// Download fetches the raw content of a file.
func (c *httpClient) Download(ctx context.Context, fileID string) ([]byte, error) {
	body, err := c.get(ctx, "/files/"+url.PathEscape(fileID)+"?alt=media")
	if err != nil {
		return nil, eris.Wrapf(err, "drive: download %s", fileID)
	}
	return body, nil
}

// ExportCSV exports a native Google Sheets file as CSV text.
func (c *httpClient) ExportCSV(ctx context.Context, fileID string) (string, error) {
	params := url.Values{}
	params.Set("mimeType", "text/csv")

	body, err := c.get(ctx, "/files/"+url.PathEscape(fileID)+"/export?"+params.Encode())
	if err != nil {
		return "", eris.Wrapf(err, "drive: export %s as csv", fileID)
	}
	return string(body), nil
}

func (c *httpClient) get(ctx context.Context, path string) ([]byte, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, eris.Wrap(err, "drive: create request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "drive: send request")
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "drive: read response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("drive: unexpected status %d: %s", resp.StatusCode, string(body))
	}
	return body, nil
}

// escapeQuery escapes single quotes and backslashes for the Drive query
// language.
func escapeQuery(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `'`, `\'`)
}
