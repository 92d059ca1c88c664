package drive

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/rotisserie/eris"
)

type permissionListResponse struct {
	Permissions []Permission `json:"permissions"`
}

// ListPermissions returns a file's access control entries.
func (c *httpClient) ListPermissions(ctx context.Context, fileID string) ([]Permission, error) {
	params := url.Values{}
	params.Set("fields", "permissions(id,type,role,emailAddress)")

	body, err := c.get(ctx, "/files/"+url.PathEscape(fileID)+"/permissions?"+params.Encode())
	if err != nil {
		return nil, eris.Wrapf(err, "drive: list permissions for %s", fileID)
	}

	var result permissionListResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, eris.Wrap(err, "drive: unmarshal permissions")
	}
	return result.Permissions, nil
}

// IsPublic reports whether the file carries an anyone/reader grant.
func (c *httpClient) IsPublic(ctx context.Context, fileID string) (bool, error) {
	perms, err := c.ListPermissions(ctx, fileID)
	if err != nil {
		return false, err
	}
	for _, p := range perms {
		if p.Type == "anyone" && p.Role == "reader" {
			return true, nil
		}
	}
	return false, nil
}

// MakePublic grants anyone/reader access to the file.
func (c *httpClient) MakePublic(ctx context.Context, fileID string) error {
	if err := c.wait(ctx); err != nil {
		return err
	}

	payload, err := json.Marshal(Permission{Type: "anyone", Role: "reader"})
	if err != nil {
		return eris.Wrap(err, "drive: marshal permission")
	}

	endpoint := c.baseURL + "/files/" + url.PathEscape(fileID) + "/permissions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return eris.Wrap(err, "drive: create permission request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return eris.Wrap(err, "drive: send permission request")
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return eris.Wrap(err, "drive: read permission response")
	}

	if resp.StatusCode != http.StatusOK {
		return eris.Errorf("drive: unexpected status %d creating permission: %s", resp.StatusCode, string(body))
	}
	return nil
}
