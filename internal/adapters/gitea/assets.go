package gitea

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"issuemd/internal/domain"
)

// attachmentJSON mirrors the asset objects returned by the issue and
// comment /assets endpoints. Different Gitea versions report the
// download URL under different fields.
type attachmentJSON struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
	DownloadURL        string `json:"download_url"`
	URL                string `json:"url"`
	UUID               string `json:"uuid"`
}

// ListIssueAttachments returns attachment metadata for an issue body.
func (c *Client) ListIssueAttachments(ctx context.Context, owner, repo string, index int64) ([]domain.AttachmentMeta, error) {
	endpoint := fmt.Sprintf("%s/api/v1/repos/%s/%s/issues/%d/assets", c.baseURL, owner, repo, index)
	return c.listAssets(ctx, endpoint, 0)
}

// ListCommentAttachments returns attachment metadata for a comment.
func (c *Client) ListCommentAttachments(ctx context.Context, owner, repo string, commentID int64) ([]domain.AttachmentMeta, error) {
	endpoint := fmt.Sprintf("%s/api/v1/repos/%s/%s/issues/comments/%d/assets", c.baseURL, owner, repo, commentID)
	return c.listAssets(ctx, endpoint, commentID)
}

func (c *Client) listAssets(ctx context.Context, endpoint string, commentID int64) ([]domain.AttachmentMeta, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "token "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch attachments: %w", err)
	}
	defer resp.Body.Close()

	// Older servers answer 404 for issues without assets.
	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch attachments: %s returned %s", endpoint, resp.Status)
	}

	var raw []attachmentJSON
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode attachments: %w", err)
	}

	var metas []domain.AttachmentMeta
	for _, att := range raw {
		downloadURL := c.pickDownloadURL(att)
		if downloadURL == "" {
			continue
		}
		name := att.Name
		if name == "" {
			name = "attachment"
		}
		metas = append(metas, domain.AttachmentMeta{
			Name:        name,
			DownloadURL: downloadURL,
			CommentID:   commentID,
		})
	}
	return metas, nil
}

// pickDownloadURL tries the known URL fields in order, falling back to
// the attachments route by uuid.
func (c *Client) pickDownloadURL(att attachmentJSON) string {
	for _, candidate := range []string{att.BrowserDownloadURL, att.DownloadURL, att.URL} {
		if candidate != "" {
			return candidate
		}
	}
	if att.UUID != "" {
		return c.baseURL + "/attachments/" + att.UUID
	}
	return ""
}

// DownloadAttachment fetches attachment bytes. The download routes
// accept the token as a query parameter rather than a header, so the
// token is appended to the URL.
func (c *Client) DownloadAttachment(ctx context.Context, downloadURL string) ([]byte, error) {
	authURL := downloadURL + "?token=" + url.QueryEscape(c.token)
	if strings.Contains(downloadURL, "?") {
		authURL = downloadURL + "&token=" + url.QueryEscape(c.token)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, authURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download %s: %w", downloadURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download %s: %s", downloadURL, resp.Status)
	}

	return io.ReadAll(resp.Body)
}
