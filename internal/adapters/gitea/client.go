package gitea

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"strings"

	sdk "code.gitea.io/sdk/gitea"

	"issuemd/internal/config"
	"issuemd/internal/domain"
)

const pageSize = 50

// Client implements ports.Tracker against a Gitea server. Issues,
// comments, and state changes go through the official SDK; attachment
// assets use the raw API endpoints the SDK does not cover.
type Client struct {
	api     *sdk.Client
	http    *http.Client
	baseURL string
	token   string
}

// New creates a client from settings.
func New(settings config.Settings) (*Client, error) {
	httpClient := &http.Client{}
	if !settings.VerifySSL {
		httpClient.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	api, err := sdk.NewClient(settings.GiteaURL,
		sdk.SetToken(settings.Token),
		sdk.SetHTTPClient(httpClient),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", settings.GiteaURL, err)
	}

	return &Client{
		api:     api,
		http:    httpClient,
		baseURL: strings.TrimSuffix(settings.GiteaURL, "/"),
		token:   settings.Token,
	}, nil
}

// ServerVersion returns the Gitea server version.
func (c *Client) ServerVersion(ctx context.Context) (string, error) {
	version, _, err := c.api.ServerVersion()
	if err != nil {
		return "", fmt.Errorf("failed to reach %s: %w", c.baseURL, err)
	}
	return version, nil
}

// ListOpenIssues returns all open issues of a repository, following
// pagination until the last page.
func (c *Client) ListOpenIssues(ctx context.Context, owner, repo string) ([]domain.Issue, error) {
	var issues []domain.Issue
	for page := 1; ; page++ {
		batch, _, err := c.api.ListRepoIssues(owner, repo, sdk.ListIssueOption{
			ListOptions: sdk.ListOptions{Page: page, PageSize: pageSize},
			State:       sdk.StateOpen,
			Type:        sdk.IssueTypeIssue,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list issues for %s/%s: %w", owner, repo, err)
		}
		for _, issue := range batch {
			issues = append(issues, domain.Issue{
				Index: issue.Index,
				Title: issue.Title,
				Body:  issue.Body,
				State: string(issue.State),
			})
		}
		if len(batch) < pageSize {
			return issues, nil
		}
	}
}

// ListComments returns an issue's comments in creation order.
func (c *Client) ListComments(ctx context.Context, owner, repo string, index int64) ([]domain.Comment, error) {
	var comments []domain.Comment
	for page := 1; ; page++ {
		batch, _, err := c.api.ListIssueComments(owner, repo, index, sdk.ListIssueCommentOptions{
			ListOptions: sdk.ListOptions{Page: page, PageSize: pageSize},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list comments for issue #%d: %w", index, err)
		}
		for _, comment := range batch {
			author := "Unknown"
			if comment.Poster != nil && comment.Poster.UserName != "" {
				author = comment.Poster.UserName
			}
			comments = append(comments, domain.Comment{
				ID:      comment.ID,
				Author:  author,
				Body:    comment.Body,
				Created: comment.Created,
			})
		}
		if len(batch) < pageSize {
			return comments, nil
		}
	}
}

// AddComment posts a comment on an issue.
func (c *Client) AddComment(ctx context.Context, owner, repo string, index int64, body string) error {
	_, _, err := c.api.CreateIssueComment(owner, repo, index, sdk.CreateIssueCommentOption{Body: body})
	if err != nil {
		return fmt.Errorf("failed to comment on issue #%d: %w", index, err)
	}
	return nil
}

// CloseIssue marks an issue closed.
func (c *Client) CloseIssue(ctx context.Context, owner, repo string, index int64) error {
	return c.setState(owner, repo, index, sdk.StateClosed)
}

// ReopenIssue reopens a closed issue.
func (c *Client) ReopenIssue(ctx context.Context, owner, repo string, index int64) error {
	return c.setState(owner, repo, index, sdk.StateOpen)
}

func (c *Client) setState(owner, repo string, index int64, state sdk.StateType) error {
	_, _, err := c.api.EditIssue(owner, repo, index, sdk.EditIssueOption{State: &state})
	if err != nil {
		return fmt.Errorf("failed to set issue #%d state to %s: %w", index, state, err)
	}
	return nil
}
