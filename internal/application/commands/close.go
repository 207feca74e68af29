package commands

import (
	"context"
	"fmt"

	"issuemd/internal/application"
	"issuemd/internal/domain"
	"issuemd/internal/ports"
)

// CloseIssueResult contains the result of closing an issue
type CloseIssueResult struct {
	Message string
}

// CloseIssueCommand closes an issue, optionally leaving a comment first.
type CloseIssueCommand struct {
	tracker ports.Tracker

	RepoURL     string
	Index       int64
	Comment     string
	CommentFile string
}

// NewCloseIssueCommand creates a new CloseIssueCommand
func NewCloseIssueCommand(tracker ports.Tracker, repoURL string, index int64) *CloseIssueCommand {
	return &CloseIssueCommand{
		tracker: tracker,
		RepoURL: repoURL,
		Index:   index,
	}
}

// Validate checks if the close operation is valid
func (c *CloseIssueCommand) Validate() error {
	if c.RepoURL == "" {
		return &application.ValidationError{
			Field:   "repoURL",
			Message: "repository URL is required",
		}
	}
	if c.Index <= 0 {
		return &application.ValidationError{
			Field:   "issue",
			Message: "issue number must be positive",
		}
	}
	return nil
}

// Execute runs the close command. When a comment is configured it is
// posted before the issue is closed.
func (c *CloseIssueCommand) Execute(ctx context.Context) (*CloseIssueResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	owner, repo, err := domain.ParseRepoURL(c.RepoURL)
	if err != nil {
		return nil, err
	}

	withComment := c.Comment != "" || c.CommentFile != ""
	if withComment {
		body, err := resolveBody(c.Comment, c.CommentFile)
		if err != nil {
			return nil, err
		}
		if err := c.tracker.AddComment(ctx, owner, repo, c.Index, body); err != nil {
			return nil, err
		}
	}

	if err := c.tracker.CloseIssue(ctx, owner, repo, c.Index); err != nil {
		return nil, err
	}

	message := fmt.Sprintf("Issue #%d closed", c.Index)
	if withComment {
		message = fmt.Sprintf("Issue #%d closed with comment", c.Index)
	}
	return &CloseIssueResult{Message: message}, nil
}
