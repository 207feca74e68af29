package commands

import (
	"context"
	"fmt"

	"issuemd/internal/application"
	"issuemd/internal/domain"
	"issuemd/internal/ports"
)

// ReopenIssueResult contains the result of reopening an issue
type ReopenIssueResult struct {
	Message string
}

// ReopenIssueCommand reopens a closed issue
type ReopenIssueCommand struct {
	tracker ports.Tracker

	RepoURL string
	Index   int64
}

// NewReopenIssueCommand creates a new ReopenIssueCommand
func NewReopenIssueCommand(tracker ports.Tracker, repoURL string, index int64) *ReopenIssueCommand {
	return &ReopenIssueCommand{
		tracker: tracker,
		RepoURL: repoURL,
		Index:   index,
	}
}

// Validate checks if the reopen operation is valid
func (c *ReopenIssueCommand) Validate() error {
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

// Execute runs the reopen command
func (c *ReopenIssueCommand) Execute(ctx context.Context) (*ReopenIssueResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	owner, repo, err := domain.ParseRepoURL(c.RepoURL)
	if err != nil {
		return nil, err
	}

	if err := c.tracker.ReopenIssue(ctx, owner, repo, c.Index); err != nil {
		return nil, err
	}

	return &ReopenIssueResult{
		Message: fmt.Sprintf("Issue #%d reopened", c.Index),
	}, nil
}
