package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"issuemd/internal/application"
	"issuemd/internal/domain"
	"issuemd/internal/ports"
)

// AddCommentResult contains the result of adding a comment
type AddCommentResult struct {
	Message string
}

// AddCommentCommand posts a comment on an issue. The comment text comes
// from Body, or from the file at BodyFile when set.
type AddCommentCommand struct {
	tracker ports.Tracker

	RepoURL  string
	Index    int64
	Body     string
	BodyFile string
}

// NewAddCommentCommand creates a new AddCommentCommand
func NewAddCommentCommand(tracker ports.Tracker, repoURL string, index int64, body, bodyFile string) *AddCommentCommand {
	return &AddCommentCommand{
		tracker:  tracker,
		RepoURL:  repoURL,
		Index:    index,
		Body:     body,
		BodyFile: bodyFile,
	}
}

// Validate checks if the comment operation is valid
func (c *AddCommentCommand) Validate() error {
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
	if c.Body == "" && c.BodyFile == "" {
		return &application.ValidationError{
			Field:   "body",
			Message: "comment text or a comment file is required",
		}
	}
	return nil
}

// Execute runs the add comment command
func (c *AddCommentCommand) Execute(ctx context.Context) (*AddCommentResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	owner, repo, err := domain.ParseRepoURL(c.RepoURL)
	if err != nil {
		return nil, err
	}

	body, err := resolveBody(c.Body, c.BodyFile)
	if err != nil {
		return nil, err
	}

	if err := c.tracker.AddComment(ctx, owner, repo, c.Index, body); err != nil {
		return nil, err
	}

	return &AddCommentResult{
		Message: fmt.Sprintf("Comment added to issue #%d", c.Index),
	}, nil
}

// resolveBody returns the comment text, reading it from a file when a
// file path is given. The file wins over inline text.
func resolveBody(body, bodyFile string) (string, error) {
	if bodyFile == "" {
		return body, nil
	}

	data, err := os.ReadFile(bodyFile)
	if err != nil {
		return "", fmt.Errorf("failed to read comment file: %w", err)
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", &application.ValidationError{
			Field:   "body",
			Message: fmt.Sprintf("comment file %s is empty", bodyFile),
		}
	}
	return text, nil
}
