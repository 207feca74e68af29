package ports

import (
	"context"

	"issuemd/internal/domain"
)

// Tracker defines the interface to the remote issue tracker.
type Tracker interface {
	// ServerVersion returns the tracker's reported version string.
	ServerVersion(ctx context.Context) (string, error)

	// ListOpenIssues returns every open issue of a repository, without
	// comments or attachments filled in.
	ListOpenIssues(ctx context.Context, owner, repo string) ([]domain.Issue, error)

	// ListComments returns an issue's comments ordered by creation time.
	ListComments(ctx context.Context, owner, repo string, index int64) ([]domain.Comment, error)

	// Attachment metadata for an issue body and for a single comment.
	ListIssueAttachments(ctx context.Context, owner, repo string, index int64) ([]domain.AttachmentMeta, error)
	ListCommentAttachments(ctx context.Context, owner, repo string, commentID int64) ([]domain.AttachmentMeta, error)

	// DownloadAttachment fetches the attachment bytes.
	DownloadAttachment(ctx context.Context, downloadURL string) ([]byte, error)

	// Issue actions
	AddComment(ctx context.Context, owner, repo string, index int64, body string) error
	CloseIssue(ctx context.Context, owner, repo string, index int64) error
	ReopenIssue(ctx context.Context, owner, repo string, index int64) error
}
