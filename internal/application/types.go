package application

import (
	"issuemd/internal/domain"
	"issuemd/internal/markdown"
)

// Re-export domain types for use by adapters
type (
	Issue          = domain.Issue
	Comment        = domain.Comment
	Attachment     = domain.Attachment
	AttachmentMeta = domain.AttachmentMeta
)

// Re-export sentinel errors for use by adapters
var (
	ErrInvalidRepoURL  = domain.ErrInvalidRepoURL
	ErrDuplicateMarker = markdown.ErrDuplicateMarker
)

// ParseRepoURL extracts owner and repository name from a repository URL
func ParseRepoURL(url string) (string, string, error) {
	return domain.ParseRepoURL(url)
}
