package commands

import (
	"context"
	"fmt"
	"os"

	"issuemd/internal/application"
	"issuemd/internal/domain"
	"issuemd/internal/markdown"
	"issuemd/internal/ports"
)

// SyncResult contains the result of a sync run
type SyncResult struct {
	Added       int
	Updated     int
	Attachments int
	Issues      []domain.Issue
	Message     string
}

// SyncCommand mirrors a repository's open issues into a markdown document
type SyncCommand struct {
	tracker ports.Tracker
	store   ports.DocumentStore

	RepoURL string

	// ExcludePath optionally names a markdown file whose issue markers
	// exclude those issues from the sync (a "completed" list).
	ExcludePath string
}

// NewSyncCommand creates a new SyncCommand
func NewSyncCommand(tracker ports.Tracker, store ports.DocumentStore, repoURL string) *SyncCommand {
	return &SyncCommand{
		tracker: tracker,
		store:   store,
		RepoURL: repoURL,
	}
}

// Validate checks if the sync operation is valid
func (c *SyncCommand) Validate() error {
	if c.RepoURL == "" {
		return &application.ValidationError{
			Field:   "repoURL",
			Message: "repository URL is required",
		}
	}
	if _, _, err := domain.ParseRepoURL(c.RepoURL); err != nil {
		return err
	}
	return nil
}

// Execute runs the sync. Fetching and rendering happen fully in memory
// and the document is written once at the end, so a failure anywhere
// before that leaves the file untouched.
func (c *SyncCommand) Execute(ctx context.Context) (*SyncResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	owner, repo, err := domain.ParseRepoURL(c.RepoURL)
	if err != nil {
		return nil, err
	}

	issues, err := c.tracker.ListOpenIssues(ctx, owner, repo)
	if err != nil {
		return nil, err
	}

	if c.ExcludePath != "" {
		issues, err = c.filterCompleted(issues)
		if err != nil {
			return nil, err
		}
	}

	if len(issues) == 0 {
		return &SyncResult{Message: "No open issues to add."}, nil
	}

	result := &SyncResult{}
	for i := range issues {
		if err := c.collect(ctx, owner, repo, &issues[i], result); err != nil {
			return nil, err
		}
	}

	content, err := c.store.Read()
	if err != nil {
		return nil, err
	}
	existing := markdown.ExtractIssueIDs(content)

	for _, issue := range issues {
		block := markdown.Render(issue)
		content, err = markdown.Merge(content, issue.Index, block)
		if err != nil {
			return nil, err
		}
		if existing[issue.Index] {
			result.Updated++
		} else {
			result.Added++
		}
	}

	if err := c.store.Write(content); err != nil {
		return nil, err
	}

	result.Issues = issues
	result.Message = fmt.Sprintf("Added %d new issue(s), updated %d existing issue(s)", result.Added, result.Updated)
	return result, nil
}

// filterCompleted drops issues whose markers appear in the exclusion file.
func (c *SyncCommand) filterCompleted(issues []domain.Issue) ([]domain.Issue, error) {
	data, err := os.ReadFile(c.ExcludePath)
	if os.IsNotExist(err) {
		return issues, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", c.ExcludePath, err)
	}

	completed := markdown.ExtractIssueIDs(string(data))
	if len(completed) == 0 {
		return issues, nil
	}

	kept := issues[:0]
	for _, issue := range issues {
		if !completed[issue.Index] {
			kept = append(kept, issue)
		}
	}
	return kept, nil
}

// collect fills an issue with its comments and downloaded attachments,
// gathering attachment metadata from the issue body and every comment.
func (c *SyncCommand) collect(ctx context.Context, owner, repo string, issue *domain.Issue, result *SyncResult) error {
	comments, err := c.tracker.ListComments(ctx, owner, repo, issue.Index)
	if err != nil {
		return err
	}
	issue.Comments = comments

	metas, err := c.tracker.ListIssueAttachments(ctx, owner, repo, issue.Index)
	if err != nil {
		return err
	}
	for _, comment := range comments {
		commentMetas, err := c.tracker.ListCommentAttachments(ctx, owner, repo, comment.ID)
		if err != nil {
			return err
		}
		metas = append(metas, commentMetas...)
	}

	for _, meta := range metas {
		att, err := c.fetchAttachment(ctx, issue.Index, meta, result)
		if err != nil {
			return err
		}
		issue.Attachments = append(issue.Attachments, att)
	}
	return nil
}

// fetchAttachment downloads one attachment unless it is already on
// disk. The stored name is corrected when the content's magic bytes
// disagree with the image extension.
func (c *SyncCommand) fetchAttachment(ctx context.Context, issueIndex int64, meta domain.AttachmentMeta, result *SyncResult) (domain.Attachment, error) {
	relPath := c.store.AttachmentRelPath(issueIndex, meta.CommentID, meta.Name)
	if c.store.HasAttachment(relPath) {
		return domain.Attachment{Name: meta.Name, Path: relPath}, nil
	}

	data, err := c.tracker.DownloadAttachment(ctx, meta.DownloadURL)
	if err != nil {
		return domain.Attachment{}, err
	}

	name := domain.CorrectedName(meta.Name, data)
	relPath = c.store.AttachmentRelPath(issueIndex, meta.CommentID, name)
	if err := c.store.SaveAttachment(relPath, data); err != nil {
		return domain.Attachment{}, err
	}

	result.Attachments++
	return domain.Attachment{Name: name, Path: relPath}, nil
}
