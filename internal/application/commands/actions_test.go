package commands

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAddCommentCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		repoURL string
		index   int64
		body    string
		file    string
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid inline body",
			repoURL: repoURL,
			index:   5,
			body:    "Looks good.",
		},
		{
			name:    "valid file body",
			repoURL: repoURL,
			index:   5,
			file:    "comment.md",
		},
		{
			name:    "missing repo URL",
			index:   5,
			body:    "Looks good.",
			wantErr: true,
			errMsg:  "repository URL is required",
		},
		{
			name:    "zero issue number",
			repoURL: repoURL,
			body:    "Looks good.",
			wantErr: true,
			errMsg:  "issue number must be positive",
		},
		{
			name:    "no body at all",
			repoURL: repoURL,
			index:   5,
			wantErr: true,
			errMsg:  "comment text or a comment file is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewAddCommentCommand(&fakeTracker{}, tt.repoURL, tt.index, tt.body, tt.file)
			err := cmd.Validate()

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.errMsg)
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestAddCommentCommand_Execute(t *testing.T) {
	tracker := &fakeTracker{}

	result, err := NewAddCommentCommand(tracker, repoURL, 5, "Looks good.", "").Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if len(tracker.addedComments) != 1 || tracker.addedComments[0] != "Looks good." {
		t.Errorf("expected one comment, got %v", tracker.addedComments)
	}
	if result.Message != "Comment added to issue #5" {
		t.Errorf("unexpected message: %q", result.Message)
	}
}

func TestAddCommentCommand_BodyFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "comment.md")
	if err := os.WriteFile(path, []byte("From the file.\n"), 0o644); err != nil {
		t.Fatalf("failed to write comment file: %v", err)
	}

	tracker := &fakeTracker{}

	if _, err := NewAddCommentCommand(tracker, repoURL, 5, "inline loses", path).Execute(context.Background()); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if len(tracker.addedComments) != 1 || tracker.addedComments[0] != "From the file." {
		t.Errorf("expected file body to win, got %v", tracker.addedComments)
	}
}

func TestAddCommentCommand_EmptyFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "comment.md")
	if err := os.WriteFile(path, []byte("  \n"), 0o644); err != nil {
		t.Fatalf("failed to write comment file: %v", err)
	}

	_, err := NewAddCommentCommand(&fakeTracker{}, repoURL, 5, "", path).Execute(context.Background())
	if err == nil {
		t.Fatal("expected error for empty comment file, got nil")
	}
	if !strings.Contains(err.Error(), "is empty") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCloseIssueCommand_Execute(t *testing.T) {
	tracker := &fakeTracker{}

	result, err := NewCloseIssueCommand(tracker, repoURL, 5).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if len(tracker.closed) != 1 || tracker.closed[0] != 5 {
		t.Errorf("expected issue 5 closed, got %v", tracker.closed)
	}
	if len(tracker.addedComments) != 0 {
		t.Errorf("expected no comment, got %v", tracker.addedComments)
	}
	if result.Message != "Issue #5 closed" {
		t.Errorf("unexpected message: %q", result.Message)
	}
}

func TestCloseIssueCommand_WithComment(t *testing.T) {
	tracker := &fakeTracker{}

	cmd := NewCloseIssueCommand(tracker, repoURL, 5)
	cmd.Comment = "Fixed in v1.2."

	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if len(tracker.addedComments) != 1 || tracker.addedComments[0] != "Fixed in v1.2." {
		t.Errorf("expected closing comment, got %v", tracker.addedComments)
	}
	if len(tracker.closed) != 1 {
		t.Errorf("expected issue to be closed, got %v", tracker.closed)
	}
	if result.Message != "Issue #5 closed with comment" {
		t.Errorf("unexpected message: %q", result.Message)
	}
}

func TestCloseIssueCommand_Validate(t *testing.T) {
	if err := NewCloseIssueCommand(&fakeTracker{}, repoURL, 0).Validate(); err == nil {
		t.Error("expected error for zero issue number, got nil")
	}
	if err := NewCloseIssueCommand(&fakeTracker{}, "", 5).Validate(); err == nil {
		t.Error("expected error for missing repo URL, got nil")
	}
}

func TestReopenIssueCommand_Execute(t *testing.T) {
	tracker := &fakeTracker{}

	result, err := NewReopenIssueCommand(tracker, repoURL, 7).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if len(tracker.reopened) != 1 || tracker.reopened[0] != 7 {
		t.Errorf("expected issue 7 reopened, got %v", tracker.reopened)
	}
	if result.Message != "Issue #7 reopened" {
		t.Errorf("unexpected message: %q", result.Message)
	}
}

func TestReopenIssueCommand_Validate(t *testing.T) {
	if err := NewReopenIssueCommand(&fakeTracker{}, repoURL, -1).Validate(); err == nil {
		t.Error("expected error for negative issue number, got nil")
	}
	if err := NewReopenIssueCommand(&fakeTracker{}, "", 5).Validate(); err == nil {
		t.Error("expected error for missing repo URL, got nil")
	}
}
