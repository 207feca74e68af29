package filesystem

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStore_ReadMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "issues.md"))

	content, err := store.Read()
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if content != "" {
		t.Errorf("expected empty content for missing file, got %q", content)
	}
}

func TestStore_WriteAndRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes", "issues.md")
	store := NewStore(path)

	if err := store.Write("# Issues\n"); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	content, err := store.Read()
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if content != "# Issues\n" {
		t.Errorf("Read() = %q, want %q", content, "# Issues\n")
	}
}

func TestStore_AttachmentRelPath(t *testing.T) {
	store := NewStore("issues.md")

	tests := []struct {
		name       string
		issueIndex int64
		commentID  int64
		fileName   string
		want       string
	}{
		{
			name:       "issue attachment",
			issueIndex: 5,
			fileName:   "shot.png",
			want:       "./attachments/issue_5/shot.png",
		},
		{
			name:       "comment attachment",
			issueIndex: 5,
			commentID:  9,
			fileName:   "trace.log",
			want:       "./attachments/issue_5/comment_9/trace.log",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := store.AttachmentRelPath(tt.issueIndex, tt.commentID, tt.fileName)
			if got != tt.want {
				t.Errorf("AttachmentRelPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStore_SaveAndHasAttachment(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(filepath.Join(dir, "issues.md"))

	rel := store.AttachmentRelPath(5, 0, "shot.png")
	if store.HasAttachment(rel) {
		t.Fatal("expected attachment to be absent before save")
	}

	if err := store.SaveAttachment(rel, []byte("png bytes")); err != nil {
		t.Fatalf("SaveAttachment failed: %v", err)
	}

	if !store.HasAttachment(rel) {
		t.Error("expected attachment to exist after save")
	}

	data, err := os.ReadFile(filepath.Join(dir, "attachments", "issue_5", "shot.png"))
	if err != nil {
		t.Fatalf("attachment not on disk next to the document: %v", err)
	}
	if string(data) != "png bytes" {
		t.Errorf("attachment content = %q, want %q", data, "png bytes")
	}
}
