package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
)

// Store implements ports.DocumentStore for a markdown file on disk.
// Attachments live next to the document under attachments/issue_<id>/.
type Store struct {
	path string
}

// NewStore creates a store for the markdown document at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the document path.
func (s *Store) Path() string {
	return s.path
}

// Read returns the document content, or "" when the file does not exist yet.
func (s *Store) Read() (string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", s.path, err)
	}
	return string(data), nil
}

// Write replaces the document content, creating the parent directory
// when needed.
func (s *Store) Write(content string) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(s.path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}
	return nil
}

// AttachmentRelPath returns the attachment path relative to the
// document. Comment attachments get a comment_<id> subdirectory.
func (s *Store) AttachmentRelPath(issueIndex, commentID int64, name string) string {
	if commentID > 0 {
		return fmt.Sprintf("./attachments/issue_%d/comment_%d/%s", issueIndex, commentID, name)
	}
	return fmt.Sprintf("./attachments/issue_%d/%s", issueIndex, name)
}

// HasAttachment reports whether the attachment already exists on disk.
func (s *Store) HasAttachment(relPath string) bool {
	_, err := os.Stat(s.abs(relPath))
	return err == nil
}

// SaveAttachment writes attachment bytes, creating directories as needed.
func (s *Store) SaveAttachment(relPath string, data []byte) error {
	abs := s.abs(relPath)
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return fmt.Errorf("failed to create attachment directory: %w", err)
	}
	if err := os.WriteFile(abs, data, 0o644); err != nil {
		return fmt.Errorf("failed to save attachment %s: %w", relPath, err)
	}
	return nil
}

func (s *Store) abs(relPath string) string {
	return filepath.Join(filepath.Dir(s.path), filepath.FromSlash(relPath))
}
