package ports

// DocumentStore defines storage for the target markdown document and
// its attachment tree.
type DocumentStore interface {
	// Read returns the current document content, or "" when the
	// document does not exist yet.
	Read() (string, error)

	// Write replaces the document content.
	Write(content string) error

	// AttachmentRelPath returns the path of an attachment relative to
	// the document. A zero commentID means the attachment belongs to
	// the issue body rather than to a comment.
	AttachmentRelPath(issueIndex, commentID int64, name string) string

	// HasAttachment reports whether the attachment already exists locally.
	HasAttachment(relPath string) bool

	// SaveAttachment writes attachment bytes, creating directories as needed.
	SaveAttachment(relPath string, data []byte) error
}
