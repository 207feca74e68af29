package domain

import (
	"path/filepath"
	"strings"
	"time"
)

// Issue represents a tracked work item fetched from the remote tracker,
// together with its comments and any attachments downloaded locally.
type Issue struct {
	Index       int64
	Title       string
	Body        string
	State       string
	Comments    []Comment
	Attachments []Attachment
}

// Comment represents a comment on an issue, ordered by creation time.
type Comment struct {
	ID      int64
	Author  string
	Body    string
	Created time.Time
}

// Attachment is a file fetched for an issue. Path is relative to the
// markdown document that references it.
type Attachment struct {
	Name string
	Path string
}

// AttachmentMeta is attachment metadata as reported by the tracker API,
// before the file has been downloaded. CommentID is zero for attachments
// on the issue body itself.
type AttachmentMeta struct {
	Name        string
	DownloadURL string
	CommentID   int64
}

// imageExtensions are embedded inline; everything else becomes a link.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
	".svg":  true,
	".bmp":  true,
}

// IsImage reports whether the attachment should be embedded inline.
func (a Attachment) IsImage() bool {
	return IsImageFile(a.Name)
}

// IsImageFile reports whether a filename carries an image extension.
func IsImageFile(name string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(name))]
}
