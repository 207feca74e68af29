package domain

import (
	"bytes"
	"path/filepath"
	"strings"
)

// DetectImageExt returns the extension matching the content's magic
// bytes, or "" when the content is not a recognized image format.
func DetectImageExt(content []byte) string {
	switch {
	case len(content) >= 3 && bytes.Equal(content[:3], []byte{0xff, 0xd8, 0xff}):
		return ".jpg"
	case len(content) >= 8 && bytes.Equal(content[:8], []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}):
		return ".png"
	case len(content) >= 6 && (bytes.Equal(content[:6], []byte("GIF87a")) || bytes.Equal(content[:6], []byte("GIF89a"))):
		return ".gif"
	case len(content) >= 12 && bytes.Equal(content[:4], []byte("RIFF")) && bytes.Equal(content[8:12], []byte("WEBP")):
		return ".webp"
	case len(content) >= 2 && bytes.Equal(content[:2], []byte("BM")):
		return ".bmp"
	}
	return ""
}

// CorrectedName fixes a filename whose image extension disagrees with
// the file's magic bytes. Names with non-image extensions and content
// that is not a recognized image are left alone.
func CorrectedName(name string, content []byte) string {
	actual := DetectImageExt(content)
	if actual == "" {
		return name
	}

	ext := strings.ToLower(filepath.Ext(name))
	if ext == actual || !imageExtensions[ext] {
		return name
	}

	return strings.TrimSuffix(name, filepath.Ext(name)) + actual
}
