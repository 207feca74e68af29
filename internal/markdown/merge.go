package markdown

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrDuplicateMarker is returned when the document contains more than
// one block claiming the same issue id. The document is treated as
// corrupt rather than guessing which block to update.
var ErrDuplicateMarker = errors.New("duplicate issue marker")

var markerPattern = regexp.MustCompile(`<!-- GITEA_ISSUE:(\d+) -->`)

// ExtractIssueIDs returns the set of issue ids marked in the document.
func ExtractIssueIDs(content string) map[int64]bool {
	ids := make(map[int64]bool)
	for _, match := range markerPattern.FindAllStringSubmatch(content, -1) {
		id, err := strconv.ParseInt(match[1], 10, 64)
		if err != nil {
			continue
		}
		ids[id] = true
	}
	return ids
}

// Merge places the rendered block for an issue into the document. When
// the document already contains the issue's marker, the existing block
// is replaced from its heading line up to (but not including) the next
// "## " heading or end of file; otherwise the block is appended.
// Content outside the replaced span is preserved byte for byte.
//
// The marker lookup is an exact full-marker text search, so the marker
// for issue 12 can never match inside the marker for issue 123.
func Merge(content string, id int64, block string) (string, error) {
	marker := Marker(id)

	idx := strings.Index(content, marker)
	if idx < 0 {
		return appendBlock(content, block), nil
	}
	if strings.Contains(content[idx+len(marker):], marker) {
		return "", fmt.Errorf("%w: issue %d", ErrDuplicateMarker, id)
	}

	start := blockStart(content, idx)
	end := blockEnd(content, idx)

	return content[:start] + block + content[end:], nil
}

// appendBlock adds the block at the end of the document, separated from
// existing content by one blank line.
func appendBlock(content, block string) string {
	if content == "" {
		return block
	}
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	return content + "\n" + block
}

// blockStart walks backwards from the marker's line to the closest "## "
// heading line, which starts the issue's block. When no heading precedes
// the marker, the block starts at the marker's own line.
func blockStart(content string, markerIdx int) int {
	markerLine := strings.LastIndexByte(content[:markerIdx], '\n') + 1

	at := markerLine
	for {
		if strings.HasPrefix(content[at:], "## ") {
			return at
		}
		if at == 0 {
			return markerLine
		}
		at = strings.LastIndexByte(content[:at-1], '\n') + 1
	}
}

// blockEnd returns the index of the newline preceding the next "## "
// heading after the marker, or the end of the document.
func blockEnd(content string, markerIdx int) int {
	if rel := strings.Index(content[markerIdx:], "\n## "); rel >= 0 {
		return markerIdx + rel
	}
	return len(content)
}
